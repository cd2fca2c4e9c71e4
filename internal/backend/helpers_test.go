// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"fdoconf/cli/internal/manifest"
)

// recordedRequest captures what the fake server saw.
type recordedRequest struct {
	Method      string
	Path        string
	ContentType string
	Body        map[string]any
}

// fakeServer answers every request with status and body, recording the requests.
type fakeServer struct {
	*httptest.Server
	hits atomic.Int32
	last atomic.Pointer[recordedRequest]
}

func newFakeServer(t *testing.T, status int, body string) *fakeServer {
	t.Helper()
	fs := &fakeServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.hits.Add(1)
		rec := &recordedRequest{Method: r.Method, Path: r.URL.EscapedPath(), ContentType: r.Header.Get("Content-Type")}
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &rec.Body)
		}
		fs.last.Store(rec)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(fs.Close)
	return fs
}

func (fs *fakeServer) client() *HTTP {
	return newHTTP(fs.URL, manifest.HTTPEndpoints{})
}

func (fs *fakeServer) lastRequest(t *testing.T) *recordedRequest {
	t.Helper()
	rec := fs.last.Load()
	if rec == nil {
		t.Fatal("server received no request")
	}
	return rec
}
