// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"errors"
	"net/http"
	"testing"

	apierrors "fdoconf/cli/internal/errors"
)

func TestGetGithubRedirectURL(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, `{"status":"ok","redirect_url":"https://github.com/login/oauth/authorize?client_id=x&state=y"}`)

	got, err := fs.client().GetGithubRedirectURL(context.Background())
	if err != nil {
		t.Fatalf("GetGithubRedirectURL() error = %v", err)
	}
	if got != "https://github.com/login/oauth/authorize?client_id=x&state=y" {
		t.Errorf("redirect = %q", got)
	}
	rec := fs.lastRequest(t)
	if rec.Method != http.MethodGet || rec.Path != "/api/oauth2/github/init" {
		t.Errorf("request = %s %s", rec.Method, rec.Path)
	}
}

func TestGetRedirectURLProviderInPath(t *testing.T) {
	fs := newFakeServer(t, http.StatusOK, `{"status":"ok","redirect_url":"https://accounts.example.org/auth"}`)

	if _, err := fs.client().getRedirectURL(context.Background(), "google"); err != nil {
		t.Fatalf("getRedirectURL() error = %v", err)
	}
	if rec := fs.lastRequest(t); rec.Path != "/api/oauth2/google/init" {
		t.Errorf("path = %q", rec.Path)
	}
}

func TestGetRedirectURLUnexpected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "status not ok", body: `{"status":"failed","redirect_url":"https://x"}`},
		{name: "status missing", body: `{"redirect_url":"https://x"}`},
		{name: "redirect missing", body: `{"status":"ok"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := newFakeServer(t, http.StatusOK, tt.body)
			_, err := fs.client().GetGithubRedirectURL(context.Background())
			if !errors.Is(err, apierrors.ErrUnexpectedResponse) {
				t.Fatalf("error = %v, want unexpected response", err)
			}
		})
	}
}
