// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"net/http"
	"net/http/httputil"

	"github.com/rs/zerolog/log"
)

// DebugTransport dumps every request and response to the debug log with
// credentials masked.
type DebugTransport struct {
	Base http.RoundTripper
}

// NewDebugTransport wraps base, or http.DefaultTransport when base is nil.
func NewDebugTransport(base http.RoundTripper) *DebugTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &DebugTransport{Base: base}
}

func (t *DebugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(req, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Str("request_dump", Mask(string(reqDump))).Msg("HTTP request")
	}

	resp, err := t.Base.RoundTrip(req)
	if err != nil {
		log.Debug().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		log.Debug().Str("method", req.Method).Str("url", req.URL.String()).Int("status_code", resp.StatusCode).Str("response_dump", Mask(string(respDump))).Msg("HTTP response")
	}
	return resp, nil
}
