// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"

	apierrors "fdoconf/cli/internal/errors"
)

// ProviderGithub is the only OAuth2 provider exposed to callers.
const ProviderGithub = "github"

// GetGithubRedirectURL returns the GitHub authorization URL.
func (h *HTTP) GetGithubRedirectURL(ctx context.Context) (string, error) {
	return h.getRedirectURL(ctx, ProviderGithub)
}

// getRedirectURL calls GET /api/oauth2/{provider}/init and extracts redirect_url
// from an "ok" envelope.
func (h *HTTP) getRedirectURL(ctx context.Context, provider string) (string, error) {
	res, err := h.call(ctx, http.MethodGet, h.endpoints.OAuth2InitPath(provider), nil)
	if err != nil {
		return "", err
	}
	if err := res.EnvelopeErr(); err != nil {
		return "", err
	}

	redirect, ok := res.Field("redirect_url")
	if !ok || redirect == "" {
		e := apierrors.New(apierrors.UnexpectedResponse, "unexpected error: missing redirect_url")
		e.StatusCode = res.StatusCode
		return "", e
	}
	return redirect, nil
}
