// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"

	apierrors "fdoconf/cli/internal/errors"
)

// Login posts {email, password} to /api/user/login.
// Only the case where both values are empty is rejected locally; everything else
// is left to the server.
func (h *HTTP) Login(ctx context.Context, email, password string) error {
	if email == "" && password == "" {
		return apierrors.New(apierrors.InvalidInput, "missing email and/or password")
	}

	res, err := h.call(ctx, http.MethodPost, h.endpoints.Login, Credentials{Email: email, Password: password})
	if err != nil {
		return err
	}
	return res.Err()
}

// LoginOnprem posts to /api/user/login/onprem. On-premise builds issue a session
// without credentials.
func (h *HTTP) LoginOnprem(ctx context.Context) error {
	res, err := h.call(ctx, http.MethodPost, h.endpoints.LoginOnprem, nil)
	if err != nil {
		return err
	}
	return res.Err()
}

// IsLoggedIn calls GET /api/user/loggedin. Every non-200 answer, with or
// without an errorMessage, is reported as false.
func (h *HTTP) IsLoggedIn(ctx context.Context) (bool, error) {
	res, err := h.call(ctx, http.MethodGet, h.endpoints.LoggedIn, nil)
	if err != nil {
		return false, err
	}
	return res.OK(), nil
}

// EnsureUserIsLoggedIn sends nav to RootRoute when the session is not valid.
// A transport failure is returned without navigating.
func (h *HTTP) EnsureUserIsLoggedIn(ctx context.Context, nav Navigator) error {
	ok, err := h.IsLoggedIn(ctx)
	if err != nil {
		return err
	}
	if !ok {
		nav.Navigate(RootRoute)
	}
	return nil
}

// Logout calls POST /api/user/logout and reports whether the server answered 200.
func (h *HTTP) Logout(ctx context.Context) (bool, error) {
	res, err := h.call(ctx, http.MethodPost, h.endpoints.Logout, nil)
	if err != nil {
		return false, err
	}
	return res.OK(), nil
}

// Register validates req locally, then posts it to /api/user/register.
// The server must answer 200 with status "ok".
func (h *HTTP) Register(ctx context.Context, req RegistrationRequest) error {
	if err := validateRegistration(req); err != nil {
		return err
	}

	res, err := h.call(ctx, http.MethodPost, h.endpoints.Register, req)
	if err != nil {
		return err
	}
	return res.EnvelopeErr()
}
