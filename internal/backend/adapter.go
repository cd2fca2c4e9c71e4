// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides the client for the conformance server user API.
// Every operation issues exactly one HTTP request and maps the answer onto one of
// two failure channels: an error for login, registration and redirect lookup, or a
// plain false for the login-state, logout and purge checks.
package backend

import "context"

// API defines backend operations the CLI depends on.
// Implementations may call the real HTTP endpoints or provide mocks for tests.
type API interface {
	// Login authenticates with email and password. It fails locally when both are empty.
	Login(ctx context.Context, email, password string) error
	// IsLoggedIn reports whether the server accepts the current session.
	// Any non-200 answer yields false with a nil error.
	IsLoggedIn(ctx context.Context) (bool, error)
	// GetConfig returns the decoded config body regardless of the response status.
	GetConfig(ctx context.Context) (any, error)
	// LoginOnprem starts a session on an on-premise build without credentials.
	LoginOnprem(ctx context.Context) error
	// EnsureUserIsLoggedIn navigates to the root route when the session is not valid.
	EnsureUserIsLoggedIn(ctx context.Context, nav Navigator) error
	Logout(ctx context.Context) (bool, error)
	PurgeTests(ctx context.Context) (bool, error)
	Register(ctx context.Context, req RegistrationRequest) error
	// GetGithubRedirectURL returns the URL that starts the GitHub OAuth2 flow.
	GetGithubRedirectURL(ctx context.Context) (string, error)
}

// Navigator moves the user interface to another route.
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// RootRoute is where EnsureUserIsLoggedIn sends users without a session.
const RootRoute = "/"

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegistrationRequest carries the fields of a new account.
// PasswordRepeat is only checked locally and never sent.
type RegistrationRequest struct {
	Email          string `json:"email" validate:"required"`
	Password       string `json:"password" validate:"required"`
	PasswordRepeat string `json:"-" validate:"required,eqfield=Password"`
	Name           string `json:"name" validate:"required"`
	Company        string `json:"company" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
}
