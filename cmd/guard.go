// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"

	"fdoconf/cli/internal/auth"
	"fdoconf/cli/internal/backend"
)

// loginRedirect is the CLI's navigator: a web client would show the login page
// at the root route, the CLI stops the command and asks the user to log in.
type loginRedirect struct {
	redirected bool
}

func (l *loginRedirect) Navigate(path string) {
	if path == backend.RootRoute {
		l.redirected = true
	}
}

// requireLogin fails with errNotLoggedIn when the server rejects the session.
func requireLogin(ctx context.Context, svc *auth.Service) error {
	nav := &loginRedirect{}
	if err := svc.EnsureLoggedIn(ctx, nav); err != nil {
		return err
	}
	if nav.redirected {
		return errNotLoggedIn
	}
	return nil
}
