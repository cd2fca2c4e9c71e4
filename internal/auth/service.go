// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"

	"fdoconf/cli/internal/backend"
	"fdoconf/cli/internal/keychain"
	"fdoconf/cli/internal/manifest"

	"github.com/rs/zerolog/log"
)

// Service centralizes authentication-related operations against the backend
// and local secure storage/state.
type Service struct {
	be      backend.API
	jar     *cookiejar.Jar
	baseURL *url.URL
}

// NewService constructs an auth Service for the server described by m.
// A session saved by an earlier run is loaded into the client's cookie jar.
func NewService(m *manifest.Manifest, opts ...backend.Option) (*Service, error) {
	u, err := url.Parse(m.HTTPBaseURL())
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	if err := restoreSession(jar, u); err != nil {
		// Without a keychain every command still works, just without a saved session.
		log.Debug().Err(err).Msg("could not restore session")
	}

	opts = append(opts, backend.WithCookieJar(jar))
	return &Service{
		be:      backend.New(m.HTTPBaseURL(), m.HTTP, opts...),
		jar:     jar,
		baseURL: u,
	}, nil
}

// Login authenticates with email and password and stores the new session.
func (s *Service) Login(ctx context.Context, email, password string) error {
	if err := s.be.Login(ctx, email, password); err != nil {
		return err
	}
	s.rememberLogin(email)
	return nil
}

// LoginOnprem starts an on-premise session and stores it.
func (s *Service) LoginOnprem(ctx context.Context) error {
	if err := s.be.LoginOnprem(ctx); err != nil {
		return err
	}
	s.rememberLogin(AccountOnprem)
	return nil
}

// rememberLogin persists the session cookie and login state. Storage failures
// are logged: the login itself already succeeded on the server.
func (s *Service) rememberLogin(account string) {
	if err := persistSession(s.jar, s.baseURL); err != nil {
		log.Warn().Err(err).Msg("session could not be stored; you will need to log in again next time")
	}
	if err := SetLoggedIn(account); err != nil {
		log.Debug().Err(err).Msg("auth state could not be stored")
	}
}

// Register creates a new account. It does not log in.
func (s *Service) Register(ctx context.Context, req backend.RegistrationRequest) error {
	return s.be.Register(ctx, req)
}

// IsLoggedIn asks the server whether the stored session is valid. A negative
// answer only marks the local state as logged out: the session cookie stays,
// since the answer may come from a server that is briefly unavailable.
func (s *Service) IsLoggedIn(ctx context.Context) (bool, error) {
	ok, err := s.be.IsLoggedIn(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		s.markLoggedOut()
	}
	return ok, nil
}

// markLoggedOut drops the login state but keeps the stored session cookie.
// Only Logout and ResetLocalAuth remove the cookie.
func (s *Service) markLoggedOut() {
	if err := Clear(); err != nil {
		log.Debug().Err(err).Msg("auth state could not be cleared")
	}
}

// WhoAmI returns the account of the current session.
// When the server is unreachable it falls back to the last known local state
// and returns the network error alongside it.
func (s *Service) WhoAmI(ctx context.Context) (string, bool, error) {
	ok, err := s.IsLoggedIn(ctx)
	if err == nil {
		if !ok {
			return "", false, nil
		}
		st, _ := Load()
		if st.Account == "" {
			return "user", true, nil
		}
		return st.Account, true, nil
	}

	st, lerr := Load()
	if lerr == nil && st.LoggedIn && st.Account != "" {
		return st.Account, true, err
	}
	return "", false, err
}

// EnsureLoggedIn forwards to the backend check; a navigation to the root route
// also marks the local state as logged out.
func (s *Service) EnsureLoggedIn(ctx context.Context, nav backend.Navigator) error {
	return s.be.EnsureUserIsLoggedIn(ctx, backend.NavigatorFunc(func(path string) {
		if path == backend.RootRoute {
			s.markLoggedOut()
		}
		nav.Navigate(path)
	}))
}

// Logout performs remote logout and clears local credentials/state whatever
// the server answered.
func (s *Service) Logout(ctx context.Context) (bool, error) {
	ok, err := s.be.Logout(ctx)
	if rerr := s.ResetLocalAuth(); rerr != nil {
		log.Debug().Err(rerr).Msg("local auth could not be cleared")
	}
	return ok, err
}

// ResetLocalAuth clears only local credentials/state (no remote calls).
func (s *Service) ResetLocalAuth() error {
	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.ClearAuth()
}

// PurgeTests removes the user's test runs on the server.
func (s *Service) PurgeTests(ctx context.Context) (bool, error) {
	return s.be.PurgeTests(ctx)
}

// Config returns the server's user config body.
func (s *Service) Config(ctx context.Context) (any, error) {
	return s.be.GetConfig(ctx)
}

// GithubRedirectURL returns the URL that starts GitHub sign-in.
func (s *Service) GithubRedirectURL(ctx context.Context) (string, error) {
	return s.be.GetGithubRedirectURL(ctx)
}
