// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package manifest describes where the conformance server exposes its user API.
package manifest

import (
	"fmt"
	"net/url"
	"strings"
)

// ProviderPlaceholder is substituted with the OAuth2 provider name in OAuth2Init.
const ProviderPlaceholder = "{provider}"

// Manifest represents the resolved server location and endpoint paths.
type Manifest struct {
	BaseURL string        `json:"base_url"`
	HTTP    HTTPEndpoints `json:"http"`
}

// HTTPEndpoints contains REST API endpoint paths.
type HTTPEndpoints struct {
	Login       string `json:"login,omitempty"`        // e.g., "/api/user/login"
	LoggedIn    string `json:"logged_in,omitempty"`    // e.g., "/api/user/loggedin"
	Config      string `json:"config,omitempty"`       // e.g., "/api/user/config"
	LoginOnprem string `json:"login_onprem,omitempty"` // e.g., "/api/user/login/onprem"
	Logout      string `json:"logout,omitempty"`       // e.g., "/api/user/logout"
	PurgeTests  string `json:"purge_tests,omitempty"`  // e.g., "/api/user/purgetests"
	Register    string `json:"register,omitempty"`     // e.g., "/api/user/register"
	OAuth2Init  string `json:"oauth2_init,omitempty"`  // e.g., "/api/oauth2/{provider}/init"
}

// DefaultEndpoints returns the paths served by the conformance server.
func DefaultEndpoints() HTTPEndpoints {
	return HTTPEndpoints{
		Login:       "/api/user/login",
		LoggedIn:    "/api/user/loggedin",
		Config:      "/api/user/config",
		LoginOnprem: "/api/user/login/onprem",
		Logout:      "/api/user/logout",
		PurgeTests:  "/api/user/purgetests",
		Register:    "/api/user/register",
		OAuth2Init:  "/api/oauth2/" + ProviderPlaceholder + "/init",
	}
}

// WithDefaults returns a copy where every empty path is taken from DefaultEndpoints.
func (e HTTPEndpoints) WithDefaults() HTTPEndpoints {
	d := DefaultEndpoints()
	pick := func(v, def string) string {
		if strings.TrimSpace(v) == "" {
			return def
		}
		return v
	}
	return HTTPEndpoints{
		Login:       pick(e.Login, d.Login),
		LoggedIn:    pick(e.LoggedIn, d.LoggedIn),
		Config:      pick(e.Config, d.Config),
		LoginOnprem: pick(e.LoginOnprem, d.LoginOnprem),
		Logout:      pick(e.Logout, d.Logout),
		PurgeTests:  pick(e.PurgeTests, d.PurgeTests),
		Register:    pick(e.Register, d.Register),
		OAuth2Init:  pick(e.OAuth2Init, d.OAuth2Init),
	}
}

// OAuth2InitPath returns the redirect lookup path for provider.
func (e HTTPEndpoints) OAuth2InitPath(provider string) string {
	return strings.ReplaceAll(e.OAuth2Init, ProviderPlaceholder, url.PathEscape(provider))
}

// New validates baseURL and builds a Manifest with defaults applied to endpoints.
func New(baseURL string, endpoints HTTPEndpoints) (*Manifest, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid server url %q: scheme must be http or https", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid server url %q: missing host", baseURL)
	}
	return &Manifest{BaseURL: strings.TrimRight(u.String(), "/"), HTTP: endpoints.WithDefaults()}, nil
}

// HTTPBaseURL returns the base URL without a trailing slash.
func (m *Manifest) HTTPBaseURL() string {
	return strings.TrimRight(m.BaseURL, "/")
}

// Host returns the host:port part of the base URL.
func (m *Manifest) Host() string {
	u, err := url.Parse(m.BaseURL)
	if err != nil {
		return ""
	}
	return u.Host
}
