// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package auth

import (
	"encoding/json"
	"net/http"
	"net/url"

	"fdoconf/cli/internal/keychain"
)

// storedCookie is the keychain representation of one server cookie.
type storedCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// restoreSession loads saved cookies for u into jar. No saved session is not an error.
func restoreSession(jar http.CookieJar, u *url.URL) error {
	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	data, err := km.LoadSession()
	if err != nil || len(data) == 0 {
		return err
	}

	var stored []storedCookie
	if err := json.Unmarshal(data, &stored); err != nil {
		return err
	}
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, c := range stored {
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: "/"})
	}
	jar.SetCookies(u, cookies)
	return nil
}

// persistSession saves the cookies the jar holds for u.
func persistSession(jar http.CookieJar, u *url.URL) error {
	cookies := jar.Cookies(u)
	stored := make([]storedCookie, 0, len(cookies))
	for _, c := range cookies {
		stored = append(stored, storedCookie{Name: c.Name, Value: c.Value})
	}
	b, err := json.Marshal(stored)
	if err != nil {
		return err
	}

	km, err := keychain.GetManager()
	if err != nil {
		return err
	}
	return km.SaveSession(b)
}
