// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth joins the conformance server API with local credential storage.
// The server identifies a user by its session cookie; this package keeps that
// cookie in the OS keychain between CLI runs together with a small State record
// used to answer "who am I" when the server cannot be reached.
package auth

// State represents persisted authentication state for the current user.
type State struct {
	LoggedIn bool   `json:"logged_in"`
	Account  string `json:"account"`
}

// AccountOnprem is recorded for sessions started by on-premise login.
const AccountOnprem = "onprem"

// SetLoggedIn marks account as logged in.
func SetLoggedIn(account string) error {
	return Save(State{LoggedIn: true, Account: account})
}
