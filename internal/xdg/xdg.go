// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package xdg resolves XDG Base Directory paths for fdoconf.
// Configuration lives under $XDG_CONFIG_HOME/fdoconf and local state (the
// file-backed keyring) under $XDG_STATE_HOME/fdoconf, with the usual
// fallbacks below the home directory when the variables are unset.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used below every XDG base directory.
const AppName = "fdoconf"

// ConfigDir returns the XDG config directory for fdoconf, creating it with
// private permissions (0700) if missing.
func ConfigDir() (string, error) {
	return appDir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the XDG state directory for fdoconf, creating it with
// private permissions (0700) if missing.
func StateDir() (string, error) {
	return appDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

// appDir resolves $env/fdoconf, or ~/fallback/fdoconf when env is unset.
func appDir(env, fallback string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, fallback)
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
