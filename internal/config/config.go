// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the session cookie goes to the OS keychain.
//
// Values are layered: built-in defaults, then config.json, then FDOCONF_*
// environment variables, then command-line flags (applied by the caller).
// A .env file in the working directory feeds the environment layer without
// overriding variables that are already set.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fdoconf/cli/internal/manifest"
	"fdoconf/cli/internal/xdg"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultBaseURL is where a locally started conformance server listens.
const DefaultBaseURL = "http://localhost:8080"

// EnvPrefix prefixes every environment override, e.g. FDOCONF_URL.
const EnvPrefix = "FDOCONF"

// Config holds non-sensitive CLI settings.
type Config struct {
	BaseURL   string                 `json:"base_url"`
	LogLevel  string                 `json:"log_level"`
	Verbose   bool                   `json:"verbose,omitempty"`
	Endpoints manifest.HTTPEndpoints `json:"endpoints,omitempty"`
}

// env lists the settings that may come from the environment.
type env struct {
	URL      string `envconfig:"URL"`
	LogLevel string `envconfig:"LOG_LEVEL"`
	Verbose  bool   `envconfig:"VERBOSE"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		BaseURL:  DefaultBaseURL,
		LogLevel: "info",
	}
}

// path returns the path to the config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; a missing file returns defaults. Empty fields in
// the file keep their default values.
func Load() (Config, error) {
	c := Defaults()
	p, err := path()
	if err != nil {
		return c, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return c, err
	}
	var fromFile Config
	if err := json.Unmarshal(data, &fromFile); err != nil {
		return c, fmt.Errorf("parse %s: %w", p, err)
	}
	return merge(c, fromFile), nil
}

// ApplyEnv overlays FDOCONF_* environment variables onto c.
func ApplyEnv(c Config) (Config, error) {
	var e env
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return c, fmt.Errorf("read environment: %w", err)
	}
	return merge(c, Config{BaseURL: e.URL, LogLevel: e.LogLevel, Verbose: e.Verbose}), nil
}

// DotenvFile is read from the working directory by Resolve when present.
const DotenvFile = ".env"

// Resolve loads the file and environment layers.
func Resolve() (Config, error) {
	c, err := Load()
	if err != nil {
		return c, err
	}
	if err := godotenv.Load(DotenvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return c, fmt.Errorf("read %s: %w", DotenvFile, err)
	}
	return ApplyEnv(c)
}

// merge returns base with every non-empty field of over applied.
func merge(base, over Config) Config {
	if s := strings.TrimSpace(over.BaseURL); s != "" {
		base.BaseURL = s
	}
	if s := strings.TrimSpace(over.LogLevel); s != "" {
		base.LogLevel = strings.ToLower(s)
	}
	if over.Verbose {
		base.Verbose = true
	}
	if over.Endpoints != (manifest.HTTPEndpoints{}) {
		base.Endpoints = over.Endpoints
	}
	return base
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
