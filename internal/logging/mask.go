// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides utilities for secure logging and error presentation.
// It masks credentials in anything written to the diagnostic log, configures the
// zerolog logger, and renders API errors for the terminal.
//
// Passwords travel in JSON request bodies and the session lives in a cookie, so
// both shapes are covered alongside the usual key=value and bearer forms.
package logging

import (
	"regexp"
)

var (
	rePassword   = regexp.MustCompile(`(?i)(password=)([^\s;&]+)`)
	reJSONSecret = regexp.MustCompile(`(?i)("(?:password|passwordRepeat|token|access_token|refresh_token)"\s*:\s*")((?:[^"\\]|\\.)*)(")`)
	reToken      = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._-]+)`)
	reCookie     = regexp.MustCompile(`(?im)^((?:set-)?cookie:\s*)([^\r\n]*)`)
	reSession    = regexp.MustCompile(`(?i)(session=)([^\s;]+)`)
)

// Mask replaces sensitive values in the input string with "***".
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reJSONSecret.ReplaceAllString(out, "$1***$3")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reCookie.ReplaceAllString(out, "$1***")
	out = reSession.ReplaceAllString(out, "$1***")
	return out
}
