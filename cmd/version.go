// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import "runtime"

var (
	// Version holds the CLI version information.
	// This value is typically set at build time using -ldflags.
	Version = "0.0.0-dev"
)

// userAgent identifies the CLI to the server, e.g. "fdoconf-cli/1.2.0 (linux)".
func userAgent() string {
	return "fdoconf-cli/" + Version + " (" + runtime.GOOS + ")"
}
