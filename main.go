// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package main is the entry point for the fdoconf CLI.
// It provides a command-line client for the FDO conformance server user API.
package main

import (
	"fdoconf/cli/cmd"
)

// main is the entry point for the fdoconf CLI.
func main() {
	cmd.Execute()
}
