// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"fmt"
	"testing"

	apierrors "fdoconf/cli/internal/errors"

	"github.com/pterm/pterm"
)

func TestPresentError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "api error shows message only", err: apierrors.Status(401, "Invalid email or password"), want: "login: Invalid email or password"},
		{name: "wrapped api error", err: fmt.Errorf("ctx: %w", apierrors.New(apierrors.MissingField, "missing required field")), want: "login: missing required field"},
		{name: "plain error is masked", err: errors.New("dial failed for token=abc"), want: "login: dial failed for token=***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PresentError("login", tt.err); got != tt.want {
				t.Errorf("PresentError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShowAPIError(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	if ShowAPIError("login", errors.New("connection refused")) {
		t.Error("plain error must not be handled as API error")
	}
	if !ShowAPIError("login", apierrors.Status(500, "boom")) {
		t.Error("API error not handled")
	}
}
