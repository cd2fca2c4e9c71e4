// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"errors"
	"fmt"
	"net/http"

	apierrors "fdoconf/cli/internal/errors"

	"github.com/pterm/pterm"
)

// PresentError formats an error for user display with masking.
func PresentError(context string, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", context, Mask(apierrors.MessageOf(err)))
}

// ShowAPIError prints a kinded API error with a hint matching its category.
// It reports false for errors that did not come from the API contract, leaving
// them to the network error presenter.
func ShowAPIError(context string, err error) bool {
	kind := apierrors.KindOf(err)
	if kind == "" {
		return false
	}

	pterm.Error.Println(PresentError(context, err))
	switch kind {
	case apierrors.InvalidInput, apierrors.MissingField, apierrors.PasswordMismatch:
		pterm.Info.Println("Nothing was sent to the server. Check the values and try again.")
	case apierrors.RequestFailed:
		var e *apierrors.E
		if errors.As(err, &e) {
			switch {
			case e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden:
				pterm.Info.Println("The server refused the request. Run 'fdoconf login' if your session expired.")
			case e.StatusCode >= 500:
				pterm.Info.Println("The conformance server reported an internal error. Try again later.")
			}
		}
	case apierrors.UnexpectedResponse:
		pterm.Info.Println("The server answered, but not in the expected format. Is --url pointing at a conformance server?")
	}
	return true
}
