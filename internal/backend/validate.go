// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	stderrors "errors"

	apierrors "fdoconf/cli/internal/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateRegistration checks req before anything is sent. An empty field
// wins over a password mismatch.
func validateRegistration(req RegistrationRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return err
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return apierrors.New(apierrors.MissingField, "missing required field")
		}
	}
	return apierrors.New(apierrors.PasswordMismatch, "passwords do not match")
}
