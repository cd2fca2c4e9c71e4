// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages, so callers can tell a rejected request apart from
// input that never left the machine.
//
// The package supports wrapping underlying errors while maintaining error kind information.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// InvalidInput indicates credentials rejected locally before any request.
	InvalidInput Kind = "invalid_input"
	// MissingField indicates a registration field left empty.
	MissingField Kind = "missing_field"
	// PasswordMismatch indicates password and its repetition differ.
	PasswordMismatch Kind = "password_mismatch"
	// RequestFailed indicates the server answered with a non-200 status.
	RequestFailed Kind = "request_failed"
	// UnexpectedResponse indicates a 200 answer whose envelope status was not "ok".
	UnexpectedResponse Kind = "unexpected_response"
)

// Sentinels for errors.Is matching by kind.
var (
	ErrInvalidInput       = &E{Kind: InvalidInput}
	ErrMissingField       = &E{Kind: MissingField}
	ErrPasswordMismatch   = &E{Kind: PasswordMismatch}
	ErrRequestFailed      = &E{Kind: RequestFailed}
	ErrUnexpectedResponse = &E{Kind: UnexpectedResponse}
)

// E wraps an error with kind and human-friendly message.
// StatusCode is the HTTP status when the error came from a server response.
type E struct {
	Kind       Kind
	Message    string
	StatusCode int
	Err        error
}

// Error returns the human-readable message, so a rejected request reads as the
// server's errorMessage (or status text). Use Kind to tell failures apart.
func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *E) Unwrap() error { return e.Err }

// Is reports whether target is an *E of the same kind.
func (e *E) Is(target error) bool {
	t, ok := target.(*E)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// Status builds a RequestFailed error for an HTTP status and its resolved reason.
func Status(code int, reason string) *E {
	return &E{Kind: RequestFailed, Message: reason, StatusCode: code}
}

// KindOf returns the kind of the first *E in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// MessageOf returns the human-readable message of the first *E in err's chain,
// falling back to err.Error().
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var e *E
	if stderrors.As(err, &e) && e.Message != "" {
		return e.Message
	}
	return err.Error()
}
