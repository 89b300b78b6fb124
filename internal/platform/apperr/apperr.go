// Copyright (c) 2026 Wobble Private Server. All rights reserved.

/*
Package apperr defines the centralized error handling framework for the server.

It provides a rich error type that bridges the gap between domain errors and
HTTP responses.

Architecture:

  - AppError: A struct containing a machine-readable Code and a client-facing message.
  - Mapping: Explicit mapping from AppError to standard HTTP status codes.

The taxonomy here is deliberately short. The server absorbs almost every fault
(malformed bodies, unknown endpoints) into canned success responses; the only
error class a client can ever observe is Unauthorized on the two protected
routes, with Internal reserved for recovered panics.
*/
package apperr

import (
	"errors"
	"net/http"
)

// AppError is the canonical error type for the private server.
//
// # Security
//
// The Cause field is for server-side logging only and is never sent to clients.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "UNAUTHORIZED").
	Code string `json:"code"`
	// Message is a human-readable description safe to return to the client.
	Message string `json:"error"`
	// HTTPStatus is the HTTP response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error, used for server-side logging only.
	Cause error `json:"-"`
}

// Error implements the error interface. It returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Client Errors (4xx)

// Unauthorized creates a 401 [AppError].
//
// This is the only failure the game client is ever shown: an invalid or
// missing session token on a protected route.
func Unauthorized(msg string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    msg,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// # Server Errors (5xx)

// Internal creates a 500 [AppError] wrapping an unexpected server-side error.
// The cause is stored for logging but is never sent to the client.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// IsAppError reports whether err (or any error in its chain) is an [*AppError].
func IsAppError(err error) bool {
	var ae *AppError
	return errors.As(err, &ae)
}

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}
