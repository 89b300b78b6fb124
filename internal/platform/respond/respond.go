// Copyright (c) 2026 Wobble Private Server. All rights reserved.

/*
Package respond provides HTTP response helpers used by all API handlers.

# Architecture

This package centralizes the presentation logic for HTTP responses. Every
reply the server produces — named route, protected-route failure, or
catch-all stub — goes through the same envelope:

	{"success": bool, "timestamp": "<ISO-8601>", "message": "...", "data": {...}}

The envelope shape is load-bearing: the reverse-engineered client parses it,
so handlers must never write ad-hoc JSON around this package.
*/
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/moritakane/wobble/internal/platform/apperr"
	"github.com/moritakane/wobble/internal/platform/constants"
	"github.com/moritakane/wobble/internal/platform/ctxutil"
)

// Envelope is the uniform JSON wrapper returned by every route.
type Envelope struct {
	Success   bool   `json:"success"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
	// Data is included only when non-nil. Callers that have nothing to
	// attach pass nil rather than an empty map, mirroring the envelope the
	// client was recorded against.
	Data any `json:"data,omitempty"`
}

// Build assembles an [Envelope] stamped with the current server time.
//
// Pure function of its inputs plus the clock; it performs no I/O, which is
// what the envelope tests lean on.
func Build(success bool, data any, message string) Envelope {
	return Envelope{
		Success:   success,
		Timestamp: time.Now().Format(constants.TimestampLayout),
		Message:   message,
		Data:      data,
	}
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload interface{}) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// Success writes a 200 OK envelope with success=true.
func Success(writer http.ResponseWriter, data any, message string) {
	JSON(writer, http.StatusOK, Build(true, data, message))
}

// Failure writes an envelope with success=false and the given status code.
func Failure(writer http.ResponseWriter, statusCode int, message string) {
	JSON(writer, statusCode, Build(false, nil, message))
}

// Error converts any Go error into a standardized failure envelope.
//
// Errors that are not an [*apperr.AppError] indicate a server-side bug; they
// are logged in full and surfaced as a generic 500 so internals never leak.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	var appError *apperr.AppError
	if !errors.As(err, &appError) {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
		)
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= 500 {
		logger := ctxutil.GetLogger(request.Context())
		logger.ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	Failure(writer, appError.HTTPStatus, appError.Message)
}
