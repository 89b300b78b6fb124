// Copyright (c) 2026 Wobble Private Server. All rights reserved.

/*
Package middleware provides the cross-cutting HTTP processing chain.

It acts as a series of decorators around the standard http.Handler, injecting
traceability and safety into every request lifecycle.

Standard Stack:

  - Trace: RequestID generation for log correlation.
  - Log: Structured access logging (slog) plus the full traffic dump.
  - Safe: Panic recovery to prevent server crashes.
  - Identity: Lenient session resolution from the Authorization header.

The traffic dump is the whole point of this server: the operator watches it
to discover what the closed game client actually calls. Every request must
pass through it before any handler runs, including requests that end up in
the catch-all.
*/
package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moritakane/wobble/internal/platform/constants"
	"github.com/moritakane/wobble/internal/platform/ctxutil"
	"github.com/moritakane/wobble/internal/platform/respond"
)

// # Request Tracing

// RequestID attaches a correlation ID to every request for log tracing.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// 1. Check if the client already provided an ID
			requestID := request.Header.Get(constants.HeaderXRequestID)

			// 2. Generate a new one if missing (using UUID v7 for time-sortable properties)
			if requestID == "" {
				uuidV7, err := uuid.NewV7()
				if err != nil {
					requestID = uuid.New().String()
				} else {
					requestID = uuidV7.String()
				}
			}

			// 3. Inject into context and response headers
			ctx := ctxutil.WithRequestID(request.Context(), requestID)
			writer.Header().Set(constants.HeaderXRequestID, requestID)

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// # Access Logging

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (recorder *statusRecorder) WriteHeader(code int) {
	recorder.status = code
	recorder.ResponseWriter.WriteHeader(code)
}

// AccessLogger logs every request status and performance metrics.
// It also injects a request-specific logger into the context.
func AccessLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			startTime := time.Now()
			rid := ctxutil.GetRequestID(request.Context())
			ip := RealIP(request)

			// 1. Create a sub-logger for this specific request
			requestLogger := logger.With(
				slog.String("request_id", rid),
				slog.String("method", request.Method),
				slog.String("path", request.URL.Path),
				slog.String("ip", ip),
			)

			// 2. Inject this logger into the context for downstream use
			ctx := ctxutil.WithLogger(request.Context(), requestLogger)
			wrappedWriter := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}

			// 3. Proceed to downstream handlers with the enriched context
			next.ServeHTTP(wrappedWriter, request.WithContext(ctx))

			// 4. Final log entry after the request is finished
			latency := time.Since(startTime).Milliseconds()
			logLevel := slog.LevelInfo

			if wrappedWriter.status >= 500 {
				logLevel = slog.LevelError
			} else if wrappedWriter.status >= 400 {
				logLevel = slog.LevelWarn
			}

			requestLogger.Log(ctx, logLevel, "http_request_finished",
				slog.Int("status", wrappedWriter.status),
				slog.Int64("latency_ms", latency),
				slog.String("user_agent", request.UserAgent()),
			)
		})
	}
}

// # Traffic Capture

// TrafficLogger reproduces every inbound request in the log: method, path,
// all headers, query parameters, and the body.
//
// # Flow
//  1. Read and buffer the request body, then rewind it so the handler can
//     re-read the payload untouched.
//  2. Render the body as structured JSON when it parses, raw text otherwise.
//     A body that fails to parse never fails the request.
//  3. Emit one "inbound_request" event before the handler executes.
//
// bodyLimit caps how many body bytes are reproduced in the log entry; the
// handler always receives the full body regardless.
func TrafficLogger(bodyLimit int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			var bodyBytes []byte
			if request.Body != nil {
				bodyBytes, _ = io.ReadAll(request.Body)
				request.Body = io.NopCloser(bytes.NewReader(bodyBytes))
			}

			logger := ctxutil.GetLogger(request.Context())

			attrs := []any{
				slog.String("method", request.Method),
				slog.String("path", request.URL.Path),
				slog.Any("headers", request.Header),
				slog.Any("query_params", request.URL.Query()),
			}

			if len(bodyBytes) > 0 {
				logged := bodyBytes
				truncated := false
				if bodyLimit > 0 && len(logged) > bodyLimit {
					logged = logged[:bodyLimit]
					truncated = true
				}

				// Structured JSON first, raw payload as the fallback.
				if !truncated && json.Valid(logged) {
					attrs = append(attrs, slog.Any("body_json", json.RawMessage(logged)))
				} else {
					attrs = append(attrs, slog.String("body_raw", string(logged)))
				}
				if truncated {
					attrs = append(attrs, slog.Int("body_truncated_at", bodyLimit))
				}
			}

			logger.Info("inbound_request", attrs...)

			next.ServeHTTP(writer, request)
		})
	}
}

// # Reliability & Safety

// PanicRecovery recovers from panics, logs stack trace, and returns 500.
func PanicRecovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// Defer a recovery function to catch any runtime exceptions
			defer func() {
				if err := recover(); err != nil {

					// Capture the runtime stack trace for diagnostics
					stackTrace := make([]byte, 2048)
					length := runtime.Stack(stackTrace, false)

					// Retrieve the request-specific logger from context if available
					reqLogger := ctxutil.GetLogger(request.Context())

					// Log the incident to our structured logging system
					reqLogger.ErrorContext(request.Context(), "panic_recovered",
						slog.Any("error", err),
						slog.String("stack", string(stackTrace[:length])),
					)

					// Return a safe, generic failure envelope to the client
					respond.Failure(writer, http.StatusInternalServerError, "An unexpected error occurred")
				}
			}()

			next.ServeHTTP(writer, request)
		})
	}
}

// # Middleware Helpers

// RealIP extracts client IP, respecting common proxy headers.
func RealIP(request *http.Request) string {

	// Check standard proxy headers first
	if ip := request.Header.Get(constants.HeaderXRealIP); ip != "" {
		return ip
	}

	if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	// Fallback to the direct connection's address
	host, _, _ := net.SplitHostPort(request.RemoteAddr)
	return host
}
