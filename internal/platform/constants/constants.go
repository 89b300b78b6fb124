// Copyright (c) 2026 Wobble Private Server. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire server.

It defines default timeouts, header keys, and the canned gameplay values that
the stub endpoints hand back to the client.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Headers: cross-cutting HTTP header names.
  - Gameplay Defaults: placeholder values returned by stubbed game routes.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "wobble-ps"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout bounds how long a client may take to send headers.
	DefaultReadHeaderTimeout = 5 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderAuthorization = "Authorization"
)

// # Gameplay Defaults

// Placeholder values. The real backend presumably derives these from player
// progress; until the relevant traffic is understood they stay hardcoded.
const (
	// StartingLevel is the level assigned to a freshly created user.
	StartingLevel = 1

	// StartingCoins is the coin balance assigned to a freshly created user.
	StartingCoins = 1000

	// StubStageID is the stage handed to every game-start call.
	StubStageID = 1

	// StubDifficulty is the difficulty handed to every game-start call.
	StubDifficulty = "normal"
)

// # Canned Messages

const (
	// MessageRoot is returned by the root health route.
	MessageRoot = "Wibble Wobble Private Server - Running"

	// MessageHealth is returned by /api/health.
	MessageHealth = "Server is running"

	// MessageLoginOK is returned by a successful login.
	MessageLoginOK = "Login successful"

	// MessageInvalidSession is returned by a failed session check.
	MessageInvalidSession = "Invalid session"

	// MessageUnauthorized is returned by a failed profile fetch.
	MessageUnauthorized = "Unauthorized"
)

// # Timestamp Encoding

// TimestampLayout renders times the way the client expects: ISO-8601 with
// microsecond precision and no zone designator (local server time).
const TimestampLayout = "2006-01-02T15:04:05.999999"
