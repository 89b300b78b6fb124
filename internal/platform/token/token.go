// Copyright (c) 2026 Wobble Private Server. All rights reserved.

/*
Package token generates and describes session tokens for the private server.

# Format

Tokens follow the exact layout the reverse-engineered client was observed to
accept:

	session_<user_id>_<fractional-epoch-seconds>

The fractional timestamp carries microsecond precision. The format is
guessable on purpose: the server exists to keep a game client alive for
traffic analysis, not to protect anything. Do not "upgrade" it to a random
or signed token without re-validating the client against the new shape.
*/
package token

import (
	"fmt"
	"strings"
	"time"
)

// Prefix is the leading marker shared by every session token.
const Prefix = "session_"

// Generate builds a session token for the given user at the given instant.
//
// Two logins by the same user in the same microsecond produce the same
// token. The client never logs in that fast, so the collision is accepted
// rather than papered over.
func Generate(userID string, issuedAt time.Time) string {
	seconds := float64(issuedAt.UnixMicro()) / 1e6
	return fmt.Sprintf("%s%s_%.6f", Prefix, userID, seconds)
}

// FromAuthorizationHeader extracts the raw token from an Authorization
// header value, stripping a single "Bearer " prefix when present.
//
// The client has been observed sending both "Bearer <token>" and the bare
// token, so both are accepted. An empty header yields an empty token.
func FromAuthorizationHeader(header string) string {
	return strings.TrimPrefix(header, "Bearer ")
}

// Principal identifies the session resolved for an authenticated request.
//
// It is injected into the request context by the Authenticate middleware and
// read back by protected handlers. It deliberately carries only identifiers,
// never full records: handlers fetch current state from the store themselves.
type Principal struct {
	// Token is the session token presented by the client.
	Token string

	// UserID is the user the session was issued to.
	UserID string

	// DeviceID is the device the session was issued to.
	DeviceID string
}
