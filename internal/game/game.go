// Copyright (c) 2026 Wobble Private Server. All rights reserved.

/*
Package game implements the stubbed game backend: user identity, session
issuance, and the canned gameplay endpoints the Wibble Wobble client calls.

It defines the core domain entities (User, Session) and the login/lookup
logic that keeps the client convinced it is talking to the real service.

# Architecture

This layer is the "Truth" of the system, such as it is. Entities defined here
have no external dependencies. Records are created by login and never mutated
afterwards by any observed route; readers may therefore share them freely.
*/
package game

// # Domain Entities

// User represents a player known to the private server.
//
// Created on first login for a given user ID with the starting values below,
// never deleted, and read-only everywhere else. CreatedAt is kept as the
// pre-rendered ISO-8601 string the client expects rather than a time.Time.
type User struct {
	UserID    string   `json:"user_id"`
	DeviceID  string   `json:"device_id"`
	CreatedAt string   `json:"created_at"`
	Level     int      `json:"level"`
	Coins     int      `json:"coins"`
	Yokai     []string `json:"yokai"`
}

// Session represents an issued login session.
//
// One session is minted per login call; earlier sessions for the same user
// stay valid (see the store documentation). The token is the map key in the
// store and is excluded from the serialized record, matching the payload the
// client was recorded against.
type Session struct {
	Token     string `json:"-"`
	UserID    string `json:"user_id"`
	DeviceID  string `json:"device_id"`
	CreatedAt string `json:"created_at"`
}

// GameStart is the stub payload handed to every game-start call.
//
// The values are placeholders; the real backend presumably derives them from
// player progress. They stay fixed until the relevant traffic is decoded.
type GameStart struct {
	StageID    int    `json:"stage_id"`
	Difficulty string `json:"difficulty"`
}

// # Field Identifiers

// Global field names used in request and response payloads of the game domain.
const (
	FieldUserID       = "user_id"
	FieldDeviceID     = "device_id"
	FieldSessionToken = "session_token"
	FieldSession      = "session"
	FieldUser         = "user"
)

// UnknownID is substituted when the client sends no usable identifier at all.
const UnknownID = "unknown"
