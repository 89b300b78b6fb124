// Copyright (c) 2026 Wobble Private Server. All rights reserved.

package game

import "context"

// # User Data Access

// UserRepository defines the data access contract for player records.
type UserRepository interface {

	/*
		FindByID returns the player with the given user ID.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - *User: Hydrated record
		  - bool: Whether the player exists
	*/
	FindByID(context context.Context, userID string) (*User, bool)

	/*
		CreateIfAbsent persists the player only when the user ID is not yet
		taken, and returns the authoritative record either way.

		The check-and-insert is a single atomic step so that concurrent first
		logins for the same user ID cannot double-initialize the record.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - *User: The stored record (the existing one on a repeat login)
	*/
	CreateIfAbsent(context context.Context, user *User) *User
}

// # Session Data Access

// SessionRepository defines the data access contract for issued sessions.
//
// There is deliberately no Revoke or Delete: the observed backend never
// invalidates a session, and repeated logins stack new sessions on top of
// old ones. Keep that permissive behavior unless the client proves otherwise.
type SessionRepository interface {

	/*
		Create persists a freshly minted session.

		Parameters:
		  - context: context.Context
		  - session: *Session
	*/
	Create(context context.Context, session *Session)

	/*
		FindByToken returns the session matching the given token.

		Parameters:
		  - context: context.Context
		  - token: string

		Returns:
		  - *Session: Hydrated record
		  - bool: Whether the token was ever issued
	*/
	FindByToken(context context.Context, token string) (*Session, bool)
}
