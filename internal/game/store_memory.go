// Copyright (c) 2026 Wobble Private Server. All rights reserved.

package game

import (
	"context"
	"sync"
)

// MemoryStore holds all server state: two maps living for the process
// lifetime, populated by login calls and discarded at termination.
//
// # Lifecycle
//
// No eviction, no size bound, no persistence. Unbounded growth is inherent
// to the tool: it runs on an operator's bench for the length of a traffic
// capture session, not in production.
//
// # Concurrency
//
// The maps are guarded by a single RWMutex. net/http serves every request
// on its own goroutine, so unguarded maps would be a data race, not merely
// an occasional inconsistency.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]*User
	sessions map[string]*Session
}

// Interface conformance.
var (
	_ UserRepository    = (*MemoryStore)(nil)
	_ SessionRepository = (*MemoryStore)(nil)
)

// NewMemoryStore constructs an empty [MemoryStore].
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]*User),
		sessions: make(map[string]*Session),
	}
}

// # UserRepository

// FindByID returns the player with the given user ID.
func (store *MemoryStore) FindByID(_ context.Context, userID string) (*User, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	user, found := store.users[userID]
	return user, found
}

// CreateIfAbsent persists the player only when the user ID is free and
// returns the authoritative record either way.
//
// Records handed out are the stored pointers themselves. That is safe only
// because nothing mutates a User after creation; any future route that
// changes player state must copy-on-write instead.
func (store *MemoryStore) CreateIfAbsent(_ context.Context, user *User) *User {
	store.mu.Lock()
	defer store.mu.Unlock()

	if existing, found := store.users[user.UserID]; found {
		return existing
	}
	store.users[user.UserID] = user
	return user
}

// # SessionRepository

// Create persists a freshly minted session.
//
// A token collision (same user, same microsecond) overwrites the previous
// entry with an identical record, which is indistinguishable to callers.
func (store *MemoryStore) Create(_ context.Context, session *Session) {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.sessions[session.Token] = session
}

// FindByToken returns the session matching the given token.
func (store *MemoryStore) FindByToken(_ context.Context, token string) (*Session, bool) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	session, found := store.sessions[token]
	return session, found
}

// # Diagnostics

// Counts reports how many users and sessions are currently held. Intended
// for tests and operator logging, not for request handling.
func (store *MemoryStore) Counts() (users, sessions int) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return len(store.users), len(store.sessions)
}
