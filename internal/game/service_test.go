// Copyright (c) 2026 Wobble Private Server. All rights reserved.

package game_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moritakane/wobble/internal/game"
)

func newService() (*game.Service, *game.MemoryStore) {
	store := game.NewMemoryStore()
	return game.NewService(store, store), store
}

/*
TestService_Login_CreatesUserWithDefaults verifies the starting record.
*/
func TestService_Login_CreatesUserWithDefaults(t *testing.T) {
	service, _ := newService()

	session := service.Login(context.Background(), game.LoginInput{UserID: "p1", DeviceID: "device-1"})

	require.NotNil(t, session)
	assert.True(t, strings.HasPrefix(session.Token, "session_p1_"))

	user := session.User
	require.NotNil(t, user)
	assert.Equal(t, "p1", user.UserID)
	assert.Equal(t, "device-1", user.DeviceID)
	assert.Equal(t, 1, user.Level)
	assert.Equal(t, 1000, user.Coins)

	// yokai must be an empty sequence, not nil, so it serializes as [].
	require.NotNil(t, user.Yokai)
	assert.Empty(t, user.Yokai)

	// created_at is pre-rendered for the client; it must parse back.
	_, err := time.Parse("2006-01-02T15:04:05.999999", user.CreatedAt)
	assert.NoError(t, err)
}

/*
TestService_Login_RepeatKeepsRecord verifies that a second login mints a new
token but returns the identical, unmutated player record.
*/
func TestService_Login_RepeatKeepsRecord(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	first := service.Login(ctx, game.LoginInput{UserID: "p1", DeviceID: "device-1"})

	// Microsecond resolution in the token; make sure the clock moved.
	time.Sleep(5 * time.Microsecond)

	second := service.Login(ctx, game.LoginInput{UserID: "p1", DeviceID: "device-2"})

	assert.NotEqual(t, first.Token, second.Token)
	assert.Same(t, first.User, second.User)
	assert.Equal(t, "device-1", second.User.DeviceID)
	assert.Equal(t, 1000, second.User.Coins)
}

/*
TestService_Login_BothSessionsStayValid verifies the permissive session
policy: logging in again does not invalidate the earlier session.
*/
func TestService_Login_BothSessionsStayValid(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	first := service.Login(ctx, game.LoginInput{UserID: "p1", DeviceID: "device-1"})
	time.Sleep(5 * time.Microsecond)
	second := service.Login(ctx, game.LoginInput{UserID: "p1", DeviceID: "device-1"})

	_, firstOK := service.CheckSession(ctx, first.Token)
	_, secondOK := service.CheckSession(ctx, second.Token)
	assert.True(t, firstOK)
	assert.True(t, secondOK)
}

/*
TestService_CheckSession covers the resolution table.
*/
func TestService_CheckSession(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	issued := service.Login(ctx, game.LoginInput{UserID: "p1", DeviceID: "device-1"})

	t.Run("issued_token", func(t *testing.T) {
		state, found := service.CheckSession(ctx, issued.Token)
		require.True(t, found)
		assert.Equal(t, "p1", state.Session.UserID)
		assert.Same(t, issued.User, state.User)
	})

	t.Run("never_issued_token", func(t *testing.T) {
		state, found := service.CheckSession(ctx, "session_p9_1.000000")
		assert.False(t, found)
		assert.Nil(t, state)
	})
}

/*
TestService_CheckSession_MissingUser verifies the empty-record fallback when
a session points at a user the store does not know.
*/
func TestService_CheckSession_MissingUser(t *testing.T) {
	store := game.NewMemoryStore()
	service := game.NewService(store, store)
	ctx := context.Background()

	// Plant a session with no matching user record.
	store.Create(ctx, &game.Session{Token: "session_ghost_1.000000", UserID: "ghost"})

	state, found := service.CheckSession(ctx, "session_ghost_1.000000")
	require.True(t, found)
	require.NotNil(t, state.User)
	assert.Equal(t, &game.User{}, state.User)
}

/*
TestService_Profile covers token → user resolution.
*/
func TestService_Profile(t *testing.T) {
	service, _ := newService()
	ctx := context.Background()

	issued := service.Login(ctx, game.LoginInput{UserID: "p1", DeviceID: "device-1"})

	user, found := service.Profile(ctx, issued.Token)
	require.True(t, found)
	assert.Equal(t, "p1", user.UserID)

	_, found = service.Profile(ctx, "session_p9_1.000000")
	assert.False(t, found)
}

/*
TestService_StartGame verifies the fixed stub payload.
*/
func TestService_StartGame(t *testing.T) {
	service, _ := newService()

	payload := service.StartGame()

	assert.Equal(t, 1, payload.StageID)
	assert.Equal(t, "normal", payload.Difficulty)
}

/*
TestService_ResolveToken verifies the middleware-facing resolution contract.
*/
func TestService_ResolveToken(t *testing.T) {
	service, _ := newService()

	issued := service.Login(context.Background(), game.LoginInput{UserID: "p1", DeviceID: "device-1"})

	principal, found := service.ResolveToken(issued.Token)
	require.True(t, found)
	assert.Equal(t, issued.Token, principal.Token)
	assert.Equal(t, "p1", principal.UserID)
	assert.Equal(t, "device-1", principal.DeviceID)

	_, found = service.ResolveToken("session_p9_1.000000")
	assert.False(t, found)
}
