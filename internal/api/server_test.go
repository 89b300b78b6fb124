// Copyright (c) 2026 Wobble Private Server. All rights reserved.

package api_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moritakane/wobble/internal/api"
	"github.com/moritakane/wobble/internal/game"
	"github.com/moritakane/wobble/internal/platform/config"
	"github.com/moritakane/wobble/internal/platform/respond"
)

// testLogger discards output: the middleware chain logs every request and
// the dump would drown the test output otherwise.
func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// newTestServer wires the full composition root the way cmd/api does,
// middleware chain included, against a fresh in-memory store.
func newTestServer() http.Handler {
	cfg := &config.Config{
		ServerPort:       "8080",
		Environment:      "test",
		TrafficBodyLimit: 65536,
	}

	store := game.NewMemoryStore()
	gameService := game.NewService(store, store)
	rootHandler, healthHandler := api.NewStatusHandlers()

	server := api.NewServer(cfg, testLogger(), gameService, api.Handlers{
		Root:   rootHandler,
		Health: healthHandler,
		Game:   game.NewHandler(gameService),
	})

	return server.Router()
}

func exchange(t *testing.T, handler http.Handler, method, path, body, bearer string) (*httptest.ResponseRecorder, respond.Envelope) {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
	if bearer != "" {
		request.Header.Set("Authorization", "Bearer "+bearer)
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	var envelope respond.Envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return recorder, envelope
}

/*
TestStatusRoutes verifies the two health probes the client pings.
*/
func TestStatusRoutes(t *testing.T) {
	server := newTestServer()

	tests := []struct {
		name        string
		method      string
		path        string
		wantMessage string
	}{
		{"root_get", http.MethodGet, "/", "Wibble Wobble Private Server - Running"},
		{"root_post", http.MethodPost, "/", "Wibble Wobble Private Server - Running"},
		{"api_health", http.MethodGet, "/api/health", "Server is running"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, envelope := exchange(t, server, tt.method, tt.path, "", "")

			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.True(t, envelope.Success)
			assert.Equal(t, tt.wantMessage, envelope.Message)
			assert.Nil(t, envelope.Data)
		})
	}
}

/*
TestLoginThenProfile walks the recorded client flow end to end: login as p1,
then fetch the profile with the bearer token the server minted.
*/
func TestLoginThenProfile(t *testing.T) {
	server := newTestServer()

	// 1. Login.
	recorder, envelope := exchange(t, server, http.MethodPost, "/login", `{"user_id": "p1"}`, "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, envelope.Success)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)

	sessionToken, ok := data["session_token"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(sessionToken, "session_p1_"))

	user, ok := data["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1000), user["coins"])
	assert.Equal(t, float64(1), user["level"])

	// 2. Profile with the minted token.
	recorder, envelope = exchange(t, server, http.MethodGet, "/api/user/profile", "", sessionToken)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.True(t, envelope.Success)

	profile, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "p1", profile["user_id"])

	// 3. Session check with the same token.
	recorder, envelope = exchange(t, server, http.MethodGet, "/session", "", sessionToken)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, envelope.Success)
}

/*
TestRepeatLogin verifies token rotation without record mutation across the
full stack.
*/
func TestRepeatLogin(t *testing.T) {
	server := newTestServer()

	_, first := exchange(t, server, http.MethodPost, "/api/login", `{"user_id":"p1","device_id":"device-1"}`, "")

	// Token timestamps carry microsecond resolution; make sure the clock moved.
	time.Sleep(5 * time.Microsecond)

	_, second := exchange(t, server, http.MethodPost, "/api/login", `{"user_id":"p1","device_id":"device-2"}`, "")

	firstData := first.Data.(map[string]any)
	secondData := second.Data.(map[string]any)

	assert.NotEqual(t, firstData["session_token"], secondData["session_token"])

	// The record keeps its original device binding and balances.
	user := secondData["user"].(map[string]any)
	assert.Equal(t, "device-1", user["device_id"])
	assert.Equal(t, float64(1000), user["coins"])
	assert.Equal(t, float64(1), user["level"])
}

/*
TestProtectedRoutes_Unauthorized verifies the only two client-visible
failures the server produces.
*/
func TestProtectedRoutes_Unauthorized(t *testing.T) {
	server := newTestServer()

	tests := []struct {
		name        string
		method      string
		path        string
		wantMessage string
	}{
		{"session_check", http.MethodGet, "/api/session", "Invalid session"},
		{"session_check_post", http.MethodPost, "/session", "Invalid session"},
		{"profile", http.MethodGet, "/api/user/profile", "Unauthorized"},
		{"profile_bare", http.MethodGet, "/user/profile", "Unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, envelope := exchange(t, server, tt.method, tt.path, "", "session_never_issued_1.000000")

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.False(t, envelope.Success)
			assert.Equal(t, tt.wantMessage, envelope.Message)
		})
	}
}

/*
TestCatchAll verifies the unconditional-success default route across methods
and paths, including wrong-method hits on named routes.
*/
func TestCatchAll(t *testing.T) {
	server := newTestServer()

	tests := []struct {
		name        string
		method      string
		path        string
		wantMessage string
	}{
		{"unknown_path", http.MethodGet, "/foo/bar/baz", "Endpoint /foo/bar/baz - under development"},
		{"unknown_api_path", http.MethodPost, "/api/yokai/fuse", "Endpoint /api/yokai/fuse - under development"},
		{"put_method", http.MethodPut, "/api/settings", "Endpoint /api/settings - under development"},
		{"delete_method", http.MethodDelete, "/api/friends/3", "Endpoint /api/friends/3 - under development"},
		{"patch_method", http.MethodPatch, "/profile", "Endpoint /profile - under development"},
		{"wrong_method_on_login", http.MethodPut, "/login", "Endpoint /login - under development"},
		{"wrong_method_on_health", http.MethodPost, "/api/health", "Endpoint /api/health - under development"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, envelope := exchange(t, server, tt.method, tt.path, `{"anything":"goes"}`, "")

			// Never a hard failure, whatever the client sends.
			assert.Equal(t, http.StatusOK, recorder.Code)
			assert.True(t, envelope.Success)
			assert.Equal(t, tt.wantMessage, envelope.Message)
		})
	}
}

/*
TestCatchAll_IgnoresStaleToken verifies a bogus bearer token cannot break the
catch-all: auth resolution is lenient outside protected routes.
*/
func TestCatchAll_IgnoresStaleToken(t *testing.T) {
	server := newTestServer()

	recorder, envelope := exchange(t, server, http.MethodGet, "/api/shop/list", "", "session_stale_1.000000")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, envelope.Success)
}

/*
TestRequestID_Echoed verifies correlation IDs surface on every response,
catch-all included.
*/
func TestRequestID_Echoed(t *testing.T) {
	server := newTestServer()

	recorder, _ := exchange(t, server, http.MethodGet, "/nowhere", "", "")

	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
}
