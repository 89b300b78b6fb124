// Copyright (c) 2026 Wobble Private Server. All rights reserved.

package game

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moritakane/wobble/internal/platform/apperr"
	"github.com/moritakane/wobble/internal/platform/constants"
	requestutil "github.com/moritakane/wobble/internal/platform/request"
	"github.com/moritakane/wobble/internal/platform/respond"
)

// # Definitions & Constructors

// Handler implements the game-facing HTTP endpoints.
//
// # Scope
//
// This handler owns every route the client has been observed calling with a
// recognizable purpose: login, session check, game start, and profile.
// Everything else belongs to the catch-all in the api package.
type Handler struct {
	gameService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{gameService: service}
}

// Register mounts the game routes on the given router.
//
// # Endpoints
//
// Several endpoints exist under multiple paths because different client
// builds were observed calling different prefixes. Aliases span both the
// bare and the /api tree, so they are registered as absolute paths here
// instead of a mounted subrouter.
//
//	POST /api/login, /api/auth/login, /login : Login, mints a session.
//	GET|POST /api/session, /session          : Session check (bearer token).
//	POST /api/game/start, /game/start        : Fixed stage stub.
//	GET  /api/user/profile, /user/profile    : Player profile (bearer token).
func (handler *Handler) Register(router chi.Router) {
	for _, path := range []string{"/api/login", "/api/auth/login", "/login"} {
		router.Post(path, handler.login)
	}

	for _, path := range []string{"/api/session", "/session"} {
		router.Get(path, handler.session)
		router.Post(path, handler.session)
	}

	for _, path := range []string{"/api/game/start", "/game/start"} {
		router.Post(path, handler.gameStart)
	}

	for _, path := range []string{"/api/user/profile", "/user/profile"} {
		router.Get(path, handler.profile)
	}
}

// # Request Payloads

type loginRequest struct {
	DeviceID string `json:"device_id"`
	UserID   string `json:"user_id"`
}

// applyDefaults fills missing identifiers: device_id falls back to the
// literal "unknown", user_id falls back to the device_id. A completely
// empty body therefore still logs in as "unknown".
func (input *loginRequest) applyDefaults() {
	if input.DeviceID == "" {
		input.DeviceID = UnknownID
	}
	if input.UserID == "" {
		input.UserID = input.DeviceID
	}
}

/*
login establishes a player session.

POST /api/login | /api/auth/login | /login

Description: Decodes the body leniently (malformed JSON is absorbed, not
rejected), applies identifier defaults, mints a fresh session token, and
creates the player on first contact.

Request:
  - Body: loginRequest (DeviceID, UserID — both optional)

Response:
  - 200: {session_token, user} in a success envelope, "Login successful"
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	requestutil.DecodeLenient(request, &input)
	input.applyDefaults()

	session := handler.gameService.Login(request.Context(), LoginInput{
		UserID:   input.UserID,
		DeviceID: input.DeviceID,
	})

	respond.Success(writer, map[string]any{
		FieldSessionToken: session.Token,
		FieldUser:         session.User,
	}, constants.MessageLoginOK)
}

/*
session verifies the presented session token.

GET|POST /api/session | /session

Description: Resolves the bearer token injected by the Authenticate
middleware and returns the session plus its player record.

Response:
  - 200: {session, user} in a success envelope
  - 401: failure envelope, "Invalid session"
*/
func (handler *Handler) session(writer http.ResponseWriter, request *http.Request) {
	principal := requestutil.Principal(request)
	if principal == nil {
		respond.Error(writer, request, apperr.Unauthorized(constants.MessageInvalidSession))
		return
	}

	state, found := handler.gameService.CheckSession(request.Context(), principal.Token)
	if !found {
		respond.Error(writer, request, apperr.Unauthorized(constants.MessageInvalidSession))
		return
	}

	respond.Success(writer, map[string]any{
		FieldSession: state.Session,
		FieldUser:    state.User,
	}, "")
}

/*
gameStart hands back the fixed stage stub.

POST /api/game/start | /game/start

Description: Ignores the request body entirely. The payload is a placeholder
until real stage traffic is understood.

Response:
  - 200: {stage_id, difficulty} in a success envelope
*/
func (handler *Handler) gameStart(writer http.ResponseWriter, request *http.Request) {
	respond.Success(writer, handler.gameService.StartGame(), "")
}

/*
profile returns the authenticated player's record.

GET /api/user/profile | /user/profile

Description: Resolves token → user_id → player record.

Response:
  - 200: player record in a success envelope
  - 401: failure envelope, "Unauthorized"
*/
func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	principal := requestutil.Principal(request)
	if principal == nil {
		respond.Error(writer, request, apperr.Unauthorized(constants.MessageUnauthorized))
		return
	}

	user, found := handler.gameService.Profile(request.Context(), principal.Token)
	if !found {
		respond.Error(writer, request, apperr.Unauthorized(constants.MessageUnauthorized))
		return
	}

	respond.Success(writer, user, "")
}
