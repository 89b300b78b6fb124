// Copyright (c) 2026 Wobble Private Server. All rights reserved.

package game

import (
	"context"
	"time"

	"github.com/moritakane/wobble/internal/platform/constants"
	"github.com/moritakane/wobble/internal/platform/token"
)

// Service implements the stubbed game backend use cases.
//
// Every method is a single stateless-per-call transition over the store;
// there is no multi-step protocol state to track.
type Service struct {
	userRepository    UserRepository
	sessionRepository SessionRepository

	// now is the clock used for record timestamps and token minting.
	// Swappable in tests.
	now func() time.Time
}

// NewService constructs a new [Service] with its repository dependencies.
func NewService(userRepo UserRepository, sessionRepo SessionRepository) *Service {
	return &Service{
		userRepository:    userRepo,
		sessionRepository: sessionRepo,
		now:               time.Now,
	}
}

// # Login Flow

// LoginInput holds the identifiers extracted from a login request body,
// after defaults have been applied.
type LoginInput struct {
	UserID   string
	DeviceID string
}

// LoginSession represents a successfully established player session.
type LoginSession struct {
	Token string
	User  *User
}

/*
Login mints a new session and creates the player on first contact.

Description: Always issues a fresh session token — repeat logins stack
sessions, they never reuse or invalidate earlier ones. The player record is
created with starting values only if the user ID is new; otherwise the
existing record is returned untouched.

Parameters:
  - context: context.Context
  - input: LoginInput (identifiers with defaults already applied)

Returns:
  - *LoginSession: Token plus the authoritative player record
*/
func (service *Service) Login(context context.Context, input LoginInput) *LoginSession {
	issuedAt := service.now()
	stamp := issuedAt.Format(constants.TimestampLayout)

	sessionToken := token.Generate(input.UserID, issuedAt)
	service.sessionRepository.Create(context, &Session{
		Token:     sessionToken,
		UserID:    input.UserID,
		DeviceID:  input.DeviceID,
		CreatedAt: stamp,
	})

	user := service.userRepository.CreateIfAbsent(context, &User{
		UserID:    input.UserID,
		DeviceID:  input.DeviceID,
		CreatedAt: stamp,
		Level:     constants.StartingLevel,
		Coins:     constants.StartingCoins,
		Yokai:     []string{},
	})

	return &LoginSession{Token: sessionToken, User: user}
}

// # Session Lookups

// SessionState pairs a session with its player record.
type SessionState struct {
	Session *Session
	User    *User
}

/*
CheckSession resolves a token to its session and player record.

Description: A session's user is looked up independently; if the player
record is somehow missing the state carries an empty (zero-value) user
rather than failing, since the client only needs the call to succeed.

Parameters:
  - context: context.Context
  - sessionToken: string

Returns:
  - *SessionState: Session plus player record
  - bool: false when the token was never issued
*/
func (service *Service) CheckSession(context context.Context, sessionToken string) (*SessionState, bool) {
	session, found := service.sessionRepository.FindByToken(context, sessionToken)
	if !found {
		return nil, false
	}

	user, found := service.userRepository.FindByID(context, session.UserID)
	if !found {
		user = &User{}
	}

	return &SessionState{Session: session, User: user}, true
}

/*
Profile resolves a token to the owning player record.

Parameters:
  - context: context.Context
  - sessionToken: string

Returns:
  - *User: Player record (empty record if the user vanished)
  - bool: false when the token was never issued
*/
func (service *Service) Profile(context context.Context, sessionToken string) (*User, bool) {
	session, found := service.sessionRepository.FindByToken(context, sessionToken)
	if !found {
		return nil, false
	}

	user, found := service.userRepository.FindByID(context, session.UserID)
	if !found {
		user = &User{}
	}
	return user, true
}

// # Gameplay Stubs

// StartGame returns the fixed stage payload. The request body, whatever the
// client put in it, is ignored entirely.
func (service *Service) StartGame() *GameStart {
	return &GameStart{
		StageID:    constants.StubStageID,
		Difficulty: constants.StubDifficulty,
	}
}

// # Middleware Integration

// ResolveToken implements the session resolution contract used by the
// Authenticate middleware ([middleware.SessionResolver]).
func (service *Service) ResolveToken(raw string) (*token.Principal, bool) {
	session, found := service.sessionRepository.FindByToken(context.Background(), raw)
	if !found {
		return nil, false
	}
	return &token.Principal{
		Token:    raw,
		UserID:   session.UserID,
		DeviceID: session.DeviceID,
	}, true
}
