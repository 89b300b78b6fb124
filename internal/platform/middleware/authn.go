// Copyright (c) 2026 Wobble Private Server. All rights reserved.

package middleware

import (
	"net/http"

	"github.com/moritakane/wobble/internal/platform/constants"
	"github.com/moritakane/wobble/internal/platform/ctxutil"
	"github.com/moritakane/wobble/internal/platform/token"
)

// SessionResolver defines the interface needed to resolve session tokens in middleware.
//
// # Why an interface?
//
// Defining SessionResolver here decouples the middleware from the game
// service implementation, allowing us to easily inject stubs during unit
// testing.
type SessionResolver interface {
	// ResolveToken maps a raw session token to its principal.
	// The second return value reports whether the token is known.
	ResolveToken(raw string) (*token.Principal, bool)
}

// Authenticate extracts the session token from the Authorization header and
// resolves it against the store.
//
// # Flow
//  1. Read the 'Authorization' header, stripping a 'Bearer ' prefix if present.
//  2. If absent or unknown, the request proceeds as anonymous. The middleware
//     never rejects: an unrecognized endpoint hit with a stale token must
//     still fall through to the catch-all and succeed.
//  3. If resolved, inject the [*token.Principal] into the request context.
//
// Protected handlers check the principal themselves and emit their own
// route-specific 401 envelopes.
func Authenticate(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			raw := token.FromAuthorizationHeader(request.Header.Get(constants.HeaderAuthorization))
			if raw == "" {
				next.ServeHTTP(writer, request)
				return
			}

			principal, found := resolver.ResolveToken(raw)
			if !found {
				next.ServeHTTP(writer, request)
				return
			}

			ctx := ctxutil.WithPrincipal(request.Context(), principal)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}
