// Copyright (c) 2026 Wobble Private Server. All rights reserved.

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away body decoding and context extraction patterns so handlers
stay thin.

# Tolerance

The game client sends whatever it sends. Decoding here is deliberately
lenient: a malformed or absent body leaves the target struct at its zero
value instead of producing an error, and the caller fills in defaults. This
is the absorb-with-defaults posture the whole server is built around.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/moritakane/wobble/internal/platform/ctxutil"
	"github.com/moritakane/wobble/internal/platform/token"
)

/*
DecodeLenient reads the request body and decodes it into the target structure.

A nil body, empty body, or malformed JSON is absorbed silently: the target is
left as-is and no error is returned. Handlers apply their own field defaults
afterwards.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)
*/
func DecodeLenient(request *http.Request, target interface{}) {
	if request.Body == nil {
		return
	}
	_ = json.NewDecoder(request.Body).Decode(target)
}

/*
Principal extracts the resolved session principal from the request context.

Returns nil if the request carried no valid session token. Handlers on
protected routes translate nil into their route-specific 401 envelope.
*/
func Principal(request *http.Request) *token.Principal {
	return ctxutil.GetPrincipal(request.Context())
}
