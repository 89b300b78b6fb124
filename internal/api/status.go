// Copyright (c) 2026 Wobble Private Server. All rights reserved.

// Package api contains the status handlers the client uses as health probes.
package api

import (
	"net/http"

	"github.com/moritakane/wobble/internal/platform/constants"
	"github.com/moritakane/wobble/internal/platform/respond"
)

// NewStatusHandlers creates the root and /api/health http.HandlerFuncs.
//
// Both reply with a fixed success envelope and no data. There are no
// dependency checks to run: the only backing store is process memory, so a
// process that can answer at all is healthy.
func NewStatusHandlers() (root, health http.HandlerFunc) {
	root = func(writer http.ResponseWriter, request *http.Request) {
		respond.Success(writer, nil, constants.MessageRoot)
	}

	health = func(writer http.ResponseWriter, request *http.Request) {
		respond.Success(writer, nil, constants.MessageHealth)
	}

	return root, health
}
