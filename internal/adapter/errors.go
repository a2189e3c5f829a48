// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Transport errors mapped from backend HTTP status codes.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)

// Client construction and session errors.
var (
	ErrInvalidProjectURL = errors.New("invalid project url")
	ErrMissingAnonKey    = errors.New("missing anon key")
	ErrNoSession         = errors.New("no session")
	ErrSessionNotFound   = errors.New("session not found")
)
