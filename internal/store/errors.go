// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/griswall/playoff-pool/internal/adapter"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSessionNotFound is returned when no session is stored under the
	// requested key. It matches [adapter.ErrSessionNotFound].
	ErrSessionNotFound = adapter.ErrSessionNotFound

	// ErrSessionNotSaved is returned when an upsert completes without error
	// but affects no rows.
	ErrSessionNotSaved = errors.New("session was not saved")

	// ErrEmptyKey is returned when a repository method is called with an
	// empty storage key.
	ErrEmptyKey = errors.New("empty session key")
)
