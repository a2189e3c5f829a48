// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrDependencyUnavailable is returned by [ClientCache.GetClient] when the
	// backend SDK is missing or cannot construct a client.
	ErrDependencyUnavailable = errors.New("backend SDK unavailable")

	// ErrUnknownAdminPolicy is returned by [NewServices] for a policy other
	// than remote or local.
	ErrUnknownAdminPolicy = errors.New("unknown admin policy")

	// ErrUnexpectedPayload is wrapped in a [RemoteCheckError] when the admin
	// procedure returns something other than a boolean.
	ErrUnexpectedPayload = errors.New("unexpected payload")
)

// RemoteCheckError wraps a failed remote admin check. It never escapes
// [AdminStatusCache]; it is logged and degrades to "not admin".
type RemoteCheckError struct {
	Err error
}

// Error implements error.
func (e *RemoteCheckError) Error() string {
	return fmt.Sprintf("remote admin check failed: %v", e.Err)
}

// Unwrap returns the underlying failure.
func (e *RemoteCheckError) Unwrap() error {
	return e.Err
}
