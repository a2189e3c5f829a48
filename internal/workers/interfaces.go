// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker's goroutine and returns immediately. Stop cancels
// it and blocks until it has exited. Calling Stop on a worker that is not
// running is a no-op.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// SessionRefresher renews an authenticated session when its access token is
// close to expiring. Implementations decide whether a refresh is due.
type SessionRefresher interface {
	RefreshSessionIfNeeded(ctx context.Context) error
}
