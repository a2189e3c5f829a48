// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/griswall/playoff-pool/internal/config"
)

// IsAdminFunction is the stored procedure asked by the remote policy.
const IsAdminFunction = "is_admin_user"

type remoteAdminChecker struct {
	clients ClientProvider
}

// NewRemoteAdminChecker returns the remote policy: the backend decides
// through the [IsAdminFunction] procedure. Every failure is reported as a
// [*RemoteCheckError].
func NewRemoteAdminChecker(clients ClientProvider) AdminChecker {
	return &remoteAdminChecker{clients: clients}
}

// IsAdmin implements [AdminChecker].
func (r *remoteAdminChecker) IsAdmin(ctx context.Context) (bool, error) {
	client, err := r.clients.GetClient()
	if err != nil {
		return false, &RemoteCheckError{Err: err}
	}

	resp := client.RPC(ctx, IsAdminFunction, nil)
	if resp.Error != nil {
		return false, &RemoteCheckError{Err: resp.Error}
	}

	switch string(bytes.TrimSpace(resp.Data)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, &RemoteCheckError{Err: fmt.Errorf("%w: %s returned %q", ErrUnexpectedPayload, IsAdminFunction, resp.Data)}
	}
}

// LocalAdminChecker is the local policy: the user is an admin when their
// email is in the configured admin email list.
type LocalAdminChecker struct {
	resolver ConfigResolver

	mu    sync.RWMutex
	email string
}

// NewLocalAdminChecker returns a LocalAdminChecker with no user email set.
func NewLocalAdminChecker(resolver ConfigResolver) *LocalAdminChecker {
	return &LocalAdminChecker{resolver: resolver}
}

// SetUserEmail records the current user's email.
func (l *LocalAdminChecker) SetUserEmail(email string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.email = email
}

// IsAdmin implements [AdminChecker].
func (l *LocalAdminChecker) IsAdmin(_ context.Context) (bool, error) {
	l.mu.RLock()
	email := l.email
	l.mu.RUnlock()

	return l.IsAdminEmail(email)
}

// IsAdminEmail reports whether candidate, trimmed and lower-cased, is in the
// admin email list. A blank candidate is never an admin.
func (l *LocalAdminChecker) IsAdminEmail(candidate string) (bool, error) {
	candidate = config.NormalizeEmail(candidate)
	if candidate == "" {
		return false, nil
	}

	cfg, err := l.resolver.Resolve()
	if err != nil {
		return false, err
	}
	return slices.Contains(cfg.AdminEmails, candidate), nil
}
