// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/griswall/playoff-pool/internal/adapter"
	"github.com/griswall/playoff-pool/internal/config"
	"github.com/griswall/playoff-pool/internal/logger"
)

// Services is the public surface of the backend access layer.
type Services struct {
	resolver ConfigResolver
	clients  *ClientCache
	admin    *AdminStatusCache
	local    *LocalAdminChecker

	logger *logger.Logger
}

// NewServices wires the caches for the given admin policy
// ([config.AdminPolicyRemote] or [config.AdminPolicyLocal]).
func NewServices(resolver ConfigResolver, locate SDKLocator, policy string, opts adapter.ClientOptions, log *logger.Logger) (*Services, error) {
	clients := NewClientCache(resolver, locate, opts, log)
	local := NewLocalAdminChecker(resolver)

	var checker AdminChecker
	switch policy {
	case config.AdminPolicyRemote:
		checker = NewRemoteAdminChecker(clients)
	case config.AdminPolicyLocal:
		checker = local
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAdminPolicy, policy)
	}

	return &Services{
		resolver: resolver,
		clients:  clients,
		admin:    NewAdminStatusCache(checker, log),
		local:    local,
		logger:   log,
	}, nil
}

// GetConfig returns the resolved connection configuration.
func (s *Services) GetConfig() (config.ConnectionConfig, error) {
	return s.resolver.Resolve()
}

// GetClient returns the shared backend client handle.
func (s *Services) GetClient() (adapter.Client, error) {
	return s.clients.GetClient()
}

// CheckIsAdmin returns the current user's admin status.
func (s *Services) CheckIsAdmin(ctx context.Context) bool {
	return s.admin.CheckIsAdmin(ctx)
}

// ClearAdminCache forgets the admin status.
func (s *Services) ClearAdminCache() {
	s.admin.Clear()
}

// IsAdminEmail reports whether candidate is in the configured admin email
// list, whatever the active policy. Configuration failures yield false.
func (s *Services) IsAdminEmail(candidate string) bool {
	isAdmin, err := s.local.IsAdminEmail(candidate)
	if err != nil {
		s.logger.Warn().Err(err).Msg("admin email lookup failed")
		return false
	}
	return isAdmin
}

// SetUserEmail records the current user's email for the local policy and
// clears the admin status, which belonged to the previous identity.
func (s *Services) SetUserEmail(email string) {
	s.local.SetUserEmail(email)
	s.admin.Clear()
}

// Logout signs the handle out, if one was built, and always clears the admin
// status.
func (s *Services) Logout(ctx context.Context) error {
	defer s.admin.Clear()

	client, ok := s.clients.Current()
	if !ok {
		return nil
	}
	if err := client.SignOut(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// Close stops the handle's background work.
func (s *Services) Close() {
	s.clients.Close()
}
