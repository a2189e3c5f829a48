// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/griswall/playoff-pool/internal/adapter"
	"github.com/griswall/playoff-pool/internal/config"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ConfigResolver yields the resolved connection configuration. Implemented
// by [config.Resolver].
type ConfigResolver interface {
	Resolve() (config.ConnectionConfig, error)
}

// ClientProvider yields the shared backend client handle. Implemented by
// [ClientCache].
type ClientProvider interface {
	GetClient() (adapter.Client, error)
}

// AdminChecker decides whether the current user is an administrator. Exactly
// one implementation is active per deployment.
type AdminChecker interface {
	// IsAdmin performs the check. Callers treat any error as "not admin".
	IsAdmin(ctx context.Context) (bool, error)
}

// SDKLocator returns the backend SDK, or nil when it is not available in
// the running environment.
type SDKLocator func() adapter.SDK
