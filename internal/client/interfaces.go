// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/griswall/playoff-pool/internal/adapter"
	"github.com/griswall/playoff-pool/internal/config"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_mock.go -package=mock -exclude_interfaces=Client

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the configured command and returns when it is done.
	Run(ctx context.Context) error
}

// Services is the part of the backend access layer the application drives.
type Services interface {
	GetConfig() (config.ConnectionConfig, error)
	GetClient() (adapter.Client, error)
	CheckIsAdmin(ctx context.Context) bool
	Logout(ctx context.Context) error
	Close()
}
