// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"sync"

	"github.com/griswall/playoff-pool/internal/adapter"
	"github.com/griswall/playoff-pool/internal/logger"
)

// ClientCache builds the backend client handle on first use and returns the
// same instance afterwards.
//
// Configuration failures are memoized by the resolver and returned as-is.
// A missing SDK is not cached: a later call retries once the SDK is
// available.
type ClientCache struct {
	resolver ConfigResolver
	locate   SDKLocator
	base     adapter.ClientOptions
	logger   *logger.Logger

	mu     sync.Mutex
	client adapter.Client
}

// NewClientCache returns a ClientCache. base carries the environment-specific
// options (storage, navigation URL, timeouts); the session behaviour flags
// are always enabled.
func NewClientCache(resolver ConfigResolver, locate SDKLocator, base adapter.ClientOptions, log *logger.Logger) *ClientCache {
	return &ClientCache{
		resolver: resolver,
		locate:   locate,
		base:     base,
		logger:   log.WithComponent("client_cache"),
	}
}

// GetClient implements [ClientProvider].
func (c *ClientCache) GetClient() (adapter.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	cfg, err := c.resolver.Resolve()
	if err != nil {
		return nil, err
	}

	var sdk adapter.SDK
	if c.locate != nil {
		sdk = c.locate()
	}
	if sdk == nil {
		c.logger.Warn().Msg("backend SDK is not available")
		return nil, fmt.Errorf("%w: SDK not loaded", ErrDependencyUnavailable)
	}

	opts := c.base
	opts.PersistSession = true
	opts.AutoRefreshToken = true
	opts.DetectSessionInURL = true

	client, err := sdk.CreateClient(cfg.URL, cfg.AnonKey, opts)
	if err != nil {
		c.logger.Err(err).Str("url", cfg.URL).Msg("backend client could not be created")
		return nil, fmt.Errorf("%w: %w", ErrDependencyUnavailable, err)
	}

	c.client = client
	c.logger.Info().Str("url", cfg.URL).Msg("backend client created")
	return client, nil
}

// Current returns the handle if one has been built, without building it.
func (c *ClientCache) Current() (adapter.Client, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.client, c.client != nil
}

// Close releases the handle's background work. The handle stays cached.
func (c *ClientCache) Close() {
	if client, ok := c.Current(); ok {
		client.Close()
	}
}
