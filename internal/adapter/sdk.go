// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/griswall/playoff-pool/internal/logger"
	"github.com/griswall/playoff-pool/internal/utils"
	"github.com/griswall/playoff-pool/internal/workers"
)

type restSDK struct {
	logger *logger.Logger
}

// NewRESTSDK returns the REST implementation of [SDK].
func NewRESTSDK(log *logger.Logger) SDK {
	return &restSDK{logger: log}
}

// CreateClient implements [SDK]. It validates url and anonKey, restores a
// persisted session, adopts a session found in the navigation URL, and starts
// the refresh job, each according to opts.
func (s *restSDK) CreateClient(rawURL, anonKey string, opts ClientOptions) (Client, error) {
	baseURL, ref, err := normalizeProjectURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProjectURL, err)
	}

	anonKey = strings.TrimSpace(anonKey)
	if anonKey == "" {
		return nil, ErrMissingAnonKey
	}

	c := &restClient{
		http:       utils.NewBackendHTTPClient(baseURL, anonKey, opts.RequestTimeout),
		anonKey:    anonKey,
		storageKey: storageKey(ref),
		now:        time.Now,
		logger:     s.logger.WithComponent("adapter"),
	}
	if opts.PersistSession {
		c.storage = opts.Storage
	}

	ctx := context.Background()
	c.restoreSession(ctx)

	if opts.DetectSessionInURL && opts.NavigationURL != "" {
		c.detectSessionInURL(ctx, opts.NavigationURL)
	}

	if opts.AutoRefreshToken {
		c.background = workers.New(workers.NewTokenRefreshJob(c, opts.RefreshInterval, c.logger))
		c.background.Start(ctx)
	}

	return c, nil
}

// normalizeProjectURL returns url without trailing slashes and the project
// reference, the first label of its host name.
func normalizeProjectURL(raw string) (string, string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", errors.New("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", "", errors.New("address must be an absolute http(s) url")
	}

	ref, _, _ := strings.Cut(u.Hostname(), ".")
	return strings.TrimRight(u.String(), "/"), ref, nil
}

// storageKey is the key a project's session is persisted under.
func storageKey(projectRef string) string {
	return "sb-" + projectRef + "-auth-token"
}
