// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport-layer abstractions for talking to
// the hosted backend (REST data API plus auth API).
//
// [SDK] is the entry point: it constructs [Client] handles bound to one
// project URL and anon key. The package ships a REST implementation
// ([NewRESTSDK]) built on resty. A Client owns the authenticated session,
// optionally persisting it through a [SessionStorage], adopting one found in
// the navigation URL, and refreshing it in the background.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"time"

	"github.com/goccy/go-json"

	"github.com/griswall/playoff-pool/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SDK constructs backend client handles.
type SDK interface {
	// CreateClient returns a handle bound to the project at url. It fails
	// when url is not an absolute http(s) URL or anonKey is empty.
	CreateClient(url, anonKey string, opts ClientOptions) (Client, error)
}

// Client is a handle to one backend project.
type Client interface {
	// RPC invokes the stored procedure fn with params (nil for none). The
	// outcome is always returned in the response: transport failures and
	// non-2xx replies are reported through RPCResponse.Error.
	RPC(ctx context.Context, fn string, params any) RPCResponse

	// Session returns the current session and whether one is held.
	Session() (models.Session, bool)

	// SetSession adopts the given tokens as the current session, reading
	// expiry and user from the access token, and persists it when session
	// persistence is enabled.
	SetSession(ctx context.Context, accessToken, refreshToken string) error

	// RefreshSession exchanges the refresh token for a new session. Returns
	// [ErrNoSession] when no session is held.
	RefreshSession(ctx context.Context) error

	// SignOut revokes the session on the backend and forgets it locally.
	// It is a no-op when no session is held.
	SignOut(ctx context.Context) error

	// Close stops background work owned by the handle.
	Close()
}

// SessionStorage persists sessions under a string key.
type SessionStorage interface {
	// Load returns the session stored under key, or [ErrSessionNotFound].
	Load(ctx context.Context, key string) (models.Session, error)
	// Save stores session under key, replacing any previous value.
	Save(ctx context.Context, key string, session models.Session) error
	// Delete removes the session stored under key. Deleting a missing key is
	// not an error.
	Delete(ctx context.Context, key string) error
}

// ClientOptions configures a [Client].
type ClientOptions struct {
	// PersistSession saves the session to Storage and restores it when the
	// handle is created. Ignored when Storage is nil.
	PersistSession bool

	// AutoRefreshToken starts a background job that refreshes the session
	// shortly before its access token expires.
	AutoRefreshToken bool

	// DetectSessionInURL adopts access_token/refresh_token found in the
	// fragment or query of NavigationURL when the handle is created.
	DetectSessionInURL bool

	// NavigationURL is the URL the application was opened with.
	NavigationURL string

	// Storage backs PersistSession.
	Storage SessionStorage

	// RequestTimeout bounds each backend request. Zero keeps the transport
	// default.
	RequestTimeout time.Duration

	// RefreshInterval is how often the refresh job checks the session.
	RefreshInterval time.Duration
}

// RPCResponse is the outcome of [Client.RPC]. Exactly one of Data and Error
// is meaningful.
type RPCResponse struct {
	// Data is the raw JSON payload returned by the procedure.
	Data json.RawMessage
	// Error is set when the call failed.
	Error *models.RPCError
}
