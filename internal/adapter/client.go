// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/griswall/playoff-pool/internal/logger"
	"github.com/griswall/playoff-pool/internal/utils"
	"github.com/griswall/playoff-pool/internal/workers"
	"github.com/griswall/playoff-pool/models"
)

// refreshMargin is how long before expiry a session is considered due for
// refresh.
const refreshMargin = 90 * time.Second

type restClient struct {
	http       *utils.HTTPClient
	anonKey    string
	storage    SessionStorage
	storageKey string
	background *workers.Workers
	now        func() time.Time

	logger *logger.Logger

	mu      sync.RWMutex
	session models.Session
}

// RPC implements [Client]. It POSTs params (or an empty object) to
// POST /rest/v1/rpc/{fn}. The call is logged through the logger carried by
// ctx, if any.
func (c *restClient) RPC(ctx context.Context, fn string, params any) RPCResponse {
	if params == nil {
		params = struct{}{}
	}

	req := c.authedRequest(ctx)
	callLog := logger.FromContext(ctx).With().
		Str("rpc", fn).
		Str("request_id", req.Header.Get("X-Request-Id")).
		Logger()

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(params).
		SetPathParam("fn", fn).
		Post("/rest/v1/rpc/{fn}")
	if err != nil {
		callLog.Warn().Err(err).Msg("rpc request failed")
		return RPCResponse{Error: &models.RPCError{Message: fmt.Sprintf("rpc %s request: %v", fn, err)}}
	}
	if mapHTTPError(resp) != nil {
		rpcErr := mapRPCError(resp)
		callLog.Debug().Int("status", resp.StatusCode()).Str("code", rpcErr.Code).Msg("rpc returned an error")
		return RPCResponse{Error: rpcErr}
	}

	callLog.Debug().Int("status", resp.StatusCode()).Msg("rpc call")
	return RPCResponse{Data: resp.Body()}
}

// Session implements [Client].
func (c *restClient) Session() (models.Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.session, !c.session.IsZero()
}

// SetSession implements [Client]. The access token must be a JWT; its exp,
// sub and email claims fill in the session's expiry and user.
func (c *restClient) SetSession(ctx context.Context, accessToken, refreshToken string) error {
	accessToken = strings.TrimSpace(accessToken)
	refreshToken = strings.TrimSpace(refreshToken)
	if accessToken == "" || refreshToken == "" {
		return fmt.Errorf("%w: access and refresh tokens are required", ErrNoSession)
	}

	claims, err := utils.ParseTokenClaims(accessToken)
	if err != nil {
		return fmt.Errorf("set session: %w", err)
	}

	c.adopt(ctx, models.Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresAt:    claims.ExpiresAt,
		User:         models.User{ID: claims.Subject, Email: claims.Email},
	})
	return nil
}

// RefreshSession implements [Client]. It POSTs the refresh token to
// POST /auth/v1/token?grant_type=refresh_token. A rejected refresh token
// (400 or 401) ends the session.
func (c *restClient) RefreshSession(ctx context.Context) error {
	current, ok := c.Session()
	if !ok || current.RefreshToken == "" {
		return ErrNoSession
	}

	var token models.TokenResponse
	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", "refresh_token").
		SetBody(map[string]string{"refresh_token": current.RefreshToken}).
		SetResult(&token).
		Post("/auth/v1/token")
	if err != nil {
		return fmt.Errorf("refresh session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		if errors.Is(err, ErrBadRequest) || errors.Is(err, ErrUnauthorized) {
			c.forget(ctx)
		}
		return fmt.Errorf("refresh session: %w", err)
	}
	if token.AccessToken == "" {
		return fmt.Errorf("refresh session: %w: empty access token", ErrNoSession)
	}

	session := token.Session(c.now())
	if session.User.ID == "" {
		session.User = current.User
	}
	if session.ExpiresAt.IsZero() {
		if claims, err := utils.ParseTokenClaims(session.AccessToken); err == nil {
			session.ExpiresAt = claims.ExpiresAt
		}
	}

	c.adopt(ctx, session)
	c.logger.Debug().Time("expires_at", session.ExpiresAt).Msg("session refreshed")
	return nil
}

// RefreshSessionIfNeeded implements [workers.SessionRefresher]. It refreshes
// only when a session is held and its access token expires within
// refreshMargin.
func (c *restClient) RefreshSessionIfNeeded(ctx context.Context) error {
	current, ok := c.Session()
	if !ok || !current.ExpiresWithin(c.now(), refreshMargin) {
		return nil
	}
	return c.RefreshSession(ctx)
}

// SignOut implements [Client]. It POSTs to POST /auth/v1/logout with the
// session's access token. A 401, 403 or 404 reply means the session is
// already gone on the backend and still ends it locally.
func (c *restClient) SignOut(ctx context.Context) error {
	if _, ok := c.Session(); !ok {
		return nil
	}

	resp, err := c.authedRequest(ctx).
		SetQueryParam("scope", "global").
		Post("/auth/v1/logout")
	if err != nil {
		return fmt.Errorf("sign out request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		switch resp.StatusCode() {
		case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		default:
			return fmt.Errorf("sign out: %w", err)
		}
	}

	c.forget(ctx)
	c.logger.Info().Msg("signed out")
	return nil
}

// Close implements [Client].
func (c *restClient) Close() {
	if c.background != nil {
		c.background.Stop()
	}
}

// restoreSession loads the persisted session, if any. Failures are logged
// and leave the handle without a session.
func (c *restClient) restoreSession(ctx context.Context) {
	if c.storage == nil {
		return
	}

	session, err := c.storage.Load(ctx, c.storageKey)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			c.logger.Warn().Err(err).Str("key", c.storageKey).Msg("could not restore session")
		}
		return
	}

	c.mu.Lock()
	c.session = session
	c.mu.Unlock()
	c.logger.Debug().Str("user_id", session.User.ID).Msg("session restored")
}

func (c *restClient) detectSessionInURL(ctx context.Context, navigationURL string) {
	session, ok := sessionFromURL(navigationURL, c.now())
	if !ok {
		return
	}

	if claims, err := utils.ParseTokenClaims(session.AccessToken); err == nil {
		session.User = models.User{ID: claims.Subject, Email: claims.Email}
		if session.ExpiresAt.IsZero() {
			session.ExpiresAt = claims.ExpiresAt
		}
	}

	c.adopt(ctx, session)
	c.logger.Debug().Str("user_id", session.User.ID).Msg("session detected in navigation url")
}

// adopt makes session current and persists it.
func (c *restClient) adopt(ctx context.Context, session models.Session) {
	c.mu.Lock()
	c.session = session
	c.mu.Unlock()

	if c.storage == nil {
		return
	}
	if err := c.storage.Save(ctx, c.storageKey, session); err != nil {
		c.logger.Warn().Err(err).Str("key", c.storageKey).Msg("could not persist session")
	}
}

// forget drops the current session and its persisted copy.
func (c *restClient) forget(ctx context.Context) {
	c.mu.Lock()
	c.session = models.Session{}
	c.mu.Unlock()

	if c.storage == nil {
		return
	}
	if err := c.storage.Delete(ctx, c.storageKey); err != nil {
		c.logger.Warn().Err(err).Str("key", c.storageKey).Msg("could not delete persisted session")
	}
}

func (c *restClient) request(ctx context.Context) *resty.Request {
	return c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", utils.NewRequestID())
}

// authedRequest sends the session's access token as the bearer credential,
// or the anon key when no session is held.
func (c *restClient) authedRequest(ctx context.Context) *resty.Request {
	token := c.anonKey
	if session, ok := c.Session(); ok {
		token = session.AccessToken
	}
	return c.request(ctx).SetAuthToken(token)
}
