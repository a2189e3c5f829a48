// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TokenResponse is the body returned by the backend's auth token endpoint
// after a password sign-in or a refresh-token grant.
type TokenResponse struct {
	// AccessToken is the short-lived JWT sent as the bearer credential.
	AccessToken string `json:"access_token"`

	// RefreshToken is the single-use token exchanged for a new session.
	RefreshToken string `json:"refresh_token"`

	// TokenType is normally "bearer".
	TokenType string `json:"token_type"`

	// ExpiresIn is the access token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`

	// ExpiresAt is the absolute expiry as Unix seconds. Zero when the
	// backend only reports ExpiresIn.
	ExpiresAt int64 `json:"expires_at"`

	// User is the account the session belongs to.
	User User `json:"user"`
}

// Session converts the response into a [Session]. ExpiresAt wins over
// ExpiresIn; when neither is set the session has no known expiry.
func (r TokenResponse) Session(now time.Time) Session {
	s := Session{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		TokenType:    r.TokenType,
		User:         r.User,
	}

	switch {
	case r.ExpiresAt > 0:
		s.ExpiresAt = time.Unix(r.ExpiresAt, 0).UTC()
	case r.ExpiresIn > 0:
		s.ExpiresAt = now.Add(time.Duration(r.ExpiresIn) * time.Second).UTC()
	}

	return s
}
