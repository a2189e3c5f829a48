// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is an authenticated backend session as issued by the auth service.
type Session struct {
	// AccessToken is the JWT sent as the bearer token on every request.
	AccessToken string `json:"access_token"`

	// RefreshToken is exchanged for a new AccessToken before it expires.
	RefreshToken string `json:"refresh_token"`

	// TokenType is normally "bearer".
	TokenType string `json:"token_type"`

	// ExpiresAt is the moment AccessToken stops being accepted. Zero when
	// the expiry is unknown.
	ExpiresAt time.Time `json:"expires_at"`

	// User is the owner of the session.
	User User `json:"user"`
}

// ExpiresWithin reports whether the access token expires before now+margin.
// A session with an unknown expiry never reports expiring.
func (s Session) ExpiresWithin(now time.Time, margin time.Duration) bool {
	if s.ExpiresAt.IsZero() {
		return false
	}
	return !now.Add(margin).Before(s.ExpiresAt)
}

// IsZero reports whether s carries no access token.
func (s Session) IsZero() bool {
	return s.AccessToken == ""
}
