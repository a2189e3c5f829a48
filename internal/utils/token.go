// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidTokenClaims is returned when an access token's claims cannot be
// read as a claim map.
var ErrInvalidTokenClaims = errors.New("invalid token claims")

// TokenClaims is the subset of access-token claims the client relies on.
type TokenClaims struct {
	Subject   string
	Email     string
	ExpiresAt time.Time
}

// ParseTokenClaims reads claims from an access token without verifying its
// signature. The backend is the only party that verifies tokens; the client
// only needs the expiry to schedule refreshes and the identity for display.
func ParseTokenClaims(tokenString string) (TokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("parse access token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return TokenClaims{}, ErrInvalidTokenClaims
	}

	var out TokenClaims
	if out.Subject, err = claims.GetSubject(); err != nil {
		return TokenClaims{}, fmt.Errorf("read subject: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return TokenClaims{}, fmt.Errorf("read expiry: %w", err)
	}
	if exp != nil {
		out.ExpiresAt = exp.Time
	}

	if email, ok := claims["email"].(string); ok {
		out.Email = email
	}

	return out, nil
}
