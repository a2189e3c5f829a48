// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griswall/playoff-pool/models"
)

func Test_buildSelectSessionQuery(t *testing.T) {
	query, args, err := buildSelectSessionQuery("sb-abc-auth-token")
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT access_token, refresh_token, token_type, expires_at, user_id, user_email FROM auth_sessions WHERE storage_key = ? LIMIT 1",
		query)
	assert.Equal(t, []any{"sb-abc-auth-token"}, args)
}

func Test_buildUpsertSessionQuery(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	session := models.Session{
		AccessToken:  "a",
		RefreshToken: "r",
		TokenType:    "bearer",
		User:         models.User{ID: "u", Email: "e@x.com"},
	}

	query, args, err := buildUpsertSessionQuery("k", session, now)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.True(t, strings.HasPrefix(q, "insert into auth_sessions (storage_key,access_token,refresh_token,token_type,expires_at,user_id,user_email,updated_at)"))
	require.Contains(t, q, "values (?,?,?,?,?,?,?,?)")
	require.Contains(t, q, "on conflict (storage_key) do update set")
	require.Contains(t, q, "access_token = excluded.access_token")
	require.Contains(t, q, "updated_at = excluded.updated_at")

	// unknown expiry is stored as 0
	assert.Equal(t, []any{"k", "a", "r", "bearer", int64(0), "u", "e@x.com", int64(1_700_000_000)}, args)
}

func Test_buildDeleteSessionQuery(t *testing.T) {
	query, args, err := buildDeleteSessionQuery("k")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM auth_sessions WHERE storage_key = ?", query)
	assert.Equal(t, []any{"k"}, args)
}

func TestUnixRoundTrip(t *testing.T) {
	assert.Equal(t, int64(0), unixOrZero(time.Time{}))
	assert.True(t, timeOrZero(0).IsZero())

	ts := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, ts, timeOrZero(unixOrZero(ts)))
}
