// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griswall/playoff-pool/internal/config"
	"github.com/griswall/playoff-pool/internal/logger"
	"github.com/griswall/playoff-pool/models"
)

// TestClientStorages_SessionRoundTrip exercises the real SQLite driver and
// the embedded migrations.
func TestClientStorages_SessionRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "session.db")

	storages, err := NewClientStorages(ctx, config.Storage{DB: config.DB{DSN: dsn}}, logger.Nop())
	if err != nil && strings.Contains(err.Error(), "CGO_ENABLED=0") {
		t.Skip("sqlite3 driver requires cgo")
	}
	require.NoError(t, err)
	defer func() { assert.NoError(t, storages.Close()) }()

	repo := storages.SessionRepository
	_, err = repo.Load(ctx, "sb-abc-auth-token")
	require.ErrorIs(t, err, ErrSessionNotFound)

	first := models.Session{
		AccessToken:  "a1",
		RefreshToken: "r1",
		TokenType:    "bearer",
		ExpiresAt:    time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
		User:         models.User{ID: "u", Email: "u@x.com"},
	}
	require.NoError(t, repo.Save(ctx, "sb-abc-auth-token", first))

	got, err := repo.Load(ctx, "sb-abc-auth-token")
	require.NoError(t, err)
	assert.Equal(t, first, got)

	second := first
	second.AccessToken = "a2"
	require.NoError(t, repo.Save(ctx, "sb-abc-auth-token", second))

	got, err = repo.Load(ctx, "sb-abc-auth-token")
	require.NoError(t, err)
	assert.Equal(t, "a2", got.AccessToken)

	require.NoError(t, repo.Delete(ctx, "sb-abc-auth-token"))
	_, err = repo.Load(ctx, "sb-abc-auth-token")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// deleting again is not an error
	assert.NoError(t, repo.Delete(ctx, "sb-abc-auth-token"))
}

func TestClientStorages_CloseWithoutDB(t *testing.T) {
	assert.NoError(t, (&ClientStorages{}).Close())
}
