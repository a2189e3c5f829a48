// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/griswall/playoff-pool/internal/logger"
	"github.com/griswall/playoff-pool/models"
)

func TestCreateClient_InvalidURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "empty", url: "  "},
		{name: "relative", url: "abc.supabase.co"},
		{name: "unsupported scheme", url: "ftp://abc.supabase.co"},
		{name: "unparsable", url: "http://[::1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewRESTSDK(logger.Nop()).CreateClient(tt.url, "anon", ClientOptions{})
			assert.Nil(t, c)
			assert.ErrorIs(t, err, ErrInvalidProjectURL)
		})
	}
}

func TestCreateClient_MissingAnonKey(t *testing.T) {
	c, err := NewRESTSDK(logger.Nop()).CreateClient("https://abc.supabase.co", " ", ClientOptions{})
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrMissingAnonKey)
}

func TestNormalizeProjectURL(t *testing.T) {
	base, ref, err := normalizeProjectURL(" https://abc.supabase.co/ ")
	require.NoError(t, err)
	assert.Equal(t, "https://abc.supabase.co", base)
	assert.Equal(t, "abc", ref)
	assert.Equal(t, "sb-abc-auth-token", storageKey(ref))
}

func TestCreateClient_RestoresPersistedSession(t *testing.T) {
	storage := newMemStorage()
	stored := models.Session{AccessToken: "a", RefreshToken: "r", User: models.User{ID: "u"}}
	require.NoError(t, storage.Save(context.Background(), "sb-abc-auth-token", stored))

	c := newTestClient(t, "https://abc.supabase.co", ClientOptions{PersistSession: true, Storage: storage})

	session, ok := c.Session()
	require.True(t, ok)
	assert.Equal(t, stored, session)
}

func TestCreateClient_PersistenceDisabledIgnoresStorage(t *testing.T) {
	storage := newMemStorage()
	require.NoError(t, storage.Save(context.Background(), "sb-abc-auth-token", models.Session{AccessToken: "a"}))

	c := newTestClient(t, "https://abc.supabase.co", ClientOptions{Storage: storage})

	_, ok := c.Session()
	assert.False(t, ok)
}

func TestCreateClient_DetectsSessionInURL(t *testing.T) {
	storage := newMemStorage()
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	access := signedToken(t, "user-9", "nine@x.com", exp)

	c := newTestClient(t, "https://abc.supabase.co", ClientOptions{
		PersistSession:     true,
		DetectSessionInURL: true,
		Storage:            storage,
		NavigationURL:      "https://pool.example/#access_token=" + access + "&refresh_token=r9&token_type=bearer",
	})

	session, ok := c.Session()
	require.True(t, ok)
	assert.Equal(t, access, session.AccessToken)
	assert.Equal(t, "r9", session.RefreshToken)
	assert.Equal(t, models.User{ID: "user-9", Email: "nine@x.com"}, session.User)
	assert.True(t, exp.Equal(session.ExpiresAt))

	_, persisted := storage.get("sb-abc-auth-token")
	assert.True(t, persisted)
}

func TestCreateClient_DetectionDisabled(t *testing.T) {
	c := newTestClient(t, "https://abc.supabase.co", ClientOptions{
		NavigationURL: "https://pool.example/#access_token=a&refresh_token=r",
	})

	_, ok := c.Session()
	assert.False(t, ok)
}

func TestCreateClient_AutoRefresh(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"fresh","refresh_token":"r2","expires_in":3600}`))
	}))
	defer srv.Close()

	storage := newMemStorage()
	_, ref, err := normalizeProjectURL(srv.URL)
	require.NoError(t, err)
	require.NoError(t, storage.Save(context.Background(), storageKey(ref), models.Session{
		AccessToken:  "stale",
		RefreshToken: "r1",
		ExpiresAt:    time.Now().Add(10 * time.Second),
	}))

	c := newTestClient(t, srv.URL, ClientOptions{
		PersistSession:   true,
		AutoRefreshToken: true,
		Storage:          storage,
		RefreshInterval:  time.Hour,
	})

	assert.Eventually(t, func() bool {
		session, _ := c.Session()
		return session.AccessToken == "fresh"
	}, 2*time.Second, 10*time.Millisecond)

	c.Close()
	assert.Equal(t, int64(1), calls.Load())
}
