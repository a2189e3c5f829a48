// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/griswall/playoff-pool/internal/config"
	"github.com/griswall/playoff-pool/internal/logger"
	"github.com/griswall/playoff-pool/internal/mock"
	"github.com/griswall/playoff-pool/models"
)

var backend = config.ConnectionConfig{URL: "https://abc.supabase.co", AnonKey: "anon"}

func TestNewApp_UnknownCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	app, err := NewApp(mock.NewMockServices(ctrl), "sync", &bytes.Buffer{}, logger.Nop())
	assert.Nil(t, app)
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestApp_Status(t *testing.T) {
	tests := []struct {
		name    string
		session models.Session
		signed  bool
		admin   bool
		want    string
	}{
		{
			name: "anonymous",
			want: "Backend: https://abc.supabase.co\nSession: none\nAdmin: no\n",
		},
		{
			name:    "signed in admin",
			session: models.Session{AccessToken: "t", User: models.User{ID: "u1", Email: "admin@example.com"}},
			signed:  true,
			admin:   true,
			want:    "Backend: https://abc.supabase.co\nSession: admin@example.com\nAdmin: yes\n",
		},
		{
			name:    "signed in without email",
			session: models.Session{AccessToken: "t", User: models.User{ID: "u1"}},
			signed:  true,
			want:    "Backend: https://abc.supabase.co\nSession: u1\nAdmin: no\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			services := mock.NewMockServices(ctrl)
			client := mock.NewMockClient(ctrl)

			services.EXPECT().GetConfig().Return(backend, nil)
			services.EXPECT().GetClient().Return(client, nil)
			client.EXPECT().Session().Return(tt.session, tt.signed)
			services.EXPECT().CheckIsAdmin(gomock.Any()).Return(tt.admin)
			services.EXPECT().Close()

			var out bytes.Buffer
			app, err := NewApp(services, config.CommandStatus, &out, logger.Nop())
			require.NoError(t, err)

			require.NoError(t, app.Run(context.Background()))
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestApp_Status_ConfigurationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := mock.NewMockServices(ctrl)

	cfgErr := &config.ConfigurationError{Err: config.ErrMissingConnection}
	services.EXPECT().GetConfig().Return(config.ConnectionConfig{}, cfgErr)
	services.EXPECT().Close()

	var out bytes.Buffer
	app, err := NewApp(services, config.CommandStatus, &out, logger.Nop())
	require.NoError(t, err)

	err = app.Run(context.Background())
	assert.ErrorIs(t, err, config.ErrMissingConnection)
	assert.Empty(t, out.String())
}

func TestApp_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := mock.NewMockServices(ctrl)
	client := mock.NewMockClient(ctrl)

	gomock.InOrder(
		services.EXPECT().GetClient().Return(client, nil),
		services.EXPECT().Logout(gomock.Any()).Return(nil),
		services.EXPECT().Close(),
	)

	var out bytes.Buffer
	app, err := NewApp(services, config.CommandLogout, &out, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "Signed out\n", out.String())
}

func TestApp_Logout_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := mock.NewMockServices(ctrl)
	client := mock.NewMockClient(ctrl)

	cause := errors.New("logout: network down")
	services.EXPECT().GetClient().Return(client, nil)
	services.EXPECT().Logout(gomock.Any()).Return(cause)
	services.EXPECT().Close()

	var out bytes.Buffer
	app, err := NewApp(services, config.CommandLogout, &out, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, app.Run(context.Background()), cause)
	assert.Empty(t, out.String())
}

func TestApp_Run_AttachesCommandLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	services := mock.NewMockServices(ctrl)
	client := mock.NewMockClient(ctrl)

	services.EXPECT().GetConfig().Return(backend, nil)
	services.EXPECT().GetClient().Return(client, nil)
	client.EXPECT().Session().Return(models.Session{}, false)
	services.EXPECT().CheckIsAdmin(gomock.Any()).DoAndReturn(func(ctx context.Context) bool {
		logger.FromContext(ctx).Info().Msg("admin check")
		return false
	})
	services.EXPECT().Close()

	var logs bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&logs)}

	app, err := NewApp(services, config.CommandStatus, &bytes.Buffer{}, log)
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(logs.Bytes()), &entry))
	assert.Equal(t, "status", entry["command"])
	assert.Equal(t, "app", entry["component"])
	assert.Equal(t, "admin check", entry["message"])
}
