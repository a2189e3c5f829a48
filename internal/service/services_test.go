// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/griswall/playoff-pool/internal/adapter"
	"github.com/griswall/playoff-pool/internal/config"
	"github.com/griswall/playoff-pool/internal/logger"
	"github.com/griswall/playoff-pool/internal/mock"
)

type servicesFixture struct {
	resolver *mock.MockConfigResolver
	sdk      *mock.MockSDK
	client   *mock.MockClient
	services *Services
}

func newServicesFixture(t *testing.T, policy string) servicesFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := servicesFixture{
		resolver: mock.NewMockConfigResolver(ctrl),
		sdk:      mock.NewMockSDK(ctrl),
		client:   mock.NewMockClient(ctrl),
	}

	s, err := NewServices(f.resolver, locatorFor(f.sdk), policy, adapter.ClientOptions{}, logger.Nop())
	require.NoError(t, err)
	f.services = s
	return f
}

func TestNewServices_UnknownPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	s, err := NewServices(mock.NewMockConfigResolver(ctrl), nil, "both", adapter.ClientOptions{}, logger.Nop())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnknownAdminPolicy)
}

func TestServices_GetConfig(t *testing.T) {
	f := newServicesFixture(t, config.AdminPolicyRemote)
	f.resolver.EXPECT().Resolve().Return(testConnection, nil)

	cfg, err := f.services.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, testConnection, cfg)
}

func TestServices_RemotePolicy(t *testing.T) {
	f := newServicesFixture(t, config.AdminPolicyRemote)

	f.resolver.EXPECT().Resolve().Return(testConnection, nil).Times(1)
	f.sdk.EXPECT().CreateClient(gomock.Any(), gomock.Any(), gomock.Any()).Return(f.client, nil).Times(1)
	f.client.EXPECT().RPC(gomock.Any(), IsAdminFunction, nil).Return(adapter.RPCResponse{Data: []byte("true")}).Times(1)

	ctx := context.Background()
	assert.True(t, f.services.CheckIsAdmin(ctx))
	assert.True(t, f.services.CheckIsAdmin(ctx))

	client, err := f.services.GetClient()
	require.NoError(t, err)
	assert.Same(t, f.client, client)
}

func TestServices_RemotePolicy_ConfigurationFailure(t *testing.T) {
	f := newServicesFixture(t, config.AdminPolicyRemote)
	f.resolver.EXPECT().Resolve().Return(config.ConnectionConfig{}, &config.ConfigurationError{Err: config.ErrMissingConnection}).Times(1)

	assert.False(t, f.services.CheckIsAdmin(context.Background()))
	assert.False(t, f.services.CheckIsAdmin(context.Background()))
}

func TestServices_LocalPolicy(t *testing.T) {
	f := newServicesFixture(t, config.AdminPolicyLocal)
	f.resolver.EXPECT().Resolve().Return(config.ConnectionConfig{
		URL:         "https://abc.supabase.co",
		AnonKey:     "anon",
		AdminEmails: []string{"admin@example.com"},
	}, nil).AnyTimes()

	ctx := context.Background()
	assert.False(t, f.services.CheckIsAdmin(ctx))

	f.services.SetUserEmail("Admin@Example.com")
	assert.True(t, f.services.CheckIsAdmin(ctx))

	assert.True(t, f.services.IsAdminEmail(" admin@example.com "))
	assert.False(t, f.services.IsAdminEmail("someone@example.com"))
}

func TestServices_IsAdminEmail_ConfigurationFailure(t *testing.T) {
	f := newServicesFixture(t, config.AdminPolicyRemote)
	f.resolver.EXPECT().Resolve().Return(config.ConnectionConfig{}, &config.ConfigurationError{Err: config.ErrMissingConnection})

	assert.False(t, f.services.IsAdminEmail("admin@example.com"))
}

func TestServices_Logout(t *testing.T) {
	t.Run("without client", func(t *testing.T) {
		f := newServicesFixture(t, config.AdminPolicyRemote)
		assert.NoError(t, f.services.Logout(context.Background()))
	})

	t.Run("signs out and clears admin status", func(t *testing.T) {
		f := newServicesFixture(t, config.AdminPolicyRemote)

		f.resolver.EXPECT().Resolve().Return(testConnection, nil)
		f.sdk.EXPECT().CreateClient(gomock.Any(), gomock.Any(), gomock.Any()).Return(f.client, nil)
		gomock.InOrder(
			f.client.EXPECT().RPC(gomock.Any(), IsAdminFunction, nil).Return(adapter.RPCResponse{Data: []byte("true")}),
			f.client.EXPECT().SignOut(gomock.Any()).Return(nil),
			f.client.EXPECT().RPC(gomock.Any(), IsAdminFunction, nil).Return(adapter.RPCResponse{Data: []byte("false")}),
		)

		ctx := context.Background()
		assert.True(t, f.services.CheckIsAdmin(ctx))
		require.NoError(t, f.services.Logout(ctx))
		assert.False(t, f.services.CheckIsAdmin(ctx))
	})

	t.Run("sign out failure still clears admin status", func(t *testing.T) {
		f := newServicesFixture(t, config.AdminPolicyRemote)

		cause := errors.New("network down")
		f.resolver.EXPECT().Resolve().Return(testConnection, nil)
		f.sdk.EXPECT().CreateClient(gomock.Any(), gomock.Any(), gomock.Any()).Return(f.client, nil)
		gomock.InOrder(
			f.client.EXPECT().RPC(gomock.Any(), IsAdminFunction, nil).Return(adapter.RPCResponse{Data: []byte("true")}),
			f.client.EXPECT().SignOut(gomock.Any()).Return(cause),
			f.client.EXPECT().RPC(gomock.Any(), IsAdminFunction, nil).Return(adapter.RPCResponse{Data: []byte("false")}),
		)

		ctx := context.Background()
		assert.True(t, f.services.CheckIsAdmin(ctx))
		assert.ErrorIs(t, f.services.Logout(ctx), cause)
		assert.False(t, f.services.CheckIsAdmin(ctx))
	})
}

func TestServices_Close(t *testing.T) {
	f := newServicesFixture(t, config.AdminPolicyRemote)
	f.resolver.EXPECT().Resolve().Return(testConnection, nil)
	f.sdk.EXPECT().CreateClient(gomock.Any(), gomock.Any(), gomock.Any()).Return(f.client, nil)
	f.client.EXPECT().Close().Times(1)

	_, err := f.services.GetClient()
	require.NoError(t, err)
	f.services.Close()
}

// TestServices_ResolvedConfiguration runs the real resolver over a document
// and a global object; the global anon key wins.
func TestServices_ResolvedConfiguration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "supabase.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"url":"https://x.test","anonKey":"k1"}`), 0o600))

	global := &config.GlobalSource{
		Variable: config.GlobalConfigVariable,
		Lookup: func(string) (string, bool) {
			return `{"anonKey":"k2","adminEmails":["a@b.com"]}`, true
		},
	}
	resolver := config.NewResolver(logger.Nop(),
		&config.AttributeSource{Environment: map[string]string{}},
		config.NewDocumentSource(path),
		global,
	)

	ctrl := gomock.NewController(t)
	sdk := mock.NewMockSDK(ctrl)
	client := mock.NewMockClient(ctrl)
	sdk.EXPECT().CreateClient("https://x.test", "k2", gomock.Any()).Return(client, nil)

	s, err := NewServices(resolver, locatorFor(sdk), config.AdminPolicyLocal, adapter.ClientOptions{}, logger.Nop())
	require.NoError(t, err)

	cfg, err := s.GetConfig()
	require.NoError(t, err)
	assert.Equal(t, config.ConnectionConfig{URL: "https://x.test", AnonKey: "k2", AdminEmails: []string{"a@b.com"}}, cfg)

	got, err := s.GetClient()
	require.NoError(t, err)
	assert.Same(t, client, got)

	assert.True(t, s.IsAdminEmail("A@B.com"))
}
