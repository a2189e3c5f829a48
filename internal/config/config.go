// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Admin policies accepted by [App.AdminPolicy].
const (
	// AdminPolicyRemote asks the backend through the is_admin_user procedure.
	AdminPolicyRemote = "remote"
	// AdminPolicyLocal matches the user's email against the configured
	// admin email list.
	AdminPolicyLocal = "local"
)

// Commands accepted as the first positional argument.
const (
	// CommandStatus prints the resolved connection and the admin status.
	CommandStatus = "status"
	// CommandLogout signs out and clears the cached admin status.
	CommandLogout = "logout"
)

// StructuredConfig is the top-level settings container of the backend
// client. It is populated by merging defaults, a .env file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the admin policy and the
	// log destination.
	App App `envPrefix:"APP_"`

	// Adapter holds settings for the backend HTTP adapter.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds settings for the local session store.
	Storage Storage `envPrefix:"STORAGE_"`

	// DocumentPath is the optional path to the JSON configuration document
	// carrying url, anonKey and adminEmails. It overrides the named
	// attributes and is overridden by the global configuration object.
	// Env: CONFIG; flags: -c, -config.
	DocumentPath string `env:"CONFIG"`

	// EnvFile is the .env file loaded before environment variables are read.
	// Env: ENV_FILE; flag: -env-file.
	EnvFile string `env:"ENV_FILE"`

	// Command is the first positional command-line argument ("status" or
	// "logout"). It has no environment variable.
	Command string
}

// App holds application-level settings.
type App struct {
	// AdminPolicy selects how admin status is decided: [AdminPolicyRemote]
	// or [AdminPolicyLocal].
	// Env: APP_ADMIN_POLICY
	AdminPolicy string `env:"ADMIN_POLICY"`

	// UserEmail is the current user's email, consulted by the local admin
	// policy only.
	// Env: APP_USER_EMAIL
	UserEmail string `env:"USER_EMAIL"`

	// NavigationURL is the URL the client was opened with (e.g. a magic-link
	// redirect). Session tokens found in it are adopted at start-up.
	// Env: APP_NAVIGATION_URL
	NavigationURL string `env:"NAVIGATION_URL"`

	// LogFile is where JSON log entries are appended.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Adapter holds settings for the backend HTTP adapter.
type Adapter struct {
	// RequestTimeout bounds every outbound backend request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RefreshInterval is how often the background job checks whether the
	// session needs refreshing (e.g. "30s").
	// Env: ADAPTER_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Storage groups the configuration of the local persistence backends.
type Storage struct {
	// DB holds the session database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite session database.
type DB struct {
	// DSN is the SQLite database file path (e.g. "session.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Defaults returns the settings used when no source provides a value.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AdminPolicy: AdminPolicyRemote,
		},
		Adapter: Adapter{
			RequestTimeout:  15 * time.Second,
			RefreshInterval: 30 * time.Second,
		},
		Storage: Storage{
			DB: DB{DSN: "session.db"},
		},
		EnvFile: ".env",
		Command: CommandStatus,
	}
}

// GetStructuredConfig loads, merges, and validates the client settings from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Built-in defaults
//  2. .env file (values never override variables already set)
//  3. Environment variables
//  4. Command-line flags parsed from args
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(args).
		withEnv().
		withFlags(args).
		build()
}
