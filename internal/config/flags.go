// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"io"
)

// ParseFlags parses the client command line. args excludes the program name.
//
// Flags:
//
//	-c/-config configuration document path (url, anonKey, adminEmails)
//	-env-file .env file path
//	-policy admin policy: remote or local
//	-email current user's email (local admin policy)
//	-navigation-url URL the client was opened with
//	-log-file log file path
//	-request-timeout backend request timeout (e.g., "15s", "1m")
//	-refresh-interval session refresh check interval (e.g., "30s")
//	-d session database DSN
//
// The first positional argument, if any, becomes [StructuredConfig.Command].
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("playoff-pool", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var documentPath string
	var envFile string
	var adminPolicy string
	var userEmail string
	var navigationURL string
	var logFile string
	var requestTimeout, refreshInterval DurationFlag
	var databaseDSN string

	fs.StringVar(&documentPath, "c", "", "Configuration document path")
	fs.StringVar(&documentPath, "config", "", "Configuration document path (alias)")
	fs.StringVar(&envFile, "env-file", "", ".env file path")
	fs.StringVar(&adminPolicy, "policy", "", "Admin policy: remote or local")
	fs.StringVar(&userEmail, "email", "", "Current user's email")
	fs.StringVar(&navigationURL, "navigation-url", "", "URL the client was opened with")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.Var(&requestTimeout, "request-timeout", "Request timeout (e.g., 15s, 1m)")
	fs.Var(&refreshInterval, "refresh-interval", "Session refresh check interval (e.g., 30s)")
	fs.StringVar(&databaseDSN, "d", "", "Session database DSN")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			AdminPolicy:   adminPolicy,
			UserEmail:     userEmail,
			NavigationURL: navigationURL,
			LogFile:       logFile,
		},
		Adapter: Adapter{
			RequestTimeout:  requestTimeout.Duration,
			RefreshInterval: refreshInterval.Duration,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		DocumentPath: documentPath,
		EnvFile:      envFile,
		Command:      fs.Arg(0),
	}, nil
}

// envFileFlag extracts -env-file from args without failing on other flags.
func envFileFlag(args []string) string {
	cfg, err := ParseFlags(args)
	if err != nil {
		return ""
	}
	return cfg.EnvFile
}
