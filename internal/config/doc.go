// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the backend client.
//
// Two kinds of configuration live here:
//
//   - [StructuredConfig] holds the client's own settings (admin policy, log
//     file, session database, timeouts). It is assembled by a builder from a
//     .env file, environment variables and command-line flags; later sources
//     override earlier non-zero fields.
//   - [ConnectionConfig] holds the backend project's connection credentials.
//     It is produced once per process by a [Resolver] from an ordered list of
//     [Source] values: the named attributes, the configuration document and
//     the global configuration object, each overriding the previous one.
//
// A resolution failure is a [*ConfigurationError] and is remembered for the
// lifetime of the [Resolver]: fixing the source requires a restart.
package config
