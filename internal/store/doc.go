// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists client state in a local SQLite database.
//
// The schema is managed by goose migrations embedded in the migrations
// package; queries are built with squirrel.
package store
