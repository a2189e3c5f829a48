// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line application runtime.
//
// It runs one command against the backend access layer: "status" reports the
// resolved backend, the current session and the admin status; "logout" signs
// the session out and forgets the admin status.
package client
