// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the backend
// adapter and the session store: HTTP client construction, unverified JWT
// claim inspection and request identifiers.
package utils
