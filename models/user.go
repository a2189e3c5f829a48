// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is the identity attached to an auth session. Only the fields the
// client needs to reason about privilege are kept.
type User struct {
	// ID is the backend's user identifier (the "sub" claim of the access token).
	ID string `json:"id"`

	// Email is the address the user signed in with. It is the value matched
	// against the admin email list when the local admin policy is active.
	Email string `json:"email"`
}
