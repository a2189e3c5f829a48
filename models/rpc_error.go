// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// RPCError is the error half of a remote procedure call result. Its JSON
// shape follows the backend's REST error body.
type RPCError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`

	// Status is the HTTP status code of the failed call, or zero when the
	// call never reached the backend.
	Status int `json:"-"`
}

// Error implements error.
func (e *RPCError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("rpc error %s: %s", e.Code, e.Message)
	}
	return "rpc error: " + e.Message
}
