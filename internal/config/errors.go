// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingConnection is the cause of every failed resolution that ends
	// without a usable project URL or anon key.
	ErrMissingConnection = errors.New("configuration missing project URL or anon key")

	// ErrMalformedSource indicates a configuration source whose content is
	// not valid JSON.
	ErrMalformedSource = errors.New("malformed configuration source")

	// ErrUnreadableSource indicates a configuration source that exists but
	// could not be read.
	ErrUnreadableSource = errors.New("unreadable configuration source")
)

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown admin policy).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, a negative request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates a missing or in-memory session
	// database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)

// ConfigurationError is returned by [Resolver.Resolve] when the connection
// configuration cannot be produced. Source names the offending source, or is
// empty when the merged result failed validation.
type ConfigurationError struct {
	Source string
	Err    error
}

// Error implements error.
func (e *ConfigurationError) Error() string {
	if e.Source == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s source: %v", e.Source, e.Err)
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
