// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/goccy/go-json"
)

// GlobalConfigVariable is the environment variable holding the global
// configuration object as JSON.
const GlobalConfigVariable = "SUPABASE_CONFIG"

// Source provides one layer of connection configuration. An absent source
// returns a zero [PartialConfig] and a nil error.
type Source interface {
	// Name identifies the source in errors and logs.
	Name() string
	// Load reads the source. It is called at most once per [Resolver].
	Load() (PartialConfig, error)
}

// DocumentSource reads the configuration block embedded in the hosting
// document: a JSON file at Path. An empty Path, a missing file or a
// whitespace-only file mean the source is absent.
type DocumentSource struct {
	Path string
}

// NewDocumentSource returns a [DocumentSource] for path.
func NewDocumentSource(path string) *DocumentSource {
	return &DocumentSource{Path: path}
}

// Name implements [Source].
func (s *DocumentSource) Name() string {
	return "document"
}

// Load implements [Source].
func (s *DocumentSource) Load() (PartialConfig, error) {
	if s.Path == "" {
		return PartialConfig{}, nil
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return PartialConfig{}, nil
		}
		return PartialConfig{}, fmt.Errorf("%w: %w", ErrUnreadableSource, err)
	}

	return decodeBlock(data)
}

// GlobalSource reads the global configuration object, a JSON value stored in
// an environment variable. An unset or blank variable means the source is
// absent.
type GlobalSource struct {
	Variable string
	// Lookup resolves Variable; os.LookupEnv when nil.
	Lookup func(key string) (string, bool)
}

// NewGlobalSource returns a [GlobalSource] reading [GlobalConfigVariable]
// from the process environment.
func NewGlobalSource() *GlobalSource {
	return &GlobalSource{Variable: GlobalConfigVariable, Lookup: os.LookupEnv}
}

// Name implements [Source].
func (s *GlobalSource) Name() string {
	return "global"
}

// Load implements [Source].
func (s *GlobalSource) Load() (PartialConfig, error) {
	lookup := s.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	raw, ok := lookup(s.Variable)
	if !ok {
		return PartialConfig{}, nil
	}

	return decodeBlock([]byte(raw))
}

func decodeBlock(data []byte) (PartialConfig, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return PartialConfig{}, nil
	}

	var p PartialConfig
	if err := json.Unmarshal(data, &p); err != nil {
		return PartialConfig{}, fmt.Errorf("%w: %w", ErrMalformedSource, err)
	}
	return p, nil
}

// namedAttributes maps the individually named host attributes. An empty
// value is indistinguishable from an unset one and counts as not provided.
type namedAttributes struct {
	URL         string   `env:"SUPABASE_URL"`
	AnonKey     string   `env:"SUPABASE_ANON_KEY"`
	AdminEmails []string `env:"SUPABASE_ADMIN_EMAILS" envSeparator:","`
}

// AttributeSource reads the discrete named attributes SUPABASE_URL,
// SUPABASE_ANON_KEY and SUPABASE_ADMIN_EMAILS (comma-separated).
type AttributeSource struct {
	// Environment overrides the process environment when non-nil.
	Environment map[string]string
}

// NewAttributeSource returns an [AttributeSource] reading the process
// environment.
func NewAttributeSource() *AttributeSource {
	return &AttributeSource{}
}

// Name implements [Source].
func (s *AttributeSource) Name() string {
	return "attributes"
}

// Load implements [Source].
func (s *AttributeSource) Load() (PartialConfig, error) {
	var attrs namedAttributes
	if err := env.ParseWithOptions(&attrs, env.Options{Environment: s.Environment}); err != nil {
		return PartialConfig{}, fmt.Errorf("%w: %w", ErrUnreadableSource, err)
	}

	var p PartialConfig
	if attrs.URL != "" {
		p.URL = someString(attrs.URL)
	}
	if attrs.AnonKey != "" {
		p.AnonKey = someString(attrs.AnonKey)
	}
	if len(attrs.AdminEmails) > 0 {
		p.AdminEmails = someStrings(attrs.AdminEmails...)
	}

	return p, nil
}
