// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// placeholderPrefix marks template values that were never replaced with real
// credentials. Matching is case-insensitive.
const placeholderPrefix = "YOUR_"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ConnectionConfig is the resolved, validated set of backend connection
// parameters. Values returned by [Resolver.Resolve] are copies; mutating one
// does not affect later calls.
type ConnectionConfig struct {
	// URL is the backend project's base URL.
	URL string `json:"url" validate:"required"`

	// AnonKey is the project's public anonymous API key.
	AnonKey string `json:"anonKey" validate:"required"`

	// AdminEmails is the lower-cased admin allow-list used by the local admin
	// policy. Blank entries are removed; order and duplicates are kept.
	AdminEmails []string `json:"adminEmails,omitempty" validate:"omitempty,dive,required"`
}

func (c ConnectionConfig) clone() ConnectionConfig {
	c.AdminEmails = slices.Clone(c.AdminEmails)
	return c
}

func (c ConnectionConfig) validate() error {
	return validate.Struct(c)
}

// optionalString is a string that remembers whether a source provided it.
type optionalString struct {
	Value string
	Set   bool
}

// optionalStrings is a string list that remembers whether a source provided it.
type optionalStrings struct {
	Values []string
	Set    bool
}

func someString(v string) optionalString {
	return optionalString{Value: v, Set: true}
}

func someStrings(v ...string) optionalStrings {
	return optionalStrings{Values: v, Set: true}
}

// PartialConfig is one source's contribution to a [ConnectionConfig].
// A field left unset by the source never overrides a lower-precedence value.
type PartialConfig struct {
	URL         optionalString
	AnonKey     optionalString
	AdminEmails optionalStrings
}

// UnmarshalJSON decodes a configuration block of the shape
// {"url": string, "anonKey": string, "adminEmails": [string]}.
//
// Only syntax errors are reported. Unknown keys are ignored, url and anonKey
// are taken only when they are JSON strings, adminEmails only when it is an
// array, and non-string array entries are dropped. A valid document that is
// not an object contributes nothing.
func (p *PartialConfig) UnmarshalJSON(data []byte) error {
	if !json.Valid(data) {
		var probe any
		return json.Unmarshal(data, &probe)
	}

	*p = PartialConfig{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}

	p.URL = stringField(fields["url"])
	p.AnonKey = stringField(fields["anonKey"])
	p.AdminEmails = stringListField(fields["adminEmails"])

	return nil
}

func stringField(raw json.RawMessage) optionalString {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return optionalString{}
	}

	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return optionalString{}
	}
	return someString(v)
}

func stringListField(raw json.RawMessage) optionalStrings {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return optionalStrings{}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return optionalStrings{}
	}

	values := make([]string, 0, len(items))
	for _, item := range items {
		if s := stringField(item); s.Set {
			values = append(values, s.Value)
		}
	}
	return someStrings(values...)
}

// sanitizeCredential trims v and blanks it when it is an unedited template
// placeholder.
func sanitizeCredential(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= len(placeholderPrefix) && strings.EqualFold(v[:len(placeholderPrefix)], placeholderPrefix) {
		return ""
	}
	return v
}

// NormalizeEmail trims and lower-cases an email address for comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func normalizeAdminEmails(emails []string) []string {
	if emails == nil {
		return nil
	}

	out := make([]string, 0, len(emails))
	for _, e := range emails {
		if e = NormalizeEmail(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}
