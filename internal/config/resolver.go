// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"reflect"
	"sync"

	"dario.cat/mergo"

	"github.com/griswall/playoff-pool/internal/logger"
)

// Resolver produces the process's [ConnectionConfig] from an ordered list of
// sources. Later sources override earlier ones field by field.
//
// Resolution runs once. Its outcome, success or failure, is kept for the
// lifetime of the Resolver and no source is read again.
type Resolver struct {
	sources []Source
	logger  *logger.Logger

	once sync.Once
	cfg  ConnectionConfig
	err  error
}

// NewResolver returns a Resolver over sources, listed from lowest to highest
// precedence.
func NewResolver(log *logger.Logger, sources ...Source) *Resolver {
	return &Resolver{sources: sources, logger: log}
}

// NewDefaultResolver returns a Resolver over the standard sources, lowest
// first: the named attributes, the document at documentPath, then the global
// configuration object. The named attributes only fill in what neither
// structured source provides.
func NewDefaultResolver(documentPath string, log *logger.Logger) *Resolver {
	return NewResolver(log,
		NewAttributeSource(),
		NewDocumentSource(documentPath),
		NewGlobalSource(),
	)
}

// Resolve returns the resolved connection configuration, or the
// [*ConfigurationError] the first resolution ended with.
func (r *Resolver) Resolve() (ConnectionConfig, error) {
	r.once.Do(func() {
		r.cfg, r.err = r.resolve()
		if r.err != nil {
			r.logger.Error().Err(r.err).Msg("connection configuration could not be resolved")
			return
		}
		r.logger.Debug().
			Str("url", r.cfg.URL).
			Int("admin_emails", len(r.cfg.AdminEmails)).
			Msg("connection configuration resolved")
	})

	if r.err != nil {
		return ConnectionConfig{}, r.err
	}
	return r.cfg.clone(), nil
}

func (r *Resolver) resolve() (ConnectionConfig, error) {
	partials := make([]PartialConfig, 0, len(r.sources))
	for _, src := range r.sources {
		p, err := src.Load()
		if err != nil {
			return ConnectionConfig{}, &ConfigurationError{Source: src.Name(), Err: err}
		}
		partials = append(partials, p)
	}

	merged, err := mergePartials(partials...)
	if err != nil {
		return ConnectionConfig{}, &ConfigurationError{Err: err}
	}

	cfg := ConnectionConfig{
		URL:         sanitizeCredential(merged.URL.Value),
		AnonKey:     sanitizeCredential(merged.AnonKey.Value),
		AdminEmails: normalizeAdminEmails(merged.AdminEmails.Values),
	}

	if err = cfg.validate(); err != nil {
		return ConnectionConfig{}, &ConfigurationError{Err: fmt.Errorf("%w: %w", ErrMissingConnection, err)}
	}

	return cfg, nil
}

// mergePartials folds partials left to right. A field provided by a later
// partial replaces the earlier value outright, including lists and empty
// strings; a field it does not provide is left alone.
func mergePartials(partials ...PartialConfig) (PartialConfig, error) {
	var merged PartialConfig
	for _, p := range partials {
		if err := mergo.Merge(&merged, p, mergo.WithTransformers(providedFieldTransformer{})); err != nil {
			return PartialConfig{}, fmt.Errorf("error merging configuration sources: %w", err)
		}
	}
	return merged, nil
}

var (
	optionalStringType  = reflect.TypeOf(optionalString{})
	optionalStringsType = reflect.TypeOf(optionalStrings{})
)

// providedFieldTransformer makes mergo copy an optional field whenever the
// source provided it, regardless of its value.
type providedFieldTransformer struct{}

func (providedFieldTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != optionalStringType && typ != optionalStringsType {
		return nil
	}

	return func(dst, src reflect.Value) error {
		if src.FieldByName("Set").Bool() && dst.CanSet() {
			dst.Set(src)
		}
		return nil
	}
}
