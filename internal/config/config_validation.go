// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.AdminPolicy {
	case AdminPolicyRemote, AdminPolicyLocal:
	default:
		return fmt.Errorf("%w: unknown admin policy %q", ErrInvalidAppConfigs, cfg.App.AdminPolicy)
	}

	switch cfg.Command {
	case CommandStatus, CommandLogout:
	default:
		return fmt.Errorf("%w: unknown command %q", ErrInvalidAppConfigs, cfg.Command)
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RefreshInterval <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
