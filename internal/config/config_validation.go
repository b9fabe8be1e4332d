// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return ErrInvalidServerConfigs
	}

	// Tokens are only issued and verified by the HTTP API.
	if cfg.Server.HTTPAddress != "" {
		if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration == 0 {
			return ErrInvalidAppConfigs
		}
	}

	if cfg.Workers.CleanupSchedule != "" && cfg.Workers.AuditRetention == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
