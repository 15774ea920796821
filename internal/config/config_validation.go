// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by every binary.
//
// Role-specific checks live in [ServerConfig.validate] and [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration < 0 || cfg.App.ResetTokenDuration < 0 {
		return ErrInvalidAppConfigs
	}
	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" ||
		cfg.App.TokenDuration <= 0 || cfg.App.ResetTokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Mail.Enabled() && (cfg.Mail.SMTPPort <= 0 || cfg.Mail.From == "") {
		return ErrInvalidMailConfigs
	}

	if cfg.Workers.ResetCleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
