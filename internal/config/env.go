// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from APP_*, SERVER_*, STORAGE_*, ADAPTER_*, MAIL_* and
// WORKERS_* variables, following the envPrefix tags of [StructuredConfig].
// List values such as SERVER_ALLOWED_ORIGINS are comma separated.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
