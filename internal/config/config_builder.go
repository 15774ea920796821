package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Defaults applied before any other source.
const (
	defaultServerAddress        = "localhost:8000"
	defaultAdapterAddress       = "http://localhost:8000"
	defaultBasePath             = "/api/auth"
	defaultTokenIssuer          = "go-auth-session"
	defaultTokenDuration        = 30 * time.Minute
	defaultResetTokenDuration   = time.Hour
	defaultFrontendURL          = "http://localhost:3000"
	defaultSMTPPort             = 587
	defaultLocalDSN             = "session.db"
	defaultResetCleanupInterval = 15 * time.Minute
	defaultVersion              = "1.0.0"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags := ParseFlags()

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:        defaultTokenIssuer,
			TokenDuration:      defaultTokenDuration,
			ResetTokenDuration: defaultResetTokenDuration,
			FrontendURL:        defaultFrontendURL,
			Version:            defaultVersion,
		},
		Storage: Storage{
			Local: Local{DSN: defaultLocalDSN},
		},
		Server: Server{
			HTTPAddress: defaultServerAddress,
		},
		Adapter: Adapter{
			HTTPAddress: defaultAdapterAddress,
			BasePath:    defaultBasePath,
		},
		Mail: Mail{
			SMTPPort: defaultSMTPPort,
		},
		Workers: Workers{
			ResetCleanupInterval: defaultResetCleanupInterval,
		},
	}
}
