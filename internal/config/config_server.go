package config

import (
	"fmt"
	"strings"
	"time"
)

// ServerApp holds token and link settings used by the server services.
type ServerApp struct {
	TokenSignKey       string
	TokenIssuer        string
	TokenDuration      time.Duration
	ResetTokenDuration time.Duration
	FrontendURL        string
	Version            string
}

// ServerHTTP holds listener settings of the HTTP server.
type ServerHTTP struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	// AllowedOrigins is the CORS allow-list; FrontendURL is always included.
	AllowedOrigins []string
}

// ServerStorage groups server storage backend settings.
type ServerStorage struct {
	DB DB
}

// ServerMail holds SMTP settings for the reset mailer.
type ServerMail struct {
	SMTPHost string
	SMTPPort int
	User     string
	Password string
	From     string
}

// Enabled reports whether SMTP delivery is configured.
func (m ServerMail) Enabled() bool {
	return m.SMTPHost != ""
}

// ServerWorkers contains server background worker settings.
type ServerWorkers struct {
	ResetCleanupInterval time.Duration
}

// ServerConfig is the server configuration view assembled from [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Server  ServerHTTP
	Storage ServerStorage
	Mail    ServerMail
	Workers ServerWorkers
}

// GetServerConfig builds and validates a server-specific config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)

	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	from := cfg.Mail.From
	if from == "" {
		from = cfg.Mail.User
	}

	origins := make([]string, 0, len(cfg.Server.AllowedOrigins)+1)
	if cfg.App.FrontendURL != "" {
		origins = append(origins, strings.TrimRight(cfg.App.FrontendURL, "/"))
	}
	for _, o := range cfg.Server.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return &ServerConfig{
		App: ServerApp{
			TokenSignKey:       cfg.App.TokenSignKey,
			TokenIssuer:        cfg.App.TokenIssuer,
			TokenDuration:      cfg.App.TokenDuration,
			ResetTokenDuration: cfg.App.ResetTokenDuration,
			FrontendURL:        strings.TrimRight(cfg.App.FrontendURL, "/"),
			Version:            cfg.App.Version,
		},
		Server: ServerHTTP{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
			AllowedOrigins: origins,
		},
		Storage: ServerStorage{DB: cfg.Storage.DB},
		Mail: ServerMail{
			SMTPHost: cfg.Mail.SMTPHost,
			SMTPPort: cfg.Mail.SMTPPort,
			User:     cfg.Mail.User,
			Password: cfg.Mail.Password,
			From:     from,
		},
		Workers: ServerWorkers{
			ResetCleanupInterval: cfg.Workers.ResetCleanupInterval,
		},
	}
}
