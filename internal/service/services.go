package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-session/internal/config"
	"github.com/MKhiriev/go-auth-session/internal/crypto"
	"github.com/MKhiriev/go-auth-session/internal/logger"
	"github.com/MKhiriev/go-auth-session/internal/mailer"
	"github.com/MKhiriev/go-auth-session/internal/store"
)

// Services groups the server-side services handed to the HTTP handlers.
type Services struct {
	AuthService          AuthService
	PasswordResetService PasswordResetService
	AppInfoService       AppInfoService
}

func NewServices(repositories *store.Repositories, m mailer.Mailer, cfg config.ServerApp, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	hasher := crypto.NewPasswordHasher()

	return &Services{
		AuthService:          NewAuthService(repositories.UserRepository, hasher, cfg, logger),
		PasswordResetService: NewPasswordResetService(repositories.UserRepository, repositories.PasswordResetRepository, hasher, m, cfg, logger),
		AppInfoService:       appInfo,
	}, nil
}
