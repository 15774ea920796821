package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-auth-session/internal/logger"
	"github.com/MKhiriev/go-auth-session/internal/service"
)

var (
	errNoServices = errors.New("client: services are not set")
	errNoUI       = errors.New("client: ui is not set")
)

var _ Client = (*App)(nil)

type App struct {
	session service.ClientSessionService
	ui      UI
	logger  *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.SessionService == nil {
		return nil, errNoServices
	}
	if ui == nil {
		return nil, errNoUI
	}
	return &App{session: services.SessionService, ui: ui, logger: logger}, nil
}

// Run checks a token left from a previous launch and starts the UI.
// A token the server no longer accepts is removed before the UI starts.
func (a *App) Run(ctx context.Context) error {
	authenticated := a.restoreSession(ctx)

	if err := a.ui.Run(ctx, authenticated); err != nil {
		return fmt.Errorf("ui run: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}

func (a *App) restoreSession(ctx context.Context) bool {
	if !a.session.HasStoredToken(ctx) {
		a.logger.Debug().Msg("no stored session")
		return false
	}

	if a.session.VerifySession(ctx) {
		a.logger.Info().Msg("stored session restored")
		return true
	}

	a.logger.Info().Msg("stored session rejected, signing out")
	a.session.EndSession(ctx)
	return false
}
