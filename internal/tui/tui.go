package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-auth-session/internal/logger"
	"github.com/MKhiriev/go-auth-session/internal/service"
	"github.com/MKhiriev/go-auth-session/models"
)

var errNoSessionService = errors.New("tui: session service is not set")

type TUI struct {
	session   service.ClientSessionService
	buildInfo models.BuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.BuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.SessionService == nil {
		return nil, errNoSessionService
	}
	return &TUI{session: services.SessionService, buildInfo: buildInfo, logger: logger}, nil
}

// Pages builds every page of the client, keyed by page name.
func (t *TUI) Pages(ctx context.Context) map[string]tea.Model {
	return map[string]tea.Model{
		pageMenu:      NewMenuModel(),
		pageSignIn:    NewSignInModel(ctx, t.session),
		pageSignUp:    NewSignUpModel(ctx, t.session),
		pageForgot:    NewForgotPasswordModel(ctx, t.session),
		pageReset:     NewResetPasswordModel(ctx, t.session),
		pageDashboard: NewDashboardModel(ctx, t.session),
	}
}

// Run shows the UI until the user quits. authenticated selects the start
// page: the dashboard for a verified session, the menu otherwise.
func (t *TUI) Run(ctx context.Context, authenticated bool) error {
	start := pageMenu
	if authenticated {
		start = pageDashboard
	}

	root := NewRootModel(ctx, t.session, t.Pages(ctx), start, t.buildInfo)
	t.logger.Info().Str("start_page", root.CurrentPage()).Msg("starting tui")

	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
