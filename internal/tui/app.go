package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-auth-session/internal/app"
	"github.com/MKhiriev/go-auth-session/internal/service"
	"github.com/MKhiriev/go-auth-session/models"
)

// protectedPages open only while a session token is stored.
var protectedPages = map[string]bool{
	pageDashboard: true,
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit and the build info overlay
// 3) handles NavigateTo messages, redirecting protected pages to sign in
// 4) delegates all other messages to the active page
type RootModel struct {
	ctx     context.Context
	session service.ClientSessionService

	pages       map[string]tea.Model
	current     tea.Model
	currentPage string

	quitByUser bool
	buildInfo  models.BuildInfo

	showBuildInfo bool
}

// NewRootModel registers all pages and opens startPage, applying the same
// guard as later navigation.
func NewRootModel(ctx context.Context, session service.ClientSessionService, pages map[string]tea.Model, startPage string, buildInfo models.BuildInfo) RootModel {
	r := RootModel{
		ctx:       ctx,
		session:   session,
		pages:     pages,
		buildInfo: buildInfo,
	}
	r.currentPage = r.guard(startPage)
	r.current = pages[r.currentPage]
	return r
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkeys for every page.
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo) && r.currentPage == pageMenu:
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if nav, ok := msg.(NavigateTo); ok {
		return r.navigate(nav)
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	r.pages[r.currentPage] = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("TUI", "", "")
	}
	return r.current.View()
}

// CurrentPage returns the name of the active page.
func (r RootModel) CurrentPage() string {
	return r.currentPage
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	target := r.guard(nav.Page)
	next, exists := r.pages[target]
	if !exists {
		return r, nil
	}

	payload := nav.Payload
	if target != nav.Page {
		payload = Notice{Text: app.MsgLoginRequired}
	}

	r.showBuildInfo = false
	r.current = next
	r.currentPage = target

	if payload != nil {
		return r, tea.Batch(r.current.Init(), func() tea.Msg { return payload })
	}
	return r, r.current.Init()
}

// guard redirects a protected page to sign in when no token is stored.
func (r RootModel) guard(page string) string {
	if protectedPages[page] && !r.session.HasStoredToken(r.ctx) {
		return pageSignIn
	}
	return page
}
