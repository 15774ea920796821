package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-auth-session/internal/adapter"
	"github.com/MKhiriev/go-auth-session/internal/app"
	"github.com/MKhiriev/go-auth-session/internal/service"
	"github.com/MKhiriev/go-auth-session/models"
)

const dateLayout = "02.01.2006 15:04"

// DashboardModel is the protected page. It shows the cached profile at once,
// then replaces it with the one fetched from the server.
type DashboardModel struct {
	ctx     context.Context
	session service.ClientSessionService

	// copyToClipboard is clipboard.WriteAll outside of tests.
	copyToClipboard func(string) error

	user models.User
	// token is reread on Init and after each profile fetch, not per render.
	token   string
	loading bool
	notice  string
	errMsg  string
}

func NewDashboardModel(ctx context.Context, session service.ClientSessionService) *DashboardModel {
	return &DashboardModel{
		ctx:             ctx,
		session:         session,
		copyToClipboard: clipboard.WriteAll,
	}
}

func (m *DashboardModel) Init() tea.Cmd {
	m.notice = ""
	m.errMsg = ""
	m.user, _ = m.session.CachedProfile(m.ctx)
	m.token, _ = m.session.CurrentToken(m.ctx)
	m.loading = true
	return m.cmdFetchProfile()
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		m.token, _ = m.session.CurrentToken(m.ctx)
		if msg.err != nil {
			m.errMsg = profileErrorMessage(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.user = msg.user
		return m, nil
	case loggedOutMsg:
		m.user = models.User{}
		m.token = ""
		return m, func() tea.Msg {
			return NavigateTo{Page: pageMenu, Payload: Notice{Text: app.MsgLoggedOut}}
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.copy):
			m.copyToken()
		case key.Matches(msg, keys.logout):
			return m, m.cmdLogout()
		case key.Matches(msg, keys.refresh):
			if m.loading {
				return m, nil
			}
			m.loading = true
			m.notice = ""
			return m, m.cmdFetchProfile()
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		}
	}
	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	verified := "нет"
	if m.user.IsVerified {
		verified = "да"
	}
	created := "-"
	if !m.user.CreatedAt.IsZero() {
		created = m.user.CreatedAt.Local().Format(dateLayout)
	}

	rows := [][2]string{
		{"Имя", valueOrDash(m.user.FullName())},
		{"Email", valueOrDash(m.user.Email)},
		{"Создан", created},
		{"Подтверждён", verified},
		{"Токен", valueOrDash(maskToken(m.token))},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%-12s │ %s\n", row[0], row[1]))
	}

	if m.loading {
		b.WriteString("\nЗагрузка профиля...\n")
	}
	renderStatus(&b, m.notice, m.errMsg)

	return renderPage("ЛИЧНЫЙ КАБИНЕТ", strings.TrimRight(b.String(), "\n"), "c: копировать токен │ r: обновить │ l: выйти │ esc: меню")
}

func (m *DashboardModel) copyToken() {
	token, ok := m.session.CurrentToken(m.ctx)
	if !ok {
		m.notice = ""
		m.errMsg = app.MsgNothingToCopy
		return
	}
	if err := m.copyToClipboard(token); err != nil {
		m.errMsg = fmt.Sprintf("Ошибка копирования: %v", err)
		return
	}
	m.errMsg = ""
	m.notice = app.MsgTokenCopied
}

func (m *DashboardModel) cmdFetchProfile() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		user, err := session.FetchCurrentProfile(ctx)
		return profileLoadedMsg{user: user, err: err}
	}
}

func (m *DashboardModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		session.EndSession(ctx)
		return loggedOutMsg{}
	}
}

// profileErrorMessage keeps the stored session: a rejected token is only
// reported, the user decides whether to log out.
func profileErrorMessage(err error) string {
	if errors.Is(err, adapter.ErrUnauthorized) {
		return app.MsgSessionExpired
	}
	if msg := humanizeError(err); msg != "" {
		return msg
	}
	return app.MsgProfileRefreshFailed
}
