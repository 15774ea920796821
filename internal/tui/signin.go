// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-auth-session/internal/app"
	"github.com/MKhiriev/go-auth-session/internal/service"
	"github.com/MKhiriev/go-auth-session/models"
)

// SignInModel is the sign-in page: email and password inputs and an async
// Authenticate call on enter. On success the session is stored by the
// session client and the router opens the dashboard.
type SignInModel struct {
	ctx     context.Context
	session service.ClientSessionService

	form       form
	submitting bool
	notice     string
	errMsg     string
}

func NewSignInModel(ctx context.Context, session service.ClientSessionService) *SignInModel {
	return &SignInModel{
		ctx:     ctx,
		session: session,
		form: newForm(
			formField{label: "Email", placeholder: "email@example.com", charLimit: 254},
			formField{label: "Пароль", placeholder: "password", secret: true, charLimit: 256},
		),
	}
}

func (m *SignInModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - [Notice]       — shows a status line (e.g. after sign-up or reset).
//   - [SignInResult] — on success navigates to the dashboard, otherwise shows the error.
//   - esc            — back to the menu.
//   - tab/shift+tab  — moves focus between inputs.
//   - enter          — checks that both fields are filled and submits.
func (m *SignInModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Notice:
		m.notice = msg.Text
		m.errMsg = ""
		return m, nil
	case SignInResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
			return m, nil
		}
		m.errMsg = ""
		m.notice = ""
		m.form.reset()
		return m, func() tea.Msg { return NavigateTo{Page: pageDashboard} }
	case tea.KeyMsg:
		if m.form.handleNavigation(msg) {
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}

			email := m.form.value(0)
			pass := m.form.rawValue(1)
			if email == "" || pass == "" {
				m.errMsg = app.MsgEmailPasswordNeeded
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignIn(email, pass)
		}
	}

	return m, m.form.update(msg)
}

func (m *SignInModel) View() string {
	var b strings.Builder
	m.form.view(&b)

	if m.submitting {
		b.WriteString("\n[Войти...]\n")
	} else {
		b.WriteString("\n[Войти]\n")
	}
	renderStatus(&b, m.notice, m.errMsg)

	return renderPage("ВХОД", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *SignInModel) cmdSignIn(email, pass string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		token, err := session.Authenticate(ctx, models.SignInRequest{Email: email, Password: pass})
		return SignInResult{Err: err, Token: token}
	}
}
