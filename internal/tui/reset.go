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
)

// ResetPasswordModel completes a password reset with the token from the
// email link. The stored session is left alone.
type ResetPasswordModel struct {
	ctx     context.Context
	session service.ClientSessionService

	form       form
	submitting bool
	errMsg     string
}

func NewResetPasswordModel(ctx context.Context, session service.ClientSessionService) *ResetPasswordModel {
	return &ResetPasswordModel{
		ctx:     ctx,
		session: session,
		form: newForm(
			formField{label: "Токен", placeholder: "token from email"},
			formField{label: "Новый пароль", placeholder: "password", secret: true, charLimit: 256},
			formField{label: "Повтор пароля", placeholder: "repeat password", secret: true, charLimit: 256},
		),
	}
}

func (m *ResetPasswordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ResetPasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ResetResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
			return m, nil
		}
		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageSignIn, Payload: Notice{Text: app.MsgPasswordUpdated}}
		}
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

			token := m.form.value(0)
			pass := m.form.rawValue(1)
			repeat := m.form.rawValue(2)
			if token == "" {
				m.errMsg = app.MsgResetTokenNeeded
				return m, nil
			}
			if msgText := checkNewPassword(pass, repeat); msgText != "" {
				m.errMsg = msgText
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdReset(token, pass)
		}
	}

	return m, m.form.update(msg)
}

func (m *ResetPasswordModel) View() string {
	var b strings.Builder
	m.form.view(&b)

	if m.submitting {
		b.WriteString("\n[Сменить пароль...]\n")
	} else {
		b.WriteString("\n[Сменить пароль]\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage("СБРОС ПАРОЛЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *ResetPasswordModel) cmdReset(token, pass string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		_, err := session.CompletePasswordReset(ctx, token, pass)
		return ResetResult{Err: err}
	}
}
