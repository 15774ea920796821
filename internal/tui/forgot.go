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

// ForgotPasswordModel asks for an email and requests a reset link. The
// acknowledgement is the same whether or not the address is registered.
type ForgotPasswordModel struct {
	ctx     context.Context
	session service.ClientSessionService

	form       form
	submitting bool
	notice     string
	errMsg     string
}

func NewForgotPasswordModel(ctx context.Context, session service.ClientSessionService) *ForgotPasswordModel {
	return &ForgotPasswordModel{
		ctx:     ctx,
		session: session,
		form:    newForm(formField{label: "Email", placeholder: "email@example.com", charLimit: 254}),
	}
}

func (m *ForgotPasswordModel) Init() tea.Cmd {
	m.notice = ""
	m.errMsg = ""
	return textinput.Blink
}

func (m *ForgotPasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ForgotResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
			return m, nil
		}
		m.errMsg = ""
		m.notice = msg.Ack.Message
		m.form.reset()
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.submitting = false
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			email := m.form.value(0)
			if email == "" {
				m.errMsg = app.MsgEmailNeeded
				return m, nil
			}
			m.errMsg = ""
			m.notice = ""
			m.submitting = true
			return m, m.cmdRequestReset(email)
		}
	}

	return m, m.form.update(msg)
}

func (m *ForgotPasswordModel) View() string {
	var b strings.Builder
	m.form.view(&b)

	if m.submitting {
		b.WriteString("\n[Отправить ссылку...]\n")
	} else {
		b.WriteString("\n[Отправить ссылку]\n")
	}
	renderStatus(&b, m.notice, m.errMsg)

	return renderPage("ВОССТАНОВЛЕНИЕ ПАРОЛЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ enter: подтвердить")
}

func (m *ForgotPasswordModel) cmdRequestReset(email string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		ack, err := session.RequestPasswordReset(ctx, email)
		return ForgotResult{Err: err, Ack: ack}
	}
}
