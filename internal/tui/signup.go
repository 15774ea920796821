package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-auth-session/internal/app"
	"github.com/MKhiriev/go-auth-session/internal/service"
	"github.com/MKhiriev/go-auth-session/internal/validators"
	"github.com/MKhiriev/go-auth-session/models"
)

// SignUpModel is the registration page. Sign-up does not sign the user in:
// on success the form is cleared and the sign-in page opens with a notice.
type SignUpModel struct {
	ctx     context.Context
	session service.ClientSessionService

	form       form
	submitting bool
	errMsg     string
}

func NewSignUpModel(ctx context.Context, session service.ClientSessionService) *SignUpModel {
	return &SignUpModel{
		ctx:     ctx,
		session: session,
		form: newForm(
			formField{label: "Имя", placeholder: "first name"},
			formField{label: "Фамилия", placeholder: "last name"},
			formField{label: "Email", placeholder: "email@example.com", charLimit: 254},
			formField{label: "Пароль", placeholder: "password", secret: true, charLimit: 256},
			formField{label: "Повтор пароля", placeholder: "repeat password", secret: true, charLimit: 256},
		),
	}
}

func (m *SignUpModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SignUpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SignUpResult:
		m.submitting = false
		if msg.Err != nil {
			m.errMsg = humanizeError(msg.Err)
			return m, nil
		}

		m.errMsg = ""
		m.form.reset()
		return m, func() tea.Msg {
			return NavigateTo{Page: pageSignIn, Payload: Notice{Text: app.MsgSignedUp}}
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

			req := models.SignUpRequest{
				FirstName: m.form.value(0),
				LastName:  m.form.value(1),
				Email:     m.form.value(2),
				Password:  m.form.rawValue(3),
			}
			repeat := m.form.rawValue(4)

			if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" || repeat == "" {
				m.errMsg = app.MsgAllFieldsRequired
				return m, nil
			}
			if msgText := checkNewPassword(req.Password, repeat); msgText != "" {
				m.errMsg = msgText
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignUp(req)
		}
	}

	return m, m.form.update(msg)
}

func (m *SignUpModel) View() string {
	var b strings.Builder
	m.form.view(&b)

	if m.submitting {
		b.WriteString("\n[Зарегистрироваться...]\n")
	} else {
		b.WriteString("\n[Зарегистрироваться]\n")
	}
	renderStatus(&b, "", m.errMsg)

	return renderPage("РЕГИСТРАЦИЯ", strings.TrimRight(b.String(), "\n"), "esc: назад │ tab: след. поле │ enter: подтвердить")
}

func (m *SignUpModel) cmdSignUp(req models.SignUpRequest) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		_, err := session.Register(ctx, req)
		return SignUpResult{Err: err, Email: req.Email}
	}
}

// checkNewPassword applies the local password rules before anything is sent.
// It returns the message to show, or "" when the password is acceptable.
func checkNewPassword(password, repeat string) string {
	switch err := validators.ValidatePassword(password); err {
	case nil:
	case validators.ErrPasswordTooShort:
		return app.MsgPasswordTooShort
	case validators.ErrPasswordTooLong:
		return app.MsgPasswordTooLong
	default:
		return err.Error()
	}
	if validators.ValidatePasswordConfirmation(password, repeat) != nil {
		return app.MsgPasswordsDoNotMatch
	}
	return ""
}
