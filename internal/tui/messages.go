package tui

import (
	"github.com/MKhiriev/go-auth-session/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu      = "menu"
	pageSignIn    = "signin"
	pageSignUp    = "signup"
	pageForgot    = "forgot"
	pageReset     = "reset"
	pageDashboard = "dashboard"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// Notice is a one-line status shown on top of a page.
type Notice struct {
	Text string
}

type SignInResult struct {
	Err   error
	Token models.AccessToken
}

type SignUpResult struct {
	Err   error
	Email string
}

type ForgotResult struct {
	Err error
	Ack models.MessageResponse
}

type ResetResult struct {
	Err error
}

type profileLoadedMsg struct {
	user models.User
	err  error
}

type loggedOutMsg struct{}
