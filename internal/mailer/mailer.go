// Package mailer delivers password reset links. An SMTP implementation is
// used when a host is configured; otherwise links are written to the log so
// the reset flow can be exercised locally.
package mailer

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-session/internal/config"
	"github.com/MKhiriev/go-auth-session/internal/logger"
)

//go:generate mockgen -source=mailer.go -destination=../mock/mailer_mock.go -package=mock

// ErrSendFailed wraps every delivery failure.
var ErrSendFailed = errors.New("failed to send email")

// Mailer sends transactional emails.
type Mailer interface {
	// SendPasswordReset delivers link to the given address. ttl is how long
	// the link stays usable and is quoted in the message.
	SendPasswordReset(ctx context.Context, to, link string, ttl time.Duration) error
}

// New picks the SMTP mailer when cfg is enabled, the logging one otherwise.
func New(cfg config.ServerMail, log *logger.Logger) Mailer {
	if cfg.Enabled() {
		return NewSMTPMailer(cfg, log)
	}
	log.Warn().Msg("SMTP is not configured, reset links will be written to the log")
	return NewLogMailer(log)
}

// ResetLink builds "{frontendURL}/reset-password?token=..." with the token
// query-escaped.
func ResetLink(frontendURL, token string) string {
	return strings.TrimRight(frontendURL, "/") + "/reset-password?token=" + url.QueryEscape(token)
}
