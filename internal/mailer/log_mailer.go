package mailer

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-session/internal/logger"
)

type logMailer struct {
	logger *logger.Logger
}

// NewLogMailer returns a [Mailer] that only logs the link.
func NewLogMailer(log *logger.Logger) Mailer {
	return &logMailer{logger: log}
}

func (m *logMailer) SendPasswordReset(ctx context.Context, to, link string, ttl time.Duration) error {
	logger.FromContext(ctx).Info().
		Str("func", "*logMailer.SendPasswordReset").
		Str("to", to).
		Str("link", link).
		Dur("ttl", ttl).
		Msg("password reset link (SMTP disabled)")
	return nil
}
