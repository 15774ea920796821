package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/MKhiriev/go-auth-session/internal/config"
	"github.com/MKhiriev/go-auth-session/internal/logger"
)

const resetSubject = "Password Reset Request"

type smtpMailer struct {
	host     string
	port     int
	user     string
	password string
	from     string

	logger *logger.Logger
	// send is swapped in tests.
	send func(ctx context.Context, msg *mail.Msg) error
}

// NewSMTPMailer returns a [Mailer] that talks to cfg.SMTPHost, upgrading
// the connection with STARTTLS when the server offers it.
func NewSMTPMailer(cfg config.ServerMail, log *logger.Logger) Mailer {
	m := &smtpMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.User,
		password: cfg.Password,
		from:     cfg.From,
		logger:   log,
	}
	m.send = m.dialAndSend
	return m
}

func (m *smtpMailer) SendPasswordReset(ctx context.Context, to, link string, ttl time.Duration) error {
	log := logger.FromContext(ctx)

	msg, err := m.buildResetMessage(to, link, ttl, time.Now())
	if err != nil {
		log.Err(err).Str("func", "*smtpMailer.SendPasswordReset").Str("to", to).Msg("error building reset email")
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	if err = m.send(ctx, msg); err != nil {
		log.Err(err).Str("func", "*smtpMailer.SendPasswordReset").Str("to", to).Msg("error sending reset email")
		return fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	log.Info().Str("func", "*smtpMailer.SendPasswordReset").Str("to", to).Msg("reset email sent")
	return nil
}

func (m *smtpMailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(m.port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if m.user != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.user),
			mail.WithPassword(m.password),
		)
	}

	client, err := mail.NewClient(m.host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}

func (m *smtpMailer) buildResetMessage(to, link string, ttl time.Duration, now time.Time) (*mail.Msg, error) {
	msg := mail.NewMsg(mail.WithEncoding(mail.NoEncoding))
	if err := msg.From(m.from); err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	msg.Subject(resetSubject)
	msg.SetDateWithValue(now)
	msg.SetBodyString(mail.TypeTextPlain, resetBody(link, ttl))

	return msg, nil
}

func resetBody(link string, ttl time.Duration) string {
	var b strings.Builder

	b.WriteString("Hello,\r\n\r\n")
	b.WriteString("You requested to reset your password. Open the link below to set a new one:\r\n\r\n")
	b.WriteString(link + "\r\n\r\n")
	fmt.Fprintf(&b, "The link expires in %s. If you did not request a reset, ignore this email.\r\n", humanDuration(ttl))

	return b.String()
}

// humanDuration renders whole hours and minutes as "1 hour", "30 minutes" or
// "1 hour 30 minutes"; anything finer falls back to Duration.String.
func humanDuration(d time.Duration) string {
	if d <= 0 || d%time.Minute != 0 {
		return d.String()
	}

	hours := int(d / time.Hour)
	minutes := int((d % time.Hour) / time.Minute)

	var parts []string
	if hours > 0 {
		parts = append(parts, plural(hours, "hour"))
	}
	if minutes > 0 {
		parts = append(parts, plural(minutes, "minute"))
	}
	return strings.Join(parts, " ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
