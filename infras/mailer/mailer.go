package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

var ErrNotConfigured = errors.New("smtp is not configured")

type Mail struct {
	To       string
	Subject  string
	HTMLBody string
}

type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

type mailerImpl struct {
	dialer *gomail.Dialer
	from   string
	otel   otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Mailer {
	m := &mailerImpl{
		from: cfg.SMTP.From,
		otel: otel,
	}

	if cfg.SMTP.Host == "" {
		log.Warn().Msg("No SMTP host configured, emails will not be sent")

		return m
	}

	m.dialer = gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password)

	return m
}

// Send dials per message. gomail has no context support so ctx only scopes the span.
func (m *mailerImpl) Send(ctx context.Context, mail Mail) (err error) {
	_, scope := m.otel.NewScope(ctx, constant.OtelMailerScopeName, constant.OtelMailerScopeName+".Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("mail.subject", mail.Subject)

	if m.dialer == nil {
		return ErrNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/html", mail.HTMLBody)

	if err = m.dialer.DialAndSend(msg); err != nil {
		log.Error().Err(err).Str("subject", mail.Subject).Msg("failed to send email")

		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
