// Package mail delivers one-time codes by email through a configurable provider.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/logistics-net-api/internal/config"
)

// Mailer sends plain-text emails.
type Mailer interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// New builds the Mailer selected by cfg.Provider.
func New(cfg config.MailConfig) (Mailer, error) {
	switch cfg.Provider {
	case "smtp":
		return NewSMTPMailer(cfg), nil
	case "sendgrid":
		return NewSendGridMailer(cfg)
	case "mailersend":
		return NewMailerSendMailer(cfg)
	case "log":
		return NewLogMailer(slog.Default()), nil
	}
	return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
}
