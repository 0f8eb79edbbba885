package mail

import (
	"context"
	"log/slog"
)

type logMailer struct {
	log *slog.Logger
}

// NewLogMailer writes messages to the log instead of sending them. Development only.
func NewLogMailer(log *slog.Logger) Mailer {
	return &logMailer{log: log.With("component", "mail")}
}

func (m *logMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	m.log.InfoContext(ctx, "email not sent (log provider)", "to", to, "subject", subject, "body", body)
	return nil
}
