package mail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/logistics-net-api/internal/config"
	"github.com/mailersend/mailersend-go"
)

type mailerSendMailer struct {
	client *mailersend.Mailersend
	from   mailersend.From
}

func NewMailerSendMailer(cfg config.MailConfig) (Mailer, error) {
	if cfg.MailerSendAPIKey == "" {
		return nil, errors.New("missing MAILERSEND_API_KEY")
	}
	return &mailerSendMailer{
		client: mailersend.NewMailersend(cfg.MailerSendAPIKey),
		from:   mailersend.From{Name: cfg.FromName, Email: cfg.From},
	}, nil
}

func (m *mailerSendMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	msg := m.client.Email.NewMessage()
	msg.SetFrom(m.from)
	msg.SetRecipients([]mailersend.Recipient{{Email: to}})
	msg.SetSubject(subject)
	msg.SetText(body)

	res, err := m.client.Email.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("mailersend send: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(res.Body)
		return fmt.Errorf("mailersend send: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(b)))
	}
	return nil
}
