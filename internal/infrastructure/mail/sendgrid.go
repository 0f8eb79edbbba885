package mail

import (
	"context"
	"errors"
	"fmt"

	"github.com/logistics-net-api/internal/config"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func NewSendGridMailer(cfg config.MailConfig) (Mailer, error) {
	if cfg.SendGridAPIKey == "" {
		return nil, errors.New("missing SENDGRID_API_KEY")
	}
	return &sendGridMailer{
		client: sendgrid.NewSendClient(cfg.SendGridAPIKey),
		from:   sgmail.NewEmail(cfg.FromName, cfg.From),
	}, nil
}

func (m *sendGridMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	msg := sgmail.NewSingleEmail(m.from, subject, sgmail.NewEmail("", to), body, "")
	resp, err := m.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid send: status=%d body=%s", resp.StatusCode, resp.Body)
	}
	return nil
}
