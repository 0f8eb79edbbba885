package mail

import (
	"context"
	"fmt"
	netmail "net/mail"
	"net/smtp"

	"github.com/logistics-net-api/internal/config"
)

type smtpMailer struct {
	host     string
	port     string
	from     netmail.Address
	username string
	password string
	send     func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer sends through an authenticated SMTP relay such as Gmail.
// smtp.SendMail upgrades to STARTTLS when the server offers it.
func NewSMTPMailer(cfg config.MailConfig) Mailer {
	return &smtpMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     netmail.Address{Name: cfg.FromName, Address: cfg.From},
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		send:     smtp.SendMail,
	}
}

func (m *smtpMailer) SendEmail(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := m.send(addr, auth, m.from.Address, []string{to}, buildMessage(m.from, to, subject, body)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func buildMessage(from netmail.Address, to, subject, body string) []byte {
	return []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s",
		from.String(), to, subject, body,
	))
}
