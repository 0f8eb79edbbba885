package otp

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/logistics-net-api/internal/domain"
	pkgtoken "github.com/logistics-net-api/internal/pkg/token"
)

const (
	DefaultTTL   = 300 * time.Second
	emailSubject = "Your Verification Code"
)

type Service interface {
	// IssueCode replaces any pending code for email and mails the new one.
	IssueCode(ctx context.Context, email string) error
	// VerifyCode consumes the pending code for email if it matches.
	VerifyCode(ctx context.Context, email, code string) error
}

// Ledger stores at most one pending code per email.
// Consume must match and delete in one atomic step.
type Ledger interface {
	Put(ctx context.Context, rec *domain.OTPRecord) error
	Consume(ctx context.Context, email, code string, now time.Time) error
}

type mailer interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

type service struct {
	ledger  Ledger
	mailer  mailer
	ttl     time.Duration
	now     func() time.Time
	newCode func() (string, error)
}

type ServiceDeps struct {
	Ledger Ledger
	Mailer mailer
	TTL    time.Duration
	// Clock and CodeGen default to time.Now and token.NewOTP.
	Clock   func() time.Time
	CodeGen func() (string, error)
}

func NewService(deps ServiceDeps) Service {
	s := &service{
		ledger:  deps.Ledger,
		mailer:  deps.Mailer,
		ttl:     deps.TTL,
		now:     deps.Clock,
		newCode: deps.CodeGen,
	}
	if s.ttl <= 0 {
		s.ttl = DefaultTTL
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newCode == nil {
		s.newCode = pkgtoken.NewOTP
	}
	return s
}

func (s *service) IssueCode(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("email is required: %w", domain.ErrBadRequest)
	}
	code, err := s.newCode()
	if err != nil {
		return err
	}
	now := s.now().UTC()
	rec := &domain.OTPRecord{
		Email:     email,
		Code:      code,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.ttl).Unix(),
	}
	if err := s.ledger.Put(ctx, rec); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}
	// The stored code stays live if dispatch fails; the next issuance replaces it.
	if err := s.mailer.SendEmail(ctx, email, emailSubject, s.body(code)); err != nil {
		slog.Error("failed to send otp email", "email", email, "err", err)
		return fmt.Errorf("send otp email: %v: %w", err, domain.ErrUpstream)
	}
	return nil
}

func (s *service) VerifyCode(ctx context.Context, email, code string) error {
	if strings.TrimSpace(email) == "" || code == "" {
		return fmt.Errorf("email and otp are required: %w", domain.ErrBadRequest)
	}
	return s.ledger.Consume(ctx, email, code, s.now())
}

func (s *service) body(code string) string {
	minutes := int(math.Ceil(s.ttl.Minutes()))
	unit := "minutes"
	if minutes == 1 {
		unit = "minute"
	}
	return fmt.Sprintf("Your OTP for Logistics Net is: %s. It will expire in %d %s.", code, minutes, unit)
}
