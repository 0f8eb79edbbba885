package memory

import (
	"context"
	"sync"
	"time"

	"github.com/logistics-net-api/internal/domain"
)

// OTPStore is an in-process OTP ledger for local runs and tests.
// A single mutex serialises every operation, which makes Consume atomic.
type OTPStore struct {
	mu      sync.Mutex
	records map[string]domain.OTPRecord
}

func NewOTPStore() *OTPStore {
	return &OTPStore{records: make(map[string]domain.OTPRecord)}
}

func (s *OTPStore) Put(_ context.Context, rec *domain.OTPRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.Email] = *rec
	return nil
}

func (s *OTPStore) Consume(_ context.Context, email, code string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[email]
	if !ok {
		return domain.ErrOTPInvalidOrExpired
	}
	if !rec.LiveAt(now) {
		delete(s.records, email)
		return domain.ErrOTPInvalidOrExpired
	}
	if rec.Code != code {
		return domain.ErrOTPMismatch
	}
	delete(s.records, email)
	return nil
}
