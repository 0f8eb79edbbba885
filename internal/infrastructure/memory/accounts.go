package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/logistics-net-api/internal/domain"
)

// AccountStore holds the accounts of one variant in process memory.
type AccountStore struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

func NewAccountStore() *AccountStore {
	return &AccountStore{accounts: make(map[string]domain.Account)}
}

func (s *AccountStore) Create(_ context.Context, a *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[a.Email]; ok {
		return fmt.Errorf("%s %s: %w", a.Variant, a.Email, domain.ErrAlreadyExists)
	}
	s.accounts[a.Email] = *a
	return nil
}

func (s *AccountStore) GetByEmail(_ context.Context, email string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.accounts[email]
	if !ok {
		return nil, fmt.Errorf("account not found: %w", domain.ErrNotFound)
	}
	return &a, nil
}
