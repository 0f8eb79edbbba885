package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/logistics-net-api/internal/domain"
	"github.com/logistics-net-api/internal/pkg/id"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Register(ctx context.Context, variant domain.Variant, req domain.RegisterRequest) error
	Login(ctx context.Context, variant domain.Variant, creds domain.Credentials) error
}

// Store is the per-variant account table.
// Create must fail with domain.ErrAlreadyExists when the email is taken.
type Store interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Create(ctx context.Context, a *domain.Account) error
}

type service struct {
	stores map[domain.Variant]Store
	cost   int
	now    func() time.Time
}

type ServiceDeps struct {
	Stores map[domain.Variant]Store
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

func NewService(deps ServiceDeps) Service {
	cost := deps.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &service{stores: deps.Stores, cost: cost, now: time.Now}
}

func (s *service) store(variant domain.Variant) (Store, error) {
	st, ok := s.stores[variant]
	if !ok {
		return nil, fmt.Errorf("unknown account type %q: %w", variant, domain.ErrNotFound)
	}
	return st, nil
}

func (s *service) Register(ctx context.Context, variant domain.Variant, req domain.RegisterRequest) error {
	st, err := s.store(variant)
	if err != nil {
		return err
	}
	if err := checkProfile(variant, req); err != nil {
		return err
	}
	if _, err := st.GetByEmail(ctx, req.Email); err == nil {
		return fmt.Errorf("%s %s: %w", variant, req.Email, domain.ErrAlreadyExists)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return err
	}
	a := &domain.Account{
		AccountID:    id.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Variant:      variant,
		Startup:      req.Startup,
		Business:     req.Business,
		Customer:     req.Customer,
		CreatedAt:    s.now().UTC(),
	}
	// Create is conditional, so a racing registration still ends in ErrAlreadyExists.
	return st.Create(ctx, a)
}

func (s *service) Login(ctx context.Context, variant domain.Variant, creds domain.Credentials) error {
	st, err := s.store(variant)
	if err != nil {
		return err
	}
	a, err := st.GetByEmail(ctx, creds.Email)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(creds.Password)); err != nil {
		return domain.ErrInvalidCredentials
	}
	return nil
}

// checkProfile ensures the request carries the profile of the requested variant only.
func checkProfile(variant domain.Variant, req domain.RegisterRequest) error {
	var ok bool
	switch variant {
	case domain.VariantStartup:
		ok = req.Startup != nil && req.Business == nil && req.Customer == nil
	case domain.VariantBusiness:
		ok = req.Business != nil && req.Startup == nil && req.Customer == nil
	case domain.VariantCustomer:
		ok = req.Customer != nil && req.Startup == nil && req.Business == nil
	}
	if !ok {
		return fmt.Errorf("%s profile required: %w", variant, domain.ErrBadRequest)
	}
	return nil
}
