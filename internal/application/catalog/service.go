package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/logistics-net-api/internal/domain"
)

// Service looks up static carrier profiles by exact name.
type Service interface {
	Get(name string) (*domain.Company, error)
}

// documentStore fetches a JSON document, e.g. from S3.
type documentStore interface {
	GetJSON(ctx context.Context, key string, v any) error
}

type service struct {
	companies map[string]domain.Company
}

// NewService serves the built-in carrier table.
func NewService() Service {
	return newService(builtin)
}

// Load replaces the built-in table with the document at key when one is configured.
// A failed load keeps the built-in table.
func Load(ctx context.Context, store documentStore, key string) Service {
	if store == nil || key == "" {
		return NewService()
	}
	var doc map[string]domain.Company
	if err := store.GetJSON(ctx, key, &doc); err != nil {
		slog.Warn("catalog override not loaded; using built-in table", "key", key, "err", err)
		return NewService()
	}
	if len(doc) == 0 {
		slog.Warn("catalog override is empty; using built-in table", "key", key)
		return NewService()
	}
	entries := make([]entry, 0, len(doc))
	for name, c := range doc {
		entries = append(entries, entry{name, c})
	}
	slog.Info("catalog loaded", "key", key, "companies", len(entries))
	return newService(entries)
}

type entry struct {
	name    string
	company domain.Company
}

func newService(entries []entry) *service {
	s := &service{companies: make(map[string]domain.Company, len(entries))}
	for _, e := range entries {
		s.companies[e.name] = e.company
	}
	return s
}

func (s *service) Get(name string) (*domain.Company, error) {
	c, ok := s.companies[name]
	if !ok {
		return nil, fmt.Errorf("company %q: %w", name, domain.ErrNotFound)
	}
	return &c, nil
}
