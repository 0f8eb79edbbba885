package recommend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/logistics-net-api/internal/domain"
	"github.com/logistics-net-api/internal/pkg/validate"
)

type Service interface {
	Recommend(ctx context.Context, req domain.RecommendRequest) (json.RawMessage, error)
}

type predictor interface {
	Predict(ctx context.Context, req domain.RecommendRequest) (json.RawMessage, error)
}

type service struct {
	predictor predictor
}

func NewService(p predictor) Service {
	return &service{predictor: p}
}

func (s *service) Recommend(ctx context.Context, req domain.RecommendRequest) (json.RawMessage, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	return s.predictor.Predict(ctx, req)
}
