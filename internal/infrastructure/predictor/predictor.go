// Package predictor reaches the external carrier-recommendation model.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/logistics-net-api/internal/config"
	"github.com/logistics-net-api/internal/domain"
)

// Predictor returns the model's recommendation JSON for a request.
type Predictor interface {
	Predict(ctx context.Context, req domain.RecommendRequest) (json.RawMessage, error)
}

// New returns the HTTP predictor when a URL is configured, otherwise the script runner.
func New(cfg config.PredictorConfig) Predictor {
	if cfg.URL != "" {
		return NewHTTPPredictor(cfg.URL, cfg.Timeout)
	}
	return NewProcessPredictor(cfg.Command, cfg.Script, cfg.Timeout)
}

// decodeOutput checks that out is JSON and that the model did not report an error.
// A top-level {"error": "..."} object is the model's own failure signal.
func decodeOutput(out []byte) (json.RawMessage, error) {
	out = bytes.TrimSpace(out)
	if !json.Valid(out) {
		return nil, &domain.PredictorError{Kind: domain.ErrPredictorOutput}
	}
	var reported struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(out, &reported); err == nil && reported.Error != nil {
		return nil, &domain.PredictorError{Kind: domain.ErrPredictorFailed, Details: *reported.Error}
	}
	return json.RawMessage(out), nil
}
