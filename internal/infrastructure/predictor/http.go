package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/logistics-net-api/internal/domain"
)

// maxResponseBytes bounds how much of a model response is read.
const maxResponseBytes = 1 << 20

// HTTPPredictor posts the request as JSON to a model server.
type HTTPPredictor struct {
	url    string
	client *http.Client
}

func NewHTTPPredictor(url string, timeout time.Duration) *HTTPPredictor {
	return &HTTPPredictor{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (p *HTTPPredictor) Predict(ctx context.Context, req domain.RecommendRequest) (json.RawMessage, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal prediction request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build prediction request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if reqID := chimiddleware.GetReqID(ctx); reqID != "" {
		httpReq.Header.Set("X-Request-ID", reqID)
	}

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, &domain.PredictorError{Kind: domain.ErrPredictorFailed, Details: err.Error()}
	}
	defer resp.Body.Close()

	out, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &domain.PredictorError{Kind: domain.ErrPredictorFailed, Details: err.Error()}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var pe *domain.PredictorError
		if _, decErr := decodeOutput(out); errors.As(decErr, &pe) && pe.Details != "" {
			return nil, pe
		}
		return nil, &domain.PredictorError{
			Kind:    domain.ErrPredictorFailed,
			Details: fmt.Sprintf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(out))),
		}
	}
	return decodeOutput(out)
}
