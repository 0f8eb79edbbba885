package domain

import "fmt"

// RecommendRequest is forwarded to the prediction collaborator.
type RecommendRequest struct {
	Origin      string   `json:"origin" validate:"required"`
	Destination string   `json:"destination" validate:"required"`
	Priorities  []string `json:"priorities" validate:"required,min=1,dive,oneof=cost speed safety warehouse"`
	Fragility   string   `json:"fragility" validate:"required"`
}

// Predictor failure kinds. Both are collaborator failures.
var (
	ErrPredictorFailed = fmt.Errorf("prediction failed: %w", ErrUpstream)
	ErrPredictorOutput = fmt.Errorf("prediction output unreadable: %w", ErrUpstream)
)

// PredictorError carries the text the predictor reported alongside the failure kind.
type PredictorError struct {
	Kind    error
	Details string
}

func (e *PredictorError) Error() string {
	if e.Details == "" {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Details
}

func (e *PredictorError) Unwrap() error { return e.Kind }
