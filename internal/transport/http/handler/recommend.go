package handler

import (
	"errors"
	"net/http"

	"github.com/logistics-net-api/internal/application/recommend"
	"github.com/logistics-net-api/internal/domain"
	"github.com/logistics-net-api/internal/pkg/validate"
)

// RecommendHandler forwards carrier recommendation requests to the model.
type RecommendHandler struct {
	svc recommend.Service
}

func NewRecommendHandler(svc recommend.Service) *RecommendHandler { return &RecommendHandler{svc: svc} }

func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	var req domain.RecommendRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, err.Error())
		return
	}
	out, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		env := MessageEnvelope{Message: "Failed to get AI recommendation."}
		if errors.Is(err, domain.ErrPredictorOutput) {
			env.Message = "Invalid response from AI model."
		}
		// Details carry the model's own error text.
		var pe *domain.PredictorError
		if errors.As(err, &pe) {
			env.Details = pe.Details
		}
		writeErrorEnvelope(w, r, err, env)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}
