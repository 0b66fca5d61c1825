package http

import (
	"context"
	"net/http"

	"github.com/sanhariharan/invesplannner/domain"
)

type Recommender interface {
	BuildRecommendation(ctx context.Context, profile domain.UserProfile) (domain.InvestmentRecommendation, error)
}

type RecommendationHandler struct {
	service Recommender
}

func NewRecommendationHandler(service Recommender) *RecommendationHandler {
	return &RecommendationHandler{service: service}
}

// CreateRecommendation handles POST /api/v1/recommendations.
func (h *RecommendationHandler) CreateRecommendation(w http.ResponseWriter, r *http.Request) {
	var input domain.ProfileInput
	if !decodeJSON(w, r, &input) {
		return
	}

	profile, err := input.ToProfile()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	rec, err := h.service.BuildRecommendation(r.Context(), profile)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, rec)
}
