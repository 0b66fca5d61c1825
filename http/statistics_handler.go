package http

import (
	"net/http"

	"github.com/sanhariharan/invesplannner/domain"
	"github.com/sanhariharan/invesplannner/service"
)

type StatisticsHandler struct {
	service *service.StatisticsService
}

func NewStatisticsHandler(service *service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{service: service}
}

// Statistics handles POST /api/v1/statistics.
func (h *StatisticsHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	var input domain.ProfileInput
	if !decodeJSON(w, r, &input) {
		return
	}

	profile, err := input.ToProfile()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	stats, err := h.service.Build(profile)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, stats)
}

// Project handles POST /api/v1/projections.
func (h *StatisticsHandler) Project(w http.ResponseWriter, r *http.Request) {
	var input domain.ProjectionInput
	if !decodeJSON(w, r, &input) {
		return
	}

	if err := input.Validate(); err != nil {
		writeServiceError(w, r, err)
		return
	}

	rate := h.service.AnnualReturn()
	if input.AnnualReturn != nil {
		rate = *input.AnnualReturn
	}

	writeJSON(w, r, http.StatusOK, domain.ProjectionResult{
		ProjectedValue: service.ProjectValue(input.CurrentSavings, input.MonthlyInvestment, input.TimeHorizon, rate),
		AnnualReturn:   rate,
	})
}
