package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sanhariharan/invesplannner/domain"
)

type InsightProvider interface {
	GetInsights(ctx context.Context, profile domain.UserProfile) (domain.AiInsights, bool)
}

// RecommendationService combines the allocation, its narrative and the AI
// insights into one recommendation.
type RecommendationService struct {
	allocation *AllocationService
	insights   InsightProvider
	log        zerolog.Logger
	now        func() time.Time
}

func NewRecommendationService(allocation *AllocationService, insights InsightProvider, log zerolog.Logger) *RecommendationService {
	return &RecommendationService{
		allocation: allocation,
		insights:   insights,
		log:        log.With().Str("component", "recommendation").Logger(),
		now:        time.Now,
	}
}

// BuildRecommendation fails only when the profile is invalid or the rules
// break an invariant. Insight failures degrade to the fallback set.
func (s *RecommendationService) BuildRecommendation(
	ctx context.Context,
	profile domain.UserProfile,
) (domain.InvestmentRecommendation, error) {

	allocation, err := s.allocation.ComputeAllocation(profile)
	if err != nil {
		return domain.InvestmentRecommendation{}, fmt.Errorf("computing allocation: %w", err)
	}

	description := Describe(profile, allocation)

	insights, degraded := s.insights.GetInsights(ctx, profile)

	rec := domain.InvestmentRecommendation{
		ID:          uuid.NewString(),
		Allocation:  allocation,
		Description: description,
		AiInsights:  insights,
		Degraded:    degraded,
		GeneratedAt: s.now().UTC(),
	}

	s.log.Debug().
		Str("id", rec.ID).
		Str("risk", string(profile.RiskTolerance)).
		Int("horizon", profile.TimeHorizon).
		Int("stocks", allocation.Stocks).
		Int("bonds", allocation.Bonds).
		Int("cash", allocation.Cash).
		Bool("degraded", degraded).
		Msg("recommendation built")

	return rec, nil
}
