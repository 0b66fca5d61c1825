package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanhariharan/invesplannner/domain"
)

type stubInsights struct {
	insights domain.AiInsights
	degraded bool
	calls    int
}

func (s *stubInsights) GetInsights(context.Context, domain.UserProfile) (domain.AiInsights, bool) {
	s.calls++
	return s.insights, s.degraded
}

func TestBuildRecommendation_EndToEnd(t *testing.T) {
	insights := &stubInsights{insights: domain.AiInsights{
		Summary:          "Stay the course.",
		RiskAnalysis:     "Balanced.",
		MarketConditions: "Calm.",
		Recommendations:  []string{"Rebalance yearly"},
		Considerations:   []string{"Inflation"},
	}}
	svc := NewRecommendationService(NewAllocationService(VariantExtended), insights, zerolog.Nop())
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.FixedZone("X", 3600))
	svc.now = func() time.Time { return fixed }

	rec, err := svc.BuildRecommendation(context.Background(), testProfile(domain.RiskModerate, 20, 45))
	require.NoError(t, err)

	assert.Equal(t, domain.Allocation{Stocks: 70, Bonds: 30, Cash: 0}, rec.Allocation)
	assert.Contains(t, rec.Description, "moderate")
	assert.Contains(t, rec.Description, "long-term")
	assert.Contains(t, rec.Description, "70% stocks, 30% bonds, and 0% cash")
	assert.Equal(t, insights.insights, rec.AiInsights)
	assert.False(t, rec.Degraded)
	assert.Equal(t, fixed.UTC(), rec.GeneratedAt)

	_, err = uuid.Parse(rec.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, insights.calls)
}

func TestBuildRecommendation_InsightFailureIsNotFatal(t *testing.T) {
	insights := &stubInsights{insights: domain.FallbackInsights(), degraded: true}
	svc := NewRecommendationService(NewAllocationService(VariantExtended), insights, zerolog.Nop())

	rec, err := svc.BuildRecommendation(context.Background(), testProfile(domain.RiskConservative, 3, 30))
	require.NoError(t, err)

	assert.True(t, rec.Degraded)
	assert.Equal(t, domain.FallbackInsights(), rec.AiInsights)
	assert.Equal(t, domain.Allocation{Stocks: 20, Bonds: 60, Cash: 20}, rec.Allocation)
}

func TestBuildRecommendation_WithFailingModel(t *testing.T) {
	models := staticProvider{err: domain.ErrModelNotConfigured}
	insightSvc := NewInsightService(NewAIService(models), InsightOptions{}, zerolog.Nop())
	svc := NewRecommendationService(NewAllocationService(VariantExtended), insightSvc, zerolog.Nop())

	rec, err := svc.BuildRecommendation(context.Background(), testProfile(domain.RiskAggressive, 30, 25))
	require.NoError(t, err)

	assert.True(t, rec.Degraded)
	assert.Equal(t, domain.FallbackInsights(), rec.AiInsights)
	assert.Equal(t, 100, rec.Total())
}

func TestBuildRecommendation_InvalidProfile(t *testing.T) {
	insights := &stubInsights{}
	svc := NewRecommendationService(NewAllocationService(VariantExtended), insights, zerolog.Nop())

	p := testProfile(domain.RiskModerate, 0, 45)
	_, err := svc.BuildRecommendation(context.Background(), p)

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "timeHorizon", verr.Field)
	assert.Zero(t, insights.calls, "insights must not be requested for an invalid profile")
}

func TestBuildRecommendation_UniqueIDs(t *testing.T) {
	svc := NewRecommendationService(NewAllocationService(VariantExtended), &stubInsights{}, zerolog.Nop())
	p := testProfile(domain.RiskModerate, 10, 40)

	a, err := svc.BuildRecommendation(context.Background(), p)
	require.NoError(t, err)
	b, err := svc.BuildRecommendation(context.Background(), p)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.Allocation, b.Allocation)
	assert.Equal(t, a.Description, b.Description)
}
