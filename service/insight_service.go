package service

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/sanhariharan/invesplannner/domain"
	"github.com/sanhariharan/invesplannner/repository"
)

// Advisor is the external text-generation capability.
type Advisor interface {
	GenerateAdvice(ctx context.Context, profile string, maxLength int, temperature float32) (string, error)
	AnalyzeRisk(ctx context.Context, profile string, maxLength int, temperature float32) (string, error)
}

type InsightOptions struct {
	Extractor InsightExtractor
	Cache     repository.CacheRepository // nil disables caching
	Timeout   time.Duration
	CacheTTL  time.Duration
}

// InsightService produces AI insights for a profile and never fails: any
// capability error yields domain.FallbackInsights.
type InsightService struct {
	advisor   Advisor
	extractor InsightExtractor
	cache     repository.CacheRepository
	timeout   time.Duration
	ttl       time.Duration
	log       zerolog.Logger
}

func NewInsightService(advisor Advisor, opts InsightOptions, log zerolog.Logger) *InsightService {
	if opts.Extractor == nil {
		opts.Extractor = HeuristicExtractor{}
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultInsightTimeout
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = DefaultInsightTTL
	}
	return &InsightService{
		advisor:   advisor,
		extractor: opts.Extractor,
		cache:     opts.Cache,
		timeout:   opts.Timeout,
		ttl:       opts.CacheTTL,
		log:       log.With().Str("component", "insights").Logger(),
	}
}

// SerializeProfile renders the profile as the stable text sent to the model.
func SerializeProfile(profile domain.UserProfile) (string, error) {
	b, err := json.Marshal(profile)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// GetInsights returns the insights and whether they are the fallback set.
func (s *InsightService) GetInsights(ctx context.Context, profile domain.UserProfile) (domain.AiInsights, bool) {
	profileText, err := SerializeProfile(profile)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to serialize profile")
		return domain.FallbackInsights(), true
	}

	key := s.cacheKey(profileText)
	if cached, ok := s.fromCache(ctx, key); ok {
		return cached, false
	}

	advice, risk, err := s.generate(ctx, profileText)
	if err != nil {
		s.log.Warn().Err(err).Msg("using fallback insights")
		return domain.FallbackInsights(), true
	}

	insights := s.extractor.Extract(advice, risk)
	s.toCache(ctx, key, insights)
	return insights, false
}

// generate runs the advice and risk requests concurrently. The first failure
// cancels the other request.
func (s *InsightService) generate(ctx context.Context, profileText string) (string, string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var advice, risk string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		advice, err = s.advisor.GenerateAdvice(gctx, profileText, AdviceMaxLength, AdviceTemperature)
		return err
	})
	g.Go(func() error {
		var err error
		risk, err = s.advisor.AnalyzeRisk(gctx, profileText, RiskMaxLength, RiskTemperature)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return advice, risk, nil
}

func (s *InsightService) cacheKey(profileText string) string {
	return "insights:" + s.extractor.Name() + ":" + strconv.FormatUint(xxhash.Sum64String(profileText), 16)
}

func (s *InsightService) fromCache(ctx context.Context, key string) (domain.AiInsights, bool) {
	if s.cache == nil {
		return domain.AiInsights{}, false
	}
	raw, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.AiInsights{}, false
	}
	var insights domain.AiInsights
	if err := json.Unmarshal([]byte(raw), &insights); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("discarding unreadable cached insights")
		return domain.AiInsights{}, false
	}
	return insights, true
}

func (s *InsightService) toCache(ctx context.Context, key string, insights domain.AiInsights) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(insights)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache insights")
	}
}
