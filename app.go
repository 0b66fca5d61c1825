package main

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/sanhariharan/invesplannner/config"
	httpLayer "github.com/sanhariharan/invesplannner/http"
	"github.com/sanhariharan/invesplannner/repository"
	"github.com/sanhariharan/invesplannner/service"
)

// app holds the services shared by every command.
type app struct {
	recommendations *service.RecommendationService
	statistics      *service.StatisticsService
	model           *service.LazyModel
	closers         []func() error
}

func newApp(cfg *config.Config, log zerolog.Logger) (*app, error) {
	variant, err := service.ParseAllocationVariant(cfg.Allocation.Variant)
	if err != nil {
		return nil, err
	}
	extractor, err := service.ParseExtractor(cfg.AI.Extractor)
	if err != nil {
		return nil, err
	}

	a := &app{}

	var cache repository.CacheRepository
	if cfg.Cache.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.Cache.RedisAddr)
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Cache.RedisAddr).Msg("redis unreachable, insight cache will miss")
		}
		cancel()
		cache = redisCache
		a.closers = append(a.closers, redisCache.Close)
	} else {
		memCache := repository.NewMemoryCache()
		cache = memCache
		a.closers = append(a.closers, memCache.Close)
	}

	if cfg.AI.APIKey == "" {
		log.Warn().Msg("no AI api key configured, insights will use the fallback set")
	}

	a.model = service.NewLazyModel(service.NewGeminiLoader(cfg.AI.APIKey, cfg.AI.Model), cfg.AI.InitTimeout, log)
	insights := service.NewInsightService(service.NewAIService(a.model), service.InsightOptions{
		Extractor: extractor,
		Cache:     cache,
		Timeout:   cfg.AI.Timeout,
		CacheTTL:  cfg.Cache.TTL,
	}, log)

	a.recommendations = service.NewRecommendationService(service.NewAllocationService(variant), insights, log)
	a.statistics = service.NewStatisticsService(cfg.Projection.AnnualReturn, cfg.Projection.Currency)
	return a, nil
}

func (a *app) router(cfg *config.Config, log zerolog.Logger, limiter *httpLayer.RateLimiter) http.Handler {
	return httpLayer.NewRouter(httpLayer.Dependencies{
		Recommendations: httpLayer.NewRecommendationHandler(a.recommendations),
		Statistics:      httpLayer.NewStatisticsHandler(a.statistics),
		RateLimiter:     limiter,
		Logger:          log,
	}, httpLayer.RouterConfig{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		TrustProxy:     cfg.Server.TrustProxy,
	})
}

func (a *app) Close(log zerolog.Logger) {
	log.Debug().Stringer("model_state", a.model.State()).Msg("closing services")
	for _, c := range a.closers {
		if err := c(); err != nil {
			log.Warn().Err(err).Msg("error during close")
		}
	}
}
