package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

const requestTimeout = 60 * time.Second

type Dependencies struct {
	Recommendations *RecommendationHandler
	Statistics      *StatisticsHandler
	RateLimiter     *RateLimiter
	Logger          zerolog.Logger
}

type RouterConfig struct {
	AllowedOrigins []string
	// TrustProxy takes the client address from X-Forwarded-For / X-Real-IP.
	// Enable only behind a proxy that overwrites those headers.
	TrustProxy bool
}

func NewRouter(deps Dependencies, cfg RouterConfig) *chi.Mux {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	if cfg.TrustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(RequestLogger(deps.Logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(requestTimeout))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Route("/api/v1", func(r chi.Router) {
		if deps.RateLimiter != nil {
			r.Use(RateLimitMiddleware(deps.RateLimiter))
		}
		r.Post("/recommendations", deps.Recommendations.CreateRecommendation)
		r.Post("/statistics", deps.Statistics.Statistics)
		r.Post("/projections", deps.Statistics.Project)
	})

	return router
}
