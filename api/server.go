// ABOUTME: Huma API server configuration and setup for the admin surface
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"okcrisis-api/api/middleware"
	"okcrisis-api/core/interfaces"
)

// APIConfig holds configuration for the admin API
type APIConfig struct {
	Logger     interfaces.Logger
	RateLimit  int           // requests per window
	RateWindow time.Duration // rate limit window
}

// NewAPI creates and configures a new Huma API instance
func NewAPI(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	// CORS first so preflight requests never hit the other middleware
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 && cfg.RateWindow > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	config := huma.DefaultConfig("OK Crisis API", "1.0.0")
	config.Info.Description = "Admin API for the satirical news generation pipeline"

	// The OpenAPI spec is served at /openapi.json, the docs UI at /docs.
	api := humachi.New(router, config)

	return api, router
}
