package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/ndewijer/CryptoShield-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/CryptoShield-Backend/internal/api/middleware"
	"github.com/ndewijer/CryptoShield-Backend/internal/config"
	"github.com/ndewijer/CryptoShield-Backend/internal/service"
	"github.com/ndewijer/CryptoShield-Backend/internal/view"
)

// NewRouter creates and configures the HTTP router
func NewRouter(
	systemService *service.SystemService,
	allocationService *service.AllocationService,
	renderer *view.Renderer,
	cfg *config.Config,
	log zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	dashboardHandler := handlers.NewDashboardHandler(allocationService, renderer, log)
	r.Get("/", dashboardHandler.Dashboard)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/recommendation", func(r chi.Router) {
			recommendationHandler := handlers.NewRecommendationHandler(allocationService)
			r.Get("/", recommendationHandler.Recommendations)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", recommendationHandler.Recommendation)
			})
		})

		allocationHandler := handlers.NewAllocationHandler(allocationService)
		r.Get("/profile/options", allocationHandler.ProfileOptions)
		r.Post("/allocation", allocationHandler.Allocation)
	})

	return r
}
