package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/xbl/lead-tracker/internal/config"
	"github.com/xbl/lead-tracker/internal/database"
	"github.com/xbl/lead-tracker/internal/http/handler"
	"github.com/xbl/lead-tracker/internal/http/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/xbl/lead-tracker/docs" // Register swagger docs
)

type Router struct {
	cfg                *config.Config
	logger             *zap.Logger
	db                 *gorm.DB
	rateLimiter        *middleware.RateLimiter
	employeeHandler    *handler.EmployeeHandler
	customerHandler    *handler.CustomerHandler
	offerNumberHandler *handler.OfferNumberHandler
	leadHandler        *handler.LeadHandler
	dashboardHandler   *handler.DashboardHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	rateLimiter *middleware.RateLimiter,
	employeeHandler *handler.EmployeeHandler,
	customerHandler *handler.CustomerHandler,
	offerNumberHandler *handler.OfferNumberHandler,
	leadHandler *handler.LeadHandler,
	dashboardHandler *handler.DashboardHandler,
) *Router {
	return &Router{
		cfg:                cfg,
		logger:             logger,
		db:                 db,
		rateLimiter:        rateLimiter,
		employeeHandler:    employeeHandler,
		customerHandler:    customerHandler,
		offerNumberHandler: offerNumberHandler,
		leadHandler:        leadHandler,
		dashboardHandler:   dashboardHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)
	if timeout := rt.cfg.Server.RequestTimeoutDuration(); timeout > 0 {
		r.Use(chimw.Timeout(timeout))
	}

	// Health check (basic liveness probe)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Database health check with pool stats
	r.Get("/health/db", func(w http.ResponseWriter, r *http.Request) {
		stats, err := database.HealthCheckWithStats(r.Context(), rt.db)
		if err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			writeHealth(w, http.StatusServiceUnavailable, map[string]interface{}{
				"status":  "unhealthy",
				"error":   err.Error(),
				"service": "database",
				"driver":  rt.cfg.Database.Driver,
			})
			return
		}
		writeHealth(w, http.StatusOK, map[string]interface{}{
			"status":  "healthy",
			"service": "database",
			"driver":  rt.cfg.Database.Driver,
			"stats":   stats,
		})
	})

	// Readiness probe
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := database.HealthCheck(r.Context(), rt.db); err != nil {
			rt.logger.Error("Database health check failed", zap.Error(err))
			writeHealth(w, http.StatusServiceUnavailable, map[string]interface{}{
				"status": "unhealthy",
				"checks": map[string]interface{}{
					"database": map[string]string{"status": "unhealthy", "error": err.Error()},
				},
			})
			return
		}
		writeHealth(w, http.StatusOK, map[string]interface{}{
			"status": "healthy",
			"checks": map[string]interface{}{
				"database": map[string]string{"status": "healthy"},
			},
		})
	})

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Master data. Names are passed as query parameters or in the body
		// because they may contain "/".
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", rt.employeeHandler.List)
			r.Post("/", rt.employeeHandler.Create)
			r.Delete("/", rt.employeeHandler.Delete)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", rt.customerHandler.List)
			r.Post("/", rt.customerHandler.Create)
			r.Get("/lookup", rt.customerHandler.Lookup)
			r.Get("/details", rt.customerHandler.GetDetails)
			r.Put("/details", rt.customerHandler.UpdateDetails)
		})

		r.Get("/project-categories", rt.offerNumberHandler.ListProjectCategories)

		// Offer numbering
		r.Route("/offer-numbers", func(r chi.Router) {
			r.Get("/next", rt.offerNumberHandler.NextInitial)
			r.Get("/next-revision", rt.offerNumberHandler.NextRevision)
			r.Post("/serial", rt.offerNumberHandler.GenerateSerial)
		})

		// Leads
		r.Route("/leads", func(r chi.Router) {
			r.Get("/", rt.leadHandler.List)
			r.Post("/", rt.leadHandler.Create)
			r.Get("/follow-ups", rt.leadHandler.ListFollowUps)
			r.Get("/export", rt.leadHandler.Export)
			r.Get("/{id}", rt.leadHandler.Get)
			r.Patch("/{id}", rt.leadHandler.Update)
		})

		r.Get("/dashboard/summary", rt.dashboardHandler.Summary)
	})

	return r
}

func writeHealth(w http.ResponseWriter, status int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
