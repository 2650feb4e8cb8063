// Package rest wires the HTTP surface: routes, middleware order, and the
// unauthenticated service endpoints.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"tailingsiq-backend/application/ports"
	"tailingsiq-backend/application/services"
	"tailingsiq-backend/infrastructure/config"
	"tailingsiq-backend/interfaces/http/rest/handlers"
	"tailingsiq-backend/interfaces/http/rest/middleware"
	"tailingsiq-backend/pkg/auth"
	apperrors "tailingsiq-backend/pkg/errors"
	"tailingsiq-backend/pkg/observability"
)

// APIVersion is reported by the root endpoint.
const APIVersion = "1.0.0"

// Router creates and configures the HTTP router.
type Router struct {
	cfg          *config.Config
	authService  *services.AuthService
	facilities   *services.FacilityService
	documents    *services.DocumentService
	monitoring   *services.MonitoringService
	risk         *services.RiskService
	assistant    *services.AssistantService
	tokens       *auth.Service
	users        ports.UserRepository
	limiter      *auth.TokenBucketLimiter
	errorHandler *apperrors.ErrorHandler
	collector    *observability.Collector
	logger       *zap.Logger
}

// NewRouter creates a new router instance.
func NewRouter(
	cfg *config.Config,
	authService *services.AuthService,
	facilities *services.FacilityService,
	documents *services.DocumentService,
	monitoring *services.MonitoringService,
	risk *services.RiskService,
	assistant *services.AssistantService,
	tokens *auth.Service,
	users ports.UserRepository,
	limiter *auth.TokenBucketLimiter,
	errorHandler *apperrors.ErrorHandler,
	collector *observability.Collector,
	logger *zap.Logger,
) *Router {
	return &Router{
		cfg:          cfg,
		authService:  authService,
		facilities:   facilities,
		documents:    documents,
		monitoring:   monitoring,
		risk:         risk,
		assistant:    assistant,
		tokens:       tokens,
		users:        users,
		limiter:      limiter,
		errorHandler: errorHandler,
		collector:    collector,
		logger:       logger,
	}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(rt.errorHandler.Middleware)
	router.Use(middleware.Logger(rt.logger))
	if rt.cfg.EnableMetrics {
		router.Use(middleware.Metrics(rt.collector))
	}
	if rt.cfg.RateLimitPerMinute > 0 {
		router.Use(middleware.RateLimit(rt.limiter, rt.logger))
	}

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   rt.cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Service endpoints
	router.Get("/", rt.root)
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if rt.cfg.EnableMetrics {
		router.Handle("/metrics", rt.collector.Handler())
	}

	// Authentication endpoints
	authHandler := handlers.NewAuthHandler(rt.authService, rt.errorHandler, rt.logger)
	router.Post("/token", authHandler.Token)

	authenticate := middleware.Authenticate(rt.tokens, rt.users, rt.errorHandler)

	router.Group(func(r chi.Router) {
		r.Use(authenticate)
		r.Get("/users/me", authHandler.Me)
	})

	// API routes
	router.Route("/api", func(r chi.Router) {
		r.Use(authenticate)

		facilityHandler := handlers.NewFacilityHandler(rt.facilities, rt.logger)
		r.Get("/facilities", facilityHandler.List)

		r.Route("/documents", func(r chi.Router) {
			documentHandler := handlers.NewDocumentHandler(
				rt.documents, rt.errorHandler, rt.collector, rt.cfg.MaxUploadBytes, rt.logger)
			r.Get("/", documentHandler.List)
			r.Post("/", documentHandler.Upload)
			r.Get("/categories", documentHandler.Categories)
			r.Get("/facilities", documentHandler.Facilities)
			r.Get("/{documentID}", documentHandler.Get)
			r.Put("/{documentID}", documentHandler.Update)
			r.Delete("/{documentID}", documentHandler.Delete)
			r.Get("/{documentID}/download", documentHandler.Download)
			r.Post("/{documentID}/version", documentHandler.NewVersion)
		})

		r.Route("/monitoring", func(r chi.Router) {
			monitoringHandler := handlers.NewMonitoringHandler(
				rt.monitoring, rt.errorHandler, rt.collector, rt.logger)
			r.Get("/facilities", monitoringHandler.Facilities)
			r.Get("/dashboard/{facilityID}", monitoringHandler.Dashboard)
			r.Get("/sensors/{facilityID}", monitoringHandler.Sensors)
			r.Get("/sensor/{sensorID}", monitoringHandler.Sensor)
			r.Get("/alerts/{facilityID}", monitoringHandler.Alerts)
			r.Post("/alerts/{alertID}/acknowledge", monitoringHandler.Acknowledge)
			r.Post("/alerts/{alertID}/resolve", monitoringHandler.Resolve)
		})

		r.Route("/risk-assessment", func(r chi.Router) {
			riskHandler := handlers.NewRiskHandler(rt.risk, rt.errorHandler, rt.logger)
			r.Get("/facilities", riskHandler.Facilities)
			r.Get("/{facilityID}", riskHandler.Assessment)
			r.Post("/{facilityID}", riskHandler.UpdateAssessment)
		})

		r.Route("/query-assistant", func(r chi.Router) {
			assistantHandler := handlers.NewAssistantHandler(
				rt.assistant, rt.errorHandler, rt.collector, rt.logger)
			r.Post("/query", assistantHandler.Query)
		})
	})

	return router
}

// root handles the welcome endpoint.
func (rt *Router) root(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message":"Welcome to TailingsIQ API","version":"` + APIVersion + `","documentation":"/docs","modules":["Query Assistant","Risk Assessment","Monitoring","Knowledge Management"]}`))
}

// healthCheck handles health check requests.
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests. Everything is in
// memory, so readiness tracks process liveness.
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
