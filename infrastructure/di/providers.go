// Package di wires the application dependencies.
package di

import (
	"time"

	"github.com/google/wire"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tailingsiq-backend/application/ports"
	"tailingsiq-backend/application/services"
	"tailingsiq-backend/infrastructure/config"
	"tailingsiq-backend/infrastructure/memstore"
	"tailingsiq-backend/pkg/auth"
	"tailingsiq-backend/pkg/errors"
	"tailingsiq-backend/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	FacilityRepo  ports.FacilityRepository
	DocumentRepo  ports.DocumentRepository
	SensorRepo    ports.SensorRepository
	AlertRepo     ports.AlertRepository
	RiskRepo      ports.RiskRepository
	KnowledgeRepo ports.KnowledgeRepository
	UserRepo      ports.UserRepository

	AuthService       *services.AuthService
	FacilityService   *services.FacilityService
	DocumentService   *services.DocumentService
	MonitoringService *services.MonitoringService
	RiskService       *services.RiskService
	AssistantService  *services.AssistantService

	TokenService *auth.Service
	RateLimiter  *auth.TokenBucketLimiter
	ErrorHandler *errors.ErrorHandler
	Collector    *observability.Collector
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideFacilityRepository,
	ProvideDocumentRepository,
	ProvideSensorRepository,
	ProvideAlertRepository,
	ProvideRiskRepository,
	ProvideKnowledgeRepository,
	ProvideUserRepository,
	ProvideTokenService,
	ProvideRateLimiter,
	ProvideErrorHandler,
	ProvideCollector,
	services.NewAuthService,
	services.NewFacilityService,
	services.NewDocumentService,
	services.NewMonitoringService,
	services.NewRiskService,
	services.NewAssistantService,
	wire.Struct(new(Container), "*"),
)

// ProvideLogger creates the application logger for the configured level
// and environment.
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

// ProvideFacilityRepository creates the seeded facility store.
func ProvideFacilityRepository() ports.FacilityRepository {
	return memstore.NewFacilityStore()
}

// ProvideDocumentRepository creates the seeded document store.
func ProvideDocumentRepository() ports.DocumentRepository {
	return memstore.NewDocumentStore()
}

// ProvideSensorRepository generates the sensor store for the facility set.
func ProvideSensorRepository(facilities ports.FacilityRepository) ports.SensorRepository {
	return memstore.NewSensorStore(facilities.List())
}

// ProvideAlertRepository generates the alert store for the facility set.
func ProvideAlertRepository(facilities ports.FacilityRepository) ports.AlertRepository {
	return memstore.NewAlertStore(facilities.List())
}

// ProvideRiskRepository creates the seeded risk store.
func ProvideRiskRepository() ports.RiskRepository {
	return memstore.NewRiskStore()
}

// ProvideKnowledgeRepository creates the seeded knowledge base.
func ProvideKnowledgeRepository() ports.KnowledgeRepository {
	return memstore.NewKnowledgeStore()
}

// ProvideUserRepository creates the mock user directory.
func ProvideUserRepository() ports.UserRepository {
	return memstore.NewUserStore()
}

// ProvideTokenService creates the JWT service. Development falls back to a
// fixed secret; production requires one via config validation.
func ProvideTokenService(cfg *config.Config) *auth.Service {
	secret := cfg.JWTSecret
	if secret == "" {
		secret = "development-only-secret"
	}
	return auth.NewService(secret, cfg.JWTIssuer, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
}

// ProvideRateLimiter creates the per-IP request limiter.
func ProvideRateLimiter(cfg *config.Config) *auth.TokenBucketLimiter {
	limit := cfg.RateLimitPerMinute
	if limit <= 0 {
		limit = 100
	}
	return auth.NewIPRateLimiter(limit)
}

// ProvideErrorHandler creates the shared error handler.
func ProvideErrorHandler(logger *zap.Logger) *errors.ErrorHandler {
	return errors.NewErrorHandler(logger)
}

// ProvideCollector creates the Prometheus metrics collector.
func ProvideCollector() *observability.Collector {
	return observability.NewCollector("tailingsiq")
}
