package router

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	"github.com/resitrack/backend/internal/infrastructure/logger"
	"github.com/resitrack/backend/internal/interfaces/http/middleware"
)

// RouteRegistrar registers a set of routes on an API group
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Config holds router configuration
type Config struct {
	Env            string
	CORS           middleware.CORSConfig
	TracingEnabled bool
	ServiceName    string
}

// Router wraps the gin engine and wires the middleware chain
type Router struct {
	engine *gin.Engine
	logger *zap.Logger
}

// New creates a router with the standard middleware chain
func New(log *zap.Logger, cfg Config) *Router {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(cfg.CORS))
	if cfg.TracingEnabled {
		engine.Use(otelgin.Middleware(cfg.ServiceName))
	}

	return &Router{engine: engine, logger: log}
}

// Register mounts all registrars under the versioned API prefix
func (r *Router) Register(registrars ...RouteRegistrar) {
	api := r.engine.Group("/api/v1")
	for _, registrar := range registrars {
		registrar.RegisterRoutes(api)
	}
}

// Engine returns the underlying gin engine
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
