package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/feral-file/ff-crm/internal/api/middleware"
	"github.com/feral-file/ff-crm/internal/api/rest"
	"github.com/feral-file/ff-crm/internal/logger"
	"github.com/feral-file/ff-crm/internal/metrics"
	"github.com/feral-file/ff-crm/internal/ratelimit"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	AllowOrigins []string
	Auth         middleware.AuthConfig
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	handler    rest.Handler
	limiter    ratelimit.Limiter
	metrics    *metrics.Metrics
	gatherer   prometheus.Gatherer
	httpServer *http.Server
}

// New creates a new API server. limiter may be nil to disable rate limiting.
func New(cfg Config, handler rest.Handler, limiter ratelimit.Limiter, m *metrics.Metrics, gatherer prometheus.Gatherer) *Server {
	return &Server{
		config:   cfg,
		handler:  handler,
		limiter:  limiter,
		metrics:  m,
		gatherer: gatherer,
	}
}

// Router builds the gin engine with middleware and routes
func (s *Server) Router() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = 16 << 20

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.SetupCORS(s.config.AllowOrigins))
	router.Use(middleware.Auth(middleware.NewAuthenticator(s.config.Auth)))
	router.Use(middleware.Logger(s.metrics))

	if s.gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	var writeMiddleware []gin.HandlerFunc
	if s.limiter != nil {
		writeMiddleware = append(writeMiddleware, middleware.RateLimit(s.limiter, s.metrics))
	}
	rest.SetupRoutes(router, s.handler, writeMiddleware...)

	return router
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	if s.limiter != nil {
		if err := s.limiter.Close(); err != nil {
			return fmt.Errorf("failed to close rate limiter: %w", err)
		}
	}

	return nil
}
