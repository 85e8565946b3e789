package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-crm/internal/adapter"
	"github.com/feral-file/ff-crm/internal/api/middleware"
	"github.com/feral-file/ff-crm/internal/api/rest"
	"github.com/feral-file/ff-crm/internal/api/server"
	"github.com/feral-file/ff-crm/internal/auth"
	"github.com/feral-file/ff-crm/internal/config"
	"github.com/feral-file/ff-crm/internal/contact"
	"github.com/feral-file/ff-crm/internal/document"
	"github.com/feral-file/ff-crm/internal/logger"
	"github.com/feral-file/ff-crm/internal/metrics"
	"github.com/feral-file/ff-crm/internal/product"
	"github.com/feral-file/ff-crm/internal/providers/jetstream"
	"github.com/feral-file/ff-crm/internal/providers/minio"
	"github.com/feral-file/ff-crm/internal/ratelimit"
	"github.com/feral-file/ff-crm/internal/store"
	"github.com/feral-file/ff-crm/internal/timeline"
	"github.com/feral-file/ff-crm/internal/viewcache"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "api-server",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting CRM API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	dataStore := store.NewPGStore(db)

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	// Object storage
	minioClient, err := adapter.NewMinioClient(cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.Region, cfg.Storage.UseSSL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create object storage client", zap.Error(err))
	}
	storageConfig := minio.Config{Bucket: cfg.Storage.Bucket, Region: cfg.Storage.Region}
	if err := minio.EnsureBucket(ctx, storageConfig, minioClient); err != nil {
		logger.FatalCtx(ctx, "Failed to prepare storage bucket", zap.Error(err), zap.String("bucket", cfg.Storage.Bucket))
	}
	objects := minio.NewObjectStorage(storageConfig, minioClient)
	logger.InfoCtx(ctx, "Connected to object storage", zap.String("bucket", cfg.Storage.Bucket))

	// View cache and invalidation
	var redisClient adapter.RedisClient
	if cfg.Redis.Enabled || cfg.RateLimit.Enabled {
		redisClient = adapter.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	}

	cache := viewcache.NewNopCache()
	if cfg.Redis.Enabled {
		cache = viewcache.NewRedisCache(redisClient, cfg.Redis.TTL, appMetrics)
		logger.InfoCtx(ctx, "View cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", cfg.Redis.TTL))
	}

	var broadcaster viewcache.Invalidator
	if cfg.NATS.Enabled {
		publisher, err := jetstream.NewPublisher(jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			MaxAge:         cfg.NATS.MaxAge,
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer publisher.Close()
		broadcaster = viewcache.NewBroadcaster(publisher, clock)
		logger.InfoCtx(ctx, "Broadcasting view invalidations", zap.String("stream", cfg.NATS.StreamName))
	}
	invalidator := viewcache.Chain(cache, broadcaster)

	// Rate limiting
	var limiter ratelimit.Limiter
	if cfg.RateLimit.Enabled {
		limiter, err = ratelimit.NewLimiter(cfg.RateLimit, redisClient, clock)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create rate limiter", zap.Error(err))
		}
	}

	// Services
	resolver := auth.NewContextResolver()
	contacts := contact.NewService(
		dataStore,
		timeline.NewRecorder(clock),
		timeline.NewPaginator(dataStore),
		resolver,
		invalidator,
		objects,
		appMetrics,
	)
	products := product.NewService(dataStore, resolver, invalidator)
	documents := document.NewService(dataStore, objects, resolver, invalidator, clock, appMetrics)

	handler := rest.NewHandler(contacts, products, documents, resolver, cache, jsonAdapter)

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowOrigins: cfg.Server.AllowOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			Issuer:       cfg.Auth.Issuer,
		},
	}
	srv := server.New(serverConfig, handler, limiter, appMetrics, registry)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	// The limiter closes the shared Redis client
	if limiter == nil && redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.WarnCtx(shutdownCtx, "Failed to close Redis client", zap.Error(err))
		}
	}

	logger.Info("API server stopped")
}
