package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-crm/internal/adapter"
	"github.com/feral-file/ff-crm/internal/config"
	"github.com/feral-file/ff-crm/internal/logger"
	"github.com/feral-file/ff-crm/internal/metrics"
	"github.com/feral-file/ff-crm/internal/providers/minio"
	"github.com/feral-file/ff-crm/internal/store"
	"github.com/feral-file/ff-crm/internal/sweeper"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSweeperConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "sweeper",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sweeper")

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

	// Initialize clock adapter
	clock := adapter.NewClock()

	// Object storage
	minioClient, err := adapter.NewMinioClient(cfg.Storage.Endpoint, cfg.Storage.AccessKey, cfg.Storage.SecretKey, cfg.Storage.Region, cfg.Storage.UseSSL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create object storage client", zap.Error(err))
	}
	objects := minio.NewObjectStorage(minio.Config{Bucket: cfg.Storage.Bucket, Region: cfg.Storage.Region}, minioClient)

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.New(registry)

	var metricsServer *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		metricsServer = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.ErrorCtx(ctx, err, zap.String("addr", cfg.MetricsAddr))
			}
		}()
		logger.InfoCtx(ctx, "Serving metrics", zap.String("addr", cfg.MetricsAddr))
	}

	// Initialize orphan sweeper
	orphanSweeperConfig := &sweeper.OrphanSweeperConfig{
		Interval:        cfg.OrphanSweeper.Interval,
		BatchSize:       cfg.OrphanSweeper.BatchSize,
		WorkerPoolSize:  cfg.OrphanSweeper.Worker.WorkerPoolSize,
		MaxAttempts:     cfg.OrphanSweeper.MaxAttempts,
		RetryMaxRetries: sweeper.DEFAULT_DELETE_RETRY_MAX,
	}
	orphanSweeper := sweeper.NewOrphanSweeper(orphanSweeperConfig, dataStore, objects, clock, appMetrics)

	logger.InfoCtx(ctx, "Initialized orphan sweeper",
		zap.String("name", orphanSweeper.Name()),
		zap.Duration("interval", cfg.OrphanSweeper.Interval),
		zap.Int("batch_size", cfg.OrphanSweeper.BatchSize),
		zap.Int("max_attempts", cfg.OrphanSweeper.MaxAttempts),
	)

	// Start the sweeper in a goroutine
	errChan := make(chan error, 1)
	go func() {
		if err := orphanSweeper.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	// Wait for interrupt signal or error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errChan:
		logger.ErrorCtx(ctx, err)
	}

	// Give the sweeper time to finish its cycle
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := orphanSweeper.Stop(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err)
	}
	cancel()

	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.ErrorCtx(shutdownCtx, err)
		}
	}

	logger.InfoCtx(shutdownCtx, "Sweeper stopped")
}
