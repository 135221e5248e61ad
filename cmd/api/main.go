package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"product-spec-api/internal/client"
	"product-spec-api/internal/config"
	"product-spec-api/internal/database"
	"product-spec-api/internal/hooks"
	"product-spec-api/internal/job"
	"product-spec-api/internal/metrics"
	"product-spec-api/internal/repository"
	"product-spec-api/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := initLogger(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Product Spec Service",
		zap.String("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("base_path", cfg.Server.BasePath),
		zap.String("locale", cfg.Server.Locale),
	)

	// Initialize database
	dbConfig := database.Config{
		DSN:             cfg.Database.GetDSN(),
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime(),
	}

	db, err := database.New(dbConfig)
	if err != nil {
		logger.Warn("Failed to connect to database on startup, will retry in background",
			zap.Error(err))
		database.NewAsync(dbConfig, 5*time.Second, logger)
	} else {
		logger.Info("Database connected successfully")

		if err := database.SafeAutoMigrateWithRetry(db, logger, 3); err != nil {
			logger.Warn("Failed to run database migrations", zap.Error(err))
		} else {
			logger.Info("Database migrations completed")
		}
	}

	// Initialize metrics
	m := metrics.NewWithLogger(logger)
	logger.Info("Metrics initialized")

	// Register database query metrics callbacks and pool gauges
	var statsDone chan struct{}
	if db != nil {
		database.RegisterMetricsCallbacks(db, m)
		statsDone = database.StartDBStatsCollector(db, m)
		logger.Info("Database metrics callbacks registered")
	}

	// Initialize redis; the service runs without it, the formatted
	// value cache just degrades to a no-op.
	redisClient, err := database.NewRedis(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Failed to connect to redis, format caching disabled", zap.Error(err))
		redisClient = nil
	}

	// Initialize report exporter
	var exporter client.ReportExporter
	if cfg.Migration.ReportExport && cfg.S3.Bucket != "" && cfg.S3.Region != "" {
		exporter, err = client.NewReportExporter(&cfg.S3, logger, m)
		if err != nil {
			logger.Warn("Failed to initialize report exporter, migration reports disabled", zap.Error(err))
		} else {
			logger.Info("Report exporter initialized",
				zap.String("bucket", cfg.S3.Bucket),
				zap.String("region", cfg.S3.Region),
			)
		}
	}

	// Resolve the shop currency from the host platform, falling back
	// to configuration when the platform is unreachable.
	currencyCode := cfg.Platform.Currency
	currencyLabel := cfg.Platform.CurrencyLabel
	if cfg.Platform.BaseURL != "" {
		platformClient := client.NewPlatformClient(cfg.Platform.BaseURL, cfg.Platform.Timeout(), logger, m)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Platform.Timeout())
		if currency, err := platformClient.GetCurrency(ctx); err == nil {
			currencyCode = currency.Code
			currencyLabel = currency.Label
		} else {
			logger.Warn("Failed to fetch shop currency, using configured fallback", zap.Error(err))
		}
		cancel()
	}

	// Setup router with all dependencies
	r := router.Setup(router.Config{
		DB:             db,
		Redis:          redisClient,
		Logger:         logger,
		Metrics:        m,
		Exporter:       exporter,
		Hooks:          hooks.New(),
		JWTSecret:      cfg.JWT.Secret,
		BasePath:       cfg.Server.BasePath,
		Locale:         cfg.Server.Locale,
		CurrencyCode:   currencyCode,
		CurrencyLabel:  currencyLabel,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	// Start background maintenance
	var collector *metrics.BusinessMetricsCollector
	scheduler := cron.New()
	if db != nil {
		collector = metrics.NewBusinessMetricsCollector(db, m, logger)
		collector.Start()

		pruneJob := job.NewPruneJob(
			repository.NewFieldDefinitionRepository(db),
			repository.NewSpecValueRepository(db),
			logger,
		)
		if _, err := scheduler.AddJob("@hourly", pruneJob); err != nil {
			logger.Warn("Failed to schedule prune job", zap.Error(err))
		}
		scheduler.Start()
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout(),
		WriteTimeout: cfg.Server.WriteTimeout(),
	}

	// Start server in goroutine
	go func() {
		logger.Info("Product Spec Service started successfully",
			zap.String("address", srv.Addr),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	scheduler.Stop()
	if collector != nil {
		collector.Stop()
	}
	if statsDone != nil {
		close(statsDone)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout())
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}

// initLogger initializes the zap logger with the specified level
func initLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      zapLevel == zapcore.DebugLevel,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}
