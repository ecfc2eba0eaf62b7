package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	appcollection "github.com/resitrack/backend/internal/application/collection"
	appfolio "github.com/resitrack/backend/internal/application/folio"
	appmanifest "github.com/resitrack/backend/internal/application/manifest"
	appregistry "github.com/resitrack/backend/internal/application/registry"
	"github.com/resitrack/backend/internal/infrastructure/config"
	"github.com/resitrack/backend/internal/infrastructure/logger"
	"github.com/resitrack/backend/internal/infrastructure/persistence"
	"github.com/resitrack/backend/internal/infrastructure/telemetry"
	"github.com/resitrack/backend/internal/interfaces/http/handler"
	"github.com/resitrack/backend/internal/interfaces/http/middleware"
	"github.com/resitrack/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting resitrack backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Tracing is a no-op provider when disabled
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := db.EnableTracing(); err != nil {
			log.Fatal("Failed to enable database tracing", zap.Error(err))
		}
		log.Info("Database query tracing enabled")
	}

	// Repositories
	siteRepo := persistence.NewGormSiteRepository(db.DB)
	driverRepo := persistence.NewGormDriverRepository(db.DB)
	vehicleRepo := persistence.NewGormVehicleRepository(db.DB)
	destinationRepo := persistence.NewGormDestinationRepository(db.DB)
	settingRepo := persistence.NewGormSettingRepository(db.DB)
	reservationRepo := persistence.NewGormReservationRepository(db.DB)
	sequenceRepo := persistence.NewGormSequenceRepository(db.DB)
	manifestRepo := persistence.NewGormManifestRepository(db.DB)
	eventRepo := persistence.NewGormEventRepository(db.DB)

	// Application services
	siteService := appregistry.NewSiteService(siteRepo)
	fleetService := appregistry.NewFleetService(driverRepo, vehicleRepo)
	destinationService := appregistry.NewDestinationService(destinationRepo)
	settingService := appregistry.NewSettingService(settingRepo)
	eventService := appcollection.NewEventService(eventRepo, siteRepo)
	reservationService := appfolio.NewReservationService(reservationRepo, siteRepo)
	allocator := appfolio.NewSequenceAllocator(sequenceRepo, log)
	aggregator := appmanifest.NewPeriodAggregator(eventRepo)
	assembler := appmanifest.NewManifestAssembler(
		siteRepo, driverRepo, vehicleRepo, destinationRepo,
		settingRepo, reservationRepo, aggregator, allocator,
	)
	manifestService := appmanifest.NewManifestService(assembler, manifestRepo, log)

	// HTTP layer
	r := router.New(log, router.Config{
		Env: cfg.App.Env,
		CORS: middleware.CORSConfig{
			AllowOrigins: cfg.HTTP.CORSAllowOrigins,
			AllowMethods: cfg.HTTP.CORSAllowMethods,
			AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		},
		TracingEnabled: cfg.Telemetry.Enabled,
		ServiceName:    cfg.Telemetry.ServiceName,
	})

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := r.Engine().SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	r.Register(
		handler.NewSystemHandler(db),
		handler.NewSiteHandler(siteService),
		handler.NewFleetHandler(fleetService),
		handler.NewDestinationHandler(destinationService),
		handler.NewSettingHandler(settingService),
		handler.NewCollectionHandler(eventService),
		handler.NewFolioHandler(reservationService, allocator),
		handler.NewManifestHandler(manifestService, aggregator),
	)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        r.Engine(),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
