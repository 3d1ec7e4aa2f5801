package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/application"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/config"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/database"
	routeEvents "github.com/Kilat-Pet-Delivery/service-truckroute/internal/events"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/handler"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/kafka"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/logger"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/middleware"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/repository"
	"github.com/Kilat-Pet-Delivery/service-truckroute/internal/routesapi"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceName = "service-truckroute"

func main() {
	// Load configuration; a missing MAPS_API_KEY stops the process here.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting "+serviceName,
		zap.String("port", cfg.Port),
		zap.String("routes_base_url", cfg.RoutesConfig.BaseURL),
	)

	// Build the Routes API client
	builder, err := routesapi.NewRequestBuilder(
		cfg.RoutesConfig.APIKey,
		routesapi.WithBaseURL(cfg.RoutesConfig.BaseURL),
		routesapi.WithFieldMask(cfg.RoutesConfig.FieldMask),
		routesapi.WithRequestOptions(cfg.RoutesConfig.Request),
		routesapi.WithQueryEncoding(cfg.RoutesConfig.EncodeQuery),
	)
	if err != nil {
		log.Fatal("failed to create routes request builder", zap.Error(err))
	}
	routesClient := routesapi.NewClient(builder, nil, log)
	generator := routesapi.NewLoggingGenerator(routesClient, log)

	// Connect to database
	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	// Initialize Kafka producer
	kafkaProducer := kafka.NewProducer(cfg.KafkaConfig.Brokers, log)
	defer func() { _ = kafkaProducer.Close() }()

	// Initialize application service
	tokenRepo := repository.NewGormRouteTokenRepository(db)
	routeService := application.NewRouteService(generator, tokenRepo, kafkaProducer, log)

	// Start the route request consumer
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	groupID := cfg.KafkaConfig.GroupPrefix + serviceName
	requestConsumer := routeEvents.NewRouteRequestConsumer(
		cfg.KafkaConfig.Brokers,
		groupID,
		routeService,
		log,
	)
	defer func() { _ = requestConsumer.Close() }()

	go func() {
		log.Info("starting route request consumer")
		if err := requestConsumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("route request consumer error", zap.Error(err))
		}
	}()

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(log))

	handler.NewHealthHandler(sqlDB, serviceName).RegisterRoutes(router)
	handler.NewRouteHandler(routeService).RegisterRoutes(&router.RouterGroup)
	handler.NewAdminRouteHandler(routeService).RegisterRoutes(&router.RouterGroup)

	// Create HTTP server. WriteTimeout is left unset: a route call is bounded only by the
	// directions service.
	srv := &http.Server{
		Addr:        cfg.Port,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down " + serviceName + "...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info(serviceName + " stopped")
}
