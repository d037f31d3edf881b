package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	deliveryHTTP "github.com/irds/vans-api/internal/delivery/http"
	"github.com/irds/vans-api/internal/pkg/config"
	"github.com/irds/vans-api/internal/pkg/database"
	"github.com/irds/vans-api/internal/pkg/logger"
	"github.com/irds/vans-api/internal/pkg/redis"
	"github.com/irds/vans-api/internal/pkg/session"
	"github.com/irds/vans-api/internal/repository/postgres"
	"github.com/irds/vans-api/internal/usecase/auth"
	"github.com/irds/vans-api/internal/usecase/averia"
	"github.com/irds/vans-api/internal/usecase/metrics"
	"github.com/irds/vans-api/internal/usecase/van"
)

func main() {
	// =========================================================================
	// Carga de configuración
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Inicialización del logger
	// =========================================================================

	log := logger.New(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.Output)
	log.Info("Starting vans API server", map[string]interface{}{
		"version": "1.0.0",
	})

	// =========================================================================
	// Conexión a PostgreSQL
	// =========================================================================

	ctx := context.Background()
	db, err := database.Connect(ctx, &cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer database.Close(db)

	log.Info("Connected to PostgreSQL", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Database,
	})

	// =========================================================================
	// Conexión a Redis (registro de sesiones)
	// =========================================================================

	redisClient, err := redis.NewClient(redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal("Failed to connect to Redis", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer redisClient.Close()

	log.Info("Connected to Redis")

	// =========================================================================
	// Repositories
	// =========================================================================

	vanRepo := postgres.NewVanRepository(db)
	averiaRepo := postgres.NewAveriaRepository(db)
	userRepo := postgres.NewUserRepository(db)

	log.Info("Repositories initialized")

	// =========================================================================
	// Servicio de sesiones
	// =========================================================================

	sessionStore := session.NewRedisStore(redisClient)
	sessionService := session.NewService(cfg.Auth.TokenSecret, cfg.Auth.SessionTTL, sessionStore)

	log.Info("Session service initialized", map[string]interface{}{
		"ttl": cfg.Auth.SessionTTL.String(),
	})

	// =========================================================================
	// Use case services
	// =========================================================================

	authService := auth.NewService(cfg.Auth, sessionService, userRepo, log)
	vanService := van.NewService(vanRepo, log)
	averiaService := averia.NewService(averiaRepo, vanRepo, log)
	metricsService := metrics.NewService(vanRepo, averiaRepo, log)

	log.Info("Use case services initialized")

	// =========================================================================
	// HTTP handlers y router
	// =========================================================================

	authHandler := deliveryHTTP.NewAuthHandler(authService, cfg.Auth, log)
	vanHandler := deliveryHTTP.NewVanHandler(vanService, log)
	averiaHandler := deliveryHTTP.NewAveriaHandler(averiaService, log)
	metricsHandler := deliveryHTTP.NewMetricsHandler(metricsService, log)

	router := deliveryHTTP.NewRouter(
		authHandler,
		vanHandler,
		averiaHandler,
		metricsHandler,
		authService,
		cfg,
		log,
	)

	handler := router.Setup()

	log.Info("HTTP router configured")

	// =========================================================================
	// Servidor HTTP
	// =========================================================================

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("API server listening", map[string]interface{}{
			"address": srv.Addr,
		})
		serverErrors <- srv.ListenAndServe()
	}()

	// =========================================================================
	// Graceful shutdown
	// =========================================================================

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal("Server error", map[string]interface{}{
			"error": err.Error(),
		})

	case sig := <-shutdown:
		log.Info("Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Graceful shutdown failed", map[string]interface{}{
				"error": err.Error(),
			})

			if err := srv.Close(); err != nil {
				log.Fatal("Failed to close server", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}

		log.Info("Server stopped gracefully")
	}
}
