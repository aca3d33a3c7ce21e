package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/khabaroff/vehicle-registry/src/config"
	"github.com/khabaroff/vehicle-registry/src/database"
	"github.com/khabaroff/vehicle-registry/src/handlers"
	"github.com/khabaroff/vehicle-registry/src/logging"
	"github.com/khabaroff/vehicle-registry/src/middleware"
	"github.com/khabaroff/vehicle-registry/src/repositories/postgres"
	"github.com/khabaroff/vehicle-registry/src/services"
	"github.com/rs/zerolog/log"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logging.Setup(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	if cfg.JWTSecretRandom {
		log.Warn().Msg("JWT_SECRET not set, using a random key: tokens will not survive a restart")
	}

	if cfg.UsesDefaultAdminPassword() {
		log.Warn().
			Str("admin_email", cfg.AdminEmail).
			Msg("ADMIN_PASSWORD is the built-in default: set it before exposing the service")
	}

	// Initialize database
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer db.Close()

	log.Info().Msg("database connected")

	credentials, err := services.NewCredentialChecker(cfg.PasswordScheme)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize credential checker")
	}
	if cfg.PasswordScheme == services.SchemePlain {
		log.Warn().Msg("PASSWORD_SCHEME=plain stores passwords verbatim; do not use in production")
	}

	// Initialize repositories and services
	adminRepo := postgres.NewAdministratorRepository(db.GetPool())
	vehicleRepo := postgres.NewVehicleRepository(db.GetPool())

	authService := services.NewAuthService(adminRepo, credentials, cfg.JWTSecret, cfg.TokenTTL)
	adminService := services.NewAdminService(adminRepo, authService)
	vehicleService := services.NewVehicleService(vehicleRepo)

	// Seed the first administrator on an empty database
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if _, err := adminService.Seed(seedCtx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Error().Err(err).Msg("failed to seed administrator")
	}
	seedCancel()

	// Create Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	handlers.RegisterRoutes(router, authService, handlers.Routes(handlers.Dependencies{
		DB:             db,
		AuthService:    authService,
		AdminService:   adminService,
		VehicleService: vehicleService,
		LoginRateLimit: middleware.RateLimitConfig{RequestsPerMinute: cfg.LoginRatePerMinute},
	}))

	// Create HTTP server with timeouts (G112: protect from Slowloris attack)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	log.Info().Msg("server shut down successfully")
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Location", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}
