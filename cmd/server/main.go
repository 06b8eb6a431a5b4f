package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gamereviews/backend/internal/config"
	"gamereviews/backend/internal/database"
	"gamereviews/backend/internal/handler"
	"gamereviews/backend/internal/hub"
	"gamereviews/backend/internal/logging"
	"gamereviews/backend/internal/service"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gamereviews/backend/docs" // registers the generated spec with swag

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Game Reviews API
// @version         1.0
// @description     Game catalog with per-user reviews, ratings and favorites.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load config")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}

	events := hub.New()
	h := handler.New(handler.Deps{
		Games: service.NewGameService(db, cfg.ReviewMaxAttempts),
		Users: service.NewUserService(db, cfg.ReviewMaxAttempts),
		Reviews: service.NewReviewService(db, events, service.ReviewOptions{
			MinPlayHours: cfg.ReviewMinPlayHours,
			MaxAttempts:  cfg.ReviewMaxAttempts,
		}),
		Favorites:     service.NewFavoriteService(db, cfg.ReviewMaxAttempts),
		Hub:           events,
		SessionSecret: []byte(cfg.JWTSecret),
		SessionTTL:    cfg.SessionTTL(),
	})

	router := handler.NewRouter(h, handler.RouterOptions{AllowedOrigins: cfg.AllowedOrigins()})

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	// Open event streams never finish on their own.
	srv.RegisterOnShutdown(events.CloseAll)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logging.Info().Str("addr", cfg.ServerAddr).Msg("Server is running")
		logging.Info().Msgf("Swagger UI is available at http://localhost%s/swagger/index.html", cfg.ServerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
