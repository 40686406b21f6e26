package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/budgettrack/backend/internal/config"
	"github.com/budgettrack/backend/internal/controllers"
	"github.com/budgettrack/backend/internal/models"
	"github.com/budgettrack/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

//	@title			BudgetTrack
//	@description	The backend for BudgetTrack. Track expenses, set monthly budgets per category and get a summary of your spending.
//	@license.name	MIT
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Config")
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	db, err := connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Database")
	}

	r, teardown, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Router")
	}
	defer teardown()

	router.AttachRoutes(controllers.Controller{DB: db}, r.Group("/"), cfg)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Int("port", cfg.Port).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutdown signal received, stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown")
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Info().Msg("Server stopped")
}

// connect opens the PostgreSQL database if one is configured and the
// SQLite database file otherwise.
func connect(cfg config.Config) (*gorm.DB, error) {
	if cfg.UsePostgres() {
		log.Info().Str("host", cfg.DBHost).Str("database", cfg.DBName).Msg("Database")
		return models.ConnectPostgres(cfg.PostgresDSN())
	}

	// Create data directory
	if err := os.MkdirAll(filepath.Dir(cfg.DBFile), os.ModePerm); err != nil {
		return nil, err
	}

	log.Info().Str("file", cfg.DBFile).Msg("Database")
	return models.Connect(cfg.DBFile)
}
