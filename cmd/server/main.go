package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/quiz-monsters/internal/api"
	"github.com/dom/quiz-monsters/internal/config"
	"github.com/dom/quiz-monsters/internal/genome"
	"github.com/dom/quiz-monsters/internal/logger"
	"github.com/dom/quiz-monsters/internal/repository/postgres"
	"github.com/dom/quiz-monsters/internal/service"
	"github.com/dom/quiz-monsters/internal/websocket"
	gormLogger "gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "text").WithError(err).Fatal("failed to load config")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	dbLogLevel := gormLogger.Warn
	if cfg.IsDevelopment() {
		dbLogLevel = gormLogger.Info
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL, dbLogLevel)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Initialize WebSocket hub
	hub := websocket.NewHub(log)
	go hub.Run()

	// Initialize services
	engine := service.NewEngine(cfg, genome.CryptoSource())
	services := service.NewServices(repos, cfg, engine, hub, log)

	if cfg.ContentSourceURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		count, err := services.Content.SyncFromSource(ctx)
		cancel()
		if err != nil {
			log.WithError(err).Warn("initial content sync failed")
		} else {
			log.WithField("count", count).Info("content catalogue synced")
		}
	}

	// Initialize router
	router := api.NewRouter(services, hub, log)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.WithField("port", cfg.Port).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}
	hub.Stop()

	log.Info("server stopped")
}
