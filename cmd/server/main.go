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
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/zprintln/AdMaxxer-Project/internal/config"
	"github.com/zprintln/AdMaxxer-Project/internal/database"
	"github.com/zprintln/AdMaxxer-Project/internal/handler"
	"github.com/zprintln/AdMaxxer-Project/internal/repository"
	"github.com/zprintln/AdMaxxer-Project/internal/service"
	"github.com/zprintln/AdMaxxer-Project/pkg/logger"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger ---
	log, err := logger.New(cfg.Logger)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	log.Info("Configuration loaded",
		zap.String("env", cfg.AppEnv),
		zap.String("ai_client_type", cfg.AI.ClientType),
		zap.Bool("mock_mode", cfg.AI.MockMode),
		zap.Bool("credentials_configured", cfg.AI.HasCredentials()),
	)
	if !cfg.AI.HasCredentials() && !cfg.AI.MockMode {
		log.Warn("MINIMAX_API_KEY or MINIMAX_GROUP_ID is not set, generation requests will fail until configured")
	}

	// --- Generation stack ---
	aiClient, err := service.NewAIClient(cfg.AI, log.Named("AIClient"))
	if err != nil {
		log.Fatal("Failed to create AI client", zap.Error(err))
	}
	mediaClient := service.NewMediaClient(cfg.AI, log.Named("MediaClient"))
	generationSvc := service.NewGenerationService(cfg.AI, aiClient, mediaClient, log)

	handlerOpts := []handler.Option{handler.WithDevelopment(cfg.IsDevelopment())}

	// --- Optional database ---
	var pool *pgxpool.Pool
	if cfg.Database.URL != "" {
		pool, err = setupDatabase(cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to set up database", zap.Error(err))
		}
		defer pool.Close()
		handlerOpts = append(handlerOpts, handler.WithItems(repository.NewPgItemRepository(pool, log)))
	} else {
		log.Info("DATABASE_URL not set, items API disabled")
	}

	// --- HTTP server (Gin) ---
	gin.SetMode(gin.ReleaseMode)
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	}

	var db pinger
	if pool != nil {
		db = pool
	}
	router := newRouter(cfg, handler.NewHandler(generationSvc, log, handlerOpts...), db, log)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AI.VideoTimeout + cfg.AI.VideoPollInterval*time.Duration(cfg.AI.VideoPollAttempts) + cfg.AI.ImageTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Starting HTTP server", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server listen error", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exiting")
}

func setupDatabase(cfg config.DatabaseConfig, log *zap.Logger) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := database.Connect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	if err := database.ApplyMigrations(ctx, pool, log); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
