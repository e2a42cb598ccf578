package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/mohammadpnp/admin-console/internal/application/payout"
	"github.com/mohammadpnp/admin-console/internal/bootstrap"
	"github.com/mohammadpnp/admin-console/internal/config"
	"github.com/mohammadpnp/admin-console/internal/infrastructure/backend"
	"github.com/mohammadpnp/admin-console/internal/logger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLog, err := logger.New(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zapLog.Sync() }()

	if cfg.DatabaseURL == "" {
		zapLog.Fatal("DATABASE_URL is required")
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		zapLog.Fatal("failed to connect database", zap.Error(err))
	}

	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		zapLog.Fatal("failed to create pgx pool", zap.Error(err))
	}
	defer pool.Close()

	api := backend.NewClient(cfg.BackendBaseURL, zapLog)

	pollCtx, stopPolling := context.WithCancel(context.Background())
	defer stopPolling()

	poller := payout.NewPoller(api, cfg.BackendServiceToken, cfg.PayoutPollInterval, zapLog)
	poller.Start(pollCtx)

	server := bootstrap.NewHTTPServer(cfg, db, pool, api, poller, zapLog)

	go func() {
		zapLog.Info("starting server", zap.String("addr", cfg.Addr))
		if err := server.Start(cfg.Addr); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("shutting down")
	stopPolling()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zapLog.Fatal("graceful shutdown failed", zap.Error(err))
	}
	zapLog.Info("shutdown complete")
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
