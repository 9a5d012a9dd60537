package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Keshavsaini22/slooze-assignment/configs"
	"github.com/Keshavsaini22/slooze-assignment/routes"
	"github.com/Keshavsaini22/slooze-assignment/ws"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	gin.SetMode(cfg.GinMode)

	// DB
	db, err := configs.OpenDB(cfg)
	if err != nil {
		logger.Error("open database failed", slog.Any("error", err))
		os.Exit(1)
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		logger.Error("migrate failed", slog.Any("error", err))
		os.Exit(1)
	}
	if cfg.SeedDemo {
		if err := configs.SeedDemo(db); err != nil {
			logger.Error("seed demo data failed", slog.Any("error", err))
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// order events -> websocket
	hub := ws.NewOrderHub(logger)
	go hub.Run(ctx)

	// HTTP
	deps := routes.NewDeps(db, cfg, hub, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           routes.NewRouter(deps, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logger.Info("server stopped")
}
