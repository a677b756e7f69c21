package main

import (
	"context"
	"errors"
	"fmt"
	"food-rescue-dashboard/internal/adapters/memory"
	"food-rescue-dashboard/internal/adapters/repositories"
	"food-rescue-dashboard/internal/adapters/workbook"
	"food-rescue-dashboard/internal/api"
	"food-rescue-dashboard/internal/config"
	"food-rescue-dashboard/internal/platform/db"
	"food-rescue-dashboard/internal/platform/logger"
	"food-rescue-dashboard/internal/ports"
	"food-rescue-dashboard/internal/services"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (SQL or in-memory storage, workbook reader) behind ports and starts the HTTP server.
func main() {
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	appLogger, err := logger.New(cfg.Server.AppEnv, cfg.Logger)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = appLogger.Sync() }()
	zap.ReplaceGlobals(appLogger)

	ctx := context.Background()

	store, closeStore, err := openStore(ctx, cfg.Database)
	if err != nil {
		appLogger.Fatal("could not open storage", zap.String("driver", cfg.Database.Driver), zap.Error(err))
	}
	defer closeStore()
	appLogger.Info("storage ready", zap.String("driver", cfg.Database.Driver))

	aliases := services.DefaultFieldAliases()
	if path := cfg.Import.HeaderAliasesPath; path != "" {
		aliases, err = services.LoadFieldAliases(path)
		if err != nil {
			appLogger.Fatal("could not load header aliases", zap.String("path", path), zap.Error(err))
		}
		appLogger.Info("header aliases loaded", zap.String("path", path))
	}

	router := api.NewRouter(api.RouterDeps{
		Reader:         workbook.NewReader(cfg.Import.MaxUploadBytes),
		Store:          store,
		Aliases:        aliases,
		MaxUploadBytes: cfg.Import.MaxUploadBytes,
	})

	// Write timeout covers parsing and bulk-inserting a full upload.
	srv := &http.Server{
		Addr:              ":" + cfg.Server.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		appLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("graceful shutdown failed", zap.Error(err))
	}
	appLogger.Info("server stopped")
}

// openStore returns the repositories for the configured driver. The "memory"
// driver keeps everything in process and loses it on restart.
func openStore(ctx context.Context, cfg config.DatabaseConfig) (ports.Store, func(), error) {
	if cfg.Driver == "memory" {
		return memory.NewStore().Ports(), func() {}, nil
	}

	if cfg.Driver == "sqlite" {
		if err := ensureParentDir(cfg.Path); err != nil {
			return ports.Store{}, nil, err
		}
	}

	conn, err := db.Open(ctx, cfg.Driver, cfg.DSN(), db.Options{
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return ports.Store{}, nil, err
	}

	if err := repositories.InitSchema(ctx, conn); err != nil {
		_ = conn.Close()
		return ports.Store{}, nil, fmt.Errorf("open store: %w", err)
	}

	return repositories.NewSQLStore(conn), func() { _ = conn.Close() }, nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || strings.HasPrefix(path, ":memory:") || strings.HasPrefix(path, "file:") {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("open store: create %q: %w", dir, err)
	}
	return nil
}
