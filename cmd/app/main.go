package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mr-omar-21/chawa-farms/internal/catalog"
	"github.com/mr-omar-21/chawa-farms/internal/config"
	"github.com/mr-omar-21/chawa-farms/internal/database/memory"
	"github.com/mr-omar-21/chawa-farms/internal/game"
	"github.com/mr-omar-21/chawa-farms/internal/nasa"
	"github.com/mr-omar-21/chawa-farms/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	cat, err := catalog.Load(cfg.CatalogDir)
	if err != nil {
		slog.Error("Failed to load catalog", "error", err, "dir", cfg.CatalogDir)
		os.Exit(1)
	}
	slog.Info("Catalog loaded", "regions", cat.RegionNames())

	saveStore := memory.NewSaveStore()
	simulator := nasa.NewSimulator()
	gameService := game.NewService(saveStore, cat, simulator)

	srv := server.NewServer(cfg.Port, saveStore, gameService, simulator, cat)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-sigCh:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced shutdown", "error", err)
	}
	slog.Info("Shutdown complete")
}
