package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/config"
	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/core"
	apphttp "github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/http"
	applog "github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/log"
	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/storage"
	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		applog.New(applog.ParseLevel("info")).Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := applog.New(applog.ParseLevel(cfg.LogLevel))
	applog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	persist, cleanup, err := storage.OpenBackend(cfg)
	if err != nil {
		logger.Error("Failed to initialize persistence backend", "error", err, "backend", cfg.Backend)
		os.Exit(1)
	}
	defer func() {
		if err := cleanup(); err != nil {
			logger.Error("Backend cleanup failed", "error", err)
		}
	}()

	st, err := store.Open(persist, logger.WithComponent("store"))
	if err != nil {
		logger.Error("Failed to open record store", "error", err)
		os.Exit(1)
	}
	logger.Info("Record store loaded", "backend", cfg.Backend, "records", st.Len())

	srv := apphttp.NewServer(":"+cfg.Port, st, core.SystemClock())
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting prayerlog server", "port", cfg.Port, "backend", cfg.Backend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
