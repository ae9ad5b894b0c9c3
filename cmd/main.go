package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"launchpad/internal/adapter/clock"
	httpadapter "launchpad/internal/adapter/http"
	"launchpad/internal/adapter/ledger"
	"launchpad/internal/adapter/memory"
	"launchpad/internal/adapter/postgres"
	"launchpad/internal/adapter/usecase"
	"launchpad/internal/config"
	"launchpad/internal/core/port"
	"launchpad/internal/db"
)

// main is the entry point of the launchpad service. It loads configuration,
// optionally runs database migrations, wires the campaign repository and the
// custody/payout ledger onto the settlement engine, then starts the HTTP
// server. On receiving a termination signal it gracefully shuts down.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var (
		repo    port.CampaignRepository
		custody port.TokenCustody
		funds   port.FundsTransfer
	)
	switch cfg.Sale.Storage {
	case "memory":
		logger.Warn("using in-memory storage, state is not persisted")
		led := memory.NewLedger(cfg.Sale.CustodyAccount)
		repo = memory.NewCampaignRepository()
		custody, funds = led, led
	default:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				os.Exit(1)
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()

		if cfg.Psql.Seed {
			if err = db.Seed(ctx, pool, cfg.Sale.CustodyAccount); err != nil {
				logger.Error("seed error", slog.Any("error", err))
				os.Exit(1)
			}
		}

		led := ledger.NewPostgres(pool, cfg.Sale.CustodyAccount)
		repo = postgres.NewCampaignRepository(pool)
		custody, funds = led, led
	}

	svc := usecase.NewSaleUseCase(repo, custody, funds, clock.System{}, logger, usecase.Config{
		AdminAddress:   cfg.Sale.AdminAddress,
		OwnerAddress:   cfg.Sale.OwnerAddress,
		CustodyAccount: cfg.Sale.CustodyAccount,
	})

	handler := httpadapter.NewHandler(svc, logger, cfg.Sale.AdminToken, cfg.Sale.AdminAddress)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
