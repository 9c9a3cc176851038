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

	httpadapter "jobboard-ads/internal/adapter/http"
	"jobboard-ads/internal/adapter/postgres"
	"jobboard-ads/internal/adapter/usecase"
	"jobboard-ads/internal/auth"
	"jobboard-ads/internal/config"
	"jobboard-ads/internal/core/lifecycle"
	"jobboard-ads/internal/db"
	"jobboard-ads/internal/logger"
)

// main is the entry point of the campaign API. It loads configuration,
// optionally runs database migrations, initializes the database pool and
// repositories, then starts the HTTP server. On receiving a termination
// signal it gracefully shuts down the server.
func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, closer := logger.New(cfg.Log)
	defer closer.Close()
	slog.SetDefault(log)

	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return err
		}
		log.Info("migrations applied successfully")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return err
	}
	defer pool.Close()

	repo := postgres.NewCampaignRepository(pool)
	svc := usecase.NewCampaignUseCase(repo, lifecycle.NewEngine(cfg.ReviewBounds()))

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool, repo, cfg.Psql.SeedUserID); err != nil {
			return err
		}
		log.Info("demo campaigns seeded", slog.String("user_id", cfg.Psql.SeedUserID))
	}

	handler := httpadapter.NewHandler(svc, auth.NewJWTService(cfg.Auth), log)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err = <-serveErr:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Info("server gracefully stopped")
	return nil
}
