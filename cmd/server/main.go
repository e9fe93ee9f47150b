package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/tmcalumni/aclstrainer/internal/acls"
	"github.com/tmcalumni/aclstrainer/internal/config"
	"github.com/tmcalumni/aclstrainer/internal/content"
	"github.com/tmcalumni/aclstrainer/internal/database"
	"github.com/tmcalumni/aclstrainer/internal/engine"
	"github.com/tmcalumni/aclstrainer/internal/migrations"
	"github.com/tmcalumni/aclstrainer/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Content repository (SQLite) ---
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating data dir: %w", err)
		}
	}
	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("connecting to sqlite: %w", err)
	}
	defer db.Close()

	if err := migrations.Run(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath)

	repo := content.NewStore(db)
	if err := repo.Seed(ctx, logger); err != nil {
		return fmt.Errorf("seeding scenarios: %w", err)
	}

	// --- Engine ---
	broker := server.NewBroker()
	eng := engine.New(repo, acls.Difficulties(), logger, engine.Options{
		Notify: broker.Publish,
	})

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, eng, repo, broker, db, cfg.SPADir)

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return eng.Run(gctx)
	})

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
