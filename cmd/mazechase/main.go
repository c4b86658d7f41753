package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ugaemi/mazechase/internal/config"
	"github.com/ugaemi/mazechase/internal/game"
	"github.com/ugaemi/mazechase/internal/level"
	"github.com/ugaemi/mazechase/internal/session"
	"github.com/ugaemi/mazechase/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("runner failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	levels, err := loadLevels(cfg)
	if err != nil {
		return err
	}

	g, err := game.New(game.Options{
		Levels:     levels,
		StartLevel: cfg.StartLevel,
		Seed:       cfg.Seed,
		AutoStart:  cfg.AutoStart,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	if !cfg.AutoStart {
		g.RequestStart()
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	s, err := session.New(ctx, g, st, session.NewRandomWalk(cfg.Seed), session.Options{
		TickRate: cfg.TickRate,
		MaxTicks: cfg.MaxTicks,
	})
	if err != nil {
		return err
	}

	slog.Info("runner starting", "session", s.ID, "tick_rate", cfg.TickRate, "seed", cfg.Seed, "start_level", cfg.StartLevel)
	if err := s.Start(ctx); err != nil {
		return err
	}
	select {
	case <-s.Done():
	case <-ctx.Done():
		s.Stop()
		<-s.Done()
	}

	stats := s.Stats()
	slog.Info("runner stopped",
		"ticks", stats.Ticks,
		"state", stats.State.String(),
		"score", stats.Score,
		"level", stats.Level,
		"lives", stats.Lives,
	)
	return s.Err()
}

func loadLevels(cfg *config.Config) (*level.Table, error) {
	if cfg.LevelTable == "" {
		return level.Default(), nil
	}
	t, err := level.LoadFile(cfg.LevelTable)
	if err != nil {
		return nil, err
	}
	slog.Info("level table loaded", "file", cfg.LevelTable, "levels", t.Len())
	return t, nil
}

func openStore(ctx context.Context, cfg *config.Config) (store.HighScoreStore, error) {
	if cfg.DatabaseURL == "" {
		slog.Info("using in-memory high score store")
		return store.NewMemoryStore(), nil
	}
	st, err := store.NewPostgresStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	slog.Info("connected to database")
	return st, nil
}

func setupLogger(cfg *config.Config) {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(os.Stdout, opts)
	default:
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(h))
}
