package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sueca-game/internal/ai"
	"sueca-game/internal/config"
	"sueca-game/internal/database"
	"sueca-game/internal/server"

	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	var logger *zap.Logger
	if cfg.Dev {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("starting Sueca server", zap.String("addr", cfg.Addr), zap.String("db_driver", cfg.DBDriver))

	db, err := database.New(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer db.Close()

	chooser := ai.FallbackChooser{
		Fallback: ai.LocalChooser{},
		Logger:   logger,
	}
	if cfg.AIURL != "" {
		chooser.Primary = ai.RemoteChooser{BaseURL: cfg.AIURL, Timeout: cfg.AITimeout}
		logger.Info("using remote AI", zap.String("url", cfg.AIURL), zap.Duration("timeout", cfg.AITimeout))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hub := server.NewHub(server.HubConfig{
		Defaults: cfg.GameConfig(),
		Chooser:  chooser,
		Store:    db,
		Logger:   logger,
	})
	go hub.Run(ctx)

	e := server.NewRouter(server.RouterConfig{
		Hub:       hub,
		Results:   db,
		StaticDir: cfg.StaticDir,
		Logger:    logger,
	})

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
