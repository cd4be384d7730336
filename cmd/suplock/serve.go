package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"

	httpadapter "github.com/luca-patrignani/suplock/adapters/httpapi"
	"github.com/luca-patrignani/suplock/application"
	"github.com/luca-patrignani/suplock/config"
)

func serve(cfg config.Config, logger *slog.Logger, opts []application.Option) error {
	opts = append(opts, application.OnChange(func(c application.Change) {
		s := c.State
		logger.Debug("state changed",
			"version", c.Version,
			"match_id", s.MatchID.String(),
			"turn", s.Turn,
			"phase", s.Phase,
			"turn_number", s.TurnNumber)
	}))
	o, err := application.NewGameOrchestrator(opts...)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer o.Close()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(httpadapter.RequestIDMiddleware())
	e.Use(httpadapter.LoggingMiddleware(logger))

	handler := httpadapter.NewHandler(o, logger)
	handler.Register(e)

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", cfg.HTTPAddr)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := o.Journal().Verify(); err != nil {
		logger.Error("journal verification failed", "error", err)
	}
	return nil
}
