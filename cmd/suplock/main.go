package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/suplock/application"
	"github.com/luca-patrignani/suplock/config"
	"github.com/luca-patrignani/suplock/domain/catalog"
)

func main() {
	mode := "play"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}
	if mode != "play" && mode != "serve" {
		fmt.Fprintf(os.Stderr, "usage: %s [play|serve]\n", os.Args[0])
		os.Exit(2)
	}

	envPath := os.Getenv("SUPLOCK_DOTENV")
	if envPath == "" {
		envPath = ".env"
	}
	loaded, err := config.LoadEnvFile(envPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", envPath, err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	var logger *slog.Logger
	if mode == "serve" {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	} else {
		// Create a new slog handler with the PTerm logger. The board already
		// shows every applied action, so info logs stay quiet here.
		level := cfg.LogLevel
		if level == slog.LevelInfo {
			level = slog.LevelWarn
		}
		logger = slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(ptermLevel(level))))
	}
	slog.SetDefault(logger)
	if loaded {
		logger.Debug("dotenv loaded", "path", envPath)
	}

	cards, err := loadCards(cfg.CatalogPath)
	if err != nil {
		logger.Error("failed to load catalog", "path", cfg.CatalogPath, "error", err)
		os.Exit(1)
	}

	opts := []application.Option{
		application.WithRules(cfg.Rules),
		application.WithCards(cards),
		application.WithLogger(logger),
		application.WithCombatDelay(cfg.CombatDelay),
		application.WithAutoCombat(cfg.AutoCombat),
	}

	switch mode {
	case "serve":
		err = serve(cfg, logger, opts)
	default:
		err = play(cfg, logger, opts)
	}
	if err != nil {
		logger.Error("exiting", "error", err)
		os.Exit(1)
	}
}

func loadCards(path string) ([]catalog.Card, error) {
	if path == "" {
		c, err := catalog.Default()
		if err != nil {
			return nil, err
		}
		return c.Cards(), nil
	}
	c, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return c.Cards(), nil
}

func ptermLevel(l slog.Level) pterm.LogLevel {
	switch {
	case l <= slog.LevelDebug:
		return pterm.LogLevelDebug
	case l <= slog.LevelInfo:
		return pterm.LogLevelInfo
	case l <= slog.LevelWarn:
		return pterm.LogLevelWarn
	default:
		return pterm.LogLevelError
	}
}
