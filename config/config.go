// Package config reads the SUPLOCK_* environment of the binary.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/luca-patrignani/suplock/domain/suplock"
)

const prefix = "SUPLOCK_"

type Config struct {
	HTTPAddr    string
	LogLevel    slog.Level
	CombatDelay time.Duration
	AutoCombat  bool
	CatalogPath string // empty means the embedded catalog
	Rules       suplock.Rules
}

// LoadEnvFile loads variables from a dotenv file without overriding the ones
// already set. A missing file is not an error; it reports whether the file
// was read.
func LoadEnvFile(path string) (bool, error) {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", path, err)
	}
	return true, nil
}

// Load builds the configuration from the environment.
func Load() (Config, error) {
	rules := suplock.DefaultRules()
	c := Config{
		HTTPAddr:    envOr("HTTP_ADDR", ":8080"),
		CombatDelay: time.Second,
		AutoCombat:  true,
		CatalogPath: os.Getenv(prefix + "CATALOG"),
	}
	rules.NameA = envOr("PLAYER_A", rules.NameA)
	rules.NameB = envOr("PLAYER_B", rules.NameB)

	if v := os.Getenv(prefix + "COMBAT_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %sCOMBAT_DELAY %q: %w", prefix, v, err)
		}
		if d < 0 {
			return Config{}, fmt.Errorf("invalid %sCOMBAT_DELAY %q: negative", prefix, v)
		}
		c.CombatDelay = d
	}

	if v := os.Getenv(prefix + "AUTO_COMBAT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %sAUTO_COMBAT %q: %w", prefix, v, err)
		}
		c.AutoCombat = b
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"INITIAL_HEALTH", &rules.InitialHealth},
		{"INITIAL_YIELD", &rules.InitialYield},
		{"HAND_SIZE", &rules.HandSize},
		{"DECK_COPIES", &rules.DeckCopies},
	}
	for _, f := range ints {
		v := os.Getenv(prefix + f.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid %s%s %q: want a positive integer", prefix, f.key, v)
		}
		*f.dst = n
	}
	c.Rules = rules

	level, err := parseLogLevel(envOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}
	c.LogLevel = level

	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(prefix + key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid %sLOG_LEVEL %q", prefix, s)
	}
}
