package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"sueca-game/internal/ai"
	"sueca-game/internal/database"
	"sueca-game/internal/game"

	_ "github.com/joho/godotenv/autoload"
)

// Config is the server configuration read from the environment.
type Config struct {
	Addr          string
	DBDriver      string
	DBDSN         string
	AIURL         string // empty keeps the AI local
	AITimeout     time.Duration
	DealingMethod game.DealingMethod
	Difficulty    ai.Difficulty
	Seating       game.SeatingPolicy
	TieBreak      game.TieBreak
	StaticDir     string
	Dev           bool
}

// Load reads the SUECA_* variables. A .env file in the working directory is
// loaded first.
func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Config{
		Addr:      get("SUECA_ADDR", ":8080"),
		DBDriver:  get("SUECA_DB_DRIVER", database.DriverSQLite),
		DBDSN:     get("SUECA_DB_DSN", "./sueca.db"),
		AIURL:     strings.TrimRight(get("SUECA_AI_URL", ""), "/"),
		StaticDir: get("SUECA_STATIC_DIR", "web/static"),
	}
	var err error

	if cfg.DBDriver != database.DriverSQLite && cfg.DBDriver != database.DriverPostgres {
		return Config{}, fmt.Errorf("SUECA_DB_DRIVER: unsupported driver %q", cfg.DBDriver)
	}
	if cfg.AITimeout, err = time.ParseDuration(get("SUECA_AI_TIMEOUT", ai.DefaultRemoteTimeout.String())); err != nil {
		return Config{}, fmt.Errorf("SUECA_AI_TIMEOUT: %w", err)
	}
	if cfg.AITimeout <= 0 {
		return Config{}, fmt.Errorf("SUECA_AI_TIMEOUT: must be positive, got %s", cfg.AITimeout)
	}
	if cfg.DealingMethod, err = game.ParseDealingMethod(get("SUECA_DEALING_METHOD", string(game.MethodA))); err != nil {
		return Config{}, fmt.Errorf("SUECA_DEALING_METHOD: %w", err)
	}
	if cfg.Difficulty, err = ai.ParseDifficulty(get("SUECA_DIFFICULTY", string(ai.Medium))); err != nil {
		return Config{}, fmt.Errorf("SUECA_DIFFICULTY: %w", err)
	}
	if cfg.Seating, err = game.ParseSeatingPolicy(get("SUECA_SEATING", string(game.SeatingFixed))); err != nil {
		return Config{}, fmt.Errorf("SUECA_SEATING: %w", err)
	}
	if cfg.TieBreak, err = game.ParseTieBreak(get("SUECA_TIE_BREAK", string(game.TieBreakRedraw))); err != nil {
		return Config{}, fmt.Errorf("SUECA_TIE_BREAK: %w", err)
	}
	if cfg.Dev, err = strconv.ParseBool(get("SUECA_DEV", "false")); err != nil {
		return Config{}, fmt.Errorf("SUECA_DEV: %w", err)
	}
	return cfg, nil
}

// GameConfig returns the table defaults for a new game.
func (c Config) GameConfig() game.Config {
	return game.Config{
		DealingMethod: c.DealingMethod,
		Difficulty:    c.Difficulty,
		Seating:       c.Seating,
		TieBreak:      c.TieBreak,
	}
}
