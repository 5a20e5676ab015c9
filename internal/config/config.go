// Package config loads simulator/process configuration from a JSON file
// with optional environment overrides (a .env file is honored when present).
// Game rules themselves live in engine.Config; this layer only decides how
// a process sets one up.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/dkauper/fiva/engine"
)

// Config is the process configuration for a headless Fiva run.
type Config struct {
	NumPlayers int      `json:"num_players"`
	NumTeams   int      `json:"num_teams"`
	Names      []string `json:"names"`
	Layout     string   `json:"layout"` // "classic" or "scan"
	Games      int      `json:"games"`  // simulation runs
	Seed       uint64   `json:"seed"`   // 0 = seed from crypto/rand
	LogLevel   string   `json:"log_level"`
}

// Default returns the two-player, single-game baseline.
func Default() Config {
	return Config{
		NumPlayers: 2,
		NumTeams:   2,
		Layout:     "classic",
		Games:      1,
		LogLevel:   "info",
	}
}

// Load reads the JSON file at path (skipped when path is empty), then
// applies environment overrides. A .env file in the working directory is
// loaded first when present; a missing .env is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	_ = godotenv.Load()
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v, ok := envInt("FIVA_PLAYERS"); ok {
		cfg.NumPlayers = v
	}
	if v, ok := envInt("FIVA_TEAMS"); ok {
		cfg.NumTeams = v
	}
	if v, ok := envInt("FIVA_GAMES"); ok {
		cfg.Games = v
	}
	if v := os.Getenv("FIVA_LAYOUT"); v != "" {
		cfg.Layout = v
	}
	if v := os.Getenv("FIVA_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("FIVA_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = n
		}
	}
}

func envInt(key string) (int, bool) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// EngineConfig converts to the engine's game configuration. Counts are
// clamped by the engine itself.
func (c Config) EngineConfig() engine.Config {
	ec := engine.DefaultConfig()
	ec.NumPlayers = uint8(c.NumPlayers)
	ec.NumTeams = uint8(c.NumTeams)
	for i, name := range c.Names {
		if i >= engine.MaxPlayers {
			break
		}
		ec.Names[i] = name
	}
	return ec
}

// BoardLayout resolves the configured layout name.
func (c Config) BoardLayout() (*engine.BoardLayout, error) {
	switch c.Layout {
	case "", "classic":
		return engine.LayoutClassic, nil
	case "scan":
		return engine.LayoutScan, nil
	}
	return nil, fmt.Errorf("unknown layout %q", c.Layout)
}
