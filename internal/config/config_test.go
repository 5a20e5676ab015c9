package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dkauper/fiva/engine"
)

func TestLoadFileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fiva.json")
	data := `{"num_players": 4, "num_teams": 2, "layout": "scan", "games": 10, "names": ["Ann", "Ben"]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("FIVA_TEAMS", "3")
	t.Setenv("FIVA_LOG_LEVEL", "debug")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.NumPlayers != 4 || cfg.NumTeams != 3 || cfg.Games != 10 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log level = %q", cfg.LogLevel)
	}

	ec := cfg.EngineConfig()
	if ec.NumPlayers != 4 || ec.Names[0] != "Ann" || ec.Names[1] != "Ben" {
		t.Fatalf("engine config = %+v", ec)
	}

	layout, err := cfg.BoardLayout()
	if err != nil || layout != engine.LayoutScan {
		t.Fatalf("layout = %v, %v", layout, err)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.NumPlayers != 2 || cfg.NumTeams != 2 || cfg.Games != 1 {
		t.Fatalf("defaults = %+v", cfg)
	}
	if _, err := cfg.BoardLayout(); err != nil {
		t.Fatal(err)
	}

	cfg.Layout = "hexagonal"
	if _, err := cfg.BoardLayout(); err == nil {
		t.Fatal("unknown layout accepted")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/fiva.json"); err == nil {
		t.Fatal("missing file not reported")
	}
}
