package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.NPlayers != 9 {
		t.Errorf("NPlayers: got %d, expected 9", cfg.NPlayers)
	}
	if cfg.Tie != TieNone {
		t.Errorf("Tie: got %v, expected TieNone", cfg.Tie)
	}
	if cfg.Engine != BackendThreads {
		t.Errorf("Engine: got %v, expected BackendThreads", cfg.Engine)
	}
}

func TestLoadEnv_Overlay(t *testing.T) {
	cfg := Defaults()
	t.Setenv("MAFIA_N_PLAYERS", "15")
	t.Setenv("MAFIA_TIE", "random")

	if err := LoadEnv(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.NPlayers != 15 {
		t.Errorf("NPlayers: got %d, expected 15", cfg.NPlayers)
	}
	if cfg.Tie != TieRandom {
		t.Errorf("Tie: got %v, expected TieRandom", cfg.Tie)
	}
}

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "game.conf")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadFile_AppliesKnownKeys(t *testing.T) {
	path := writeTempConfig(t, "n_players: 12\n# a comment\n\nlog: full\ntie: random\n")
	cfg := Defaults()

	warnings, err := LoadFile(path, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
	if cfg.NPlayers != 12 {
		t.Errorf("NPlayers: got %d, expected 12", cfg.NPlayers)
	}
	if cfg.Log != LogFull {
		t.Errorf("Log: got %v, expected LogFull", cfg.Log)
	}
	if cfg.Tie != TieRandom {
		t.Errorf("Tie: got %v, expected TieRandom", cfg.Tie)
	}
}

func TestLoadFile_WarnsOnUnknownKey(t *testing.T) {
	path := writeTempConfig(t, "not_a_real_key: 1\n")
	cfg := Defaults()

	warnings, err := LoadFile(path, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
}

func TestLoadFile_WarnsOnMalformedValue(t *testing.T) {
	path := writeTempConfig(t, "n_players: not-a-number\n")
	cfg := Defaults()
	original := cfg.NPlayers

	warnings, err := LoadFile(path, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", warnings)
	}
	if cfg.NPlayers != original {
		t.Errorf("malformed value should leave key untouched: got %d, expected %d", cfg.NPlayers, original)
	}
}

func TestValidate_RejectsBadNPlayers(t *testing.T) {
	cfg := Defaults()
	cfg.NPlayers = 0

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for n_players == 0")
	}
}

func TestValidate_DowngradesHumanCoroutineCombo(t *testing.T) {
	cfg := Defaults()
	cfg.Human = true
	cfg.UseCoroutines = true
	cfg.Engine = BackendCoro

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Engine != BackendThreads {
		t.Errorf("Engine: got %v, expected BackendThreads after downgrade", cfg.Engine)
	}
	if cfg.UseCoroutines {
		t.Error("UseCoroutines should be cleared after downgrade")
	}
}

func TestValidate_CoroutinesSelectsCoroEngine(t *testing.T) {
	cfg := Defaults()
	cfg.UseCoroutines = true

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Engine != BackendCoro {
		t.Errorf("Engine: got %v, expected BackendCoro", cfg.Engine)
	}
}
