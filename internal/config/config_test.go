package config

import "testing"

func TestParseFlagSeedOverridesEnv(t *testing.T) {
	t.Setenv("SUDOKU_SEED", "42")
	cfg, err := Parse([]string{"-seed", "7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Seed != 7 {
		t.Fatalf("want seed 7, got %d", cfg.Seed)
	}
}

func TestParseEnvSeedUsedWhenFlagAbsent(t *testing.T) {
	t.Setenv("SUDOKU_SEED", "99")
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Seed != 99 {
		t.Fatalf("want seed 99, got %d", cfg.Seed)
	}
}

func TestParseGenerateRetriesDefault(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GenerateRetries != 1000 {
		t.Fatalf("want default 1000, got %d", cfg.GenerateRetries)
	}
}

func TestParseGenerateRetriesOverride(t *testing.T) {
	cfg, err := Parse([]string{"-generate-retries", "5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.GenerateRetries != 5 {
		t.Fatalf("want 5, got %d", cfg.GenerateRetries)
	}
}
