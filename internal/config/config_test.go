package config

import (
	"testing"
	"time"
)

func TestLoadRequiresSeason(t *testing.T) {
	t.Setenv("SEASON_YEAR", "")
	t.Setenv("SEASON_ID", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error when no season is configured")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SEASON_YEAR", "2025")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if cfg.SeasonYear != 2025 {
		t.Fatalf("expected season year 2025, got %d", cfg.SeasonYear)
	}
	if cfg.OutputDir != "docs" || cfg.DefaultTimezone != "America/New_York" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.OpponentRecentLimit != 10 || cfg.MaxPages != 50 {
		t.Fatalf("unexpected tuning defaults: %+v", cfg)
	}
	if !cfg.IncludeLeagueDays || !cfg.IncludePlaceholders || !cfg.ShowDivision || !cfg.ShowOpponentRecord {
		t.Fatalf("expected inclusion toggles to default on: %+v", cfg)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %v", cfg.HTTPTimeout)
	}
	if len(cfg.PlaceholderNames) == 0 {
		t.Fatal("expected default placeholder sentinels")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SEASON_ID", "7")
	t.Setenv("OUTPUT_DIR", "out")
	t.Setenv("OPPONENT_RECENT_LIMIT", "3")
	t.Setenv("INCLUDE_LEAGUE_DAYS", "false")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("PLACEHOLDER_NAMES", "TBD, TBC ,-")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected load to succeed, got %v", err)
	}
	if cfg.SeasonID != 7 || cfg.OutputDir != "out" || cfg.OpponentRecentLimit != 3 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.IncludeLeagueDays {
		t.Fatal("expected league days to be excluded")
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", cfg.HTTPTimeout)
	}
	if len(cfg.PlaceholderNames) != 3 || cfg.PlaceholderNames[1] != "TBC" {
		t.Fatalf("unexpected sentinel parse: %v", cfg.PlaceholderNames)
	}
}

func TestYearLabel(t *testing.T) {
	cfg := Config{SeasonYear: 2025}
	if got := cfg.YearLabel(9); got != "2025" {
		t.Fatalf("expected year label, got %s", got)
	}
	cfg = Config{}
	if got := cfg.YearLabel(9); got != "9" {
		t.Fatalf("expected season id label, got %s", got)
	}
}
