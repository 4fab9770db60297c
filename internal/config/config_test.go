package config_test

import (
	"testing"

	"github.com/hmorita/Trade-Journal-Backend/internal/config"
	"github.com/hmorita/Trade-Journal-Backend/internal/model"
)

// TestLoad tests environment-driven configuration.
//
// WHY: Every knob has a default tuned for the local setup (Japanese yen
// principal, ".T" suffix); a regression here silently reprices a whole
// market.
func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{
			"SERVER_PORT", "SERVER_HOST", "DATA_DIR", "NOTION_TOKEN",
			"CAPITAL_JAPAN", "CAPITAL_US", "SYMBOL_SUFFIX_JAPAN", "CHART_LOOKBACK_DAYS",
		} {
			t.Setenv(key, "")
		}

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if cfg.Server.Addr != "localhost:5001" {
			t.Errorf("Expected default addr localhost:5001, got %s", cfg.Server.Addr)
		}
		if cfg.Data.Dir != "./data" {
			t.Errorf("Expected default data dir ./data, got %s", cfg.Data.Dir)
		}
		if cfg.Principal(model.MarketJapan) != 100000 {
			t.Errorf("Expected Japan principal 100000, got %v", cfg.Principal(model.MarketJapan))
		}
		if cfg.Principal(model.MarketUS) != 500 {
			t.Errorf("Expected US principal 500, got %v", cfg.Principal(model.MarketUS))
		}
		if cfg.Markets.SymbolSuffix[model.MarketJapan] != ".T" {
			t.Errorf("Expected Japan suffix .T, got %q", cfg.Markets.SymbolSuffix[model.MarketJapan])
		}
		if cfg.Markets.SymbolSuffix[model.MarketUS] != "" {
			t.Errorf("Expected empty US suffix, got %q", cfg.Markets.SymbolSuffix[model.MarketUS])
		}
		if cfg.Chart.LookbackDays != 20 {
			t.Errorf("Expected default lookback 20, got %d", cfg.Chart.LookbackDays)
		}
		if cfg.GitHub.Branch != "main" {
			t.Errorf("Expected default branch main, got %s", cfg.GitHub.Branch)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "8080")
		t.Setenv("SERVER_HOST", "0.0.0.0")
		t.Setenv("CAPITAL_JAPAN", "250000")
		t.Setenv("CHART_LOOKBACK_DAYS", "30")
		t.Setenv("JAPAN_SWING_DB_ID", "1f2e3d4c5b6a09881122334455667788")
		t.Setenv("SYNC_SCHEDULE", "0 18 * * 1-5")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if cfg.Server.Addr != "0.0.0.0:8080" {
			t.Errorf("Expected addr 0.0.0.0:8080, got %s", cfg.Server.Addr)
		}
		if cfg.Principal(model.MarketJapan) != 250000 {
			t.Errorf("Expected Japan principal 250000, got %v", cfg.Principal(model.MarketJapan))
		}
		if cfg.Chart.LookbackDays != 30 {
			t.Errorf("Expected lookback 30, got %d", cfg.Chart.LookbackDays)
		}
		if cfg.Notion.DatabaseIDs["japan_swing"] != "1f2e3d4c5b6a09881122334455667788" {
			t.Errorf("Unexpected database ID %q", cfg.Notion.DatabaseIDs["japan_swing"])
		}
		if cfg.Sync.Schedule != "0 18 * * 1-5" {
			t.Errorf("Unexpected sync schedule %q", cfg.Sync.Schedule)
		}
	})

	t.Run("malformed numeric overrides fall back to defaults", func(t *testing.T) {
		t.Setenv("CAPITAL_JAPAN", "a lot")
		t.Setenv("CHART_LOOKBACK_DAYS", "twenty")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if cfg.Principal(model.MarketJapan) != 100000 {
			t.Errorf("Expected fallback principal 100000, got %v", cfg.Principal(model.MarketJapan))
		}
		if cfg.Chart.LookbackDays != 20 {
			t.Errorf("Expected fallback lookback 20, got %d", cfg.Chart.LookbackDays)
		}
	})
}
