package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/hmorita/Trade-Journal-Backend/internal/model"
)

// Config holds all configuration for the application. It is constructed once
// at startup and passed explicitly into the services that need it; there is
// no process-wide mutable configuration.
type Config struct {
	Server  ServerConfig
	CORS    CORSConfig
	Data    DataConfig
	Notion  NotionConfig
	GitHub  GitHubConfig
	Markets MarketsConfig
	Chart   ChartConfig
	Sync    SyncConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// DataConfig holds the location of the flat-file trade ledgers.
type DataConfig struct {
	Dir string
}

// NotionConfig holds the Notion API token and the database ID per dataset,
// keyed by dataset key (e.g. "japan_swing"). An empty ID disables sync for
// that dataset.
type NotionConfig struct {
	Token       string
	DatabaseIDs map[string]string
}

// GitHubConfig holds the repository the synced ledger files are mirrored to.
// An empty token disables the mirror.
type GitHubConfig struct {
	Token  string
	Repo   string // "owner/name"
	Branch string
}

// MarketsConfig holds the per-market capital base and the symbol suffix the
// price provider expects (Japanese tickers are quoted with a ".T" suffix).
type MarketsConfig struct {
	Principal    map[model.Market]float64
	SymbolSuffix map[model.Market]string
}

// ChartConfig holds per-trade chart parameters.
type ChartConfig struct {
	LookbackDays int // Calendar days shown before the entry date
}

// SyncConfig holds the optional periodic sync schedule. An empty schedule
// disables scheduled syncs; manual syncs via the API remain available.
type SyncConfig struct {
	Schedule string // Cron expression, e.g. "0 18 * * 1-5"
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5001"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost",
			},
		},
		Data: DataConfig{
			Dir: getEnv("DATA_DIR", "./data"),
		},
		Notion: NotionConfig{
			Token: getEnv("NOTION_TOKEN", ""),
			DatabaseIDs: map[string]string{
				"japan_swing": getEnv("JAPAN_SWING_DB_ID", ""),
				"japan_long":  getEnv("JAPAN_LONG_DB_ID", ""),
				"us_swing":    getEnv("US_SWING_DB_ID", ""),
				"us_long":     getEnv("US_LONG_DB_ID", ""),
			},
		},
		GitHub: GitHubConfig{
			Token:  getEnv("GITHUB_TOKEN", ""),
			Repo:   getEnv("GITHUB_REPO", ""),
			Branch: getEnv("GITHUB_BRANCH", "main"),
		},
		Markets: MarketsConfig{
			Principal: map[model.Market]float64{
				model.MarketJapan: getEnvFloat("CAPITAL_JAPAN", 100000),
				model.MarketUS:    getEnvFloat("CAPITAL_US", 500),
			},
			SymbolSuffix: map[model.Market]string{
				model.MarketJapan: getEnv("SYMBOL_SUFFIX_JAPAN", ".T"),
				model.MarketUS:    getEnv("SYMBOL_SUFFIX_US", ""),
			},
		},
		Chart: ChartConfig{
			LookbackDays: getEnvInt("CHART_LOOKBACK_DAYS", 20),
		},
		Sync: SyncConfig{
			Schedule: getEnv("SYNC_SCHEDULE", ""),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// Principal returns the capital base for a market, 0 when unconfigured.
func (c *Config) Principal(market model.Market) float64 {
	return c.Markets.Principal[market]
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvFloat gets a numeric environment variable, falling back to the
// default when the variable is unset or unparsable.
func getEnvFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvInt gets an integer environment variable, falling back to the
// default when the variable is unset or unparsable.
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
