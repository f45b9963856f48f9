package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	CORS       CORSConfig
	Logging    LoggingConfig
	Allocation AllocationConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// DatabaseConfig holds database-specific configuration
type DatabaseConfig struct {
	Path string
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "console"
}

// Recommendation source identifiers accepted by RECOMMENDATION_SOURCE.
const (
	SourceStatic = "static"
	SourceSQLite = "sqlite"
)

// AllocationConfig holds the constants used by the allocation calculator and the
// dashboard built on top of it. Percentages are expressed as 0-100 values.
type AllocationConfig struct {
	Source               string
	CapitalMin           int64
	CapitalMax           int64
	CapitalDefault       int64
	CapitalStep          int64
	StopLossPercent      decimal.Decimal
	PositionLimitPercent decimal.Decimal
	USDRate              decimal.Decimal // local currency units per US dollar
	MarketAverageReturn  decimal.Decimal
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
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/cryptoshield.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{
				"http://localhost:3000",
				"http://localhost",
			}),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
	}

	alloc, err := loadAllocation()
	if err != nil {
		return nil, err
	}
	config.Allocation = alloc

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

func loadAllocation() (AllocationConfig, error) {
	var (
		cfg AllocationConfig
		err error
	)

	cfg.Source = strings.ToLower(getEnv("RECOMMENDATION_SOURCE", SourceStatic))
	if cfg.Source != SourceStatic && cfg.Source != SourceSQLite {
		return cfg, fmt.Errorf("invalid RECOMMENDATION_SOURCE %q: expected %q or %q", cfg.Source, SourceStatic, SourceSQLite)
	}

	if cfg.CapitalMin, err = getEnvInt("CAPITAL_MIN", 10000); err != nil {
		return cfg, err
	}
	if cfg.CapitalMax, err = getEnvInt("CAPITAL_MAX", 1000000); err != nil {
		return cfg, err
	}
	if cfg.CapitalDefault, err = getEnvInt("CAPITAL_DEFAULT", 50000); err != nil {
		return cfg, err
	}
	if cfg.CapitalStep, err = getEnvInt("CAPITAL_STEP", 5000); err != nil {
		return cfg, err
	}
	if cfg.StopLossPercent, err = getEnvDecimal("STOP_LOSS_PERCENT", "2"); err != nil {
		return cfg, err
	}
	if cfg.PositionLimitPercent, err = getEnvDecimal("POSITION_LIMIT_PERCENT", "20"); err != nil {
		return cfg, err
	}
	if cfg.USDRate, err = getEnvDecimal("USD_NGN_RATE", "830"); err != nil {
		return cfg, err
	}
	if cfg.MarketAverageReturn, err = getEnvDecimal("MARKET_AVERAGE_RETURN", "-0.46"); err != nil {
		return cfg, err
	}

	if cfg.CapitalMin <= 0 || cfg.CapitalMax < cfg.CapitalMin {
		return cfg, fmt.Errorf("invalid capital bounds: min=%d max=%d", cfg.CapitalMin, cfg.CapitalMax)
	}
	if cfg.CapitalDefault < cfg.CapitalMin || cfg.CapitalDefault > cfg.CapitalMax {
		return cfg, fmt.Errorf("CAPITAL_DEFAULT %d outside [%d, %d]", cfg.CapitalDefault, cfg.CapitalMin, cfg.CapitalMax)
	}
	if !cfg.USDRate.IsPositive() {
		return cfg, fmt.Errorf("USD_NGN_RATE must be positive, got %s", cfg.USDRate)
	}
	if cfg.StopLossPercent.IsNegative() {
		return cfg, fmt.Errorf("STOP_LOSS_PERCENT cannot be negative, got %s", cfg.StopLossPercent)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDecimal(key, defaultValue string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(getEnv(key, defaultValue))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

// getEnvList splits a comma separated variable, dropping empty entries.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
