package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/huku-dev/vela-sub000/internal/adapters/logger"
)

// Config holds all application configuration.
type Config struct {
	// Calculation Parameters
	PositionSizeUSD       float64       // Position size assumed for percent -> currency conversions
	StalenessThreshold    time.Duration // Age past which displayed market data is flagged
	AlignmentTolerancePct float64       // Price-drift band compatible with any signal stance

	// Report Tool
	DataDir      string // Directory holding trade/signal/brief fixture CSVs
	DefaultAsset string // Asset reported on when none is passed

	// Logging
	LogLevel zerolog.Level
}

// LoadConfig loads configuration from environment variables (.env file).
func LoadConfig() (*Config, error) {
	// Load .env file, but don't fail if it doesn't exist (allow pure env vars)
	_ = godotenv.Load()

	cfg := &Config{}
	var err error
	var errs []string // Collect validation errors

	cfg.PositionSizeUSD, err = getEnvAsFloatRequired("POSITION_SIZE_USD", 1000)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid POSITION_SIZE_USD: %v", err))
	} else if cfg.PositionSizeUSD <= 0 {
		errs = append(errs, "POSITION_SIZE_USD must be positive")
	}

	thresholdMs, err := getEnvAsIntRequired("STALENESS_THRESHOLD_MS", 300_000)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid STALENESS_THRESHOLD_MS: %v", err))
	} else if thresholdMs <= 0 {
		errs = append(errs, "STALENESS_THRESHOLD_MS must be positive")
	}
	cfg.StalenessThreshold = time.Duration(thresholdMs) * time.Millisecond

	cfg.AlignmentTolerancePct, err = getEnvAsFloatRequired("ALIGNMENT_TOLERANCE_PCT", 2.0)
	if err != nil {
		errs = append(errs, fmt.Sprintf("invalid ALIGNMENT_TOLERANCE_PCT: %v", err))
	} else if cfg.AlignmentTolerancePct <= 0 {
		errs = append(errs, "ALIGNMENT_TOLERANCE_PCT must be positive")
	}

	cfg.DataDir = getEnv("DATA_DIR", "./data")
	cfg.DefaultAsset = getEnv("DEFAULT_ASSET", "bitcoin")

	cfg.LogLevel = logger.ParseLevel(getEnv("LOG_LEVEL", "INFO"))

	// Combine validation errors
	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}

	return cfg, nil
}

// --- Env Var Helpers ---

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsIntRequired(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		// Use default if env var is not set at all
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		// Return error if env var is set but invalid
		return 0, fmt.Errorf("invalid integer value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}

func getEnvAsFloatRequired(key string, defaultValue float64) (float64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float value '%s' for key %s: %w", valueStr, key, err)
	}
	return value, nil
}
