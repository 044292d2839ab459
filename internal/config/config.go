package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string
	GinMode     string
	RateLimit   int

	BoardRows int
	BoardCols int

	RoundDuration      time.Duration
	GracePeriod        time.Duration
	RoundCountdown     time.Duration
	WatchdogInterval   time.Duration
	WorkerPoolSize     int
	DiceDir            string
	DictionaryDir      string
	DefaultDiceConfig  string
	MaxPlayerNameChars int

	// SyncScoring runs the scoring worker inline on the request goroutine
	// instead of dispatching to the queue, so reads observe SCORED
	// without a worker process running (test mode).
	SyncScoring bool
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if it exists (optional)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		GinMode:     getEnv("GIN_MODE", "release"),
		RateLimit:   getEnvAsInt("RATE_LIMIT", 100),

		BoardRows: getEnvAsInt("BOARD_ROWS", 4),
		BoardCols: getEnvAsInt("BOARD_COLS", 4),

		RoundDuration:      getEnvAsDuration("ROUND_DURATION_MINUTES", 3*time.Minute, time.Minute),
		GracePeriod:        getEnvAsDuration("GRACE_PERIOD_SECONDS", 10*time.Second, time.Second),
		RoundCountdown:     getEnvAsDuration("ROUND_COUNTDOWN_SECONDS", 15*time.Second, time.Second),
		WatchdogInterval:   getEnvAsDuration("WATCHDOG_INTERVAL_SECONDS", 0, time.Second),
		WorkerPoolSize:     getEnvAsInt("WORKER_POOL_SIZE", 4),
		DiceDir:            getEnv("DICE_DIR", "dice"),
		DictionaryDir:      getEnv("DICTIONARY_DIR", "dictionaries"),
		DefaultDiceConfig:  getEnv("DEFAULT_DICE_CONFIG", "international"),
		MaxPlayerNameChars: getEnvAsInt("MAX_PLAYER_NAME_CHARS", 250),

		SyncScoring: getEnvAsBool("SYNC_SCORING", false),
	}

	return cfg, nil
}

// getEnv gets environment variable with fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvAsInt gets environment variable as integer with fallback
func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvAsBool gets environment variable as a boolean with fallback
func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvAsDuration reads a bare integer env var and scales it by unit,
// matching the *_SECONDS / *_MINUTES naming the config keys carry.
func getEnvAsDuration(key string, fallback time.Duration, unit time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return time.Duration(intVal) * unit
		}
	}
	return fallback
}
