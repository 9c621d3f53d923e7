// Package config provides configuration management for the grievance portal.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (highest priority)
//  2. External .env file
//  3. Embedded .env file (fallback, included in binary)
//  4. Hard-coded defaults (lowest priority)
//
// Configuration is loaded once at startup and remains immutable during
// runtime for thread-safety.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// embeddedEnv contains the .env file embedded at build time so the binary
// works standalone. It ships template values only; real deployments override
// them with environment variables.
//
//go:embed .env
var embeddedEnv string

// Config holds all application configuration.
type Config struct {
	// HTTP server
	Port string // Port the portal API listens on

	// Storage
	DBPath string // Path to the sqlite database file

	// Telegram notifications (optional)
	TelegramBotToken string // Bot API token
	TelegramChatID   string // Chat ID for official notifications

	// Translation (optional)
	TranslateAPIKey string // Cloud Translation API key; empty → offline mock

	// Scheduled admin report
	ReportSchedule string // Cron spec for the daily report job
	ReportLimit    int    // How many recent complaints the report renders

	// HTTP client tuning
	HTTPTimeout time.Duration

	// Debug mode - notifications are logged instead of sent
	DebugMode bool
}

// LoadConfig loads configuration from environment variables with defaults.
//
// Loading process:
//  1. Parse embedded .env and set values as fallback environment variables
//  2. Try to load an external .env file (overrides embedded values)
//  3. Read environment variables (override everything)
//  4. Apply defaults for missing optional values, then validate
func LoadConfig() (*Config, error) {
	envMap, err := godotenv.Unmarshal(embeddedEnv)
	if err == nil {
		for k, v := range envMap {
			if os.Getenv(k) == "" {
				os.Setenv(k, v)
			}
		}
	}

	_ = godotenv.Load()

	cfg := &Config{
		Port:   getEnvOrDefault("PORT", "8080"),
		DBPath: getEnvOrDefault("DB_PATH", "database.db"),

		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),

		TranslateAPIKey: os.Getenv("TRANSLATE_API_KEY"),

		ReportSchedule: getEnvOrDefault("REPORT_SCHEDULE", "0 8 * * *"),
		ReportLimit:    getEnvInt("REPORT_LIMIT", 10),

		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 30*time.Second),

		DebugMode: getEnvOrDefault("DEBUG_MODE", "false") == "true",
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that required configuration is present and sensible.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.ReportLimit < 1 {
		return fmt.Errorf("REPORT_LIMIT must be at least 1, got %d", c.ReportLimit)
	}
	return nil
}

// Helper functions for environment variable parsing

// getEnvOrDefault returns the environment variable value or a default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as an integer or a default if not set/invalid
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration returns the environment variable as a duration or a default if not set/invalid.
//
// Accepts standard Go duration strings like "5s", "10m", "1h30m"
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
