package config

import (
	"os"
	"strconv"
	"time"

	"lifelens/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Analysis AnalysisConfig
	Database DatabaseConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// DataConfig holds signal file locations. All files live under Dir unless a
// specific override is set.
type DataConfig struct {
	Dir              string
	TransactionsFile string
	WatchFile        string
	VideoFile        string
	CheckinsFile     string
	ExcelFile        string
}

// AnalysisConfig holds detector thresholds and payload bounds
type AnalysisConfig struct {
	PrimaryZ       float64
	SecondaryZ     float64
	TopK           int
	RecentDays     int
	MaxAnomalyDays int
}

// DatabaseConfig holds optional Postgres settings. An empty URL selects the
// JSON file store for check-ins.
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:   loadServerConfig(),
		Data:     loadDataConfig(),
		Analysis: loadAnalysisConfig(),
		Database: loadDatabaseConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:            getEnvOrDefault("PORT", "8080"),
		ReadTimeout:     getEnvDurationOrDefault("SERVER_READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
		ShutdownTimeout: getEnvDurationOrDefault("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func loadDataConfig() DataConfig {
	return DataConfig{
		Dir:              getEnvOrDefault("DATA_DIR", "./data"),
		TransactionsFile: getEnvOrDefault("TRANSACTIONS_FILE", "transactions.json"),
		WatchFile:        getEnvOrDefault("WATCH_FILE", "watch_daily.json"),
		VideoFile:        getEnvOrDefault("VIDEO_FILE", "video_sentiment.json"),
		CheckinsFile:     getEnvOrDefault("CHECKINS_FILE", "checkins.json"),
		ExcelFile:        getEnvOrDefault("EXCEL_FILE", ""),
	}
}

func loadAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		PrimaryZ:       getEnvFloatOrDefault("ANOMALY_PRIMARY_Z", 2.0),
		SecondaryZ:     getEnvFloatOrDefault("ANOMALY_SECONDARY_Z", 1.75),
		TopK:           getEnvIntOrDefault("ANOMALY_TOP_K", 5),
		RecentDays:     getEnvIntOrDefault("EVIDENCE_RECENT_DAYS", 14),
		MaxAnomalyDays: getEnvIntOrDefault("EVIDENCE_ANOMALY_DAYS", 6),
	}
}

func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URL:     getEnvOrDefault("DATABASE_URL", ""),
		SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
	}
}

func validateConfig(config *Config) error {
	if config.Data.Dir == "" {
		return errors.ConfigInvalid("data directory is required")
	}
	if config.Analysis.PrimaryZ <= 0 {
		return errors.ConfigInvalid("primary anomaly threshold must be positive")
	}
	if config.Analysis.SecondaryZ <= 0 {
		return errors.ConfigInvalid("secondary anomaly threshold must be positive")
	}
	if config.Analysis.TopK < 0 || config.Analysis.RecentDays < 0 || config.Analysis.MaxAnomalyDays < 0 {
		return errors.ConfigInvalid("payload bounds must be non-negative")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
