package config

import (
	"os"
	"strconv"

	"go.uber.org/zap"
)

// Config holds all configuration for the application.
type Config struct {
	AppEnv                string
	WorkbookPath          string
	JournalDBPath         string
	JournalDBDriver       string
	RedisAddr             string
	GRPCPort              int
	GRPCReflectionEnabled bool

	TargetWeight    float64
	Tolerance       float64
	SamplesPerSpout int
	SpoutsPerShift  int
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() *Config {
	port, err := strconv.Atoi(getEnv("GRPC_PORT", "50051"))
	if err != nil {
		port = 50051
	}

	reflection, err := strconv.ParseBool(getEnv("GRPC_REFLECTION_ENABLED", "false"))
	if err != nil {
		reflection = false
	}

	return &Config{
		AppEnv:                getEnv("APP_ENV", "development"),
		WorkbookPath:          getEnv("WORKBOOK_PATH", "./data/shiftlog.xlsx"),
		JournalDBPath:         getEnv("JOURNAL_DB_PATH", "./data/journal.db"),
		JournalDBDriver:       getEnv("JOURNAL_DB_DRIVER", "sqlite3"),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		GRPCPort:              port,
		GRPCReflectionEnabled: reflection,
		TargetWeight:          getEnvFloat("TARGET_WEIGHT", 50.0),
		Tolerance:             getEnvFloat("TOLERANCE", 0.5),
		SamplesPerSpout:       getEnvInt("SAMPLES_PER_SPOUT", 3),
		SpoutsPerShift:        getEnvInt("SPOUTS_PER_SHIFT", 8),
	}
}

// NewLogger creates a new Zap logger based on the config.
func NewLogger(cfg *Config) (*zap.Logger, error) {
	if cfg.AppEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	val, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return fallback
	}
	return val
}

func getEnvInt(key string, fallback int) int {
	val, err := strconv.Atoi(getEnv(key, ""))
	if err != nil || val < 1 {
		return fallback
	}
	return val
}
