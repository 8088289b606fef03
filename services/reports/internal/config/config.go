package config

import (
	"os"
	"time"
)

type Config struct {
	ReportsPort        string
	TaskServiceURL     string
	TaskServiceTimeout time.Duration
	LogLevel           string
}

func Load() (*Config, error) {
	cfg := &Config{
		ReportsPort:        getEnv("REPORTS_PORT", "8083"),
		TaskServiceURL:     getEnv("TASK_SERVICE_URL", "http://localhost:8082"),
		TaskServiceTimeout: getDuration("TASK_SERVICE_TIMEOUT", 5*time.Second),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
