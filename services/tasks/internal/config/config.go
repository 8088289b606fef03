package config

import (
	"fmt"
	"os"
	"time"
)

type DatabaseConfig struct {
	Driver string // "dynamo" or "postgres"

	// dynamo
	Region   string
	Endpoint string // optional, for local DynamoDB
	Table    string

	// postgres
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type KafkaConfig struct {
	Brokers string // comma-separated; empty disables event publishing
	Topic   string
}

type Config struct {
	TasksPort          string
	UserServiceURL     string
	UserServiceTimeout time.Duration
	LogLevel           string
	DB                 DatabaseConfig
	Kafka              KafkaConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		TasksPort:          getEnv("TASKS_PORT", "8082"),
		UserServiceURL:     getEnv("USER_SERVICE_URL", "http://localhost:8081"),
		UserServiceTimeout: getDuration("USER_SERVICE_TIMEOUT", 3*time.Second),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DB: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "dynamo"),
			Region:   getEnv("DYNAMO_REGION", "us-east-1"),
			Endpoint: getEnv("DYNAMO_ENDPOINT", ""),
			Table:    getEnv("DYNAMO_TABLE", "Tasks"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "tasks_user"),
			Password: getEnv("DB_PASSWORD", "tasks_pass"),
			DBName:   getEnv("DB_NAME", "tasks_db"),
		},
		Kafka: KafkaConfig{
			Brokers: getEnv("KAFKA_BROKERS", ""),
			Topic:   getEnv("KAFKA_TOPIC_TASK_EVENTS", "task-events"),
		},
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

func (db *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		db.Host, db.Port, db.User, db.Password, db.DBName)
}
