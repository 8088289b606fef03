package config

import "os"

type Config struct {
	UsersPort string
	LogLevel  string

	DynamoRegion   string
	DynamoEndpoint string
	DynamoTable    string
}

func Load() (*Config, error) {
	cfg := &Config{
		UsersPort:      getEnv("USERS_PORT", "8081"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DynamoRegion:   getEnv("DYNAMO_REGION", "us-east-1"),
		DynamoEndpoint: getEnv("DYNAMO_ENDPOINT", ""),
		DynamoTable:    getEnv("DYNAMO_TABLE", "Users"),
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
