package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/amolwakchaure-sudo/TaskManagementProject/services/tasks/internal/client/userclient"
	"github.com/amolwakchaure-sudo/TaskManagementProject/services/tasks/internal/config"
	"github.com/amolwakchaure-sudo/TaskManagementProject/services/tasks/internal/events"
	handlers "github.com/amolwakchaure-sudo/TaskManagementProject/services/tasks/internal/http"
	taskMiddleware "github.com/amolwakchaure-sudo/TaskManagementProject/services/tasks/internal/middleware"
	"github.com/amolwakchaure-sudo/TaskManagementProject/services/tasks/internal/repository"
	"github.com/amolwakchaure-sudo/TaskManagementProject/services/tasks/internal/service"
	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/logger"
	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/middleware"
)

func main() {
	_ = godotenv.Load()

	logrusLogger := logger.Init("tasks")

	cfg, err := config.Load()
	if err != nil {
		logrusLogger.WithError(err).Fatal("failed to load config")
	}

	ctx := context.Background()

	var store repository.TaskStore
	switch cfg.DB.Driver {
	case "dynamo":
		store, err = repository.NewDynamoTaskStore(ctx, cfg.DB.Region, cfg.DB.Endpoint, cfg.DB.Table)
		if err != nil {
			logrusLogger.WithError(err).Fatal("failed to init dynamo store")
		}
	case "postgres":
		postgresStore, err := repository.NewPostgresTaskStore(cfg.DB.DSN())
		if err != nil {
			logrusLogger.WithError(err).Fatal("failed to connect to database")
		}
		defer postgresStore.Close()
		store = postgresStore
	default:
		logrusLogger.Fatal("unsupported database driver: " + cfg.DB.Driver)
	}

	validator := userclient.NewClient(cfg.UserServiceURL, cfg.UserServiceTimeout, logrusLogger)

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Kafka.Brokers != "" {
		kafkaPublisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		logrusLogger.WithField("topic", cfg.Kafka.Topic).Info("task event publishing enabled")
	}

	taskService := service.NewTaskService(store, validator, publisher, logrusLogger)
	taskHandler := handlers.NewTaskHandler(taskService, logrusLogger)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(taskMiddleware.MetricsMiddleware)
	r.Use(taskMiddleware.SecurityHeadersMiddleware)
	r.Use(middleware.RecoveryMiddleware)

	handlers.RegisterRoutes(r, taskHandler)
	r.Method(http.MethodGet, "/metrics", taskMiddleware.MetricsHandler())

	addr := fmt.Sprintf(":%s", cfg.TasksPort)
	logrusLogger.WithField("port", cfg.TasksPort).Info("tasks service starting")
	if err := http.ListenAndServe(addr, r); err != nil {
		logrusLogger.WithError(err).Fatal("server failed")
	}
}
