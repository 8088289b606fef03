package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/amolwakchaure-sudo/TaskManagementProject/services/users/internal/config"
	handlers "github.com/amolwakchaure-sudo/TaskManagementProject/services/users/internal/http"
	"github.com/amolwakchaure-sudo/TaskManagementProject/services/users/internal/repository"
	"github.com/amolwakchaure-sudo/TaskManagementProject/services/users/internal/service"
	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/logger"
	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/middleware"
)

func main() {
	_ = godotenv.Load()

	logrusLogger := logger.Init("users")

	cfg, err := config.Load()
	if err != nil {
		logrusLogger.WithError(err).Fatal("failed to load config")
	}

	store, err := repository.NewDynamoUserStore(context.Background(), cfg.DynamoRegion, cfg.DynamoEndpoint, cfg.DynamoTable)
	if err != nil {
		logrusLogger.WithError(err).Fatal("failed to init dynamo store")
	}

	userService := service.NewUserService(store)
	userHandler := handlers.NewUserHandler(userService, logrusLogger)

	r := chi.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RecoveryMiddleware)

	handlers.RegisterRoutes(r, userHandler)

	addr := fmt.Sprintf(":%s", cfg.UsersPort)
	logrusLogger.WithField("port", cfg.UsersPort).Info("users service starting")
	if err := http.ListenAndServe(addr, r); err != nil {
		logrusLogger.WithError(err).Fatal("server failed")
	}
}
