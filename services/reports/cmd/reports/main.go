package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/amolwakchaure-sudo/TaskManagementProject/services/reports/internal/client/taskclient"
	"github.com/amolwakchaure-sudo/TaskManagementProject/services/reports/internal/config"
	handlers "github.com/amolwakchaure-sudo/TaskManagementProject/services/reports/internal/http"
	"github.com/amolwakchaure-sudo/TaskManagementProject/services/reports/internal/service"
	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/logger"
	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/middleware"
)

func main() {
	_ = godotenv.Load()

	logrusLogger := logger.Init("reports")

	cfg, err := config.Load()
	if err != nil {
		logrusLogger.WithError(err).Fatal("failed to load config")
	}

	tasks := taskclient.NewClient(cfg.TaskServiceURL, cfg.TaskServiceTimeout, logrusLogger)
	reportService := service.NewReportService(tasks)
	reportHandler := handlers.NewReportHandler(reportService, logrusLogger)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.RecoveryMiddleware)

	handlers.RegisterRoutes(r, reportHandler)

	addr := fmt.Sprintf(":%s", cfg.ReportsPort)
	logrusLogger.WithField("port", cfg.ReportsPort).Info("reports service starting")
	if err := http.ListenAndServe(addr, r); err != nil {
		logrusLogger.WithError(err).Fatal("server failed")
	}
}
