package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/amolwakchaure-sudo/TaskManagementProject/services/reports/internal/client/taskclient"
	"github.com/amolwakchaure-sudo/TaskManagementProject/services/reports/internal/models"
	"github.com/amolwakchaure-sudo/TaskManagementProject/services/reports/internal/service"
	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/credential"
	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/middleware"
)

type ReportHandler struct {
	reportService *service.ReportService
	logger        *logrus.Logger
}

func NewReportHandler(rs *service.ReportService, logger *logrus.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: rs,
		logger:        logger,
	}
}

func (h *ReportHandler) logEntry(r *http.Request, handler string) *logrus.Entry {
	return h.logger.WithFields(logrus.Fields{
		"component":  "http_handler",
		"handler":    handler,
		"request_id": middleware.GetRequestID(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// authorize parses the caller's credential. Reports are read-only, so any
// well-formed credential is enough; there is no role gate here.
func (h *ReportHandler) authorize(w http.ResponseWriter, r *http.Request, logEntry *logrus.Entry) (credential.Credential, bool) {
	cred, err := credential.Parse(r.Header.Get("Authorization"))
	if err != nil {
		logEntry.Warn("missing or malformed credential")
		writeError(w, http.StatusUnauthorized, err.Error())
		return credential.Credential{}, false
	}
	return cred, true
}

// Summary handles GET /api/reports/summary.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "Summary")

	cred, ok := h.authorize(w, r, logEntry)
	if !ok {
		return
	}

	summary, err := h.reportService.Summary(r.Context(), cred.Token)
	if errors.Is(err, taskclient.ErrUnavailable) {
		logEntry.WithError(err).Error("task service unavailable")
		writeError(w, http.StatusBadGateway, "task service unavailable")
		return
	}
	if err != nil {
		logEntry.WithError(err).Error("failed to build summary")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

// SlaBreaches handles GET /api/reports/sla-breaches.
func (h *ReportHandler) SlaBreaches(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "SlaBreaches")

	cred, ok := h.authorize(w, r, logEntry)
	if !ok {
		return
	}

	tasks, err := h.reportService.SlaBreaches(r.Context(), cred.Token)
	if errors.Is(err, taskclient.ErrUnavailable) {
		logEntry.WithError(err).Error("task service unavailable")
		writeError(w, http.StatusBadGateway, "task service unavailable")
		return
	}
	if err != nil {
		logEntry.WithError(err).Error("failed to fetch breaches")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, taskList(tasks))
}

// TasksByUser handles GET /api/reports/user/{userId}.
func (h *ReportHandler) TasksByUser(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "TasksByUser")

	cred, ok := h.authorize(w, r, logEntry)
	if !ok {
		return
	}

	userID := chi.URLParam(r, "userId")
	tasks, err := h.reportService.TasksByUser(r.Context(), userID, cred.Token)
	if errors.Is(err, taskclient.ErrUnavailable) {
		logEntry.WithError(err).Error("task service unavailable")
		writeError(w, http.StatusBadGateway, "task service unavailable")
		return
	}
	if err != nil {
		logEntry.WithError(err).Error("failed to fetch user tasks")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, taskList(tasks))
}

// taskList keeps an empty result serializing as [] rather than null.
func taskList(tasks []models.Task) []models.Task {
	if tasks == nil {
		return []models.Task{}
	}
	return tasks
}
