package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/amolwakchaure-sudo/TaskManagementProject/services/tasks/internal/models"
	"github.com/amolwakchaure-sudo/TaskManagementProject/services/tasks/internal/repository"
	"github.com/amolwakchaure-sudo/TaskManagementProject/services/tasks/internal/service"
	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/credential"
	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/middleware"
)

type TaskHandler struct {
	taskService *service.TaskService
	logger      *logrus.Logger
}

func NewTaskHandler(ts *service.TaskService, logger *logrus.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: ts,
		logger:      logger,
	}
}

func (h *TaskHandler) logEntry(r *http.Request, handler string) *logrus.Entry {
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

// GetTask handles GET /api/tasks/{id}. No credential required.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "GetTask")

	id := chi.URLParam(r, "id")
	task, err := h.taskService.Get(r.Context(), id)
	if errors.Is(err, service.ErrTaskNotFound) {
		logEntry.WithField("task_id", id).Warn("task not found")
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	if err != nil {
		logEntry.WithError(err).Error("failed to get task")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, task)
}

// ListTasks handles GET /api/tasks with optional status/assigneeId/start/end
// filters, all AND-combined.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "ListTasks")

	filter := repository.TaskFilter{
		Status:     r.URL.Query().Get("status"),
		AssigneeID: r.URL.Query().Get("assigneeId"),
	}

	var err error
	filter.CreatedFrom, err = parseTimeParam(r, "start")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start parameter")
		return
	}
	filter.CreatedTo, err = parseTimeParam(r, "end")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end parameter")
		return
	}

	tasks, err := h.taskService.List(r.Context(), filter)
	if err != nil {
		logEntry.WithError(err).Error("failed to list tasks")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logEntry.WithField("count", len(tasks)).Debug("tasks listed")
	writeJSON(w, http.StatusOK, taskList(tasks))
}

// CreateTask handles POST /api/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "CreateTask")

	performer, err := credential.Parse(r.Header.Get("Authorization"))
	if err != nil {
		logEntry.Warn("malformed credential")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logEntry.WithError(err).Warn("invalid request body")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.taskService.Create(r.Context(), req, performer)
	if err != nil {
		logEntry.WithError(err).Error("failed to create task")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logEntry.WithField("task_id", task.ID).Info("task created")
	w.Header().Set("Location", "/api/tasks/"+task.ID)
	writeJSON(w, http.StatusCreated, task)
}

// UpdateTask handles PUT /api/tasks/{id}. Domain failures (task missing,
// assignee missing) are deliberately not mapped here; they fall through to
// the generic 500 envelope, matching the create/delete asymmetry the
// platform has always had.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "UpdateTask")

	performer, err := credential.Parse(r.Header.Get("Authorization"))
	if err != nil {
		logEntry.Warn("malformed credential")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logEntry.WithError(err).Warn("invalid request body")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.taskService.Update(r.Context(), id, req, performer); err != nil {
		logEntry.WithError(err).WithField("task_id", id).Error("failed to update task")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logEntry.WithField("task_id", id).Info("task updated")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Task updated!"))
}

// DeleteTask handles DELETE /api/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "DeleteTask")

	performer, err := credential.Parse(r.Header.Get("Authorization"))
	if err != nil {
		logEntry.Warn("malformed credential")
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	err = h.taskService.Delete(r.Context(), id, performer)
	if errors.Is(err, service.ErrForbidden) {
		logEntry.WithField("task_id", id).Warn("non-admin delete attempt")
		writeError(w, http.StatusForbidden, err.Error())
		return
	}
	if err != nil {
		logEntry.WithError(err).Error("failed to delete task")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logEntry.WithField("task_id", id).Info("task deleted")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Task deleted Successfully!"))
}

// SlaBreaches handles GET /api/tasks/sla-breaches.
func (h *TaskHandler) SlaBreaches(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "SlaBreaches")

	tasks, err := h.taskService.SlaBreaches(r.Context())
	if err != nil {
		logEntry.WithError(err).Error("failed to compute sla breaches")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logEntry.WithField("count", len(tasks)).Debug("sla breaches listed")
	writeJSON(w, http.StatusOK, taskList(tasks))
}

func parseTimeParam(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// taskList keeps empty results rendering as [] instead of null.
func taskList(tasks []*models.Task) []*models.Task {
	if tasks == nil {
		return []*models.Task{}
	}
	return tasks
}
