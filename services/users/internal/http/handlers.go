package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/amolwakchaure-sudo/TaskManagementProject/services/users/internal/models"
	"github.com/amolwakchaure-sudo/TaskManagementProject/services/users/internal/service"
	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/credential"
	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/middleware"
)

type UserHandler struct {
	userService *service.UserService
	logger      *logrus.Logger
}

func NewUserHandler(us *service.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		userService: us,
		logger:      logger,
	}
}

func (h *UserHandler) logEntry(r *http.Request, handler string) *logrus.Entry {
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

// Login handles POST /auth/login and mints the pseudo-credential token.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "Login")

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.userService.Authenticate(r.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		logEntry.WithField("username", req.Username).Warn("failed login attempt")
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		logEntry.WithError(err).Error("login failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logEntry.WithField("user_id", user.ID).Info("login successful")
	writeJSON(w, http.StatusOK, models.TokenResponse{Token: credential.Mint(user.ID, user.Role)})
}

// GetUser handles GET /api/users/{id}. This is also the existence check the
// task service relies on, so the 200/404 split is the contract here.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "GetUser")

	id := chi.URLParam(r, "id")
	user, err := h.userService.Get(r.Context(), id)
	if errors.Is(err, service.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		logEntry.WithError(err).Error("failed to get user")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// ListUsers handles GET /api/users.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "ListUsers")

	users, err := h.userService.List(r.Context())
	if err != nil {
		logEntry.WithError(err).Error("failed to list users")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if users == nil {
		users = []*models.User{}
	}

	writeJSON(w, http.StatusOK, users)
}

// CreateUser handles POST /api/users.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "CreateUser")

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.userService.Create(r.Context(), req)
	if errors.Is(err, service.ErrUsernameTaken) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		logEntry.WithError(err).Error("failed to create user")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logEntry.WithField("user_id", user.ID).Info("user created")
	w.Header().Set("Location", "/api/users/"+user.ID)
	writeJSON(w, http.StatusCreated, user)
}

// UpdateUser handles PUT /api/users/{id}.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "UpdateUser")

	id := chi.URLParam(r, "id")
	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.userService.Update(r.Context(), id, req)
	if errors.Is(err, service.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		logEntry.WithError(err).Error("failed to update user")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logEntry.WithField("user_id", id).Info("user updated")
	w.WriteHeader(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/users/{id}. A missing or malformed
// credential is 401 here (unlike the task service's 400); only Admin may
// delete.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	logEntry := h.logEntry(r, "DeleteUser")

	performer, err := credential.Parse(r.Header.Get("Authorization"))
	if err != nil {
		logEntry.Warn("malformed credential")
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}
	if !performer.IsAdmin() {
		logEntry.WithField("role", performer.Role).Warn("non-admin delete attempt")
		writeError(w, http.StatusForbidden, "only Admin can delete users")
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := h.userService.Get(r.Context(), id); errors.Is(err, service.ErrUserNotFound) {
		writeError(w, http.StatusNotFound, "user not found")
		return
	} else if err != nil {
		logEntry.WithError(err).Error("failed to load user")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.userService.Delete(r.Context(), id); err != nil {
		logEntry.WithError(err).Error("failed to delete user")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logEntry.WithField("user_id", id).Info("user deleted")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("User Deleted Successfully!"))
}
