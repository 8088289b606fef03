package taskclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/amolwakchaure-sudo/TaskManagementProject/services/reports/internal/models"
	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/middleware"
)

// ErrUnavailable reports a transport failure, timeout or non-200 answer
// from the task service.
var ErrUnavailable = errors.New("task service unavailable")

// Client pulls task documents from the task service's query surface.
type Client struct {
	http    *http.Client
	baseURL string
	logger  *logrus.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// ListTasks fetches the unfiltered task set.
func (c *Client) ListTasks(ctx context.Context, token string) ([]models.Task, error) {
	return c.getTasks(ctx, "/api/tasks", token)
}

// SlaBreaches fetches the task service's own breach view.
func (c *Client) SlaBreaches(ctx context.Context, token string) ([]models.Task, error) {
	return c.getTasks(ctx, "/api/tasks/sla-breaches", token)
}

func (c *Client) getTasks(ctx context.Context, path, token string) ([]models.Task, error) {
	requestID := middleware.GetRequestID(ctx)

	logEntry := c.logger.WithFields(logrus.Fields{
		"component":  "task_client",
		"request_id": requestID,
		"path":       path,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if requestID != "" {
		req.Header.Set(middleware.RequestIDHeader, requestID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logEntry.WithError(err).Warn("task service unreachable")
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logEntry.WithField("status", resp.StatusCode).Warn("task service returned non-200")
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var tasks []models.Task
	if err := json.NewDecoder(resp.Body).Decode(&tasks); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrUnavailable, err)
	}

	logEntry.WithField("count", len(tasks)).Debug("tasks fetched")
	return tasks, nil
}
