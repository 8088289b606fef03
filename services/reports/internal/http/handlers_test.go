package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amolwakchaure-sudo/TaskManagementProject/services/reports/internal/client/taskclient"
	"github.com/amolwakchaure-sudo/TaskManagementProject/services/reports/internal/models"
	"github.com/amolwakchaure-sudo/TaskManagementProject/services/reports/internal/service"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// taskServiceStub serves a fixed task set on the task service's query routes.
func taskServiceStub(t *testing.T, tasks []models.Task) *httptest.Server {
	t.Helper()

	now := time.Now().UTC()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tasks", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tasks)
	})
	mux.HandleFunc("/api/tasks/sla-breaches", func(w http.ResponseWriter, r *http.Request) {
		breached := []models.Task{}
		for _, task := range tasks {
			if task.DueDate != nil && task.DueDate.Before(now) && task.Status != "Completed" {
				breached = append(breached, task)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(breached)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testServer(t *testing.T, taskServiceURL string) *httptest.Server {
	t.Helper()

	tasks := taskclient.NewClient(taskServiceURL, 2*time.Second, testLogger())
	handler := NewReportHandler(service.NewReportService(tasks), testLogger())

	r := chi.NewRouter()
	RegisterRoutes(r, handler)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func doGet(t *testing.T, srv *httptest.Server, path, auth string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, srv.URL+path, nil)
	require.NoError(t, err)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func sampleTasks() []models.Task {
	past := time.Now().UTC().Add(-time.Hour)
	return []models.Task{
		{ID: "t_1", Status: "Open", AssigneeID: "u1", DueDate: &past},
		{ID: "t_2", Status: "Completed", AssigneeID: "u2"},
		{ID: "t_3", Status: "InProgress", AssigneeID: "u1"},
	}
}

func TestSummaryEndpoint(t *testing.T) {
	upstream := taskServiceStub(t, sampleTasks())
	srv := testServer(t, upstream.URL)

	resp := doGet(t, srv, "/api/reports/summary", "Bearer u1_Admin")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summary models.ReportSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&summary))
	assert.Equal(t, 3, summary.TotalTasks)
	assert.Equal(t, 2, summary.OpenTasks)
	assert.Equal(t, 1, summary.CompletedTasks)
	assert.Equal(t, 1, summary.SlaBreaches)
	assert.Equal(t, 2, summary.TasksByUser["u1"])
}

func TestSummaryEndpoint_MalformedCredential(t *testing.T) {
	upstream := taskServiceStub(t, sampleTasks())
	srv := testServer(t, upstream.URL)

	for _, auth := range []string{"", "Basic xyz", "Bearer noseparator"} {
		resp := doGet(t, srv, "/api/reports/summary", auth)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "auth %q", auth)
	}
}

func TestSummaryEndpoint_UpstreamDown(t *testing.T) {
	upstream := taskServiceStub(t, nil)
	upstream.Close()
	srv := testServer(t, upstream.URL)

	resp := doGet(t, srv, "/api/reports/summary", "Bearer u1_Admin")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestSlaBreachesEndpoint(t *testing.T) {
	upstream := taskServiceStub(t, sampleTasks())
	srv := testServer(t, upstream.URL)

	resp := doGet(t, srv, "/api/reports/sla-breaches", "Bearer u1_Engineer")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tasks []models.Task
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "t_1", tasks[0].ID)
}

func TestTasksByUserEndpoint(t *testing.T) {
	upstream := taskServiceStub(t, sampleTasks())
	srv := testServer(t, upstream.URL)

	resp := doGet(t, srv, "/api/reports/user/u1", "Bearer u1_Engineer")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tasks []models.Task
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tasks))
	require.Len(t, tasks, 2)

	resp = doGet(t, srv, "/api/reports/user/u9", "Bearer u1_Engineer")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(body))
}
