package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amolwakchaure-sudo/TaskManagementProject/services/tasks/internal/models"
)

func TestTaskRecordRoundTrip(t *testing.T) {
	created := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	due := created.Add(72 * time.Hour)

	task := &models.Task{
		ID:          "t_abc",
		Title:       "Fix bug",
		Description: "Crash on save",
		Priority:    "High",
		Status:      models.StatusOpen,
		AssigneeID:  "u2",
		CreatedAt:   created,
		UpdatedAt:   created,
		DueDate:     &due,
		ActivityLog: []models.ActivityLogEntry{
			{Action: "Task Created", PerformedBy: "u1", Timestamp: created},
		},
	}

	got := newTaskRecord(task).toTask()
	assert.Equal(t, task, got)
}

func TestTaskRecord_NoDueDate(t *testing.T) {
	task := &models.Task{
		ID:        "t_x",
		Status:    models.StatusOpen,
		CreatedAt: time.Now().Truncate(time.Millisecond).UTC(),
		UpdatedAt: time.Now().Truncate(time.Millisecond).UTC(),
	}

	rec := newTaskRecord(task)
	assert.Zero(t, rec.DueDate)

	got := rec.toTask()
	require.Nil(t, got.DueDate)
	assert.Empty(t, got.ActivityLog)
}
