package repository

import (
	"time"

	"github.com/amolwakchaure-sudo/TaskManagementProject/services/tasks/internal/models"
)

// taskRecord is the DynamoDB shape of a task document. Timestamps are stored
// as epoch milliseconds so range filters stay numeric comparisons;
// due_date 0 means "not set".
type taskRecord struct {
	ID          string           `dynamodbav:"id"`
	Title       string           `dynamodbav:"title"`
	Description string           `dynamodbav:"description"`
	Priority    string           `dynamodbav:"priority"`
	Status      string           `dynamodbav:"status"`
	AssigneeID  string           `dynamodbav:"assignee_id"`
	CreatedAt   int64            `dynamodbav:"created_at"`
	UpdatedAt   int64            `dynamodbav:"updated_at"`
	DueDate     int64            `dynamodbav:"due_date"`
	ActivityLog []activityRecord `dynamodbav:"activity_log"`
}

type activityRecord struct {
	Action      string `dynamodbav:"action"`
	PerformedBy string `dynamodbav:"performed_by"`
	Timestamp   int64  `dynamodbav:"timestamp"`
}

func newTaskRecord(t *models.Task) taskRecord {
	rec := taskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		Status:      t.Status,
		AssigneeID:  t.AssigneeID,
		CreatedAt:   t.CreatedAt.UnixMilli(),
		UpdatedAt:   t.UpdatedAt.UnixMilli(),
	}
	if t.DueDate != nil {
		rec.DueDate = t.DueDate.UnixMilli()
	}
	rec.ActivityLog = make([]activityRecord, len(t.ActivityLog))
	for i, e := range t.ActivityLog {
		rec.ActivityLog[i] = activityRecord{
			Action:      e.Action,
			PerformedBy: e.PerformedBy,
			Timestamp:   e.Timestamp.UnixMilli(),
		}
	}
	return rec
}

func (r taskRecord) toTask() *models.Task {
	task := &models.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		Status:      r.Status,
		AssigneeID:  r.AssigneeID,
		CreatedAt:   time.UnixMilli(r.CreatedAt).UTC(),
		UpdatedAt:   time.UnixMilli(r.UpdatedAt).UTC(),
	}
	if r.DueDate != 0 {
		due := time.UnixMilli(r.DueDate).UTC()
		task.DueDate = &due
	}
	task.ActivityLog = make([]models.ActivityLogEntry, len(r.ActivityLog))
	for i, e := range r.ActivityLog {
		task.ActivityLog[i] = models.ActivityLogEntry{
			Action:      e.Action,
			PerformedBy: e.PerformedBy,
			Timestamp:   time.UnixMilli(e.Timestamp).UTC(),
		}
	}
	return task
}
