package models

import (
	"time"

	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/sla"
)

// Known status values. Status is stored as an open string; the platform
// attaches special meaning only to StatusCompleted (SLA breach exemption).
const (
	StatusOpen       = "Open"
	StatusInProgress = "InProgress"
	StatusCompleted  = sla.StatusCompleted
	StatusClosed     = "Closed"
)

// DefaultPriority is applied when a create request leaves priority empty.
const DefaultPriority = "Medium"

type Task struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Priority    string             `json:"priority"`
	Status      string             `json:"status"`
	AssigneeID  string             `json:"assigneeId"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
	DueDate     *time.Time         `json:"dueDate,omitempty"`
	ActivityLog []ActivityLogEntry `json:"activityLog"`
}

// ActivityLogEntry is one record of the append-only audit trail attached to
// a task. Entries are never rewritten or removed.
type ActivityLogEntry struct {
	Action      string    `json:"action"`
	PerformedBy string    `json:"performedBy"`
	Timestamp   time.Time `json:"timestamp"`
}

type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	AssigneeID  string     `json:"assigneeId"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// UpdateTaskRequest carries the partial field set an update may touch.
// Nil means "leave unchanged".
type UpdateTaskRequest struct {
	Status     *string `json:"status,omitempty"`
	AssigneeID *string `json:"assigneeId,omitempty"`
}
