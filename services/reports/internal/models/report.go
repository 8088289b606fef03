package models

import "time"

// Task is the read-side view of a task document as served by the task
// service. The reporting service never mutates tasks.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Status      string     `json:"status"`
	AssigneeID  string     `json:"assigneeId"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

type ReportSummary struct {
	TotalTasks     int            `json:"totalTasks"`
	OpenTasks      int            `json:"openTasks"`
	CompletedTasks int            `json:"completedTasks"`
	SlaBreaches    int            `json:"slaBreaches"`
	TasksByUser    map[string]int `json:"tasksByUser"`
	TasksByStatus  map[string]int `json:"tasksByStatus"`
}
