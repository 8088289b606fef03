package events

import (
	"context"
	"time"
)

// Event types published after a committed task mutation.
const (
	TypeTaskCreated = "task.created"
	TypeTaskUpdated = "task.updated"
	TypeTaskDeleted = "task.deleted"
)

// TaskEvent is the message emitted on the task-events topic.
type TaskEvent struct {
	Type   string    `json:"type"`
	TaskID string    `json:"task_id"`
	Actor  string    `json:"actor"`
	At     time.Time `json:"at"`
}

// Publisher emits task lifecycle events. Publishing is best-effort; a failed
// publish never fails the mutation that triggered it.
type Publisher interface {
	Publish(ctx context.Context, event TaskEvent) error
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, event TaskEvent) error { return nil }
