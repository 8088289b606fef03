package repository

import (
	"context"
	"time"

	"github.com/amolwakchaure-sudo/TaskManagementProject/services/tasks/internal/models"
)

// TaskFilter narrows a Query. Zero-value fields are ignored; present fields
// combine with logical AND. The CreatedFrom/CreatedTo bounds are inclusive.
type TaskFilter struct {
	Status      string
	AssigneeID  string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// TaskStore is the persistence boundary for task documents. GetByID returns
// (nil, nil) when no task exists under the id. Replace overwrites the whole
// document keyed by id; Delete is idempotent. No transactional guarantees
// are assumed beyond single-document writes.
type TaskStore interface {
	GetByID(ctx context.Context, id string) (*models.Task, error)
	Query(ctx context.Context, filter TaskFilter) ([]*models.Task, error)
	Insert(ctx context.Context, task *models.Task) error
	Replace(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
}
