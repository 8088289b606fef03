package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/amolwakchaure-sudo/TaskManagementProject/services/tasks/internal/events"
	"github.com/amolwakchaure-sudo/TaskManagementProject/services/tasks/internal/models"
	"github.com/amolwakchaure-sudo/TaskManagementProject/services/tasks/internal/repository"
	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/credential"
	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/sla"
)

// AssigneeValidator answers whether a user id resolves against the user
// service. A transport failure is an error distinct from "does not exist".
type AssigneeValidator interface {
	Exists(ctx context.Context, userID, token string) (bool, error)
}

// TaskService owns the task lifecycle: creation, partial updates with an
// append-only activity trail, role-gated deletion and SLA breach queries.
//
// Update is a read-modify-write over the whole document. Two concurrent
// updates to the same id can interleave so the second write discards the
// first one's changes, including its activity entry. This last-write-wins
// window is a known limitation of the storage contract (no revision check).
type TaskService struct {
	store     repository.TaskStore
	validator AssigneeValidator
	publisher events.Publisher
	logger    *logrus.Logger
}

func NewTaskService(store repository.TaskStore, validator AssigneeValidator, publisher events.Publisher, logger *logrus.Logger) *TaskService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &TaskService{
		store:     store,
		validator: validator,
		publisher: publisher,
		logger:    logger,
	}
}

// Create validates the assignee, then persists a new task with its creation
// activity entry. Nothing is persisted when the assignee does not resolve.
func (s *TaskService) Create(ctx context.Context, req models.CreateTaskRequest, performer credential.Credential) (*models.Task, error) {
	exists, err := s.validator.Exists(ctx, req.AssigneeID, performer.Token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	if !exists {
		return nil, ErrAssigneeNotFound
	}

	now := time.Now().UTC()
	priority := req.Priority
	if priority == "" {
		priority = models.DefaultPriority
	}

	task := &models.Task{
		ID:          "t_" + uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		Status:      models.StatusOpen,
		AssigneeID:  req.AssigneeID,
		CreatedAt:   now,
		UpdatedAt:   now,
		DueDate:     req.DueDate,
		ActivityLog: []models.ActivityLogEntry{
			{Action: "Task Created", PerformedBy: performer.Subject, Timestamp: now},
		},
	}

	if err := s.store.Insert(ctx, task); err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeTaskCreated, task.ID, performer.Subject, now)
	return task, nil
}

// Update applies the partial field set to a stored task. All validation
// completes before the single write back, so a failed check leaves the
// stored document untouched. Each committed field mutation appends exactly
// one activity entry.
func (s *TaskService) Update(ctx context.Context, id string, req models.UpdateTaskRequest, performer credential.Credential) error {
	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}

	now := time.Now().UTC()

	if req.AssigneeID != nil && *req.AssigneeID != task.AssigneeID {
		exists, err := s.validator.Exists(ctx, *req.AssigneeID, performer.Token)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
		}
		if !exists {
			return ErrAssigneeNotFound
		}
		task.AssigneeID = *req.AssigneeID
		task.ActivityLog = append(task.ActivityLog, models.ActivityLogEntry{
			Action:      "Assignee Changed",
			PerformedBy: performer.Subject,
			Timestamp:   now,
		})
	}

	if req.Status != nil && *req.Status != task.Status {
		task.Status = *req.Status
		task.ActivityLog = append(task.ActivityLog, models.ActivityLogEntry{
			Action:      "Status changed to " + *req.Status,
			PerformedBy: performer.Subject,
			Timestamp:   now,
		})
	}

	task.UpdatedAt = now

	if err := s.store.Replace(ctx, task); err != nil {
		return err
	}

	s.publish(ctx, events.TypeTaskUpdated, task.ID, performer.Subject, now)
	return nil
}

// Delete physically removes a task. Only the Admin role may delete.
func (s *TaskService) Delete(ctx context.Context, id string, performer credential.Credential) error {
	if !performer.IsAdmin() {
		return ErrForbidden
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ctx, events.TypeTaskDeleted, id, performer.Subject, time.Now().UTC())
	return nil
}

func (s *TaskService) Get(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) List(ctx context.Context, filter repository.TaskFilter) ([]*models.Task, error) {
	return s.store.Query(ctx, filter)
}

// SlaBreaches returns every task past its due date that has not reached
// the Completed status.
func (s *TaskService) SlaBreaches(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.store.Query(ctx, repository.TaskFilter{})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var breached []*models.Task
	for _, t := range tasks {
		if sla.IsBreached(t.Status, t.DueDate, now) {
			breached = append(breached, t)
		}
	}
	return breached, nil
}

func (s *TaskService) publish(ctx context.Context, eventType, taskID, actor string, at time.Time) {
	event := events.TaskEvent{Type: eventType, TaskID: taskID, Actor: actor, At: at}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.WithFields(logrus.Fields{
			"component": "task_service",
			"event":     eventType,
			"task_id":   taskID,
		}).WithError(err).Warn("failed to publish task event")
	}
}
