package service

import (
	"context"
	"time"

	"github.com/amolwakchaure-sudo/TaskManagementProject/services/reports/internal/models"
	"github.com/amolwakchaure-sudo/TaskManagementProject/shared/sla"
)

// TaskFetcher is the slice of the task service the aggregator consumes.
type TaskFetcher interface {
	ListTasks(ctx context.Context, token string) ([]models.Task, error)
	SlaBreaches(ctx context.Context, token string) ([]models.Task, error)
}

// ReportService computes rollups over the task service's query surface.
// Breach counting reuses the shared classifier, so the summary can never
// disagree with the task service's own breach view.
type ReportService struct {
	tasks TaskFetcher
}

func NewReportService(tasks TaskFetcher) *ReportService {
	return &ReportService{tasks: tasks}
}

func (s *ReportService) Summary(ctx context.Context, token string) (*models.ReportSummary, error) {
	tasks, err := s.tasks.ListTasks(ctx, token)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	summary := &models.ReportSummary{
		TotalTasks:    len(tasks),
		TasksByUser:   map[string]int{},
		TasksByStatus: map[string]int{},
	}

	for _, t := range tasks {
		if t.Status == sla.StatusCompleted {
			summary.CompletedTasks++
		} else {
			summary.OpenTasks++
		}
		if sla.IsBreached(t.Status, t.DueDate, now) {
			summary.SlaBreaches++
		}
		summary.TasksByUser[t.AssigneeID]++
		summary.TasksByStatus[t.Status]++
	}

	return summary, nil
}

func (s *ReportService) SlaBreaches(ctx context.Context, token string) ([]models.Task, error) {
	return s.tasks.SlaBreaches(ctx, token)
}

func (s *ReportService) TasksByUser(ctx context.Context, userID, token string) ([]models.Task, error) {
	tasks, err := s.tasks.ListTasks(ctx, token)
	if err != nil {
		return nil, err
	}

	filtered := []models.Task{}
	for _, t := range tasks {
		if t.AssigneeID == userID {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}
