package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/amolwakchaure-sudo/TaskManagementProject/services/tasks/internal/models"
)

// PostgresTaskStore is the relational alternative to DynamoDB, selected via
// DB_DRIVER. The activity log lives in a JSONB column so the task is still
// written back as one document.
type PostgresTaskStore struct {
	db *sql.DB
}

func NewPostgresTaskStore(dsn string) (*PostgresTaskStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresTaskStore{db: db}, nil
}

func (s *PostgresTaskStore) Close() error {
	return s.db.Close()
}

const taskColumns = `id, title, description, priority, status, assignee_id, created_at, updated_at, due_date, activity_log`

func (s *PostgresTaskStore) GetByID(ctx context.Context, id string) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`
	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *PostgresTaskStore) Query(ctx context.Context, filter TaskFilter) ([]*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks`
	var conds []string
	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.AssigneeID != "" {
		args = append(args, filter.AssigneeID)
		conds = append(conds, fmt.Sprintf("assignee_id = $%d", len(args)))
	}
	if filter.CreatedFrom != nil {
		args = append(args, *filter.CreatedFrom)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.CreatedTo != nil {
		args = append(args, *filter.CreatedTo)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (s *PostgresTaskStore) Insert(ctx context.Context, task *models.Task) error {
	activity, err := json.Marshal(task.ActivityLog)
	if err != nil {
		return err
	}

	query := `INSERT INTO tasks (` + taskColumns + `)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = s.db.ExecContext(ctx, query,
		task.ID, task.Title, task.Description, task.Priority, task.Status,
		task.AssigneeID, task.CreatedAt, task.UpdatedAt, nullableTime(task.DueDate), activity)
	return err
}

func (s *PostgresTaskStore) Replace(ctx context.Context, task *models.Task) error {
	activity, err := json.Marshal(task.ActivityLog)
	if err != nil {
		return err
	}

	query := `UPDATE tasks SET title = $1, description = $2, priority = $3, status = $4,
              assignee_id = $5, created_at = $6, updated_at = $7, due_date = $8, activity_log = $9
              WHERE id = $10`
	_, err = s.db.ExecContext(ctx, query,
		task.Title, task.Description, task.Priority, task.Status,
		task.AssigneeID, task.CreatedAt, task.UpdatedAt, nullableTime(task.DueDate), activity, task.ID)
	return err
}

func (s *PostgresTaskStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	task := &models.Task{}
	var due sql.NullTime
	var activity []byte

	err := row.Scan(&task.ID, &task.Title, &task.Description, &task.Priority, &task.Status,
		&task.AssigneeID, &task.CreatedAt, &task.UpdatedAt, &due, &activity)
	if err != nil {
		return nil, err
	}
	if due.Valid {
		task.DueDate = &due.Time
	}
	if len(activity) > 0 {
		if err := json.Unmarshal(activity, &task.ActivityLog); err != nil {
			return nil, err
		}
	}
	return task, nil
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
