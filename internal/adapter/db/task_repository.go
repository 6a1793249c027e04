package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ardipermana59/hbus/internal/core/domain"
	"github.com/ardipermana59/hbus/internal/core/ports"
)

const taskColumns = `
  t.id, t.title, t.description, t.status, t.assigned_to, t.created_by,
  t.start_date, t.end_date, t.created_at, t.updated_at,
  u1.name AS assigned_to_name,
  u2.name AS created_by_name`

const taskJoins = `
FROM tasks t
LEFT JOIN users u1 ON u1.id = t.assigned_to
LEFT JOIN users u2 ON u2.id = t.created_by`

const getTaskQuery = `SELECT` + taskColumns + taskJoins + `
WHERE t.id = ?`

const insertTaskQuery = `
INSERT INTO tasks (title, description, status, assigned_to, created_by, start_date, end_date)
VALUES (?, ?, ?, ?, ?, ?, ?)`

const updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, status = ?, assigned_to = ?, start_date = ?, end_date = ?, updated_at = NOW(3)
WHERE id = ?`

type TaskRepository struct {
	db *sqlx.DB
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type taskRow struct {
	ID             uint64         `db:"id"`
	Title          string         `db:"title"`
	Description    sql.NullString `db:"description"`
	Status         string         `db:"status"`
	AssignedTo     sql.NullInt64  `db:"assigned_to"`
	CreatedBy      uint64         `db:"created_by"`
	StartDate      sql.NullTime   `db:"start_date"`
	EndDate        sql.NullTime   `db:"end_date"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at"`
	AssignedToName sql.NullString `db:"assigned_to_name"`
	CreatedByName  sql.NullString `db:"created_by_name"`
}

func (r *TaskRepository) Create(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error) {
	q := ext(ctx, r.db)

	res, err := q.ExecContext(ctx, insertTaskQuery,
		in.Title,
		nullString(in.Description),
		string(in.Status),
		nullUint(in.AssignedTo),
		in.CreatedBy,
		nullTime(in.StartDate),
		nullTime(in.EndDate),
	)
	if err != nil {
		return domain.Task{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.Task{}, err
	}

	return r.getByID(ctx, q, uint64(id))
}

func (r *TaskRepository) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	return r.getByID(ctx, ext(ctx, r.db), id)
}

func (r *TaskRepository) getByID(ctx context.Context, q sqlx.ExtContext, id uint64) (domain.Task, error) {
	var row taskRow
	if err := sqlx.GetContext(ctx, q, &row, getTaskQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}
	return mapTaskRow(row), nil
}

func (r *TaskRepository) List(ctx context.Context, filters domain.TaskFilters) ([]domain.Task, error) {
	var (
		conditions []string
		args       []any
	)
	if filters.Status != nil {
		conditions = append(conditions, "t.status = ?")
		args = append(args, string(*filters.Status))
	}
	if filters.AssignedTo != nil {
		conditions = append(conditions, "t.assigned_to = ?")
		args = append(args, *filters.AssignedTo)
	}

	query := `SELECT` + taskColumns + taskJoins
	if len(conditions) > 0 {
		query += "\nWHERE " + strings.Join(conditions, " AND ")
	}
	query += "\nORDER BY t.created_at DESC, t.id DESC"

	var rows []taskRow
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, query, args...); err != nil {
		return nil, err
	}
	return mapTaskRows(rows), nil
}

func (r *TaskRepository) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	q := ext(ctx, r.db)

	if _, err := q.ExecContext(ctx, updateTaskQuery,
		task.Title,
		nullString(task.Description),
		string(task.Status),
		nullUint(task.AssignedTo),
		nullTime(task.StartDate),
		nullTime(task.EndDate),
		task.ID,
	); err != nil {
		return domain.Task{}, err
	}

	return r.getByID(ctx, q, task.ID)
}

func (r *TaskRepository) Delete(ctx context.Context, id uint64) error {
	res, err := ext(ctx, r.db).ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}
	return nil
}

const statsByStatusQuery = `
SELECT status, COUNT(*) AS count
FROM tasks
GROUP BY status
ORDER BY count DESC, status ASC`

const statsByUserQuery = `
SELECT u.id, u.name, COUNT(t.id) AS task_count
FROM users u
LEFT JOIN tasks t ON t.assigned_to = u.id
GROUP BY u.id, u.name
ORDER BY task_count DESC, u.id ASC`

func (r *TaskRepository) StatsByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	var rows []struct {
		Status string `db:"status"`
		Count  int    `db:"count"`
	}
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, statsByStatusQuery); err != nil {
		return nil, err
	}

	stats := make([]domain.StatusCount, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, domain.StatusCount{Status: domain.TaskStatus(row.Status), Count: row.Count})
	}
	return stats, nil
}

func (r *TaskRepository) StatsByUser(ctx context.Context) ([]domain.UserTaskCount, error) {
	var rows []struct {
		ID        uint64 `db:"id"`
		Name      string `db:"name"`
		TaskCount int    `db:"task_count"`
	}
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, statsByUserQuery); err != nil {
		return nil, err
	}

	stats := make([]domain.UserTaskCount, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, domain.UserTaskCount{UserID: row.ID, Name: row.Name, TaskCount: row.TaskCount})
	}
	return stats, nil
}

func (r *TaskRepository) RecentInProgress(ctx context.Context, limit int) ([]domain.Task, error) {
	query := fmt.Sprintf(`SELECT%s%s
WHERE t.status = ?
ORDER BY t.updated_at DESC, t.id DESC
LIMIT %d`, taskColumns, taskJoins, limit)

	var rows []taskRow
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, query, string(domain.TaskStatusInProgress)); err != nil {
		return nil, err
	}
	return mapTaskRows(rows), nil
}

func mapTaskRows(rows []taskRow) []domain.Task {
	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRow(row))
	}
	return tasks
}

func mapTaskRow(row taskRow) domain.Task {
	task := domain.Task{
		ID:        row.ID,
		Title:     row.Title,
		Status:    domain.TaskStatus(row.Status),
		CreatedBy: row.CreatedBy,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}

	if row.Description.Valid {
		value := row.Description.String
		task.Description = &value
	}
	if row.AssignedTo.Valid {
		value := uint64(row.AssignedTo.Int64)
		task.AssignedTo = &value
	}
	if row.StartDate.Valid {
		value := row.StartDate.Time
		task.StartDate = &value
	}
	if row.EndDate.Valid {
		value := row.EndDate.Time
		task.EndDate = &value
	}
	if row.AssignedToName.Valid {
		value := row.AssignedToName.String
		task.AssignedToName = &value
	}
	if row.CreatedByName.Valid {
		value := row.CreatedByName.String
		task.CreatedByName = &value
	}

	return task
}

func nullString(value *string) sql.NullString {
	if value == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *value, Valid: true}
}

func nullUint(value *uint64) sql.NullInt64 {
	if value == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*value), Valid: true}
}

func nullTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
