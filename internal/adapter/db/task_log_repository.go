package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ardipermana59/hbus/internal/core/domain"
	"github.com/ardipermana59/hbus/internal/core/ports"
)

const insertLogQuery = `
INSERT INTO task_logs (task_id, user_id, action, note)
VALUES (?, ?, ?, ?)`

const getLogQuery = `
SELECT tl.id, tl.task_id, tl.user_id, tl.action, tl.note, tl.created_at,
       u.name AS user_name,
       t.title AS task_title
FROM task_logs tl
LEFT JOIN users u ON u.id = tl.user_id
LEFT JOIN tasks t ON t.id = tl.task_id
WHERE tl.id = ?`

const listLogsByTaskQuery = `
SELECT tl.id, tl.task_id, tl.user_id, tl.action, tl.note, tl.created_at,
       u.name AS user_name
FROM task_logs tl
LEFT JOIN users u ON u.id = tl.user_id
WHERE tl.task_id = ?
ORDER BY tl.created_at DESC, tl.id DESC`

// Lowest user id wins a tie so the result is deterministic across runs.
const mostActiveUserQuery = `
SELECT u.id, u.name, COUNT(tl.id) AS log_count
FROM users u
LEFT JOIN task_logs tl ON tl.user_id = u.id
GROUP BY u.id, u.name
ORDER BY log_count DESC, u.id ASC
LIMIT 1`

type TaskLogRepository struct {
	db *sqlx.DB
}

var _ ports.TaskLogRepository = (*TaskLogRepository)(nil)

func NewTaskLogRepository(db *sqlx.DB) *TaskLogRepository {
	return &TaskLogRepository{db: db}
}

type taskLogRow struct {
	ID        uint64         `db:"id"`
	TaskID    uint64         `db:"task_id"`
	UserID    uint64         `db:"user_id"`
	Action    string         `db:"action"`
	Note      sql.NullString `db:"note"`
	CreatedAt time.Time      `db:"created_at"`
	UserName  sql.NullString `db:"user_name"`
	TaskTitle sql.NullString `db:"task_title"`
}

func (r *TaskLogRepository) Append(ctx context.Context, in domain.AppendLogInput) (domain.TaskLogEntry, error) {
	q := ext(ctx, r.db)

	res, err := q.ExecContext(ctx, insertLogQuery, in.TaskID, in.UserID, in.Action, nullString(in.Note))
	if err != nil {
		return domain.TaskLogEntry{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.TaskLogEntry{}, err
	}

	var row taskLogRow
	if err := sqlx.GetContext(ctx, q, &row, getLogQuery, id); err != nil {
		return domain.TaskLogEntry{}, err
	}
	return mapTaskLogRow(row), nil
}

func (r *TaskLogRepository) ListByTask(ctx context.Context, taskID uint64) ([]domain.TaskLogEntry, error) {
	var rows []taskLogRow
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, listLogsByTaskQuery, taskID); err != nil {
		return nil, err
	}
	return mapTaskLogRows(rows), nil
}

func (r *TaskLogRepository) ListAll(ctx context.Context, filters domain.LogFilters) ([]domain.TaskLogEntry, error) {
	query := `
SELECT tl.id, tl.task_id, tl.user_id, tl.action, tl.note, tl.created_at,
       u.name AS user_name,
       t.title AS task_title
FROM task_logs tl
LEFT JOIN users u ON u.id = tl.user_id
LEFT JOIN tasks t ON t.id = tl.task_id`

	var (
		conditions []string
		args       []any
	)
	if filters.TaskID != nil {
		conditions = append(conditions, "tl.task_id = ?")
		args = append(args, *filters.TaskID)
	}
	if filters.UserID != nil {
		conditions = append(conditions, "tl.user_id = ?")
		args = append(args, *filters.UserID)
	}
	if len(conditions) > 0 {
		query += "\nWHERE " + strings.Join(conditions, " AND ")
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = domain.DefaultLogLimit
	}
	query += "\nORDER BY tl.created_at DESC, tl.id DESC\nLIMIT ?"
	args = append(args, limit)

	var rows []taskLogRow
	if err := sqlx.SelectContext(ctx, ext(ctx, r.db), &rows, query, args...); err != nil {
		return nil, err
	}
	return mapTaskLogRows(rows), nil
}

func (r *TaskLogRepository) MostActiveUser(ctx context.Context) (*domain.UserActivity, error) {
	var row struct {
		ID       uint64 `db:"id"`
		Name     string `db:"name"`
		LogCount int    `db:"log_count"`
	}
	if err := sqlx.GetContext(ctx, ext(ctx, r.db), &row, mostActiveUserQuery); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &domain.UserActivity{UserID: row.ID, Name: row.Name, LogCount: row.LogCount}, nil
}

func mapTaskLogRows(rows []taskLogRow) []domain.TaskLogEntry {
	entries := make([]domain.TaskLogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, mapTaskLogRow(row))
	}
	return entries
}

func mapTaskLogRow(row taskLogRow) domain.TaskLogEntry {
	entry := domain.TaskLogEntry{
		ID:        row.ID,
		TaskID:    row.TaskID,
		UserID:    row.UserID,
		Action:    row.Action,
		CreatedAt: row.CreatedAt,
	}

	if row.Note.Valid {
		value := row.Note.String
		entry.Note = &value
	}
	if row.UserName.Valid {
		value := row.UserName.String
		entry.UserName = &value
	}
	if row.TaskTitle.Valid {
		value := row.TaskTitle.String
		entry.TaskTitle = &value
	}

	return entry
}
