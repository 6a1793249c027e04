package ports

import (
	"context"

	"github.com/ardipermana59/hbus/internal/core/domain"
)

type TaskLogRepository interface {
	Append(ctx context.Context, in domain.AppendLogInput) (domain.TaskLogEntry, error)
	ListByTask(ctx context.Context, taskID uint64) ([]domain.TaskLogEntry, error)
	ListAll(ctx context.Context, filters domain.LogFilters) ([]domain.TaskLogEntry, error)
	// MostActiveUser returns nil when the users table is empty.
	MostActiveUser(ctx context.Context) (*domain.UserActivity, error)
}

type TaskLogService interface {
	ListByTask(ctx context.Context, taskID uint64) ([]domain.TaskLogEntry, error)
	ListAll(ctx context.Context, filters domain.LogFilters) ([]domain.TaskLogEntry, error)
}
