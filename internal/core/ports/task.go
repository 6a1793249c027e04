package ports

import (
	"context"

	"github.com/ardipermana59/hbus/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error)
	GetByID(ctx context.Context, id uint64) (domain.Task, error)
	List(ctx context.Context, filters domain.TaskFilters) ([]domain.Task, error)
	// Update writes the full merged row; coalescing of partial input against
	// the stored values happens in the service layer before this call.
	Update(ctx context.Context, task domain.Task) (domain.Task, error)
	Delete(ctx context.Context, id uint64) error

	StatsByStatus(ctx context.Context) ([]domain.StatusCount, error)
	StatsByUser(ctx context.Context) ([]domain.UserTaskCount, error)
	RecentInProgress(ctx context.Context, limit int) ([]domain.Task, error)
}

type TaskService interface {
	CreateTask(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, []domain.TaskLogEntry, error)
	ListTasks(ctx context.Context, filters domain.TaskFilters) ([]domain.Task, error)
	UpdateTask(ctx context.Context, id, actorID uint64, in domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, id, actorID uint64) (domain.Task, error)
}
