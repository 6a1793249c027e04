package service

import (
	"context"
	"fmt"

	"github.com/ardipermana59/hbus/internal/core/domain"
	"github.com/ardipermana59/hbus/internal/core/ports"
)

// TaskService pairs every task mutation with exactly one audit-log entry.
// Both writes run inside a single transaction, so a task can never be
// mutated without its trail entry or vice versa.
type TaskService struct {
	tasks ports.TaskRepository
	logs  ports.TaskLogRepository
	tx    ports.Transactor
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(tasks ports.TaskRepository, logs ports.TaskLogRepository, tx ports.Transactor) *TaskService {
	return &TaskService{tasks: tasks, logs: logs, tx: tx}
}

const (
	actionCreated = "dibuat"
	actionUpdated = "diupdate"
	actionDeleted = "dihapus"
)

func taskAction(title, verb string) string {
	return fmt.Sprintf("Task \"%s\" %s", title, verb)
}

func (s *TaskService) CreateTask(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error) {
	if in.Status == "" {
		in.Status = domain.TaskStatusNotStarted
	}

	var task domain.Task
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err := s.tasks.Create(ctx, in)
		if err != nil {
			return err
		}

		if _, err := s.logs.Append(ctx, domain.AppendLogInput{
			TaskID: created.ID,
			UserID: in.CreatedBy,
			Action: taskAction(created.Title, actionCreated),
		}); err != nil {
			return err
		}

		task = created
		return nil
	})
	return task, err
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, []domain.TaskLogEntry, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return domain.Task{}, nil, err
	}

	logs, err := s.logs.ListByTask(ctx, id)
	if err != nil {
		return domain.Task{}, nil, err
	}
	return task, logs, nil
}

func (s *TaskService) ListTasks(ctx context.Context, filters domain.TaskFilters) ([]domain.Task, error) {
	return s.tasks.List(ctx, filters)
}

func (s *TaskService) UpdateTask(ctx context.Context, id, actorID uint64, in domain.UpdateTaskInput) (domain.Task, error) {
	var task domain.Task
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.tasks.GetByID(ctx, id)
		if err != nil {
			return err
		}

		updated, err := s.tasks.Update(ctx, existing.ApplyUpdate(in))
		if err != nil {
			return err
		}

		if _, err := s.logs.Append(ctx, domain.AppendLogInput{
			TaskID: updated.ID,
			UserID: actorID,
			Action: taskAction(updated.Title, actionUpdated),
		}); err != nil {
			return err
		}

		task = updated
		return nil
	})
	return task, err
}

// DeleteTask records the delete event before removing the row; the entry keeps
// its task_id pointing at the then-deleted task.
func (s *TaskService) DeleteTask(ctx context.Context, id, actorID uint64) (domain.Task, error) {
	var task domain.Task
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.tasks.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if _, err := s.logs.Append(ctx, domain.AppendLogInput{
			TaskID: existing.ID,
			UserID: actorID,
			Action: taskAction(existing.Title, actionDeleted),
		}); err != nil {
			return err
		}

		if err := s.tasks.Delete(ctx, id); err != nil {
			return err
		}

		task = existing
		return nil
	})
	return task, err
}
