package service

import (
	"context"

	"github.com/ardipermana59/hbus/internal/core/domain"
	"github.com/ardipermana59/hbus/internal/core/ports"
)

type TaskLogService struct {
	logs ports.TaskLogRepository
}

var _ ports.TaskLogService = (*TaskLogService)(nil)

func NewTaskLogService(logs ports.TaskLogRepository) *TaskLogService {
	return &TaskLogService{logs: logs}
}

func (s *TaskLogService) ListByTask(ctx context.Context, taskID uint64) ([]domain.TaskLogEntry, error) {
	return s.logs.ListByTask(ctx, taskID)
}

func (s *TaskLogService) ListAll(ctx context.Context, filters domain.LogFilters) ([]domain.TaskLogEntry, error) {
	return s.logs.ListAll(ctx, filters)
}
