package service

import (
	"context"

	"github.com/ardipermana59/hbus/internal/core/domain"
	"github.com/ardipermana59/hbus/internal/core/ports"
)

const recentInProgressLimit = 10

// DashboardService recomputes every aggregate from live data on each call.
// There is no partial-result mode: any failing sub-query fails the dashboard.
type DashboardService struct {
	tasks ports.TaskRepository
	logs  ports.TaskLogRepository
}

var _ ports.DashboardService = (*DashboardService)(nil)

func NewDashboardService(tasks ports.TaskRepository, logs ports.TaskLogRepository) *DashboardService {
	return &DashboardService{tasks: tasks, logs: logs}
}

func (s *DashboardService) Dashboard(ctx context.Context) (domain.Dashboard, error) {
	byStatus, err := s.tasks.StatsByStatus(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}

	byUser, err := s.tasks.StatsByUser(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}

	mostActive, err := s.logs.MostActiveUser(ctx)
	if err != nil {
		return domain.Dashboard{}, err
	}

	recent, err := s.tasks.RecentInProgress(ctx, recentInProgressLimit)
	if err != nil {
		return domain.Dashboard{}, err
	}

	return domain.Dashboard{
		TasksByStatus:    byStatus,
		TasksByUser:      byUser,
		MostActiveUser:   mostActive,
		RecentInProgress: recent,
	}, nil
}
