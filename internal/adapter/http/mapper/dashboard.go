package mapper

import (
	"github.com/ardipermana59/hbus/internal/adapter/http/dto"
	"github.com/ardipermana59/hbus/internal/core/domain"
)

func ToDashboardData(dashboard domain.Dashboard) dto.DashboardData {
	data := dto.DashboardData{
		TasksByStatus:         make([]dto.StatusCountItem, 0, len(dashboard.TasksByStatus)),
		TasksByUser:           make([]dto.UserTaskCountItem, 0, len(dashboard.TasksByUser)),
		RecentInProgressTasks: ToTaskItems(dashboard.RecentInProgress),
	}

	for _, stat := range dashboard.TasksByStatus {
		data.TasksByStatus = append(data.TasksByStatus, dto.StatusCountItem{
			Status: string(stat.Status),
			Count:  stat.Count,
		})
	}
	for _, stat := range dashboard.TasksByUser {
		data.TasksByUser = append(data.TasksByUser, dto.UserTaskCountItem{
			ID:        stat.UserID,
			Name:      stat.Name,
			TaskCount: stat.TaskCount,
		})
	}
	if dashboard.MostActiveUser != nil {
		data.MostActiveUser = &dto.MostActiveUserItem{
			ID:       dashboard.MostActiveUser.UserID,
			Name:     dashboard.MostActiveUser.Name,
			LogCount: dashboard.MostActiveUser.LogCount,
		}
	}

	return data
}
