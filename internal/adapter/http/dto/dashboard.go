package dto

type StatusCountItem struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type UserTaskCountItem struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	TaskCount int    `json:"task_count"`
}

type MostActiveUserItem struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	LogCount int    `json:"log_count"`
}

type DashboardData struct {
	TasksByStatus         []StatusCountItem   `json:"tasks_by_status"`
	TasksByUser           []UserTaskCountItem `json:"tasks_by_user"`
	MostActiveUser        *MostActiveUserItem `json:"most_active_user"`
	RecentInProgressTasks []TaskItem          `json:"recent_in_progress_tasks"`
}
