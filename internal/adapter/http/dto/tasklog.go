package dto

type TaskLogItem struct {
	ID        uint64  `json:"id"`
	TaskID    uint64  `json:"task_id"`
	UserID    uint64  `json:"user_id"`
	Action    string  `json:"action"`
	Note      *string `json:"note,omitempty"`
	UserName  *string `json:"user_name,omitempty"`
	TaskTitle *string `json:"task_title,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type ListLogsQuery struct {
	TaskID *uint64 `form:"task_id" binding:"omitempty,gt=0"`
	UserID *uint64 `form:"user_id" binding:"omitempty,gt=0"`
	Limit  *int    `form:"limit" binding:"omitempty,gte=1,lte=100"`
}
