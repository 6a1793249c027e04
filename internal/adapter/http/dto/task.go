package dto

type TaskItem struct {
	ID             uint64        `json:"id"`
	Title          string        `json:"title"`
	Description    *string       `json:"description,omitempty"`
	Status         string        `json:"status"`
	AssignedTo     *uint64       `json:"assigned_to,omitempty"`
	AssignedToName *string       `json:"assigned_to_name,omitempty"`
	CreatedBy      uint64        `json:"created_by"`
	CreatedByName  *string       `json:"created_by_name,omitempty"`
	StartDate      *string       `json:"start_date,omitempty"`
	EndDate        *string       `json:"end_date,omitempty"`
	CreatedAt      string        `json:"created_at"`
	UpdatedAt      string        `json:"updated_at"`
	Logs           []TaskLogItem `json:"logs,omitempty"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=200"`
	Description *string `json:"description"`
	AssignedTo  *uint64 `json:"assigned_to" binding:"omitempty,gt=0"`
	Status      *string `json:"status" binding:"omitempty,oneof='Belum Dimulai' 'Sedang Dikerjakan' 'Selesai'"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=3,max=200"`
	Description *string `json:"description"`
	AssignedTo  *uint64 `json:"assigned_to" binding:"omitempty,gt=0"`
	Status      *string `json:"status" binding:"omitempty,oneof='Belum Dimulai' 'Sedang Dikerjakan' 'Selesai'"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

type ListTasksQuery struct {
	Status     *string `form:"status" binding:"omitempty,oneof='Belum Dimulai' 'Sedang Dikerjakan' 'Selesai'"`
	AssignedTo *uint64 `form:"assigned_to" binding:"omitempty,gt=0"`
}
