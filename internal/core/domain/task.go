package domain

import "time"

type TaskStatus string

// Status literals are stored and exposed by the API exactly as written.
const (
	TaskStatusNotStarted TaskStatus = "Belum Dimulai"
	TaskStatusInProgress TaskStatus = "Sedang Dikerjakan"
	TaskStatusCompleted  TaskStatus = "Selesai"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusNotStarted, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

type Task struct {
	ID             uint64
	Title          string
	Description    *string
	Status         TaskStatus
	AssignedTo     *uint64
	AssignedToName *string
	CreatedBy      uint64
	CreatedByName  *string
	StartDate      *time.Time
	EndDate        *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
	AssignedTo  *uint64
	CreatedBy   uint64
	Status      TaskStatus
	StartDate   *time.Time
	EndDate     *time.Time
}

// UpdateTaskInput carries a partial update: nil fields keep the stored value.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	AssignedTo  *uint64
	Status      *TaskStatus
	StartDate   *time.Time
	EndDate     *time.Time
}

type TaskFilters struct {
	Status     *TaskStatus
	AssignedTo *uint64
}

// ApplyUpdate merges a partial update into the task. Every non-nil field of the
// input overwrites the stored value, everything else is retained unchanged.
func (t Task) ApplyUpdate(in UpdateTaskInput) Task {
	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = in.Description
	}
	if in.AssignedTo != nil {
		t.AssignedTo = in.AssignedTo
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
	if in.StartDate != nil {
		t.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		t.EndDate = in.EndDate
	}
	return t
}
