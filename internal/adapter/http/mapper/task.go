package mapper

import (
	"time"

	"github.com/ardipermana59/hbus/internal/adapter/http/dto"
	"github.com/ardipermana59/hbus/internal/core/domain"
)

const dateLayout = "2006-01-02"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:        task.ID,
		Title:     task.Title,
		Status:    string(task.Status),
		CreatedBy: task.CreatedBy,
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}
	if task.AssignedTo != nil {
		value := *task.AssignedTo
		item.AssignedTo = &value
	}
	if task.AssignedToName != nil {
		value := *task.AssignedToName
		item.AssignedToName = &value
	}
	if task.CreatedByName != nil {
		value := *task.CreatedByName
		item.CreatedByName = &value
	}
	if task.StartDate != nil {
		value := task.StartDate.Format(dateLayout)
		item.StartDate = &value
	}
	if task.EndDate != nil {
		value := task.EndDate.Format(dateLayout)
		item.EndDate = &value
	}

	return item
}

// ToTaskDetail attaches the task's audit trail to the single-task view.
func ToTaskDetail(task domain.Task, logs []domain.TaskLogEntry) dto.TaskItem {
	item := ToTaskItem(task)
	item.Logs = ToTaskLogItems(logs)
	return item
}
