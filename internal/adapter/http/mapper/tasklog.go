package mapper

import (
	"time"

	"github.com/ardipermana59/hbus/internal/adapter/http/dto"
	"github.com/ardipermana59/hbus/internal/core/domain"
)

func ToTaskLogItems(entries []domain.TaskLogEntry) []dto.TaskLogItem {
	items := make([]dto.TaskLogItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, ToTaskLogItem(entry))
	}
	return items
}

func ToTaskLogItem(entry domain.TaskLogEntry) dto.TaskLogItem {
	item := dto.TaskLogItem{
		ID:        entry.ID,
		TaskID:    entry.TaskID,
		UserID:    entry.UserID,
		Action:    entry.Action,
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
	}

	if entry.Note != nil {
		value := *entry.Note
		item.Note = &value
	}
	if entry.UserName != nil {
		value := *entry.UserName
		item.UserName = &value
	}
	if entry.TaskTitle != nil {
		value := *entry.TaskTitle
		item.TaskTitle = &value
	}

	return item
}
