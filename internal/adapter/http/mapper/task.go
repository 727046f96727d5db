package mapper

import (
	"time"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
)

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
		CreatedAt: task.CreatedAt.Format(time.RFC3339),
		UpdatedAt: task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	return item
}

func ToPagination(info domain.PageInfo) dto.Pagination {
	return dto.Pagination{
		Total:   info.Total,
		Limit:   info.Limit,
		Offset:  info.Offset,
		HasMore: info.HasMore,
	}
}
