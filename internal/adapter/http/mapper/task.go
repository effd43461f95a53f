package mapper

import (
	"time"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/dto"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
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
		ID:         task.ID,
		Title:      task.Title,
		Done:       task.Done,
		CreatedAt:  task.CreatedAt.Format(time.RFC3339),
		AnchorDate: task.AnchorDate.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}
	if task.ImageURL != nil {
		value := *task.ImageURL
		item.ImageURL = &value
	}
	if task.PlantID != nil {
		value := *task.PlantID
		item.PlantID = &value
	}
	if task.DueDate != nil {
		value := task.DueDate.Format(time.DateOnly)
		item.DueDate = &value
	}
	if task.DoneAt != nil {
		value := task.DoneAt.Format(time.RFC3339)
		item.DoneAt = &value
	}

	return item
}
