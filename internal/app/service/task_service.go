package service

import (
	"context"
	"time"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/matching"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
)

type TaskService struct {
	tasks  ports.TaskRepository
	plants ports.PlantRepository
	now    func() time.Time
}

func NewTaskService(tasks ports.TaskRepository, plants ports.PlantRepository) *TaskService {
	return &TaskService{tasks: tasks, plants: plants, now: time.Now}
}

var _ ports.TaskService = (*TaskService)(nil)

func (s *TaskService) ListToday(ctx context.Context, userID string) ([]domain.Task, error) {
	all, err := s.tasks.ListForDay(ctx, userID, domain.DateOnly(s.now()))
	if err != nil {
		return nil, err
	}
	tasks := make([]domain.Task, 0, len(all))
	for _, t := range all {
		if !t.Done {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// Complete marks a task done. When the title reads as a watering task, the
// linked plant's last-watered timestamp moves to now first; unlinked watering
// tasks fall back to a case-insensitive name match parsed from the title.
func (s *TaskService) Complete(ctx context.Context, userID, taskID string, locale domain.Locale) error {
	task, err := s.tasks.GetByID(ctx, userID, taskID)
	if err != nil {
		return err
	}

	now := s.now()
	if matching.IsWateringTask(task.Title, locale) {
		if task.PlantID != nil {
			if err := s.plants.UpdateLastWatered(ctx, userID, *task.PlantID, now); err != nil {
				return err
			}
		} else if name := matching.PlantNameFromTitle(task.Title); name != "" {
			if err := s.plants.UpdateLastWateredByName(ctx, userID, name, now); err != nil {
				return err
			}
		}
	}

	return s.tasks.MarkDone(ctx, userID, taskID, now)
}

// Postpone moves the task's scheduling anchor forward exactly seven days and
// clears completion, regardless of prior state.
func (s *TaskService) Postpone(ctx context.Context, userID, taskID string) error {
	task, err := s.tasks.GetByID(ctx, userID, taskID)
	if err != nil {
		return err
	}
	return s.tasks.Postpone(ctx, userID, taskID, task.AnchorDate.Add(domain.PostponeInterval))
}
