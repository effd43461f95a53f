package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
)

type plantRepositoryMock struct {
	mock.Mock
}

func (m *plantRepositoryMock) Create(ctx context.Context, plant domain.Plant) error {
	return m.Called(ctx, plant).Error(0)
}

func (m *plantRepositoryMock) ListByUser(ctx context.Context, userID string) ([]domain.Plant, error) {
	args := m.Called(ctx, userID)
	var plants []domain.Plant
	if value := args.Get(0); value != nil {
		plants = value.([]domain.Plant)
	}
	return plants, args.Error(1)
}

func (m *plantRepositoryMock) UpdateLastWatered(ctx context.Context, userID, plantID string, when time.Time) error {
	return m.Called(ctx, userID, plantID, when).Error(0)
}

func (m *plantRepositoryMock) UpdateLastWateredByName(ctx context.Context, userID, name string, when time.Time) error {
	return m.Called(ctx, userID, name, when).Error(0)
}

func (m *plantRepositoryMock) Delete(ctx context.Context, userID, plantID string) error {
	return m.Called(ctx, userID, plantID).Error(0)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, userID, taskID string) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)
	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskRepositoryMock) ListPending(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListForDay(ctx context.Context, userID string, day time.Time) ([]domain.Task, error) {
	args := m.Called(ctx, userID, day)
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) ListDueInRange(ctx context.Context, userID string, from, to time.Time) ([]domain.Task, error) {
	args := m.Called(ctx, userID, from, to)
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) InsertBatch(ctx context.Context, userID string, candidates []domain.TaskCandidate) ([]domain.Task, error) {
	args := m.Called(ctx, userID, candidates)
	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) MarkDone(ctx context.Context, userID, taskID string, at time.Time) error {
	return m.Called(ctx, userID, taskID, at).Error(0)
}

func (m *taskRepositoryMock) Postpone(ctx context.Context, userID, taskID string, newAnchor time.Time) error {
	return m.Called(ctx, userID, taskID, newAnchor).Error(0)
}

func (m *taskRepositoryMock) DeleteAllForUser(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

type weatherProviderMock struct {
	mock.Mock
}

func (m *weatherProviderMock) SummaryByLocation(ctx context.Context, loc domain.UserLocation) (*domain.WeatherSummary, error) {
	args := m.Called(ctx, loc)
	var summary *domain.WeatherSummary
	if value := args.Get(0); value != nil {
		summary = value.(*domain.WeatherSummary)
	}
	return summary, args.Error(1)
}

type generativeProviderMock struct {
	mock.Mock
}

func (m *generativeProviderMock) SuggestTasks(ctx context.Context, plants []domain.Plant, locale domain.Locale) ([]domain.TaskSuggestion, error) {
	args := m.Called(ctx, plants, locale)
	var suggestions []domain.TaskSuggestion
	if value := args.Get(0); value != nil {
		suggestions = value.([]domain.TaskSuggestion)
	}
	return suggestions, args.Error(1)
}

func (m *generativeProviderMock) EstimateWateringFreq(ctx context.Context, name, species string) (int, error) {
	args := m.Called(ctx, name, species)
	return args.Int(0), args.Error(1)
}

// insertedFromCandidates mirrors what the real repository returns: one task
// per candidate with ids and anchor dates filled in.
func insertedFromCandidates(userID string, candidates []domain.TaskCandidate, now time.Time) []domain.Task {
	tasks := make([]domain.Task, 0, len(candidates))
	for i, c := range candidates {
		tasks = append(tasks, domain.Task{
			ID:          string(rune('a' + i)),
			UserID:      userID,
			Title:       c.Title,
			Description: c.Description,
			ImageURL:    c.ImageURL,
			PlantID:     c.PlantID,
			DueDate:     c.DueDate,
			CreatedAt:   now,
			AnchorDate:  now,
		})
	}
	return tasks
}
