package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
)

type schedulerServiceMock struct {
	mock.Mock
}

func (m *schedulerServiceMock) GenerateTasks(ctx context.Context, in ports.GenerateTasksInput) (ports.GenerateTasksResult, error) {
	args := m.Called(ctx, in)

	var result ports.GenerateTasksResult
	if value := args.Get(0); value != nil {
		result = value.(ports.GenerateTasksResult)
	}
	return result, args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListToday(ctx context.Context, userID string) ([]domain.Task, error) {
	args := m.Called(ctx, userID)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) Complete(ctx context.Context, userID, taskID string, locale domain.Locale) error {
	args := m.Called(ctx, userID, taskID, locale)
	return args.Error(0)
}

func (m *taskServiceMock) Postpone(ctx context.Context, userID, taskID string) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

type plantServiceMock struct {
	mock.Mock
}

func (m *plantServiceMock) Create(ctx context.Context, in domain.CreatePlantInput) (domain.Plant, error) {
	args := m.Called(ctx, in)

	var plant domain.Plant
	if value := args.Get(0); value != nil {
		plant = value.(domain.Plant)
	}
	return plant, args.Error(1)
}

func (m *plantServiceMock) List(ctx context.Context, userID string) ([]domain.Plant, error) {
	args := m.Called(ctx, userID)

	var plants []domain.Plant
	if value := args.Get(0); value != nil {
		plants = value.([]domain.Plant)
	}
	return plants, args.Error(1)
}

func (m *plantServiceMock) Delete(ctx context.Context, userID, plantID string) error {
	args := m.Called(ctx, userID, plantID)
	return args.Error(0)
}

func (m *plantServiceMock) EstimateWateringFreq(ctx context.Context, name, species string) (int, error) {
	args := m.Called(ctx, name, species)
	return args.Int(0), args.Error(1)
}

type reportServiceMock struct {
	mock.Mock
}

func (m *reportServiceMock) Rows(ctx context.Context, q ports.ReportQuery) ([]domain.ReportRow, error) {
	args := m.Called(ctx, q)

	var rows []domain.ReportRow
	if value := args.Get(0); value != nil {
		rows = value.([]domain.ReportRow)
	}
	return rows, args.Error(1)
}

type weatherServiceMock struct {
	mock.Mock
}

func (m *weatherServiceMock) Advice(ctx context.Context, locale domain.Locale, loc domain.UserLocation) (ports.WeatherAdvice, error) {
	args := m.Called(ctx, locale, loc)

	var advice ports.WeatherAdvice
	if value := args.Get(0); value != nil {
		advice = value.(ports.WeatherAdvice)
	}
	return advice, args.Error(1)
}
