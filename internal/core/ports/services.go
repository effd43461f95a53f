package ports

import (
	"context"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
)

type GenerateTasksInput struct {
	UserID      string
	Locale      domain.Locale
	Location    *domain.UserLocation
	HorizonDays int
	ResetAll    bool
}

type GenerateTasksResult struct {
	Inserted int
	Tasks    []domain.Task
}

type SchedulerService interface {
	GenerateTasks(ctx context.Context, in GenerateTasksInput) (GenerateTasksResult, error)
}

type TaskService interface {
	ListToday(ctx context.Context, userID string) ([]domain.Task, error)
	Complete(ctx context.Context, userID, taskID string, locale domain.Locale) error
	Postpone(ctx context.Context, userID, taskID string) error
}

type PlantService interface {
	Create(ctx context.Context, in domain.CreatePlantInput) (domain.Plant, error)
	List(ctx context.Context, userID string) ([]domain.Plant, error)
	Delete(ctx context.Context, userID, plantID string) error
	EstimateWateringFreq(ctx context.Context, name, species string) (int, error)
}

type ReportQuery struct {
	UserID    string
	Locale    domain.Locale
	RangeDays int
	Source    domain.ReportSource
}

type ReportService interface {
	Rows(ctx context.Context, q ReportQuery) ([]domain.ReportRow, error)
}

type WeatherAdvice struct {
	Note    *string
	Advice  *domain.WateringAdvice
	Summary *domain.WeatherSummary
}

type WeatherService interface {
	Advice(ctx context.Context, locale domain.Locale, loc domain.UserLocation) (WeatherAdvice, error)
}

type SuggestionService interface {
	Suggestions(ctx context.Context, userID string, locale domain.Locale) ([]domain.Suggestion, error)
}

type CalendarView struct {
	Zone  domain.Zone
	Crops map[string]domain.CropWindow
}

type CalendarService interface {
	ZoneCalendar(locale domain.Locale, district, municipality string) CalendarView
}
