package ports

import (
	"context"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
)

// WeatherProvider resolves a free-form locality to a short-term weather
// summary. A nil summary with a nil error means "no data"; callers treat both
// nil and error as "no adjustment".
type WeatherProvider interface {
	SummaryByLocation(ctx context.Context, loc domain.UserLocation) (*domain.WeatherSummary, error)
}

// GenerativeProvider is the external text model. Its output is untrusted and
// capped; any failure means zero suggestions, never a fatal error.
type GenerativeProvider interface {
	SuggestTasks(ctx context.Context, plants []domain.Plant, locale domain.Locale) ([]domain.TaskSuggestion, error)
	EstimateWateringFreq(ctx context.Context, name, species string) (int, error)
}
