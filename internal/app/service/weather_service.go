package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/weatherrule"
)

type WeatherService struct {
	provider ports.WeatherProvider
}

func NewWeatherService(provider ports.WeatherProvider) *WeatherService {
	return &WeatherService{provider: provider}
}

var _ ports.WeatherService = (*WeatherService)(nil)

// Advice resolves the locality to a weather summary and derives the watering
// advice and note. Missing location, provider failure or absent data all
// degrade to an empty advice, never an error to the caller.
func (s *WeatherService) Advice(ctx context.Context, locale domain.Locale, loc domain.UserLocation) (ports.WeatherAdvice, error) {
	if loc.Empty() || s.provider == nil {
		return ports.WeatherAdvice{}, nil
	}

	summary, err := s.provider.SummaryByLocation(ctx, loc)
	if err != nil {
		zap.L().Warn("weather summary unavailable",
			zap.String("district", loc.District),
			zap.String("municipality", loc.Municipality),
			zap.Error(err))
		return ports.WeatherAdvice{}, nil
	}
	if summary == nil {
		return ports.WeatherAdvice{}, nil
	}

	advice := weatherrule.ComputeWateringDelta(summary)
	note := weatherrule.AdviceNote(locale, advice)
	return ports.WeatherAdvice{
		Note:    &note,
		Advice:  &advice,
		Summary: summary,
	}, nil
}
