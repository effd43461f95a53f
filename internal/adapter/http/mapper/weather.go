package mapper

import (
	"time"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/dto"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
)

func ToWeatherAdviceResponse(advice ports.WeatherAdvice) dto.WeatherAdviceResponse {
	resp := dto.WeatherAdviceResponse{}

	if advice.Advice != nil {
		resp.Delta = advice.Advice.Delta
		resp.SkipToday = advice.Advice.SkipToday
	}
	if advice.Note != nil {
		value := *advice.Note
		resp.Note = &value
	}
	if advice.Summary != nil {
		resp.Summary = &dto.WeatherSummaryPayload{
			Latitude:              advice.Summary.Latitude,
			Longitude:             advice.Summary.Longitude,
			RainLast3Days:         advice.Summary.RainLast3Days,
			RainYesterday:         advice.Summary.RainYesterday,
			ForecastRainNext3Days: advice.Summary.ForecastRainNext3Days,
			AvgSunshineHours:      advice.Summary.AvgSunshineHours,
			AvgMaxTemp:            advice.Summary.AvgMaxTemp,
			UpdatedAt:             advice.Summary.UpdatedAt.Format(time.RFC3339),
		}
	}

	return resp
}
