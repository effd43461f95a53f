package dto

type WeatherAdviceRequest struct {
	Location LocationPayload `json:"location" binding:"required"`
}

type WeatherSummaryPayload struct {
	Latitude              float64 `json:"latitude"`
	Longitude             float64 `json:"longitude"`
	RainLast3Days         float64 `json:"rainLast3Days"`
	RainYesterday         float64 `json:"rainYesterday"`
	ForecastRainNext3Days float64 `json:"forecastRainNext3Days"`
	AvgSunshineHours      float64 `json:"avgSunshineHours"`
	AvgMaxTemp            float64 `json:"avgMaxTemp"`
	UpdatedAt             string  `json:"updatedAt"`
}

type WeatherAdviceResponse struct {
	Delta     int                    `json:"delta"`
	SkipToday bool                   `json:"skipToday"`
	Note      *string                `json:"note,omitempty"`
	Summary   *WeatherSummaryPayload `json:"summary,omitempty"`
}
