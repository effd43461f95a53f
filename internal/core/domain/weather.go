package domain

import "time"

// UserLocation is the free-form locality a user configured. Both fields are
// optional; district alone is enough for zone resolution.
type UserLocation struct {
	District     string
	Municipality string
}

func (l UserLocation) Empty() bool {
	return l.District == "" && l.Municipality == ""
}

// WeatherSummary condenses the provider's daily series into the few numbers
// the watering rules care about. It is computed per request, never persisted.
type WeatherSummary struct {
	Latitude             float64
	Longitude            float64
	RainLast3Days        float64 // mm
	RainYesterday        float64 // mm
	ForecastRainNext3Days float64 // mm
	AvgSunshineHours     float64 // hours/day over the last 3 days
	AvgMaxTemp           float64 // °C over the last 3 days
	UpdatedAt            time.Time
}

// WateringAdvice is the weather engine's output: a signed day offset for
// watering cadences and a flag to skip today's watering entirely.
type WateringAdvice struct {
	Delta     int
	SkipToday bool
}
