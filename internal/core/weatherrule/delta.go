// Package weatherrule turns a short-term weather summary into a watering
// cadence adjustment. All functions are pure.
package weatherrule

import "github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"

const (
	// The delta can loosen the cadence more than it can tighten it: better a
	// day late than a dead plant.
	maxDelta = 4
	minDelta = -3

	skipRainThresholdMM = 5
)

// ComputeWateringDelta maps recent rain, forecast rain, sunshine and heat to
// a signed day offset in [-3, 4] plus a skip-today flag. A nil summary means
// no adjustment.
func ComputeWateringDelta(summary *domain.WeatherSummary) domain.WateringAdvice {
	if summary == nil {
		return domain.WateringAdvice{}
	}

	delta := 0

	// Rain-based loosening, first matching tier only.
	switch {
	case summary.RainLast3Days >= 15:
		delta += 3
	case summary.RainLast3Days >= 10:
		delta += 2
	case summary.RainLast3Days >= 5:
		delta += 1
	}

	if summary.ForecastRainNext3Days >= 10 {
		delta++
	}

	// Heat and sun tighten, capped at 3 days.
	tighten := 0
	switch {
	case summary.AvgSunshineHours >= 12:
		tighten += 2
	case summary.AvgSunshineHours >= 10:
		tighten++
	}
	switch {
	case summary.AvgMaxTemp >= 32:
		tighten += 2
	case summary.AvgMaxTemp >= 28:
		tighten++
	}
	if tighten > 3 {
		tighten = 3
	}
	delta -= tighten

	if delta > maxDelta {
		delta = maxDelta
	}
	if delta < minDelta {
		delta = minDelta
	}

	return domain.WateringAdvice{
		Delta:     delta,
		SkipToday: summary.RainYesterday >= skipRainThresholdMM,
	}
}

// AdviceNote renders the short human note shown alongside the advice: rain
// enough to skip today, or heat bringing waterings forward.
func AdviceNote(locale domain.Locale, advice domain.WateringAdvice) string {
	if advice.SkipToday {
		if locale == domain.LocaleEN {
			return "It's been raining in your area — no need to water today. Check back tomorrow; if needed, you'll see it in tasks."
		}
		return "Tem chovido na tua zona, não precisamos de regar hoje. Volta amanhã e se for preciso terás nas tarefas"
	}
	if advice.Delta < 0 {
		if locale == domain.LocaleEN {
			return "It's very hot — we will bring watering forward."
		}
		return "Está muito quente, temos de antecipar as regas"
	}
	return ""
}
