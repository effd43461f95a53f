package domain

import "time"

type PlantArea string

const (
	PlantAreaHorta PlantArea = "horta"
	PlantAreaPomar PlantArea = "pomar"
)

const (
	// DefaultWateringFreq is applied when a cadence is absent or unusable.
	DefaultWateringFreq = 3
	MinWateringFreq     = 1
	MaxWateringFreq     = 60
)

type Plant struct {
	ID           string
	UserID       string
	Name         string
	Species      *string
	WateringFreq int
	LastWatered  *time.Time
	Area         *PlantArea
	ImageURL     *string
	CreatedAt    time.Time
}

type CreatePlantInput struct {
	UserID       string
	Name         string
	Species      *string
	WateringFreq *int
	Area         *PlantArea
	ImageURL     *string
}

// NormalizeWateringFreq clamps a cadence to [MinWateringFreq, MaxWateringFreq].
// Absent or non-positive values fall back to the default rather than erroring:
// the planner favors availability over strict validation.
func NormalizeWateringFreq(freq *int) int {
	if freq == nil || *freq <= 0 {
		return DefaultWateringFreq
	}
	if *freq > MaxWateringFreq {
		return MaxWateringFreq
	}
	return *freq
}

// ClampWateringFreq bounds an already-adjusted cadence (e.g. after applying a
// weather delta) without falling back to the default.
func ClampWateringFreq(freq int) int {
	if freq < MinWateringFreq {
		return MinWateringFreq
	}
	if freq > MaxWateringFreq {
		return MaxWateringFreq
	}
	return freq
}
