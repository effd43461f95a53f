package domain

import "time"

// ActionKey is the canonical category parsed from a task title. It drives the
// same-day deduplication key and the completion side-effects.
type ActionKey string

const (
	ActionWater      ActionKey = "water"
	ActionPrune      ActionKey = "prune"
	ActionFertilize  ActionKey = "fertilize"
	ActionInspect    ActionKey = "inspect"
	ActionHarvest    ActionKey = "harvest"
	ActionSow        ActionKey = "sow"
	ActionTransplant ActionKey = "transplant"
	ActionOther      ActionKey = "other"
)

type Task struct {
	ID          string
	UserID      string
	Title       string
	Description *string
	ImageURL    *string
	PlantID     *string
	DueDate     *time.Time
	Done        bool
	DoneAt      *time.Time
	CreatedAt   time.Time
	// AnchorDate is the mutable scheduling anchor: it starts equal to
	// CreatedAt and moves forward when a task is postponed. The daily task
	// window is keyed on it, so CreatedAt can stay immutable.
	AnchorDate time.Time
}

// TaskCandidate is a task the scheduler wants to create. Optional fields may
// be dropped by the repository when the backing schema does not carry them.
type TaskCandidate struct {
	Title       string
	Description *string
	ImageURL    *string
	PlantID     *string
	DueDate     *time.Time
}

// PostponeInterval is how far a postponed task moves into the future.
const PostponeInterval = 7 * 24 * time.Hour

// Day returns the calendar day a task belongs to: its due date when set,
// otherwise its scheduling anchor.
func (t Task) Day() time.Time {
	if t.DueDate != nil {
		return DateOnly(*t.DueDate)
	}
	return DateOnly(t.AnchorDate)
}

// DateOnly truncates a timestamp to its calendar date in the local zone.
func DateOnly(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}
