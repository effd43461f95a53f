package domain

import "time"

type ReportFormat string

const (
	ReportFormatJSON ReportFormat = "json"
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatXLSX ReportFormat = "xlsx"
	ReportFormatPDF  ReportFormat = "pdf"
)

type ReportSource string

const (
	// ReportSourceDB limits the report to persisted tasks.
	ReportSourceDB ReportSource = "db"
	// ReportSourceMixed adds synthesized future watering rows extrapolated
	// from each plant's cadence.
	ReportSourceMixed ReportSource = "mixed"
)

const (
	MinReportRangeDays     = 1
	MaxReportRangeDays     = 62
	DefaultReportRangeDays = 30
)

// ReportRow is one exported line of the care plan.
type ReportRow struct {
	Date        time.Time
	Title       string
	Description string
}

// ClampReportRange bounds a requested range width, defaulting when invalid.
func ClampReportRange(days int) int {
	if days <= 0 {
		return DefaultReportRangeDays
	}
	if days < MinReportRangeDays {
		return MinReportRangeDays
	}
	if days > MaxReportRangeDays {
		return MaxReportRangeDays
	}
	return days
}

// TaskSuggestion is untrusted free text returned by the generative-text
// provider; it only becomes a task after the matcher pass.
type TaskSuggestion struct {
	Title       string
	Description string
}

// Suggestion is a contextual dashboard hint.
type Suggestion struct {
	ID          string
	Title       string
	Description string
	Action      string
	PlantID     *string
}
