package dto

type SuggestionItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Action      string  `json:"action"`
	PlantID     *string `json:"plant_id,omitempty"`
}

type CropWindowPayload struct {
	Sow        []int `json:"sow"`
	Transplant []int `json:"transplant"`
	Harvest    []int `json:"harvest"`
}

type CalendarResponse struct {
	Zone        int                          `json:"zone"`
	Description string                       `json:"description"`
	Notes       string                       `json:"notes,omitempty"`
	Crops       map[string]CropWindowPayload `json:"crops"`
}

type ReportRowItem struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type ReportResponse struct {
	Rows      []ReportRowItem `json:"rows"`
	RangeDays int             `json:"rangeDays"`
}
