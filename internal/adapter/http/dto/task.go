package dto

type TaskItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	PlantID     *string `json:"plant_id,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Done        bool    `json:"done"`
	DoneAt      *string `json:"done_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
	AnchorDate  string  `json:"anchor_date"`
}

type LocationPayload struct {
	Distrito  string `json:"distrito" binding:"omitempty,max=100"`
	Municipio string `json:"municipio" binding:"omitempty,max=100"`
}

type GenerateTasksRequest struct {
	Locale      *string          `json:"locale" binding:"omitempty,max=10"`
	Location    *LocationPayload `json:"location"`
	ResetAll    bool             `json:"resetAll"`
	HorizonDays *int             `json:"horizonDays" binding:"omitempty,gte=0,lte=62"`
}

type GenerateTasksResponse struct {
	Inserted int        `json:"inserted"`
	Tasks    []TaskItem `json:"tasks"`
}
