package dto

type PlantItem struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Species      *string `json:"species,omitempty"`
	WateringFreq int     `json:"watering_freq"`
	LastWatered  *string `json:"last_watered,omitempty"`
	Area         *string `json:"area,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

type CreatePlantRequest struct {
	Name         string  `json:"name" binding:"required,max=255"`
	Species      *string `json:"species" binding:"omitempty,max=255"`
	WateringFreq *int    `json:"watering_freq" binding:"omitempty,gte=0,lte=365"`
	Area         *string `json:"area" binding:"omitempty,oneof=horta pomar"`
	ImageURL     *string `json:"image_url" binding:"omitempty,max=2048"`
}

type EstimateFreqRequest struct {
	Name    string  `json:"name" binding:"required,max=255"`
	Species *string `json:"species" binding:"omitempty,max=255"`
}

type EstimateFreqResponse struct {
	WateringFreq int `json:"watering_freq"`
}
