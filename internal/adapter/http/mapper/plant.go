package mapper

import (
	"time"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/dto"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
)

func ToPlantItems(plants []domain.Plant) []dto.PlantItem {
	items := make([]dto.PlantItem, 0, len(plants))
	for _, plant := range plants {
		items = append(items, ToPlantItem(plant))
	}
	return items
}

func ToPlantItem(plant domain.Plant) dto.PlantItem {
	item := dto.PlantItem{
		ID:           plant.ID,
		Name:         plant.Name,
		WateringFreq: plant.WateringFreq,
		CreatedAt:    plant.CreatedAt.Format(time.RFC3339),
	}

	if plant.Species != nil {
		value := *plant.Species
		item.Species = &value
	}
	if plant.LastWatered != nil {
		value := plant.LastWatered.Format(time.RFC3339)
		item.LastWatered = &value
	}
	if plant.Area != nil {
		value := string(*plant.Area)
		item.Area = &value
	}
	if plant.ImageURL != nil {
		value := *plant.ImageURL
		item.ImageURL = &value
	}

	return item
}
