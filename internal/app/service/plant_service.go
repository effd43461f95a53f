package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
)

type PlantService struct {
	plants ports.PlantRepository
	genai  ports.GenerativeProvider
	now    func() time.Time
}

func NewPlantService(plants ports.PlantRepository, genai ports.GenerativeProvider) *PlantService {
	return &PlantService{plants: plants, genai: genai, now: time.Now}
}

var _ ports.PlantService = (*PlantService)(nil)

func (s *PlantService) Create(ctx context.Context, in domain.CreatePlantInput) (domain.Plant, error) {
	plant := domain.Plant{
		ID:           uuid.NewString(),
		UserID:       in.UserID,
		Name:         in.Name,
		Species:      in.Species,
		WateringFreq: domain.NormalizeWateringFreq(in.WateringFreq),
		Area:         in.Area,
		ImageURL:     in.ImageURL,
		CreatedAt:    s.now(),
	}
	if err := s.plants.Create(ctx, plant); err != nil {
		return domain.Plant{}, err
	}
	return plant, nil
}

func (s *PlantService) List(ctx context.Context, userID string) ([]domain.Plant, error) {
	return s.plants.ListByUser(ctx, userID)
}

// Delete removes a plant. Tasks already generated for it keep their link;
// the schema clears it on delete and completion falls back to name matching.
func (s *PlantService) Delete(ctx context.Context, userID, plantID string) error {
	return s.plants.Delete(ctx, userID, plantID)
}

// EstimateWateringFreq asks the generative provider for a cadence guess.
// Provider trouble is not an error: the default cadence is a fine answer.
func (s *PlantService) EstimateWateringFreq(ctx context.Context, name, species string) (int, error) {
	if s.genai == nil {
		return domain.DefaultWateringFreq, nil
	}
	freq, err := s.genai.EstimateWateringFreq(ctx, name, species)
	if err != nil {
		zap.L().Warn("watering estimate unavailable", zap.String("plant", name), zap.Error(err))
		return domain.DefaultWateringFreq, nil
	}
	return domain.NormalizeWateringFreq(&freq), nil
}
