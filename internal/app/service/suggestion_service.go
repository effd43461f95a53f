package service

import (
	"context"
	"strings"
	"time"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/matching"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
)

// maxSuggestions caps the dashboard hint list.
const maxSuggestions = 3

// SuggestionService derives contextual hints from the plant inventory and
// the calendar month. Fully rule-based, no external calls.
type SuggestionService struct {
	plants ports.PlantRepository
	now    func() time.Time
}

func NewSuggestionService(plants ports.PlantRepository) *SuggestionService {
	return &SuggestionService{plants: plants, now: time.Now}
}

var _ ports.SuggestionService = (*SuggestionService)(nil)

func (s *SuggestionService) Suggestions(ctx context.Context, userID string, locale domain.Locale) ([]domain.Suggestion, error) {
	plants, err := s.plants.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	month := int(s.now().Month())
	anyNoImage := false
	anyHighFreq := false
	hasTomato := false
	for _, p := range plants {
		if p.ImageURL == nil {
			anyNoImage = true
		}
		if p.WateringFreq >= 4 {
			anyHighFreq = true
		}
		name := matching.Normalize(p.Name)
		if strings.Contains(name, "tomate") || strings.Contains(name, "tomato") {
			hasTomato = true
		}
	}

	en := locale == domain.LocaleEN
	var list []domain.Suggestion

	if anyNoImage {
		list = append(list, domain.Suggestion{
			ID:          "add-photos",
			Title:       pick(en, "Add photos to your plants", "Adicione fotos às suas plantas"),
			Description: pick(en, "Help you recognize them at a glance and get better tips.", "Ajuda a reconhecê-las num instante e melhora as dicas."),
			Action:      "open_garden",
		})
	}

	if month >= 5 && month <= 9 {
		list = append(list, domain.Suggestion{
			ID:          "mulch",
			Title:       pick(en, "Apply mulch", "Aplicar cobertura morta (mulch)"),
			Description: pick(en, "Mulch helps retain moisture and protect roots during heat.", "A cobertura morta ajuda a reter humidade e proteger as raízes no calor."),
			Action:      "create_task",
		})
	}

	if hasTomato {
		list = append(list, domain.Suggestion{
			ID:          "inspect-tomatoes",
			Title:       pick(en, "Inspect tomatoes: pests and diseases", "Inspecionar tomateiros: pragas e doenças"),
			Description: pick(en, "Look for aphids and fungal spots; remove affected leaves.", "Procure afídeos e manchas fúngicas; remova folhas afetadas."),
			Action:      "create_task",
		})
	}

	if anyHighFreq {
		list = append(list, domain.Suggestion{
			ID:          "night-watering",
			Title:       pick(en, "Water at night", "Regar à noite"),
			Description: pick(en, "Reduce evaporation and stress: schedule watering for the evening.", "Reduza evaporação e stress: agende a rega para o final do dia."),
			Action:      "create_task",
		})
	}

	if len(list) > maxSuggestions {
		list = list[:maxSuggestions]
	}
	return list, nil
}

func pick(en bool, english, portuguese string) string {
	if en {
		return english
	}
	return portuguese
}
