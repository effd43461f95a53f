package mapper

import (
	"time"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/adapter/http/dto"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
)

func ToSuggestionItems(suggestions []domain.Suggestion) []dto.SuggestionItem {
	items := make([]dto.SuggestionItem, 0, len(suggestions))
	for _, s := range suggestions {
		item := dto.SuggestionItem{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			Action:      s.Action,
		}
		if s.PlantID != nil {
			value := *s.PlantID
			item.PlantID = &value
		}
		items = append(items, item)
	}
	return items
}

func ToCalendarResponse(view ports.CalendarView) dto.CalendarResponse {
	crops := make(map[string]dto.CropWindowPayload, len(view.Crops))
	for crop, window := range view.Crops {
		crops[crop] = dto.CropWindowPayload{
			Sow:        monthsOf(window.Sow),
			Transplant: monthsOf(window.Transplant),
			Harvest:    monthsOf(window.Harvest),
		}
	}
	return dto.CalendarResponse{
		Zone:        int(view.Zone.ID),
		Description: view.Zone.Description,
		Notes:       view.Zone.Notes,
		Crops:       crops,
	}
}

func monthsOf(mask domain.MonthMask) []int {
	months := make([]int, 0, 12)
	for m := 1; m <= 12; m++ {
		if mask.Has(m) {
			months = append(months, m)
		}
	}
	return months
}

func ToReportRows(rows []domain.ReportRow) []dto.ReportRowItem {
	items := make([]dto.ReportRowItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.ReportRowItem{
			Date:        r.Date.Format(time.DateOnly),
			Title:       r.Title,
			Description: r.Description,
		})
	}
	return items
}
