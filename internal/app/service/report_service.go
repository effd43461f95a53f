package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/matching"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
)

// ReportService projects scheduled and extrapolated care events over a date
// range into a flat, sorted, deduplicated row list for export.
type ReportService struct {
	plants ports.PlantRepository
	tasks  ports.TaskRepository
	now    func() time.Time
}

func NewReportService(plants ports.PlantRepository, tasks ports.TaskRepository) *ReportService {
	return &ReportService{plants: plants, tasks: tasks, now: time.Now}
}

var _ ports.ReportService = (*ReportService)(nil)

func (s *ReportService) Rows(ctx context.Context, q ports.ReportQuery) ([]domain.ReportRow, error) {
	rangeDays := domain.ClampReportRange(q.RangeDays)
	start := domain.DateOnly(s.now())
	end := start.AddDate(0, 0, rangeDays+1)

	var rows []domain.ReportRow

	if q.Source != domain.ReportSourceDB {
		plants, err := s.plants.ListByUser(ctx, q.UserID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, s.synthesizeWatering(plants, q.Locale, start, end)...)
	}

	tasks, err := s.tasks.ListDueInRange(ctx, q.UserID, start, end)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		row := domain.ReportRow{Date: domain.DateOnly(*t.DueDate), Title: t.Title}
		if t.Description != nil {
			row.Description = *t.Description
		}
		rows = append(rows, row)
	}

	unique := dedupeRows(rows, q.Locale)
	sort.Slice(unique, func(i, j int) bool {
		if !unique[i].Date.Equal(unique[j].Date) {
			return unique[i].Date.Before(unique[j].Date)
		}
		return unique[i].Title < unique[j].Title
	})
	return unique, nil
}

// synthesizeWatering extrapolates future watering events by advancing each
// plant's last-watered date by its cadence until the window is covered.
func (s *ReportService) synthesizeWatering(plants []domain.Plant, locale domain.Locale, start, end time.Time) []domain.ReportRow {
	var rows []domain.ReportRow
	for _, p := range plants {
		freq := p.WateringFreq
		cadence := domain.NormalizeWateringFreq(&freq)

		next := start
		if p.LastWatered != nil {
			next = domain.DateOnly(*p.LastWatered)
		}
		for next.Before(start) {
			next = next.AddDate(0, 0, cadence)
		}

		title := wateringTitle(locale, p.Name)
		description := wateringDescription(locale, cadence, p.LastWatered)
		for next.Before(end) {
			rows = append(rows, domain.ReportRow{
				Date:        next,
				Title:       title,
				Description: description,
			})
			next = next.AddDate(0, 0, cadence)
		}
	}
	return rows
}

// dedupeRows drops rows sharing (date, action, plant name) — a synthesized
// watering row and a persisted watering task for the same plant and day are
// the same event.
func dedupeRows(rows []domain.ReportRow, locale domain.Locale) []domain.ReportRow {
	seen := map[string]struct{}{}
	unique := make([]domain.ReportRow, 0, len(rows))
	for _, r := range rows {
		action := matching.CanonicalActionKey(r.Title, locale)
		plant := strings.ToLower(matching.PlantNameFromTitle(r.Title))
		key := r.Date.Format(time.DateOnly) + "|" + string(action) + "|" + plant
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}
