package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/matching"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/weatherrule"
)

// MaxGenerativeSuggestions caps how many provider suggestions are considered
// per generation run.
const MaxGenerativeSuggestions = 6

// SchedulerService generates due care tasks: deterministic watering
// candidates from each plant's cadence, optionally augmented by the
// generative provider, deduplicated against the day's persisted tasks.
type SchedulerService struct {
	plants  ports.PlantRepository
	tasks   ports.TaskRepository
	weather ports.WeatherProvider
	genai   ports.GenerativeProvider
	now     func() time.Time
}

func NewSchedulerService(
	plants ports.PlantRepository,
	tasks ports.TaskRepository,
	weather ports.WeatherProvider,
	genai ports.GenerativeProvider,
) *SchedulerService {
	return &SchedulerService{
		plants:  plants,
		tasks:   tasks,
		weather: weather,
		genai:   genai,
		now:     time.Now,
	}
}

var _ ports.SchedulerService = (*SchedulerService)(nil)

func (s *SchedulerService) GenerateTasks(ctx context.Context, in ports.GenerateTasksInput) (ports.GenerateTasksResult, error) {
	plants, err := s.plants.ListByUser(ctx, in.UserID)
	if err != nil {
		return ports.GenerateTasksResult{}, err
	}

	if in.ResetAll {
		if err := s.tasks.DeleteAllForUser(ctx, in.UserID); err != nil {
			zap.L().Warn("task reset failed, generating anyway", zap.Error(err))
		}
	}

	advice := domain.WateringAdvice{}
	if in.Location != nil && !in.Location.Empty() && s.weather != nil {
		summary, err := s.weather.SummaryByLocation(ctx, *in.Location)
		if err != nil {
			zap.L().Warn("weather lookup failed", zap.Error(err))
		} else {
			advice = weatherrule.ComputeWateringDelta(summary)
		}
	}

	horizon := in.HorizonDays
	if horizon < 0 {
		horizon = 0
	}

	base := s.ruleBasedCandidates(plants, in.Locale, advice, horizon)

	// Generative augmentation only applies to today-focused runs; horizon
	// planning stays fully deterministic.
	var generated []domain.TaskCandidate
	if horizon == 0 && s.genai != nil {
		generated = s.generativeCandidates(ctx, plants, in.Locale)
	}

	today := domain.DateOnly(s.now())

	// Rule-based candidates win over generative ones for the same key, and
	// duplicates inside the batch collapse to the first occurrence.
	seen := map[string]struct{}{}
	var candidates []domain.TaskCandidate
	for _, c := range append(base, generated...) {
		key := candidateKey(c, in.Locale, today)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		candidates = append(candidates, c)
	}
	if len(candidates) == 0 {
		return ports.GenerateTasksResult{}, nil
	}

	// Freeze the pending snapshot before filtering: candidates dedupe
	// against persisted state, never against each other's insertion order.
	pending, err := s.tasks.ListPending(ctx, in.UserID)
	if err != nil {
		return ports.GenerateTasksResult{}, err
	}

	existingKeys := map[string]struct{}{}
	untypedTitles := map[string]struct{}{}
	for _, t := range pending {
		existingKeys[taskKey(t, in.Locale)] = struct{}{}
		if t.PlantID == nil {
			untypedTitles[strings.ToLower(t.Title)] = struct{}{}
		}
	}

	var unique []domain.TaskCandidate
	for _, c := range candidates {
		key := candidateKey(c, in.Locale, today)
		if _, exists := existingKeys[key]; exists {
			continue
		}
		if c.PlantID == nil {
			// Action keys are too coarse for unlinked tasks; guard on the
			// exact title as well.
			if _, exists := untypedTitles[strings.ToLower(c.Title)]; exists {
				continue
			}
		}
		existingKeys[key] = struct{}{}
		unique = append(unique, c)
	}
	if len(unique) == 0 {
		return ports.GenerateTasksResult{}, nil
	}

	inserted, err := s.tasks.InsertBatch(ctx, in.UserID, unique)
	if err != nil {
		return ports.GenerateTasksResult{}, err
	}
	return ports.GenerateTasksResult{Inserted: len(inserted), Tasks: inserted}, nil
}

// ruleBasedCandidates emits one watering task per plant per due date inside
// the horizon window. The weather delta shifts the effective cadence; the
// skip flag suppresses only today's occurrence.
func (s *SchedulerService) ruleBasedCandidates(
	plants []domain.Plant,
	locale domain.Locale,
	advice domain.WateringAdvice,
	horizonDays int,
) []domain.TaskCandidate {
	today := domain.DateOnly(s.now())
	endDay := today.AddDate(0, 0, horizonDays)

	var out []domain.TaskCandidate
	for _, plant := range plants {
		freq := plant.WateringFreq
		effective := domain.ClampWateringFreq(domain.NormalizeWateringFreq(&freq) + advice.Delta)

		title := wateringTitle(locale, plant.Name)
		description := wateringDescription(locale, effective, plant.LastWatered)

		next := today
		if plant.LastWatered != nil {
			next = domain.DateOnly(*plant.LastWatered).AddDate(0, 0, effective)
		}

		for !next.After(endDay) {
			if !(advice.SkipToday && next.Equal(today)) {
				due := next
				out = append(out, domain.TaskCandidate{
					Title:       title,
					Description: &description,
					ImageURL:    plant.ImageURL,
					PlantID:     strPtr(plant.ID),
					DueDate:     &due,
				})
			}
			next = next.AddDate(0, 0, effective)
		}
	}
	return out
}

// generativeCandidates asks the provider for seasonal-care suggestions and
// re-associates each one with the inventory through the matcher, so they
// share the dedup and image logic of rule-based tasks. Any provider failure
// yields zero candidates.
func (s *SchedulerService) generativeCandidates(ctx context.Context, plants []domain.Plant, locale domain.Locale) []domain.TaskCandidate {
	suggestions, err := s.genai.SuggestTasks(ctx, plants, locale)
	if err != nil {
		zap.L().Warn("generative suggestions unavailable", zap.Error(err))
		return nil
	}
	if len(suggestions) > MaxGenerativeSuggestions {
		suggestions = suggestions[:MaxGenerativeSuggestions]
	}

	var out []domain.TaskCandidate
	for _, sg := range suggestions {
		action := matching.CanonicalActionKey(sg.Title, locale)
		if action == domain.ActionWater {
			// A watering suggestion must name a plant; re-anchor it to every
			// plant it mentions and drop it otherwise.
			mentions := matching.MentionedPlants(sg.Title+" "+sg.Description, plants, locale)
			for _, plant := range mentions {
				out = append(out, domain.TaskCandidate{
					Title:       wateringTitle(locale, plant.Name),
					Description: strPtrOrNil(sg.Description),
					ImageURL:    plant.ImageURL,
					PlantID:     strPtr(plant.ID),
				})
			}
			continue
		}

		candidate := domain.TaskCandidate{
			Title:       sg.Title,
			Description: strPtrOrNil(sg.Description),
		}
		if matched := matching.MatchPlant(sg.Title, sg.Description, plants, locale); matched != nil {
			candidate.PlantID = strPtr(matched.ID)
			candidate.ImageURL = matched.ImageURL
		}
		out = append(out, candidate)
	}
	return out
}

// candidateKey and taskKey produce the same-day deduplication key:
// (plantID or "null") | action | day.
func candidateKey(c domain.TaskCandidate, locale domain.Locale, today time.Time) string {
	day := today
	if c.DueDate != nil {
		day = domain.DateOnly(*c.DueDate)
	}
	return dedupKey(c.PlantID, c.Title, locale, day)
}

func taskKey(t domain.Task, locale domain.Locale) string {
	return dedupKey(t.PlantID, t.Title, locale, t.Day())
}

func dedupKey(plantID *string, title string, locale domain.Locale, day time.Time) string {
	id := "null"
	if plantID != nil {
		id = *plantID
	}
	action := matching.CanonicalActionKey(title, locale)
	return fmt.Sprintf("%s|%s|%s", id, action, day.Format(time.DateOnly))
}

func wateringTitle(locale domain.Locale, plantName string) string {
	if locale == domain.LocaleEN {
		return "Water: " + plantName
	}
	return "Regar: " + plantName
}

func wateringDescription(locale domain.Locale, freq int, lastWatered *time.Time) string {
	if locale == domain.LocaleEN {
		return fmt.Sprintf("Water every %d day(s). Last watering: %s.", freq, formatDate(locale, lastWatered))
	}
	return fmt.Sprintf("Regar a cada %d dia(s). Última rega: %s.", freq, formatDate(locale, lastWatered))
}

func formatDate(locale domain.Locale, ts *time.Time) string {
	if ts == nil {
		if locale == domain.LocaleEN {
			return "never"
		}
		return "nunca"
	}
	if locale == domain.LocaleEN {
		return fmt.Sprintf("%d/%d/%d", int(ts.Month()), ts.Day(), ts.Year())
	}
	return ts.Format("02/01/2006")
}

func strPtr(s string) *string {
	return &s
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
