// Package matching normalizes free-text task titles to canonical action keys
// and matches free text against a plant inventory via alias expansion.
package matching

import (
	"regexp"
	"strings"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
)

// actionKeywords lists the substrings that classify a title, in fixed
// priority order. The first category with a hit wins.
var actionOrder = []domain.ActionKey{
	domain.ActionWater,
	domain.ActionPrune,
	domain.ActionFertilize,
	domain.ActionInspect,
	domain.ActionHarvest,
	domain.ActionSow,
	domain.ActionTransplant,
}

var actionKeywordsEN = map[domain.ActionKey][]string{
	domain.ActionWater:      {"water", "watering"},
	domain.ActionPrune:      {"prune", "pruning"},
	domain.ActionFertilize:  {"fertilize", "fertiliser", "fertilizer"},
	domain.ActionInspect:    {"inspect", "check"},
	domain.ActionHarvest:    {"harvest"},
	domain.ActionSow:        {"sow"},
	domain.ActionTransplant: {"transplant"},
}

var actionKeywordsPT = map[domain.ActionKey][]string{
	domain.ActionWater:      {"regar", "rega"},
	domain.ActionPrune:      {"podar", "poda"},
	domain.ActionFertilize:  {"adubar", "fertilizar", "adubo", "fertilizante"},
	domain.ActionInspect:    {"verificar", "inspecionar"},
	domain.ActionHarvest:    {"colher", "colheita"},
	domain.ActionSow:        {"semear", "semeadura"},
	domain.ActionTransplant: {"transplantar", "transplante"},
}

// CanonicalActionKey parses a coarse action category out of a title, for
// same-day deduplication keys. Unrecognized verbs map to "other".
func CanonicalActionKey(title string, locale domain.Locale) domain.ActionKey {
	t := Normalize(title)
	keywords := actionKeywordsPT
	if locale == domain.LocaleEN {
		keywords = actionKeywordsEN
	}
	for _, action := range actionOrder {
		for _, word := range keywords[action] {
			if strings.Contains(t, word) {
				return action
			}
		}
	}
	return domain.ActionOther
}

var (
	wateringPrefixEN = regexp.MustCompile(`^water[:\s]`)
	wateringPrefixPT = regexp.MustCompile(`^regar[:\s]`)
)

// IsWateringTask detects the watering titles used by the scheduler templates.
// Completion logic uses it to decide whether to touch the plant's last-watered
// timestamp.
func IsWateringTask(title string, locale domain.Locale) bool {
	t := Normalize(title)
	if locale == domain.LocaleEN {
		return wateringPrefixEN.MatchString(t) || strings.Contains(t, "watering")
	}
	return wateringPrefixPT.MatchString(t) || strings.Contains(t, "rega")
}

// MatchPlant returns the plant whose longest alias-expanded candidate string
// appears in the normalized title or description, or nil when nothing
// matches. Longest-match-wins keeps short common substrings from outranking
// more specific names.
func MatchPlant(title, description string, plants []domain.Plant, locale domain.Locale) *domain.Plant {
	normTitle := Normalize(title)
	normDesc := Normalize(description)

	var best *domain.Plant
	bestLen := 0
	for i := range plants {
		plant := &plants[i]

		candidates := make(map[string]struct{})
		for _, c := range ExpandAliases(plant.Name, locale) {
			candidates[c] = struct{}{}
		}
		if plant.Species != nil {
			for _, c := range ExpandAliases(*plant.Species, locale) {
				candidates[c] = struct{}{}
			}
		}

		for cand := range candidates {
			if cand == "" {
				continue
			}
			if !strings.Contains(normTitle, cand) && !strings.Contains(normDesc, cand) {
				continue
			}
			if len(cand) > bestLen {
				best = plant
				bestLen = len(cand)
			}
		}
	}
	return best
}

// MentionedPlants returns every plant whose alias-expanded name appears in
// the text. The scheduler uses it to fan an AI watering suggestion out to all
// plants it names.
func MentionedPlants(text string, plants []domain.Plant, locale domain.Locale) []domain.Plant {
	t := Normalize(text)
	var hits []domain.Plant
	for _, plant := range plants {
		for _, cand := range ExpandAliases(plant.Name, locale) {
			if cand != "" && strings.Contains(t, cand) {
				hits = append(hits, plant)
				break
			}
		}
	}
	return hits
}

// PlantNameFromTitle extracts the plant name after the first ":" of a
// templated title, e.g. "Regar: Figueira" -> "Figueira".
func PlantNameFromTitle(title string) string {
	_, after, found := strings.Cut(title, ":")
	if !found {
		return ""
	}
	return strings.TrimSpace(after)
}
