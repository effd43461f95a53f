// Package cropcal holds the per-zone crop calendars. The source datasets grew
// organically in two locales with drifting key spellings (ZONE/ZONA labels,
// Sowing/Semeadura action names, month names in either language), so
// everything is normalized into one canonical shape at load time and read
// sites never see the historical spellings.
package cropcal

import (
	"embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/locality"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/matching"
)

//go:embed data/calendario.pt.json data/calendario.en.json data/zonemap.pt.json
var dataFS embed.FS

// Store is the canonical in-memory calendar: zones metadata, the precise
// district index and, per locale, crop windows keyed by display name.
type Store struct {
	zones     []domain.Zone
	index     locality.DistrictIndex
	calendars map[domain.Locale]map[domain.ZoneID]map[string]domain.CropWindow
}

type rawZoneMeta struct {
	Description string   `json:"descricao"`
	Districts   []string `json:"distritos"`
	Notes       string   `json:"notas"`
}

// rawCalendarFile tolerates both historical key spellings per section.
type rawCalendarFile struct {
	Zonas      map[string]rawZoneMeta                  `json:"zonas"`
	Zones      map[string]rawZoneMeta                  `json:"zones"`
	Calendario map[string]map[string]map[string][]string `json:"calendario"`
	Calendar   map[string]map[string]map[string][]string `json:"calendar"`
}

// Load parses the embedded datasets for both locales. Zone metadata and the
// district index come from the Portuguese files, which are the reference.
func Load() (*Store, error) {
	s := &Store{
		index:     locality.DistrictIndex{},
		calendars: map[domain.Locale]map[domain.ZoneID]map[string]domain.CropWindow{},
	}

	for _, src := range []struct {
		locale domain.Locale
		file   string
	}{
		{domain.LocalePT, "data/calendario.pt.json"},
		{domain.LocaleEN, "data/calendario.en.json"},
	} {
		raw, err := readCalendarFile(src.file)
		if err != nil {
			return nil, err
		}

		zonesRaw := raw.Zonas
		if len(zonesRaw) == 0 {
			zonesRaw = raw.Zones
		}
		calRaw := raw.Calendario
		if len(calRaw) == 0 {
			calRaw = raw.Calendar
		}

		if src.locale == domain.LocalePT {
			zones, err := buildZones(zonesRaw)
			if err != nil {
				return nil, err
			}
			s.zones = zones
		}

		byZone := map[domain.ZoneID]map[string]domain.CropWindow{}
		for label, crops := range calRaw {
			zoneID, err := parseZoneLabel(label)
			if err != nil {
				return nil, err
			}
			windows := map[string]domain.CropWindow{}
			for crop, actions := range crops {
				win, err := buildWindow(actions)
				if err != nil {
					return nil, fmt.Errorf("%s/%s: %w", label, crop, err)
				}
				windows[crop] = win
			}
			byZone[zoneID] = windows
		}
		s.calendars[src.locale] = byZone
	}

	if err := s.loadIndex("data/zonemap.pt.json"); err != nil {
		return nil, err
	}
	return s, nil
}

func readCalendarFile(name string) (*rawCalendarFile, error) {
	b, err := dataFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	var raw rawCalendarFile
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	return &raw, nil
}

func (s *Store) loadIndex(name string) error {
	b, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	var raw map[string]map[string][]string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	for district, perZone := range raw {
		entry := map[domain.ZoneID][]string{}
		for label, municipalities := range perZone {
			zoneID, err := parseZoneLabel(label)
			if err != nil {
				return err
			}
			entry[zoneID] = municipalities
		}
		s.index[district] = entry
	}
	return nil
}

// Zones returns the five zones in id order.
func (s *Store) Zones() []domain.Zone {
	return s.zones
}

// DistrictIndex returns the precise district -> zone -> municipalities index.
func (s *Store) DistrictIndex() locality.DistrictIndex {
	return s.index
}

// ResolveZone resolves a locality against this store's zones and index,
// falling back to the default zone when nothing matches.
func (s *Store) ResolveZone(district, municipality string) domain.Zone {
	if z := locality.ResolveZone(s.zones, s.index, district, municipality); z != nil {
		return *z
	}
	for _, z := range s.zones {
		if z.ID == domain.DefaultZone {
			return z
		}
	}
	return domain.Zone{ID: domain.DefaultZone}
}

// CalendarFor returns the crop windows for a zone in the given locale. Crop
// names are display strings looked up as stored; fuzzy matching is the
// matcher's job, not this layer's.
func (s *Store) CalendarFor(zone domain.ZoneID, locale domain.Locale) map[string]domain.CropWindow {
	return s.calendars[locale][zone]
}

// Mask renders the 12-month presence mask for one crop and action.
func (s *Store) Mask(zone domain.ZoneID, locale domain.Locale, crop string, action domain.ActionKey) (domain.MonthMask, bool) {
	win, ok := s.calendars[locale][zone][crop]
	if !ok {
		return domain.MonthMask{}, false
	}
	switch action {
	case domain.ActionSow:
		return win.Sow, true
	case domain.ActionTransplant:
		return win.Transplant, true
	case domain.ActionHarvest:
		return win.Harvest, true
	default:
		return domain.MonthMask{}, false
	}
}

func buildZones(raw map[string]rawZoneMeta) ([]domain.Zone, error) {
	zones := make([]domain.Zone, 0, len(raw))
	for label, meta := range raw {
		id, err := parseZoneLabel(label)
		if err != nil {
			return nil, err
		}
		zones = append(zones, domain.Zone{
			ID:                id,
			Description:       meta.Description,
			DistrictFragments: meta.Districts,
			Notes:             meta.Notes,
		})
	}
	// Stable id order regardless of map iteration.
	for i := 0; i < len(zones); i++ {
		for j := i + 1; j < len(zones); j++ {
			if zones[j].ID < zones[i].ID {
				zones[i], zones[j] = zones[j], zones[i]
			}
		}
	}
	return zones, nil
}

func buildWindow(actions map[string][]string) (domain.CropWindow, error) {
	var win domain.CropWindow
	for key, months := range actions {
		mask, err := parseMonths(months)
		if err != nil {
			return win, err
		}
		switch canonicalAction(key) {
		case domain.ActionSow:
			win.Sow = merge(win.Sow, mask)
		case domain.ActionTransplant:
			win.Transplant = merge(win.Transplant, mask)
		case domain.ActionHarvest:
			win.Harvest = merge(win.Harvest, mask)
		default:
			return win, fmt.Errorf("unknown calendar action %q", key)
		}
	}
	return win, nil
}

func merge(a, b domain.MonthMask) domain.MonthMask {
	for i := range a {
		a[i] = a[i] || b[i]
	}
	return a
}

// canonicalAction folds the historical action spellings of both locales.
func canonicalAction(key string) domain.ActionKey {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "sowing", "semeadura":
		return domain.ActionSow
	case "transplant", "transplanting", "transplante":
		return domain.ActionTransplant
	case "harvest", "colheita":
		return domain.ActionHarvest
	default:
		return domain.ActionOther
	}
}

// parseZoneLabel accepts both "ZONA n" and "ZONE n".
func parseZoneLabel(label string) (domain.ZoneID, error) {
	l := strings.ToUpper(strings.TrimSpace(label))
	l = strings.TrimPrefix(l, "ZONE")
	l = strings.TrimPrefix(l, "ZONA")
	n, err := strconv.Atoi(strings.TrimSpace(l))
	if err != nil || n < 1 || n > 5 {
		return 0, fmt.Errorf("invalid zone label %q", label)
	}
	return domain.ZoneID(n), nil
}

var monthIndex = map[string]int{
	"janeiro": 0, "fevereiro": 1, "marco": 2, "abril": 3, "maio": 4, "junho": 5,
	"julho": 6, "agosto": 7, "setembro": 8, "outubro": 9, "novembro": 10, "dezembro": 11,
	"january": 0, "february": 1, "march": 2, "april": 3, "may": 4, "june": 5,
	"july": 6, "august": 7, "september": 8, "october": 9, "november": 10, "december": 11,
}

// parseMonths accepts month names in either locale, in any mix.
func parseMonths(names []string) (domain.MonthMask, error) {
	var mask domain.MonthMask
	for _, name := range names {
		idx, ok := monthIndex[matching.Normalize(name)]
		if !ok {
			return mask, fmt.Errorf("unknown month %q", name)
		}
		mask[idx] = true
	}
	return mask, nil
}
