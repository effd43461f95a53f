// Package locality maps free-form (district, municipality) pairs to
// agro-climatic zones. Source location data is messy free text, so the
// resolver tries an exact index lookup first and falls back to substring
// matching against each zone's district fragments.
package locality

import (
	"strings"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/matching"
)

// DistrictIndex maps a district name to, per zone, the municipalities that
// belong to it. Keys and values are the raw strings of the dataset; the
// resolver normalizes on the fly.
type DistrictIndex map[string]map[domain.ZoneID][]string

// ResolveZone returns the zone covering the given locality, or nil when
// nothing matches. Absence of a match is an expected outcome; callers
// default to domain.DefaultZone.
func ResolveZone(zones []domain.Zone, index DistrictIndex, district, municipality string) *domain.Zone {
	if strings.TrimSpace(district) == "" {
		return nil
	}
	d := matching.Normalize(district)
	m := ""
	if strings.TrimSpace(municipality) != "" {
		m = matching.Normalize(municipality)
	}

	// Precise path: district key match, then municipality inside that
	// district's per-zone lists.
	if m != "" {
		for rawDistrict, perZone := range index {
			if matching.Normalize(rawDistrict) != d {
				continue
			}
			for zoneID, municipalities := range perZone {
				for _, name := range municipalities {
					if matching.Normalize(name) == m {
						if z := zoneByID(zones, zoneID); z != nil {
							return z
						}
					}
				}
			}
			break
		}
	}

	// Fuzzy path: bidirectional substring containment against each zone's
	// district fragments.
	for i := range zones {
		for _, raw := range zones[i].DistrictFragments {
			if fragmentMatches(raw, d) {
				return &zones[i]
			}
		}
	}
	return nil
}

// fragmentMatches strips parenthetical qualifiers, splits a fragment on its
// separators and tests each part against the normalized district.
func fragmentMatches(raw, district string) bool {
	base, _, _ := strings.Cut(raw, "(")
	for _, part := range strings.FieldsFunc(base, func(r rune) bool {
		return r == ',' || r == ';' || r == '/'
	}) {
		p := matching.Normalize(part)
		if p == "" {
			continue
		}
		if strings.Contains(district, p) || strings.Contains(p, district) {
			return true
		}
	}
	return false
}

func zoneByID(zones []domain.Zone, id domain.ZoneID) *domain.Zone {
	for i := range zones {
		if zones[i].ID == id {
			return &zones[i]
		}
	}
	return nil
}
