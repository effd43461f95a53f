package locality_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/locality"
)

func testZones() []domain.Zone {
	return []domain.Zone{
		{ID: domain.Zone1, DistrictFragments: []string{"Viana do Castelo, Braga", "Porto (litoral)"}},
		{ID: domain.Zone2, DistrictFragments: []string{"Vila Real / Bragança (interior norte)"}},
		{ID: domain.Zone3, DistrictFragments: []string{"Lisboa; Setúbal", "Leiria (litoral)"}},
	}
}

func TestResolveZone_ExactIndexMatch(t *testing.T) {
	index := locality.DistrictIndex{
		"Braga": {
			domain.Zone2: {"Terras de Bouro"},
			domain.Zone1: {"Braga", "Guimarães"},
		},
	}
	z := locality.ResolveZone(testZones(), index, "Braga", "Guimarães")
	require.NotNil(t, z)
	require.Equal(t, domain.Zone1, z.ID)

	// The index outranks fuzzy fragments for municipalities it knows.
	z = locality.ResolveZone(testZones(), index, "braga", "terras de bouro")
	require.NotNil(t, z)
	require.Equal(t, domain.Zone2, z.ID)
}

func TestResolveZone_FuzzyFragmentFallback(t *testing.T) {
	// Not in any index, but a substring of a zone fragment.
	z := locality.ResolveZone(testZones(), nil, "Bragança", "")
	require.NotNil(t, z)
	require.Equal(t, domain.Zone2, z.ID)

	// Diacritics and case do not matter.
	z = locality.ResolveZone(testZones(), nil, "SETUBAL", "")
	require.NotNil(t, z)
	require.Equal(t, domain.Zone3, z.ID)

	// Parenthetical qualifiers are stripped before matching.
	z = locality.ResolveZone(testZones(), nil, "Porto", "")
	require.NotNil(t, z)
	require.Equal(t, domain.Zone1, z.ID)
}

func TestResolveZone_ContainmentIsBidirectional(t *testing.T) {
	// User typed a qualified district; the fragment is a substring of it.
	z := locality.ResolveZone(testZones(), nil, "Distrito de Leiria", "")
	require.NotNil(t, z)
	require.Equal(t, domain.Zone3, z.ID)
}

func TestResolveZone_NoMatch(t *testing.T) {
	require.Nil(t, locality.ResolveZone(testZones(), nil, "Azores", ""))
	require.Nil(t, locality.ResolveZone(testZones(), nil, "", "Lisboa"))
}
