package cropcal_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/cropcal"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
)

func loadStore(t *testing.T) *cropcal.Store {
	t.Helper()
	store, err := cropcal.Load()
	require.NoError(t, err)
	return store
}

func TestLoad_ZonesNormalized(t *testing.T) {
	store := loadStore(t)
	zones := store.Zones()
	require.Len(t, zones, 5)
	for i, z := range zones {
		require.Equal(t, domain.ZoneID(i+1), z.ID)
		require.NotEmpty(t, z.DistrictFragments)
	}
}

func TestLoad_DualSpellingsFoldIntoOneShape(t *testing.T) {
	store := loadStore(t)

	// The EN file labels zones "ZONE n" and actions "Sowing"/"Transplanting";
	// after load both locales answer through the same canonical lookup.
	pt := store.CalendarFor(domain.Zone1, domain.LocalePT)
	en := store.CalendarFor(domain.Zone1, domain.LocaleEN)
	require.NotEmpty(t, pt)
	require.NotEmpty(t, en)

	ptWin, ok := pt["Tomate"]
	require.True(t, ok)
	enWin, ok := en["Tomato"]
	require.True(t, ok)

	// Same months regardless of which locale's month names populated the file.
	require.Equal(t, ptWin.Sow, enWin.Sow)
	require.Equal(t, ptWin.Transplant, enWin.Transplant)
	require.Equal(t, ptWin.Harvest, enWin.Harvest)
}

func TestMask_MonthIndexing(t *testing.T) {
	store := loadStore(t)

	mask, ok := store.Mask(domain.Zone1, domain.LocalePT, "Tomate", domain.ActionSow)
	require.True(t, ok)
	// Março, Abril -> indices 2 and 3, everything else false.
	for i := 0; i < 12; i++ {
		require.Equal(t, i == 2 || i == 3, mask[i], "month index %d", i)
	}
	require.True(t, mask.Has(3))
	require.False(t, mask.Has(1))
	require.False(t, mask.Has(13))
}

func TestMask_UnknownCropOrAction(t *testing.T) {
	store := loadStore(t)

	_, ok := store.Mask(domain.Zone1, domain.LocalePT, "Dragonfruit", domain.ActionSow)
	require.False(t, ok)

	// Watering is not a calendar action.
	_, ok = store.Mask(domain.Zone1, domain.LocalePT, "Tomate", domain.ActionWater)
	require.False(t, ok)
}

func TestCalendarFor_CropNamesAreExact(t *testing.T) {
	store := loadStore(t)
	cal := store.CalendarFor(domain.Zone1, domain.LocalePT)
	_, ok := cal["tomate"]
	require.False(t, ok, "lookup is case-sensitive as stored; fuzzy matching lives in the matcher")
}

func TestResolveZone_DefaultsWhenUnresolved(t *testing.T) {
	store := loadStore(t)

	z := store.ResolveZone("Faro", "Loulé")
	require.Equal(t, domain.Zone5, z.ID)

	z = store.ResolveZone("Somewhere Else Entirely", "")
	require.Equal(t, domain.DefaultZone, z.ID)
}

func TestResolveZone_IndexBeatsFragments(t *testing.T) {
	store := loadStore(t)

	// Setúbal district fragments sit in zone 3, but the index places these
	// southern municipalities in zone 4.
	z := store.ResolveZone("Setúbal", "Grândola")
	require.Equal(t, domain.Zone4, z.ID)

	z = store.ResolveZone("Setúbal", "Almada")
	require.Equal(t, domain.Zone3, z.ID)
}
