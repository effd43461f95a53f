package domain

// ZoneID identifies one of the five agro-climatic zones of the reference
// calendar. Zone 1 is the baseline callers fall back to when resolution fails.
type ZoneID int

const (
	Zone1 ZoneID = 1
	Zone2 ZoneID = 2
	Zone3 ZoneID = 3
	Zone4 ZoneID = 4
	Zone5 ZoneID = 5

	DefaultZone = Zone1
)

// Zone carries the display metadata of an agro-climatic zone plus the
// district fragments used for fuzzy locality matching. Fragments may contain
// parenthetical qualifiers and comma/slash/semicolon-separated alternatives.
type Zone struct {
	ID                ZoneID
	Description       string
	DistrictFragments []string
	Notes             string
}

// MonthMask marks calendar months, index 0 = January.
type MonthMask [12]bool

func (m MonthMask) Has(month int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return m[month-1]
}

// CropWindow is the per-crop calendar for one zone.
type CropWindow struct {
	Sow        MonthMask
	Transplant MonthMask
	Harvest    MonthMask
}
