package service

import (
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/cropcal"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
)

type CalendarService struct {
	store *cropcal.Store
}

func NewCalendarService(store *cropcal.Store) *CalendarService {
	return &CalendarService{store: store}
}

var _ ports.CalendarService = (*CalendarService)(nil)

// ZoneCalendar resolves the locality (defaulting to zone 1 when unresolved)
// and returns that zone's crop windows in the requested locale.
func (s *CalendarService) ZoneCalendar(locale domain.Locale, district, municipality string) ports.CalendarView {
	zone := s.store.ResolveZone(district, municipality)
	return ports.CalendarView{
		Zone:  zone,
		Crops: s.store.CalendarFor(zone.ID, locale),
	}
}
