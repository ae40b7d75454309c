package scheduler

import (
	"time"

	"github.com/alexanderramin/concierge/internal/domain"
)

// MinAvailable is the smallest candidate set worth keeping after the
// availability filter. Below it callers fall back to the unfiltered set.
const MinAvailable = 2

// FilterByAvailability keeps the venues open on date at hhmm. Venues with no
// hours recorded for that weekday are kept. An unparseable time filters nothing.
func FilterByAvailability(venues []domain.Venue, date time.Time, hhmm string) []domain.Venue {
	minute, err := domain.ParseClock(hhmm)
	if err != nil {
		return venues
	}
	day := date.Weekday()
	out := make([]domain.Venue, 0, len(venues))
	for _, v := range venues {
		if v.Hours.OpenAt(day, minute) {
			out = append(out, v)
		}
	}
	return out
}

// PreferAvailable applies FilterByAvailability as a soft preference: when
// fewer than min venues survive, the input set is returned instead and
// fellBack reports it.
func PreferAvailable(venues []domain.Venue, date *time.Time, hhmm string, min int) (out []domain.Venue, fellBack bool) {
	if date == nil || len(venues) == 0 {
		return venues, false
	}
	filtered := FilterByAvailability(venues, *date, hhmm)
	if len(filtered) < min {
		return venues, true
	}
	return filtered, false
}
