package domain

import "time"

// TimeWindow is an opening window in minutes after midnight. Close may be
// lower than Open for windows that run past midnight.
type TimeWindow struct {
	Open  int
	Close int
}

// Contains reports whether minute m of the day falls inside the window.
func (w TimeWindow) Contains(m int) bool {
	if w.Close == w.Open {
		return true
	}
	if w.Close > w.Open {
		return m >= w.Open && m <= w.Close
	}
	return m >= w.Open || m <= w.Close
}

// Hours holds a venue's free-text opening hours and the structure parsed from it.
type Hours struct {
	Text    string
	Windows map[time.Weekday][]TimeWindow
	Closed  map[time.Weekday]bool
}

// IsStructured reports whether any window or closed day was recognised.
func (h Hours) IsStructured() bool {
	return len(h.Windows) > 0 || len(h.Closed) > 0
}

// OpenAt reports whether the venue accepts visitors on day at minute m.
// Days without recorded windows are treated as unconstrained.
func (h Hours) OpenAt(day time.Weekday, m int) bool {
	if h.Closed[day] {
		return false
	}
	windows, ok := h.Windows[day]
	if !ok || len(windows) == 0 {
		return true
	}
	for _, w := range windows {
		if w.Contains(m) {
			return true
		}
	}
	return false
}

type Venue struct {
	ID                  string
	Name                string
	Category            Category
	SubCategory         string
	Address             string
	Phone               string
	Hours               Hours
	Style               string
	Description         string
	IsEiffelView        bool
	ReservationRequired bool
}

// IsOneShot reports whether the venue belongs to a one-per-trip sub-category.
func (v Venue) IsOneShot() bool {
	return v.Category == CategoryActivities && IsOneShot(v.SubCategory)
}
