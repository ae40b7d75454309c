package domain

import (
	"fmt"
	"time"
)

type ActivityOption struct {
	ID                  string
	OptionGroupID       string
	VenueID             string
	VenueName           string
	SubCategory         string
	Address             string
	Phone               string
	Hours               string
	Style               string
	Description         string
	IsEiffelView        bool
	ReservationRequired bool
	IsSelected          bool
	Rank                int
}

// ApplyVenue overwrites the venue snapshot carried by the option.
func (o *ActivityOption) ApplyVenue(v Venue) {
	o.VenueID = v.ID
	o.VenueName = v.Name
	o.SubCategory = v.SubCategory
	o.Address = v.Address
	o.Phone = v.Phone
	o.Hours = v.Hours.Text
	o.Style = v.Style
	o.Description = v.Description
	o.IsEiffelView = v.IsEiffelView
	o.ReservationRequired = v.ReservationRequired
}

// ActivitySlot is one time slot of a day. Its ID doubles as the option group
// id shared by all of its options.
type ActivitySlot struct {
	ID                 string
	DayID              string
	TimeSlot           TimeSlot
	Time               *string
	Type               string
	Category           Category
	Options            []ActivityOption
	ConciergeNotes     string
	VerificationStatus VerificationStatus
	IsRest             bool
}

// EffectiveTime returns the explicit time, or the slot default when unset.
func (s *ActivitySlot) EffectiveTime() string {
	if s.Time != nil && *s.Time != "" {
		return *s.Time
	}
	return s.TimeSlot.DefaultTime()
}

func (s *ActivitySlot) IsShopping() bool {
	return s.Category == CategoryShopping
}

// Selected returns the currently selected options.
func (s *ActivitySlot) Selected() []ActivityOption {
	var out []ActivityOption
	for _, o := range s.Options {
		if o.IsSelected {
			out = append(out, o)
		}
	}
	return out
}

// Option returns a pointer to the option with the given id, or nil.
func (s *ActivitySlot) Option(id string) *ActivityOption {
	for i := range s.Options {
		if s.Options[i].ID == id {
			return &s.Options[i]
		}
	}
	return nil
}

// RefreshVerification marks slots without any option as needing attention.
func (s *ActivitySlot) RefreshVerification() {
	if len(s.Options) == 0 && !s.IsRest {
		s.VerificationStatus = VerificationNeedsAttention
		return
	}
	if s.VerificationStatus == VerificationNeedsAttention {
		s.VerificationStatus = VerificationPending
	}
}

type ProgramDay struct {
	ID            string
	ProgramID     string
	DayNumber     int
	ActualDate    *time.Time
	ThemeInternal string
	ThemeClient   string
	Activities    []ActivitySlot
}

type Program struct {
	ID              string
	UserID          string
	City            string
	Duration        int
	Profile         string
	Intensity       Intensity
	Interests       []string
	Guests          int
	Title           string
	IntroInternal   string
	IntroClient     string
	ClosingInternal string
	ClosingClient   string
	Status          ProgramStatus
	StartDate       *time.Time
	EndDate         *time.Time
	Days            []ProgramDay
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CheckDays verifies that the program holds exactly Duration days numbered
// 1..Duration in order.
func (p *Program) CheckDays() error {
	if len(p.Days) != p.Duration {
		return fmt.Errorf("program has %d days, expected %d", len(p.Days), p.Duration)
	}
	for i, d := range p.Days {
		if d.DayNumber != i+1 {
			return fmt.Errorf("day at position %d has number %d", i+1, d.DayNumber)
		}
	}
	return nil
}

// Slot returns the slot with the given option group id, or nil.
func (p *Program) Slot(groupID string) *ActivitySlot {
	for di := range p.Days {
		for si := range p.Days[di].Activities {
			if p.Days[di].Activities[si].ID == groupID {
				return &p.Days[di].Activities[si]
			}
		}
	}
	return nil
}

// SlotForOption returns the slot holding the option with the given id, or nil.
func (p *Program) SlotForOption(optionID string) *ActivitySlot {
	for di := range p.Days {
		for si := range p.Days[di].Activities {
			slot := &p.Days[di].Activities[si]
			if slot.Option(optionID) != nil {
				return slot
			}
		}
	}
	return nil
}

// DayOf returns the day containing the slot with the given id, or nil.
func (p *Program) DayOf(groupID string) *ProgramDay {
	for di := range p.Days {
		for _, s := range p.Days[di].Activities {
			if s.ID == groupID {
				return &p.Days[di]
			}
		}
	}
	return nil
}

// UsedVenueNames returns the lower-cased names of every venue placed in any
// option of the program.
func (p *Program) UsedVenueNames() map[string]bool {
	used := make(map[string]bool)
	for _, d := range p.Days {
		for _, s := range d.Activities {
			for _, o := range s.Options {
				if o.VenueName != "" {
					used[NameKey(o.VenueName)] = true
				}
			}
		}
	}
	return used
}

// OneShotCount returns how many options carry a one-shot activity tag.
func (p *Program) OneShotCount() int {
	n := 0
	for _, d := range p.Days {
		for _, s := range d.Activities {
			if s.Category != CategoryActivities {
				continue
			}
			for _, o := range s.Options {
				if IsOneShot(o.SubCategory) {
					n++
				}
			}
		}
	}
	return n
}

type VenueExclusion struct {
	ID        string
	UserID    string
	VenueName string
	Category  Category
	Reason    string
	CreatedAt time.Time
}
