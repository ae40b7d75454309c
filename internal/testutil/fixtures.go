package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/concierge/internal/app"
	"github.com/alexanderramin/concierge/internal/catalog"
	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/google/uuid"
)

// Venue options
type VenueOption func(*domain.Venue)

func WithSubCategory(sub string) VenueOption {
	return func(v *domain.Venue) {
		v.SubCategory = sub
	}
}

func WithHours(text string) VenueOption {
	return func(v *domain.Venue) {
		v.Hours = catalog.ParseHours(text, "")
	}
}

func WithEiffelView() VenueOption {
	return func(v *domain.Venue) {
		v.IsEiffelView = true
	}
}

func WithReservation() VenueOption {
	return func(v *domain.Venue) {
		v.ReservationRequired = true
	}
}

func NewTestVenue(category domain.Category, name string, opts ...VenueOption) domain.Venue {
	v := domain.Venue{
		ID:          catalog.VenueID(category, name),
		Name:        name,
		Category:    category,
		SubCategory: catalog.SubCategories(category)[0],
		Address:     "1 rue de Rivoli, Paris",
	}
	for _, opt := range opts {
		opt(&v)
	}
	return v
}

// NewTestVenues creates n venues named "<prefix> 1".."<prefix> n" sharing one sub-category.
func NewTestVenues(category domain.Category, prefix, sub string, n int, opts ...VenueOption) []domain.Venue {
	out := make([]domain.Venue, 0, n)
	for i := 1; i <= n; i++ {
		all := append([]VenueOption{WithSubCategory(sub)}, opts...)
		out = append(out, NewTestVenue(category, fmt.Sprintf("%s %d", prefix, i), all...))
	}
	return out
}

// Request options
type RequestOption func(*app.GenerateRequest)

func WithIntensity(i domain.Intensity) RequestOption {
	return func(r *app.GenerateRequest) {
		r.Intensity = i
	}
}

func WithStartDate(d time.Time) RequestOption {
	return func(r *app.GenerateRequest) {
		r.StartDate = &d
	}
}

func WithRestaurants(tags ...string) RequestOption {
	return func(r *app.GenerateRequest) {
		r.RestaurantCategories = tags
	}
}

func WithMuseums(tags ...string) RequestOption {
	return func(r *app.GenerateRequest) {
		r.MuseumCategories = tags
	}
}

func WithActivities(tags ...string) RequestOption {
	return func(r *app.GenerateRequest) {
		r.ActivityCategories = tags
	}
}

func WithNightlife(tags ...string) RequestOption {
	return func(r *app.GenerateRequest) {
		r.NightlifeCategories = tags
	}
}

func WithSpa() RequestOption {
	return func(r *app.GenerateRequest) {
		r.WantsSpa = true
	}
}

func WithShopping() RequestOption {
	return func(r *app.GenerateRequest) {
		r.WantsShopping = true
	}
}

func WithSeed(seed uint64) RequestOption {
	return func(r *app.GenerateRequest) {
		r.Seed = &seed
	}
}

func NewTestRequest(userID string, duration int, opts ...RequestOption) app.GenerateRequest {
	r := app.NewGenerateRequest(userID, duration)
	r.Profile = "couple"
	r.RestaurantCategories = []string{"etoile"}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// Program options
type ProgramOption func(*domain.Program)

func WithProgramStatus(s domain.ProgramStatus) ProgramOption {
	return func(p *domain.Program) {
		p.Status = s
	}
}

func WithProgramStart(d time.Time) ProgramOption {
	return func(p *domain.Program) {
		p.StartDate = &d
		for i := range p.Days {
			day := d.AddDate(0, 0, i)
			p.Days[i].ActualDate = &day
		}
	}
}

// WithSlot appends a slot holding options for venues to day dayNumber.
func WithSlot(dayNumber int, ts domain.TimeSlot, category domain.Category, venues ...domain.Venue) ProgramOption {
	return func(p *domain.Program) {
		day := &p.Days[dayNumber-1]
		slot := NewTestSlot(day.ID, ts, category, venues...)
		day.Activities = append(day.Activities, slot)
	}
}

// NewTestSlot builds a slot with ranked options, the first selected.
func NewTestSlot(dayID string, ts domain.TimeSlot, category domain.Category, venues ...domain.Venue) domain.ActivitySlot {
	slot := domain.ActivitySlot{
		ID:                 uuid.New().String(),
		DayID:              dayID,
		TimeSlot:           ts,
		Type:               category.SlotType(),
		Category:           category,
		VerificationStatus: domain.VerificationPending,
	}
	for i, v := range venues {
		o := domain.ActivityOption{
			ID:            uuid.New().String(),
			OptionGroupID: slot.ID,
			IsSelected:    i == 0,
			Rank:          i + 1,
		}
		o.ApplyVenue(v)
		slot.Options = append(slot.Options, o)
	}
	slot.RefreshVerification()
	return slot
}

// NewTestProgram creates a draft program with duration empty days.
func NewTestProgram(userID string, duration int, opts ...ProgramOption) *domain.Program {
	now := time.Now().UTC()
	p := &domain.Program{
		ID:        uuid.New().String(),
		UserID:    userID,
		City:      "Paris",
		Duration:  duration,
		Profile:   "couple",
		Intensity: domain.IntensityModerate,
		Guests:    2,
		Title:     "Test program",
		Status:    domain.ProgramDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for i := 1; i <= duration; i++ {
		p.Days = append(p.Days, domain.ProgramDay{
			ID:        uuid.New().String(),
			ProgramID: p.ID,
			DayNumber: i,
		})
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestExclusion creates an exclusion for userID.
func NewTestExclusion(userID, venueName string, category domain.Category) *domain.VenueExclusion {
	return &domain.VenueExclusion{
		ID:        uuid.New().String(),
		UserID:    userID,
		VenueName: venueName,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}
}
