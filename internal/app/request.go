package app

import (
	"fmt"
	"time"

	"github.com/alexanderramin/concierge/internal/catalog"
	"github.com/alexanderramin/concierge/internal/domain"
)

// Hard-coded generation defaults.
const (
	DefaultCity      = "Paris"
	DefaultDuration  = 3
	DefaultGuests    = 2
	DefaultIntensity = domain.IntensityModerate
	MaxDuration      = 30
)

// GenerateRequest describes the trip a program is generated for.
type GenerateRequest struct {
	UserID    string
	City      string
	Duration  int
	Profile   string
	Intensity domain.Intensity
	Interests []string
	Guests    int
	StartDate *time.Time
	EndDate   *time.Time

	RestaurantCategories []string
	MuseumCategories     []string
	ActivityCategories   []string
	WantsSpa             bool
	WantsShopping        bool
	NightlifeCategories  []string

	// Seed makes venue draws reproducible when set.
	Seed *uint64
}

// NewGenerateRequest returns a request with defaults applied.
func NewGenerateRequest(userID string, duration int) GenerateRequest {
	return GenerateRequest{
		UserID:    userID,
		City:      DefaultCity,
		Duration:  duration,
		Intensity: DefaultIntensity,
		Guests:    DefaultGuests,
	}
}

// Families returns the non-meal categories the client selected.
func (r GenerateRequest) Families() []domain.Category {
	var out []domain.Category
	if len(domain.NormalizeTags(r.MuseumCategories)) > 0 {
		out = append(out, domain.CategoryMuseums)
	}
	if len(domain.NormalizeTags(r.ActivityCategories)) > 0 {
		out = append(out, domain.CategoryActivities)
	}
	if r.WantsSpa {
		out = append(out, domain.CategorySpas)
	}
	if r.WantsShopping {
		out = append(out, domain.CategoryShopping)
	}
	if len(domain.NormalizeTags(r.NightlifeCategories)) > 0 {
		out = append(out, domain.CategoryNightlife)
	}
	return out
}

// ResolvedEndDate returns EndDate, or the last trip day derived from StartDate.
func (r GenerateRequest) ResolvedEndDate() *time.Time {
	if r.EndDate != nil {
		return r.EndDate
	}
	if r.StartDate == nil || r.Duration < 1 {
		return nil
	}
	end := r.StartDate.AddDate(0, 0, r.Duration-1)
	return &end
}

// ValidateGenerateRequest returns every problem found in the request.
func ValidateGenerateRequest(r GenerateRequest) []error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, &RequestError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if r.UserID == "" {
		fail("user_id", "is required")
	}
	if r.Duration < 1 || r.Duration > MaxDuration {
		fail("duration", "must be between 1 and %d, got %d", MaxDuration, r.Duration)
	}
	if !domain.ValidIntensities[string(r.Intensity)] {
		fail("intensity", "invalid value %q", r.Intensity)
	}
	if r.Guests < 1 {
		fail("guests", "must be positive, got %d", r.Guests)
	}
	if r.StartDate != nil && r.EndDate != nil {
		if r.EndDate.Before(*r.StartDate) {
			fail("end_date", "must not be before start_date")
		} else if days := int(r.EndDate.Sub(*r.StartDate).Hours()/24) + 1; days != r.Duration {
			fail("end_date", "spans %d days but duration is %d", days, r.Duration)
		}
	}

	errs = append(errs, validateTags("restaurant_categories", domain.CategoryRestaurants, r.RestaurantCategories)...)
	errs = append(errs, validateTags("museum_categories", domain.CategoryMuseums, r.MuseumCategories)...)
	errs = append(errs, validateTags("activity_categories", domain.CategoryActivities, r.ActivityCategories)...)
	errs = append(errs, validateTags("nightlife_categories", domain.CategoryNightlife, r.NightlifeCategories)...)
	return errs
}

func validateTags(field string, category domain.Category, tags []string) []error {
	known := make(map[string]bool)
	for _, t := range catalog.SubCategories(category) {
		known[t] = true
	}
	var errs []error
	for _, t := range domain.NormalizeTags(tags) {
		if !known[t] {
			errs = append(errs, &RequestError{Field: field, Message: fmt.Sprintf("unknown %s tag %q", category, t)})
		}
	}
	return errs
}
