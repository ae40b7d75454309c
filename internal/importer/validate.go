package importer

import (
	"fmt"

	"github.com/alexanderramin/concierge/internal/app"
	"github.com/alexanderramin/concierge/internal/catalog"
	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/alexanderramin/concierge/internal/generation"
)

// ValidateRequestSchema checks the request file for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateRequestSchema(s *RequestSchema) []error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, &app.RequestError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if s.UserID == "" {
		fail("user_id", "is required")
	}
	if s.Duration != nil && (*s.Duration < 1 || *s.Duration > app.MaxDuration) {
		fail("duration", "must be between 1 and %d, got %d", app.MaxDuration, *s.Duration)
	}
	if s.Guests != nil && *s.Guests < 1 {
		fail("guests", "must be positive, got %d", *s.Guests)
	}
	if s.Intensity != "" && !domain.ValidIntensities[s.Intensity] {
		fail("intensity", "invalid value %q", s.Intensity)
	}

	start, startErr := generation.ParseOptionalDate(s.StartDate, "start_date")
	if startErr != nil {
		errs = append(errs, startErr)
	}
	end, endErr := generation.ParseOptionalDate(s.EndDate, "end_date")
	if endErr != nil {
		errs = append(errs, endErr)
	}
	if start != nil && end != nil && end.Before(*start) {
		fail("end_date", "%s is before start_date %s", *s.EndDate, *s.StartDate)
	}

	errs = append(errs, validateTags("preferences.restaurants", domain.CategoryRestaurants, s.Preferences.Restaurants)...)
	errs = append(errs, validateTags("preferences.museums", domain.CategoryMuseums, s.Preferences.Museums)...)
	errs = append(errs, validateTags("preferences.activities", domain.CategoryActivities, s.Preferences.Activities)...)
	errs = append(errs, validateTags("preferences.nightlife", domain.CategoryNightlife, s.Preferences.Nightlife)...)

	return errs
}

func validateTags(field string, category domain.Category, tags []string) []error {
	known := make(map[string]bool)
	for _, t := range catalog.SubCategories(category) {
		known[t] = true
	}
	var errs []error
	for i, t := range tags {
		normalized := domain.NormalizeTags([]string{t})
		if len(normalized) == 0 {
			continue
		}
		if !known[normalized[0]] {
			errs = append(errs, &app.RequestError{
				Field:   fmt.Sprintf("%s[%d]", field, i),
				Message: fmt.Sprintf("unknown %s tag %q", category, t),
			})
		}
	}
	return errs
}
