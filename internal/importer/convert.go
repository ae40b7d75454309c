package importer

import (
	"fmt"

	"github.com/alexanderramin/concierge/internal/app"
	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/alexanderramin/concierge/internal/generation"
)

// Convert turns a validated RequestSchema into a GenerateRequest. Fields the
// file leaves out stay zero so the defaults cascade can fill them.
// Call ValidateRequestSchema first; Convert assumes the schema is valid.
func Convert(s *RequestSchema) (app.GenerateRequest, error) {
	start, err := generation.ParseOptionalDate(s.StartDate, "start_date")
	if err != nil {
		return app.GenerateRequest{}, fmt.Errorf("parsing start_date: %w", err)
	}
	end, err := generation.ParseOptionalDate(s.EndDate, "end_date")
	if err != nil {
		return app.GenerateRequest{}, fmt.Errorf("parsing end_date: %w", err)
	}

	return app.GenerateRequest{
		UserID:    s.UserID,
		City:      s.City,
		Duration:  domain.FirstSet(0, s.Duration),
		Profile:   s.Profile,
		Intensity: domain.Intensity(s.Intensity),
		Interests: s.Interests,
		Guests:    domain.FirstSet(0, s.Guests),
		StartDate: start,
		EndDate:   end,

		RestaurantCategories: s.Preferences.Restaurants,
		MuseumCategories:     s.Preferences.Museums,
		ActivityCategories:   s.Preferences.Activities,
		WantsSpa:             s.Preferences.Spa,
		WantsShopping:        s.Preferences.Shopping,
		NightlifeCategories:  s.Preferences.Nightlife,

		Seed: s.Seed,
	}, nil
}
