package generation

import (
	"fmt"
	"time"

	"github.com/alexanderramin/concierge/internal/app"
	"github.com/alexanderramin/concierge/internal/domain"
)

const dateLayout = "2006-01-02"

// RequestDefaults holds the configured fallbacks applied to a generate
// request before validation. Zero values defer to the hard-coded defaults.
type RequestDefaults struct {
	City      string
	Duration  *int
	Intensity string
	Guests    *int
	Seed      *uint64
}

// ResolveRequestDefaults applies the defaults cascade: request > configured
// defaults > hard-coded. A missing duration is derived from the start and
// end dates when both are present. A missing end date is derived from the
// start date.
func ResolveRequestDefaults(req app.GenerateRequest, defaults RequestDefaults) app.GenerateRequest {
	req.City = domain.CoalesceStr(req.City, defaults.City, app.DefaultCity)
	req.Intensity = domain.Intensity(domain.CoalesceStr(
		string(req.Intensity),
		defaults.Intensity,
		string(app.DefaultIntensity),
	))

	if req.Duration == 0 {
		req.Duration = domain.FirstSet(app.DefaultDuration,
			DurationFromDates(req.StartDate, req.EndDate),
			defaults.Duration,
		)
	}
	if req.Guests == 0 {
		req.Guests = domain.FirstSet(app.DefaultGuests, defaults.Guests)
	}
	if req.Seed == nil {
		req.Seed = defaults.Seed
	}
	if req.EndDate == nil {
		req.EndDate = req.ResolvedEndDate()
	}
	return req
}

// DurationFromDates returns the inclusive day count between start and end,
// or nil when either is missing or end precedes start.
func DurationFromDates(start, end *time.Time) *int {
	if start == nil || end == nil || end.Before(*start) {
		return nil
	}
	n := int(end.Sub(*start).Hours()/24) + 1
	return &n
}

// ParseRequiredDate parses a required YYYY-MM-DD date with field-aware errors.
func ParseRequiredDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, &app.RequestError{
			Field:   field,
			Message: fmt.Sprintf("invalid date format %q (expected YYYY-MM-DD)", value),
		}
	}
	return t, nil
}

// ParseOptionalDate parses an optional YYYY-MM-DD date with field-aware errors.
func ParseOptionalDate(value *string, field string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := ParseRequiredDate(*value, field)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
