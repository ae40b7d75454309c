package catalog

import (
	"io"
	"strings"

	"github.com/alexanderramin/concierge/internal/domain"
)

// ParseVenues reads one category table into normalized venues. Rows without
// a name are dropped; the second return value counts them. A zero delim
// sniffs the delimiter from the header line.
func ParseVenues(r io.Reader, category domain.Category, delim rune) ([]domain.Venue, int, error) {
	header, rows, err := readTable(r, delim)
	if err != nil {
		return nil, 0, err
	}
	if len(header) == 0 {
		return nil, 0, nil
	}

	cols := mapColumns(header)
	derive, ok := derivations[category]
	if !ok {
		derive = constantTag(string(category))
	}

	ids := make(uniqueIDs)
	venues := make([]domain.Venue, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		rec := cols.record(row)
		name := strings.TrimSpace(rec[fieldName])
		if name == "" {
			dropped++
			continue
		}
		sub, reservation := derive(rec)
		venues = append(venues, domain.Venue{
			ID:                  ids.claim(VenueID(category, name)),
			Name:                name,
			Category:            category,
			SubCategory:         sub,
			Address:             rec[fieldAddress],
			Phone:               rec[fieldPhone],
			Hours:               ParseHours(rec[fieldHours], rec[fieldClosed]),
			Style:               rec[fieldStyle],
			Description:         rec[fieldDescription],
			IsEiffelView:        eiffelView(rec),
			ReservationRequired: reservation,
		})
	}
	return venues, dropped, nil
}

func eiffelView(r record) bool {
	if truthy(r[fieldEiffel]) {
		return true
	}
	return strings.Contains(r.text(fieldDescription, fieldStyle), "tour eiffel")
}
