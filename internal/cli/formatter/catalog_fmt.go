package formatter

import (
	"fmt"

	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/alexanderramin/concierge/internal/service"
)

// FormatVenues renders catalog venues as a table.
func FormatVenues(venues []domain.Venue) string {
	if len(venues) == 0 {
		return Dim("No venues.") + "\n"
	}
	headers := []string{"NAME", "TYPE", "ADDRESS", "HOURS"}
	rows := make([][]string, 0, len(venues))
	for _, v := range venues {
		name := v.Name
		if v.IsOneShot() {
			name += " " + StyleYellow.Render("★")
		}
		rows = append(rows, []string{name, v.SubCategory, v.Address, v.Hours.Text})
	}
	return RenderTable(headers, rows)
}

// FormatCategoryCounts renders the venue count of each reloaded category.
func FormatCategoryCounts(counts []service.CategoryCount) string {
	headers := []string{"CATEGORY", "VENUES"}
	rows := make([][]string, 0, len(counts))
	total := 0
	for _, c := range counts {
		n := fmt.Sprintf("%d", c.Venues)
		if c.Venues == 0 {
			n = StyleRed.Render(n)
		}
		rows = append(rows, []string{CategoryBadge(c.Category), n})
		total += c.Venues
	}
	return RenderTable(headers, rows) + Dim(fmt.Sprintf("%d venues loaded", total)) + "\n"
}

// FormatExclusions renders a user's excluded venues.
func FormatExclusions(list []*domain.VenueExclusion) string {
	if len(list) == 0 {
		return Dim("No exclusions.") + "\n"
	}
	headers := []string{"ID", "VENUE", "CATEGORY", "REASON", "SINCE"}
	rows := make([][]string, 0, len(list))
	for _, e := range list {
		reason := e.Reason
		if reason == "" {
			reason = Dim("--")
		}
		rows = append(rows, []string{
			e.ID,
			e.VenueName,
			CategoryBadge(e.Category),
			reason,
			e.CreatedAt.Format("2006-01-02"),
		})
	}
	return RenderTable(headers, rows)
}
