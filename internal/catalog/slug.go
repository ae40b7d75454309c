package catalog

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/concierge/internal/domain"
)

// MaxIDLength bounds venue identifiers.
const MaxIDLength = 64

// VenueID derives the stable identifier for a venue name within a category.
func VenueID(category domain.Category, name string) string {
	return truncateID(string(category) + "-" + slugify(name))
}

func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range domain.Fold(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if slug == "" {
		return "venue"
	}
	return slug
}

func truncateID(id string) string {
	if len(id) > MaxIDLength {
		id = id[:MaxIDLength]
	}
	return strings.TrimRight(id, "-")
}

// uniqueIDs tracks identifiers handed out for one category load.
type uniqueIDs map[string]int

// claim returns id, or id with a numeric suffix when it was already taken.
func (u uniqueIDs) claim(id string) string {
	n := u[id]
	u[id] = n + 1
	if n == 0 {
		return id
	}
	for suffix := n + 1; ; suffix++ {
		tail := "-" + strconv.Itoa(suffix)
		base := id
		if len(base)+len(tail) > MaxIDLength {
			base = strings.TrimRight(base[:MaxIDLength-len(tail)], "-")
		}
		candidate := base + tail
		if u[candidate] == 0 {
			u[candidate] = 1
			return candidate
		}
	}
}
