package domain

import "strings"

// NoneTags are the sentinel values a multi-select uses for "no interest".
var NoneTags = map[string]bool{"none": true, "aucun": true, "aucune": true}

// NormalizeTags folds and trims tags, drops blanks and sentinel "none"
// values, and removes duplicates while keeping the first-seen order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	var out []string
	for _, t := range tags {
		t = Fold(strings.TrimSpace(t))
		if t == "" || NoneTags[t] || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// NameKey normalizes a venue name for uniqueness and exclusion checks.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
