// Package selection answers category queries against the venue catalog.
// Matching is strict: an empty or "none"-only tag set selects nothing.
package selection

import (
	"context"

	"github.com/alexanderramin/concierge/internal/catalog"
	"github.com/alexanderramin/concierge/internal/domain"
)

// NameSet holds venue names compared case-insensitively.
type NameSet map[string]bool

// NewNameSet builds a NameSet from raw names.
func NewNameSet(names ...string) NameSet {
	s := make(NameSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

func (s NameSet) Add(name string) {
	if key := domain.NameKey(name); key != "" {
		s[key] = true
	}
}

func (s NameSet) Has(name string) bool {
	return s[domain.NameKey(name)]
}

// matcher decides whether a venue satisfies a normalized tag set.
type matcher func(v domain.Venue, tags map[string]bool) bool

func bySubCategory(v domain.Venue, tags map[string]bool) bool {
	return tags[v.SubCategory]
}

// A "vue" request also accepts any restaurant flagged with an Eiffel view.
func restaurantMatch(v domain.Venue, tags map[string]bool) bool {
	return tags[v.SubCategory] || (tags["vue"] && v.IsEiffelView)
}

var matchers = map[domain.Category]matcher{
	domain.CategoryRestaurants: restaurantMatch,
	domain.CategoryMuseums:     bySubCategory,
	domain.CategoryActivities:  bySubCategory,
	domain.CategoryNightlife:   bySubCategory,
	domain.CategorySpas:        bySubCategory,
	domain.CategoryShopping:    bySubCategory,
	domain.CategoryTransport:   bySubCategory,
}

// Queries answers per-category venue lookups.
type Queries struct {
	loader catalog.Loader
}

func New(loader catalog.Loader) *Queries {
	return &Queries{loader: loader}
}

// ByCategory returns the venues of category whose tag is in tags, minus
// excluded names.
func (q *Queries) ByCategory(ctx context.Context, category domain.Category, tags []string, excluded NameSet) []domain.Venue {
	normalized := domain.NormalizeTags(tags)
	if len(normalized) == 0 {
		return nil
	}
	match, ok := matchers[category]
	if !ok {
		return nil
	}
	want := make(map[string]bool, len(normalized))
	for _, t := range normalized {
		want[t] = true
	}

	var out []domain.Venue
	for _, v := range q.loader.Load(ctx, category) {
		if excluded.Has(v.Name) || !match(v, want) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func (q *Queries) Restaurants(ctx context.Context, tags []string, excluded NameSet) []domain.Venue {
	return q.ByCategory(ctx, domain.CategoryRestaurants, tags, excluded)
}

func (q *Queries) Museums(ctx context.Context, tags []string, excluded NameSet) []domain.Venue {
	return q.ByCategory(ctx, domain.CategoryMuseums, tags, excluded)
}

func (q *Queries) Activities(ctx context.Context, tags []string, excluded NameSet) []domain.Venue {
	return q.ByCategory(ctx, domain.CategoryActivities, tags, excluded)
}

func (q *Queries) Nightlife(ctx context.Context, tags []string, excluded NameSet) []domain.Venue {
	return q.ByCategory(ctx, domain.CategoryNightlife, tags, excluded)
}

// Spas returns every spa when wanted, nothing otherwise.
func (q *Queries) Spas(ctx context.Context, wanted bool, excluded NameSet) []domain.Venue {
	if !wanted {
		return nil
	}
	return q.ByCategory(ctx, domain.CategorySpas, catalog.SubCategories(domain.CategorySpas), excluded)
}

// Shopping returns every boutique when wanted, nothing otherwise.
func (q *Queries) Shopping(ctx context.Context, wanted bool, excluded NameSet) []domain.Venue {
	if !wanted {
		return nil
	}
	return q.ByCategory(ctx, domain.CategoryShopping, catalog.SubCategories(domain.CategoryShopping), excluded)
}

// All returns the whole category minus excluded names, without tag matching.
// Regeneration and type switches draw from it.
func (q *Queries) All(ctx context.Context, category domain.Category, excluded NameSet) []domain.Venue {
	var out []domain.Venue
	for _, v := range q.loader.Load(ctx, category) {
		if !excluded.Has(v.Name) {
			out = append(out, v)
		}
	}
	return out
}
