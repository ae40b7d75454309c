package catalog

import "github.com/alexanderramin/concierge/internal/domain"

type keywordRule struct {
	tag      string
	keywords []string
}

// keywordTable tags a record with the first rule whose keywords appear in
// its type column, then in its name and copy, falling back to a default.
type keywordTable struct {
	rules    []keywordRule
	fallback string
}

func (t keywordTable) match(r record) string {
	for _, text := range []string{
		r.text(fieldKind),
		r.text(fieldName, fieldStyle, fieldDescription),
	} {
		if text == "" {
			continue
		}
		for _, rule := range t.rules {
			if containsAny(text, rule.keywords) {
				return rule.tag
			}
		}
	}
	return t.fallback
}

// Keyword tables are folded: lower case, no diacritics. Short keywords
// that occur inside longer words carry the "=" whole-word prefix.
var (
	restaurantTags = keywordTable{
		rules: []keywordRule{
			{"etoile", []string{"etoile", "michelin", "3*", "2*", "1*"}},
			{"gastronomique", []string{"gastronom", "haute cuisine", "chef"}},
			{"vue", []string{"rooftop", "panoram", "terrasse avec vue", "=vue"}},
			{"bistronomie", []string{"bistronom", "bistrot", "bistro", "brasserie"}},
			{"international", []string{"japonais", "italien", "asiat", "libanais", "chinois", "thai", "indien", "peruvien", "international", "fusion"}},
		},
		fallback: "classique",
	}
	museumTags = keywordTable{
		rules: []keywordRule{
			{"incontournable", []string{"incontournable", "louvre", "orsay", "=must"}},
			{"art_moderne", []string{"moderne", "contemporain", "pompidou"}},
			{"mode", []string{"=mode", "couture", "fashion"}},
			{"histoire", []string{"histoire", "historique", "chateau", "patrimoine"}},
			{"insolite", []string{"insolite", "secret", "atypique"}},
		},
		fallback: "culture",
	}
	activityTags = keywordTable{
		rules: []keywordRule{
			{domain.SubCategoryHelicopter, []string{"helicoptere", "helicopter"}},
			{domain.SubCategoryCruise, []string{"croisiere", "bateau", "cruise", "peniche"}},
			{domain.SubCategoryCarTour, []string{"voiture", "2cv", "chauffeur", "car tour", "vintage car"}},
			{"oenologie", []string{"oenolog", "degustation", "cave a vin", "wine", "champagne"}},
			{"atelier", []string{"atelier", "=cours", "workshop", "masterclass"}},
			{"visite_guidee", []string{"visite", "guide", "guided"}},
		},
		fallback: "experience",
	}
	nightlifeTags = keywordTable{
		rules: []keywordRule{
			{"cabaret", []string{"cabaret", "moulin rouge", "crazy horse", "lido", "revue"}},
			{"jazz", []string{"jazz", "live music", "concert"}},
			{"club", []string{"club", "discotheque", "=dj"}},
			{"bar", []string{"=bar", "=bars", "cocktail", "speakeasy"}},
		},
		fallback: "bar",
	}
	spaTags = keywordTable{
		rules: []keywordRule{
			{"hammam", []string{"hammam"}},
			{"palace", []string{"palace"}},
		},
		fallback: "spa",
	}
)

// derivation computes the category-specific tag and reservation flag of a record.
type derivation func(r record) (subCategory string, reservationRequired bool)

func fromTable(t keywordTable) derivation {
	return func(r record) (string, bool) {
		return t.match(r), truthy(r[fieldReservation])
	}
}

func constantTag(tag string) derivation {
	return func(r record) (string, bool) {
		return tag, truthy(r[fieldReservation])
	}
}

// Shopping carries no sub-category refinement; its appointment column
// decides whether the visit must be booked.
func shoppingDerivation(r record) (string, bool) {
	return "boutique", truthy(r[fieldAppointment]) || truthy(r[fieldReservation])
}

var derivations = map[domain.Category]derivation{
	domain.CategoryRestaurants: fromTable(restaurantTags),
	domain.CategoryMuseums:     fromTable(museumTags),
	domain.CategoryActivities:  fromTable(activityTags),
	domain.CategoryNightlife:   fromTable(nightlifeTags),
	domain.CategorySpas:        fromTable(spaTags),
	domain.CategoryShopping:    shoppingDerivation,
	domain.CategoryTransport:   constantTag("transport"),
}

var tagTables = map[domain.Category]keywordTable{
	domain.CategoryRestaurants: restaurantTags,
	domain.CategoryMuseums:     museumTags,
	domain.CategoryActivities:  activityTags,
	domain.CategoryNightlife:   nightlifeTags,
	domain.CategorySpas:        spaTags,
}

// SubCategories lists the tags a category can produce, default last.
func SubCategories(category domain.Category) []string {
	switch category {
	case domain.CategoryShopping:
		return []string{"boutique"}
	case domain.CategoryTransport:
		return []string{"transport"}
	}
	t, ok := tagTables[category]
	if !ok {
		return nil
	}
	tags := make([]string, 0, len(t.rules)+1)
	for _, r := range t.rules {
		if r.tag != t.fallback {
			tags = append(tags, r.tag)
		}
	}
	return append(tags, t.fallback)
}
