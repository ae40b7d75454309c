package domain

type Category string

const (
	CategoryRestaurants Category = "restaurants"
	CategoryMuseums     Category = "museums"
	CategoryActivities  Category = "activities"
	CategoryNightlife   Category = "nightlife"
	CategorySpas        Category = "spas"
	CategoryShopping    Category = "shopping"
	CategoryTransport   Category = "transport"
)

// Categories lists every venue category in catalog order.
var Categories = []Category{
	CategoryRestaurants,
	CategoryMuseums,
	CategoryActivities,
	CategoryNightlife,
	CategorySpas,
	CategoryShopping,
	CategoryTransport,
}

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"restaurants": true, "museums": true, "activities": true,
	"nightlife": true, "spas": true, "shopping": true, "transport": true,
}

// SlotType returns the slot type label used for slots drawn from c.
func (c Category) SlotType() string {
	switch c {
	case CategoryRestaurants:
		return "dining"
	case CategoryMuseums:
		return "culture"
	case CategoryActivities:
		return "experience"
	case CategoryNightlife:
		return "nightlife"
	case CategorySpas:
		return "wellness"
	case CategoryShopping:
		return "shopping"
	case CategoryTransport:
		return "transport"
	default:
		return "free"
	}
}

type Intensity string

const (
	IntensityRelaxed  Intensity = "relaxed"
	IntensityModerate Intensity = "moderate"
	IntensityIntense  Intensity = "intense"
)

// ValidIntensities is the canonical set of accepted intensity strings.
var ValidIntensities = map[string]bool{
	"relaxed": true, "moderate": true, "intense": true,
}

type ProgramStatus string

const (
	ProgramDraft     ProgramStatus = "draft"
	ProgramValidated ProgramStatus = "validated"
)

type VerificationStatus string

const (
	VerificationPending        VerificationStatus = "pending"
	VerificationNeedsAttention VerificationStatus = "needs_attention"
	VerificationVerified       VerificationStatus = "verified"
)

// Sub-category tags that may appear at most once across a whole trip.
const (
	SubCategoryCarTour    = "voiture"
	SubCategoryCruise     = "croisiere"
	SubCategoryHelicopter = "helicoptere"
)

// OneShotSubCategories is the set of activity tags limited to a single
// placement per program.
var OneShotSubCategories = map[string]bool{
	SubCategoryCarTour:    true,
	SubCategoryCruise:     true,
	SubCategoryHelicopter: true,
}

// IsOneShot reports whether the sub-category is limited to one placement.
func IsOneShot(subCategory string) bool {
	return OneShotSubCategories[subCategory]
}
