package scheduler

import (
	"time"

	"github.com/alexanderramin/concierge/internal/domain"
)

// Option counts per slot.
const (
	DefaultOptionCount  = 2
	ShoppingOptionCount = 4
)

// coreSlots is the non-meal slot budget per intensity. Lunch and dinner are
// added to every day regardless.
var coreSlots = map[domain.Intensity][]domain.TimeSlot{
	domain.IntensityRelaxed:  {domain.SlotAfternoon},
	domain.IntensityModerate: {domain.SlotMorning, domain.SlotAfternoon},
	domain.IntensityIntense:  {domain.SlotMorning, domain.SlotAfternoon, domain.SlotEvening},
}

// slotFamilies lists the categories suited to each non-meal slot.
var slotFamilies = map[domain.TimeSlot][]domain.Category{
	domain.SlotMorning:   {domain.CategoryMuseums, domain.CategoryActivities, domain.CategorySpas, domain.CategoryShopping},
	domain.SlotAfternoon: {domain.CategoryMuseums, domain.CategoryActivities, domain.CategorySpas, domain.CategoryShopping},
	domain.SlotEvening:   {domain.CategoryNightlife, domain.CategoryActivities},
}

// FamilyOrder is the fixed order in which selected interest families rotate.
var FamilyOrder = []domain.Category{
	domain.CategoryMuseums,
	domain.CategoryActivities,
	domain.CategorySpas,
	domain.CategoryShopping,
	domain.CategoryNightlife,
}

// CoreSlots returns the non-meal slots a day holds at the given intensity.
// Unknown intensities use the moderate budget.
func CoreSlots(intensity domain.Intensity) []domain.TimeSlot {
	if s, ok := coreSlots[intensity]; ok {
		return s
	}
	return coreSlots[domain.IntensityModerate]
}

// OptionCount returns how many options a slot of the category receives.
func OptionCount(category domain.Category) int {
	if category == domain.CategoryShopping {
		return ShoppingOptionCount
	}
	return DefaultOptionCount
}

// AllocationInput carries everything the allocator needs. Pools hold the
// venues already narrowed by interest tags and client exclusions.
type AllocationInput struct {
	Duration  int
	Intensity domain.Intensity
	StartDate *time.Time
	Families  []domain.Category
	Pools     map[domain.Category][]domain.Venue
}

// Allocation is the allocator's output. Themes[i] is the lead category of
// Days[i], empty for a day made only of meals and rest.
type Allocation struct {
	Days   []domain.ProgramDay
	Themes []domain.Category
}

// Allocator builds day-by-day slot plans from venue pools.
type Allocator struct {
	shuffler Shuffler
}

// NewAllocator creates an Allocator. A nil shuffler uses the global source.
func NewAllocator(s Shuffler) *Allocator {
	if s == nil {
		s = DefaultShuffler()
	}
	return &Allocator{shuffler: s}
}

// Allocate lays out in.Duration days. Venue names never repeat across the
// trip and at most one one-shot activity is placed. A slot whose pool is
// exhausted is kept with zero options and flagged for attention.
func (a *Allocator) Allocate(in AllocationInput) Allocation {
	families := orderedFamilies(in.Families)
	pk := newPicker(a.shuffler, nil, false)

	out := Allocation{
		Days:   make([]domain.ProgramDay, 0, in.Duration),
		Themes: make([]domain.Category, 0, in.Duration),
	}
	for d := 0; d < in.Duration; d++ {
		day := domain.ProgramDay{DayNumber: d + 1}
		var date *time.Time
		if in.StartDate != nil {
			t := in.StartDate.AddDate(0, 0, d)
			date = &t
			day.ActualDate = date
		}

		plan := planDay(d, CoreSlots(in.Intensity), families)
		var theme domain.Category
		for _, ts := range domain.TimeSlots {
			category, planned := plan[ts]
			if !planned {
				continue
			}
			if category == "" {
				day.Activities = append(day.Activities, restSlot(ts))
				continue
			}
			if theme == "" && !ts.IsMeal() {
				theme = category
			}
			day.Activities = append(day.Activities, a.fillSlot(pk, ts, category, in.Pools[category], date))
		}
		SortSlots(day.Activities)

		out.Days = append(out.Days, day)
		out.Themes = append(out.Themes, theme)
	}
	return out
}

// planDay maps each slot of day d to its category. Meals are always
// restaurants; a core slot with no selected family maps to "" (rest).
func planDay(d int, core []domain.TimeSlot, families []domain.Category) map[domain.TimeSlot]domain.Category {
	plan := map[domain.TimeSlot]domain.Category{
		domain.SlotLunch:  domain.CategoryRestaurants,
		domain.SlotDinner: domain.CategoryRestaurants,
	}
	usedToday := make(map[domain.Category]bool)
	for k, ts := range core {
		eligible := eligibleFamilies(ts, families)
		if len(eligible) == 0 {
			plan[ts] = ""
			continue
		}
		offset := d + k
		pick := eligible[offset%len(eligible)]
		for i := 0; i < len(eligible); i++ {
			c := eligible[(offset+i)%len(eligible)]
			if !usedToday[c] {
				pick = c
				break
			}
		}
		usedToday[pick] = true
		plan[ts] = pick
	}
	return plan
}

// eligibleFamilies intersects the selected families with those suited to
// the slot, falling back to every selected family when none suit it.
func eligibleFamilies(ts domain.TimeSlot, families []domain.Category) []domain.Category {
	suited := make(map[domain.Category]bool)
	for _, c := range slotFamilies[ts] {
		suited[c] = true
	}
	var out []domain.Category
	for _, c := range families {
		if suited[c] {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return families
	}
	return out
}

// orderedFamilies dedupes the selection and sorts it by FamilyOrder.
func orderedFamilies(selected []domain.Category) []domain.Category {
	want := make(map[domain.Category]bool, len(selected))
	for _, c := range selected {
		want[c] = true
	}
	var out []domain.Category
	for _, c := range FamilyOrder {
		if want[c] {
			out = append(out, c)
		}
	}
	return out
}

func (a *Allocator) fillSlot(pk *picker, ts domain.TimeSlot, category domain.Category, pool []domain.Venue, date *time.Time) domain.ActivitySlot {
	slot := domain.ActivitySlot{
		TimeSlot:           ts,
		Type:               category.SlotType(),
		Category:           category,
		VerificationStatus: domain.VerificationPending,
	}

	candidates, _ := PreferAvailable(pk.eligible(pool), date, ts.DefaultTime(), MinAvailable)
	slot.Options = BuildOptions(pk.take(candidates, OptionCount(category)))
	slot.RefreshVerification()
	return slot
}

func restSlot(ts domain.TimeSlot) domain.ActivitySlot {
	return domain.ActivitySlot{
		TimeSlot:           ts,
		Type:               "free",
		IsRest:             true,
		VerificationStatus: domain.VerificationPending,
	}
}

// BuildOptions turns drawn venues into ranked options, the first selected.
func BuildOptions(venues []domain.Venue) []domain.ActivityOption {
	options := make([]domain.ActivityOption, 0, len(venues))
	for i, v := range venues {
		o := domain.ActivityOption{Rank: i + 1, IsSelected: i == 0}
		o.ApplyVenue(v)
		options = append(options, o)
	}
	return options
}
