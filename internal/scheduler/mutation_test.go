package scheduler

import (
	"testing"

	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/alexanderramin/concierge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(venues []domain.Venue) []string {
	out := make([]string, 0, len(venues))
	for _, v := range venues {
		out = append(out, v.Name)
	}
	return out
}

func TestRegenerationCandidates_SkipsUsedAndExcluded(t *testing.T) {
	pool := testutil.NewTestVenues(domain.CategoryRestaurants, "Table", "etoile", 5)
	p := testutil.NewTestProgram("u1", 2,
		testutil.WithSlot(1, domain.SlotLunch, domain.CategoryRestaurants, pool[0], pool[1]),
		testutil.WithSlot(2, domain.SlotDinner, domain.CategoryRestaurants, pool[2]),
	)
	optionID := p.Days[0].Activities[0].Options[0].ID

	got := RegenerationCandidates(p, optionID, pool, map[string]bool{domain.NameKey("TABLE 4"): true})
	assert.Equal(t, []string{"Table 5"}, names(got))
}

func TestRegenerationCandidates_UnknownOption(t *testing.T) {
	p := testutil.NewTestProgram("u1", 1)
	assert.Nil(t, RegenerationCandidates(p, "missing", testutil.NewTestVenues(domain.CategoryMuseums, "M", "histoire", 3), nil))
}

func TestRegenerationCandidates_OneShotBudget(t *testing.T) {
	heli := testutil.NewTestVenues(domain.CategoryActivities, "Vol", domain.SubCategoryHelicopter, 2)
	regular := testutil.NewTestVenues(domain.CategoryActivities, "Cours", "oenologie", 2)
	pool := append(append([]domain.Venue{}, heli...), regular...)

	t.Run("another one-shot elsewhere blocks one-shots", func(t *testing.T) {
		p := testutil.NewTestProgram("u1", 2,
			testutil.WithSlot(1, domain.SlotAfternoon, domain.CategoryActivities, heli[0]),
			testutil.WithSlot(2, domain.SlotAfternoon, domain.CategoryActivities, regular[0]),
		)
		optionID := p.Days[1].Activities[0].Options[0].ID
		got := RegenerationCandidates(p, optionID, pool, nil)
		assert.Equal(t, []string{"Cours 2"}, names(got))
	})

	t.Run("replacing the one-shot itself may draw another", func(t *testing.T) {
		p := testutil.NewTestProgram("u1", 1,
			testutil.WithSlot(1, domain.SlotAfternoon, domain.CategoryActivities, heli[0]),
		)
		optionID := p.Days[0].Activities[0].Options[0].ID
		got := RegenerationCandidates(p, optionID, pool, nil)
		assert.ElementsMatch(t, []string{"Vol 2", "Cours 1", "Cours 2"}, names(got))
	})
}

func TestPickReplacement(t *testing.T) {
	_, ok := PickReplacement(NewSeededShuffler(1), nil)
	assert.False(t, ok)

	pool := testutil.NewTestVenues(domain.CategorySpas, "Soin", "spa", 3)
	v, ok := PickReplacement(NewSeededShuffler(1), pool)
	require.True(t, ok)
	assert.Contains(t, names(pool), v.Name)
}

func TestSwitchDraw_ReusesOwnSlotButNotOthers(t *testing.T) {
	museums := testutil.NewTestVenues(domain.CategoryMuseums, "Galerie", "histoire", 4)
	p := testutil.NewTestProgram("u1", 1,
		testutil.WithSlot(1, domain.SlotMorning, domain.CategoryMuseums, museums[0], museums[1]),
		testutil.WithSlot(1, domain.SlotAfternoon, domain.CategoryMuseums, museums[2]),
	)
	groupID := p.Days[0].Activities[0].ID

	for seed := uint64(0); seed < 20; seed++ {
		got := SwitchDraw(NewSeededShuffler(seed), p, groupID, domain.CategoryMuseums, museums,
			map[string]bool{domain.NameKey("Galerie 4"): true}, nil, "10:00")
		assert.ElementsMatch(t, []string{"Galerie 1", "Galerie 2"}, names(got), "seed %d", seed)
	}
}

func TestSwitchDraw_ShoppingDrawsFour(t *testing.T) {
	shops := testutil.NewTestVenues(domain.CategoryShopping, "Maison", "boutique", 10)
	p := testutil.NewTestProgram("u1", 1,
		testutil.WithSlot(1, domain.SlotAfternoon, domain.CategoryMuseums,
			testutil.NewTestVenue(domain.CategoryMuseums, "Galerie")),
	)
	groupID := p.Days[0].Activities[0].ID

	got := SwitchDraw(NewSeededShuffler(3), p, groupID, domain.CategoryShopping, shops, nil, nil, "15:00")
	assert.Len(t, got, ShoppingOptionCount)
}

func TestSwitchDraw_AvailabilityFallsBackWhenTooFewOpen(t *testing.T) {
	closed := testutil.NewTestVenues(domain.CategoryMuseums, "Shut", "histoire", 3, testutil.WithHours("Fermé le dimanche"))
	open := testutil.NewTestVenue(domain.CategoryMuseums, "Open")
	pool := append(append([]domain.Venue{}, closed...), open)

	p := testutil.NewTestProgram("u1", 1,
		testutil.WithSlot(1, domain.SlotAfternoon, domain.CategoryActivities,
			testutil.NewTestVenue(domain.CategoryActivities, "Cours")),
		testutil.WithProgramStart(sunday),
	)
	groupID := p.Days[0].Activities[0].ID

	got := SwitchDraw(NewSeededShuffler(1), p, groupID, domain.CategoryMuseums, pool, nil, p.Days[0].ActualDate, "15:00")
	assert.Len(t, got, DefaultOptionCount, "a single open venue is not enough, so closed ones are offered too")
}
