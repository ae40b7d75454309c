package catalog

import (
	"testing"
	"time"

	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/stretchr/testify/assert"
)

func hm(h, m int) int { return h*60 + m }

func TestParseHours_DayRangeAndTimes(t *testing.T) {
	h := ParseHours("Lun-Ven 10h-18h30, Sam 11h-19h", "")

	for _, d := range []time.Weekday{time.Monday, time.Wednesday, time.Friday} {
		assert.Equal(t, []domain.TimeWindow{{Open: hm(10, 0), Close: hm(18, 30)}}, h.Windows[d], d.String())
	}
	assert.Equal(t, []domain.TimeWindow{{Open: hm(11, 0), Close: hm(19, 0)}}, h.Windows[time.Saturday])
	assert.Empty(t, h.Windows[time.Sunday])
	assert.True(t, h.OpenAt(time.Sunday, hm(3, 0)), "unlisted day is unconstrained")
}

func TestParseHours_EveryDayWithTwoServices(t *testing.T) {
	h := ParseHours("7j/7 : 12h-14h30 et 19h30-22h30", "")
	for _, d := range allWeek {
		assert.Len(t, h.Windows[d], 2, d.String())
	}
	assert.False(t, h.OpenAt(time.Tuesday, hm(16, 0)))
	assert.True(t, h.OpenAt(time.Tuesday, hm(20, 0)))
}

func TestParseHours_ClosedClauses(t *testing.T) {
	h := ParseHours("Du mardi au dimanche de 9h à 18h ; fermé le lundi", "")
	assert.True(t, h.Closed[time.Monday])
	assert.Len(t, h.Windows[time.Tuesday], 1)
	assert.Len(t, h.Windows[time.Sunday], 1)
	assert.False(t, h.OpenAt(time.Monday, hm(10, 0)))

	h = ParseHours("Tous les jours sauf le mardi 10:00-18:00", "")
	assert.True(t, h.Closed[time.Tuesday])
	assert.Empty(t, h.Windows[time.Tuesday])
	assert.Len(t, h.Windows[time.Thursday], 1)

	h = ParseHours("", "Dimanche, Lundi")
	assert.True(t, h.Closed[time.Sunday])
	assert.True(t, h.Closed[time.Monday])
}

func TestParseHours_PastMidnight(t *testing.T) {
	h := ParseHours("Jeu-Sam 22h-5h", "")
	assert.True(t, h.OpenAt(time.Friday, hm(23, 30)))
	assert.True(t, h.OpenAt(time.Friday, hm(1, 0)))
	assert.False(t, h.OpenAt(time.Friday, hm(12, 0)))

	h = ParseHours("18h - minuit", "")
	assert.Equal(t, hm(23, 59), h.Windows[time.Monday][0].Close)
}

func TestParseHours_PendingDaysJoinNextClause(t *testing.T) {
	h := ParseHours("Lundi, mercredi 14h-18h", "")
	assert.Len(t, h.Windows[time.Monday], 1)
	assert.Len(t, h.Windows[time.Wednesday], 1)
	assert.Empty(t, h.Windows[time.Tuesday])
}

func TestParseHours_UnrecognisedTextIsUnconstrained(t *testing.T) {
	h := ParseHours("Sur réservation uniquement", "")
	assert.False(t, h.IsStructured())
	assert.Equal(t, "Sur réservation uniquement", h.Text)
	assert.True(t, h.OpenAt(time.Wednesday, hm(15, 0)))
}

func TestFrenchDayName(t *testing.T) {
	assert.Equal(t, "lundi", FrenchDayName(time.Monday))
	assert.Equal(t, "dimanche", FrenchDayName(time.Sunday))
}
