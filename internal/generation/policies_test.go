package generation

import (
	"testing"
	"time"

	"github.com/alexanderramin/concierge/internal/app"
	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) *time.Time {
	t, _ := time.Parse(dateLayout, s)
	return &t
}

func TestResolveRequestDefaults_HardCoded(t *testing.T) {
	got := ResolveRequestDefaults(app.GenerateRequest{UserID: "u1"}, RequestDefaults{})

	assert.Equal(t, app.DefaultCity, got.City)
	assert.Equal(t, app.DefaultIntensity, got.Intensity)
	assert.Equal(t, app.DefaultDuration, got.Duration)
	assert.Equal(t, app.DefaultGuests, got.Guests)
	assert.Nil(t, got.Seed)
	assert.Nil(t, got.EndDate)
}

func TestResolveRequestDefaults_ConfiguredBeatsHardCoded(t *testing.T) {
	five, four := 5, 4
	seed := uint64(9)
	got := ResolveRequestDefaults(app.GenerateRequest{UserID: "u1"}, RequestDefaults{
		City:      "Lyon",
		Duration:  &five,
		Intensity: "intense",
		Guests:    &four,
		Seed:      &seed,
	})

	assert.Equal(t, "Lyon", got.City)
	assert.Equal(t, domain.IntensityIntense, got.Intensity)
	assert.Equal(t, 5, got.Duration)
	assert.Equal(t, 4, got.Guests)
	require.NotNil(t, got.Seed)
	assert.Equal(t, uint64(9), *got.Seed)
}

func TestResolveRequestDefaults_RequestBeatsConfigured(t *testing.T) {
	five := 5
	reqSeed, cfgSeed := uint64(1), uint64(2)
	req := app.GenerateRequest{
		UserID:    "u1",
		City:      "Paris",
		Duration:  2,
		Intensity: domain.IntensityRelaxed,
		Guests:    1,
		Seed:      &reqSeed,
	}
	got := ResolveRequestDefaults(req, RequestDefaults{City: "Nice", Duration: &five, Seed: &cfgSeed})

	assert.Equal(t, "Paris", got.City)
	assert.Equal(t, 2, got.Duration)
	assert.Equal(t, domain.IntensityRelaxed, got.Intensity)
	assert.Equal(t, 1, got.Guests)
	assert.Equal(t, uint64(1), *got.Seed)
}

func TestResolveRequestDefaults_Dates(t *testing.T) {
	t.Run("duration from start and end", func(t *testing.T) {
		got := ResolveRequestDefaults(app.GenerateRequest{
			StartDate: date("2026-04-10"),
			EndDate:   date("2026-04-13"),
		}, RequestDefaults{})
		assert.Equal(t, 4, got.Duration)
	})

	t.Run("end from start and duration", func(t *testing.T) {
		got := ResolveRequestDefaults(app.GenerateRequest{
			Duration:  3,
			StartDate: date("2026-04-10"),
		}, RequestDefaults{})
		require.NotNil(t, got.EndDate)
		assert.Equal(t, "2026-04-12", got.EndDate.Format(dateLayout))
	})

	t.Run("reversed dates leave duration to defaults", func(t *testing.T) {
		got := ResolveRequestDefaults(app.GenerateRequest{
			StartDate: date("2026-04-10"),
			EndDate:   date("2026-04-01"),
		}, RequestDefaults{})
		assert.Equal(t, app.DefaultDuration, got.Duration)
	})
}

func TestParseDates(t *testing.T) {
	d, err := ParseRequiredDate("2026-02-28", "start_date")
	require.NoError(t, err)
	assert.Equal(t, time.February, d.Month())

	_, err = ParseRequiredDate("28/02/2026", "start_date")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_date")

	none, err := ParseOptionalDate(nil, "end_date")
	require.NoError(t, err)
	assert.Nil(t, none)

	empty := ""
	none, err = ParseOptionalDate(&empty, "end_date")
	require.NoError(t, err)
	assert.Nil(t, none)

	bad := "soon"
	_, err = ParseOptionalDate(&bad, "end_date")
	assert.Error(t, err)
}
