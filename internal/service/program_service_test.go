package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/concierge/internal/app"
	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/alexanderramin/concierge/internal/generation"
	"github.com/alexanderramin/concierge/internal/importer"
	"github.com/alexanderramin/concierge/internal/repository"
	"github.com/alexanderramin/concierge/internal/selection"
	"github.com/alexanderramin/concierge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_ThreeDayParisExample(t *testing.T) {
	env := newTestEnv(t, parisCatalog())
	ctx := context.Background()

	req := testutil.NewTestRequest("u1", 3,
		testutil.WithIntensity(domain.IntensityRelaxed),
		testutil.WithRestaurants("etoile"),
		testutil.WithMuseums("incontournable"),
		testutil.WithNightlife("aucun"),
	)
	p, err := env.programSvc.Generate(ctx, req)
	require.NoError(t, err)

	require.Len(t, p.Days, 3)
	for _, d := range p.Days {
		require.Len(t, d.Activities, 3, "day %d", d.DayNumber)
		nonMeal := 0
		for _, s := range d.Activities {
			assert.NotContains(t, []domain.Category{domain.CategoryShopping, domain.CategoryNightlife, domain.CategorySpas}, s.Category)
			if s.TimeSlot.IsMeal() {
				assert.Equal(t, domain.CategoryRestaurants, s.Category)
				require.NotEmpty(t, s.Options)
				for _, o := range s.Options {
					assert.Equal(t, "etoile", o.SubCategory, o.VenueName)
				}
				continue
			}
			nonMeal++
			assert.Equal(t, domain.CategoryMuseums, s.Category)
			require.NotEmpty(t, s.Options)
			for _, o := range s.Options {
				assert.Equal(t, "incontournable", o.SubCategory, o.VenueName)
			}
		}
		assert.Equal(t, 1, nonMeal, "day %d", d.DayNumber)
	}

	stored, err := env.programSvc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, optionNames(p), optionNames(stored))
	assert.Equal(t, "Paris, 3 jours d'exception", stored.Title)
	assert.Equal(t, "Culture et musées", stored.Days[0].ThemeInternal)
}

func TestGenerate_VenueNamesUniqueAcrossTrip(t *testing.T) {
	env := newTestEnv(t, parisCatalog())
	p := generate(t, env, 4,
		testutil.WithIntensity(domain.IntensityIntense),
		testutil.WithRestaurants("etoile", "bistronomie"),
		testutil.WithMuseums("histoire"),
		testutil.WithActivities("atelier"),
		testutil.WithNightlife("club"),
		testutil.WithSpa(),
		testutil.WithShopping(),
	)

	seen := make(map[string]bool)
	for _, name := range optionNames(p) {
		key := strings.ToLower(name)
		assert.False(t, seen[key], "duplicate venue %q", name)
		seen[key] = true
	}
}

func TestGenerate_SlotCountPerIntensity(t *testing.T) {
	tests := []struct {
		intensity domain.Intensity
		nonMeal   int
	}{
		{domain.IntensityRelaxed, 1},
		{domain.IntensityModerate, 2},
		{domain.IntensityIntense, 3},
	}
	for _, tt := range tests {
		t.Run(string(tt.intensity), func(t *testing.T) {
			env := newTestEnv(t, parisCatalog())
			p := generate(t, env, 2,
				testutil.WithIntensity(tt.intensity),
				testutil.WithMuseums("histoire"),
				testutil.WithNightlife("club"),
			)
			for _, d := range p.Days {
				assert.Len(t, d.Activities, 2+tt.nonMeal, "day %d", d.DayNumber)
			}
		})
	}
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	env := newTestEnv(t, parisCatalog())
	opts := []testutil.RequestOption{testutil.WithMuseums("histoire"), testutil.WithSpa(), testutil.WithSeed(77)}

	a := generate(t, env, 2, opts...)
	b := generate(t, env, 2, opts...)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, optionNames(a), optionNames(b))
}

func TestGenerate_EmptyPoolFlagsSlot(t *testing.T) {
	env := newTestEnv(t, parisCatalog())
	p := generate(t, env, 1, testutil.WithRestaurants("gastronomique"), testutil.WithMuseums("histoire"))

	for _, s := range slotsIn(p) {
		if s.TimeSlot.IsMeal() {
			assert.Empty(t, s.Options)
			assert.Equal(t, domain.VerificationNeedsAttention, s.VerificationStatus)
		}
	}
	assert.Equal(t, 2, env.observer.last().Fields["needs_attention"])
}

func TestGenerate_DatesAndDefaults(t *testing.T) {
	env := newTestEnv(t, parisCatalog())
	start := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)
	p := generate(t, env, 3, testutil.WithStartDate(start))

	require.NotNil(t, p.EndDate)
	assert.Equal(t, "2026-05-06", p.EndDate.Format("2006-01-02"))
	require.NotNil(t, p.Days[2].ActualDate)
	assert.Equal(t, 6, p.Days[2].ActualDate.Day())
	assert.Equal(t, app.DefaultCity, p.City)
	assert.Equal(t, domain.ProgramDraft, p.Status)
}

func TestGenerate_ConfiguredDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	five := 5
	svc := NewProgramService(
		repository.NewSQLiteProgramRepo(database),
		repository.NewSQLiteExclusionRepo(database),
		selection.New(parisCatalog()),
		testutil.NewTestUoW(database),
		WithRequestDefaults(generation.RequestDefaults{City: "Lyon", Duration: &five}),
	)

	req := testutil.NewTestRequest("u1", 0)
	req.City = ""
	p, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Lyon", p.City)
	assert.Len(t, p.Days, 5)
}

func TestGenerate_InvalidRequest(t *testing.T) {
	env := newTestEnv(t, parisCatalog())
	req := testutil.NewTestRequest("", 40, testutil.WithMuseums("sculpture"))
	req.Intensity = "frantic"

	_, err := env.programSvc.Generate(context.Background(), req)
	require.Error(t, err)
	for _, field := range []string{"user_id", "duration", "intensity", "museum_categories"} {
		assert.Contains(t, err.Error(), field)
	}
	var re *app.RequestError
	assert.True(t, errors.As(err, &re))

	event := env.observer.last()
	assert.Equal(t, "generate-program", event.Name)
	assert.False(t, event.Success)
}

func TestGenerate_RollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	injected := errors.New("disk full")
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: injected}
	programs := repository.NewSQLiteProgramRepo(database)
	svc := NewProgramService(programs, repository.NewSQLiteExclusionRepo(database), selection.New(parisCatalog()), uow)

	_, err := svc.Generate(context.Background(), testutil.NewTestRequest("u1", 2, testutil.WithMuseums("histoire")))
	require.ErrorIs(t, err, injected)

	list, err := programs.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, list)

	var days int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM program_days`).Scan(&days))
	assert.Zero(t, days)
}

func TestGenerateFromFile(t *testing.T) {
	env := newTestEnv(t, parisCatalog())
	path := filepath.Join(t.TempDir(), "request.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`city: Paris
duration: 2
intensity: relaxed
start_date: "2026-03-02"
preferences:
  restaurants: [etoile]
  spa: true
`), 0o644))

	p, err := env.programSvc.GenerateFromFile(context.Background(), path, importer.Overrides{UserID: "u9"})
	require.NoError(t, err)
	assert.Equal(t, "u9", p.UserID)
	assert.Len(t, p.Days, 2)
	assert.Equal(t, domain.CategorySpas, firstSlot(t, p, domain.CategorySpas).Category)

	_, err = env.programSvc.GenerateFromFile(context.Background(), path, importer.Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user_id")
}

func TestProgramService_ListAndDelete(t *testing.T) {
	env := newTestEnv(t, parisCatalog())
	ctx := context.Background()
	a := generate(t, env, 1)
	generate(t, env, 2)

	list, err := env.programSvc.List(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	require.NoError(t, env.programSvc.Delete(ctx, a.ID))
	_, err = env.programSvc.Get(ctx, a.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.ErrorIs(t, env.programSvc.Delete(ctx, a.ID), repository.ErrNotFound)
}

func TestValidate(t *testing.T) {
	env := newTestEnv(t, parisCatalog())
	ctx := context.Background()

	t.Run("complete selection validates", func(t *testing.T) {
		p := generate(t, env, 2, testutil.WithShopping())
		got, err := env.programSvc.Validate(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ProgramValidated, got.Status)

		again, err := env.programSvc.Validate(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ProgramValidated, again.Status)
	})

	t.Run("slot without selection is rejected", func(t *testing.T) {
		p := generate(t, env, 1, testutil.WithMuseums("histoire"))
		slot := firstSlot(t, p, domain.CategoryMuseums)
		for i := range slot.Options {
			slot.Options[i].IsSelected = false
		}
		require.NoError(t, env.programs.SaveSlot(ctx, &slot))

		_, err := env.programSvc.Validate(ctx, p.ID)
		assert.True(t, app.IsMutationCode(err, app.ErrInvalidState), "got %v", err)

		stored, err := env.programSvc.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ProgramDraft, stored.Status)
	})

	t.Run("empty slot blocks until rested", func(t *testing.T) {
		p := generate(t, env, 1, testutil.WithRestaurants("gastronomique"))
		_, err := env.programSvc.Validate(ctx, p.ID)
		assert.True(t, app.IsMutationCode(err, app.ErrInvalidState), "got %v", err)

		for _, s := range slotsIn(p) {
			if !s.IsRest && len(s.Options) == 0 {
				_, err := env.mutations.ToggleRest(ctx, s.ID)
				require.NoError(t, err)
			}
		}
		got, err := env.programSvc.Validate(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ProgramValidated, got.Status)
	})

	t.Run("unknown program", func(t *testing.T) {
		_, err := env.programSvc.Validate(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
