package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/concierge/internal/db"
	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/alexanderramin/concierge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededProgram(t *testing.T) *domain.Program {
	t.Helper()
	start := time.Date(2026, 6, 12, 0, 0, 0, 0, time.UTC)
	p := testutil.NewTestProgram("u1", 2,
		testutil.WithSlot(1, domain.SlotLunch, domain.CategoryRestaurants,
			testutil.NewTestVenue(domain.CategoryRestaurants, "Le Cinq", testutil.WithSubCategory("etoile"), testutil.WithReservation()),
			testutil.NewTestVenue(domain.CategoryRestaurants, "Les Ombres", testutil.WithEiffelView()),
		),
		testutil.WithSlot(1, domain.SlotMorning, domain.CategoryMuseums,
			testutil.NewTestVenue(domain.CategoryMuseums, "Musee Rodin")),
		testutil.WithSlot(2, domain.SlotAfternoon, domain.CategoryMuseums),
		testutil.WithProgramStart(start),
	)
	end := start.AddDate(0, 0, 1)
	p.EndDate = &end
	p.Interests = []string{"art", "gastronomie"}
	p.Days[0].ThemeInternal = "Art et gastronomie"
	p.Days[1].Activities = append(p.Days[1].Activities, domain.ActivitySlot{
		ID:                 "rest-1",
		DayID:              p.Days[1].ID,
		TimeSlot:           domain.SlotMorning,
		Type:               "free",
		IsRest:             true,
		VerificationStatus: domain.VerificationPending,
	})
	return p
}

func TestProgramRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteProgramRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := seededProgram(t)
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, []string{"art", "gastronomie"}, got.Interests)
	assert.Equal(t, domain.ProgramDraft, got.Status)
	require.NotNil(t, got.StartDate)
	assert.Equal(t, "2026-06-12", got.StartDate.Format(dateLayout))
	require.NotNil(t, got.EndDate)
	assert.Equal(t, "2026-06-13", got.EndDate.Format(dateLayout))
	assert.WithinDuration(t, p.CreatedAt, got.CreatedAt, time.Second)
	require.NoError(t, got.CheckDays())

	day1 := got.Days[0]
	assert.Equal(t, "Art et gastronomie", day1.ThemeInternal)
	require.NotNil(t, day1.ActualDate)
	require.Len(t, day1.Activities, 2)
	assert.Equal(t, domain.SlotMorning, day1.Activities[0].TimeSlot, "slots come back in day order")

	lunch := day1.Activities[1]
	require.Len(t, lunch.Options, 2)
	assert.Equal(t, "Le Cinq", lunch.Options[0].VenueName)
	assert.True(t, lunch.Options[0].IsSelected)
	assert.True(t, lunch.Options[0].ReservationRequired)
	assert.Equal(t, "etoile", lunch.Options[0].SubCategory)
	assert.False(t, lunch.Options[1].IsSelected)
	assert.True(t, lunch.Options[1].IsEiffelView)

	day2 := got.Days[1].Activities
	require.Len(t, day2, 2)
	assert.True(t, day2[0].IsRest)
	assert.Equal(t, domain.VerificationNeedsAttention, day2[1].VerificationStatus)
	assert.Empty(t, day2[1].Options)
}

func TestProgramRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteProgramRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgramRepo_ListByUser(t *testing.T) {
	repo := NewSQLiteProgramRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	older := testutil.NewTestProgram("u1", 1)
	older.CreatedAt = older.CreatedAt.Add(-time.Hour)
	newer := testutil.NewTestProgram("u1", 3, testutil.WithProgramStatus(domain.ProgramValidated))
	other := testutil.NewTestProgram("u2", 1)
	for _, p := range []*domain.Program{older, newer, other} {
		require.NoError(t, repo.Create(ctx, p))
	}

	list, err := repo.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, domain.ProgramValidated, list[0].Status)
	assert.Equal(t, 3, list[0].Duration)
	assert.Equal(t, older.ID, list[1].ID)

	none, err := repo.ListByUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestProgramRepo_UpdateHeader(t *testing.T) {
	repo := NewSQLiteProgramRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProgram("u1", 1)
	require.NoError(t, repo.Create(ctx, p))

	p.Status = domain.ProgramValidated
	p.Title = "Paris, trois jours"
	p.ClosingClient = "A bientot"
	p.UpdatedAt = p.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.UpdateHeader(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProgramValidated, got.Status)
	assert.Equal(t, "Paris, trois jours", got.Title)
	assert.Equal(t, "A bientot", got.ClosingClient)

	missing := testutil.NewTestProgram("u1", 1)
	assert.ErrorIs(t, repo.UpdateHeader(ctx, missing), ErrNotFound)
}

func TestProgramRepo_UpdateDay(t *testing.T) {
	repo := NewSQLiteProgramRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProgram("u1", 2)
	require.NoError(t, repo.Create(ctx, p))

	day := p.Days[1]
	day.ThemeInternal = "Rive gauche"
	day.ThemeClient = "Saint-Germain"
	require.NoError(t, repo.UpdateDay(ctx, &day))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rive gauche", got.Days[1].ThemeInternal)
	assert.Equal(t, "Saint-Germain", got.Days[1].ThemeClient)
	assert.Empty(t, got.Days[0].ThemeInternal)
}

func TestProgramRepo_SaveSlotReplacesOptions(t *testing.T) {
	repo := NewSQLiteProgramRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := seededProgram(t)
	require.NoError(t, repo.Create(ctx, p))

	slot := p.Days[0].Activities[0]
	require.Equal(t, domain.SlotLunch, slot.TimeSlot)
	at := "13:15"
	slot.Time = &at
	slot.ConciergeNotes = "Table en terrasse"
	slot.Options = slot.Options[1:]
	slot.Options[0].IsSelected = true
	slot.Options[0].Rank = 1
	require.NoError(t, repo.SaveSlot(ctx, &slot))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	saved := got.Slot(slot.ID)
	require.NotNil(t, saved)
	require.NotNil(t, saved.Time)
	assert.Equal(t, "13:15", *saved.Time)
	assert.Equal(t, "Table en terrasse", saved.ConciergeNotes)
	require.Len(t, saved.Options, 1)
	assert.Equal(t, "Les Ombres", saved.Options[0].VenueName)
	assert.True(t, saved.Options[0].IsSelected)

	slot.Time = nil
	require.NoError(t, repo.SaveSlot(ctx, &slot))
	got, err = repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Slot(slot.ID).Time)
}

func TestProgramRepo_SaveSlot_NotFound(t *testing.T) {
	repo := NewSQLiteProgramRepo(testutil.NewTestDB(t))
	slot := testutil.NewTestSlot("day", domain.SlotLunch, domain.CategoryRestaurants)
	assert.ErrorIs(t, repo.SaveSlot(context.Background(), &slot), ErrNotFound)
}

func TestProgramRepo_DeleteCascades(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLiteProgramRepo(database)
	ctx := context.Background()

	p := seededProgram(t)
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))

	for _, table := range []string{"program_days", "activity_slots", "activity_options"} {
		var n int
		require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
		assert.Zero(t, n, table)
	}
	assert.ErrorIs(t, repo.Delete(ctx, p.ID), ErrNotFound)
}

func TestProgramRepo_CreateWithinTxRollsBack(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	p := seededProgram(t)
	p.Days[1].DayNumber = 1 // violates UNIQUE(program_id, day_number)

	uow := testutil.NewTestUoW(database)
	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return NewSQLiteProgramRepo(tx).Create(ctx, p)
	})
	require.Error(t, err)

	_, err = NewSQLiteProgramRepo(database).GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProgramRepo_ProgramIDLookups(t *testing.T) {
	repo := NewSQLiteProgramRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := seededProgram(t)
	require.NoError(t, repo.Create(ctx, p))
	lunch := p.Days[0].Activities[1]

	got, err := repo.ProgramIDBySlot(ctx, lunch.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got)

	got, err = repo.ProgramIDByOption(ctx, lunch.Options[1].ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got)

	got, err = repo.ProgramIDByDay(ctx, p.Days[1].ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, got)

	_, err = repo.ProgramIDBySlot(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.ProgramIDByOption(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.ProgramIDByDay(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
