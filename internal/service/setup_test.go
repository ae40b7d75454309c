package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/alexanderramin/concierge/internal/catalog"
	"github.com/alexanderramin/concierge/internal/db"
	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/alexanderramin/concierge/internal/repository"
	"github.com/alexanderramin/concierge/internal/scheduler"
	"github.com/alexanderramin/concierge/internal/selection"
	"github.com/alexanderramin/concierge/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	db         *sql.DB
	uow        db.UnitOfWork
	programs   repository.ProgramRepo
	exclusions repository.ExclusionRepo
	queries    *selection.Queries
	programSvc ProgramService
	mutations  MutationService
	observer   *recordingObserver
}

func newTestEnv(t *testing.T, loader catalog.Loader) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	env := &testEnv{
		db:         database,
		uow:        testutil.NewTestUoW(database),
		programs:   repository.NewSQLiteProgramRepo(database),
		exclusions: repository.NewSQLiteExclusionRepo(database),
		queries:    selection.New(loader),
		observer:   &recordingObserver{},
	}
	env.programSvc = NewProgramService(env.programs, env.exclusions, env.queries, env.uow,
		WithShuffler(scheduler.NewSeededShuffler(1)),
		WithObserver(env.observer),
	)
	env.mutations = NewMutationService(env.queries, env.uow, scheduler.NewSeededShuffler(2), env.observer)
	return env
}

// parisCatalog holds enough venues of every family for multi-day trips.
func parisCatalog() testutil.StaticLoader {
	return testutil.NewStaticLoader(
		testutil.NewTestVenues(domain.CategoryRestaurants, "Etoile", "etoile", 20),
		testutil.NewTestVenues(domain.CategoryRestaurants, "Bistrot", "bistronomie", 20),
		testutil.NewTestVenues(domain.CategoryMuseums, "Incontournable", "incontournable", 10),
		testutil.NewTestVenues(domain.CategoryMuseums, "Histoire", "histoire", 10),
		testutil.NewTestVenues(domain.CategoryActivities, "Atelier", "atelier", 10),
		testutil.NewTestVenues(domain.CategorySpas, "Spa", "spa", 10),
		testutil.NewTestVenues(domain.CategoryShopping, "Boutique", "boutique", 20),
		testutil.NewTestVenues(domain.CategoryNightlife, "Club", "club", 10),
	)
}

func generate(t *testing.T, env *testEnv, duration int, opts ...testutil.RequestOption) *domain.Program {
	t.Helper()
	p, err := env.programSvc.Generate(context.Background(), testutil.NewTestRequest("u1", duration, opts...))
	require.NoError(t, err)
	return p
}

// slotsIn returns every slot of the program in day order.
func slotsIn(p *domain.Program) []domain.ActivitySlot {
	var out []domain.ActivitySlot
	for _, d := range p.Days {
		out = append(out, d.Activities...)
	}
	return out
}

// firstSlot returns the first slot of category.
func firstSlot(t *testing.T, p *domain.Program, category domain.Category) domain.ActivitySlot {
	t.Helper()
	for _, s := range slotsIn(p) {
		if s.Category == category && !s.IsRest {
			return s
		}
	}
	t.Fatalf("no %s slot in program", category)
	return domain.ActivitySlot{}
}

func optionNames(p *domain.Program) []string {
	var out []string
	for _, s := range slotsIn(p) {
		for _, o := range s.Options {
			out = append(out, o.VenueName)
		}
	}
	return out
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	if len(o.events) == 0 {
		return UseCaseEvent{}
	}
	return o.events[len(o.events)-1]
}
