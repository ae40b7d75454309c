package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/concierge/internal/app"
	"github.com/alexanderramin/concierge/internal/db"
	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/alexanderramin/concierge/internal/generation"
	"github.com/alexanderramin/concierge/internal/importer"
	"github.com/alexanderramin/concierge/internal/narrative"
	"github.com/alexanderramin/concierge/internal/repository"
	"github.com/alexanderramin/concierge/internal/scheduler"
	"github.com/alexanderramin/concierge/internal/selection"
	"github.com/google/uuid"
)

type programService struct {
	programs   repository.ProgramRepo
	exclusions repository.ExclusionRepo
	queries    *selection.Queries
	uow        db.UnitOfWork
	defaults   generation.RequestDefaults
	shuffler   scheduler.Shuffler
	observer   UseCaseObserver
}

// ProgramServiceOption configures a ProgramService.
type ProgramServiceOption func(*programService)

// WithRequestDefaults sets the configured fallbacks for generate requests.
func WithRequestDefaults(d generation.RequestDefaults) ProgramServiceOption {
	return func(s *programService) {
		s.defaults = d
	}
}

// WithShuffler replaces the random source used when a request carries no seed.
func WithShuffler(sh scheduler.Shuffler) ProgramServiceOption {
	return func(s *programService) {
		if sh != nil {
			s.shuffler = sh
		}
	}
}

// WithObserver sets the use-case observer.
func WithObserver(o UseCaseObserver) ProgramServiceOption {
	return func(s *programService) {
		if o != nil {
			s.observer = o
		}
	}
}

func NewProgramService(
	programs repository.ProgramRepo,
	exclusions repository.ExclusionRepo,
	queries *selection.Queries,
	uow db.UnitOfWork,
	opts ...ProgramServiceOption,
) ProgramService {
	s := &programService{
		programs:   programs,
		exclusions: exclusions,
		queries:    queries,
		uow:        uow,
		shuffler:   scheduler.DefaultShuffler(),
		observer:   NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *programService) Generate(ctx context.Context, req app.GenerateRequest) (program *domain.Program, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user_id": req.UserID}
	defer func() { observeUseCase(ctx, s.observer, "generate-program", startedAt, fields, err) }()

	req = generation.ResolveRequestDefaults(req, s.defaults)
	if errs := app.ValidateGenerateRequest(req); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	fields["city"] = req.City
	fields["duration"] = req.Duration
	fields["intensity"] = string(req.Intensity)

	excluded, err := excludedNames(ctx, s.exclusions, req.UserID)
	if err != nil {
		return nil, err
	}

	families := req.Families()
	shuffler := s.shuffler
	if req.Seed != nil {
		shuffler = scheduler.NewSeededShuffler(*req.Seed)
		fields["seed"] = *req.Seed
	}
	alloc := scheduler.NewAllocator(shuffler).Allocate(scheduler.AllocationInput{
		Duration:  req.Duration,
		Intensity: req.Intensity,
		StartDate: req.StartDate,
		Families:  families,
		Pools:     s.pools(ctx, req, excluded),
	})

	program, err = buildProgram(req, families, alloc)
	if err != nil {
		return nil, err
	}
	fields["program_id"] = program.ID
	fields["needs_attention"] = countNeedsAttention(program)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteProgramRepo(tx).Create(ctx, program)
	})
	if err != nil {
		return nil, err
	}
	return program, nil
}

func (s *programService) GenerateFromFile(ctx context.Context, path string, overrides importer.Overrides) (*domain.Program, error) {
	schema, err := importer.LoadRequestSchema(path)
	if err != nil {
		return nil, err
	}
	overrides.Apply(schema)
	if errs := importer.ValidateRequestSchema(schema); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	req, err := importer.Convert(schema)
	if err != nil {
		return nil, err
	}
	return s.Generate(ctx, req)
}

// pools fetches every category pool the allocator may draw from.
func (s *programService) pools(ctx context.Context, req app.GenerateRequest, excluded selection.NameSet) map[domain.Category][]domain.Venue {
	return map[domain.Category][]domain.Venue{
		domain.CategoryRestaurants: s.queries.Restaurants(ctx, req.RestaurantCategories, excluded),
		domain.CategoryMuseums:     s.queries.Museums(ctx, req.MuseumCategories, excluded),
		domain.CategoryActivities:  s.queries.Activities(ctx, req.ActivityCategories, excluded),
		domain.CategoryNightlife:   s.queries.Nightlife(ctx, req.NightlifeCategories, excluded),
		domain.CategorySpas:        s.queries.Spas(ctx, req.WantsSpa, excluded),
		domain.CategoryShopping:    s.queries.Shopping(ctx, req.WantsShopping, excluded),
	}
}

// excludedNames returns every name the user excluded, whatever its category.
func excludedNames(ctx context.Context, repo repository.ExclusionRepo, userID string) (selection.NameSet, error) {
	list, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading exclusions: %w", err)
	}
	set := make(selection.NameSet, len(list))
	for _, e := range list {
		set.Add(e.VenueName)
	}
	return set, nil
}

// buildProgram assigns ids to the allocation and attaches the fixed copy.
func buildProgram(req app.GenerateRequest, families []domain.Category, alloc scheduler.Allocation) (*domain.Program, error) {
	now := time.Now().UTC()
	p := &domain.Program{
		ID:        uuid.New().String(),
		UserID:    req.UserID,
		City:      req.City,
		Duration:  req.Duration,
		Profile:   req.Profile,
		Intensity: req.Intensity,
		Interests: req.Interests,
		Guests:    req.Guests,
		Status:    domain.ProgramDraft,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		CreatedAt: now,
		UpdatedAt: now,
	}

	text, err := narrative.Program(narrative.Input{
		City:      req.City,
		Duration:  req.Duration,
		Profile:   req.Profile,
		Guests:    req.Guests,
		Intensity: req.Intensity,
		StartDate: req.StartDate,
		Families:  families,
	})
	if err != nil {
		return nil, fmt.Errorf("rendering program copy: %w", err)
	}
	p.Title = text.Title
	p.IntroInternal = text.IntroInternal
	p.IntroClient = text.IntroClient
	p.ClosingInternal = text.ClosingInternal
	p.ClosingClient = text.ClosingClient

	p.Days = alloc.Days
	for i := range p.Days {
		day := &p.Days[i]
		day.ID = uuid.New().String()
		day.ProgramID = p.ID

		theme, err := narrative.Day(alloc.Themes[i], req.City)
		if err != nil {
			return nil, fmt.Errorf("rendering day %d theme: %w", day.DayNumber, err)
		}
		day.ThemeInternal = theme.Internal
		day.ThemeClient = theme.Client

		for j := range day.Activities {
			slot := &day.Activities[j]
			slot.ID = uuid.New().String()
			slot.DayID = day.ID
			assignOptionIDs(slot)
		}
	}
	return p, nil
}

func assignOptionIDs(slot *domain.ActivitySlot) {
	for k := range slot.Options {
		slot.Options[k].ID = uuid.New().String()
		slot.Options[k].OptionGroupID = slot.ID
	}
}

func countNeedsAttention(p *domain.Program) int {
	n := 0
	for _, d := range p.Days {
		for _, s := range d.Activities {
			if s.VerificationStatus == domain.VerificationNeedsAttention {
				n++
			}
		}
	}
	return n
}

func (s *programService) Get(ctx context.Context, id string) (*domain.Program, error) {
	return s.programs.GetByID(ctx, id)
}

func (s *programService) List(ctx context.Context, userID string) ([]repository.ProgramSummary, error) {
	return s.programs.ListByUser(ctx, userID)
}

func (s *programService) Validate(ctx context.Context, id string) (program *domain.Program, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"program_id": id}
	defer func() { observeUseCase(ctx, s.observer, "validate-program", startedAt, fields, err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		programs := repository.NewSQLiteProgramRepo(tx)
		p, err := programs.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if p.Status == domain.ProgramValidated {
			program = p
			return nil
		}
		if err := checkSelections(p); err != nil {
			return err
		}
		p.Status = domain.ProgramValidated
		p.UpdatedAt = time.Now().UTC()
		if err := programs.UpdateHeader(ctx, p); err != nil {
			return err
		}
		program = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return program, nil
}

// checkSelections requires exactly one selected option in every slot that
// is not resting, or one to four in a shopping slot. An empty slot blocks
// validation until it is switched or rested.
func checkSelections(p *domain.Program) error {
	for _, d := range p.Days {
		for _, s := range d.Activities {
			if s.IsRest {
				continue
			}
			if len(s.Options) == 0 {
				return app.InvalidState("day %d %s: no venue to select, switch its type or rest it", d.DayNumber, s.TimeSlot)
			}
			n := len(s.Selected())
			if s.IsShopping() {
				if n < 1 || n > scheduler.ShoppingOptionCount {
					return app.InvalidState("day %d %s: shopping needs 1 to %d selections, has %d",
						d.DayNumber, s.TimeSlot, scheduler.ShoppingOptionCount, n)
				}
				continue
			}
			if n != 1 {
				return app.InvalidState("day %d %s: needs exactly one selection, has %d", d.DayNumber, s.TimeSlot, n)
			}
		}
	}
	return nil
}

func (s *programService) Delete(ctx context.Context, id string) error {
	return s.programs.Delete(ctx, id)
}
