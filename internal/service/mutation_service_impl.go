package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/concierge/internal/app"
	"github.com/alexanderramin/concierge/internal/db"
	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/alexanderramin/concierge/internal/repository"
	"github.com/alexanderramin/concierge/internal/scheduler"
	"github.com/alexanderramin/concierge/internal/selection"
	"github.com/google/uuid"
)

type mutationService struct {
	queries  *selection.Queries
	uow      db.UnitOfWork
	shuffler scheduler.Shuffler
	observer UseCaseObserver
}

// NewMutationService creates the edit operations on stored programs. A nil
// shuffler draws from the global random source.
func NewMutationService(
	queries *selection.Queries,
	uow db.UnitOfWork,
	shuffler scheduler.Shuffler,
	observers ...UseCaseObserver,
) MutationService {
	if shuffler == nil {
		shuffler = scheduler.DefaultShuffler()
	}
	return &mutationService{
		queries:  queries,
		uow:      uow,
		shuffler: shuffler,
		observer: useCaseObserverOrNoop(observers),
	}
}

// slotEdit changes a slot of p in place. tx is the enclosing transaction.
type slotEdit func(ctx context.Context, tx db.DBTX, p *domain.Program, slot *domain.ActivitySlot) error

// slotLookup loads the program holding a slot and returns both.
type slotLookup func(ctx context.Context, programs repository.ProgramRepo) (*domain.Program, *domain.ActivitySlot, error)

// editSlot loads the program owning the slot, applies edit and stores the
// slot. Any edit returns a validated program to draft.
func (s *mutationService) editSlot(ctx context.Context, lookup slotLookup, edit slotEdit) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		programs := repository.NewSQLiteProgramRepo(tx)
		p, slot, err := lookup(ctx, programs)
		if err != nil {
			return err
		}
		if err := edit(ctx, tx, p, slot); err != nil {
			return err
		}
		slot.RefreshVerification()
		if err := programs.SaveSlot(ctx, slot); err != nil {
			return err
		}
		return touch(ctx, programs, p)
	})
}

func bySlot(groupID string) slotLookup {
	return func(ctx context.Context, programs repository.ProgramRepo) (*domain.Program, *domain.ActivitySlot, error) {
		programID, err := programs.ProgramIDBySlot(ctx, groupID)
		if err != nil {
			return nil, nil, err
		}
		p, err := programs.GetByID(ctx, programID)
		if err != nil {
			return nil, nil, err
		}
		slot := p.Slot(groupID)
		if slot == nil {
			return nil, nil, fmt.Errorf("activity slot %s: %w", groupID, repository.ErrNotFound)
		}
		return p, slot, nil
	}
}

func byOption(optionID string) slotLookup {
	return func(ctx context.Context, programs repository.ProgramRepo) (*domain.Program, *domain.ActivitySlot, error) {
		programID, err := programs.ProgramIDByOption(ctx, optionID)
		if err != nil {
			return nil, nil, err
		}
		p, err := programs.GetByID(ctx, programID)
		if err != nil {
			return nil, nil, err
		}
		slot := p.SlotForOption(optionID)
		if slot == nil {
			return nil, nil, fmt.Errorf("activity option %s: %w", optionID, repository.ErrNotFound)
		}
		return p, slot, nil
	}
}

func touch(ctx context.Context, programs repository.ProgramRepo, p *domain.Program) error {
	p.Status = domain.ProgramDraft
	p.UpdatedAt = time.Now().UTC()
	return programs.UpdateHeader(ctx, p)
}

func (s *mutationService) SelectOption(ctx context.Context, groupID, optionID string) (*domain.ActivitySlot, error) {
	return s.SelectOptions(ctx, groupID, []string{optionID})
}

func (s *mutationService) SelectOptions(ctx context.Context, groupID string, optionIDs []string) (slot *domain.ActivitySlot, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"group_id": groupID, "count": len(optionIDs)}
	defer func() { observeUseCase(ctx, s.observer, "select-options", startedAt, fields, err) }()

	err = s.editSlot(ctx, bySlot(groupID), func(_ context.Context, _ db.DBTX, _ *domain.Program, sl *domain.ActivitySlot) error {
		want := make(map[string]bool, len(optionIDs))
		for _, id := range optionIDs {
			if sl.Option(id) == nil {
				return app.InvalidSelection("option %s does not belong to slot %s", id, groupID)
			}
			want[id] = true
		}
		limit := 1
		if sl.IsShopping() {
			limit = scheduler.ShoppingOptionCount
		}
		if len(want) < 1 || len(want) > limit {
			return app.InvalidSelection("slot %s takes 1 to %d selections, got %d", groupID, limit, len(want))
		}
		for i := range sl.Options {
			sl.Options[i].IsSelected = want[sl.Options[i].ID]
		}
		slot = sl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *mutationService) RegenerateOption(ctx context.Context, optionID string) (venue domain.Venue, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"option_id": optionID}
	defer func() { observeUseCase(ctx, s.observer, "regenerate-option", startedAt, fields, err) }()

	err = s.editSlot(ctx, byOption(optionID), func(ctx context.Context, tx db.DBTX, p *domain.Program, slot *domain.ActivitySlot) error {
		excluded, err := excludedNames(ctx, repository.NewSQLiteExclusionRepo(tx), p.UserID)
		if err != nil {
			return err
		}
		pool := s.queries.All(ctx, slot.Category, excluded)
		candidates := scheduler.RegenerationCandidates(p, optionID, pool, excluded)
		fields["candidates"] = len(candidates)

		v, ok := scheduler.PickReplacement(s.shuffler, candidates)
		if !ok {
			return app.NoAlternatives("no other %s venue is available", slot.Category)
		}
		slot.Option(optionID).ApplyVenue(v)
		venue = v
		return nil
	})
	if err != nil {
		return domain.Venue{}, err
	}
	fields["venue"] = venue.Name
	return venue, nil
}

func (s *mutationService) SwitchActivityType(ctx context.Context, groupID string, category domain.Category, dayDate *time.Time, slotTime string) (options []domain.ActivityOption, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"group_id": groupID, "category": string(category)}
	defer func() { observeUseCase(ctx, s.observer, "switch-activity-type", startedAt, fields, err) }()

	if !domain.ValidCategories[string(category)] {
		return nil, &app.RequestError{Field: "category", Message: fmt.Sprintf("invalid value %q", category)}
	}
	if slotTime != "" {
		if _, err := domain.ParseClock(slotTime); err != nil {
			return nil, &app.RequestError{Field: "time", Message: err.Error()}
		}
	}

	err = s.editSlot(ctx, bySlot(groupID), func(ctx context.Context, tx db.DBTX, p *domain.Program, slot *domain.ActivitySlot) error {
		excluded, err := excludedNames(ctx, repository.NewSQLiteExclusionRepo(tx), p.UserID)
		if err != nil {
			return err
		}
		date := dayDate
		if date == nil {
			if day := p.DayOf(groupID); day != nil {
				date = day.ActualDate
			}
		}
		hhmm := slotTime
		if hhmm == "" {
			hhmm = slot.EffectiveTime()
		}

		pool := s.queries.All(ctx, category, excluded)
		drawn := scheduler.SwitchDraw(s.shuffler, p, groupID, category, pool, excluded, date, hhmm)
		if len(drawn) == 0 {
			return app.NoVenues("no %s venue is available for this slot", category)
		}

		slot.Category = category
		slot.Type = category.SlotType()
		slot.IsRest = false
		slot.Options = scheduler.BuildOptions(drawn)
		assignOptionIDs(slot)
		options = slot.Options
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["options"] = len(options)
	return options, nil
}

func (s *mutationService) ToggleRest(ctx context.Context, groupID string) (rest bool, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"group_id": groupID}
	defer func() { observeUseCase(ctx, s.observer, "toggle-rest", startedAt, fields, err) }()

	err = s.editSlot(ctx, bySlot(groupID), func(_ context.Context, _ db.DBTX, _ *domain.Program, slot *domain.ActivitySlot) error {
		slot.IsRest = !slot.IsRest
		rest = slot.IsRest
		return nil
	})
	fields["is_rest"] = rest
	return rest, err
}

func (s *mutationService) AdjustTime(ctx context.Context, groupID, hhmm string) (slot *domain.ActivitySlot, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"group_id": groupID, "time": hhmm}
	defer func() { observeUseCase(ctx, s.observer, "adjust-time", startedAt, fields, err) }()

	var normalized *string
	if strings.TrimSpace(hhmm) != "" {
		m, err := domain.ParseClock(hhmm)
		if err != nil {
			return nil, &app.RequestError{Field: "time", Message: err.Error()}
		}
		clock := domain.FormatClock(m)
		normalized = &clock
	}

	err = s.editSlot(ctx, bySlot(groupID), func(_ context.Context, _ db.DBTX, _ *domain.Program, sl *domain.ActivitySlot) error {
		sl.Time = normalized
		slot = sl
		return nil
	})
	if err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *mutationService) UpdateNotes(ctx context.Context, groupID, notes string) error {
	return s.editSlot(ctx, bySlot(groupID), func(_ context.Context, _ db.DBTX, _ *domain.Program, slot *domain.ActivitySlot) error {
		slot.ConciergeNotes = strings.TrimSpace(notes)
		return nil
	})
}

func (s *mutationService) UpdateDayTheme(ctx context.Context, dayID, internal, client string) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		programs := repository.NewSQLiteProgramRepo(tx)
		programID, err := programs.ProgramIDByDay(ctx, dayID)
		if err != nil {
			return err
		}
		p, err := programs.GetByID(ctx, programID)
		if err != nil {
			return err
		}
		for i := range p.Days {
			day := &p.Days[i]
			if day.ID != dayID {
				continue
			}
			day.ThemeInternal = domain.CoalesceStr(strings.TrimSpace(internal), day.ThemeInternal)
			day.ThemeClient = domain.CoalesceStr(strings.TrimSpace(client), day.ThemeClient)
			if err := programs.UpdateDay(ctx, day); err != nil {
				return err
			}
			return touch(ctx, programs, p)
		}
		return fmt.Errorf("program day %s: %w", dayID, repository.ErrNotFound)
	})
}

func (s *mutationService) ExcludeVenue(ctx context.Context, userID, venueName string, category domain.Category, reason string) (exclusion *domain.VenueExclusion, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"user_id": userID, "venue": venueName, "category": string(category)}
	defer func() { observeUseCase(ctx, s.observer, "exclude-venue", startedAt, fields, err) }()

	switch {
	case userID == "":
		return nil, &app.RequestError{Field: "user_id", Message: "is required"}
	case strings.TrimSpace(venueName) == "":
		return nil, &app.RequestError{Field: "venue_name", Message: "is required"}
	case !domain.ValidCategories[string(category)]:
		return nil, &app.RequestError{Field: "category", Message: fmt.Sprintf("invalid value %q", category)}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		exclusions := repository.NewSQLiteExclusionRepo(tx)
		e := &domain.VenueExclusion{
			ID:        uuid.New().String(),
			UserID:    userID,
			VenueName: strings.TrimSpace(venueName),
			Category:  category,
			Reason:    strings.TrimSpace(reason),
			CreatedAt: time.Now().UTC(),
		}
		added, err := exclusions.Add(ctx, e)
		if err != nil {
			return err
		}
		fields["added"] = added
		if added {
			exclusion = e
			return nil
		}
		exclusion, err = exclusions.Find(ctx, userID, venueName, category)
		return err
	})
	if err != nil {
		return nil, err
	}
	return exclusion, nil
}
