package service

import (
	"context"
	"time"

	"github.com/alexanderramin/concierge/internal/app"
	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/alexanderramin/concierge/internal/importer"
	"github.com/alexanderramin/concierge/internal/repository"
)

type ProgramService interface {
	// Generate validates the request, allocates venues and stores the
	// resulting draft program.
	Generate(ctx context.Context, req app.GenerateRequest) (*domain.Program, error)
	// GenerateFromFile reads a JSON or YAML request document and generates
	// a program from it.
	GenerateFromFile(ctx context.Context, path string, overrides importer.Overrides) (*domain.Program, error)
	Get(ctx context.Context, id string) (*domain.Program, error)
	List(ctx context.Context, userID string) ([]repository.ProgramSummary, error)
	// Validate moves a draft to validated once every filled slot has a
	// complete selection.
	Validate(ctx context.Context, id string) (*domain.Program, error)
	Delete(ctx context.Context, id string) error
}

type MutationService interface {
	SelectOption(ctx context.Context, groupID, optionID string) (*domain.ActivitySlot, error)
	// SelectOptions selects 1 to 4 options of a shopping slot. Other slots
	// accept exactly one id.
	SelectOptions(ctx context.Context, groupID string, optionIDs []string) (*domain.ActivitySlot, error)
	RegenerateOption(ctx context.Context, optionID string) (domain.Venue, error)
	SwitchActivityType(ctx context.Context, groupID string, category domain.Category, dayDate *time.Time, slotTime string) ([]domain.ActivityOption, error)
	// ToggleRest flips the rest flag and returns its new value.
	ToggleRest(ctx context.Context, groupID string) (bool, error)
	// AdjustTime sets the slot time; an empty value restores the default.
	AdjustTime(ctx context.Context, groupID, hhmm string) (*domain.ActivitySlot, error)
	UpdateNotes(ctx context.Context, groupID, notes string) error
	UpdateDayTheme(ctx context.Context, dayID, internal, client string) error
	// ExcludeVenue records that the user never wants venueName again. Excluding
	// a name twice returns the stored exclusion.
	ExcludeVenue(ctx context.Context, userID, venueName string, category domain.Category, reason string) (*domain.VenueExclusion, error)
}

type ExclusionService interface {
	List(ctx context.Context, userID string) ([]*domain.VenueExclusion, error)
	Remove(ctx context.Context, userID, id string) error
}

// CategoryCount is the number of venues loaded for one category.
type CategoryCount struct {
	Category domain.Category
	Venues   int
}

type CatalogService interface {
	// List returns the venues of category. With tags the strict tag match
	// applies; without tags the whole category is returned.
	List(ctx context.Context, category domain.Category, tags []string) ([]domain.Venue, error)
	// Reload drops cached tables and reads every category again.
	Reload(ctx context.Context) ([]CategoryCount, error)
}
