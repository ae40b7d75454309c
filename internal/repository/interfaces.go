package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/concierge/internal/domain"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

// ProgramSummary is the header of a stored program, without its days.
type ProgramSummary struct {
	ID        string
	UserID    string
	City      string
	Title     string
	Duration  int
	Intensity domain.Intensity
	Status    domain.ProgramStatus
	StartDate *time.Time
	CreatedAt time.Time
}

type ProgramRepo interface {
	// Create stores the program with all of its days, slots and options.
	Create(ctx context.Context, p *domain.Program) error
	GetByID(ctx context.Context, id string) (*domain.Program, error)
	ListByUser(ctx context.Context, userID string) ([]ProgramSummary, error)
	UpdateHeader(ctx context.Context, p *domain.Program) error
	UpdateDay(ctx context.Context, d *domain.ProgramDay) error
	// SaveSlot updates the slot row and replaces its options.
	SaveSlot(ctx context.Context, s *domain.ActivitySlot) error
	Delete(ctx context.Context, id string) error

	// ProgramIDBySlot, ProgramIDByOption and ProgramIDByDay resolve the
	// program owning a nested row.
	ProgramIDBySlot(ctx context.Context, groupID string) (string, error)
	ProgramIDByOption(ctx context.Context, optionID string) (string, error)
	ProgramIDByDay(ctx context.Context, dayID string) (string, error)
}

type ExclusionRepo interface {
	// Add stores e unless the user already excludes the same name in the
	// same category. added reports whether a row was written.
	Add(ctx context.Context, e *domain.VenueExclusion) (added bool, err error)
	Find(ctx context.Context, userID, venueName string, category domain.Category) (*domain.VenueExclusion, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.VenueExclusion, error)
	Delete(ctx context.Context, userID, id string) error
}
