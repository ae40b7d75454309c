package service

import (
	"context"

	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/alexanderramin/concierge/internal/repository"
)

type exclusionService struct {
	exclusions repository.ExclusionRepo
}

func NewExclusionService(exclusions repository.ExclusionRepo) ExclusionService {
	return &exclusionService{exclusions: exclusions}
}

func (s *exclusionService) List(ctx context.Context, userID string) ([]*domain.VenueExclusion, error) {
	return s.exclusions.ListByUser(ctx, userID)
}

func (s *exclusionService) Remove(ctx context.Context, userID, id string) error {
	return s.exclusions.Delete(ctx, userID, id)
}
