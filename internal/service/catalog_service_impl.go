package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/concierge/internal/app"
	"github.com/alexanderramin/concierge/internal/catalog"
	"github.com/alexanderramin/concierge/internal/domain"
	"github.com/alexanderramin/concierge/internal/selection"
)

type catalogService struct {
	cache    *catalog.Cache
	queries  *selection.Queries
	observer UseCaseObserver
}

func NewCatalogService(cache *catalog.Cache, observers ...UseCaseObserver) CatalogService {
	return &catalogService{
		cache:    cache,
		queries:  selection.New(cache),
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *catalogService) List(ctx context.Context, category domain.Category, tags []string) ([]domain.Venue, error) {
	if !domain.ValidCategories[string(category)] {
		return nil, &app.RequestError{Field: "category", Message: fmt.Sprintf("invalid value %q", category)}
	}
	if len(tags) == 0 {
		return s.queries.All(ctx, category, nil), nil
	}
	return s.queries.ByCategory(ctx, category, tags, nil), nil
}

func (s *catalogService) Reload(ctx context.Context) (counts []CategoryCount, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { observeUseCase(ctx, s.observer, "reload-catalog", startedAt, fields, err) }()

	s.cache.Clear()
	total := 0
	for _, c := range domain.Categories {
		n := len(s.cache.Load(ctx, c))
		total += n
		counts = append(counts, CategoryCount{Category: c, Venues: n})
	}
	fields["venues"] = total
	return counts, nil
}
