package catalog

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"sort"
	"sync"

	"github.com/alexanderramin/concierge/internal/domain"
	"golang.org/x/sync/singleflight"
)

// Loader returns the normalized venues of a category. Implementations never
// fail: an unreadable category is an empty one.
type Loader interface {
	Load(ctx context.Context, category domain.Category) []domain.Venue
}

// sourceExtensions are tried in order when locating a category table.
var sourceExtensions = []string{".csv", ".tsv", ".txt"}

// Cache loads category tables from a file system once and serves copies of
// the parsed venues until cleared.
type Cache struct {
	fsys   fs.FS
	delim  rune
	logger *slog.Logger

	mu     sync.RWMutex
	venues map[domain.Category][]domain.Venue
	group  singleflight.Group
}

// Option configures a Cache.
type Option func(*Cache)

// WithDelimiter forces the column delimiter instead of sniffing it.
func WithDelimiter(d rune) Option {
	return func(c *Cache) {
		c.delim = d
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCache creates a cache reading "<category>.csv" files from fsys.
func NewCache(fsys fs.FS, opts ...Option) *Cache {
	c := &Cache{
		fsys:   fsys,
		logger: slog.Default(),
		venues: make(map[domain.Category][]domain.Venue),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cache) Load(ctx context.Context, category domain.Category) []domain.Venue {
	c.mu.RLock()
	venues, ok := c.venues[category]
	c.mu.RUnlock()
	if ok {
		return clone(venues)
	}

	v, _, _ := c.group.Do(string(category), func() (any, error) {
		c.mu.RLock()
		cached, ok := c.venues[category]
		c.mu.RUnlock()
		if ok {
			return cached, nil
		}
		loaded := c.read(ctx, category)
		c.mu.Lock()
		c.venues[category] = loaded
		c.mu.Unlock()
		return loaded, nil
	})
	return clone(v.([]domain.Venue))
}

// Clear drops every cached category.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.venues = make(map[domain.Category][]domain.Venue)
	c.mu.Unlock()
}

// Reload drops one category and loads it again.
func (c *Cache) Reload(ctx context.Context, category domain.Category) []domain.Venue {
	c.mu.Lock()
	delete(c.venues, category)
	c.mu.Unlock()
	return c.Load(ctx, category)
}

// Loaded lists the categories currently held, sorted.
func (c *Cache) Loaded() []domain.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Category, 0, len(c.venues))
	for cat := range c.venues {
		out = append(out, cat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (c *Cache) read(ctx context.Context, category domain.Category) []domain.Venue {
	if c.fsys == nil {
		c.logger.WarnContext(ctx, "catalog_missing", "category", string(category), "reason", "no catalog source")
		return nil
	}
	for _, ext := range sourceExtensions {
		name := string(category) + ext
		f, err := c.fsys.Open(name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			c.logger.WarnContext(ctx, "catalog_unreadable", "category", string(category), "file", name, "error", err.Error())
			return nil
		}
		venues, dropped, err := ParseVenues(f, category, c.delim)
		f.Close()
		if err != nil {
			c.logger.WarnContext(ctx, "catalog_corrupt", "category", string(category), "file", name, "error", err.Error())
			return nil
		}
		if dropped > 0 {
			c.logger.DebugContext(ctx, "catalog_rows_dropped", "category", string(category), "count", dropped)
		}
		c.logger.InfoContext(ctx, "catalog_loaded", "category", string(category), "file", name, "venues", len(venues))
		return venues
	}
	c.logger.WarnContext(ctx, "catalog_missing", "category", string(category))
	return nil
}

func clone(venues []domain.Venue) []domain.Venue {
	if venues == nil {
		return nil
	}
	out := make([]domain.Venue, len(venues))
	copy(out, venues)
	return out
}
