package alias

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"alias-resolver/internal/model"
)

// Cache memoizes FindAliasLinks per annotation type. Each key is computed
// once even under concurrent lookups. A Cache is bound to one model snapshot:
// its Registry seals models that support it, and a changed model needs a new
// Cache.
type Cache struct {
	registry *Registry
	links    sync.Map // model.TypeRef -> []Link
	group    singleflight.Group
	logger   *zap.Logger

	calls  atomic.Int64
	misses atomic.Int64
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLogger sets the logger used for cache misses.
func WithLogger(logger *zap.Logger) CacheOption {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCache creates a Cache over m.
func NewCache(m model.Model, opts ...CacheOption) *Cache {
	c := &Cache{
		registry: NewRegistry(m),
		logger:   zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FindAliasLinks implements Finder. The returned slice is shared; callers must
// not modify it.
func (c *Cache) FindAliasLinks(annotationType model.TypeRef) []Link {
	c.calls.Add(1)

	if v, ok := c.links.Load(annotationType); ok {
		return v.([]Link)
	}

	v, _, _ := c.group.Do(string(annotationType), func() (any, error) {
		if v, ok := c.links.Load(annotationType); ok {
			return v, nil
		}

		c.misses.Add(1)

		links := c.registry.FindAliasLinks(annotationType)
		c.links.Store(annotationType, links)

		c.logger.Debug("computed alias links",
			zap.Stringer("type", annotationType),
			zap.Int("links", len(links)),
		)

		return links, nil
	})

	return v.([]Link)
}

// CacheStats reports cache effectiveness. Misses count computations; every
// other lookup, including one that waited on an in-flight computation, is a hit.
type CacheStats struct {
	Hits   int64
	Misses int64
}

// Stats returns the current hit and miss counts.
func (c *Cache) Stats() CacheStats {
	misses := c.misses.Load()

	return CacheStats{
		Hits:   c.calls.Load() - misses,
		Misses: misses,
	}
}
