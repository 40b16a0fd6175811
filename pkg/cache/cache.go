// Package cache stores measured item sizes between layout passes.
//
// Sizes are keyed by adapter position, so every adapter mutation must be
// applied to the cache to keep keys pointing at the same items. Measuring
// through a [Measurer] consults the cache first and falls back to the host.
package cache

import (
	"github.com/matzehuels/keyline/pkg/layout"
	"github.com/matzehuels/keyline/pkg/observability"
)

// keyType labels size cache events for observability hooks.
const keyType = "size"

// Cache stores measured sizes by position.
type Cache interface {
	// Get returns the cached size of position.
	Get(position int) (layout.Size, bool)
	// Set stores the size of position.
	Set(position int, s layout.Size)
	// Delete forgets the size of position.
	Delete(position int)
	// Apply rekeys the cache after an adapter mutation. Changed items are
	// forgotten.
	Apply(c layout.ItemChanges)
	// Clear forgets every size.
	Clear()
	// Len returns the number of cached sizes.
	Len() int
}

// MemoryCache is a map backed Cache.
type MemoryCache struct {
	sizes map[int]layout.Size
}

// NewMemoryCache creates an empty memory cache.
func NewMemoryCache() Cache {
	return &MemoryCache{sizes: map[int]layout.Size{}}
}

// Get implements Cache.
func (c *MemoryCache) Get(position int) (layout.Size, bool) {
	s, ok := c.sizes[position]
	if ok {
		observability.Cache().OnCacheHit(keyType)
	} else {
		observability.Cache().OnCacheMiss(keyType)
	}
	return s, ok
}

// Set implements Cache.
func (c *MemoryCache) Set(position int, s layout.Size) {
	c.sizes[position] = s
	observability.Cache().OnCacheSet(keyType, len(c.sizes))
}

// Delete implements Cache.
func (c *MemoryCache) Delete(position int) { delete(c.sizes, position) }

// Clear implements Cache.
func (c *MemoryCache) Clear() { clear(c.sizes) }

// Len implements Cache.
func (c *MemoryCache) Len() int { return len(c.sizes) }

// Apply implements Cache.
func (c *MemoryCache) Apply(ch layout.ItemChanges) {
	if ch.Count <= 0 || len(c.sizes) == 0 {
		return
	}
	if ch.Kind == layout.ChangeUpdate {
		for p := ch.Position; p < ch.Position+ch.Count; p++ {
			delete(c.sizes, p)
		}
		return
	}
	next := make(map[int]layout.Size, len(c.sizes))
	for p, s := range c.sizes {
		if np, ok := ch.Remap(p); ok {
			next[np] = s
		}
	}
	c.sizes = next
}

// Ensure MemoryCache implements Cache.
var _ Cache = (*MemoryCache)(nil)
