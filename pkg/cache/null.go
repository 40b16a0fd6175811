package cache

import "github.com/matzehuels/keyline/pkg/layout"

// NullCache is a no-op cache that never stores anything.
// Useful for testing or when items change size between passes.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return &NullCache{}
}

// Get always returns a cache miss.
func (c *NullCache) Get(int) (layout.Size, bool) { return layout.Size{}, false }

// Set does nothing.
func (c *NullCache) Set(int, layout.Size) {}

// Delete does nothing.
func (c *NullCache) Delete(int) {}

// Apply does nothing.
func (c *NullCache) Apply(layout.ItemChanges) {}

// Clear does nothing.
func (c *NullCache) Clear() {}

// Len is always zero.
func (c *NullCache) Len() int { return 0 }

// Ensure NullCache implements Cache.
var _ Cache = (*NullCache)(nil)
