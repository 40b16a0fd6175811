package cache

import "github.com/matzehuels/keyline/pkg/layout"

// Measurer measures views through a host, remembering sizes in a cache.
type Measurer struct {
	Cache Cache
	Host  layout.Host
}

// NewMeasurer returns a measurer over host. A nil cache disables caching.
func NewMeasurer(c Cache, host layout.Host) *Measurer {
	if c == nil {
		c = NewNullCache()
	}
	return &Measurer{Cache: c, Host: host}
}

// Measure returns the cached size of position, measuring v on a miss.
func (m *Measurer) Measure(position int, v layout.View) layout.Size {
	if s, ok := m.Cache.Get(position); ok {
		return s
	}
	w, h := m.Host.Measure(v)
	s := layout.Size{Width: w, Height: h}
	m.Cache.Set(position, s)
	return s
}
