package provider

import "github.com/matzehuels/keyline/pkg/layout"

// Scrap hands out views from the host scrap. Entries are not contiguous:
// each Next looks for the closest unused entry in the request's item
// direction and moves the request past it. Removed entries are never
// returned.
type Scrap struct {
	entries []layout.ScrapEntry
	used    []bool
}

// NewScrap returns a provider over entries.
func NewScrap(entries []layout.ScrapEntry) *Scrap {
	s := &Scrap{}
	s.Reset(entries)
	return s
}

// Reset replaces the entries and forgets which ones were handed out.
func (s *Scrap) Reset(entries []layout.ScrapEntry) {
	s.entries = entries
	if cap(s.used) >= len(entries) {
		s.used = s.used[:len(entries)]
		clear(s.used)
	} else {
		s.used = make([]bool, len(entries))
	}
}

// Len returns the number of entries, removed ones included.
func (s *Scrap) Len() int { return len(s.entries) }

// Skip marks every entry for position as used, so it is never handed out.
func (s *Scrap) Skip(position int) {
	for i, e := range s.entries {
		if e.Position == position {
			s.used[i] = true
		}
	}
}

// Remaining returns the entries that are neither removed nor used, in
// entry order.
func (s *Scrap) Remaining() []layout.ScrapEntry {
	var out []layout.ScrapEntry
	for i, e := range s.entries {
		if !e.Removed && !s.used[i] {
			out = append(out, e)
		}
	}
	return out
}

// HasNext implements Provider.
func (s *Scrap) HasNext(req *layout.Request, itemCount int) bool {
	return s.closest(req, itemCount) >= 0
}

// Peek implements Provider.
func (s *Scrap) Peek(req *layout.Request, itemCount int) (int, bool) {
	i := s.closest(req, itemCount)
	if i < 0 {
		return layout.NoPosition, false
	}
	return s.entries[i].Position, true
}

// Next implements Provider.
func (s *Scrap) Next(req *layout.Request, itemCount int) (layout.Child, bool) {
	i := s.closest(req, itemCount)
	if i < 0 {
		return layout.Child{}, false
	}
	s.used[i] = true
	e := s.entries[i]
	req.CurrentPosition = e.Position + req.ItemDirection.Value()
	return layout.Child{Position: e.Position, View: e.View}, true
}

// closest returns the index of the nearest usable entry at or after the
// request's current position in its item direction, or -1.
func (s *Scrap) closest(req *layout.Request, itemCount int) int {
	dir := req.ItemDirection.Value()
	best, bestDist := -1, 0
	for i, e := range s.entries {
		if e.Removed || s.used[i] || e.Position < 0 || e.Position >= itemCount {
			continue
		}
		dist := (e.Position - req.CurrentPosition) * dir
		if dist < 0 {
			continue
		}
		if best < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return best
}
