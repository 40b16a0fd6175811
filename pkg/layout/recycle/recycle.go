// Package recycle trims views that scrolled out of the layout window and
// predicts which positions the host should prepare next.
package recycle

import "github.com/matzehuels/keyline/pkg/layout"

// GroupFunc returns the group (grid row) of a position. Linear layouts
// use the position itself.
type GroupFunc func(position int) int

// Recycler removes children that lie entirely outside a limit. Children of
// one group are removed together, and the pivot's group is always kept.
type Recycler struct {
	Host  layout.Host
	Group GroupFunc
}

// New returns a recycler releasing views to host. A nil group function
// treats every position as its own group.
func New(host layout.Host, group GroupFunc) *Recycler {
	if group == nil {
		group = func(p int) int { return p }
	}
	return &Recycler{Host: host, Group: group}
}

// RecycleStart removes the groups whose children all end at or before
// limit. It returns the number of recycled children.
func (r *Recycler) RecycleStart(w *layout.Window, limit, pivot int) int {
	return r.recycle(w, pivot, func(b layout.Bounds) bool { return b.End <= limit })
}

// RecycleEnd removes the groups whose children all start at or after
// limit. It returns the number of recycled children.
func (r *Recycler) RecycleEnd(w *layout.Window, limit, pivot int) int {
	return r.recycle(w, pivot, func(b layout.Bounds) bool { return b.Start >= limit })
}

func (r *Recycler) recycle(w *layout.Window, pivot int, outside func(layout.Bounds) bool) int {
	if w.Len() == 0 {
		return 0
	}
	keep := map[int]bool{}
	if pivot != layout.NoPosition {
		keep[r.Group(pivot)] = true
	}
	for _, c := range w.Children() {
		if !outside(c.Bounds) {
			keep[r.Group(c.Position)] = true
		}
	}

	removed := 0
	for i := w.Len() - 1; i >= 0; i-- {
		c := w.At(i)
		if keep[r.Group(c.Position)] {
			continue
		}
		w.RemoveAt(i)
		r.Host.Recycle(c.View)
		removed++
	}
	return removed
}
