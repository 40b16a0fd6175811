package sim

import (
	"sort"

	"github.com/matzehuels/keyline/pkg/layout"
)

// Host records what the engine does with views.
type Host struct {
	placed map[*View]layout.Rect
	scrap  []layout.ScrapEntry

	// Measured counts Measure calls.
	Measured int
	// Placements counts Place calls.
	Placements int
	// Recycled lists recycled views in order.
	Recycled []*View
}

// NewHost returns an empty host.
func NewHost() *Host {
	return &Host{placed: map[*View]layout.Rect{}}
}

// Measure implements layout.Host.
func (h *Host) Measure(v layout.View) (int, int) {
	h.Measured++
	sv := v.(*View)
	return sv.Item.Width, sv.Item.Height
}

// Place implements layout.Host.
func (h *Host) Place(v layout.View, r layout.Rect) {
	h.Placements++
	h.placed[v.(*View)] = r
}

// Recycle implements layout.Host. Recycling a view twice panics, the
// engine must never release a view it no longer owns.
func (h *Host) Recycle(v layout.View) {
	sv := v.(*View)
	if _, ok := h.placed[sv]; !ok {
		for _, r := range h.Recycled {
			if r == sv {
				panic("sim: view recycled twice: " + sv.String())
			}
		}
	}
	delete(h.placed, sv)
	h.Recycled = append(h.Recycled, sv)
}

// Scrap implements layout.Host.
func (h *Host) Scrap() []layout.ScrapEntry { return h.scrap }

// SetScrap sets the entries returned by Scrap.
func (h *Host) SetScrap(entries []layout.ScrapEntry) { h.scrap = entries }

// Attached returns the number of placed, not yet recycled views.
func (h *Host) Attached() int { return len(h.placed) }

// Rect returns where v was last placed.
func (h *Host) Rect(v layout.View) (layout.Rect, bool) {
	r, ok := h.placed[v.(*View)]
	return r, ok
}

// Placed returns the attached views ordered by item ID.
func (h *Host) Placed() []*View {
	out := make([]*View, 0, len(h.placed))
	for v := range h.placed {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Item.ID < out[j].Item.ID })
	return out
}
