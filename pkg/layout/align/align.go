// Package align computes keyline positions and clamped scroll offsets.
//
// A [Calculator] tracks the two visual content edges of the current layout.
// An edge is known once the logical boundary item on that side (the first
// adapter item at the visual start, or the last one in reverse layouts) has
// been laid out. Until then the scroll limit on that side is unbounded.
//
// Scroll offsets follow one convention: scrolling by d moves every child by
// -d along the primary axis. A start limit of s therefore means the content
// can never be scrolled so that its start edge passes below the viewport's
// content start.
package align

import (
	"math"

	"github.com/matzehuels/keyline/pkg/layout"
)

// Unbounded scroll limits.
const (
	NoStartLimit = math.MinInt
	NoEndLimit   = math.MaxInt
)

// Limits is the closed range of scroll offsets that keeps the content
// within the alignment policy.
type Limits struct {
	Start, End int
}

// HasStart reports whether the start side is bounded.
func (l Limits) HasStart() bool { return l.Start != NoStartLimit }

// HasEnd reports whether the end side is bounded.
func (l Limits) HasEnd() bool { return l.End != NoEndLimit }

// Clamp fits offset into the limits.
func (l Limits) Clamp(offset int) int {
	return min(max(offset, l.Start), l.End)
}

type edge struct {
	known  bool
	pos    int // content edge of the boundary item
	anchor int // anchor of the boundary item
}

// Calculator derives the keyline and scroll limits for one viewport and
// alignment policy. It is not safe for concurrent use.
type Calculator struct {
	viewport layout.Viewport
	reverse  bool
	parent   layout.ParentAlignment

	start, end edge
	limits     Limits
}

// New returns a calculator for the given alignment with no known edges.
func New(parent layout.ParentAlignment) *Calculator {
	c := &Calculator{parent: parent}
	c.recompute()
	return c
}

// UpdateViewport sets the viewport geometry and layout direction.
func (c *Calculator) UpdateViewport(v layout.Viewport, reverse bool) {
	c.viewport = v
	c.reverse = reverse
	c.recompute()
}

// SetAlignment replaces the parent alignment.
func (c *Calculator) SetAlignment(p layout.ParentAlignment) {
	c.parent = p
	c.recompute()
}

// Alignment returns the parent alignment in use.
func (c *Calculator) Alignment() layout.ParentAlignment { return c.parent }

// Viewport returns the viewport in use.
func (c *Calculator) Viewport() layout.Viewport { return c.viewport }

// Reverse reports whether the calculator mirrors for reverse layouts.
func (c *Calculator) Reverse() bool { return c.reverse }

// UpdateStartLimit records the visual start edge and the anchor of the
// boundary item placed there.
func (c *Calculator) UpdateStartLimit(edgePos, anchor int) {
	c.start = edge{known: true, pos: edgePos, anchor: anchor}
	c.recompute()
}

// UpdateEndLimit records the visual end edge and the anchor of the boundary
// item placed there.
func (c *Calculator) UpdateEndLimit(edgePos, anchor int) {
	c.end = edge{known: true, pos: edgePos, anchor: anchor}
	c.recompute()
}

// InvalidateStartLimit forgets the start edge.
func (c *Calculator) InvalidateStartLimit() {
	c.start = edge{}
	c.recompute()
}

// InvalidateEndLimit forgets the end edge.
func (c *Calculator) InvalidateEndLimit() {
	c.end = edge{}
	c.recompute()
}

// Invalidate forgets both edges.
func (c *Calculator) Invalidate() {
	c.start, c.end = edge{}, edge{}
	c.recompute()
}

// Offset shifts the known edges after the content scrolled by delta.
func (c *Calculator) Offset(delta int) {
	if c.start.known {
		c.start.pos -= delta
		c.start.anchor -= delta
	}
	if c.end.known {
		c.end.pos -= delta
		c.end.anchor -= delta
	}
	c.recompute()
}

// IsLayoutComplete reports whether both content edges are known.
func (c *Calculator) IsLayoutComplete() bool {
	return c.start.known && c.end.known
}

// Keyline returns the keyline pixel position inside the viewport.
func (c *Calculator) Keyline() int {
	return Keyline(c.viewport.Size, c.parent, c.reverse)
}

// Keyline computes the keyline for a viewport of the given size. It is a
// pure function of its arguments.
func Keyline(size int, p layout.ParentAlignment, reverse bool) int {
	k := p.Offset + int(float64(size)*p.Fraction)
	if reverse {
		return size - k
	}
	return k
}

// Limits returns the current scroll limits.
func (c *Calculator) Limits() Limits { return c.limits }

// StartLimit returns the smallest allowed scroll offset.
func (c *Calculator) StartLimit() int { return c.limits.Start }

// EndLimit returns the largest allowed scroll offset.
func (c *Calculator) EndLimit() int { return c.limits.End }

// ScrollOffset returns the scroll needed to move anchor onto the keyline,
// clamped into the scroll limits.
func (c *Calculator) ScrollOffset(anchor int) int {
	return c.limits.Clamp(anchor - c.Keyline())
}

// ScrollDelta clamps a free scroll of delta pixels into the limits,
// treating the current position as offset 0.
func (c *Calculator) ScrollDelta(delta int) int {
	l := c.limits
	// The current position may already sit outside limits right after a
	// layout change. Never scroll further away in that case.
	if l.HasStart() && delta < 0 {
		delta = min(max(delta, l.Start), 0)
	}
	if l.HasEnd() && delta > 0 {
		delta = max(min(delta, l.End), 0)
	}
	return delta
}

// AnchorOffset returns the distance from an item's start to its anchor point.
func (c *Calculator) AnchorOffset(size int, child layout.ChildAlignment) int {
	return AnchorOffset(size, child, c.reverse)
}

// ChildAnchor returns the anchor pixel of an item with bounds b.
func (c *Calculator) ChildAnchor(b layout.Bounds, child layout.ChildAlignment) int {
	return b.Start + c.AnchorOffset(b.Size(), child)
}

// AnchorOffset is the calculator-free form of [Calculator.AnchorOffset].
// Reverse layouts measure the child alignment from the item's end.
func AnchorOffset(size int, child layout.ChildAlignment, reverse bool) int {
	a := child.Offset + int(float64(size)*child.Fraction)
	if reverse {
		return size - a
	}
	return a
}

// pinsStart reports whether the edge policy pins the visual start side.
// The min edge belongs to the first adapter item, which sits at the visual
// end in reverse layouts.
func (c *Calculator) pinsStart() bool {
	if c.reverse {
		return c.parent.Edge.HasMax()
	}
	return c.parent.Edge.HasMin()
}

func (c *Calculator) pinsEnd() bool {
	if c.reverse {
		return c.parent.Edge.HasMin()
	}
	return c.parent.Edge.HasMax()
}

func (c *Calculator) recompute() {
	k := c.Keyline()
	l := Limits{Start: NoStartLimit, End: NoEndLimit}

	startEdgePin := c.start.pos - c.viewport.ContentStart()
	endEdgePin := c.end.pos - c.viewport.ContentEnd()
	startKeylinePin := c.start.anchor - k
	endKeylinePin := c.end.anchor - k

	if c.start.known {
		l.Start = startKeylinePin
		if c.pinsStart() {
			l.Start = startEdgePin
		}
	}
	if c.end.known {
		l.End = endKeylinePin
		if c.pinsEnd() {
			l.End = endEdgePin
		}
	}

	if c.start.known && c.end.known && l.Start > l.End {
		switch {
		case c.parent.PreferKeylineOverEdge:
			l.Start, l.End = startKeylinePin, endKeylinePin
			if l.Start > l.End {
				l.End = l.Start
			}
		default:
			// The min edge wins, then the max edge.
			collapse := l.Start
			minAtStart := !c.reverse
			switch {
			case c.parent.Edge.HasMin() && minAtStart:
				collapse = l.Start
			case c.parent.Edge.HasMin():
				collapse = l.End
			case c.parent.Edge.HasMax() && minAtStart:
				collapse = l.End
			case c.parent.Edge.HasMax():
				collapse = l.Start
			}
			l.Start, l.End = collapse, collapse
		}
	}
	c.limits = l
}
