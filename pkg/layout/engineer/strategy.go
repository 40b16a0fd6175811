package engineer

import (
	"github.com/matzehuels/keyline/pkg/layout"
	"github.com/matzehuels/keyline/pkg/layout/provider"
)

// Strategy turns provided views into bounds for one layout kind.
type Strategy interface {
	// Name identifies the strategy in logs.
	Name() string
	// SpanCount returns the number of lanes, 1 for linear layouts.
	SpanCount() int
	// Group returns the group index of position. Groups are laid out and
	// recycled as a whole.
	Group(position int) int
	// GroupRange returns the first and last position of the group holding
	// position.
	GroupRange(position, itemCount int) (first, last int)
	// PlacePivot places the pivot's group with the pivot anchored on the
	// keyline and returns the primary extent of the group.
	PlacePivot(p *Pass, pivot int) (start, end int)
	// Fill lays out views from prov as configured by p.State.Request until
	// the space or the items run out. It returns the consumed space.
	Fill(p *Pass, prov provider.Provider) int
}

// Linear stacks items along the primary axis, each one spanning the whole
// secondary axis.
type Linear struct{}

// Name implements Strategy.
func (Linear) Name() string { return "linear" }

// SpanCount implements Strategy.
func (Linear) SpanCount() int { return 1 }

// Group implements Strategy.
func (Linear) Group(position int) int { return position }

// GroupRange implements Strategy.
func (Linear) GroupRange(position, _ int) (int, int) { return position, position }

// PlacePivot implements Strategy.
func (Linear) PlacePivot(p *Pass, pivot int) (int, int) {
	v := p.Bind(pivot)
	size, _ := p.Measure(pivot, v)
	start := p.PivotStart(size)
	p.Emit(layout.Child{
		Position: pivot,
		View:     v,
		Bounds:   layout.Bounds{Start: start, End: start + size, SecondaryEnd: p.Viewport.SecondarySize},
	})
	return start, start + size
}

// Fill implements Strategy.
func (Linear) Fill(p *Pass, prov provider.Provider) int {
	req := &p.State.Request
	consumed := 0
	for req.HasSpace() && prov.HasNext(req, p.itemCount) {
		c, ok := prov.Next(req, p.itemCount)
		if !ok {
			break
		}
		size, _ := p.Measure(c.Position, c.View)
		if req.IsLayingOutEnd() {
			c.Bounds = layout.Bounds{Start: req.Checkpoint, End: req.Checkpoint + size}
		} else {
			c.Bounds = layout.Bounds{Start: req.Checkpoint - size, End: req.Checkpoint}
		}
		c.Bounds.SecondaryEnd = p.Viewport.SecondarySize
		p.Emit(c)

		n := size + p.Spacing
		p.State.Consume(n)
		consumed += n
	}
	return consumed
}
