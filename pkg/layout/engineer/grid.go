package engineer

import (
	"github.com/matzehuels/keyline/pkg/layout"
	"github.com/matzehuels/keyline/pkg/layout/grid"
	"github.com/matzehuels/keyline/pkg/layout/provider"
	"github.com/matzehuels/keyline/pkg/layout/span"
)

// Grid packs items into rows of lanes. Rows are filled and flushed one at
// a time, every item of a row starts at the row start.
type Grid struct {
	Spans *span.Lookup
}

// NewGrid returns a grid strategy over spans.
func NewGrid(spans *span.Lookup) *Grid {
	return &Grid{Spans: spans}
}

// Name implements Strategy.
func (g *Grid) Name() string { return "grid" }

// SpanCount implements Strategy.
func (g *Grid) SpanCount() int { return g.Spans.SpanCount() }

// Group implements Strategy.
func (g *Grid) Group(position int) int { return g.Spans.SpanGroupIndex(position) }

// GroupRange implements Strategy.
func (g *Grid) GroupRange(position, itemCount int) (int, int) {
	return g.Spans.GroupRange(position, itemCount)
}

// PlacePivot implements Strategy. The pivot's whole row is placed, so both
// fill directions continue from complete rows.
func (g *Grid) PlacePivot(p *Pass, pivot int) (int, int) {
	row := p.row(g.SpanCount())
	first, last := g.GroupRange(pivot, p.itemCount)

	pivotSize := 0
	for pos := first; pos <= last; pos++ {
		v := p.Bind(pos)
		size, _ := p.Measure(pos, v)
		if pos == pivot {
			pivotSize = size
		}
		row.Append(pos, g.Spans.SpanIndex(pos), g.Spans.SpanSize(pos), size)
		p.pending = append(p.pending, layout.Child{Position: pos, View: v})
	}
	row.Start = p.PivotStart(pivotSize)
	start, end := row.Start, row.End()
	p.flush(row)
	return start, end
}

// Fill implements Strategy.
func (g *Grid) Fill(p *Pass, prov provider.Provider) int {
	req := &p.State.Request
	row := p.row(g.SpanCount())
	consumed := 0
	for req.HasSpace() && prov.HasNext(req, p.itemCount) {
		g.collect(p, prov, row)
		if row.IsEmpty() {
			break
		}
		if req.IsLayingOutEnd() {
			row.Start = req.Checkpoint
		} else {
			row.Start = req.Checkpoint - row.Height()
		}
		n := row.Height() + p.Spacing
		p.flush(row)
		p.State.Consume(n)
		consumed += n
	}
	return consumed
}

// collect takes the views of one group from prov into row.
func (g *Grid) collect(p *Pass, prov provider.Provider, row *grid.Row) {
	req := &p.State.Request
	tail := req.ItemDirection == layout.Tail
	group := -1
	for {
		pos, ok := prov.Peek(req, p.itemCount)
		if !ok {
			return
		}
		gi := g.Spans.SpanGroupIndex(pos)
		if group >= 0 && gi != group {
			return
		}
		idx, sz := g.Spans.SpanIndex(pos), g.Spans.SpanSize(pos)
		if (tail && !row.FitsEnd(idx, sz)) || (!tail && !row.FitsStart(idx, sz)) {
			return
		}
		group = gi

		c, ok := prov.Next(req, p.itemCount)
		if !ok {
			return
		}
		size, _ := p.Measure(c.Position, c.View)
		if tail {
			row.Append(c.Position, idx, sz, size)
		} else {
			row.Prepend(c.Position, idx, sz, size)
		}
		p.pending = append(p.pending, c)
	}
}

// row returns the pass scratch row, emptied.
func (p *Pass) row(spanCount int) *grid.Row {
	if p.scratch == nil || p.scratch.SpanCount() != spanCount || p.scratch.Lanes().Total() != max(p.Viewport.SecondarySize, 0) {
		p.scratch = grid.NewRow(grid.NewLanes(p.Viewport.SecondarySize, spanCount))
	}
	p.scratch.Reset()
	p.pending = p.pending[:0]
	return p.scratch
}

// flush emits every pending view of the placed row and empties it.
func (p *Pass) flush(row *grid.Row) {
	for _, it := range row.Items() {
		for _, c := range p.pending {
			if c.Position == it.Position {
				c.Bounds = row.Bounds(it)
				p.Emit(c)
				break
			}
		}
	}
	row.Reset()
	p.pending = p.pending[:0]
}
