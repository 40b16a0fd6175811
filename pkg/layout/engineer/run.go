package engineer

import (
	"github.com/matzehuels/keyline/pkg/layout"
	"github.com/matzehuels/keyline/pkg/layout/provider"
	"github.com/matzehuels/keyline/pkg/layout/recycle"
)

// maxSettle bounds the align and refill rounds of a full layout. Each
// round either reaches the keyline or hits a newly discovered edge.
const maxSettle = 3

// Result summarizes a full layout pass.
type Result struct {
	Pivot    int
	Placed   int
	Recycled int
	// Settle is the number of align and refill rounds that were needed.
	Settle       int
	Disappearing []layout.Child
}

// ScrollResult summarizes a scroll pass.
type ScrollResult struct {
	// Scrolled is the applied scroll distance, after clamping.
	Scrolled int
	Placed   int
	Recycled int
}

// Layout runs a full pass around pivot, which is clamped into the adapter
// range. Existing children are detached first and their views reused for
// the positions laid out again.
func Layout(p *Pass, s Strategy, pivot int) Result {
	p.Detach()
	p.Align.Invalidate()
	n := p.itemCount
	if n == 0 {
		return Result{Pivot: layout.NoPosition, Recycled: p.Finish()}
	}
	pivot = min(max(pivot, 0), n-1)

	start, end := s.PlacePivot(p, pivot)
	first, last := s.GroupRange(pivot, n)
	endRef, startRef := last, first
	if p.Reverse {
		endRef, startRef = first, last
	}

	req := &p.State.Request
	p.State.Start, p.State.End = start, end
	req.Append(endRef)
	req.Checkpoint = end + p.Spacing
	req.Available = p.Viewport.ContentEnd() - req.Checkpoint
	req.Extra = p.ExtraEnd
	req.Infinite = p.Viewport.Unbounded
	s.Fill(p, p.fresh)

	// Space the end could not use because it ran out of items goes to the
	// start.
	leftover := 0
	if !p.fresh.HasNext(req, n) {
		leftover = max(req.Available, 0)
	}
	req.Prepend(startRef)
	req.Checkpoint = start - p.Spacing
	req.Available = req.Checkpoint - p.Viewport.ContentStart() + leftover
	req.Extra = p.ExtraStart
	s.Fill(p, p.fresh)

	UpdateLimits(p)
	settle := 0
	for ; settle < maxSettle; settle++ {
		c, ok := p.Window.Get(pivot)
		if !ok {
			break
		}
		offset := p.Align.ScrollOffset(c.Bounds.Start + p.AnchorOffset(c.Bounds.Size()))
		if offset == 0 {
			break
		}
		p.scroll(s, offset)
	}

	recycled := p.Finish() + Trim(p, s, pivot)
	p.predict(s)
	return Result{
		Pivot:        pivot,
		Placed:       p.Placed,
		Recycled:     recycled,
		Settle:       settle,
		Disappearing: p.Disappearing,
	}
}

// Scroll moves the content by delta, clamped into the scroll limits, fills
// the side that opened up and recycles the side that closed.
func Scroll(p *Pass, s Strategy, delta, pivot int) ScrollResult {
	if p.itemCount == 0 || p.Window.Len() == 0 || delta == 0 {
		return ScrollResult{}
	}
	d := p.Align.ScrollDelta(delta)
	p.scroll(s, d)

	// The fill may have found an edge the scroll went past.
	if fix := p.Align.Limits().Clamp(0); fix != 0 {
		p.scroll(s, fix)
		d += fix
	}
	return ScrollResult{Scrolled: d, Placed: p.Placed, Recycled: Trim(p, s, pivot)}
}

// Trim recycles whole groups outside the viewport plus the extra layout
// space on either side. The pivot's group is kept. Edges already known stay
// known when their boundary items are recycled.
func Trim(p *Pass, s Strategy, pivot int) int {
	if p.Viewport.Unbounded {
		return 0
	}
	r := recycle.New(p.Host, s.Group)
	n := r.RecycleStart(p.Window, p.Viewport.ContentStart()-p.ExtraStart, pivot)
	n += r.RecycleEnd(p.Window, p.Viewport.ContentEnd()+p.ExtraEnd, pivot)
	return n
}

// UpdateLimits records the content edges whose boundary items are laid
// out. An edge whose boundary item is not in the window keeps its last
// known position, shifted by every scroll since. Callers forget an edge
// through the calculator once a mutation moves it.
func UpdateLimits(p *Pass) {
	start, end, ok := p.Window.Extent()
	if !ok {
		p.Align.Invalidate()
		return
	}
	startItem, endItem := 0, p.itemCount-1
	if p.Reverse {
		startItem, endItem = endItem, startItem
	}

	if c, ok := p.Window.Get(startItem); ok {
		p.Align.UpdateStartLimit(start, c.Bounds.Start+p.AnchorOffset(c.Bounds.Size()))
	}
	if c, ok := p.Window.Get(endItem); ok {
		p.Align.UpdateEndLimit(end, c.Bounds.Start+p.AnchorOffset(c.Bounds.Size()))
	}
}

// scroll shifts the content by delta and fills the side it opened.
func (p *Pass) scroll(s Strategy, delta int) {
	if delta == 0 {
		return
	}
	p.Offset(delta)
	if delta > 0 {
		p.fillFromEdge(s, layout.End, p.fresh, false)
	} else {
		p.fillFromEdge(s, layout.Start, p.fresh, false)
	}
	UpdateLimits(p)
}

// fillFromEdge continues the layout beyond the visual edge d of the window.
func (p *Pass) fillFromEdge(s Strategy, d layout.Direction, prov provider.Provider, infinite bool) {
	startChild, endChild, ok := p.VisualEdges()
	if !ok {
		return
	}
	extentStart, extentEnd, _ := p.Window.Extent()

	req := &p.State.Request
	if d == layout.End {
		req.Append(endChild.Position)
		req.Checkpoint = extentEnd + p.Spacing
		req.Available = p.Viewport.ContentEnd() - req.Checkpoint
		req.Extra = p.ExtraEnd
	} else {
		req.Prepend(startChild.Position)
		req.Checkpoint = extentStart - p.Spacing
		req.Available = req.Checkpoint - p.Viewport.ContentStart()
		req.Extra = p.ExtraStart
	}
	req.Infinite = infinite || p.Viewport.Unbounded
	s.Fill(p, prov)
}

// predict lays out host scrap views that are not in the window beyond the
// window edges, so views animating in or out have bounds. They are placed
// but kept out of the window.
func (p *Pass) predict(s Strategy) {
	entries := p.Host.Scrap()
	if len(entries) == 0 || p.Window.Len() == 0 {
		return
	}
	scrap := provider.NewScrap(entries)
	for _, c := range p.Window.Children() {
		scrap.Skip(c.Position)
	}
	if len(scrap.Remaining()) == 0 {
		return
	}

	saved := p.State
	p.predictive = true
	p.fillFromEdge(s, layout.End, scrap, true)
	p.fillFromEdge(s, layout.Start, scrap, true)
	p.predictive = false
	p.State = saved
}
