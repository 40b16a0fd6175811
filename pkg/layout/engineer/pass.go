// Package engineer runs layout passes: it places the pivot on the keyline,
// fills the viewport towards both edges and trims what scrolled away.
//
// A [Pass] owns all mutable state of one pass. A [Strategy] decides how
// items are measured into bounds: [Linear] stacks them one per line, [Grid]
// packs them into rows of lanes.
package engineer

import (
	"github.com/matzehuels/keyline/pkg/layout"
	"github.com/matzehuels/keyline/pkg/layout/align"
	"github.com/matzehuels/keyline/pkg/layout/grid"
	"github.com/matzehuels/keyline/pkg/layout/provider"
)

// Measurer returns the measured size of the view bound for position.
type Measurer interface {
	Measure(position int, v layout.View) layout.Size
}

// HostMeasurer measures through the host without caching.
type HostMeasurer struct {
	Host layout.Host
}

// Measure implements Measurer.
func (m HostMeasurer) Measure(_ int, v layout.View) layout.Size {
	w, h := m.Host.Measure(v)
	return layout.Size{Width: w, Height: h}
}

// Config is the geometry of a pass.
type Config struct {
	Orientation layout.Orientation
	Reverse     bool
	Viewport    layout.Viewport
	// Spacing is the gap between items, or rows in a grid.
	Spacing int
	// ExtraStart and ExtraEnd extend the fill beyond either viewport edge.
	ExtraStart, ExtraEnd int
	// Child selects the anchor point of the pivot.
	Child layout.ChildAlignment
}

// Pass is the state of one layout pass. Create it with NewPass for every
// pass, it must not outlive the call that created it.
type Pass struct {
	Config

	Adapter  layout.Adapter
	Host     layout.Host
	Window   *layout.Window
	Align    *align.Calculator
	Measurer Measurer

	State layout.State

	// Placed counts children placed in this pass.
	Placed int
	// Disappearing holds scrap views laid out outside the window.
	Disappearing []layout.Child

	itemCount  int
	reuse      map[int]layout.View
	predictive bool
	fresh      *provider.Fresh

	// Grid scratch: the open row and the views waiting for it.
	scratch *grid.Row
	pending []layout.Child
}

// NewPass returns a pass over the given collaborators. A nil measurer
// measures through the host.
func NewPass(cfg Config, adapter layout.Adapter, host layout.Host, w *layout.Window, calc *align.Calculator, m Measurer) *Pass {
	if m == nil {
		m = HostMeasurer{Host: host}
	}
	p := &Pass{
		Config:    cfg,
		Adapter:   adapter,
		Host:      host,
		Window:    w,
		Align:     calc,
		Measurer:  m,
		itemCount: adapter.ItemCount(),
	}
	p.fresh = provider.NewFresh(binder{p})
	p.State.Reset(cfg.Reverse)
	return p
}

// ItemCount returns the adapter item count captured when the pass started.
func (p *Pass) ItemCount() int { return p.itemCount }

// Fresh returns the provider binding adapter views for this pass.
func (p *Pass) Fresh() provider.Provider { return p.fresh }

// Detach moves every child out of the window. Their views are reused when
// the same positions are laid out again and recycled by Finish otherwise.
func (p *Pass) Detach() {
	if p.reuse == nil {
		p.reuse = map[int]layout.View{}
	}
	for _, c := range p.Window.Clear() {
		p.reuse[c.Position] = c.View
	}
}

// Finish recycles detached views that were not reused and returns their
// number.
func (p *Pass) Finish() int {
	n := len(p.reuse)
	for _, v := range p.reuse {
		p.Host.Recycle(v)
	}
	clear(p.reuse)
	return n
}

// Bind returns a view for position, reusing a detached one when possible.
func (p *Pass) Bind(position int) layout.View {
	if v, ok := p.reuse[position]; ok {
		delete(p.reuse, position)
		return v
	}
	return p.Adapter.ItemAt(position)
}

// Measure returns the size of v along both axes of the pass.
func (p *Pass) Measure(position int, v layout.View) (primary, secondary int) {
	s := p.Measurer.Measure(position, v)
	return s.Primary(p.Orientation), s.Secondary(p.Orientation)
}

// AnchorOffset returns the distance from the start of an item of the
// given size to its anchor.
func (p *Pass) AnchorOffset(size int) int {
	return align.AnchorOffset(size, p.Child, p.Reverse)
}

// PivotStart returns where an item of the given size starts when its
// anchor sits on the keyline.
func (p *Pass) PivotStart(size int) int {
	return p.Align.Keyline() - p.AnchorOffset(size)
}

// Emit places c in the host and adds it to the window, or to Disappearing
// during the predictive pass.
func (p *Pass) Emit(c layout.Child) {
	p.Host.Place(c.View, c.Bounds.Rect(p.Orientation))
	p.Placed++
	if p.predictive {
		p.Disappearing = append(p.Disappearing, c)
		return
	}
	if old, replaced := p.Window.Add(c); replaced && old.View != c.View {
		p.Host.Recycle(old.View)
	}
}

// Offset moves every child by -delta and places it again.
func (p *Pass) Offset(delta int) {
	if delta == 0 {
		return
	}
	p.Window.Offset(-delta)
	p.Align.Offset(delta)
	for _, c := range p.Window.Children() {
		p.Host.Place(c.View, c.Bounds.Rect(p.Orientation))
	}
}

// VisualEdges returns the children at the visual start and end of the
// window.
func (p *Pass) VisualEdges() (start, end layout.Child, ok bool) {
	first, ok := p.Window.First()
	if !ok {
		return layout.Child{}, layout.Child{}, false
	}
	last, _ := p.Window.Last()
	if p.Reverse {
		return last, first, true
	}
	return first, last, true
}

// binder adapts the pass to layout.Adapter so the fresh provider reuses
// detached views.
type binder struct{ p *Pass }

func (b binder) ItemCount() int { return b.p.itemCount }
func (b binder) ItemAt(position int) layout.View { return b.p.Bind(position) }
