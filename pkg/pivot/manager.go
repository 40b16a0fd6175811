// Package pivot drives the layout engine around a selected item.
//
// A [Manager] owns the current window of laid out children, the pivot (the
// selected item that is aligned to the keyline) and the scroll limits. It
// turns host requests into engine passes:
//
//   - [Manager.Layout] runs a full pass around the pivot
//   - [Manager.ScrollBy] scrolls freely and reselects the pivot
//   - [Manager.SetPivot] and [Manager.Move] change the selection and align it
//   - ItemsInserted, ItemsRemoved, ItemsMoved and ItemsChanged keep the
//     window consistent with adapter mutations
//
// The Manager is not safe for concurrent use. Hosts drive it from a single
// goroutine, the way a UI thread drives a list.
package pivot

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/keyline/pkg/cache"
	"github.com/matzehuels/keyline/pkg/errors"
	"github.com/matzehuels/keyline/pkg/layout"
	"github.com/matzehuels/keyline/pkg/layout/align"
	"github.com/matzehuels/keyline/pkg/layout/engineer"
	"github.com/matzehuels/keyline/pkg/layout/recycle"
	"github.com/matzehuels/keyline/pkg/layout/span"
	"github.com/matzehuels/keyline/pkg/observability"
)

// Manager keeps a pivot aligned while items are laid out, scrolled and
// mutated.
type Manager struct {
	opts    Options
	adapter layout.Adapter
	host    layout.Host
	logger  *log.Logger

	window   layout.Window
	calc     *align.Calculator
	spans    *span.Lookup
	strategy engineer.Strategy
	measurer *cache.Measurer

	pivot        int
	itemCount    int
	needsLayout  bool
	last         layout.ItemChanges
	disappearing []layout.Child
}

// SpanSizer is implemented by adapters whose items cover several grid
// lanes. It is used when Options.SpanSize is nil.
type SpanSizer interface {
	SpanSize(position int) int
}

// New creates a manager over adapter and host. Options are validated and
// defaulted. Nothing is laid out until Layout is called.
func New(adapter layout.Adapter, host layout.Host, opts Options) (*Manager, error) {
	if adapter == nil || host == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "adapter and host are required")
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if ss, ok := adapter.(SpanSizer); ok && opts.SpanSize == nil {
		opts.SpanSize = ss.SpanSize
	}
	m := &Manager{
		opts:        opts,
		adapter:     adapter,
		host:        host,
		logger:      opts.Logger,
		calc:        align.New(*opts.Alignment),
		spans:       span.NewLookup(opts.SpanCount, opts.SpanSize),
		measurer:    cache.NewMeasurer(opts.Cache, host),
		pivot:       layout.NoPosition,
		itemCount:   adapter.ItemCount(),
		needsLayout: true,
	}
	m.calc.UpdateViewport(opts.Viewport, opts.Reverse)
	m.strategy = m.pickStrategy()
	return m, nil
}

func (m *Manager) pickStrategy() engineer.Strategy {
	if m.spans.SpanCount() == 1 {
		return engineer.Linear{}
	}
	return engineer.NewGrid(m.spans)
}

func (m *Manager) pass() *engineer.Pass {
	cfg := engineer.Config{
		Orientation: m.opts.Orientation,
		Reverse:     m.opts.Reverse,
		Viewport:    m.opts.Viewport,
		Spacing:     m.opts.Spacing,
		ExtraStart:  m.opts.ExtraStart,
		ExtraEnd:    m.opts.ExtraEnd,
		Child:       *m.opts.ChildAlignment,
	}
	return engineer.NewPass(cfg, m.adapter, m.host, &m.window, m.calc, m.measurer)
}

// =============================================================================
// Layout and scrolling
// =============================================================================

// Layout runs a full layout pass around the pivot. Without a pivot the
// first item is selected.
func (m *Manager) Layout() engineer.Result {
	hooks := observability.Layout()
	name := m.strategy.Name()
	n := m.adapter.ItemCount()
	hooks.OnLayoutStart(name, n)
	started := time.Now()

	res := engineer.Layout(m.pass(), m.strategy, m.pivot)
	m.itemCount = n
	m.needsLayout = false
	m.disappearing = res.Disappearing
	m.setPivot(res.Pivot)

	elapsed := time.Since(started)
	m.logger.Debug("layout",
		"strategy", name,
		"pivot", m.pivot,
		"children", m.window.Len(),
		"placed", res.Placed,
		"recycled", res.Recycled,
		"settle", res.Settle,
		"disappearing", len(res.Disappearing),
		"duration", elapsed)
	hooks.OnLayoutComplete(name, res.Placed, elapsed)
	return res
}

// ensureLayout lays out when a mutation or configuration change left the
// window stale.
func (m *Manager) ensureLayout() {
	if m.needsLayout {
		m.Layout()
	}
}

// ScrollBy scrolls the content by delta pixels towards the visual end, or
// the start for negative values, and returns the distance actually
// scrolled. The child closest to the keyline becomes the pivot.
func (m *Manager) ScrollBy(delta int) int {
	m.ensureLayout()
	res := engineer.Scroll(m.pass(), m.strategy, delta, m.pivot)
	if res.Scrolled != 0 || res.Placed > 0 || res.Recycled > 0 {
		m.setPivot(m.closestToKeyline())
		// The old pivot was kept through the scroll, release it now.
		res.Recycled += engineer.Trim(m.pass(), m.strategy, m.pivot)
	}
	m.logger.Debug("scroll", "delta", delta, "scrolled", res.Scrolled,
		"placed", res.Placed, "recycled", res.Recycled, "pivot", m.pivot)
	observability.Layout().OnScroll(res.Scrolled, res.Placed, res.Recycled)
	return res.Scrolled
}

// closestToKeyline returns the child whose anchor is nearest the keyline.
func (m *Manager) closestToKeyline() int {
	keyline := m.calc.Keyline()
	best, bestDist := layout.NoPosition, 0
	for _, c := range m.window.Children() {
		d := m.calc.ChildAnchor(c.Bounds, *m.opts.ChildAlignment) - keyline
		if d < 0 {
			d = -d
		}
		if best == layout.NoPosition || d < bestDist {
			best, bestDist = c.Position, d
		}
	}
	if best == layout.NoPosition {
		return m.pivot
	}
	return best
}

// =============================================================================
// Selection
// =============================================================================

// Pivot returns the selected position, or layout.NoPosition.
func (m *Manager) Pivot() int { return m.pivot }

// SetPivot selects position and aligns it to the keyline. Positions that
// are laid out are scrolled to, others trigger a full layout around them.
func (m *Manager) SetPivot(position int) error {
	n := m.adapter.ItemCount()
	if position < 0 || position >= n {
		return errors.New(errors.ErrCodeInvalidInput, "position %d out of range [0, %d)", position, n)
	}
	if m.needsLayout || !m.window.Contains(position) {
		m.setPivot(position)
		m.Layout()
		return nil
	}
	m.setPivot(position)
	c, _ := m.window.Get(position)
	offset := m.calc.ScrollOffset(m.calc.ChildAnchor(c.Bounds, *m.opts.ChildAlignment))
	res := engineer.Scroll(m.pass(), m.strategy, offset, position)
	if res.Scrolled != 0 {
		observability.Layout().OnScroll(res.Scrolled, res.Placed, res.Recycled)
	}
	return nil
}

func (m *Manager) setPivot(position int) {
	if position == m.pivot {
		return
	}
	from := m.pivot
	m.pivot = position
	observability.Layout().OnPivotChange(from, position)
}

// Move selects the item in direction d from the pivot and returns it. When
// there is no such item the pivot is kept and a NO_TARGET error returned.
func (m *Manager) Move(d Move) (int, error) {
	m.ensureLayout()
	if m.pivot == layout.NoPosition {
		return layout.NoPosition, errors.NoTarget(m.pivot, d.String())
	}
	target, ok := m.target(d)
	if !ok {
		return m.pivot, errors.NoTarget(m.pivot, d.String())
	}
	if err := m.SetPivot(target); err != nil {
		return m.pivot, err
	}
	return target, nil
}

// =============================================================================
// Configuration
// =============================================================================

// SetSpanCount switches between list and grid layouts. Sizes are measured
// again on the next layout.
func (m *Manager) SetSpanCount(n int) error {
	if err := errors.ValidateSpanCount(n); err != nil {
		return err
	}
	if n == m.spans.SpanCount() {
		return nil
	}
	m.opts.SpanCount = n
	m.spans.Reset(n, m.opts.SpanSize)
	m.strategy = m.pickStrategy()
	m.measurer.Cache.Clear()
	m.needsLayout = true
	return nil
}

// SetAlignment changes where the keyline sits in the viewport.
func (m *Manager) SetAlignment(p layout.ParentAlignment) error {
	if err := ValidateAlignment(p); err != nil {
		return err
	}
	m.opts.Alignment = &p
	m.calc.SetAlignment(p)
	m.needsLayout = true
	return nil
}

// SetFocus changes the move policy.
func (m *Manager) SetFocus(f Focus) { m.opts.Focus = f }

// =============================================================================
// Accessors
// =============================================================================

// Options returns the effective options. The alignments are copies.
func (m *Manager) Options() Options {
	o := m.opts
	parent, child := *o.Alignment, *o.ChildAlignment
	o.Alignment, o.ChildAlignment = &parent, &child
	return o
}

// Strategy returns the name of the active layout strategy.
func (m *Manager) Strategy() string { return m.strategy.Name() }

// ItemCount returns the adapter item count the manager last accounted for.
func (m *Manager) ItemCount() int { return m.itemCount }

// Children returns a copy of the laid out children in position order.
func (m *Manager) Children() []layout.Child {
	return append([]layout.Child(nil), m.window.Children()...)
}

// Limits returns the current scroll limits.
func (m *Manager) Limits() align.Limits { return m.calc.Limits() }

// Keyline returns the keyline coordinate in the viewport.
func (m *Manager) Keyline() int { return m.calc.Keyline() }

// IsLayoutComplete reports whether both content edges are laid out and no
// scrolling is possible.
func (m *Manager) IsLayoutComplete() bool { return m.calc.IsLayoutComplete() }

// NeedsLayout reports whether a mutation or configuration change requires
// a full layout.
func (m *Manager) NeedsLayout() bool { return m.needsLayout }

// LastChange returns the most recent adapter mutation, after clamping.
func (m *Manager) LastChange() layout.ItemChanges { return m.last }

// Disappearing returns the removed children laid out by the last pass so
// the host can animate them out.
func (m *Manager) Disappearing() []layout.Child { return m.disappearing }

// SpanIndex returns the lane of position in grid layouts.
func (m *Manager) SpanIndex(position int) int { return m.spans.SpanIndex(position) }

// PrefetchInitial returns the positions to prepare before the first layout.
func (m *Manager) PrefetchInitial() []int {
	pivot := m.pivot
	if pivot == layout.NoPosition {
		pivot = 0
	}
	return recycle.CollectInitial(m.adapter.ItemCount(), m.opts.PrefetchCount, pivot)
}

// PrefetchAdjacent returns the positions just beyond the window edge a
// scroll of (dx, dy) moves towards.
func (m *Manager) PrefetchAdjacent(dx, dy int) []recycle.Prefetch {
	return recycle.CollectAdjacent(dx, dy, recycle.AdjacentState{
		Orientation: m.opts.Orientation,
		Reverse:     m.opts.Reverse,
		Viewport:    m.opts.Viewport,
		Window:      &m.window,
		ItemCount:   m.adapter.ItemCount(),
		GroupRange:  m.strategy.GroupRange,
	})
}
