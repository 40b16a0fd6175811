package pivot

import (
	"github.com/matzehuels/keyline/pkg/errors"
	"github.com/matzehuels/keyline/pkg/layout"
	"github.com/matzehuels/keyline/pkg/layout/engineer"
)

// ItemsInserted records count items inserted at position.
func (m *Manager) ItemsInserted(position, count int) {
	m.apply(layout.Inserted(position, count))
}

// ItemsRemoved records count items removed from position.
func (m *Manager) ItemsRemoved(position, count int) {
	m.apply(layout.Removed(position, count))
}

// ItemsMoved records count items moved from one position to another, to
// being expressed after the items were taken out.
func (m *Manager) ItemsMoved(from, to, count int) {
	m.apply(layout.Moved(from, to, count))
}

// ItemsChanged records count items changed in place from position.
func (m *Manager) ItemsChanged(position, count int) {
	m.apply(layout.Updated(position, count))
}

// apply brings the pivot, the size cache and the window in line with an
// adapter mutation. Changes touching the window mark the layout stale, the
// others only renumber it.
func (m *Manager) apply(ch layout.ItemChanges) {
	clamped, adjusted := ch.Clamp(m.itemCount)
	if adjusted {
		err := errors.New(errors.ErrCodeInconsistentAdapter, "%s outside [0, %d]", ch, m.itemCount)
		m.logger.Warn("adapter change clamped", "err", err, "clamped", clamped)
	}
	ch = clamped
	m.last = ch
	if ch.Count == 0 {
		return
	}

	m.measurer.Cache.Apply(ch)
	m.spans.Invalidate()

	m.itemCount += ch.Delta()
	m.remapPivot(ch)

	first, firstOK := m.window.First()
	last, _ := m.window.Last()
	switch {
	case !firstOK:
		m.needsLayout = true
	case ch.Intersects(first.Position, last.Position):
		m.updateWindow(ch)
		m.needsLayout = true
	default:
		switch {
		case ch.Before(first.Position):
			m.window.Renumber(first.Position, ch.Delta())
		case ch.Kind == layout.ChangeMove:
			m.updateWindow(ch)
		}
		// Grid rows regroup after any mutation before the last laid out
		// position.
		if m.strategy.SpanCount() > 1 && ch.Position <= last.Position {
			m.needsLayout = true
		}
		m.refreshLimits(ch, first.Position)
	}
	m.logger.Debug("adapter change", "change", ch, "item_count", m.itemCount,
		"pivot", m.pivot, "needs_layout", m.needsLayout)
}

// remapPivot keeps the pivot on its item. A removed pivot moves to the
// item now at the removed range, or the last item, or none.
func (m *Manager) remapPivot(ch layout.ItemChanges) {
	if m.pivot == layout.NoPosition {
		return
	}
	p, ok := ch.Remap(m.pivot)
	switch {
	case ok:
	case m.itemCount == 0:
		p = layout.NoPosition
	default:
		p = min(ch.Position, m.itemCount-1)
	}
	m.setPivot(p)
}

// updateWindow renumbers the children for a mutation. Removed and changed
// children are recycled so their positions are bound again on the next
// layout.
func (m *Manager) updateWindow(ch layout.ItemChanges) {
	switch ch.Kind {
	case layout.ChangeInsert:
		m.window.Renumber(ch.Position, ch.Count)
	case layout.ChangeRemove, layout.ChangeUpdate:
		for i := m.window.Len() - 1; i >= 0; i-- {
			pos := m.window.At(i).Position
			if pos >= ch.Position && pos < ch.Position+ch.Count {
				m.host.Recycle(m.window.RemoveAt(i).View)
			}
		}
		if ch.Kind == layout.ChangeRemove {
			m.window.Renumber(ch.Position+ch.Count, -ch.Count)
		}
	case layout.ChangeMove:
		children := m.window.Clear()
		for _, c := range children {
			c.Position, _ = ch.Remap(c.Position)
			m.window.Add(c)
		}
	}
}

// refreshLimits recomputes the scroll limits after the window was
// renumbered without a layout. first is the window's first position before
// the mutation. A mutation between the window and a known content edge
// moves that edge, so the layout is redone instead.
func (m *Manager) refreshLimits(ch layout.ItemChanges, first int) {
	if m.needsLayout {
		return
	}
	head := ch.Position < first
	tail := !head
	if ch.Kind == layout.ChangeMove {
		head = head || ch.To < first
		tail = tail || ch.To >= first
	}
	if m.opts.Reverse {
		head, tail = tail, head
	}
	lim := m.calc.Limits()
	if (head && lim.HasStart()) || (tail && lim.HasEnd()) {
		m.needsLayout = true
		return
	}
	engineer.UpdateLimits(m.pass())
}
