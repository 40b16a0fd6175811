package pivot

import (
	"fmt"
	"strings"

	"github.com/matzehuels/keyline/pkg/layout"
)

// Move is a focus movement relative to the pivot. Up, Down, Left and Right
// are visual, Next and Previous follow adapter order.
type Move int

const (
	MoveUp Move = iota
	MoveDown
	MoveLeft
	MoveRight
	MoveNext
	MovePrevious
)

var moveNames = map[Move]string{
	MoveUp:       "up",
	MoveDown:     "down",
	MoveLeft:     "left",
	MoveRight:    "right",
	MoveNext:     "next",
	MovePrevious: "previous",
}

// String returns the lowercase move name.
func (d Move) String() string {
	if s, ok := moveNames[d]; ok {
		return s
	}
	return fmt.Sprintf("Move(%d)", int(d))
}

// ParseMove parses a move name.
func ParseMove(s string) (Move, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for d, name := range moveNames {
		if name == norm {
			return d, nil
		}
	}
	return MoveDown, fmt.Errorf("invalid move: %q (must be one of: up, down, left, right, next, previous)", s)
}

// axis classifies d for the orientation. Primary moves cross rows, secondary
// moves stay inside one. toEnd reports a move towards the visual end or,
// for secondary moves, towards the right or bottom.
func (d Move) axis(o layout.Orientation) (primary, toEnd bool) {
	switch d {
	case MoveUp:
		return o == layout.Vertical, false
	case MoveDown:
		return o == layout.Vertical, true
	case MoveLeft:
		return o == layout.Horizontal, false
	case MoveRight:
		return o == layout.Horizontal, true
	}
	return false, false
}

// target returns the position a move from the pivot lands on.
func (m *Manager) target(d Move) (int, bool) {
	n := m.adapter.ItemCount()
	if n == 0 || m.pivot < 0 || m.pivot >= n {
		return layout.NoPosition, false
	}
	switch d {
	case MoveNext:
		return m.step(m.pivot, 1, n)
	case MovePrevious:
		return m.step(m.pivot, -1, n)
	}

	primary, toEnd := d.axis(m.opts.Orientation)
	if !primary {
		return m.secondary(toEnd, n)
	}
	dir := layout.Start
	if toEnd {
		dir = layout.End
	}
	return m.crossRow(layout.ItemDirectionFor(dir, m.opts.Reverse).Value(), n)
}

// step moves one position in adapter order, wrapping when circular.
func (m *Manager) step(from, delta, n int) (int, bool) {
	to := from + delta
	if to >= 0 && to < n {
		return to, true
	}
	if m.opts.Focus != FocusCircular {
		return layout.NoPosition, false
	}
	return (to + n) % n, true
}

// crossRow moves to the adjacent group in item direction step, keeping the
// pivot's lane where the target row has an item covering it.
func (m *Manager) crossRow(step, n int) (int, bool) {
	first, last := m.strategy.GroupRange(m.pivot, n)
	next := last + 1
	if step < 0 {
		next = first - 1
	}
	if next < 0 || next >= n {
		if m.opts.Focus != FocusCircular {
			return layout.NoPosition, false
		}
		next = 0
		if step < 0 {
			next = n - 1
		}
	}
	lane := m.spans.SpanIndex(m.pivot)
	lo, hi := m.strategy.GroupRange(next, n)
	for p := lo; p <= hi; p++ {
		idx := m.spans.SpanIndex(p)
		if lane >= idx && lane < idx+m.spans.SpanSize(p) {
			return p, true
		}
	}
	// Short rows have no item under the lane, take the closest one.
	return hi, true
}

// secondary moves inside the pivot's row. Circular focus wraps within the
// row, continuous focus carries on into the neighbouring row.
func (m *Manager) secondary(toEnd bool, n int) (int, bool) {
	first, last := m.strategy.GroupRange(m.pivot, n)
	to := m.pivot - 1
	if toEnd {
		to = m.pivot + 1
	}
	if to >= first && to <= last {
		return to, true
	}
	switch m.opts.Focus {
	case FocusCircular:
		if first == last {
			return layout.NoPosition, false
		}
		if toEnd {
			return first, true
		}
		return last, true
	case FocusContinuous:
		if to >= 0 && to < n {
			return to, true
		}
	}
	return layout.NoPosition, false
}
