package layout

import "fmt"

// ChangeKind is the type of an adapter mutation.
type ChangeKind int

const (
	ChangeNone ChangeKind = iota
	ChangeInsert
	ChangeRemove
	ChangeMove
	ChangeUpdate
)

// String returns the lowercase kind name.
func (k ChangeKind) String() string {
	switch k {
	case ChangeInsert:
		return "insert"
	case ChangeRemove:
		return "remove"
	case ChangeMove:
		return "move"
	case ChangeUpdate:
		return "change"
	}
	return "none"
}

// ItemChanges records the most recent adapter mutation. Positions refer to
// the item sequence before the mutation was applied.
type ItemChanges struct {
	Kind     ChangeKind
	Position int
	Count    int
	// To is the destination of a move, in the sequence after the moved
	// items were taken out.
	To int
}

// Inserted records count items inserted at position.
func Inserted(position, count int) ItemChanges {
	return ItemChanges{Kind: ChangeInsert, Position: position, Count: count}
}

// Removed records count items removed starting at position.
func Removed(position, count int) ItemChanges {
	return ItemChanges{Kind: ChangeRemove, Position: position, Count: count}
}

// Moved records count items moved from one position to another.
func Moved(from, to, count int) ItemChanges {
	return ItemChanges{Kind: ChangeMove, Position: from, To: to, Count: count}
}

// Updated records count items changed in place starting at position.
func Updated(position, count int) ItemChanges {
	return ItemChanges{Kind: ChangeUpdate, Position: position, Count: count}
}

// String formats the change for logs.
func (c ItemChanges) String() string {
	if c.Kind == ChangeMove {
		return fmt.Sprintf("move(%d->%d, %d)", c.Position, c.To, c.Count)
	}
	return fmt.Sprintf("%s(%d, %d)", c.Kind, c.Position, c.Count)
}

// Delta returns the change in item count caused by the mutation.
func (c ItemChanges) Delta() int {
	switch c.Kind {
	case ChangeInsert:
		return c.Count
	case ChangeRemove:
		return -c.Count
	}
	return 0
}

// Clamp fits the change into a sequence of itemCount items (the count
// before the mutation). It reports whether anything had to be adjusted.
func (c ItemChanges) Clamp(itemCount int) (ItemChanges, bool) {
	orig := c
	if c.Count < 0 {
		c.Count = 0
	}
	switch c.Kind {
	case ChangeInsert:
		c.Position = clamp(c.Position, 0, itemCount)
	case ChangeRemove, ChangeUpdate:
		c.Position = clamp(c.Position, 0, itemCount)
		c.Count = min(c.Count, itemCount-c.Position)
	case ChangeMove:
		c.Position = clamp(c.Position, 0, max(itemCount-1, 0))
		c.Count = min(c.Count, itemCount-c.Position)
		c.To = clamp(c.To, 0, max(itemCount-c.Count, 0))
	}
	return c, c != orig
}

// Remap maps a position from before the mutation to after it. It returns
// false when the item at position was removed.
func (c ItemChanges) Remap(position int) (int, bool) {
	if position < 0 || c.Count <= 0 {
		return position, true
	}
	switch c.Kind {
	case ChangeInsert:
		if position >= c.Position {
			return position + c.Count, true
		}
	case ChangeRemove:
		if position >= c.Position+c.Count {
			return position - c.Count, true
		}
		if position >= c.Position {
			return NoPosition, false
		}
	case ChangeMove:
		if position >= c.Position && position < c.Position+c.Count {
			return c.To + position - c.Position, true
		}
		p := position
		if p >= c.Position+c.Count {
			p -= c.Count
		}
		if p >= c.To {
			p += c.Count
		}
		return p, true
	}
	return position, true
}

// Intersects reports whether the mutation touches the positions in
// [first, last]. Inserts directly after last count as touching, they extend
// the window.
func (c ItemChanges) Intersects(first, last int) bool {
	if c.Count <= 0 || first > last {
		return false
	}
	switch c.Kind {
	case ChangeInsert:
		return c.Position >= first && c.Position <= last+1
	case ChangeRemove, ChangeUpdate:
		return c.Position <= last && c.Position+c.Count > first
	case ChangeMove:
		src := c.Position <= last && c.Position+c.Count > first
		// The destination is expressed after removal, map the window too.
		dst := c.To <= last && c.To+c.Count > first
		return src || dst
	}
	return false
}

// Before reports whether the mutation lies entirely before first, so it
// only renumbers the window.
func (c ItemChanges) Before(first int) bool {
	switch c.Kind {
	case ChangeInsert:
		return c.Position < first
	case ChangeRemove:
		return c.Position+c.Count <= first
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
