package grid

import (
	"fmt"

	"github.com/matzehuels/keyline/pkg/layout"
)

// Item is one entry of an open row.
type Item struct {
	Position  int
	SpanIndex int
	SpanSize  int
	Size      int
}

// Row is the open row of a grid fill. Items are added either towards the
// trailing lanes (Append) or the leading lanes (Prepend). The row's primary
// size is the size of its tallest item.
//
// A Row is meant to be reused across rows of one pass: Reset clears it
// without releasing its buffers.
type Row struct {
	lanes Lanes
	// occupant[i] is the position covering lane i, or NoPosition.
	occupant []int
	items    []Item
	// head and tail delimit the occupied lanes [head, tail).
	head, tail int
	height     int

	// Start is the primary-axis start of the row once it is placed.
	Start int
}

// NewRow returns an empty row over lanes.
func NewRow(lanes Lanes) *Row {
	r := &Row{lanes: lanes, occupant: make([]int, lanes.Count())}
	r.Reset()
	return r
}

// Reset empties the row.
func (r *Row) Reset() {
	for i := range r.occupant {
		r.occupant[i] = layout.NoPosition
	}
	r.items = r.items[:0]
	r.head, r.tail = r.SpanCount(), 0
	r.height = 0
	r.Start = 0
}

// SpanCount returns the number of lanes of the row.
func (r *Row) SpanCount() int { return len(r.occupant) }

// Lanes returns the lane split of the row.
func (r *Row) Lanes() Lanes { return r.lanes }

// Len returns the number of items in the row.
func (r *Row) Len() int { return len(r.items) }

// IsEmpty reports whether the row holds no items.
func (r *Row) IsEmpty() bool { return len(r.items) == 0 }

// Height returns the primary size of the row.
func (r *Row) Height() int { return r.height }

// End returns the primary-axis end of the row.
func (r *Row) End() int { return r.Start + r.height }

// Items returns the items in lane order. The slice is owned by the row.
func (r *Row) Items() []Item { return r.items }

// Occupant returns the position covering lane i.
func (r *Row) Occupant(i int) int { return r.occupant[i] }

// FitsEnd reports whether an item covering [spanIndex, spanIndex+spanSize)
// can be placed after the occupied lanes.
func (r *Row) FitsEnd(spanIndex, spanSize int) bool {
	if spanIndex < 0 || spanSize < 1 || spanIndex+spanSize > r.SpanCount() {
		return false
	}
	return r.IsEmpty() || spanIndex >= r.tail
}

// FitsStart reports whether an item covering [spanIndex, spanIndex+spanSize)
// can be placed before the occupied lanes.
func (r *Row) FitsStart(spanIndex, spanSize int) bool {
	if spanIndex < 0 || spanSize < 1 || spanIndex+spanSize > r.SpanCount() {
		return false
	}
	return r.IsEmpty() || spanIndex+spanSize <= r.head
}

// Append places an item on the trailing lanes and returns the growth of the
// row height. The growths of all items in a row sum to its height. Append
// panics if the item does not fit.
func (r *Row) Append(position, spanIndex, spanSize, size int) int {
	if !r.FitsEnd(spanIndex, spanSize) {
		panic(fmt.Sprintf("grid: position %d at lanes [%d, %d) does not fit after lane %d", position, spanIndex, spanIndex+spanSize, r.tail))
	}
	r.items = append(r.items, Item{Position: position, SpanIndex: spanIndex, SpanSize: spanSize, Size: size})
	return r.occupy(position, spanIndex, spanSize, size)
}

// Prepend places an item on the leading lanes and returns the growth of
// the row height. Prepend panics if the item does not fit.
func (r *Row) Prepend(position, spanIndex, spanSize, size int) int {
	if !r.FitsStart(spanIndex, spanSize) {
		panic(fmt.Sprintf("grid: position %d at lanes [%d, %d) does not fit before lane %d", position, spanIndex, spanIndex+spanSize, r.head))
	}
	r.items = append(r.items, Item{})
	copy(r.items[1:], r.items)
	r.items[0] = Item{Position: position, SpanIndex: spanIndex, SpanSize: spanSize, Size: size}
	return r.occupy(position, spanIndex, spanSize, size)
}

func (r *Row) occupy(position, spanIndex, spanSize, size int) int {
	for i := spanIndex; i < spanIndex+spanSize; i++ {
		r.occupant[i] = position
	}
	r.head = min(r.head, spanIndex)
	r.tail = max(r.tail, spanIndex+spanSize)
	growth := max(size-r.height, 0)
	r.height += growth
	return growth
}

// Bounds returns the bounds of item within the placed row. Items are
// aligned to the row start.
func (r *Row) Bounds(it Item) layout.Bounds {
	s, e := r.lanes.Bounds(it.SpanIndex, it.SpanSize)
	return layout.Bounds{Start: r.Start, End: r.Start + it.Size, SecondaryStart: s, SecondaryEnd: e}
}
