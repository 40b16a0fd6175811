package sim

import (
	"fmt"

	"github.com/rivo/uniseg"

	"github.com/matzehuels/keyline/pkg/layout"
)

// Item is one simulated adapter item.
type Item struct {
	ID     int    `json:"id"`
	Label  string `json:"label,omitempty"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	// Span is the number of grid lanes the item covers. Zero means one.
	Span int `json:"span,omitempty"`
}

// Uniform returns n items of the same size with IDs 0..n-1.
func Uniform(n, width, height int) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{ID: i, Label: fmt.Sprintf("item %d", i), Width: width, Height: height}
	}
	return items
}

// Text returns one item per label. Each item is as wide as its label's
// display width times cellWidth and lineHeight tall.
func Text(labels []string, cellWidth, lineHeight int) []Item {
	items := make([]Item, len(labels))
	for i, l := range labels {
		items[i] = Item{ID: i, Label: l, Width: uniseg.StringWidth(l) * cellWidth, Height: lineHeight}
	}
	return items
}

// Header returns a full-span item, spanning every lane of a grid.
func Header(id int, label string, width, height, spanCount int) Item {
	return Item{ID: id, Label: label, Width: width, Height: height, Span: spanCount}
}

// View is the handle the adapter binds for an item.
type View struct {
	Item Item
	// Serial distinguishes views bound for the same item.
	Serial int
}

// Label returns the bound item's label.
func (v *View) Label() string { return v.Item.Label }

// String formats the view for logs.
func (v *View) String() string {
	return fmt.Sprintf("view#%d(%d)", v.Serial, v.Item.ID)
}

// Listener receives adapter mutations.
type Listener interface {
	ItemsInserted(position, count int)
	ItemsRemoved(position, count int)
	ItemsMoved(from, to, count int)
	ItemsChanged(position, count int)
}

// Adapter is an in-memory item sequence.
type Adapter struct {
	items    []Item
	listener Listener
	serial   int
	nextID   int
	// Bound counts ItemAt calls.
	Bound int
}

// NewAdapter returns an adapter over a copy of items.
func NewAdapter(items []Item) *Adapter {
	a := &Adapter{items: append([]Item(nil), items...)}
	for _, it := range items {
		a.nextID = max(a.nextID, it.ID+1)
	}
	return a
}

// SetListener registers the mutation listener.
func (a *Adapter) SetListener(l Listener) { a.listener = l }

// ItemCount implements layout.Adapter.
func (a *Adapter) ItemCount() int { return len(a.items) }

// ItemAt implements layout.Adapter.
func (a *Adapter) ItemAt(position int) layout.View {
	a.serial++
	a.Bound++
	return &View{Item: a.items[position], Serial: a.serial}
}

// Item returns the item at position.
func (a *Adapter) Item(position int) Item { return a.items[position] }

// Items returns a copy of the items.
func (a *Adapter) Items() []Item { return append([]Item(nil), a.items...) }

// SpanSize returns the lane count of the item at position.
func (a *Adapter) SpanSize(position int) int {
	if position < 0 || position >= len(a.items) {
		return 1
	}
	return max(a.items[position].Span, 1)
}

// HasSpans reports whether any item covers more than one lane.
func (a *Adapter) HasSpans() bool {
	for _, it := range a.items {
		if it.Span > 1 {
			return true
		}
	}
	return false
}

// Insert adds items at position. Items without an ID get a fresh one.
func (a *Adapter) Insert(position int, items ...Item) {
	position = min(max(position, 0), len(a.items))
	for i := range items {
		if items[i].ID == 0 {
			items[i].ID = a.nextID
		}
		a.nextID = max(a.nextID, items[i].ID+1)
	}
	a.items = append(a.items[:position], append(append([]Item(nil), items...), a.items[position:]...)...)
	if a.listener != nil {
		a.listener.ItemsInserted(position, len(items))
	}
}

// Remove deletes count items from position.
func (a *Adapter) Remove(position, count int) {
	position = min(max(position, 0), len(a.items))
	count = min(max(count, 0), len(a.items)-position)
	a.items = append(a.items[:position], a.items[position+count:]...)
	if a.listener != nil {
		a.listener.ItemsRemoved(position, count)
	}
}

// Move moves count items from one position to another. to is expressed
// in the sequence after the items were taken out.
func (a *Adapter) Move(from, to, count int) {
	moved := append([]Item(nil), a.items[from:from+count]...)
	rest := append(append([]Item(nil), a.items[:from]...), a.items[from+count:]...)
	a.items = append(rest[:to], append(moved, rest[to:]...)...)
	if a.listener != nil {
		a.listener.ItemsMoved(from, to, count)
	}
}

// Change applies fn to count items from position.
func (a *Adapter) Change(position, count int, fn func(*Item)) {
	for i := position; i < position+count && i < len(a.items); i++ {
		fn(&a.items[i])
	}
	if a.listener != nil {
		a.listener.ItemsChanged(position, count)
	}
}
