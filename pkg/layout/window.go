package layout

import "sort"

// Window is the ordered set of children placed in the viewport, sorted by
// adapter position. The zero value is an empty window.
type Window struct {
	children []Child
}

// Len returns the number of children.
func (w *Window) Len() int { return len(w.children) }

// At returns the i-th child in position order.
func (w *Window) At(i int) Child { return w.children[i] }

// Children returns the children in position order. The slice is owned by
// the window and valid until the next mutation.
func (w *Window) Children() []Child { return w.children }

// First returns the child with the lowest position.
func (w *Window) First() (Child, bool) {
	if len(w.children) == 0 {
		return Child{}, false
	}
	return w.children[0], true
}

// Last returns the child with the highest position.
func (w *Window) Last() (Child, bool) {
	if len(w.children) == 0 {
		return Child{}, false
	}
	return w.children[len(w.children)-1], true
}

// Find returns the index of the child at position.
func (w *Window) Find(position int) (int, bool) {
	i := sort.Search(len(w.children), func(i int) bool { return w.children[i].Position >= position })
	return i, i < len(w.children) && w.children[i].Position == position
}

// Get returns the child at position.
func (w *Window) Get(position int) (Child, bool) {
	i, ok := w.Find(position)
	if !ok {
		return Child{}, false
	}
	return w.children[i], true
}

// Contains reports whether position is placed.
func (w *Window) Contains(position int) bool {
	_, ok := w.Find(position)
	return ok
}

// Add inserts c keeping position order. A child already placed at the same
// position is replaced and returned.
func (w *Window) Add(c Child) (Child, bool) {
	i, ok := w.Find(c.Position)
	if ok {
		old := w.children[i]
		w.children[i] = c
		return old, true
	}
	w.children = append(w.children, Child{})
	copy(w.children[i+1:], w.children[i:])
	w.children[i] = c
	return Child{}, false
}

// RemoveAt removes and returns the i-th child.
func (w *Window) RemoveAt(i int) Child {
	c := w.children[i]
	w.children = append(w.children[:i], w.children[i+1:]...)
	return c
}

// SetBounds updates the bounds of the i-th child.
func (w *Window) SetBounds(i int, b Bounds) {
	w.children[i].Bounds = b
}

// Offset shifts every child by delta along the primary axis.
func (w *Window) Offset(delta int) {
	for i := range w.children {
		w.children[i].Bounds = w.children[i].Bounds.Offset(delta)
	}
}

// Extent returns the smallest Start and the largest End of all children.
func (w *Window) Extent() (start, end int, ok bool) {
	if len(w.children) == 0 {
		return 0, 0, false
	}
	start, end = w.children[0].Bounds.Start, w.children[0].Bounds.End
	for _, c := range w.children[1:] {
		start = min(start, c.Bounds.Start)
		end = max(end, c.Bounds.End)
	}
	return start, end, true
}

// Renumber adds delta to every position >= from. Order is preserved as long
// as the shifted range does not collide with the rest.
func (w *Window) Renumber(from, delta int) {
	for i := range w.children {
		if w.children[i].Position >= from {
			w.children[i].Position += delta
		}
	}
}

// Clear removes all children and returns them.
func (w *Window) Clear() []Child {
	out := w.children
	w.children = nil
	return out
}
