package recycle

import "github.com/matzehuels/keyline/pkg/layout"

// Prefetch is a position the host may prepare ahead of time.
type Prefetch struct {
	Position int
	// Distance is the number of pixels still to scroll before the position
	// can become visible.
	Distance int
}

// CollectInitial returns up to prefetchCount positions centered on pivot,
// in ascending order. Odd windows round the leading half down.
func CollectInitial(adapterCount, prefetchCount, pivot int) []int {
	n := min(prefetchCount, adapterCount)
	if n <= 0 || pivot < 0 {
		return nil
	}
	start := min(max(pivot-n/2, 0), adapterCount-n)
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}
	return out
}

// AdjacentState is the layout snapshot CollectAdjacent works from.
type AdjacentState struct {
	Orientation layout.Orientation
	Reverse     bool
	Viewport    layout.Viewport
	Window      *layout.Window
	ItemCount   int
	// GroupRange returns the first and last position of the group holding
	// a position. Nil means one position per group.
	GroupRange func(position, itemCount int) (first, last int)
}

// CollectAdjacent returns the positions just beyond the window edge the
// scroll (dx, dy) moves towards, one per lane of the next group.
func CollectAdjacent(dx, dy int, st AdjacentState) []Prefetch {
	delta := dy
	if st.Orientation == layout.Horizontal {
		delta = dx
	}
	if delta == 0 || st.Window == nil || st.Window.Len() == 0 {
		return nil
	}
	start, end, _ := st.Window.Extent()

	dir := layout.End
	distance := max(end-st.Viewport.ContentEnd(), 0)
	if delta < 0 {
		dir = layout.Start
		distance = max(st.Viewport.ContentStart()-start, 0)
	}

	first, _ := st.Window.First()
	last, _ := st.Window.Last()
	step := layout.ItemDirectionFor(dir, st.Reverse)
	next := last.Position + 1
	if step == layout.Head {
		next = first.Position - 1
	}
	if next < 0 || next >= st.ItemCount {
		return nil
	}

	lo, hi := next, next
	if st.GroupRange != nil {
		lo, hi = st.GroupRange(next, st.ItemCount)
	}
	out := make([]Prefetch, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		out = append(out, Prefetch{Position: p, Distance: distance})
	}
	return out
}
