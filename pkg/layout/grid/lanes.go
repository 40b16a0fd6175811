// Package grid packs items into rows of equally sized lanes.
package grid

import "fmt"

// Lanes splits a secondary-axis size into equal lanes. The remainder of the
// division is handed out one pixel at a time to the leading lanes, so lane
// widths always sum to the total.
type Lanes struct {
	// offsets[i] is the start of lane i, offsets[n] is the total.
	offsets []int
}

// NewLanes splits total into n lanes. It panics if n < 1.
func NewLanes(total, n int) Lanes {
	if n < 1 {
		panic(fmt.Sprintf("grid: lane count must be >= 1, got %d", n))
	}
	total = max(total, 0)
	base, extra := total/n, total%n
	offsets := make([]int, n+1)
	for i := 0; i < n; i++ {
		w := base
		if i < extra {
			w++
		}
		offsets[i+1] = offsets[i] + w
	}
	return Lanes{offsets: offsets}
}

// Count returns the number of lanes.
func (l Lanes) Count() int { return len(l.offsets) - 1 }

// Total returns the summed width of all lanes.
func (l Lanes) Total() int { return l.offsets[len(l.offsets)-1] }

// Width returns the width of lane i.
func (l Lanes) Width(i int) int { return l.offsets[i+1] - l.offsets[i] }

// Bounds returns the secondary start and end of an item covering size lanes
// from lane index.
func (l Lanes) Bounds(index, size int) (start, end int) {
	if index < 0 || size < 1 || index+size > l.Count() {
		panic(fmt.Sprintf("grid: lanes [%d, %d) outside %d lanes", index, index+size, l.Count()))
	}
	return l.offsets[index], l.offsets[index+size]
}
