// Package span maps adapter positions to grid lanes.
//
// Each position occupies SpanSize consecutive lanes. Items are packed into
// groups (rows in a vertical grid) greedily: an item that does not fit the
// remaining lanes of the current group starts the next one.
package span

// SizeFunc returns the number of lanes the item at position occupies.
type SizeFunc func(position int) int

// DefaultSize is the size function used when none is configured.
func DefaultSize(int) int { return 1 }

// Lookup resolves span sizes, lane indices and group indices. Results for
// non-uniform size functions are cached and must be invalidated whenever the
// adapter or the span count changes.
type Lookup struct {
	spanCount int
	size      SizeFunc
	uniform   bool

	// index[p] and group[p] are valid for p < len(index).
	index []int
	group []int
	// next lane in the group after the last cached position.
	nextLane  int
	nextGroup int
}

// NewLookup returns a lookup for spanCount lanes. A nil size function uses
// [DefaultSize].
func NewLookup(spanCount int, size SizeFunc) *Lookup {
	l := &Lookup{}
	l.Reset(spanCount, size)
	return l
}

// Reset changes the lane count and size function and drops the caches.
func (l *Lookup) Reset(spanCount int, size SizeFunc) {
	l.spanCount = max(spanCount, 1)
	l.uniform = size == nil
	if size == nil {
		size = DefaultSize
	}
	l.size = size
	l.Invalidate()
}

// SpanCount returns the number of lanes.
func (l *Lookup) SpanCount() int { return l.spanCount }

// Invalidate drops cached lane and group indices.
func (l *Lookup) Invalidate() {
	l.index = l.index[:0]
	l.group = l.group[:0]
	l.nextLane, l.nextGroup = 0, 0
}

// SpanSize returns the number of lanes of position, clamped to
// [1, SpanCount].
func (l *Lookup) SpanSize(position int) int {
	if l.uniform {
		return 1
	}
	return min(max(l.size(position), 1), l.spanCount)
}

// SpanIndex returns the first lane occupied by position.
func (l *Lookup) SpanIndex(position int) int {
	if l.uniform {
		return position % l.spanCount
	}
	l.fill(position)
	return l.index[position]
}

// SpanGroupIndex returns the group (row) index of position.
func (l *Lookup) SpanGroupIndex(position int) int {
	if l.uniform {
		return position / l.spanCount
	}
	l.fill(position)
	return l.group[position]
}

// GroupRange returns the first and last position in the group containing
// position, bounded by itemCount.
func (l *Lookup) GroupRange(position, itemCount int) (first, last int) {
	if itemCount <= 0 || position < 0 {
		return position, position
	}
	position = min(position, itemCount-1)
	if l.uniform {
		first = position - position%l.spanCount
		return first, min(first+l.spanCount, itemCount) - 1
	}
	g := l.SpanGroupIndex(position)
	first, last = position, position
	for first > 0 && l.SpanGroupIndex(first-1) == g {
		first--
	}
	for last+1 < itemCount && l.SpanGroupIndex(last+1) == g {
		last++
	}
	return first, last
}

// fill extends the caches up to and including position.
func (l *Lookup) fill(position int) {
	for p := len(l.index); p <= position; p++ {
		s := l.SpanSize(p)
		if l.nextLane+s > l.spanCount {
			l.nextLane = 0
			l.nextGroup++
		}
		l.index = append(l.index, l.nextLane)
		l.group = append(l.group, l.nextGroup)
		l.nextLane += s
		if l.nextLane == l.spanCount {
			l.nextLane = 0
			l.nextGroup++
		}
	}
}
