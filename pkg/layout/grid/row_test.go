package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/keyline/pkg/layout"
)

func TestRowAppend(t *testing.T) {
	r := NewRow(NewLanes(400, 4))

	steps := []struct {
		position, spanIndex, spanSize, size int
		wantGrowth                          int
	}{
		{0, 0, 1, 100, 100},
		{1, 1, 1, 80, 0},
		{2, 2, 1, 140, 40},
		{3, 3, 1, 120, 0},
	}
	sum := 0
	for _, s := range steps {
		growth := r.Append(s.position, s.spanIndex, s.spanSize, s.size)
		if growth != s.wantGrowth {
			t.Errorf("Append(%d) growth = %d, want %d", s.position, growth, s.wantGrowth)
		}
		sum += growth
	}
	if sum != r.Height() || r.Height() != 140 {
		t.Errorf("growth sum %d, Height() = %d, want 140", sum, r.Height())
	}
	if r.FitsEnd(0, 1) {
		t.Error("full row should not fit another item")
	}
}

func TestRowPrependKeepsLaneOrder(t *testing.T) {
	r := NewRow(NewLanes(400, 4))
	r.Append(6, 2, 2, 50)
	r.Prepend(5, 1, 1, 60)
	r.Prepend(4, 0, 1, 40)

	var got []int
	for _, it := range r.Items() {
		got = append(got, it.Position)
	}
	if diff := cmp.Diff([]int{4, 5, 6}, got); diff != "" {
		t.Errorf("Items() mismatch (-want +got):\n%s", diff)
	}
	lanes := []int{r.Occupant(0), r.Occupant(1), r.Occupant(2), r.Occupant(3)}
	if diff := cmp.Diff([]int{4, 5, 6, 6}, lanes); diff != "" {
		t.Errorf("occupants mismatch (-want +got):\n%s", diff)
	}
	if r.Height() != 60 {
		t.Errorf("Height() = %d, want 60", r.Height())
	}
}

func TestRowFits(t *testing.T) {
	r := NewRow(NewLanes(300, 3))

	if !r.FitsEnd(2, 1) || !r.FitsStart(0, 3) {
		t.Error("empty row should fit any in-range item")
	}
	if r.FitsEnd(2, 2) {
		t.Error("item past the last lane should not fit")
	}

	r.Append(7, 1, 1, 10)
	tests := []struct {
		name      string
		fits      func(int, int) bool
		spanIndex int
		spanSize  int
		want      bool
	}{
		{"end after tail", r.FitsEnd, 2, 1, true},
		{"end overlapping", r.FitsEnd, 1, 1, false},
		{"start before head", r.FitsStart, 0, 1, true},
		{"start overlapping", r.FitsStart, 0, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fits(tt.spanIndex, tt.spanSize); got != tt.want {
				t.Errorf("fits(%d, %d) = %v, want %v", tt.spanIndex, tt.spanSize, got, tt.want)
			}
		})
	}
}

func TestRowAppendOverflowPanics(t *testing.T) {
	r := NewRow(NewLanes(200, 2))
	r.Append(0, 0, 2, 10)

	defer func() {
		if recover() == nil {
			t.Error("Append into a full row should panic")
		}
	}()
	r.Append(1, 1, 1, 10)
}

func TestRowBoundsAndReset(t *testing.T) {
	r := NewRow(NewLanes(1003, 4))
	r.Append(8, 0, 1, 90)
	r.Append(9, 1, 3, 100)
	r.Start = 250

	got := r.Bounds(r.Items()[1])
	want := layout.Bounds{Start: 250, End: 350, SecondaryStart: 251, SecondaryEnd: 1003}
	if got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	// Items are start aligned, shorter ones do not stretch.
	if b := r.Bounds(r.Items()[0]); b.End != 340 {
		t.Errorf("Bounds().End = %d, want 340", b.End)
	}
	if r.End() != 350 {
		t.Errorf("End() = %d, want 350", r.End())
	}

	r.Reset()
	if !r.IsEmpty() || r.Height() != 0 || r.Occupant(1) != layout.NoPosition {
		t.Errorf("Reset() left %d items, height %d", r.Len(), r.Height())
	}
}

// Every position lands in exactly one row and one contiguous lane range.
func TestRowPackingConservation(t *testing.T) {
	sizes := []int{1, 2, 1, 3, 1, 1, 1, 4, 2, 2, 1, 3}
	const spans = 4

	r := NewRow(NewLanes(400, spans))
	seen := map[int]int{}
	rows := 0
	lane := 0
	flush := func() {
		for _, it := range r.Items() {
			seen[it.Position]++
			for i := it.SpanIndex; i < it.SpanIndex+it.SpanSize; i++ {
				if r.Occupant(i) != it.Position {
					t.Errorf("lane %d of row %d held by %d, want %d", i, rows, r.Occupant(i), it.Position)
				}
			}
		}
		rows++
		r.Reset()
		lane = 0
	}
	for p, s := range sizes {
		if !r.FitsEnd(lane, s) {
			flush()
		}
		r.Append(p, lane, s, 10)
		lane += s
	}
	flush()

	for p := range sizes {
		if seen[p] != 1 {
			t.Errorf("position %d packed %d times", p, seen[p])
		}
	}
}
