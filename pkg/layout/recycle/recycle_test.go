package recycle

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/keyline/pkg/layout"
)

type recordingHost struct {
	recycled []layout.View
}

func (h *recordingHost) Measure(layout.View) (int, int) { return 0, 0 }
func (h *recordingHost) Place(layout.View, layout.Rect) {}
func (h *recordingHost) Recycle(v layout.View) { h.recycled = append(h.recycled, v) }
func (h *recordingHost) Scrap() []layout.ScrapEntry { return nil }

// column lays out n 100px children starting at start.
func column(start, n int) *layout.Window {
	w := &layout.Window{}
	for p := 0; p < n; p++ {
		s := start + p*100
		w.Add(layout.Child{Position: p, View: p, Bounds: layout.Bounds{Start: s, End: s + 100}})
	}
	return w
}

func remaining(w *layout.Window) []int {
	var out []int
	for _, c := range w.Children() {
		out = append(out, c.Position)
	}
	return out
}

func TestRecycleStart(t *testing.T) {
	host := &recordingHost{}
	r := New(host, nil)
	w := column(-350, 10) // children 0..2 end at or before -50

	if n := r.RecycleStart(w, -50, 5); n != 3 {
		t.Errorf("RecycleStart() = %d, want 3", n)
	}
	if diff := cmp.Diff([]int{3, 4, 5, 6, 7, 8, 9}, remaining(w)); diff != "" {
		t.Errorf("remaining mismatch (-want +got):\n%s", diff)
	}
	if len(host.recycled) != 3 {
		t.Errorf("host recycled %d views, want 3", len(host.recycled))
	}

	// Nothing changed, nothing more to recycle.
	if n := r.RecycleStart(w, -50, 5); n != 0 {
		t.Errorf("second RecycleStart() = %d, want 0", n)
	}
}

func TestRecycleEndKeepsPivot(t *testing.T) {
	r := New(&recordingHost{}, nil)
	w := column(0, 10)

	// The pivot at 9 is far outside but must stay.
	if n := r.RecycleEnd(w, 500, 9); n != 4 {
		t.Errorf("RecycleEnd() = %d, want 4", n)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4, 9}, remaining(w)); diff != "" {
		t.Errorf("remaining mismatch (-want +got):\n%s", diff)
	}
}

func TestRecycleWholeGroups(t *testing.T) {
	// A three lane grid, rows of 100px. Position 4 is a taller item whose
	// row neighbours have already left the viewport.
	w := &layout.Window{}
	for p := 0; p < 9; p++ {
		row := p / 3
		b := layout.Bounds{Start: row * 100, End: row*100 + 100}
		if p == 4 {
			b.End += 150
		}
		w.Add(layout.Child{Position: p, Bounds: b.Offset(-200)})
	}
	r := New(&recordingHost{}, func(p int) int { return p / 3 })

	if n := r.RecycleStart(w, 0, 8); n != 3 {
		t.Errorf("RecycleStart() = %d, want 3", n)
	}
	if diff := cmp.Diff([]int{3, 4, 5, 6, 7, 8}, remaining(w)); diff != "" {
		t.Errorf("remaining mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectInitial(t *testing.T) {
	tests := []struct {
		name          string
		adapterCount  int
		prefetchCount int
		pivot         int
		want          []int
	}{
		{"centered", 100, 4, 50, []int{48, 49, 50, 51}},
		{"odd rounds down", 100, 5, 50, []int{48, 49, 50, 51, 52}},
		{"clipped at start", 100, 4, 1, []int{0, 1, 2, 3}},
		{"clipped at end", 10, 4, 9, []int{6, 7, 8, 9}},
		{"fewer items", 3, 8, 1, []int{0, 1, 2}},
		{"disabled", 10, 0, 3, nil},
		{"no pivot", 10, 3, layout.NoPosition, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CollectInitial(tt.adapterCount, tt.prefetchCount, tt.pivot)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CollectInitial() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCollectAdjacent(t *testing.T) {
	w := column(-50, 12) // positions 0..11, extent [-50, 1150]
	st := AdjacentState{
		Viewport:  layout.Viewport{Size: 1000},
		Window:    w,
		ItemCount: 40,
		GroupRange: func(p, n int) (int, int) {
			first := p - p%4
			return first, min(first+3, n-1)
		},
	}

	got := CollectAdjacent(0, 30, st)
	want := []Prefetch{{12, 150}, {13, 150}, {14, 150}, {15, 150}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CollectAdjacent(down) mismatch (-want +got):\n%s", diff)
	}

	// Position 0 is already laid out, nothing precedes it.
	if got := CollectAdjacent(0, -30, st); got != nil {
		t.Errorf("CollectAdjacent(up) = %v, want nil", got)
	}
	// Horizontal scrolls ignore dy.
	st.Orientation = layout.Horizontal
	if got := CollectAdjacent(0, 30, st); got != nil {
		t.Errorf("CollectAdjacent(dy on horizontal) = %v, want nil", got)
	}
	// Reverse layouts put higher positions before the visual start.
	st.Orientation = layout.Vertical
	st.Reverse = true
	got = CollectAdjacent(0, -30, st)
	if len(got) != 4 || got[0].Position != 12 || got[0].Distance != 50 {
		t.Errorf("CollectAdjacent(reverse up) = %v", got)
	}
}
