package span

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUniformLookup(t *testing.T) {
	l := NewLookup(4, nil)

	tests := []struct {
		position  int
		wantIndex int
		wantGroup int
	}{
		{0, 0, 0},
		{3, 3, 0},
		{4, 0, 1},
		{10, 2, 2},
	}
	for _, tt := range tests {
		if got := l.SpanIndex(tt.position); got != tt.wantIndex {
			t.Errorf("SpanIndex(%d) = %d, want %d", tt.position, got, tt.wantIndex)
		}
		if got := l.SpanGroupIndex(tt.position); got != tt.wantGroup {
			t.Errorf("SpanGroupIndex(%d) = %d, want %d", tt.position, got, tt.wantGroup)
		}
		if got := l.SpanSize(tt.position); got != 1 {
			t.Errorf("SpanSize(%d) = %d, want 1", tt.position, got)
		}
	}
}

func TestVariableLookup(t *testing.T) {
	// Header rows span the whole grid, then two lanes, then 2+2.
	sizes := []int{4, 1, 1, 2, 3, 1, 9, 0}
	l := NewLookup(4, func(p int) int { return sizes[p] })

	var gotIndex, gotGroup, gotSize []int
	for p := range sizes {
		gotIndex = append(gotIndex, l.SpanIndex(p))
		gotGroup = append(gotGroup, l.SpanGroupIndex(p))
		gotSize = append(gotSize, l.SpanSize(p))
	}

	if diff := cmp.Diff([]int{4, 1, 1, 2, 3, 1, 4, 1}, gotSize); diff != "" {
		t.Errorf("SpanSize mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 0, 1, 2, 0, 3, 0, 0}, gotIndex); diff != "" {
		t.Errorf("SpanIndex mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 1, 1, 1, 2, 2, 3, 4}, gotGroup); diff != "" {
		t.Errorf("SpanGroupIndex mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupRange(t *testing.T) {
	sizes := []int{4, 1, 1, 2, 3, 1, 4}
	variable := NewLookup(4, func(p int) int { return sizes[p] })
	uniform := NewLookup(3, nil)

	tests := []struct {
		name      string
		lookup    *Lookup
		position  int
		itemCount int
		wantFirst int
		wantLast  int
	}{
		{"uniform full row", uniform, 4, 10, 3, 5},
		{"uniform last partial row", uniform, 9, 10, 9, 9},
		{"uniform clamps position", uniform, 42, 8, 6, 7},
		{"variable header", variable, 0, 7, 0, 0},
		{"variable middle", variable, 2, 7, 1, 3},
		{"variable pair", variable, 5, 7, 4, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := tt.lookup.GroupRange(tt.position, tt.itemCount)
			if first != tt.wantFirst || last != tt.wantLast {
				t.Errorf("GroupRange(%d) = %d, %d, want %d, %d", tt.position, first, last, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestInvalidateRecomputes(t *testing.T) {
	sizes := []int{1, 1, 1, 1}
	l := NewLookup(2, func(p int) int { return sizes[p] })
	if got := l.SpanGroupIndex(3); got != 1 {
		t.Fatalf("SpanGroupIndex(3) = %d, want 1", got)
	}

	sizes[0] = 2
	// Stale until invalidated.
	if got := l.SpanGroupIndex(3); got != 1 {
		t.Errorf("cached SpanGroupIndex(3) = %d, want 1", got)
	}
	l.Invalidate()
	if got := l.SpanGroupIndex(3); got != 2 {
		t.Errorf("SpanGroupIndex(3) after Invalidate = %d, want 2", got)
	}

	l.Reset(4, nil)
	if got := l.SpanGroupIndex(3); got != 0 {
		t.Errorf("SpanGroupIndex(3) after Reset = %d, want 0", got)
	}
}
