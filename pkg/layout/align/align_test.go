package align

import (
	"testing"

	"github.com/matzehuels/keyline/pkg/layout"
)

func TestKeyline(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		align   layout.ParentAlignment
		reverse bool
		want    int
	}{
		{"center", 1000, layout.ParentAlignment{Fraction: 0.5}, false, 500},
		{"center reverse", 1000, layout.ParentAlignment{Fraction: 0.5}, true, 500},
		{"offset only", 1000, layout.ParentAlignment{Offset: 100}, false, 100},
		{"offset only reverse", 1000, layout.ParentAlignment{Offset: 100}, true, 900},
		{"offset and fraction", 800, layout.ParentAlignment{Offset: 20, Fraction: 0.25}, false, 220},
		{"fraction truncates", 999, layout.ParentAlignment{Fraction: 0.5}, false, 499},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Keyline(tt.size, tt.align, tt.reverse)
			if got != tt.want {
				t.Errorf("Keyline() = %v, want %v", got, tt.want)
			}
			// Same inputs, same output.
			if again := Keyline(tt.size, tt.align, tt.reverse); again != got {
				t.Errorf("Keyline() not deterministic: %v then %v", got, again)
			}
		})
	}
}

func newCalc(p layout.ParentAlignment, reverse bool) *Calculator {
	c := New(p)
	c.UpdateViewport(layout.Viewport{Size: 1000, SecondarySize: 400}, reverse)
	return c
}

func TestUnknownEdgesAreUnbounded(t *testing.T) {
	c := newCalc(layout.DefaultParentAlignment(), false)
	if c.IsLayoutComplete() {
		t.Error("IsLayoutComplete() = true with no edges")
	}
	l := c.Limits()
	if l.HasStart() || l.HasEnd() {
		t.Errorf("Limits() = %+v, want unbounded", l)
	}
	if got := c.ScrollOffset(1700); got != 1200 {
		t.Errorf("ScrollOffset(1700) = %v, want 1200", got)
	}
}

func TestStartEdgePinsFirstItem(t *testing.T) {
	// Item 0 spans [450, 550] with its center on the keyline.
	c := newCalc(layout.DefaultParentAlignment(), false)
	c.UpdateStartLimit(450, 500)

	if got := c.StartLimit(); got != 450 {
		t.Errorf("StartLimit() = %v, want 450", got)
	}
	if got := c.ScrollOffset(500); got != 450 {
		t.Errorf("ScrollOffset(500) = %v, want 450", got)
	}
	if c.IsLayoutComplete() {
		t.Error("IsLayoutComplete() = true with only the start edge")
	}
}

func TestKeylinePinWithoutEdgePreference(t *testing.T) {
	c := newCalc(layout.ParentAlignment{Edge: layout.EdgeNone, Fraction: 0.5}, false)
	c.UpdateStartLimit(450, 500)
	c.UpdateEndLimit(2450, 2400)

	want := Limits{Start: 0, End: 1900}
	if got := c.Limits(); got != want {
		t.Errorf("Limits() = %+v, want %+v", got, want)
	}
}

func TestShortContent(t *testing.T) {
	// Three 100px items laid out from the keyline: [450, 750].
	tests := []struct {
		name   string
		align  layout.ParentAlignment
		want   Limits
		anchor int
		scroll int
	}{
		{
			name:   "edge wins",
			align:  layout.ParentAlignment{Edge: layout.EdgeMinMax, Fraction: 0.5},
			want:   Limits{Start: 450, End: 450},
			anchor: 600,
			scroll: 450,
		},
		{
			name:   "max edge only",
			align:  layout.ParentAlignment{Edge: layout.EdgeMax, Fraction: 0.5},
			want:   Limits{Start: -250, End: -250},
			anchor: 600,
			scroll: -250,
		},
		{
			name:   "prefer keyline",
			align:  layout.ParentAlignment{Edge: layout.EdgeMinMax, Fraction: 0.5, PreferKeylineOverEdge: true},
			want:   Limits{Start: 0, End: 200},
			anchor: 600,
			scroll: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCalc(tt.align, false)
			c.UpdateStartLimit(450, 500)
			c.UpdateEndLimit(750, 700)
			if got := c.Limits(); got != tt.want {
				t.Errorf("Limits() = %+v, want %+v", got, tt.want)
			}
			if got := c.ScrollOffset(tt.anchor); got != tt.scroll {
				t.Errorf("ScrollOffset(%d) = %v, want %v", tt.anchor, got, tt.scroll)
			}
			if !c.IsLayoutComplete() {
				t.Error("IsLayoutComplete() = false with both edges")
			}
		})
	}
}

func TestReverseShortContentPinsEnd(t *testing.T) {
	// Item 0 at the visual end [450, 550], items 1 and 2 above it.
	c := newCalc(layout.DefaultParentAlignment(), true)
	c.UpdateStartLimit(250, 300)
	c.UpdateEndLimit(550, 500)

	want := Limits{Start: -450, End: -450}
	if got := c.Limits(); got != want {
		t.Errorf("Limits() = %+v, want %+v", got, want)
	}
}

func TestReverseEdgeMapping(t *testing.T) {
	// With only a min edge, reverse layouts pin the visual end.
	c := newCalc(layout.ParentAlignment{Edge: layout.EdgeMin, Fraction: 0.5}, true)
	c.UpdateStartLimit(-500, -450)
	c.UpdateEndLimit(1200, 1150)

	want := Limits{Start: -450 - 500, End: 1200 - 1000}
	if got := c.Limits(); got != want {
		t.Errorf("Limits() = %+v, want %+v", got, want)
	}
}

func TestPaddingMovesEdgePins(t *testing.T) {
	c := New(layout.DefaultParentAlignment())
	c.UpdateViewport(layout.Viewport{Size: 1000, PaddingStart: 40, PaddingEnd: 60}, false)
	c.UpdateStartLimit(0, 50)
	c.UpdateEndLimit(3000, 2950)

	want := Limits{Start: -40, End: 3000 - 940}
	if got := c.Limits(); got != want {
		t.Errorf("Limits() = %+v, want %+v", got, want)
	}
	// The keyline ignores padding.
	if got := c.Keyline(); got != 500 {
		t.Errorf("Keyline() = %v, want 500", got)
	}
}

func TestOffsetAndInvalidate(t *testing.T) {
	c := newCalc(layout.DefaultParentAlignment(), false)
	c.UpdateStartLimit(450, 500)
	c.UpdateEndLimit(4450, 4400)
	c.Offset(450)

	want := Limits{Start: 0, End: 3000}
	if got := c.Limits(); got != want {
		t.Errorf("Limits() after Offset = %+v, want %+v", got, want)
	}

	c.InvalidateEndLimit()
	if c.Limits().HasEnd() {
		t.Error("end limit should be unbounded after InvalidateEndLimit")
	}
	c.Invalidate()
	if c.Limits().HasStart() {
		t.Error("start limit should be unbounded after Invalidate")
	}
}

func TestScrollOffsetStaysWithinLimits(t *testing.T) {
	aligns := []layout.ParentAlignment{
		layout.DefaultParentAlignment(),
		{Edge: layout.EdgeNone, Fraction: 0.3, Offset: 12},
		{Edge: layout.EdgeMin, Fraction: 1},
		{Edge: layout.EdgeMax, PreferKeylineOverEdge: true},
	}
	edges := [][4]int{
		{450, 500, 750, 700},
		{-300, -250, 5000, 4950},
		{100, 150, 120, 170},
	}
	for _, a := range aligns {
		for _, reverse := range []bool{false, true} {
			for _, e := range edges {
				c := newCalc(a, reverse)
				c.UpdateStartLimit(e[0], e[1])
				c.UpdateEndLimit(e[2], e[3])
				l := c.Limits()
				for anchor := -3000; anchor <= 6000; anchor += 37 {
					got := c.ScrollOffset(anchor)
					if got < l.Start || got > l.End {
						t.Fatalf("ScrollOffset(%d) = %d outside %+v (align %+v reverse %v)", anchor, got, l, a, reverse)
					}
				}
			}
		}
	}
}

func TestScrollDelta(t *testing.T) {
	c := newCalc(layout.DefaultParentAlignment(), false)
	c.UpdateStartLimit(-200, -150)
	c.UpdateEndLimit(1300, 1250)

	tests := []struct {
		delta, want int
	}{
		{-500, -200},
		{-50, -50},
		{0, 0},
		{120, 120},
		{900, 300},
	}
	for _, tt := range tests {
		if got := c.ScrollDelta(tt.delta); got != tt.want {
			t.Errorf("ScrollDelta(%d) = %d, want %d", tt.delta, got, tt.want)
		}
	}
}

func TestChildAnchor(t *testing.T) {
	b := layout.Bounds{Start: 100, End: 300}
	tests := []struct {
		name    string
		child   layout.ChildAlignment
		reverse bool
		want    int
	}{
		{"center", layout.DefaultChildAlignment(), false, 200},
		{"start", layout.ChildAlignment{}, false, 100},
		{"start reverse", layout.ChildAlignment{}, true, 300},
		{"offset", layout.ChildAlignment{Offset: 10, Fraction: 0.25}, false, 160},
		{"offset reverse", layout.ChildAlignment{Offset: 10, Fraction: 0.25}, true, 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newCalc(layout.DefaultParentAlignment(), tt.reverse)
			if got := c.ChildAnchor(b, tt.child); got != tt.want {
				t.Errorf("ChildAnchor() = %v, want %v", got, tt.want)
			}
		})
	}
}
