package layout

import "testing"

func TestBoundsSize(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
		want   int
	}{
		{
			name:   "positive size",
			bounds: Bounds{Start: 10, End: 50},
			want:   40,
		},
		{
			name:   "zero size",
			bounds: Bounds{Start: 10, End: 10},
			want:   0,
		},
		{
			name:   "before origin",
			bounds: Bounds{Start: -100, End: -20},
			want:   80,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bounds.Size(); got != tt.want {
				t.Errorf("Size() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoundsCenter(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
		want   int
	}{
		{
			name:   "symmetric",
			bounds: Bounds{Start: 0, End: 100},
			want:   50,
		},
		{
			name:   "offset",
			bounds: Bounds{Start: 20, End: 80},
			want:   50,
		},
		{
			name:   "odd size rounds down",
			bounds: Bounds{Start: 0, End: 5},
			want:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bounds.Center(); got != tt.want {
				t.Errorf("Center() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoundsOffset(t *testing.T) {
	b := Bounds{Start: 10, End: 30, SecondaryStart: 5, SecondaryEnd: 15}
	got := b.Offset(-15)
	want := Bounds{Start: -5, End: 15, SecondaryStart: 5, SecondaryEnd: 15}
	if got != want {
		t.Errorf("Offset(-15) = %+v, want %+v", got, want)
	}
	if b.Start != 10 {
		t.Error("Offset should not modify the receiver")
	}
}

func TestBoundsRect(t *testing.T) {
	b := Bounds{Start: 100, End: 200, SecondaryStart: 0, SecondaryEnd: 50}

	tests := []struct {
		name        string
		orientation Orientation
		want        Rect
	}{
		{
			name:        "vertical",
			orientation: Vertical,
			want:        Rect{Left: 0, Top: 100, Right: 50, Bottom: 200},
		},
		{
			name:        "horizontal",
			orientation: Horizontal,
			want:        Rect{Left: 100, Top: 0, Right: 200, Bottom: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Rect(tt.orientation)
			if got != tt.want {
				t.Errorf("Rect() = %+v, want %+v", got, tt.want)
			}
			if got.Width()*got.Height() != b.Size()*b.SecondarySize() {
				t.Errorf("Rect area %d does not match bounds area", got.Width()*got.Height())
			}
		})
	}
}

func TestSizeAxes(t *testing.T) {
	s := Size{Width: 30, Height: 70}
	if s.Primary(Vertical) != 70 || s.Secondary(Vertical) != 30 {
		t.Errorf("vertical axes = (%d, %d), want (70, 30)", s.Primary(Vertical), s.Secondary(Vertical))
	}
	if s.Primary(Horizontal) != 30 || s.Secondary(Horizontal) != 70 {
		t.Errorf("horizontal axes = (%d, %d), want (30, 70)", s.Primary(Horizontal), s.Secondary(Horizontal))
	}
}
