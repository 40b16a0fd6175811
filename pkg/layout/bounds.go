package layout

// Bounds is the extent of one item for the current layout pass, in primary
// and secondary axis coordinates relative to the viewport origin.
type Bounds struct {
	Start, End                   int
	SecondaryStart, SecondaryEnd int
}

// Size returns the primary-axis span of the bounds.
func (b Bounds) Size() int { return b.End - b.Start }

// SecondarySize returns the secondary-axis span of the bounds.
func (b Bounds) SecondarySize() int { return b.SecondaryEnd - b.SecondaryStart }

// Center returns the primary-axis center point of the bounds.
func (b Bounds) Center() int { return b.Start + b.Size()/2 }

// Offset returns a copy shifted by delta along the primary axis.
func (b Bounds) Offset(delta int) Bounds {
	b.Start += delta
	b.End += delta
	return b
}

// Rect converts the bounds into host coordinates for the given orientation.
func (b Bounds) Rect(o Orientation) Rect {
	if o == Horizontal {
		return Rect{Left: b.Start, Top: b.SecondaryStart, Right: b.End, Bottom: b.SecondaryEnd}
	}
	return Rect{Left: b.SecondaryStart, Top: b.Start, Right: b.SecondaryEnd, Bottom: b.End}
}

// Rect is an axis-aligned rectangle in host coordinates.
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// Width returns the horizontal span of the rectangle.
func (r Rect) Width() int { return r.Right - r.Left }

// Height returns the vertical span of the rectangle.
func (r Rect) Height() int { return r.Bottom - r.Top }

// Size is a measured width and height.
type Size struct {
	Width, Height int
}

// Primary returns the size along the scroll axis of o.
func (s Size) Primary(o Orientation) int {
	if o == Horizontal {
		return s.Width
	}
	return s.Height
}

// Secondary returns the size across the scroll axis of o.
func (s Size) Secondary(o Orientation) int {
	if o == Horizontal {
		return s.Height
	}
	return s.Width
}
