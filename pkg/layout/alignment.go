package layout

import (
	"fmt"
	"strings"
)

// Edge selects which content edges the viewport prefers to align to instead
// of the keyline. Min is the edge of the first adapter item, Max the edge of
// the last one.
type Edge int

const (
	// EdgeNone always aligns to the keyline.
	EdgeNone Edge = iota
	// EdgeMin pins the first item's edge to the viewport.
	EdgeMin
	// EdgeMax pins the last item's edge to the viewport.
	EdgeMax
	// EdgeMinMax pins both.
	EdgeMinMax
)

var edgeNames = map[Edge]string{
	EdgeNone:   "none",
	EdgeMin:    "min",
	EdgeMax:    "max",
	EdgeMinMax: "min_max",
}

// String returns the config name of the edge.
func (e Edge) String() string {
	if s, ok := edgeNames[e]; ok {
		return s
	}
	return fmt.Sprintf("Edge(%d)", int(e))
}

// HasMin reports whether the min edge is preferred.
func (e Edge) HasMin() bool { return e == EdgeMin || e == EdgeMinMax }

// HasMax reports whether the max edge is preferred.
func (e Edge) HasMax() bool { return e == EdgeMax || e == EdgeMinMax }

// ParseEdge parses an edge name. Dashes and case are ignored.
func ParseEdge(s string) (Edge, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	if norm == "" {
		return EdgeMinMax, nil
	}
	for e, name := range edgeNames {
		if name == norm {
			return e, nil
		}
	}
	return EdgeNone, fmt.Errorf("invalid edge: %q (must be one of: none, min, max, min_max)", s)
}

// ParentAlignment positions the keyline inside the viewport.
type ParentAlignment struct {
	Edge Edge
	// Offset is a fixed pixel distance from the viewport start.
	Offset int
	// Fraction of the viewport size added to Offset, within [0, 1].
	Fraction float64
	// PreferKeylineOverEdge keeps items on the keyline even when the content
	// is too short to reach the preferred edges.
	PreferKeylineOverEdge bool
}

// DefaultParentAlignment centers the pivot and pins both content edges.
func DefaultParentAlignment() ParentAlignment {
	return ParentAlignment{Edge: EdgeMinMax, Fraction: 0.5}
}

// ChildAlignment selects the anchor point of an item that is aligned to the
// keyline.
type ChildAlignment struct {
	// Offset is a fixed pixel distance from the item's start.
	Offset int
	// Fraction of the item size added to Offset, within [0, 1].
	Fraction float64
}

// DefaultChildAlignment anchors items at their center.
func DefaultChildAlignment() ChildAlignment {
	return ChildAlignment{Fraction: 0.5}
}

// Viewport describes the scrollable area along both axes.
type Viewport struct {
	// Size is the primary-axis size.
	Size int
	// SecondarySize is the size across the scroll axis, split between spans.
	SecondarySize int
	// PaddingStart and PaddingEnd inset the content edges on the primary axis.
	PaddingStart, PaddingEnd int
	// Unbounded marks a wrap-content viewport with no fixed primary size.
	Unbounded bool
}

// ContentStart returns the first primary coordinate inside the padding.
func (v Viewport) ContentStart() int { return v.PaddingStart }

// ContentEnd returns the primary coordinate where the end padding begins.
func (v Viewport) ContentEnd() int { return v.Size - v.PaddingEnd }
