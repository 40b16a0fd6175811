package snapshot

import (
	"fmt"

	"github.com/matzehuels/keyline/pkg/layout"
	"github.com/matzehuels/keyline/pkg/layout/align"
	"github.com/matzehuels/keyline/pkg/pivot"
)

// Source is the manager state a snapshot is taken from. *pivot.Manager
// implements it.
type Source interface {
	Options() pivot.Options
	Strategy() string
	ItemCount() int
	Pivot() int
	Keyline() int
	Limits() align.Limits
	IsLayoutComplete() bool
	Children() []layout.Child
}

// Snapshot is the captured layout state.
type Snapshot struct {
	Orientation string   `json:"orientation"`
	Reverse     bool     `json:"reverse,omitempty"`
	Viewport    Viewport `json:"viewport"`
	Strategy    string   `json:"strategy"`
	SpanCount   int      `json:"span_count,omitempty"`
	ItemCount   int      `json:"item_count"`
	Pivot       int      `json:"pivot"`
	Keyline     int      `json:"keyline"`
	Limits      Limits   `json:"limits"`
	Complete    bool     `json:"complete"`
	Children    []Child  `json:"children"`
}

// Viewport is the captured viewport geometry.
type Viewport struct {
	Size         int `json:"size"`
	Secondary    int `json:"secondary"`
	PaddingStart int `json:"padding_start,omitempty"`
	PaddingEnd   int `json:"padding_end,omitempty"`
}

// Limits holds the scroll limits. Nil means unknown.
type Limits struct {
	Start *int `json:"start,omitempty"`
	End   *int `json:"end,omitempty"`
}

// Child is one laid out item.
type Child struct {
	Position int         `json:"position"`
	Label    string      `json:"label,omitempty"`
	Rect     layout.Rect `json:"rect"`
}

// Labeler is implemented by views that carry a display label.
type Labeler interface {
	Label() string
}

// Capture takes a snapshot of src. Views are labelled through Labeler, or
// fmt.Stringer as a fallback.
func Capture(src Source) Snapshot {
	opts := src.Options()
	s := Snapshot{
		Orientation: opts.Orientation.String(),
		Reverse:     opts.Reverse,
		Viewport: Viewport{
			Size:         opts.Viewport.Size,
			Secondary:    opts.Viewport.SecondarySize,
			PaddingStart: opts.Viewport.PaddingStart,
			PaddingEnd:   opts.Viewport.PaddingEnd,
		},
		Strategy:  src.Strategy(),
		SpanCount: opts.SpanCount,
		ItemCount: src.ItemCount(),
		Pivot:     src.Pivot(),
		Keyline:   src.Keyline(),
		Complete:  src.IsLayoutComplete(),
	}
	if l := src.Limits(); l.HasStart() {
		s.Limits.Start = &l.Start
	}
	if l := src.Limits(); l.HasEnd() {
		s.Limits.End = &l.End
	}

	children := src.Children()
	s.Children = make([]Child, len(children))
	for i, c := range children {
		s.Children[i] = Child{Position: c.Position, Rect: c.Bounds.Rect(opts.Orientation)}
		switch v := c.View.(type) {
		case Labeler:
			s.Children[i].Label = v.Label()
		case fmt.Stringer:
			s.Children[i].Label = v.String()
		}
	}
	return s
}

// Horizontal reports whether the snapshot scrolls along the x axis.
func (s Snapshot) Horizontal() bool { return s.Orientation == layout.Horizontal.String() }

// Child returns the child at position.
func (s Snapshot) Child(position int) (Child, bool) {
	for _, c := range s.Children {
		if c.Position == position {
			return c, true
		}
	}
	return Child{}, false
}
