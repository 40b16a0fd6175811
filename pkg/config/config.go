// Package config loads keyline scenario files.
//
// A scenario is a TOML file describing the viewport, the layout and
// alignment options and a synthetic item set:
//
//	moves = ["down", "right"]
//
//	[viewport]
//	size = 500
//	secondary = 1003
//
//	[layout]
//	span_count = 4
//	extra_end = 100
//	focus = "circular"
//
//	[alignment]
//	edge = "min_max"
//	fraction = 0.5
//
//	[items]
//	count = 40
//	width = 250
//	height = 100
//
//	[[items.header]]
//	position = 0
//	label = "Featured"
//	height = 50
//
// Unknown keys are rejected so typos do not silently fall back to defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/keyline/pkg/errors"
	"github.com/matzehuels/keyline/pkg/layout"
	"github.com/matzehuels/keyline/pkg/pivot"
	"github.com/matzehuels/keyline/pkg/sim"
)

// File is a decoded scenario file.
type File struct {
	Viewport  Viewport  `toml:"viewport"`
	Layout    Layout    `toml:"layout"`
	Alignment Alignment `toml:"alignment"`
	Items     Items     `toml:"items"`
	// Moves are applied in order by the simulate command.
	Moves []string `toml:"moves"`
}

// Viewport mirrors layout.Viewport.
type Viewport struct {
	Size         int  `toml:"size"`
	Secondary    int  `toml:"secondary"`
	PaddingStart int  `toml:"padding_start"`
	PaddingEnd   int  `toml:"padding_end"`
	Unbounded    bool `toml:"unbounded"`
}

// Layout holds the fill and focus options.
type Layout struct {
	Orientation string `toml:"orientation"`
	Reverse     bool   `toml:"reverse"`
	SpanCount   int    `toml:"span_count"`
	Spacing     int    `toml:"spacing"`
	ExtraStart  int    `toml:"extra_start"`
	ExtraEnd    int    `toml:"extra_end"`
	Prefetch    int    `toml:"prefetch"`
	Focus       string `toml:"focus"`
}

// Alignment holds the keyline and child anchor options. Nil fractions
// select the defaults.
type Alignment struct {
	Edge          string   `toml:"edge"`
	Offset        int      `toml:"offset"`
	Fraction      *float64 `toml:"fraction"`
	PreferKeyline bool     `toml:"prefer_keyline"`
	ChildOffset   int      `toml:"child_offset"`
	ChildFraction *float64 `toml:"child_fraction"`
}

// Items describes the synthetic item set. Labels, when present, produce
// text items measured by display width and take precedence over Count.
type Items struct {
	Count      int      `toml:"count"`
	Width      int      `toml:"width"`
	Height     int      `toml:"height"`
	Labels     []string `toml:"labels"`
	CellWidth  int      `toml:"cell_width"`
	LineHeight int      `toml:"line_height"`
	Headers    []Header `toml:"header"`
}

// Header is a full-span item inserted at a position.
type Header struct {
	Position int    `toml:"position"`
	Label    string `toml:"label"`
	Height   int    `toml:"height"`
}

// Default returns the scenario used when no file is given: a list of 100
// items in a 1000x400 viewport.
func Default() *File {
	return &File{
		Viewport: Viewport{Size: 1000, Secondary: 400},
		Layout:   Layout{SpanCount: pivot.DefaultSpanCount, Prefetch: pivot.DefaultPrefetchCount},
		Items:    Items{Count: 100, Width: 400, Height: 100},
	}
}

// Load reads and validates the scenario file at path.
func Load(path string) (*File, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scenario %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "scenario %s", path)
	}
	return f, nil
}

// Parse decodes and validates a scenario. Missing sections keep the values
// of Default.
func Parse(data []byte) (*File, error) {
	f := Default()
	md, err := toml.Decode(string(data), f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks the scenario, including the manager options it
// converts to.
func (f *File) Validate() error {
	if _, err := f.Options(); err != nil {
		return err
	}
	if _, err := f.ParseMoves(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "moves")
	}
	it := f.Items
	if it.Count < 0 || it.Width < 0 || it.Height < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "item count and sizes cannot be negative")
	}
	for _, h := range it.Headers {
		if h.Position < 0 || h.Height < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "header %q: position and height cannot be negative", h.Label)
		}
	}
	return nil
}

// Options converts the scenario to validated manager options.
func (f *File) Options() (pivot.Options, error) {
	orientation, err := layout.ParseOrientation(f.Layout.Orientation)
	if err != nil {
		return pivot.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "layout")
	}
	focus, err := pivot.ParseFocus(f.Layout.Focus)
	if err != nil {
		return pivot.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "layout")
	}
	edge, err := layout.ParseEdge(f.Alignment.Edge)
	if err != nil {
		return pivot.Options{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "alignment")
	}

	parent := layout.DefaultParentAlignment()
	parent.Edge = edge
	parent.Offset = f.Alignment.Offset
	parent.PreferKeylineOverEdge = f.Alignment.PreferKeyline
	if f.Alignment.Fraction != nil {
		parent.Fraction = *f.Alignment.Fraction
	}
	child := layout.DefaultChildAlignment()
	child.Offset = f.Alignment.ChildOffset
	if f.Alignment.ChildFraction != nil {
		child.Fraction = *f.Alignment.ChildFraction
	}

	opts := pivot.Options{
		Orientation: orientation,
		Reverse:     f.Layout.Reverse,
		Viewport: layout.Viewport{
			Size:          f.Viewport.Size,
			SecondarySize: f.Viewport.Secondary,
			PaddingStart:  f.Viewport.PaddingStart,
			PaddingEnd:    f.Viewport.PaddingEnd,
			Unbounded:     f.Viewport.Unbounded,
		},
		SpanCount:      f.Layout.SpanCount,
		Alignment:      &parent,
		ChildAlignment: &child,
		Spacing:        f.Layout.Spacing,
		ExtraStart:     f.Layout.ExtraStart,
		ExtraEnd:       f.Layout.ExtraEnd,
		PrefetchCount:  f.Layout.Prefetch,
		Focus:          focus,
	}
	if err := opts.Validate(); err != nil {
		return pivot.Options{}, err
	}
	return opts, nil
}

// ParseMoves parses the scenario moves.
func (f *File) ParseMoves() ([]pivot.Move, error) {
	return ParseMoves(f.Moves)
}

// ParseMoves parses move names, as given in scenario files or on the
// command line.
func ParseMoves(names []string) ([]pivot.Move, error) {
	out := make([]pivot.Move, 0, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		d, err := pivot.ParseMove(name)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// BuildItems returns the scenario items. Headers span every lane and are
// inserted in position order, shifting the items after them.
func (f *File) BuildItems() []sim.Item {
	it := f.Items
	var items []sim.Item
	if len(it.Labels) > 0 {
		items = sim.Text(it.Labels, max(it.CellWidth, 1), max(it.LineHeight, 1))
	} else {
		items = sim.Uniform(it.Count, it.Width, it.Height)
	}

	spans := max(f.Layout.SpanCount, 1)
	nextID := len(items)
	for _, h := range it.Headers {
		hdr := sim.Header(nextID, h.Label, f.Viewport.Secondary, h.Height, spans)
		nextID++
		pos := min(h.Position, len(items))
		items = append(items[:pos], append([]sim.Item{hdr}, items[pos:]...)...)
	}
	return items
}
