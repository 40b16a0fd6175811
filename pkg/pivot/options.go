package pivot

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/keyline/pkg/cache"
	"github.com/matzehuels/keyline/pkg/errors"
	"github.com/matzehuels/keyline/pkg/layout"
	"github.com/matzehuels/keyline/pkg/layout/span"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultSpanCount lays items out as a list.
	DefaultSpanCount = 1

	// DefaultPrefetchCount is the number of positions prefetched around the
	// pivot on the first layout.
	DefaultPrefetchCount = 4
)

// Focus selects how moves behave at the ends of the list and of grid rows.
type Focus int

const (
	// FocusStandard stops at list ends and row ends.
	FocusStandard Focus = iota
	// FocusCircular wraps around list ends and within grid rows.
	FocusCircular
	// FocusContinuous continues secondary moves into the adjacent row.
	FocusContinuous
)

// String returns the config name of the focus policy.
func (f Focus) String() string {
	switch f {
	case FocusCircular:
		return "circular"
	case FocusContinuous:
		return "continuous"
	}
	return "standard"
}

// ParseFocus parses a focus policy name.
func ParseFocus(s string) (Focus, error) {
	switch s {
	case "", "standard":
		return FocusStandard, nil
	case "circular":
		return FocusCircular, nil
	case "continuous":
		return FocusContinuous, nil
	}
	return FocusStandard, fmt.Errorf("invalid focus: %q (must be one of: standard, circular, continuous)", s)
}

// =============================================================================
// Options - Manager Configuration
// =============================================================================

// Options configures a Manager. Zero values and nil pointers select the
// defaults.
type Options struct {
	// Geometry
	Orientation layout.Orientation
	Reverse     bool
	Viewport    layout.Viewport

	// Grid options
	SpanCount int
	SpanSize  span.SizeFunc

	// Alignment options. A nil alignment selects its default (centered
	// keyline, centered anchor, both edges preferred).
	Alignment      *layout.ParentAlignment
	ChildAlignment *layout.ChildAlignment

	// Spacing is the gap between items, or rows in a grid.
	Spacing int
	// ExtraStart and ExtraEnd lay out content beyond the viewport edges.
	ExtraStart int
	ExtraEnd   int

	PrefetchCount int
	Focus         Focus

	// Runtime options
	Cache  cache.Cache
	Logger *log.Logger

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateAndSetDefaults checks the options and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.SpanCount == 0 {
		o.SpanCount = DefaultSpanCount
	}
	if o.Alignment == nil {
		p := layout.DefaultParentAlignment()
		o.Alignment = &p
	}
	if o.ChildAlignment == nil {
		c := layout.DefaultChildAlignment()
		o.ChildAlignment = &c
	}
	if err := o.Validate(); err != nil {
		return err
	}
	if o.Cache == nil {
		o.Cache = cache.NewMemoryCache()
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Validate checks the options without applying defaults.
func (o *Options) Validate() error {
	v := o.Viewport
	if err := errors.ValidateViewport(v.Size, v.SecondarySize, v.PaddingStart, v.PaddingEnd, v.Unbounded); err != nil {
		return err
	}
	if err := errors.ValidateSpanCount(o.SpanCount); err != nil {
		return err
	}
	if err := errors.ValidatePrefetchCount(o.PrefetchCount); err != nil {
		return err
	}
	if o.Alignment != nil {
		if err := ValidateAlignment(*o.Alignment); err != nil {
			return err
		}
	}
	if o.ChildAlignment != nil {
		if err := errors.ValidateFraction("child alignment", o.ChildAlignment.Fraction); err != nil {
			return err
		}
	}
	if err := errors.ValidateExtraSpace("spacing", o.Spacing); err != nil {
		return err
	}
	if err := errors.ValidateExtraSpace("extra start space", o.ExtraStart); err != nil {
		return err
	}
	return errors.ValidateExtraSpace("extra end space", o.ExtraEnd)
}

// ValidateAlignment checks a parent alignment.
func ValidateAlignment(p layout.ParentAlignment) error {
	if p.Edge < layout.EdgeNone || p.Edge > layout.EdgeMinMax {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid edge %d", int(p.Edge))
	}
	return errors.ValidateFraction("parent alignment", p.Fraction)
}
