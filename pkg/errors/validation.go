package errors

import (
	"math"
	"strings"
	"unicode"
)

// MaxSpanCount bounds the number of grid lanes. Larger values are almost
// certainly a unit mix-up (pixels passed as a span count).
const MaxSpanCount = 1024

// ValidateSpanCount validates the number of lanes of a grid. A linear list
// uses a span count of 1.
func ValidateSpanCount(n int) error {
	if n < 1 {
		return New(ErrCodeInvalidConfig, "span count must be >= 1, got %d", n)
	}
	if n > MaxSpanCount {
		return New(ErrCodeInvalidConfig, "span count too large (max %d), got %d", MaxSpanCount, n)
	}
	return nil
}

// ValidatePrefetchCount validates the number of positions prefetched around
// the pivot. Zero disables prefetching.
func ValidatePrefetchCount(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidConfig, "prefetch count cannot be negative, got %d", n)
	}
	return nil
}

// ValidateFraction validates a keyline or child anchor fraction.
// Fractions must be finite and within [0, 1].
func ValidateFraction(name string, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return New(ErrCodeInvalidConfig, "%s fraction must be a finite number", name)
	}
	if f < 0 || f > 1 {
		return New(ErrCodeInvalidConfig, "%s fraction must be within [0, 1], got %g", name, f)
	}
	return nil
}

// ValidateExtraSpace validates extra layout space and item spacing values.
func ValidateExtraSpace(name string, px int) error {
	if px < 0 {
		return New(ErrCodeInvalidConfig, "%s cannot be negative, got %d", name, px)
	}
	return nil
}

// ValidateViewport validates viewport dimensions. A zero primary size is
// allowed only for unbounded viewports.
//
// Validation rules:
//   - Sizes and paddings cannot be negative
//   - Paddings cannot consume the whole primary size of a bounded viewport
func ValidateViewport(size, secondary, paddingStart, paddingEnd int, unbounded bool) error {
	if size < 0 || secondary < 0 {
		return New(ErrCodeInvalidConfig, "viewport size cannot be negative (%dx%d)", size, secondary)
	}
	if paddingStart < 0 || paddingEnd < 0 {
		return New(ErrCodeInvalidConfig, "viewport padding cannot be negative")
	}
	if !unbounded && paddingStart+paddingEnd >= size && size > 0 {
		return New(ErrCodeInvalidConfig, "viewport padding (%d+%d) leaves no room in %d", paddingStart, paddingEnd, size)
	}
	return nil
}

// ValidatePath validates a config file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.TrimSpace(path) != path {
		return New(ErrCodeInvalidPath, "path cannot start or end with whitespace")
	}

	return nil
}
