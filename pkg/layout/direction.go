package layout

import "fmt"

// NoPosition marks the absence of an item position.
const NoPosition = -1

// Orientation selects the primary scroll axis.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// String returns the lowercase orientation name.
func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// ParseOrientation parses "vertical" or "horizontal".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "", "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("invalid orientation: %q (must be one of: vertical, horizontal)", s)
}

// Direction is a visual fill direction along the primary axis.
type Direction int

const (
	// Start fills towards the top (vertical) or left (horizontal) edge.
	Start Direction = iota
	// End fills towards the bottom (vertical) or right (horizontal) edge.
	End
)

// String returns "start" or "end".
func (d Direction) String() string {
	if d == End {
		return "end"
	}
	return "start"
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == End {
		return Start
	}
	return End
}

// ItemDirection is the direction in which adapter positions advance.
type ItemDirection int

const (
	// Head moves towards position 0.
	Head ItemDirection = -1
	// Tail moves towards the last position.
	Tail ItemDirection = 1
)

// Value returns the position increment, -1 or +1.
func (d ItemDirection) Value() int { return int(d) }

// String returns "head" or "tail".
func (d ItemDirection) String() string {
	if d == Head {
		return "head"
	}
	return "tail"
}

// ItemDirectionFor maps a visual direction to the item direction it implies.
// This is the only place reverse layout changes the meaning of a direction.
func ItemDirectionFor(d Direction, reverse bool) ItemDirection {
	if (d == End) != reverse {
		return Tail
	}
	return Head
}
