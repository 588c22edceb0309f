package geo

import "math"

// Bounds is an axis-aligned world-space rectangle, west <= east and
// south <= north by construction.
type Bounds struct {
	West, South, East, North float64
}

// NewBounds builds a Bounds, panicking if the extents are inverted — callers
// own getting west/east and south/north in the right order.
func NewBounds(west, south, east, north float64) Bounds {
	if west > east || south > north {
		panic("geo: inverted bounds")
	}
	return Bounds{West: west, South: south, East: east, North: north}
}

// Grown returns a copy of b expanded by d in every direction.
func (b Bounds) Grown(d float64) Bounds {
	return Bounds{West: b.West - d, South: b.South - d, East: b.East + d, North: b.North + d}
}

// Intersects reports whether b and other share any area.
func (b Bounds) Intersects(other Bounds) bool {
	return b.West <= other.East && b.East >= other.West &&
		b.South <= other.North && b.North >= other.South
}

// Clamp returns the largest Bounds contained in both b and limits.
func (b Bounds) Clamp(limits Bounds) Bounds {
	return Bounds{
		West:  math.Max(b.West, limits.West),
		South: math.Max(b.South, limits.South),
		East:  math.Min(b.East, limits.East),
		North: math.Min(b.North, limits.North),
	}
}
