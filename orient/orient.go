package orient

import "fmt"

// Direction is a cardinal heading on a face's local grid.
type Direction uint8

const (
	// North moves towards y-1.
	North Direction = iota
	// East moves towards x+1.
	East
	// South moves towards y+1.
	South
	// West moves towards x-1.
	West
)

// Directions lists the four headings in encoding order.
var Directions = [4]Direction{North, East, South, West}

// steps holds the unit offset of each heading, indexed by Direction.
var steps = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Right turns the heading a quarter turn clockwise.
func (d Direction) Right() Direction { return (d + 1) % 4 }

// Left turns the heading a quarter turn counter-clockwise.
func (d Direction) Left() Direction { return (d + 3) % 4 }

// Opposite returns the reversed heading.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Step returns the unit offset (dx, dy) of one tile along d.
func (d Direction) Step() (dx, dy int) {
	s := steps[d%4]
	return s[0], s[1]
}

// Vertical reports whether d runs along the y axis (North or South).
func (d Direction) Vertical() bool { return d%2 == 0 }

// ScoreValue maps the heading to its scoring digit: East=0, South=1, West=2, North=3.
func (d Direction) ScoreValue() int { return int((d + 3) % 4) }

// Valid reports whether d is one of the four cardinal headings.
func (d Direction) Valid() bool { return d < 4 }

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Orientation is a quarter-turn rotation class. Its value is the number of
// clockwise quarter turns it applies.
type Orientation uint8

const (
	// Same keeps headings and coordinates unchanged (flat seam).
	Same Orientation = iota
	// OneClockwise rotates by 90°.
	OneClockwise
	// TwoClockwise rotates by 180°.
	TwoClockwise
	// ThreeClockwise rotates by 270°, i.e. one quarter turn counter-clockwise.
	ThreeClockwise
)

// Orientations lists the four rotation classes in encoding order.
var Orientations = [4]Orientation{Same, OneClockwise, TwoClockwise, ThreeClockwise}

// Turns returns the clockwise quarter-turn count in [0, 4).
func (o Orientation) Turns() int { return int(o % 4) }

// Combine sums the rotation counts of o and b mod 4.
func (o Orientation) Combine(b Orientation) Orientation { return (o + b) % 4 }

// Invert returns the rotation undoing o.
func (o Orientation) Invert() Orientation { return (4 - o%4) % 4 }

// Resolve rotates heading d clockwise by o quarter turns.
func (o Orientation) Resolve(d Direction) Direction {
	return Direction((uint8(o) + uint8(d)) % 4)
}

// RotatePoint rotates the local cell (x, y) of a size×size face clockwise by
// o quarter turns around the face's local origin. Cells stay inside [0, size).
func (o Orientation) RotatePoint(x, y, size int) (int, int) {
	for i := 0; i < o.Turns(); i++ {
		x, y = size-1-y, x
	}
	return x, y
}

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case Same:
		return "Same"
	case OneClockwise:
		return "OneClockwise"
	case TwoClockwise:
		return "TwoClockwise"
	case ThreeClockwise:
		return "ThreeClockwise"
	default:
		return fmt.Sprintf("Orientation(%d)", uint8(o))
	}
}

// Combine folds any number of rotations into one. Combine() == Same.
func Combine(os ...Orientation) Orientation {
	sum := Same
	for _, o := range os {
		sum = sum.Combine(o)
	}
	return sum
}

// Invert is the free-function form of Orientation.Invert.
func Invert(o Orientation) Orientation { return o.Invert() }

// Resolve is the free-function form of Orientation.Resolve.
func Resolve(o Orientation, d Direction) Direction { return o.Resolve(d) }

// Between returns the rotation that turns heading from into heading to.
func Between(from, to Direction) Orientation {
	return Orientation((uint8(to) + 4 - uint8(from)%4) % 4)
}
