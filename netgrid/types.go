package netgrid

import "errors"

// Sentinel errors for netgrid operations.
var (
	// ErrEmptyGrid indicates the net has no rows or no filled tiles.
	ErrEmptyGrid = errors.New("netgrid: net must contain at least one filled tile")
	// ErrUnknownTile indicates a character outside ' ', '.', '#'.
	ErrUnknownTile = errors.New("netgrid: unknown tile character")
	// ErrFaceArea indicates the filled tiles cannot form six equal square faces.
	ErrFaceArea = errors.New("netgrid: filled area is not six equal square faces")
	// ErrFaceSize indicates a non-positive face size.
	ErrFaceSize = errors.New("netgrid: face size must be positive")
	// ErrMissingInstructions indicates a puzzle without an instruction line.
	ErrMissingInstructions = errors.New("netgrid: puzzle has no instruction line")
)

// Tile is the content of a single net position.
type Tile uint8

const (
	// Absent marks a position outside every face.
	Absent Tile = iota
	// Floor is an open tile.
	Floor
	// Wall is a blocking tile.
	Wall
)

// Filled reports whether the tile belongs to a face.
func (t Tile) Filled() bool { return t != Absent }

// String implements fmt.Stringer using the net characters.
func (t Tile) String() string {
	switch t {
	case Floor:
		return "."
	case Wall:
		return "#"
	default:
		return " "
	}
}

// Grid is a rectangular tile grid. It is immutable once built.
// Width and Height are in tiles; cells[y][x] holds the tile at (x, y).
type Grid struct {
	Width, Height int
	cells         [][]Tile
	filled        int
}

// Net is a Grid partitioned into size×size faces.
type Net struct {
	grid *Grid
	size int
}

// Layout is the face-grid occupancy of a Net: Rows×Cols face positions, a
// position being occupied when its top-left tile is filled.
type Layout struct {
	Rows, Cols int
	occupied   []bool
}

// Puzzle is a parsed input file: the net and its raw instruction line.
type Puzzle struct {
	Grid *Grid
	Path string
}
