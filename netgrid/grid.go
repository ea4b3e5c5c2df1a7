package netgrid

import "fmt"

// ParseGrid builds a Grid from the textual rows of a net.
// Rows may have different lengths; missing positions are Absent.
// Returns ErrEmptyGrid when no tile is filled and ErrUnknownTile for
// characters other than ' ', '.' and '#'.
// Complexity: O(W×H) time and memory.
func ParseGrid(rows []string) (*Grid, error) {
	w := 0
	for _, row := range rows {
		if len(row) > w {
			w = len(row)
		}
	}
	g := &Grid{Width: w, Height: len(rows), cells: make([][]Tile, len(rows))}
	for y, row := range rows {
		g.cells[y] = make([]Tile, w)
		for x, c := range []byte(row) {
			switch c {
			case ' ':
				// absent
			case '.':
				g.cells[y][x] = Floor
				g.filled++
			case '#':
				g.cells[y][x] = Wall
				g.filled++
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownTile, c, x, y)
			}
		}
	}
	if g.filled == 0 {
		return nil, ErrEmptyGrid
	}

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at (x,y); positions outside the grid are Absent.
// Complexity: O(1).
func (g *Grid) At(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Absent
	}
	return g.cells[y][x]
}

// Filled returns the number of Floor and Wall tiles.
func (g *Grid) Filled() int { return g.filled }

// FaceSize returns the edge length of one face: sqrt(Filled()/6).
// Returns ErrFaceArea when the filled count is not six times a perfect square.
// Complexity: O(sqrt(Filled)).
func (g *Grid) FaceSize() (int, error) {
	if g.filled%6 != 0 {
		return 0, fmt.Errorf("%w: %d tiles is not divisible by 6", ErrFaceArea, g.filled)
	}
	area := g.filled / 6
	for s := 1; s*s <= area; s++ {
		if s*s == area {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: face area %d is not a perfect square", ErrFaceArea, area)
}

// Net partitions the grid into faces of the given size.
// Returns ErrFaceSize for size <= 0.
func (g *Grid) Net(size int) (*Net, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrFaceSize, size)
	}
	return &Net{grid: g, size: size}, nil
}

// AutoNet partitions the grid using FaceSize.
func (g *Grid) AutoNet() (*Net, error) {
	size, err := g.FaceSize()
	if err != nil {
		return nil, err
	}
	return g.Net(size)
}

// Grid returns the underlying tile grid.
func (n *Net) Grid() *Grid { return n.grid }

// FaceSize returns the face edge length in tiles.
func (n *Net) FaceSize() int { return n.size }

// FaceGrid returns the number of face rows and columns covering the grid.
func (n *Net) FaceGrid() (rows, cols int) {
	return (n.grid.Height + n.size - 1) / n.size, (n.grid.Width + n.size - 1) / n.size
}

// Tile returns the tile at local (x,y) of the face at (faceRow, faceCol).
// Local coordinates outside [0, size) are Absent.
// Complexity: O(1).
func (n *Net) Tile(faceRow, faceCol, x, y int) Tile {
	if x < 0 || x >= n.size || y < 0 || y >= n.size {
		return Absent
	}
	return n.grid.At(faceCol*n.size+x, faceRow*n.size+y)
}

// Layout computes the face-grid occupancy.
// Complexity: O(R×C).
func (n *Net) Layout() *Layout {
	rows, cols := n.FaceGrid()
	l := &Layout{Rows: rows, Cols: cols, occupied: make([]bool, rows*cols)}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			l.occupied[l.index(r, c)] = n.Tile(r, c, 0, 0).Filled()
		}
	}

	return l
}
