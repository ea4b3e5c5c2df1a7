package facegraph

import (
	"fmt"

	"github.com/katalvlaran/cubewalk/orient"
)

// Connection returns the glue of edge d, and false while it is unresolved.
func (f Face) Connection(d orient.Direction) (Connection, bool) {
	if !d.Valid() || f.edges[d] == nil {
		return Connection{}, false
	}
	return *f.edges[d], true
}

// Resolved returns how many of the four edges are glued.
func (f Face) Resolved() int {
	n := 0
	for _, c := range f.edges {
		if c != nil {
			n++
		}
	}
	return n
}

// Contains reports whether the net tile (x,y) lies on this face.
func (f Face) Contains(x, y, size int) bool {
	return x >= f.X && x < f.X+size && y >= f.Y && y < f.Y+size
}

// Size returns the face edge length in tiles.
func (g *FaceGraph) Size() int { return g.size }

// Len returns the number of faces.
func (g *FaceGraph) Len() int { return len(g.faces) }

// Face returns a copy of the face with the given id.
func (g *FaceGraph) Face(id int) (Face, error) {
	if id < 0 || id >= len(g.faces) {
		return Face{}, fmt.Errorf("%w: %d", ErrFaceNotFound, id)
	}
	return *g.faces[id], nil
}

// Faces returns copies of the faces in id order.
func (g *FaceGraph) Faces() []Face {
	out := make([]Face, len(g.faces))
	for i, f := range g.faces {
		out[i] = *f
	}
	return out
}

// Connection returns the glue of edge d of face id.
func (g *FaceGraph) Connection(id int, d orient.Direction) (Connection, bool) {
	if id < 0 || id >= len(g.faces) {
		return Connection{}, false
	}
	return g.faces[id].Connection(d)
}

// ConnectionCount returns the number of resolved directed connections.
func (g *FaceGraph) ConnectionCount() int {
	n := 0
	for _, f := range g.faces {
		n += f.Resolved()
	}
	return n
}

// FaceAt returns the id of the face covering net tile (x,y).
func (g *FaceGraph) FaceAt(x, y int) (int, bool) {
	for _, f := range g.faces {
		if f.Contains(x, y, g.size) {
			return f.ID, true
		}
	}
	return 0, false
}

// Distances returns the number of edge crossings from face from to every
// face, -1 for unreachable faces, using a breadth-first search.
// Complexity: O(F + C) for F faces and C connections.
func (g *FaceGraph) Distances(from int) ([]int, error) {
	if from < 0 || from >= len(g.faces) {
		return nil, fmt.Errorf("%w: %d", ErrFaceNotFound, from)
	}
	dist := make([]int, len(g.faces))
	for i := range dist {
		dist[i] = -1
	}
	dist[from] = 0
	queue := []int{from}
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, c := range g.faces[u].edges {
			if c == nil || dist[c.Face] >= 0 {
				continue
			}
			dist[c.Face] = dist[u] + 1
			queue = append(queue, c.Face)
		}
	}

	return dist, nil
}

// Opposite returns the face across the cube from face id: the only face two
// crossings away. Returns ErrMalformedNet when there is not exactly one.
func (g *FaceGraph) Opposite(id int) (int, error) {
	dist, err := g.Distances(id)
	if err != nil {
		return 0, err
	}
	opp, n := -1, 0
	for f, d := range dist {
		if d == 2 {
			opp, n = f, n+1
		}
	}
	if n != 1 {
		return 0, fmt.Errorf("%w: face %d has %d faces at distance 2", ErrMalformedNet, id, n)
	}
	return opp, nil
}

// Validate checks the cube invariants: six faces, four connections each,
// every connection mirrored with the inverse orientation, four distinct
// neighbours per face and a unique opposite face.
func (g *FaceGraph) Validate() error {
	if len(g.faces) != CubeFaces {
		return fmt.Errorf("%w: %d faces", ErrMalformedNet, len(g.faces))
	}
	for _, f := range g.faces {
		seen := make(map[int]bool, 4)
		for _, d := range orient.Directions {
			c, ok := f.Connection(d)
			if !ok {
				return fmt.Errorf("%w: face %d edge %v unresolved", ErrMalformedNet, f.ID, d)
			}
			if c.Face == f.ID || seen[c.Face] {
				return fmt.Errorf("%w: face %d edge %v repeats neighbour %d", ErrMalformedNet, f.ID, d, c.Face)
			}
			seen[c.Face] = true

			back := c.Orientation.Resolve(d).Opposite()
			m, ok := g.Connection(c.Face, back)
			if !ok || m.Face != f.ID || m.Orientation != c.Orientation.Invert() {
				return fmt.Errorf("%w: face %d edge %v %v has no mirror on edge %v",
					ErrMalformedNet, f.ID, d, c, back)
			}
		}
		if _, err := g.Opposite(f.ID); err != nil {
			return err
		}
	}
	return nil
}
