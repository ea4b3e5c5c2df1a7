package facegraph_test

import (
	"math/rand"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubewalk/facegraph"
	"github.com/katalvlaran/cubewalk/netgrid"
	"github.com/katalvlaran/cubewalk/orient"
)

// sampleRows is the 4-tile-per-face sample net.
var sampleRows = []string{
	"        ...#",
	"        .#..",
	"        #...",
	"        ....",
	"...#.......#",
	"........#...",
	"..#....#....",
	"..........#.",
	"        ...#....",
	"        .....#..",
	"        .#......",
	"        ......#.",
}

// mustNet parses rows into a Net with the given face size.
func mustNet(t testing.TB, rows []string, size int) *netgrid.Net {
	t.Helper()
	g, err := netgrid.ParseGrid(rows)
	require.NoError(t, err)
	n, err := g.Net(size)
	require.NoError(t, err)
	return n
}

// cell is a face-grid position (col, row).
type cell [2]int

// shape is a set of face-grid positions.
type shape map[cell]bool

// normalize shifts a shape so its minimum column and row are 0.
func (s shape) normalize() shape {
	minC, minR := 1<<30, 1<<30
	for c := range s {
		minC = min(minC, c[0])
		minR = min(minR, c[1])
	}
	out := make(shape, len(s))
	for c := range s {
		out[cell{c[0] - minC, c[1] - minR}] = true
	}
	return out
}

// key renders a shape canonically for de-duplication.
func (s shape) key() string {
	cells := s.cells()
	var b strings.Builder
	for _, c := range cells {
		b.WriteByte(byte('a' + c[0]))
		b.WriteByte(byte('a' + c[1]))
	}
	return b.String()
}

// cells returns the positions in row-major order, which is face id order.
func (s shape) cells() []cell {
	out := make([]cell, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][1] != out[j][1] {
			return out[i][1] < out[j][1]
		}
		return out[i][0] < out[j][0]
	})
	return out
}

// rows renders the shape as net rows of size×size faces. wall reports
// whether a tile should be a wall.
func (s shape) rows(size int, wall func(x, y int) bool) []string {
	w, h := 0, 0
	for c := range s {
		w = max(w, c[0]+1)
		h = max(h, c[1]+1)
	}
	lines := make([]string, h*size)
	for y := range lines {
		b := []byte(strings.Repeat(" ", w*size))
		for x := range b {
			if s[cell{x / size, y / size}] {
				b[x] = '.'
				if wall != nil && wall(x, y) {
					b[x] = '#'
				}
			}
		}
		lines[y] = strings.TrimRight(string(b), " ")
	}
	return lines
}

// hexominoes enumerates every fixed hexomino.
func hexominoes() []shape {
	offsets := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	level := map[string]shape{"aa": {cell{0, 0}: true}}
	for n := 1; n < 6; n++ {
		next := make(map[string]shape)
		for _, s := range level {
			for c := range s {
				for _, o := range offsets {
					p := cell{c[0] + o[0], c[1] + o[1]}
					if s[p] {
						continue
					}
					grown := make(shape, len(s)+1)
					for q := range s {
						grown[q] = true
					}
					grown[p] = true
					grown = grown.normalize()
					next[grown.key()] = grown
				}
			}
		}
		level = next
	}
	keys := make([]string, 0, len(level))
	for k := range level {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]shape, 0, len(keys))
	for _, k := range keys {
		out = append(out, level[k])
	}
	return out
}

// vec is an integer 3D vector.
type vec [3]int

func (v vec) neg() vec { return vec{-v[0], -v[1], -v[2]} }

// frame is a face's local east axis, south axis and outward normal in 3D.
type frame struct{ ex, ey, n vec }

// headings returns the 3D vectors of N, E, S, W on the face.
func (f frame) headings() [4]vec { return [4]vec{f.ey.neg(), f.ex, f.ey, f.ex.neg()} }

// fold rolls a unit cube over the shape and returns the 3D frame of every
// face, or false when two faces land on the same side of the cube.
func fold(s shape) (map[cell]frame, bool) {
	cells := s.cells()
	frames := map[cell]frame{cells[0]: {ex: vec{1, 0, 0}, ey: vec{0, 1, 0}, n: vec{0, 0, 1}}}
	stack := []cell{cells[0]}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f := frames[c]
		for _, d := range orient.Directions {
			dx, dy := d.Step()
			nc := cell{c[0] + dx, c[1] + dy}
			if !s[nc] {
				continue
			}
			if _, ok := frames[nc]; ok {
				continue
			}
			var g frame
			switch d {
			case orient.East:
				g = frame{ex: f.n.neg(), ey: f.ey, n: f.ex}
			case orient.West:
				g = frame{ex: f.n, ey: f.ey, n: f.ex.neg()}
			case orient.South:
				g = frame{ex: f.ex, ey: f.n.neg(), n: f.ey}
			case orient.North:
				g = frame{ex: f.ex, ey: f.n, n: f.ey.neg()}
			}
			frames[nc] = g
			stack = append(stack, nc)
		}
	}
	normals := make(map[vec]bool)
	for _, f := range frames {
		normals[f.n] = true
	}
	return frames, len(frames) == len(s) && len(normals) == len(s)
}

// foldedConnections predicts every connection of a foldable shape from its
// 3D frames: the neighbour across edge d is the face whose normal is d's
// heading, and the walker arrives there heading along -n.
func foldedConnections(t testing.TB, s shape) [][4]facegraph.Connection {
	t.Helper()
	frames, ok := fold(s)
	require.True(t, ok, "shape does not fold")
	cells := s.cells()
	byNormal := make(map[vec]int, len(cells))
	for id, c := range cells {
		byNormal[frames[c].n] = id
	}
	out := make([][4]facegraph.Connection, len(cells))
	for id, c := range cells {
		f := frames[c]
		for _, d := range orient.Directions {
			to := byNormal[f.headings()[d]]
			arrive := f.n.neg()
			var h orient.Direction
			for _, e := range orient.Directions {
				if frames[cells[to]].headings()[e] == arrive {
					h = e
				}
			}
			out[id][d] = facegraph.Connection{Face: to, Orientation: orient.Between(d, h)}
		}
	}
	return out
}

// cubeNets splits the fixed hexominoes into cube nets and the rest.
func cubeNets() (nets, others []shape) {
	for _, s := range hexominoes() {
		if _, ok := fold(s); ok {
			nets = append(nets, s)
		} else {
			others = append(others, s)
		}
	}
	return nets, others
}

// randomWalls returns a wall predicate placing walls with probability p.
func randomWalls(rng *rand.Rand, p float64) func(x, y int) bool {
	return func(int, int) bool { return rng.Float64() < p }
}
