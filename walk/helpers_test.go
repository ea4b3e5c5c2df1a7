package walk_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubewalk/facegraph"
	"github.com/katalvlaran/cubewalk/netgrid"
)

// samplePath is the instruction line paired with sampleRows.
const samplePath = "10R5L5R10L4R5L5"

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

// fold parses rows and builds their face graph.
func fold(t testing.TB, rows []string, size int) (*facegraph.FaceGraph, *netgrid.Net) {
	t.Helper()
	grid, err := netgrid.ParseGrid(rows)
	require.NoError(t, err)
	net, err := grid.Net(size)
	require.NoError(t, err)
	g, err := facegraph.Build(net)
	require.NoError(t, err)
	return g, net
}

// cell is a face-grid position (col, row).
type cell [2]int

// floorRows renders a set of face positions as all-floor net rows.
func floorRows(cells map[cell]bool, size int) []string {
	w, h := 0, 0
	for c := range cells {
		w = max(w, c[0]+1)
		h = max(h, c[1]+1)
	}
	lines := make([]string, h*size)
	for y := range lines {
		b := []byte(strings.Repeat(" ", w*size))
		for x := range b {
			if cells[cell{x / size, y / size}] {
				b[x] = '.'
			}
		}
		lines[y] = strings.TrimRight(string(b), " ")
	}
	return lines
}

// hexominoes enumerates every fixed hexomino as a set of face positions.
func hexominoes() []map[cell]bool {
	offsets := [4]cell{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	level := map[string]map[cell]bool{"0,0": {{0, 0}: true}}
	for n := 1; n < 6; n++ {
		next := make(map[string]map[cell]bool)
		for _, s := range level {
			for c := range s {
				for _, o := range offsets {
					p := cell{c[0] + o[0], c[1] + o[1]}
					if s[p] {
						continue
					}
					grown := map[cell]bool{p: true}
					minC, minR := p[0], p[1]
					for q := range s {
						grown[q] = true
						minC, minR = min(minC, q[0]), min(minR, q[1])
					}
					shifted := make(map[cell]bool, len(grown))
					keys := make([]string, 0, len(grown))
					for q := range grown {
						q = cell{q[0] - minC, q[1] - minR}
						shifted[q] = true
						keys = append(keys, string(rune('a'+q[1]))+string(rune('a'+q[0])))
					}
					sort.Strings(keys)
					next[strings.Join(keys, "")] = shifted
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
	out := make([]map[cell]bool, 0, len(keys))
	for _, k := range keys {
		out = append(out, level[k])
	}
	return out
}

// cubeNets returns the all-floor rows of every hexomino that folds into a cube.
func cubeNets(t testing.TB, size int) [][]string {
	t.Helper()
	var out [][]string
	for _, s := range hexominoes() {
		rows := floorRows(s, size)
		grid, err := netgrid.ParseGrid(rows)
		require.NoError(t, err)
		net, err := grid.Net(size)
		require.NoError(t, err)
		if _, err := facegraph.Build(net); err == nil {
			out = append(out, rows)
		}
	}
	return out
}
