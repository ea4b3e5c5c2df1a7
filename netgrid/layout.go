package netgrid

// layoutOffsets are the 4-neighbour offsets (dRow, dCol) in N, E, S, W order.
var layoutOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// InBounds reports whether (row,col) lies within the face grid.
func (l *Layout) InBounds(row, col int) bool {
	return row >= 0 && row < l.Rows && col >= 0 && col < l.Cols
}

// Occupied reports whether a face sits at (row,col).
func (l *Layout) Occupied(row, col int) bool {
	return l.InBounds(row, col) && l.occupied[l.index(row, col)]
}

// Count returns the number of occupied face positions.
func (l *Layout) Count() int {
	n := 0
	for _, ok := range l.occupied {
		if ok {
			n++
		}
	}
	return n
}

// index maps (row,col) to a row-major index.
func (l *Layout) index(row, col int) int {
	return row*l.Cols + col
}

// Coordinate converts a row-major index back to (row,col).
func (l *Layout) Coordinate(idx int) (row, col int) {
	return idx / l.Cols, idx % l.Cols
}

// Components finds the 4-connected groups of occupied face positions.
// Components are discovered in row-major order of their first position;
// each is a slice of row-major indices in BFS order.
//
// Time:   O(R·C·4).
// Memory: O(R·C).
func (l *Layout) Components() [][]int {
	seen := make([]bool, len(l.occupied))
	var comps [][]int

	for i0, ok := range l.occupied {
		if !ok || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			ur, uc := l.Coordinate(u)
			for _, d := range layoutOffsets {
				vr, vc := ur+d[0], uc+d[1]
				if !l.Occupied(vr, vc) {
					continue
				}
				vi := l.index(vr, vc)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
