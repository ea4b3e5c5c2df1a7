package facegraph

import (
	"fmt"

	"github.com/katalvlaran/cubewalk/orient"
)

// cornerTurns is the quarter turn a cube corner adds when an edge is inferred
// through a neighbour, keyed by [D vertical][offset diagonal].
//
// The offset is step(P)+step(D): P is the perpendicular edge towards the
// neighbour, D the edge being inferred. A diagonal offset has dx == dy,
// i.e. (+1,+1) or (-1,-1); an anti-diagonal one has dx == -dy. Crossing
// seams on the other axis flips the handedness.
var cornerTurns = [2][2]orient.Orientation{
	// horizontal D (East, West)
	{orient.ThreeClockwise, orient.OneClockwise},
	// vertical D (North, South)
	{orient.OneClockwise, orient.ThreeClockwise},
}

// cornerTurn returns the base quarter turn for inferring edge d from the
// offset (dx, dy). Both components must be ±1.
func cornerTurn(d orient.Direction, dx, dy int) (orient.Orientation, error) {
	if (dx != 1 && dx != -1) || (dy != 1 && dy != -1) {
		return orient.Same, fmt.Errorf("%w: corner offset (%d,%d) for %v is not diagonal",
			ErrMalformedNet, dx, dy, d)
	}
	axis, diag := 0, 0
	if d.Vertical() {
		axis = 1
	}
	if dx == dy {
		diag = 1
	}
	return cornerTurns[axis][diag], nil
}

// cornerOffset walks source then target back in the inferring face's frame.
// source is the neighbour's edge leading back, target the neighbour's edge
// matching the inferred direction, and via the orientation of the crossing.
func cornerOffset(via orient.Orientation, source, target orient.Direction) (dx, dy int) {
	back := via.Invert()
	sx, sy := back.Resolve(source.Opposite()).Step()
	tx, ty := back.Resolve(target).Step()
	return sx + tx, sy + ty
}

// perpendicular returns the two directions at right angles to d in index
// order, which is the order corners are tried in.
func perpendicular(d orient.Direction) [2]orient.Direction {
	if d.Vertical() {
		return [2]orient.Direction{orient.East, orient.West}
	}
	return [2]orient.Direction{orient.North, orient.South}
}
