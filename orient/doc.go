// Package orient is the small closed arithmetic shared by the face graph
// builder and the surface walker.
//
// What:
//
//   - Direction is a cardinal heading encoded North=0, East=1, South=2, West=3.
//   - Orientation is a quarter-turn rotation class: Same, OneClockwise,
//     TwoClockwise, ThreeClockwise.
//
// Both share the same 0..3 encoding, so a heading and a rotation compose
// directly: Resolve(o, d) == (o + d) mod 4.
//
// Algebra:
//
//   - Combine(a, b): rotation counts summed mod 4 (cyclic group of order 4).
//   - Invert(o):     (4 - o) mod 4, so Combine(o, Invert(o)) == Same.
//   - Resolve(o, d): rotate heading d clockwise by o quarter turns.
//
// Coordinates:
//
//	One clockwise quarter turn of a local cell inside an n×n face maps
//	(x, y) → (n-1-y, x), the same rotation a heading vector receives:
//
//	  N (0,-1) → E (1,0) → S (0,1) → W (-1,0) → N
//
// Complexity: every operation is O(1) except RotatePoint, which is O(o).
package orient
