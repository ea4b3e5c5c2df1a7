// Package walk simulates a walker moving over the surface of a folded cube.
//
// What:
//
//   - Instruction is TurnLeft, TurnRight or MoveForward(n).
//   - State is the walker's face, local (x, y) in [0, size) and heading.
//   - Walk runs a program over a resolved facegraph.FaceGraph and returns the
//     final State plus counters; Score turns a State into the puzzle score.
//
// Moving one tile:
//
//  1. Step one tile along the heading.
//  2. Still on the face: a wall ends the whole instruction, floor commits.
//  3. Off the face: Cross the edge. The entry cell sits on the opposite side
//     of the face frame and is rotated by the connection's Orientation into
//     the neighbour's frame; the heading becomes Resolve(orientation, heading).
//     A wall behind the edge ends the instruction with the state untouched;
//     floor commits.
//
// Steps are taken one tile at a time since a wall or a crossing can occur at
// any of them.
//
// Score: 1000*(row+1) + 4*(col+1) + heading, where row and col are net tile
// coordinates and the heading scores East=0, South=1, West=2, North=3.
//
// Errors:
//
//   - ErrInvalidWalk:    the graph lacks a connection or the net a tile the walk
//     needs, i.e. the graph was not fully resolved.
//   - ErrBadInstruction: ParseInstructions met malformed input, or Walk got a
//     negative step count or an unknown instruction kind.
package walk
