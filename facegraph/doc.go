// Package facegraph folds a cube net into a graph of six faces whose edges
// are glued to each other with a known rotation.
//
// What:
//
//   - Face is one size×size square of the net with four edge slots (N, E, S, W).
//   - Connection is a directed glue (face id, Orientation): crossing it turns a
//     walker's heading Orientation quarter turns clockwise.
//   - FaceGraph is the arena of faces indexed by id. Once Build returns it holds
//     exactly 24 directed connections (12 cube edges, both ways) and is immutable.
//
// How Build works:
//
//  1. Scan the face grid in row-major order. Every occupied position becomes a
//     Face; a face directly above or to the left is glued with Orientation Same.
//  2. Reject anything that is not six full squares in one 4-connected piece.
//  3. Stitch to a fixed point: infer each unresolved edge through a cube
//     corner (below) and install its mirror with the inverse Orientation.
//  4. A pass that stitches nothing, a contradicting mirror, or exceeding the
//     pass cap means the layout is not a cube net.
//
// Corner stitching: for an unresolved direction D of face F, look at a
// perpendicular direction P already glued to face V. Three faces meet at
// every cube corner, so the face T beyond V in the direction matching D is
// the face beyond F's D edge:
//
//	      T
//	   ┌──┐
//	   │  │ ← F's D edge folds onto T
//	┌──┼──┤
//	│F │V │
//	└──┴──┘
//
// The new Orientation is the corner's quarter turn (a small lookup keyed by
// D's axis and the diagonal F→V→T walks) combined with the orientations of
// F→V and V→T.
//
// Options:
//
//   - WithMaxPasses(n): cap on stitching passes (default DefaultMaxPasses).
//   - WithLogger(l):    zerolog logger for debug traces (default zerolog.Nop()).
//   - WithOnConnect(f): hook called for every installed directed connection.
//
// Errors:
//
//   - ErrMalformedNet:    face count ≠ 6, non-square faces, disconnected layout,
//     or a layout that cannot be stitched into 24 connections.
//   - ErrOptionViolation: an invalid Option.
//   - ErrFaceNotFound:    a query for an unknown face id.
//
// Complexity: Build is O(W×H) for the scan plus O(passes×24) for stitching,
// with passes bounded by the cap.
package facegraph
