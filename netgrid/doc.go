// Package netgrid reads the unfolded cube surface (the "net") and exposes it
// as a tile grid partitioned into square faces.
//
// What:
//
//   - Grid wraps the raw rows of a net: ' ' is Absent, '.' is Floor, '#' is Wall.
//     Ragged rows are padded with Absent so the grid is rectangular.
//   - FaceSize derives the face edge length as sqrt(filled tiles / 6).
//   - Net pairs a Grid with a face size and answers Tile(faceRow, faceCol, x, y).
//   - Layout is the face-grid occupancy of a Net; Components finds its
//     4-connected pieces with a breadth-first search.
//   - Parse reads a whole puzzle: net rows, a blank line, the instruction line.
//
// Example net (face size 4, "T/cross" layout):
//
//	        ...#
//	        .#..
//	        #...
//	        ....
//	...#.......#
//	........#...
//	..#....#....
//	..........#.
//	        ...#....
//	        .....#..
//	        .#......
//	        ......#.
//
// Complexity:
//
//   - ParseGrid: O(W×H) time and memory.
//   - FaceSize:  O(1) (filled count is cached at construction).
//   - Layout:    O(R×C) for an R×C face grid; Components O(R×C×4).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no filled tiles.
//   - ErrUnknownTile: a character other than ' ', '.', '#'.
//   - ErrFaceArea: filled tiles are not six equal perfect squares.
//   - ErrFaceSize: a non-positive face size.
//   - ErrMissingInstructions: the puzzle has no instruction line.
package netgrid
