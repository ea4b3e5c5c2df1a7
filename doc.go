// Package cubewalk folds a flat cube net into a cube and walks it: a map
// drawn as six square faces is resolved into a face graph, and a walker
// follows turn/move instructions across the folded surface.
//
// 🚀 What is cubewalk?
//
//	A small, deterministic library that brings together:
//		• Orientation algebra: quarter-turn rotations as a cyclic group (orient)
//		• Net parsing: tiles, face partitioning, face-grid layout (netgrid)
//		• Folding: every one of the 24 face connections inferred from the
//		  layout alone, no hard-coded net shapes (facegraph)
//		• Walking: move/turn programs over the cube surface, walls, scoring (walk)
//
// ✨ Why choose cubewalk?
//
//   - Works for any of the eleven cube nets, in any rotation or mirror image
//   - No global state: each call owns its data, hooks and logger
//   - Typed sentinel errors for malformed nets and instructions
//
// Under the hood, everything is organized under these subpackages:
//
//	orient/       Direction and Orientation, the Z4 rotation group
//	netgrid/      tile grid, Net partitioning, Layout, puzzle file parsing
//	facegraph/    Build: flat seams plus corner stitching, FaceGraph queries
//	walk/         instructions, Walk, Cross, Score
//	config/       YAML, .env and CUBEWALK_* settings
//	logger/       zerolog setup for the command
//	cmd/cubewalk/ the command-line driver
//
// Quick ASCII example:
//
//	      0
//	  1 2 3
//	      4 5
//
//	folds so that 0 touches 1, 2, 3 and 5, and sits opposite 4.
//
//	go run github.com/katalvlaran/cubewalk/cmd/cubewalk -input puzzle.txt
package cubewalk
