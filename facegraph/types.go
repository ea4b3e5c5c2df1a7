// Package facegraph defines the face arena, build options and sentinel
// errors of the cube folding resolver.
package facegraph

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/cubewalk/netgrid"
	"github.com/katalvlaran/cubewalk/orient"
)

// Sentinel errors for facegraph operations.
var (
	// ErrMalformedNet is returned when the net is not a valid cube unfolding.
	ErrMalformedNet = errors.New("facegraph: malformed net")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("facegraph: invalid option supplied")

	// ErrFaceNotFound is returned for a face id outside the arena.
	ErrFaceNotFound = errors.New("facegraph: face not found")
)

const (
	// CubeFaces is the number of faces of a cube.
	CubeFaces = 6
	// CubeConnections counts both directions of the 12 cube edges.
	CubeConnections = 24
	// DefaultMaxPasses caps the stitching loop. Every pass over a valid net
	// stitches at least one connection, so the cap is never reached there.
	DefaultMaxPasses = CubeConnections
)

// Net is the tile grid consumed by Build, partitioned into square faces.
// *netgrid.Net implements it.
type Net interface {
	// FaceSize returns the face edge length in tiles.
	FaceSize() int
	// Layout returns the face-grid occupancy.
	Layout() *netgrid.Layout
	// Tile returns the tile at local (x,y) of the face at (faceRow, faceCol).
	Tile(faceRow, faceCol, x, y int) netgrid.Tile
}

// Connection glues the owning face's edge to Face. Crossing it rotates a
// heading, and the crossing cell, by Orientation.
type Connection struct {
	Face        int
	Orientation orient.Orientation
}

// String implements fmt.Stringer.
func (c Connection) String() string {
	return fmt.Sprintf("→%d(%s)", c.Face, c.Orientation)
}

// Face is one square region of the net.
//
// Row and Col locate it on the face grid; X and Y are its top-left tile in
// the net. edges holds one slot per orient.Direction, nil while unresolved.
// FaceGraph hands out copies, so changing a returned Face never alters the
// graph.
type Face struct {
	ID       int
	Row, Col int
	X, Y     int

	edges [4]*Connection
}

// FaceGraph is the resolved arena of cube faces.
type FaceGraph struct {
	size  int
	faces []*Face
}

// Option configures Build via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Build.
type Option func(*BuildOptions)

// BuildOptions holds the parameters and hooks of Build.
type BuildOptions struct {
	// MaxPasses bounds the number of stitching passes.
	MaxPasses int

	// Logger receives debug traces of the scan and every stitching pass.
	Logger zerolog.Logger

	// OnConnect is called for every directed connection installed, flat seams
	// and mirrors included.
	OnConnect func(from int, d orient.Direction, c Connection)

	err error
}

// DefaultOptions returns BuildOptions with DefaultMaxPasses, a no-op logger
// and a no-op OnConnect hook.
func DefaultOptions() BuildOptions {
	return BuildOptions{
		MaxPasses: DefaultMaxPasses,
		Logger:    zerolog.Nop(),
		OnConnect: func(int, orient.Direction, Connection) {},
	}
}

// WithMaxPasses caps the stitching loop. n must be positive.
func WithMaxPasses(n int) Option {
	return func(o *BuildOptions) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxPasses must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPasses = n
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(l zerolog.Logger) Option {
	return func(o *BuildOptions) { o.Logger = l }
}

// WithOnConnect registers a hook called for every installed connection.
func WithOnConnect(fn func(from int, d orient.Direction, c Connection)) Option {
	return func(o *BuildOptions) {
		if fn != nil {
			o.OnConnect = fn
		}
	}
}
