package walk

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/cubewalk/facegraph"
	"github.com/katalvlaran/cubewalk/netgrid"
	"github.com/katalvlaran/cubewalk/orient"
)

// walker encapsulates the mutable state of one Walk call.
type walker struct {
	graph *facegraph.FaceGraph
	net   facegraph.Net
	opts  WalkOptions
	log   zerolog.Logger
	state State
	res   *Result
}

// Walk runs program over the folded surface of g, starting at start, and
// looks tiles up in net (the net g was built from).
// Returns ErrInvalidWalk for a nil graph or net, an invalid start state, or
// a missing connection or tile; ErrBadInstruction for an unknown instruction
// kind or a negative step count.
func Walk(g *facegraph.FaceGraph, net facegraph.Net, start State, program []Instruction, opts ...Option) (*Result, error) {
	if g == nil || net == nil {
		return nil, fmt.Errorf("%w: nil face graph or net", ErrInvalidWalk)
	}
	if err := checkState(g, start); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		graph: g,
		net:   net,
		opts:  o,
		log:   o.Logger.With().Str("component", "walk").Logger(),
		state: start,
		res:   &Result{},
	}
	if o.Trace {
		w.res.Trace = append(w.res.Trace, start)
	}
	for i, ins := range program {
		if err := w.exec(ins); err != nil {
			return nil, fmt.Errorf("instruction %d (%v): %w", i, ins, err)
		}
	}
	w.res.Final = w.state
	w.log.Debug().Stringer("final", w.state).Int("moved", w.res.Moved).
		Int("crossings", w.res.Crossings).Int("blocked", w.res.Blocked).Msg("walk finished")

	return w.res, nil
}

// exec applies one instruction to the walker state.
func (w *walker) exec(ins Instruction) error {
	switch ins.Kind {
	case TurnLeft:
		w.state.Heading = w.state.Heading.Left()
	case TurnRight:
		w.state.Heading = w.state.Heading.Right()
	case MoveForward:
		if ins.Steps < 0 {
			return fmt.Errorf("%w: negative step count %d", ErrBadInstruction, ins.Steps)
		}
		return w.move(ins)
	default:
		return fmt.Errorf("%w: unknown kind %d", ErrBadInstruction, ins.Kind)
	}
	return nil
}

// move advances tile by tile until the count is used up or a wall is hit.
func (w *walker) move(ins Instruction) error {
	for i := 0; i < ins.Steps; i++ {
		next, c, crossed, err := step(w.graph, w.state)
		if err != nil {
			return err
		}
		tile, err := tileAt(w.graph, w.net, next)
		if err != nil {
			return err
		}
		if tile == netgrid.Wall {
			w.res.Blocked++
			w.log.Debug().Stringer("at", w.state).Stringer("ahead", next).
				Int("remaining", ins.Steps-i).Msg("blocked by wall")
			w.opts.OnBlocked(w.state, ins)
			return nil
		}

		from := w.state
		w.state = next
		w.res.Moved++
		if crossed {
			w.res.Crossings++
			w.log.Debug().Stringer("from", from).Stringer("to", next).
				Stringer("orientation", c.Orientation).Msg("edge crossed")
			w.opts.OnCross(from, next, c)
		}
		w.opts.OnStep(from, next)
		if w.opts.Trace {
			w.res.Trace = append(w.res.Trace, next)
		}
	}
	return nil
}

// step returns the state one tile ahead of s, crossing an edge when the tile
// lies off the face.
func step(g *facegraph.FaceGraph, s State) (State, facegraph.Connection, bool, error) {
	dx, dy := s.Heading.Step()
	nx, ny := s.X+dx, s.Y+dy
	if nx >= 0 && nx < g.Size() && ny >= 0 && ny < g.Size() {
		return State{Face: s.Face, X: nx, Y: ny, Heading: s.Heading}, facegraph.Connection{}, false, nil
	}
	next, c, err := Cross(g, s)
	return next, c, true, err
}

// Cross returns the state reached by leaving face s.Face through the edge s
// faces, keeping the position along that edge. The entry cell lies on the
// opposite side of the face frame and is then rotated by the connection's
// Orientation; the heading is resolved through the same Orientation.
// Returns ErrInvalidWalk when the edge is not connected.
func Cross(g *facegraph.FaceGraph, s State) (State, facegraph.Connection, error) {
	if err := checkState(g, s); err != nil {
		return State{}, facegraph.Connection{}, err
	}
	c, ok := g.Connection(s.Face, s.Heading)
	if !ok {
		return State{}, facegraph.Connection{}, fmt.Errorf("%w: face %d has no connection %v",
			ErrInvalidWalk, s.Face, s.Heading)
	}
	size := g.Size()
	x, y := s.X, s.Y
	switch s.Heading {
	case orient.North:
		y = size - 1
	case orient.South:
		y = 0
	case orient.East:
		x = 0
	case orient.West:
		x = size - 1
	}
	x, y = c.Orientation.RotatePoint(x, y, size)

	return State{Face: c.Face, X: x, Y: y, Heading: c.Orientation.Resolve(s.Heading)}, c, nil
}

// tileAt looks up the tile under s.
func tileAt(g *facegraph.FaceGraph, net facegraph.Net, s State) (netgrid.Tile, error) {
	f, err := g.Face(s.Face)
	if err != nil {
		return netgrid.Absent, fmt.Errorf("%w: %v", ErrInvalidWalk, err)
	}
	t := net.Tile(f.Row, f.Col, s.X, s.Y)
	if t == netgrid.Absent {
		return t, fmt.Errorf("%w: no tile under %v", ErrInvalidWalk, s)
	}
	return t, nil
}

// checkState validates a state against the graph.
func checkState(g *facegraph.FaceGraph, s State) error {
	if s.Face < 0 || s.Face >= g.Len() {
		return fmt.Errorf("%w: face %d out of range", ErrInvalidWalk, s.Face)
	}
	if s.X < 0 || s.X >= g.Size() || s.Y < 0 || s.Y >= g.Size() || !s.Heading.Valid() {
		return fmt.Errorf("%w: state %v off the face", ErrInvalidWalk, s)
	}
	return nil
}

// Score returns 1000*(row+1) + 4*(col+1) + heading score for the net tile
// under s.
func Score(g *facegraph.FaceGraph, s State) (int, error) {
	f, err := g.Face(s.Face)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidWalk, err)
	}
	row, col := f.Y+s.Y, f.X+s.X
	return 1000*(row+1) + 4*(col+1) + s.Heading.ScoreValue(), nil
}
