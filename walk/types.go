// Package walk provides the instruction model, walker state, options and
// sentinel errors of the surface walker.
package walk

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/cubewalk/facegraph"
	"github.com/katalvlaran/cubewalk/orient"
)

// Sentinel errors for walk operations.
var (
	// ErrInvalidWalk is returned when the walk needs a connection or tile the
	// face graph does not have. It indicates a broken invariant, not bad input.
	ErrInvalidWalk = errors.New("walk: invalid walk")

	// ErrBadInstruction is returned for malformed instruction text or values.
	ErrBadInstruction = errors.New("walk: bad instruction")
)

// Kind selects what an Instruction does.
type Kind uint8

const (
	// MoveForward advances Steps tiles along the heading.
	MoveForward Kind = iota
	// TurnLeft turns the heading a quarter turn counter-clockwise.
	TurnLeft
	// TurnRight turns the heading a quarter turn clockwise.
	TurnRight
)

// Instruction is one element of a walk program.
type Instruction struct {
	Kind  Kind
	Steps int // used by MoveForward only
}

// Forward returns a MoveForward instruction of n tiles.
func Forward(n int) Instruction { return Instruction{Kind: MoveForward, Steps: n} }

// Left returns a TurnLeft instruction.
func Left() Instruction { return Instruction{Kind: TurnLeft} }

// Right returns a TurnRight instruction.
func Right() Instruction { return Instruction{Kind: TurnRight} }

// String renders the instruction in path notation: "10", "L" or "R".
func (i Instruction) String() string {
	switch i.Kind {
	case MoveForward:
		return fmt.Sprintf("%d", i.Steps)
	case TurnLeft:
		return "L"
	case TurnRight:
		return "R"
	default:
		return fmt.Sprintf("Instruction(%d)", uint8(i.Kind))
	}
}

// State is the walker's position: face id, local coordinates and heading.
type State struct {
	Face    int
	X, Y    int
	Heading orient.Direction
}

// String implements fmt.Stringer.
func (s State) String() string {
	return fmt.Sprintf("face %d (%d,%d) %v", s.Face, s.X, s.Y, s.Heading)
}

// Start returns the initial state: top-left tile of face 0, heading East.
func Start() State {
	return State{Face: 0, X: 0, Y: 0, Heading: orient.East}
}

// Result holds the outcome of a walk:
//   - Final: the state after the last instruction.
//   - Moved: tiles advanced, crossings included.
//   - Crossings: face edges crossed.
//   - Blocked: move instructions cut short by a wall.
//   - Trace: every committed state, start included, when WithTrace is set.
type Result struct {
	Final     State
	Moved     int
	Crossings int
	Blocked   int
	Trace     []State
}

// Option configures Walk via functional arguments.
type Option func(*WalkOptions)

// WalkOptions holds hooks and settings of Walk.
type WalkOptions struct {
	// Logger receives debug traces of crossings and blocked moves.
	Logger zerolog.Logger

	// Trace records every committed state in Result.Trace.
	Trace bool

	// OnStep is called after every committed tile step.
	OnStep func(from, to State)

	// OnCross is called after every committed edge crossing, before OnStep.
	OnCross func(from, to State, c facegraph.Connection)

	// OnBlocked is called when a wall ends a move instruction.
	OnBlocked func(at State, ins Instruction)
}

// DefaultOptions returns WalkOptions with a no-op logger, no trace and
// no-op hooks.
func DefaultOptions() WalkOptions {
	return WalkOptions{
		Logger:    zerolog.Nop(),
		OnStep:    func(State, State) {},
		OnCross:   func(State, State, facegraph.Connection) {},
		OnBlocked: func(State, Instruction) {},
	}
}

// WithLogger sets the logger used for debug traces.
func WithLogger(l zerolog.Logger) Option {
	return func(o *WalkOptions) { o.Logger = l }
}

// WithTrace records every committed state.
func WithTrace() Option {
	return func(o *WalkOptions) { o.Trace = true }
}

// WithOnStep registers a hook run after every committed step.
func WithOnStep(fn func(from, to State)) Option {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnCross registers a hook run after every committed crossing.
func WithOnCross(fn func(from, to State, c facegraph.Connection)) Option {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnCross = fn
		}
	}
}

// WithOnBlocked registers a hook run when a wall ends a move.
func WithOnBlocked(fn func(at State, ins Instruction)) Option {
	return func(o *WalkOptions) {
		if fn != nil {
			o.OnBlocked = fn
		}
	}
}
