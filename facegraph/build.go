package facegraph

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/cubewalk/orient"
)

// builder encapsulates the mutable state of one Build call.
type builder struct {
	net   Net
	opts  BuildOptions
	log   zerolog.Logger
	g     *FaceGraph
	byPos map[[2]int]int // (row, col) → face id
}

// Build folds net into a fully resolved FaceGraph.
// Returns ErrOptionViolation for bad options and ErrMalformedNet (wrapped with
// the reason) when net is not a valid cube unfolding. No partial graph is
// ever returned.
func Build(net Net, opts ...Option) (*FaceGraph, error) {
	if net == nil {
		return nil, fmt.Errorf("%w: nil net", ErrMalformedNet)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	size := net.FaceSize()
	if size <= 0 {
		return nil, fmt.Errorf("%w: face size %d", ErrMalformedNet, size)
	}

	b := &builder{
		net:   net,
		opts:  o,
		log:   o.Logger.With().Str("component", "facegraph").Logger(),
		g:     &FaceGraph{size: size, faces: make([]*Face, 0, CubeFaces)},
		byPos: make(map[[2]int]int, CubeFaces),
	}
	if err := b.scan(); err != nil {
		return nil, err
	}
	if err := b.stitch(); err != nil {
		return nil, err
	}
	if err := b.g.Validate(); err != nil {
		return nil, err
	}
	b.log.Debug().Int("size", size).Msg("net folded")

	return b.g, nil
}

// scan creates a Face for every occupied face-grid position and glues the
// faces that already touch in the net.
func (b *builder) scan() error {
	layout := b.net.Layout()
	size := b.g.size
	for r := 0; r < layout.Rows; r++ {
		for c := 0; c < layout.Cols; c++ {
			filled := b.countFilled(r, c)
			if !layout.Occupied(r, c) {
				if filled > 0 {
					return fmt.Errorf("%w: %d tiles at face position (%d,%d) outside any face",
						ErrMalformedNet, filled, r, c)
				}
				continue
			}
			if filled != size*size {
				return fmt.Errorf("%w: face at (%d,%d) covers %d tiles, want a full %d×%d square",
					ErrMalformedNet, r, c, filled, size, size)
			}
			if err := b.addFace(r, c); err != nil {
				return err
			}
		}
	}

	if n := len(b.g.faces); n != CubeFaces {
		return fmt.Errorf("%w: found %d faces, want %d", ErrMalformedNet, n, CubeFaces)
	}
	if comps := layout.Components(); len(comps) != 1 {
		return fmt.Errorf("%w: faces form %d separate pieces", ErrMalformedNet, len(comps))
	}
	b.log.Debug().Int("faces", len(b.g.faces)).Int("seams", b.g.ConnectionCount()/2).Msg("net scanned")

	return nil
}

// countFilled counts the present tiles of face position (r, c).
func (b *builder) countFilled(r, c int) int {
	n := 0
	for y := 0; y < b.g.size; y++ {
		for x := 0; x < b.g.size; x++ {
			if b.net.Tile(r, c, x, y).Filled() {
				n++
			}
		}
	}
	return n
}

// addFace appends the face at (r, c) and installs flat seams to the faces
// above and to the left. A flat seam never rotates a heading.
func (b *builder) addFace(r, c int) error {
	if len(b.g.faces) == CubeFaces {
		return fmt.Errorf("%w: more than %d faces", ErrMalformedNet, CubeFaces)
	}
	size := b.g.size
	f := &Face{ID: len(b.g.faces), Row: r, Col: c, X: c * size, Y: r * size}
	b.g.faces = append(b.g.faces, f)
	b.byPos[[2]int{r, c}] = f.ID

	if up, ok := b.byPos[[2]int{r - 1, c}]; ok {
		if err := b.install(f.ID, orient.North, Connection{Face: up, Orientation: orient.Same}); err != nil {
			return err
		}
	}
	if left, ok := b.byPos[[2]int{r, c - 1}]; ok {
		if err := b.install(f.ID, orient.West, Connection{Face: left, Orientation: orient.Same}); err != nil {
			return err
		}
	}
	return nil
}

// stitch infers the remaining connections pass by pass until all 24 exist.
func (b *builder) stitch() error {
	for pass := 1; b.g.ConnectionCount() < CubeConnections; pass++ {
		if pass > b.opts.MaxPasses {
			return fmt.Errorf("%w: %d of %d connections after %d passes",
				ErrMalformedNet, b.g.ConnectionCount(), CubeConnections, b.opts.MaxPasses)
		}
		added := 0
		for _, f := range b.g.faces {
			for _, d := range orient.Directions {
				if f.edges[d] != nil {
					continue
				}
				c, ok, err := b.infer(f, d)
				if err != nil {
					return err
				}
				if !ok {
					continue
				}
				if err := b.install(f.ID, d, c); err != nil {
					return err
				}
				added++
			}
		}
		b.log.Debug().Int("pass", pass).Int("added", added).
			Int("resolved", b.g.ConnectionCount()).Msg("stitch pass")
		if added == 0 {
			return fmt.Errorf("%w: pass %d resolved nothing (%d of %d connections)",
				ErrMalformedNet, pass, b.g.ConnectionCount(), CubeConnections)
		}
	}
	return nil
}

// infer looks for the face beyond edge d of f through a cube corner.
// It reports false when no perpendicular neighbour knows it yet.
func (b *builder) infer(f *Face, d orient.Direction) (Connection, bool, error) {
	for _, p := range perpendicular(d) {
		via := f.edges[p]
		if via == nil {
			continue
		}
		v := b.g.faces[via.Face]
		source := via.Orientation.Resolve(p).Opposite()
		target := via.Orientation.Resolve(d)
		if back := v.edges[source]; back == nil || back.Face != f.ID {
			return Connection{}, false, fmt.Errorf("%w: face %d edge %v does not lead back to face %d",
				ErrMalformedNet, v.ID, source, f.ID)
		}
		t := v.edges[target]
		if t == nil || t.Face == f.ID || t.Face == v.ID {
			continue
		}

		dx, dy := cornerOffset(via.Orientation, source, target)
		base, err := cornerTurn(d, dx, dy)
		if err != nil {
			return Connection{}, false, err
		}
		return Connection{
			Face:        t.Face,
			Orientation: orient.Combine(base, via.Orientation, t.Orientation),
		}, true, nil
	}
	return Connection{}, false, nil
}

// install sets edge d of face from to c and the mirror connection on c.Face.
func (b *builder) install(from int, d orient.Direction, c Connection) error {
	if c.Face == from {
		return fmt.Errorf("%w: face %d edge %v glued to itself", ErrMalformedNet, from, d)
	}
	f := b.g.faces[from]
	if f.edges[d] != nil {
		if *f.edges[d] == c {
			return nil
		}
		return fmt.Errorf("%w: face %d edge %v already glued %v, not %v",
			ErrMalformedNet, from, d, *f.edges[d], c)
	}
	t := b.g.faces[c.Face]
	back := c.Orientation.Resolve(d).Opposite()
	mirror := Connection{Face: from, Orientation: c.Orientation.Invert()}
	if existing := t.edges[back]; existing != nil && *existing != mirror {
		return fmt.Errorf("%w: face %d edge %v already glued %v, cannot mirror %v",
			ErrMalformedNet, t.ID, back, *existing, mirror)
	}

	f.edges[d] = &c
	b.connected(from, d, c)
	if t.edges[back] == nil {
		t.edges[back] = &mirror
		b.connected(t.ID, back, mirror)
	}
	return nil
}

// connected reports one installed directed connection.
func (b *builder) connected(from int, d orient.Direction, c Connection) {
	b.log.Debug().Int("face", from).Stringer("dir", d).
		Int("to", c.Face).Stringer("orientation", c.Orientation).Msg("connection installed")
	b.opts.OnConnect(from, d, c)
}
