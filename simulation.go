package bounce

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/dexterbg/BouncingBoxes/rgb565"
)

// Rand is the source of randomness for the simulation. It is satisfied
// by *rand.Rand from math/rand/v2; tests can supply a deterministic stub.
type Rand interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// Opts is the configuration for a Simulation.
type Opts struct {
	// N is the number of bodies (default: 8).
	N int

	// Step is the minimum wall-clock interval between simulation steps
	// (default: 50ms). Tick calls closer together than this are no-ops.
	Step time.Duration

	// Background is the clear color (default: rgb565.Black).
	Background rgb565.RGB565

	// Rand overrides the random source. nil seeds a new PCG source from
	// the wall clock.
	Rand Rand
}

// Simulation owns a fixed set of bodies and steps them at a fixed cadence.
type Simulation struct {
	surface    Surface
	bodies     []Body
	step       time.Duration
	last       time.Time
	background rgb565.RGB565
	rng        Rand
}

// New creates a Simulation on the given surface, clears the surface to
// the background color and places the bodies, each clear of every edge
// by its radius.
//
// opts can be nil to use defaults (8 bodies, 50ms step, black background).
func New(s Surface, opts *Opts) (*Simulation, error) {
	if s == nil {
		return nil, errors.New("bounce: surface is required")
	}
	if opts == nil {
		opts = &Opts{}
	}

	n := opts.N
	if n == 0 {
		n = 8
	}
	if n < 0 {
		return nil, errors.New("bounce: body count must be positive")
	}

	step := opts.Step
	if step == 0 {
		step = 50 * time.Millisecond
	}
	if step < 0 {
		return nil, errors.New("bounce: step must be positive")
	}

	bounds := s.Bounds()
	if bounds.Dx() < 3*radiusMax || bounds.Dy() < 3*radiusMax {
		return nil, errors.New("bounce: surface too small")
	}

	rng := opts.Rand
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>32))
	}

	sim := &Simulation{
		surface:    s,
		bodies:     make([]Body, n),
		step:       step,
		background: opts.Background,
		rng:        rng,
	}

	s.FillRect(bounds, sim.background)
	for i := range sim.bodies {
		sim.bodies[i] = newBody(bounds, rng)
	}

	return sim, nil
}

// Tick runs one simulation step if at least the configured step interval
// has passed since the last one, and reports whether it did. Call it from
// the host loop as often as convenient; sub-interval calls do nothing.
//
// A step is three separate passes over the bodies in a fixed order:
// advance all, erase all vacated regions, then draw all. Interleaving the
// passes per body would let one body's draw be clipped by a later body's
// erase when boxes overlap.
func (s *Simulation) Tick(now time.Time) bool {
	if now.Sub(s.last) < s.step {
		return false
	}
	s.last = now

	bounds := s.surface.Bounds()
	for i := range s.bodies {
		s.bodies[i].advance(bounds, s.rng)
	}
	for i := range s.bodies {
		s.bodies[i].erase(s.surface, s.background)
	}
	for i := range s.bodies {
		s.bodies[i].render(s.surface)
	}
	return true
}

// Len returns the number of bodies.
func (s *Simulation) Len() int {
	return len(s.bodies)
}
