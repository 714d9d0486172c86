package physics

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned when two particles handed to FromParticles
// share an id.
var ErrDuplicateID = errors.New("duplicate particle id")

// TickStats describes the work done by one Tick.
type TickStats struct {
	Candidates int // pairs reported by the broad phase
	Collisions int // pairs that actually touched and were resolved
}

// Simulation owns the particle population and advances it one frame per Tick.
// Particles live in a dense slice whose slots never move; ids map to slots
// through index. Nothing outside the Simulation holds a particle pointer.
type Simulation struct {
	opts      Options
	entropy   Entropy
	particles []Particle
	index     map[int]int
	sweeper   *Sweeper
	deltas    []delta
	ticks     uint64
}

// delta accumulates one particle's corrections in batched mode.
type delta struct {
	position, velocity Vec2
}

// New validates opts and spawns opts.PopulationCount particles in arena.
func New(opts Options, arena Arena, entropy Entropy) (*Simulation, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s := &Simulation{
		opts:    opts,
		entropy: entropy,
		sweeper: NewSweeper(opts.PopulationCount),
	}
	if err := s.Reset(arena); err != nil {
		return nil, err
	}
	return s, nil
}

// FromParticles builds a Simulation around an existing population. The
// particles are copied; their ids must be unique.
func FromParticles(opts Options, particles []Particle) (*Simulation, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s := &Simulation{
		opts:    opts,
		sweeper: NewSweeper(len(particles)),
	}
	if err := s.adopt(append([]Particle(nil), particles...)); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset throws the population away and spawns a fresh one. Ids restart at 0.
func (s *Simulation) Reset(arena Arena) error {
	if s.entropy == nil {
		return fmt.Errorf("reset: simulation has no entropy source: %w", ErrInvalidOptions)
	}
	if s.opts.PopulationCount > 0 && !arena.Fits(s.opts.RadiusMax) {
		return fmt.Errorf("arena %s cannot hold radius %.2f: %w", arena, s.opts.RadiusMax, ErrInvalidOptions)
	}

	particles := make([]Particle, 0, s.opts.PopulationCount)
	for id := 0; id < s.opts.PopulationCount; id++ {
		radius := Uniform(s.entropy, s.opts.RadiusMin, s.opts.RadiusMax)
		clr := Choose(s.entropy, s.opts.Palette)
		particles = append(particles, NewParticle(radius, clr, id, arena, s.opts.SpeedMin, s.opts.SpeedMax, s.entropy))
	}
	return s.adopt(particles)
}

func (s *Simulation) adopt(particles []Particle) error {
	index := make(map[int]int, len(particles))
	for slot, p := range particles {
		if _, dup := index[p.ID]; dup {
			return fmt.Errorf("particle %d: %w", p.ID, ErrDuplicateID)
		}
		index[p.ID] = slot
	}
	s.particles = particles
	s.index = index
	s.deltas = make([]delta, len(particles))
	return nil
}

// Tick advances the simulation one frame inside arena: broad phase, narrow
// phase over every candidate, then integration and bounds for every particle.
func (s *Simulation) Tick(arena Arena) TickStats {
	var stats TickStats
	if len(s.particles) == 0 {
		return stats
	}
	s.ticks++

	pairs := s.sweeper.Sweep(s.particles)
	stats.Candidates = len(pairs)

	switch s.opts.Mode {
	case Batched:
		stats.Collisions = s.resolveBatched(pairs)
	default:
		stats.Collisions = s.resolveSequential(pairs)
	}

	for i := range s.particles {
		s.particles[i].Integrate(arena, s.opts.MaxSpeed)
	}
	return stats
}

// resolveSequential mutates particles pair by pair, so a later pair sees the
// positions and velocities written by an earlier one in the same tick.
func (s *Simulation) resolveSequential(pairs []Pair) int {
	collisions := 0
	for _, pair := range pairs {
		a := &s.particles[s.index[pair.A]]
		p := &s.particles[s.index[pair.P]]
		if Resolve(a, p) {
			collisions++
		}
	}
	return collisions
}

// resolveBatched resolves every pair against the state at the start of the
// pass. Corrections to a particle involved in several pairs are summed.
func (s *Simulation) resolveBatched(pairs []Pair) int {
	clear(s.deltas)
	collisions := 0
	for _, pair := range pairs {
		sa, sp := s.index[pair.A], s.index[pair.P]
		a, p := s.particles[sa], s.particles[sp]
		if !Resolve(&a, &p) {
			continue
		}
		collisions++
		s.deltas[sa].add(a, s.particles[sa])
		s.deltas[sp].add(p, s.particles[sp])
	}
	for slot := range s.particles {
		d := s.deltas[slot]
		s.particles[slot].Position = s.particles[slot].Position.Add(d.position)
		s.particles[slot].Velocity = s.particles[slot].Velocity.Add(d.velocity)
	}
	return collisions
}

func (d *delta) add(after, before Particle) {
	d.position = d.position.Add(after.Position.Sub(before.Position))
	d.velocity = d.velocity.Add(after.Velocity.Sub(before.Velocity))
}

// Particles returns a copy of the population in slot order.
func (s *Simulation) Particles() []Particle {
	return append([]Particle(nil), s.particles...)
}

// Particle looks a particle up by id.
func (s *Simulation) Particle(id int) (Particle, bool) {
	slot, ok := s.index[id]
	if !ok {
		return Particle{}, false
	}
	return s.particles[slot], true
}

// Len is the population size.
func (s *Simulation) Len() int {
	return len(s.particles)
}

// Ticks counts the ticks run so far on a non-empty population.
func (s *Simulation) Ticks() uint64 {
	return s.ticks
}

func (s *Simulation) Mode() ResolutionMode {
	return s.opts.Mode
}

// SetMode switches resolution semantics; it takes effect on the next Tick.
func (s *Simulation) SetMode(mode ResolutionMode) {
	s.opts.Mode = mode
}
