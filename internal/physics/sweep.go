package physics

import (
	"cmp"
	"slices"
)

// Pair names two particles, by id, whose x extents overlap. A precedes P in
// the sweep order, so A's right edge is never past P's.
type Pair struct {
	A, P int
}

// Sweeper is a sweep-and-prune broad phase over the x axis. Its buffers are
// reused between calls, so a Sweeper must not be shared.
type Sweeper struct {
	order   []int     // slots sorted by right extent
	minLeft []float64 // minLeft[i] is the smallest left extent in order[i:]
	active  []int     // slots that may still reach a particle not yet swept
	pairs   []Pair    // output buffer
}

func NewSweeper(capacity int) *Sweeper {
	return &Sweeper{
		order:   make([]int, 0, capacity),
		minLeft: make([]float64, 0, capacity),
		active:  make([]int, 0, capacity),
		pairs:   make([]Pair, 0, capacity),
	}
}

// Sweep returns every pair of particles whose x projections overlap, each
// pair once. particles is only read; the ordering lives in the Sweeper.
// The returned slice is overwritten by the next call.
//
// Particles are visited by ascending right extent. Since a wide particle can
// come late in that order yet start further left than its predecessors, an
// active particle is only evicted once no remaining particle can reach it.
func (s *Sweeper) Sweep(particles []Particle) []Pair {
	s.pairs = s.pairs[:0]
	if len(particles) < 2 {
		return s.pairs
	}

	s.order = s.order[:0]
	for slot := range particles {
		s.order = append(s.order, slot)
	}
	slices.SortFunc(s.order, func(sa, sb int) int {
		a, b := &particles[sa], &particles[sb]
		if c := cmp.Compare(a.Right(), b.Right()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	if cap(s.minLeft) < len(s.order) {
		s.minLeft = make([]float64, len(s.order))
	}
	s.minLeft = s.minLeft[:len(s.order)]
	for i := len(s.order) - 1; i >= 0; i-- {
		left := particles[s.order[i]].Left()
		if i+1 < len(s.order) && s.minLeft[i+1] < left {
			left = s.minLeft[i+1]
		}
		s.minLeft[i] = left
	}

	s.active = s.active[:0]
	for i, slot := range s.order {
		p := &particles[slot]

		// Evict in place; survivors keep their order.
		kept := s.active[:0]
		for _, as := range s.active {
			if particles[as].Right() >= s.minLeft[i] {
				kept = append(kept, as)
			}
		}
		s.active = kept

		left := p.Left()
		for _, as := range s.active {
			a := &particles[as]
			if a.ID != p.ID && left <= a.Right() {
				s.pairs = append(s.pairs, Pair{A: a.ID, P: p.ID})
			}
		}
		s.active = append(s.active, slot)
	}
	return s.pairs
}
