package physics

import (
	"image/color"
	"math"
)

const tolerance = 1e-9

func approx(got, want float64) bool {
	return math.Abs(got-want) <= tolerance
}

// body builds a particle for scripted scenarios.
func body(id int, x, y, radius, vx, vy float64) Particle {
	return Particle{
		ID:       id,
		Position: NewVec2(x, y),
		Velocity: NewVec2(vx, vy),
		Radius:   radius,
		Color:    color.NRGBA{R: 255, A: 255},
	}
}

func kineticEnergy(ps ...*Particle) float64 {
	e := 0.0
	for _, p := range ps {
		v := p.Velocity.Length()
		e += 0.5 * p.Mass() * v * v
	}
	return e
}

func momentum(ps ...*Particle) Vec2 {
	var m Vec2
	for _, p := range ps {
		m = m.Add(p.Velocity.Scale(p.Mass()))
	}
	return m
}
