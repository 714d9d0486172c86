package physics

import (
	"image/color"
	"math"
)

// Particle is a circular body. Its mass is implied by its radius.
type Particle struct {
	ID       int
	Position Vec2
	Velocity Vec2
	Radius   float64
	Color    color.NRGBA
}

// NewParticle places a particle uniformly inside arena with each velocity
// component drawn from [speedMin, speedMax) and given a random sign.
func NewParticle(radius float64, clr color.NRGBA, id int, arena Arena, speedMin, speedMax float64, e Entropy) Particle {
	return Particle{
		ID: id,
		Position: Vec2{
			X: Uniform(e, radius, math.Max(radius, arena.Width-radius)),
			Y: Uniform(e, radius, math.Max(radius, arena.Height-radius)),
		},
		Velocity: Vec2{
			X: Uniform(e, speedMin, speedMax) * randomSign(e),
			Y: Uniform(e, speedMin, speedMax) * randomSign(e),
		},
		Radius: radius,
		Color:  clr,
	}
}

// Mass assumes uniform density, so it scales with volume.
func (p *Particle) Mass() float64 {
	return p.Radius * p.Radius * p.Radius
}

// Left and Right are the particle's extent on the sweep axis.
func (p *Particle) Left() float64 {
	return p.Position.X - p.Radius
}

func (p *Particle) Right() float64 {
	return p.Position.X + p.Radius
}

// Integrate advances the particle one tick: cap the speed, move, clamp the
// circle into the arena and bounce off any edge it was snapped to.
func (p *Particle) Integrate(arena Arena, maxSpeed float64) {
	p.Velocity = p.Velocity.ClampLength(maxSpeed)
	p.Position = p.Position.Add(p.Velocity)

	var hitX, hitY bool
	p.Position.X, hitX = clampAxis(p.Position.X, p.Radius, arena.Width)
	p.Position.Y, hitY = clampAxis(p.Position.Y, p.Radius, arena.Height)

	// A snapped circle touches the edge exactly; reverse so it leaves next tick.
	if hitX {
		p.Velocity.X = -p.Velocity.X
	}
	if hitY {
		p.Velocity.Y = -p.Velocity.Y
	}
}
