package physics

import (
	"image/color"
	"math"
	"testing"
)

func TestIntegrateClampsSpeed(t *testing.T) {
	p := body(0, 100, 100, 10, 6, 8)

	p.Integrate(Arena{Width: 400, Height: 400}, 5.6)

	if got := p.Velocity.Length(); !approx(got, 5.6) {
		t.Errorf("Speed not clamped: got=%.6f want=5.6", got)
	}
	if !approx(p.Velocity.X, 3.36) || !approx(p.Velocity.Y, 4.48) {
		t.Errorf("Clamp changed direction: got=(%.4f, %.4f)", p.Velocity.X, p.Velocity.Y)
	}
	if !approx(p.Position.X, 103.36) || !approx(p.Position.Y, 104.48) {
		t.Errorf("Position should advance by clamped velocity: got=(%.4f, %.4f)", p.Position.X, p.Position.Y)
	}
}

func TestIntegrateBouncesOffFarWall(t *testing.T) {
	p := body(0, 95, 50, 5, 3, 0)

	p.Integrate(Arena{Width: 100, Height: 100}, 5.6)

	if p.Position.X != 95 {
		t.Errorf("Not snapped to far wall: x=%.4f want=95", p.Position.X)
	}
	if p.Velocity.X != -3 {
		t.Errorf("Velocity not reflected: vx=%.4f want=-3", p.Velocity.X)
	}
}

func TestIntegrateBouncesOffNearWall(t *testing.T) {
	p := body(0, 50, 6, 5, 0, -2)

	p.Integrate(Arena{Width: 100, Height: 100}, 5.6)

	if p.Position.Y != 5 {
		t.Errorf("Not snapped to near wall: y=%.4f want=5", p.Position.Y)
	}
	if p.Velocity.Y != 2 {
		t.Errorf("Velocity not reflected: vy=%.4f want=2", p.Velocity.Y)
	}
}

func TestIntegrateFreeFlightKeepsVelocity(t *testing.T) {
	p := body(0, 50, 50, 5, 2, -1)

	p.Integrate(Arena{Width: 100, Height: 100}, 5.6)

	if p.Velocity != NewVec2(2, -1) {
		t.Errorf("Velocity changed in free flight: got=%+v", p.Velocity)
	}
	if p.Position != NewVec2(52, 49) {
		t.Errorf("Position: got=%+v want={52 49}", p.Position)
	}
}

func TestIntegrateShrunkArenaPullsParticleIn(t *testing.T) {
	// The window shrank under a particle that was near the old far corner.
	p := body(0, 780, 580, 15, 1, 1)

	p.Integrate(Arena{Width: 400, Height: 300}, 5.6)

	if p.Position.X != 385 || p.Position.Y != 285 {
		t.Errorf("Not pulled into the arena: got=(%.2f, %.2f)", p.Position.X, p.Position.Y)
	}
}

func TestNewParticleRanges(t *testing.T) {
	rng := NewEntropy(7)
	arena := Arena{Width: 300, Height: 200}
	clr := color.NRGBA{G: 200, A: 125}

	for id := 0; id < 500; id++ {
		p := NewParticle(15, clr, id, arena, 2, 4, rng)
		if p.ID != id || p.Radius != 15 || p.Color != clr {
			t.Fatalf("Identity fields not kept: %+v", p)
		}
		if p.Position.X < 15 || p.Position.X > 285 || p.Position.Y < 15 || p.Position.Y > 185 {
			t.Fatalf("Spawned outside the arena: %+v", p.Position)
		}
		for _, c := range []float64{p.Velocity.X, p.Velocity.Y} {
			if s := math.Abs(c); s < 2 || s >= 4 {
				t.Fatalf("Velocity component %.4f outside [2, 4)", c)
			}
		}
	}
}

func TestMassIsRadiusCubed(t *testing.T) {
	p := body(0, 0, 0, 3, 0, 0)
	if p.Mass() != 27 {
		t.Errorf("Mass: got=%.2f want=27", p.Mass())
	}
}
