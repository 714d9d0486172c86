package physics

import (
	"math"
	"testing"
)

func TestSeparationFavorsLargerBody(t *testing.T) {
	small := body(0, 0, 0, 10, 0, 0)
	large := body(1, 5, 0, 20, 0, 0)

	Separate(&small, &large)

	if d := small.Position.Distance(large.Position); !approx(d, 30) {
		t.Fatalf("Centers not tangent after separation: got=%.6f want=30", d)
	}
	smallMoved := math.Abs(small.Position.X)
	largeMoved := math.Abs(large.Position.X - 5)
	if !approx(smallMoved, 2*largeMoved) {
		t.Errorf("Small body should move twice as far: small=%.4f large=%.4f", smallMoved, largeMoved)
	}
	if small.Position.Y != 0 || large.Position.Y != 0 {
		t.Errorf("Separation left the x axis: small.y=%.4f large.y=%.4f", small.Position.Y, large.Position.Y)
	}
}

func TestSeparationFavorsLargerBodyWhenLargerIsFirst(t *testing.T) {
	large := body(0, 0, 0, 20, 0, 0)
	small := body(1, 5, 0, 10, 0, 0)

	Separate(&large, &small)

	if d := large.Position.Distance(small.Position); !approx(d, 30) {
		t.Fatalf("Centers not tangent after separation: got=%.6f want=30", d)
	}
	largeMoved := math.Abs(large.Position.X)
	smallMoved := math.Abs(small.Position.X - 5)
	if !approx(smallMoved, 2*largeMoved) {
		t.Errorf("Small body should move twice as far: small=%.4f large=%.4f", smallMoved, largeMoved)
	}
}

func TestHeadOnEqualMassSwapsVelocities(t *testing.T) {
	a := body(0, 0, 0, 10, 3, 0)
	b := body(1, 19, 0, 10, -3, 0)

	if !Resolve(&a, &b) {
		t.Fatal("Expected overlapping bodies to collide")
	}

	if !approx(a.Velocity.X, -3) || !approx(a.Velocity.Y, 0) {
		t.Errorf("A velocity: got=(%.4f, %.4f) want=(-3, 0)", a.Velocity.X, a.Velocity.Y)
	}
	if !approx(b.Velocity.X, 3) || !approx(b.Velocity.Y, 0) {
		t.Errorf("B velocity: got=(%.4f, %.4f) want=(3, 0)", b.Velocity.X, b.Velocity.Y)
	}
	if d := a.Position.Distance(b.Position); !approx(d, 20) {
		t.Errorf("Bodies not tangent: got=%.6f want=20", d)
	}
}

func TestSeparatedBodiesAreUntouched(t *testing.T) {
	a := body(0, 0, 0, 10, 1, 2)
	b := body(1, 30.5, 0, 20, -2, 1)
	beforeA, beforeB := a, b

	if Resolve(&a, &b) {
		t.Fatal("Separated bodies reported a collision")
	}
	if a != beforeA || b != beforeB {
		t.Errorf("Separated bodies changed: a=%+v b=%+v", a, b)
	}
}

func TestTouchingBodiesCollide(t *testing.T) {
	a := body(0, 0, 0, 10, 1, 0)
	b := body(1, 20, 0, 10, -1, 0)

	if !Resolve(&a, &b) {
		t.Error("Exactly touching bodies should be resolved")
	}
}

func TestCoincidentCentersUseFallbackNormal(t *testing.T) {
	a := body(0, 50, 50, 10, 1, 0)
	b := body(1, 50, 50, 10, -1, 0)

	if !Resolve(&a, &b) {
		t.Fatal("Coincident bodies should collide")
	}
	for _, v := range []float64{a.Position.X, a.Position.Y, b.Position.X, b.Position.Y, a.Velocity.X, b.Velocity.X} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("Non-finite state after coincident collision: a=%+v b=%+v", a, b)
		}
	}
	if !approx(a.Position.X, 40) || !approx(b.Position.X, 60) {
		t.Errorf("Expected push along +x: a.x=%.4f b.x=%.4f", a.Position.X, b.Position.X)
	}
	if !approx(a.Position.Y, 50) || !approx(b.Position.Y, 50) {
		t.Errorf("Expected y unchanged: a.y=%.4f b.y=%.4f", a.Position.Y, b.Position.Y)
	}
}

func TestExchangeConservesEnergyAndMomentum(t *testing.T) {
	a := body(0, 0, 0, 13, 2, 1)
	b := body(1, 20, 10, 17, -1, 3)
	energy := kineticEnergy(&a, &b)
	mom := momentum(&a, &b)

	Exchange(&a, &b)

	if got := kineticEnergy(&a, &b); math.Abs(got-energy) > 1e-9*energy {
		t.Errorf("Kinetic energy changed: got=%.6f want=%.6f", got, energy)
	}
	got := momentum(&a, &b)
	if math.Abs(got.X-mom.X) > 1e-9*math.Abs(mom.X)+1e-6 || math.Abs(got.Y-mom.Y) > 1e-9*math.Abs(mom.Y)+1e-6 {
		t.Errorf("Momentum changed: got=(%.4f, %.4f) want=(%.4f, %.4f)", got.X, got.Y, mom.X, mom.Y)
	}
}

func TestExchangePreservesTangentialVelocity(t *testing.T) {
	// Contact normal is the x axis, so y velocity is tangential.
	a := body(0, 0, 0, 10, 2, 1.5)
	b := body(1, 18, 0, 10, -1, -0.5)

	Exchange(&a, &b)

	if !approx(a.Velocity.Y, 1.5) || !approx(b.Velocity.Y, -0.5) {
		t.Errorf("Tangential velocity changed: a.vy=%.4f b.vy=%.4f", a.Velocity.Y, b.Velocity.Y)
	}
	if !approx(a.Velocity.X, -1) || !approx(b.Velocity.X, 2) {
		t.Errorf("Normal velocity not exchanged: a.vx=%.4f b.vx=%.4f", a.Velocity.X, b.Velocity.X)
	}
}

func TestHeavyBodyBarelySlows(t *testing.T) {
	heavy := body(0, 0, 0, 20, 2, 0)
	light := body(1, 25, 0, 10, 0, 0)

	Resolve(&heavy, &light)

	// m=8000 vs 1000: heavy keeps 7/9 of its speed, light leaves at 16/9.
	if !approx(heavy.Velocity.X, 2*7.0/9.0) {
		t.Errorf("Heavy velocity: got=%.6f want=%.6f", heavy.Velocity.X, 2*7.0/9.0)
	}
	if !approx(light.Velocity.X, 2*16.0/9.0) {
		t.Errorf("Light velocity: got=%.6f want=%.6f", light.Velocity.X, 2*16.0/9.0)
	}
}
