package physics

import "math"

// fallbackNormal separates bodies whose centers coincide.
var fallbackNormal = Vec2{X: 1, Y: 0}

// Colliding reports whether the circles of a and p touch or overlap.
func Colliding(a, p *Particle) bool {
	return a.Position.Distance(p.Position) <= a.Radius+p.Radius
}

// contactNormal is the unit vector pointing from a's center to p's.
func contactNormal(a, p *Particle) Vec2 {
	n, ok := p.Position.Sub(a.Position).Normalize()
	if !ok {
		return fallbackNormal
	}
	return n
}

// Resolve handles one candidate pair. When the circles overlap it pushes them
// apart until they are tangent and exchanges velocity along the contact
// normal, reporting true. Otherwise neither particle is touched.
func Resolve(a, p *Particle) bool {
	if !Colliding(a, p) {
		return false
	}
	n := contactNormal(a, p)
	separate(a, p, n)
	exchange(a, p, n)
	return true
}

// Separate moves a and p apart along n, which points from a to p, so that
// their centers end up exactly a.Radius+p.Radius apart. Each body takes a
// share of the correction inverse to its radius.
func Separate(a, p *Particle) {
	separate(a, p, contactNormal(a, p))
}

func separate(a, p *Particle, n Vec2) {
	dist := a.Position.Distance(p.Position)
	penetration := a.Radius + p.Radius - dist
	shareA := penetration * p.Radius / (a.Radius + p.Radius)

	contact := a.Position.Add(n.Scale(a.Radius - shareA))
	a.Position = contact.Sub(n.Scale(a.Radius))
	p.Position = contact.Add(n.Scale(p.Radius))
}

// Exchange performs a fully elastic collision between a and p along the line
// joining their centers. Tangential velocity is preserved.
func Exchange(a, p *Particle) {
	exchange(a, p, contactNormal(a, p))
}

func exchange(a, p *Particle, n Vec2) {
	contact := n.Angle()
	va, vp := a.Velocity, p.Velocity
	// Each body sees the contact direction pointing at the other one.
	a.Velocity = elastic(va, vp, a.Mass(), p.Mass(), contact)
	p.Velocity = elastic(vp, va, p.Mass(), a.Mass(), contact+math.Pi)
}

// elastic returns the post-collision velocity of a body moving with self that
// is struck by one moving with other. contact is the angle of the direction
// from self toward other.
//
// The component along contact follows the 1D elastic formula
//
//	t = (v_s·cos(θ_s-θ_c)·(m_s-m_o) + 2·m_o·v_o·cos(θ_o-θ_c)) / (m_s+m_o)
//
// and the component along contact+π/2 is kept as is.
func elastic(self, other Vec2, mSelf, mOther, contact float64) Vec2 {
	vs, ts := self.Length(), self.Angle()
	vo, to := other.Length(), other.Angle()

	t := (vs*math.Cos(ts-contact)*(mSelf-mOther) + 2*mOther*vo*math.Cos(to-contact)) / (mSelf + mOther)
	tangent := vs * math.Sin(ts-contact)

	return FromPolar(t, contact).Add(FromPolar(tangent, contact+math.Pi/2))
}
