package physics

import "math"

// Vec2 is a 2D point or displacement in arena units.
type Vec2 struct {
	X, Y float64
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// Angle returns the direction of v in radians, in (-π, π].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Normalize returns the unit vector of v and false when v has zero length.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Length()
	if l == 0 {
		return Vec2{}, false
	}
	return v.Scale(1 / l), true
}

// ClampLength shortens v to limit when it is longer, keeping its direction.
func (v Vec2) ClampLength(limit float64) Vec2 {
	l := v.Length()
	if l <= limit || l == 0 {
		return v
	}
	return v.Scale(limit / l)
}

// FromPolar builds a vector of the given length pointing at angle.
func FromPolar(length, angle float64) Vec2 {
	return Vec2{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}
