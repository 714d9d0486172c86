package physics

import "fmt"

// Arena is the rectangular play-field, spanning [0, Width] × [0, Height].
// The host reports it every tick since the window may be resized.
type Arena struct {
	Width, Height float64
}

// Fits reports whether a circle of the given radius can lie fully inside.
func (a Arena) Fits(radius float64) bool {
	return a.Width >= 2*radius && a.Height >= 2*radius
}

func (a Arena) String() string {
	return fmt.Sprintf("%.0fx%.0f", a.Width, a.Height)
}

// clampAxis keeps [pos-radius, pos+radius] inside [0, edge]. It reports
// whether pos was snapped onto either edge.
func clampAxis(pos, radius, edge float64) (float64, bool) {
	if pos+radius >= edge {
		return edge - radius, true
	}
	if pos-radius <= 0 {
		return radius, true
	}
	return pos, false
}
