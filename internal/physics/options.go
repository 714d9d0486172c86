package physics

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"
)

// ErrInvalidOptions is wrapped by every Options validation failure.
var ErrInvalidOptions = errors.New("invalid simulation options")

// ResolutionMode selects how pairs found in one tick see each other's writes.
type ResolutionMode int

const (
	// Sequential resolves pairs one after another; a pair observes positions
	// and velocities already changed by earlier pairs of the same tick.
	Sequential ResolutionMode = iota
	// Batched resolves every pair against the state at the start of the pass
	// and applies the summed corrections afterwards.
	Batched
)

func (m ResolutionMode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Batched:
		return "batched"
	default:
		return fmt.Sprintf("ResolutionMode(%d)", int(m))
	}
}

// ParseResolutionMode accepts "sequential" or "batched", case-insensitive.
func ParseResolutionMode(s string) (ResolutionMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "sequential":
		return Sequential, nil
	case "batched":
		return Batched, nil
	}
	return Sequential, fmt.Errorf("resolution mode %q: %w", s, ErrInvalidOptions)
}

// DefaultPalette holds the translucent colors particles are tinted with.
var DefaultPalette = []color.NRGBA{
	{R: 30, G: 174, B: 66, A: 125},
	{R: 153, G: 53, B: 46, A: 125},
	{R: 64, G: 25, B: 159, A: 125},
	{R: 41, G: 90, B: 204, A: 125},
	{R: 113, G: 32, B: 193, A: 125},
}

// Options configures population generation and integration.
type Options struct {
	PopulationCount int
	// Radii are drawn from [RadiusMin, RadiusMax).
	RadiusMin, RadiusMax float64
	// Each velocity component is drawn from [SpeedMin, SpeedMax) with a random sign.
	SpeedMin, SpeedMax float64
	MaxSpeed           float64
	Palette            []color.NRGBA
	Mode               ResolutionMode
}

func DefaultOptions() Options {
	return Options{
		PopulationCount: 15,
		RadiusMin:       13,
		RadiusMax:       20,
		SpeedMin:        2,
		SpeedMax:        4,
		MaxSpeed:        5.6,
		Palette:         DefaultPalette,
		Mode:            Sequential,
	}
}

func (o Options) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"minimum radius", o.RadiusMin},
		{"maximum radius", o.RadiusMax},
		{"minimum speed", o.SpeedMin},
		{"maximum speed", o.SpeedMax},
		{"max speed", o.MaxSpeed},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s %v is not finite: %w", f.name, f.value, ErrInvalidOptions)
		}
	}

	switch {
	case o.PopulationCount < 0:
		return fmt.Errorf("population %d is negative: %w", o.PopulationCount, ErrInvalidOptions)
	case o.RadiusMin <= 0:
		return fmt.Errorf("minimum radius %.2f must be positive: %w", o.RadiusMin, ErrInvalidOptions)
	case o.RadiusMax < o.RadiusMin:
		return fmt.Errorf("radius range [%.2f, %.2f) is inverted: %w", o.RadiusMin, o.RadiusMax, ErrInvalidOptions)
	case o.SpeedMin < 0 || o.SpeedMax < o.SpeedMin:
		return fmt.Errorf("speed range [%.2f, %.2f) is invalid: %w", o.SpeedMin, o.SpeedMax, ErrInvalidOptions)
	case o.MaxSpeed <= 0:
		return fmt.Errorf("max speed %.2f must be positive: %w", o.MaxSpeed, ErrInvalidOptions)
	case o.PopulationCount > 0 && len(o.Palette) == 0:
		return fmt.Errorf("palette is empty: %w", ErrInvalidOptions)
	case o.Mode != Sequential && o.Mode != Batched:
		return fmt.Errorf("unknown %s: %w", o.Mode, ErrInvalidOptions)
	}
	return nil
}
