package main

import (
	"image"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/particle-collision-go/internal/physics"
)

// Rendering constants
const (
	ringCount   = 5
	ringStroke  = 2.0
	coreInset   = 8.0 // core disc radius is Radius - coreInset
	nebulaCell  = 8   // screen pixels per noise sample
	nebulaScale = 0.06
)

var (
	background = color.NRGBA{R: 14, G: 5, B: 34, A: 255}
	coreColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 190}
)

// drawParticle draws fading concentric rings in the particle's color around
// a white core.
func drawParticle(screen *ebiten.Image, p physics.Particle) {
	x, y := float32(p.Position.X), float32(p.Position.Y)
	for i := 0; i < ringCount; i++ {
		r := float32(p.Radius) - float32(coreInset-2*i)
		ring := p.Color
		ring.A = uint8(125 - 20*i)
		vector.StrokeCircle(screen, x, y, r, ringStroke, ring, true)
	}
	vector.DrawFilledCircle(screen, x, y, float32(p.Radius-coreInset), coreColor, true)
}

// nebula is a faint Perlin-noise backdrop. It is rendered at low resolution
// and redrawn only when the screen size changes.
type nebula struct {
	noise *perlin.Perlin
	image *ebiten.Image
	w, h  int
}

func newNebula(seed int64) *nebula {
	return &nebula{noise: perlin.NewPerlin(2, 2, 3, seed)}
}

func (n *nebula) draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if n.image == nil || w != n.w || h != n.h {
		n.render(w, h)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(nebulaCell, nebulaCell)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(n.image, op)
}

func (n *nebula) render(w, h int) {
	img := n.sample(w/nebulaCell+1, h/nebulaCell+1)
	if n.image != nil {
		n.image.Deallocate()
	}
	n.image = ebiten.NewImageFromImage(img)
	n.w, n.h = w, h
}

// sample builds the cw×ch texel backdrop.
func (n *nebula) sample(cw, ch int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, cw, ch))
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			v := n.noise.Noise2D(float64(x)*nebulaScale, float64(y)*nebulaScale)
			intensity := math.Max(0, math.Min(1, (v+1)/2))
			r, g, b := hsvToRGB(250+60*v, 0.6, 0.35)
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(r * 255),
				G: uint8(g * 255),
				B: uint8(b * 255),
				A: uint8(intensity * intensity * 120),
			})
		}
	}
	return img
}

// hsvToRGB converts a hue in degrees (any sign) with saturation and value in
// [0, 1] to RGB components in [0, 1].
func hsvToRGB(h, s, v float64) (float64, float64, float64) {
	sector := math.Mod(h, 360) / 60
	if sector < 0 {
		sector += 6
	}
	channel := func(offset float64) float64 {
		k := math.Mod(offset+sector, 6)
		return v - v*s*math.Max(0, math.Min(1, math.Min(k, 4-k)))
	}
	return channel(5), channel(3), channel(1)
}
