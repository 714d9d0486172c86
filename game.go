package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/olivierh59500/particle-collision-go/internal/config"
	"github.com/olivierh59500/particle-collision-go/internal/physics"
)

// summaryEvery is how many ticks pass between collision summaries in the log.
const summaryEvery = 600

// Game hosts the simulation inside Ebitengine: it feeds the window size in as
// the arena, runs one tick per Update and draws the result.
type Game struct {
	sim    *physics.Simulation
	arena  physics.Arena
	nebula *nebula

	Paused     bool
	ShowHUD    bool
	ShowNebula bool

	stats      physics.TickStats // last tick
	collisions int               // since the last summary
}

// NewGame builds the population for the configured window. cfg must have
// passed Validate.
func NewGame(cfg *config.Config, seed int64) (*Game, error) {
	opts, err := cfg.Physics()
	if err != nil {
		return nil, err
	}
	arena := physics.Arena{Width: float64(cfg.WindowWidth), Height: float64(cfg.WindowHeight)}
	sim, err := physics.New(opts, arena, physics.NewEntropy(seed))
	if err != nil {
		return nil, err
	}
	return &Game{
		sim:        sim,
		arena:      arena,
		nebula:     newNebula(seed),
		ShowHUD:    true,
		ShowNebula: cfg.Nebula,
	}, nil
}

// Update is called each tick by Ebitengine
func (g *Game) Update() error {
	step := g.handleInput()
	if g.Paused && !step {
		return nil
	}
	g.advance()
	return nil
}

// advance runs one simulation tick in the current arena.
func (g *Game) advance() {
	g.stats = g.sim.Tick(g.arena)
	g.collisions += g.stats.Collisions

	if ticks := g.sim.Ticks(); ticks%summaryEvery == 0 {
		log.Printf("[SIM] tick %d: %d collisions over the last %d ticks, arena %s",
			ticks, g.collisions, summaryEvery, g.arena)
		g.collisions = 0
	}
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if g.ShowNebula {
		g.nebula.draw(screen)
	}
	for _, p := range g.sim.Particles() {
		drawParticle(screen, p)
	}
	if g.ShowHUD {
		ebitenutil.DebugPrintAt(screen, g.hudText(ebiten.ActualTPS()), 8, 8)
	}
}

// Layout records the window size as the arena for the next tick.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.arena = physics.Arena{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

// handleInput processes keyboard input. It reports whether a single step was
// requested while paused.
func (g *Game) handleInput() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Paused = !g.Paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.toggleMode()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.ShowHUD = !g.ShowHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ShowNebula = !g.ShowNebula
	}
	return g.Paused && inpututil.IsKeyJustPressed(ebiten.KeyPeriod)
}

func (g *Game) reset() {
	if err := g.sim.Reset(g.arena); err != nil {
		log.Printf("[INPUT] reset refused: %v", err)
		return
	}
	g.stats = physics.TickStats{}
	log.Printf("[INPUT] population reset: %d particles in %s", g.sim.Len(), g.arena)
}

func (g *Game) toggleMode() {
	mode := physics.Batched
	if g.sim.Mode() == physics.Batched {
		mode = physics.Sequential
	}
	g.sim.SetMode(mode)
	log.Printf("[INPUT] resolution mode: %s", mode)
}

func (g *Game) hudText(tps float64) string {
	state := "running"
	if g.Paused {
		state = "paused (. to step)"
	}
	return fmt.Sprintf("TPS: %.1f\nParticles: %d\nCandidates: %d\nCollisions: %d\nMode: %s [M]\nState: %s",
		tps, g.sim.Len(), g.stats.Candidates, g.stats.Collisions, g.sim.Mode(), state)
}
