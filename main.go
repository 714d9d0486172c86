package main

import (
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/particle-collision-go/internal/config"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[CONFIG] %v", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game, err := NewGame(cfg, seed)
	if err != nil {
		log.Fatalf("[SIM] %v", err)
	}
	log.Printf("[SIM] %d particles in %s arena, %s resolution, seed %d",
		game.sim.Len(), game.arena, game.sim.Mode(), seed)

	// Set up Ebitengine window; it may be resized but never below one particle.
	minSide := int(math.Ceil(2 * cfg.RadiusMax))
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Collision")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(minSide, minSide, -1, -1)
	ebiten.SetTPS(cfg.TPS)

	// Run the game loop
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
