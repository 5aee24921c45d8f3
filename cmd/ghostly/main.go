package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"chosenoffset.com/ghostly/internal/game"
	ebitenrender "chosenoffset.com/ghostly/internal/render/ebiten"
	"chosenoffset.com/ghostly/internal/simulation"
)

func main() {
	configPath := flag.String("config", "ghostly.json", "path to the animation tuning file")
	flag.Parse()

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	// Load tuning, falling back to defaults when no file is present
	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := game.New(renderer, inputMgr, rng, cfg)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	log.Printf("Starting animation with %d ghosts...", len(g.Scene.Ghosts()))
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
