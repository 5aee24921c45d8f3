// Package game adapts the scene to the engine's frame callbacks: it polls
// pointer input, forwards window resizes, and drives the update/render cycle.
package game

import (
	"fmt"
	"log"
	"math/rand"

	"chosenoffset.com/ghostly/internal/render"
	"chosenoffset.com/ghostly/internal/scene"
	"chosenoffset.com/ghostly/internal/simulation"
)

// Game holds the scene and its platform collaborators.
type Game struct {
	Renderer render.Renderer
	InputMgr render.InputManager
	Scene    *scene.Scene

	ScreenWidth  int
	ScreenHeight int

	// Debug
	ShowDebug  bool
	FrameCount int
}

// New creates a game around a freshly populated scene sized to the
// configured window.
func New(renderer render.Renderer, inputMgr render.InputManager, rng *rand.Rand, cfg *simulation.Config) *Game {
	return &Game{
		Renderer:     renderer,
		InputMgr:     inputMgr,
		Scene:        scene.NewScene(cfg.Window.Width, cfg.Window.Height, rng, cfg),
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
	}
}

// Update handles input and advances the animation one tick.
func (g *Game) Update() error {
	if x, y, ok := g.InputMgr.PointerPosition(); ok {
		g.Scene.SetPointer(float64(x), float64(y))
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyF1) || g.InputMgr.IsKeyJustPressed(render.KeyBackquote) {
		g.ShowDebug = !g.ShowDebug
	}

	g.Scene.Update()
	g.FrameCount++
	return nil
}

// Draw renders the current frame to the screen.
func (g *Game) Draw(screen render.Image) {
	g.Scene.Render(g.Renderer, screen)

	if g.ShowDebug {
		g.drawDebug(screen)
	}
}

// Layout returns the logical screen size. The canvas fills the window, so
// the outside size is used as-is; a changed size respawns the scene.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.ScreenWidth || outsideHeight != g.ScreenHeight {
		g.ScreenWidth = outsideWidth
		g.ScreenHeight = outsideHeight
		g.Scene.Resize(outsideWidth, outsideHeight)
		log.Printf("Viewport resized to %dx%d, respawned %d ghosts",
			outsideWidth, outsideHeight, len(g.Scene.Ghosts()))
	}
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) drawDebug(screen render.Image) {
	p := g.Scene.Pointer()
	info := fmt.Sprintf("frame %d | ghosts %d | viewport %dx%d | pointer (%.0f, %.0f)",
		g.FrameCount, len(g.Scene.Ghosts()), g.ScreenWidth, g.ScreenHeight, p.X, p.Y)
	g.Renderer.DrawText(screen, info, 8, 8)
}
