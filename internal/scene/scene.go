// Package scene owns the ghost population and the per-frame update/render
// cycle. It renders through the render interfaces only, so it runs headless
// under test.
package scene

import (
	"image/color"
	"math"
	"math/rand"

	"chosenoffset.com/ghostly/internal/geom"
	"chosenoffset.com/ghostly/internal/ghost"
	"chosenoffset.com/ghostly/internal/render"
	"chosenoffset.com/ghostly/internal/simulation"
)

var backgroundColor = color.RGBA{R: 0x1f, G: 0x20, B: 0x2b, A: 0xff}

// Scene holds the viewport dimensions, the current pointer position, and an
// ordered list of ghosts sized to the viewport area.
type Scene struct {
	width   int
	height  int
	pointer geom.Vector
	ghosts  []*ghost.Ghost

	rng *rand.Rand
	cfg *simulation.Config
}

// NewScene creates a populated scene for the given viewport. The pointer
// starts at the viewport center.
func NewScene(width, height int, rng *rand.Rand, cfg *simulation.Config) *Scene {
	s := &Scene{
		pointer: geom.NewVector(float64(width)/2, float64(height)/2),
		rng:     rng,
		cfg:     cfg,
	}
	s.Resize(width, height)
	return s
}

// Resize records the new viewport dimensions and respawns the whole ghost
// population at the density the new area calls for. Existing ghosts are
// discarded; there is no incremental relayout.
func (s *Scene) Resize(width, height int) {
	s.width = width
	s.height = height

	count := int(math.Round(float64(width+height) / s.cfg.Scene.DensityDivisor))
	s.ghosts = make([]*ghost.Ghost, 0, count)
	for i := 0; i < count; i++ {
		x := s.rng.Float64() * float64(width)
		y := s.rng.Float64() * float64(height)
		s.ghosts = append(s.ghosts, ghost.NewGhost(x, y, s.rng, s.cfg))
	}
}

// SetPointer replaces the pointer position wholesale, no smoothing.
func (s *Scene) SetPointer(x, y float64) {
	s.pointer = geom.NewVector(x, y)
}

// Pointer reports the current pointer position.
func (s *Scene) Pointer() geom.Vector {
	return s.pointer
}

// Size reports the current viewport dimensions.
func (s *Scene) Size() (width, height int) {
	return s.width, s.height
}

// Ghosts exposes the ghost list in render order.
func (s *Scene) Ghosts() []*ghost.Ghost {
	return s.ghosts
}

// Update advances every ghost one frame toward the current pointer. Update
// order does not matter (ghosts never interact) but stays list order anyway.
func (s *Scene) Update() {
	for _, g := range s.ghosts {
		g.Update(s.pointer)
	}
}

// Render clears the full canvas and draws every ghost in list order. Render
// never mutates scene state.
func (s *Scene) Render(r render.Renderer, dst render.Image) {
	dst.Fill(backgroundColor)
	for _, g := range s.ghosts {
		g.Render(r, dst)
	}
}
