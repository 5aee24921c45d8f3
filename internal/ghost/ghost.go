// Package ghost implements the procedural motion model for a single ghost:
// a bobbing body, two lagging hands, and a pair of eyes that track a pointer.
package ghost

import (
	"image/color"
	"math"
	"math/rand"

	"chosenoffset.com/ghostly/internal/geom"
	"chosenoffset.com/ghostly/internal/render"
	"chosenoffset.com/ghostly/internal/simulation"
)

var bodyColor = color.White

// Ghost is one animated character. Position drives the body, HandPosition
// drives both hands on a half-amplitude, phase-lagged bounce, and the eyes
// trail the body's per-frame bounce delta.
type Ghost struct {
	Position     geom.Vector
	HandPosition geom.Vector

	// Velocity is re-sampled at random but currently drives no translation;
	// the ghosts drift only by their bounce. Kept until product decides
	// whether wandering comes back.
	Velocity geom.Vector

	Eyes [2]*Eye

	bounceAngle float64
	cfg         simulation.GhostConfig
	rng         *rand.Rand
}

// NewGhost spawns a ghost at (x, y). Both eye anchors derive from the spawn
// point, so the ghost is fully formed in one step.
func NewGhost(x, y float64, rng *rand.Rand, cfg *simulation.Config) *Ghost {
	g := &Ghost{
		Position:     geom.NewVector(x, y),
		HandPosition: geom.NewVector(x, y),
		bounceAngle:  float64(rng.Intn(cfg.Ghost.MaxStartPhase + 1)),
		cfg:          cfg.Ghost,
		rng:          rng,
	}
	g.rollVelocity()
	g.Eyes[0] = NewEye(x-cfg.Ghost.EyeDistance, y-cfg.Ghost.EyeRaise, cfg.Eye)
	g.Eyes[1] = NewEye(x+cfg.Ghost.EyeDistance, y-cfg.Ghost.EyeRaise, cfg.Eye)
	return g
}

// rollVelocity samples a fresh speed in [MinSpeed, MaxSpeed) and a fresh
// direction in [0, 2pi).
func (g *Ghost) rollVelocity() {
	speed := g.cfg.MinSpeed + g.rng.Float64()*(g.cfg.MaxSpeed-g.cfg.MinSpeed)
	g.Velocity = geom.NewVector(speed, 0)
	g.Velocity.SetAngle(g.rng.Float64() * 2 * math.Pi)
}

// Update advances the ghost one frame toward the given pointer position.
func (g *Ghost) Update(pointer geom.Vector) {
	if g.rng.Float64() < g.cfg.RerollChance {
		g.rollVelocity()
	}

	bodyBounce := geom.NewVector(0, math.Sin(g.bounceAngle)*g.cfg.BounceDistance)
	handBounce := geom.NewVector(0, math.Sin(g.bounceAngle+g.cfg.HandPhaseLag)*g.cfg.BounceDistance/2)

	g.Position.AddTo(bodyBounce)
	g.HandPosition.SubFrom(handBounce)

	// One facing angle from the post-bounce body center, shared by both eyes.
	facing := pointer.Sub(g.Position).Angle()
	for _, eye := range g.Eyes {
		eye.Update(bodyBounce, facing)
	}

	g.bounceAngle += g.cfg.BounceSpeed
}

// Render emits the ghost's circles in painter's order: body, then hands,
// then eyes, so the later shapes sit on top.
func (g *Ghost) Render(r render.Renderer, dst render.Image) {
	r.FillCircle(dst, float32(g.Position.X), float32(g.Position.Y), float32(g.cfg.Radius), bodyColor)
	r.FillCircle(dst,
		float32(g.HandPosition.X-g.cfg.HandSpread), float32(g.HandPosition.Y+g.cfg.HandDrop),
		float32(g.cfg.HandRadius), bodyColor)
	r.FillCircle(dst,
		float32(g.HandPosition.X+g.cfg.HandSpread), float32(g.HandPosition.Y+g.cfg.HandDrop),
		float32(g.cfg.HandRadius), bodyColor)
	for _, eye := range g.Eyes {
		eye.Render(r, dst)
	}
}

// BounceAngle reports the current bounce phase.
func (g *Ghost) BounceAngle() float64 {
	return g.bounceAngle
}
