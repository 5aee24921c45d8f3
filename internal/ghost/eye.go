package ghost

import (
	"image/color"
	"math"

	"chosenoffset.com/ghostly/internal/geom"
	"chosenoffset.com/ghostly/internal/render"
	"chosenoffset.com/ghostly/internal/simulation"
)

var irisColor = color.Black

// Eye is one of a ghost's two eyes. The anchor follows the body's bounce
// and the iris orbits the anchor at a fixed radius, pointing at whatever
// angle the ghost is facing.
type Eye struct {
	Position geom.Vector
	Iris     geom.Vector

	moveRadius float64
	irisRadius float64
}

// NewEye creates an eye anchored at (x, y) with the iris centered on the anchor.
func NewEye(x, y float64, cfg simulation.EyeConfig) *Eye {
	return &Eye{
		Position:   geom.NewVector(x, y),
		Iris:       geom.NewVector(x, y),
		moveRadius: cfg.MoveRadius,
		irisRadius: cfg.IrisRadius,
	}
}

// Update shifts the anchor by the body's bounce delta and re-aims the iris
// along the facing angle.
func (e *Eye) Update(bounce geom.Vector, facing float64) {
	e.Position.AddTo(bounce)
	e.Iris = e.Position.Add(geom.NewVector(
		math.Cos(facing)*e.moveRadius,
		math.Sin(facing)*e.moveRadius,
	))
}

// Render emits the iris circle. It never mutates state.
func (e *Eye) Render(r render.Renderer, dst render.Image) {
	r.FillCircle(dst, float32(e.Iris.X), float32(e.Iris.Y), float32(e.irisRadius), irisColor)
}
