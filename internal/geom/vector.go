// Package geom provides the 2D vector math underlying all ghost motion.
package geom

import "math"

// Vector is a 2D point or displacement with value semantics.
type Vector struct {
	X, Y float64
}

// NewVector creates a vector from cartesian components.
func NewVector(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Length returns the euclidean magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Angle returns the direction of the vector in radians, in (-pi, pi].
// The zero vector reports angle 0.
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// SetAngle replaces the vector's direction while preserving its length.
func (v *Vector) SetAngle(angle float64) {
	length := v.Length()
	v.X = math.Cos(angle) * length
	v.Y = math.Sin(angle) * length
}

// SetLength replaces the vector's magnitude while preserving its direction.
func (v *Vector) SetLength(length float64) {
	angle := v.Angle()
	v.X = math.Cos(angle) * length
	v.Y = math.Sin(angle) * length
}

// Add returns the sum of the two vectors.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the difference of the two vectors.
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Mul returns the vector scaled by s.
func (v Vector) Mul(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector scaled by 1/s. Dividing by zero yields the usual
// IEEE infinities or NaNs; callers get no special handling.
func (v Vector) Div(s float64) Vector {
	return Vector{X: v.X / s, Y: v.Y / s}
}

// AddTo adds o to the vector in place.
func (v *Vector) AddTo(o Vector) {
	v.X += o.X
	v.Y += o.Y
}

// SubFrom subtracts o from the vector in place.
func (v *Vector) SubFrom(o Vector) {
	v.X -= o.X
	v.Y -= o.Y
}

// MulBy scales the vector by s in place.
func (v *Vector) MulBy(s float64) {
	v.X *= s
	v.Y *= s
}

// DivBy scales the vector by 1/s in place.
func (v *Vector) DivBy(s float64) {
	v.X /= s
	v.Y /= s
}
