package geom

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestSetLengthRoundTrip(t *testing.T) {
	vectors := []Vector{
		{3, 4},
		{-1, 2},
		{0.001, -0.001},
		{100, 0},
		{0, -7},
	}
	lengths := []float64{1, 2.5, 10, 0.25, 123.456}

	for _, v := range vectors {
		for _, l := range lengths {
			w := v
			w.SetLength(l)
			if math.Abs(w.Length()-l) > tolerance {
				t.Errorf("SetLength(%v) on %v: got length %v", l, v, w.Length())
			}
			// Direction must be preserved
			if math.Abs(normalizeAngle(w.Angle()-v.Angle())) > tolerance {
				t.Errorf("SetLength(%v) on %v changed angle from %v to %v", l, v, v.Angle(), w.Angle())
			}
		}
	}
}

func TestSetAngleRoundTrip(t *testing.T) {
	v := Vector{X: 3, Y: 4}
	angles := []float64{0, 1, -1, math.Pi / 2, -math.Pi / 2, 3, -3, 2 * math.Pi, 7.5}

	for _, a := range angles {
		w := v
		w.SetAngle(a)
		if math.Abs(normalizeAngle(w.Angle()-a)) > tolerance {
			t.Errorf("SetAngle(%v): got angle %v", a, w.Angle())
		}
		// Length must be preserved
		if math.Abs(w.Length()-5) > tolerance {
			t.Errorf("SetAngle(%v) changed length from 5 to %v", a, w.Length())
		}
	}
}

func TestZeroVectorAngle(t *testing.T) {
	var v Vector
	if v.Angle() != 0 {
		t.Errorf("Expected zero vector angle 0, got %v", v.Angle())
	}

	// SetAngle on a zero vector leaves it zero (length is preserved)
	v.SetAngle(1.5)
	if v.X != 0 || v.Y != 0 {
		t.Errorf("Expected zero vector to stay zero after SetAngle, got %v", v)
	}
}

func TestAddSubInverse(t *testing.T) {
	pairs := []struct{ v, w Vector }{
		{Vector{1, 2}, Vector{3, 4}},
		{Vector{-5, 0.5}, Vector{0.25, -100}},
		{Vector{0, 0}, Vector{1e9, -1e9}},
	}

	for _, p := range pairs {
		got := p.v.Add(p.w).Sub(p.w)
		if math.Abs(got.X-p.v.X) > tolerance || math.Abs(got.Y-p.v.Y) > tolerance {
			t.Errorf("%v.Add(%v).Sub(%v) = %v", p.v, p.w, p.w, got)
		}
	}
}

func TestPureOpsDoNotMutate(t *testing.T) {
	v := Vector{X: 1, Y: 2}
	_ = v.Add(Vector{3, 4})
	_ = v.Sub(Vector{3, 4})
	_ = v.Mul(2)
	_ = v.Div(2)
	if v.X != 1 || v.Y != 2 {
		t.Errorf("Pure operations mutated receiver: %v", v)
	}
}

func TestInPlaceOps(t *testing.T) {
	v := Vector{X: 1, Y: 2}
	v.AddTo(Vector{3, 4})
	if v.X != 4 || v.Y != 6 {
		t.Fatalf("AddTo: got %v", v)
	}
	v.SubFrom(Vector{1, 1})
	if v.X != 3 || v.Y != 5 {
		t.Fatalf("SubFrom: got %v", v)
	}
	v.MulBy(2)
	if v.X != 6 || v.Y != 10 {
		t.Fatalf("MulBy: got %v", v)
	}
	v.DivBy(2)
	if v.X != 3 || v.Y != 5 {
		t.Fatalf("DivBy: got %v", v)
	}
}

func TestDivideByZeroPropagates(t *testing.T) {
	v := Vector{X: 1, Y: -1}
	got := v.Div(0)
	if !math.IsInf(got.X, 1) || !math.IsInf(got.Y, -1) {
		t.Errorf("Expected IEEE infinities from Div(0), got %v", got)
	}

	zero := Vector{}
	nan := zero.Div(0)
	if !math.IsNaN(nan.X) || !math.IsNaN(nan.Y) {
		t.Errorf("Expected NaN from 0/0, got %v", nan)
	}
}

// normalizeAngle maps an angle difference into (-pi, pi].
func normalizeAngle(a float64) float64 {
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
