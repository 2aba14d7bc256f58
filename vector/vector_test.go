package vector

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var samples = []Vector3D{
	{0, 0, 0},
	{1, 0, 0},
	{0.5, -0.25, 0},
	{-3, 4, 12},
	{1e-3, 7, -2.5},
	{-0.9, -0.1, 0},
}

func TestArithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(-4, 0.5, 2)

	tests := []struct {
		name string
		got  Vector3D
		want Vector3D
	}{
		{"add", a.Add(b), Vector3D{-3, 2.5, 5}},
		{"sub", a.Sub(b), Vector3D{5, 1.5, 1}},
		{"neg", a.Neg(), Vector3D{-1, -2, -3}},
		{"scale", a.Scale(2), Vector3D{2, 4, 6}},
		{"scale int", a.Scale(float64(-1)), Vector3D{-1, -2, -3}},
		{"div", a.Div(2), Vector3D{0.5, 1, 1.5}},
		{"div zero", a.Div(0), a},
		{"mul", a.Mul(b), Vector3D{-4, 1, 6}},
		{"div components", a.DivComponents(b), Vector3D{-0.25, 4, 1.5}},
		{"div components zero", a.DivComponents(Vector3D{2, 0, 0}), Vector3D{0.5, 2, 3}},
		{"div components all zero", a.DivComponents(Vector3D{}), a},
		{"cross", AxisX.Cross(AxisY), AxisZ},
		{"cross reversed", AxisY.Cross(AxisX), NegAxisZ},
		{"splat", Splat(2.5), Vector3D{2.5, 2.5, 2.5}},
		{"local to world", a.LocalToWorld(b), Vector3D{-3, 2.5, 5}},
		{"world to local", a.WorldToLocal(b), Vector3D{5, 1.5, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDotCommutes(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			if a.Dot(b) != b.Dot(a) {
				t.Errorf("%v.Dot(%v) = %v, reversed %v", a, b, a.Dot(b), b.Dot(a))
			}
		}
	}
}

func TestCrossAntiCommutes(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			if got, want := a.Cross(b), b.Cross(a).Neg(); !got.Equal(want) {
				t.Errorf("%v.Cross(%v) = %v, want %v", a, b, got, want)
			}
		}
	}
}

func TestCrossIsOrthogonal(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			c := a.Cross(b)
			if d := c.Dot(a); math.Abs(d) > 1e-9 {
				t.Errorf("cross(%v, %v) . a = %v", a, b, d)
			}
		}
	}
}

func TestMagnitude(t *testing.T) {
	v := New(-3, 4, 12)
	if got := v.Magnitude(); got != 13 {
		t.Errorf("Magnitude() = %v, want 13", got)
	}
	if got := v.SqrMagnitude(); got != 169 {
		t.Errorf("SqrMagnitude() = %v, want 169", got)
	}
	if got := New(1, 1, 0).Distance(New(4, 5, 0)); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestNormalize(t *testing.T) {
	for _, v := range samples {
		if v.IsZero() {
			continue
		}
		t.Run(v.String(), func(t *testing.T) {
			n := v.Normalize()
			if !n.IsUnitWithin(1e-12) {
				t.Errorf("magnitude of %v = %v", n, n.Magnitude())
			}
		})
	}

	if got := (Vector3D{}).Normalize(); !got.Equal(Vector3D{}) {
		t.Errorf("zero vector normalized to %v", got)
	}
}

func TestIsUnitIsExact(t *testing.T) {
	for _, axis := range []Vector3D{AxisX, AxisY, AxisZ, NegAxisX, NegAxisY, NegAxisZ} {
		if !axis.IsUnit() {
			t.Errorf("%v.IsUnit() = false", axis)
		}
	}
	nearly := New(1+1e-12, 0, 0)
	if nearly.IsUnit() {
		t.Errorf("%v.IsUnit() = true, want exact comparison", nearly)
	}
	if !nearly.IsUnitWithin(1e-9) {
		t.Errorf("%v.IsUnitWithin(1e-9) = false", nearly)
	}
}

func TestEqual(t *testing.T) {
	a := New(0.1, 0.2, 0.3)
	b := New(0.1, 0.2, 0.3+1e-15)
	if !a.Equal(a) {
		t.Error("a != a")
	}
	if a.Equal(b) {
		t.Error("Equal should not tolerate rounding")
	}
	if !a.ApproxEqual(b, 1e-12) {
		t.Error("ApproxEqual(1e-12) = false")
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		v    Vector3D
		want bool
	}{
		{New(1, 2, 3), true},
		{New(math.NaN(), 0, 0), false},
		{New(0, math.Inf(1), 0), false},
		{New(0, 0, math.Inf(-1)), false},
	}
	for _, tt := range tests {
		if got := tt.v.IsFinite(); got != tt.want {
			t.Errorf("%v.IsFinite() = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestAngleTo(t *testing.T) {
	tests := []struct {
		a, b Vector3D
		want float64
	}{
		{AxisX, AxisY, math.Pi / 2},
		{AxisX, NegAxisX, math.Pi},
		{AxisX, New(3, 0, 0), 0},
		{AxisX, Vector3D{}, 0},
		{New(1, 1, 0), AxisX, math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v-%v", tt.a, tt.b), func(t *testing.T) {
			if got := tt.a.AngleTo(tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("AngleTo() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlanarAngle(t *testing.T) {
	tests := []struct {
		v    Vector3D
		want float64
	}{
		{AxisX, 0},
		{AxisY, 90},
		{NegAxisY, -90},
		{NegAxisX, 180},
		{New(-1, math.Copysign(0, -1), 0), 180},
		{New(1, 1, 0), 45},
		{New(-1, -1, 0), -135},
		{New(1, 0, 5), 0},
	}
	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			if got := tt.v.PlanarAngle(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("PlanarAngle() = %v, want %v", got, tt.want)
			}
		})
	}
}
