// Package vector provides a 3-component float64 vector with the arithmetic
// needed to place and orient tracked objects around a receiver.
//
// Comparisons (Equal, IsUnit) are exact float equality. Use ApproxEqual and
// IsUnitWithin where a tolerance is wanted.
package vector

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Vector3D is a point or direction in 3D space. Values are copied freely and
// no method modifies its receiver.
type Vector3D struct {
	X float64
	Y float64
	Z float64
}

var (
	AxisX    = Vector3D{1, 0, 0}
	AxisY    = Vector3D{0, 1, 0}
	AxisZ    = Vector3D{0, 0, 1}
	NegAxisX = Vector3D{-1, 0, 0}
	NegAxisY = Vector3D{0, -1, 0}
	NegAxisZ = Vector3D{0, 0, -1}
)

func New(x, y, z float64) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// Splat returns a vector with every component set to f.
func Splat(f float64) Vector3D {
	return Vector3D{f, f, f}
}

func (v Vector3D) Add(other Vector3D) Vector3D {
	return Vector3D{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vector3D) Sub(other Vector3D) Vector3D {
	return Vector3D{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

func (v Vector3D) Neg() Vector3D {
	return Vector3D{-v.X, -v.Y, -v.Z}
}

func (v Vector3D) Scale(k float64) Vector3D {
	return Vector3D{v.X * k, v.Y * k, v.Z * k}
}

// Div divides every component by k. Dividing by zero returns v unchanged.
func (v Vector3D) Div(k float64) Vector3D {
	if k == 0 {
		return v
	}
	return Vector3D{v.X / k, v.Y / k, v.Z / k}
}

// Mul multiplies component-wise.
func (v Vector3D) Mul(other Vector3D) Vector3D {
	return Vector3D{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// DivComponents divides component-wise, leaving a component untouched where
// the matching divisor component is zero.
func (v Vector3D) DivComponents(other Vector3D) Vector3D {
	res := v
	if other.X != 0 {
		res.X /= other.X
	}
	if other.Y != 0 {
		res.Y /= other.Y
	}
	if other.Z != 0 {
		res.Z /= other.Z
	}
	return res
}

// Dot calculates the dot product of two vectors
func (v Vector3D) Dot(other Vector3D) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the right-handed cross product v × other.
func (v Vector3D) Cross(other Vector3D) Vector3D {
	return Vector3D{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vector3D) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vector3D) SqrMagnitude() float64 {
	return v.Dot(v)
}

// IsUnit reports whether the magnitude is exactly 1.
func (v Vector3D) IsUnit() bool {
	return v.Magnitude() == 1
}

// IsUnitWithin reports whether the magnitude is within tol of 1.
func (v Vector3D) IsUnitWithin(tol float64) bool {
	return scalar.EqualWithinAbs(v.Magnitude(), 1, tol)
}

func (v Vector3D) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Distance is the Euclidean distance between two points.
func (v Vector3D) Distance(other Vector3D) float64 {
	return v.Sub(other).Magnitude()
}

// Normalize returns v scaled to magnitude 1. The zero vector is returned
// as is, because Div ignores a zero divisor.
func (v Vector3D) Normalize() Vector3D {
	return v.Div(v.Magnitude())
}

// Equal is exact per-component equality.
func (v Vector3D) Equal(other Vector3D) bool {
	return v.X == other.X && v.Y == other.Y && v.Z == other.Z
}

// ApproxEqual compares component-wise with an absolute tolerance.
func (v Vector3D) ApproxEqual(other Vector3D, tol float64) bool {
	return scalar.EqualWithinAbs(v.X, other.X, tol) &&
		scalar.EqualWithinAbs(v.Y, other.Y, tol) &&
		scalar.EqualWithinAbs(v.Z, other.Z, tol)
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vector3D) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// LocalToWorld translates a vector expressed relative to v (the local
// origin) into world coordinates.
func (v Vector3D) LocalToWorld(local Vector3D) Vector3D {
	return local.Add(v)
}

// WorldToLocal expresses v relative to the origin o.
func (v Vector3D) WorldToLocal(o Vector3D) Vector3D {
	return v.Sub(o)
}

// AngleTo calculates the unsigned angle between two vectors in radians.
func (v Vector3D) AngleTo(other Vector3D) float64 {
	magV := v.Magnitude()
	magOther := other.Magnitude()

	// Handle zero-length vectors
	if magV == 0 || magOther == 0 {
		return 0
	}

	cosTheta := v.Dot(other) / (magV * magOther)

	// Clamp to [-1, 1] to handle floating point precision issues
	if cosTheta > 1 {
		cosTheta = 1
	} else if cosTheta < -1 {
		cosTheta = -1
	}

	return math.Acos(cosTheta)
}

// PlanarAngle returns the signed angle of the XY projection of v, measured
// in degrees counter-clockwise from +X, in the range (-180, 180].
func (v Vector3D) PlanarAngle() float64 {
	deg := math.Atan2(v.Y, v.X) * 180 / math.Pi
	if deg <= -180 {
		deg = 180
	}
	return deg
}

func (v Vector3D) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
