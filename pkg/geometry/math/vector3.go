package math

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// Vector3 represents a point or direction in 3D space.
//
// Methods with pointer receivers that return *Vector3 modify the receiver and
// return it so calls can be chained:
//
//	v := NewVector3(1, 2, 3)
//	v.Add(w).MultiplyScalar(2).Normalize()
//
// Clone, Normalized and the package-level constructors never touch their inputs.
type Vector3 struct {
	X, Y, Z float64
}

// NewVector3 creates a vector from its components
func NewVector3(x, y, z float64) *Vector3 {
	return &Vector3{X: x, Y: y, Z: z}
}

// FromR3 converts a gonum vector
func FromR3(v r3.Vec) *Vector3 {
	return &Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// ToR3 converts the vector to its gonum representation
func (v *Vector3) ToR3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// Set overwrites all three components
func (v *Vector3) Set(x, y, z float64) *Vector3 {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Clone returns a new vector with the same components
func (v *Vector3) Clone() *Vector3 {
	return &Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

// Copy overwrites the receiver with the components of other
func (v *Vector3) Copy(other *Vector3) *Vector3 {
	v.X, v.Y, v.Z = other.X, other.Y, other.Z
	return v
}

// Add adds other to the receiver
func (v *Vector3) Add(other *Vector3) *Vector3 {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

// Subtract subtracts other from the receiver
func (v *Vector3) Subtract(other *Vector3) *Vector3 {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

// Negate flips the sign of every component
func (v *Vector3) Negate() *Vector3 {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
	return v
}

// MultiplyScalar scales the receiver by s
func (v *Vector3) MultiplyScalar(s float64) *Vector3 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// Length returns the Euclidean norm
func (v *Vector3) Length() float64 {
	return math.Sqrt(v.LengthSqr())
}

// LengthSqr returns the squared norm, avoiding the square root
func (v *Vector3) LengthSqr() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Norm returns the Euclidean norm without overflowing or underflowing for
// very large or very small components.
func (v *Vector3) Norm() float64 {
	return r3.Norm(v.ToR3())
}

// Normalized returns a unit-length copy of the vector.
// A zero vector yields NaN components; use TryNormalized to get an error instead.
func (v *Vector3) Normalized() *Vector3 {
	return v.Clone().Normalize()
}

// Normalize scales the receiver to unit length.
// A zero vector yields NaN components.
func (v *Vector3) Normalize() *Vector3 {
	mag := v.Length()
	v.X /= mag
	v.Y /= mag
	v.Z /= mag
	return v
}

// TryNormalized is Normalized with a guard against zero and non-finite
// lengths. The length is computed with Norm, so very large or very small
// vectors still normalize.
func (v *Vector3) TryNormalized() (*Vector3, error) {
	n, err := v.Clone().TryNormalize()
	if err != nil {
		return nil, err
	}
	return n, nil
}

// TryNormalize is the in-place form of TryNormalized. The receiver is left
// unchanged when an error is returned.
func (v *Vector3) TryNormalize() (*Vector3, error) {
	mag := v.Norm()
	if mag == 0 || math.IsInf(mag, 0) || math.IsNaN(mag) {
		return v, ErrDegenerateVector.Wrapf("cannot normalize %s", v)
	}
	v.X /= mag
	v.Y /= mag
	v.Z /= mag
	return v, nil
}

// Dot returns the dot product of the receiver and other
func (v *Vector3) Dot(other *Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product as a new vector
func (v *Vector3) Cross(other *Vector3) *Vector3 {
	return &Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// DistanceTo returns the distance between two points
func (v *Vector3) DistanceTo(other *Vector3) float64 {
	return CreateFromToVector(v, other).Length()
}

// IsZero checks if the vector is zero
func (v *Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// ApproxEqual reports whether every component of v and other agrees within
// tol, either absolutely or relative to the larger magnitude.
func (v *Vector3) ApproxEqual(other *Vector3, tol float64) bool {
	return scalar.EqualWithinAbsOrRel(v.X, other.X, tol, tol) &&
		scalar.EqualWithinAbsOrRel(v.Y, other.Y, tol, tol) &&
		scalar.EqualWithinAbsOrRel(v.Z, other.Z, tol, tol)
}

func (v *Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// CreateFromToVector returns the vector pointing from one point to another.
// Neither argument is modified.
func CreateFromToVector(from, to *Vector3) *Vector3 {
	return to.Clone().Subtract(from)
}

// CreateProjectedVector multiplies the unit vector of onto component-wise by
// toProject: (ô.X*p.X, ô.Y*p.Y, ô.Z*p.Z).
//
// This is not the textbook vector projection; ProjectOnto computes that. The
// component-wise form is kept because existing callers depend on its output.
// A zero-length onto yields NaN components.
func CreateProjectedVector(toProject, onto *Vector3) *Vector3 {
	n := onto.Normalized()
	return &Vector3{
		X: n.X * toProject.X,
		Y: n.Y * toProject.Y,
		Z: n.Z * toProject.Z,
	}
}

// ProjectOnto returns the vector projection of toProject onto the direction
// of onto, (p·ô)ô. Projecting onto a zero vector returns ErrDegenerateVector.
func ProjectOnto(toProject, onto *Vector3) (*Vector3, error) {
	n, err := onto.TryNormalized()
	if err != nil {
		return nil, err
	}
	return n.MultiplyScalar(toProject.Dot(n)), nil
}
