package shapes

import (
	"math"

	"cosmossdk.io/errors"

	geomath "github.com/oxygene76/spheretrace/pkg/geometry/math"
)

// Ray is a half-line starting at Origin. Direction does not have to be unit length.
type Ray struct {
	Origin    geomath.Vector3 `json:"origin" yaml:"origin"`
	Direction geomath.Vector3 `json:"direction" yaml:"direction"`
}

// NewRay copies origin and direction into a new ray
func NewRay(origin, direction *geomath.Vector3) Ray {
	return Ray{Origin: *origin, Direction: *direction}
}

// Clone returns a deep copy of the ray
func (r Ray) Clone() Ray {
	return Ray{Origin: *r.Origin.Clone(), Direction: *r.Direction.Clone()}
}

// At returns the point Origin + Direction*t
func (r Ray) At(t float64) *geomath.Vector3 {
	return r.Origin.Clone().Add(r.Direction.Clone().MultiplyScalar(t))
}

// IsDegenerate reports a zero-length direction
func (r Ray) IsDegenerate() bool {
	return r.Direction.IsZero()
}

// Validate rejects rays with non-finite components
func (r Ray) Validate() error {
	for _, f := range []float64{
		r.Origin.X, r.Origin.Y, r.Origin.Z,
		r.Direction.X, r.Direction.Y, r.Direction.Z,
	} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return errors.Wrapf(geomath.ErrInvalidRay, "non-finite component in origin %s or direction %s", &r.Origin, &r.Direction)
		}
	}
	return nil
}
