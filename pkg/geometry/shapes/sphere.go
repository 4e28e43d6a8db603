package shapes

import (
	"math"

	"cosmossdk.io/errors"

	geomath "github.com/oxygene76/spheretrace/pkg/geometry/math"
)

// Intersection is the result of a raycast. Point, Normal and Distance are only
// meaningful when Hit is true and are left as zero values otherwise.
type Intersection struct {
	Hit      bool
	Point    geomath.Vector3
	Normal   geomath.Vector3
	Distance float64
}

// Sphere is a sphere primitive. Center is held by value.
type Sphere struct {
	Center geomath.Vector3
	Radius float64
}

// NewSphere creates a sphere. With a nil center the unit sphere at the origin
// is returned and radius is ignored.
func NewSphere(center *geomath.Vector3, radius float64) Sphere {
	if center == nil {
		return Sphere{Radius: 1}
	}
	return Sphere{Center: *center, Radius: radius}
}

// DefaultSphere returns the unit sphere at the origin
func DefaultSphere() Sphere {
	return NewSphere(nil, 0)
}

// Validate rejects negative or non-finite radii and non-finite centers
func (s Sphere) Validate() error {
	if math.IsNaN(s.Radius) || math.IsInf(s.Radius, 0) || s.Radius < 0 {
		return errors.Wrapf(geomath.ErrInvalidRadius, "radius %g", s.Radius)
	}
	if !finite(&s.Center) {
		return errors.Wrapf(geomath.ErrInvalidSphere, "non-finite center %s", &s.Center)
	}
	return nil
}

// Raycast intersects ray with the sphere.
//
// A hit is only reported when both roots of the ray/sphere quadratic are
// strictly positive, so a ray whose origin lies inside the sphere never hits.
// RaycastNearest reports the exit point in that case. Degenerate rays miss.
// Distance is |Direction*t|, which equals t only for unit directions.
func (s Sphere) Raycast(ray Ray) Intersection {
	t1, t2, ok := s.roots(ray)
	if !ok || !(t1 > 0 && t2 > 0) {
		return Intersection{}
	}
	return s.hitAt(ray, math.Min(t1, t2))
}

// RaycastNearest is Raycast with the nearest strictly positive root accepted,
// so rays that start inside the sphere report where they leave it.
func (s Sphere) RaycastNearest(ray Ray) Intersection {
	t1, t2, ok := s.roots(ray)
	if !ok {
		return Intersection{}
	}
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	switch {
	case t1 > 0:
		return s.hitAt(ray, t1)
	case t2 > 0:
		return s.hitAt(ray, t2)
	}
	return Intersection{}
}

// TryRaycast validates the ray and sphere before calling Raycast
func (s Sphere) TryRaycast(ray Ray) (Intersection, error) {
	if err := s.Validate(); err != nil {
		return Intersection{}, err
	}
	if err := ray.Validate(); err != nil {
		return Intersection{}, err
	}
	if ray.IsDegenerate() {
		return Intersection{}, errors.Wrapf(geomath.ErrDegenerateRay, "ray from %s", &ray.Origin)
	}
	return s.Raycast(ray), nil
}

// roots solves a*t^2 + b*t + c = 0 for the ray parameter. ok is false when the
// discriminant is negative or the direction has zero length.
func (s Sphere) roots(ray Ray) (t1, t2 float64, ok bool) {
	oc := geomath.CreateFromToVector(&s.Center, &ray.Origin)

	a := ray.Direction.Dot(&ray.Direction)
	if a == 0 {
		return 0, 0, false
	}
	b := ray.Direction.Clone().MultiplyScalar(2).Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, 0, false
	}

	sq := math.Sqrt(discriminant)
	return (-b - sq) / (2 * a), (-b + sq) / (2 * a), true
}

func (s Sphere) hitAt(ray Ray, t float64) Intersection {
	offset := ray.Direction.Clone().MultiplyScalar(t)
	point := ray.Origin.Clone().Add(offset)
	normal := geomath.CreateFromToVector(&s.Center, point).Normalize()

	return Intersection{
		Hit:      true,
		Point:    *point,
		Normal:   *normal,
		Distance: offset.Length(),
	}
}

func finite(v *geomath.Vector3) bool {
	for _, f := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}
