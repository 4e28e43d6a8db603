package types

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats/scalar"
	"gopkg.in/yaml.v3"

	geomath "github.com/oxygene76/spheretrace/pkg/geometry/math"
	"github.com/oxygene76/spheretrace/pkg/geometry/shapes"
)

// Float is a float64 that survives JSON encoding when it is not finite.
// NaN and the infinities are written as the strings "NaN", "+Inf" and "-Inf";
// YAML already has .nan and .inf for them.
type Float float64

// MarshalJSON implements json.Marshaler
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

// UnmarshalJSON implements json.Unmarshaler
func (f *Float) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid float %q: %w", s, err)
		}
		*f = Float(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// Vec is the printable form of a vector
type Vec struct {
	X Float `json:"x" yaml:"x"`
	Y Float `json:"y" yaml:"y"`
	Z Float `json:"z" yaml:"z"`
}

// SphereRecord describes the sphere a ray was cast against
type SphereRecord struct {
	Center Vec   `json:"center" yaml:"center"`
	Radius Float `json:"radius" yaml:"radius"`
}

// RayRecord describes a cast ray
type RayRecord struct {
	Origin    Vec `json:"origin" yaml:"origin"`
	Direction Vec `json:"direction" yaml:"direction"`
}

// RaycastResult is the printable outcome of a raycast. On a miss Point is null
// and Normal and Distance are omitted.
type RaycastResult struct {
	Hit      bool         `json:"hit" yaml:"hit"`
	Point    *Vec         `json:"point" yaml:"point"`
	Normal   *Vec         `json:"normal,omitempty" yaml:"normal,omitempty"`
	Distance *Float       `json:"distance,omitempty" yaml:"distance,omitempty"`
	Mode     string       `json:"mode" yaml:"mode"`
	Sphere   SphereRecord `json:"sphere" yaml:"sphere"`
	Ray      RayRecord    `json:"ray" yaml:"ray"`
}

// VectorResult is the printable outcome of a vector operation. Exactly one of
// Vector and Scalar is set.
type VectorResult struct {
	Operation string `json:"operation" yaml:"operation"`
	Inputs    []Vec  `json:"inputs" yaml:"inputs"`
	Vector    *Vec   `json:"vector,omitempty" yaml:"vector,omitempty"`
	Scalar    *Float `json:"scalar,omitempty" yaml:"scalar,omitempty"`
}

// NewVec rounds v to precision decimal places
func NewVec(v *geomath.Vector3, precision int) Vec {
	return Vec{
		X: round(v.X, precision),
		Y: round(v.Y, precision),
		Z: round(v.Z, precision),
	}
}

// NewRaycastResult converts an intersection into its printable form
func NewRaycastResult(s shapes.Sphere, r shapes.Ray, hit shapes.Intersection, mode string, precision int) *RaycastResult {
	res := &RaycastResult{
		Hit:  hit.Hit,
		Mode: mode,
		Sphere: SphereRecord{
			Center: NewVec(&s.Center, precision),
			Radius: Float(s.Radius),
		},
		Ray: RayRecord{
			Origin:    NewVec(&r.Origin, precision),
			Direction: NewVec(&r.Direction, precision),
		},
	}
	if !hit.Hit {
		return res
	}

	point := NewVec(&hit.Point, precision)
	normal := NewVec(&hit.Normal, precision)
	distance := round(hit.Distance, precision)
	res.Point = &point
	res.Normal = &normal
	res.Distance = &distance
	return res
}

// NewVectorResult records an operation that produced a vector
func NewVectorResult(op string, out *geomath.Vector3, precision int, inputs ...*geomath.Vector3) *VectorResult {
	v := NewVec(out, precision)
	return &VectorResult{Operation: op, Inputs: toVecs(inputs, precision), Vector: &v}
}

// NewScalarResult records an operation that produced a scalar
func NewScalarResult(op string, out float64, precision int, inputs ...*geomath.Vector3) *VectorResult {
	s := round(out, precision)
	return &VectorResult{Operation: op, Inputs: toVecs(inputs, precision), Scalar: &s}
}

// round leaves NaN and the infinities untouched
func round(x float64, precision int) Float {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Float(x)
	}
	return Float(scalar.Round(x, precision))
}

func toVecs(in []*geomath.Vector3, precision int) []Vec {
	out := make([]Vec, 0, len(in))
	for _, v := range in {
		out = append(out, NewVec(v, precision))
	}
	return out
}

// Encode writes v to w as "json" or "yaml"
func Encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
