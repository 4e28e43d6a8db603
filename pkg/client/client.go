package client

import (
	"fmt"
	"io"
	"math"

	"cosmossdk.io/log"

	"github.com/oxygene76/spheretrace/internal/types"
	geomath "github.com/oxygene76/spheretrace/pkg/geometry/math"
	"github.com/oxygene76/spheretrace/pkg/geometry/shapes"
	"github.com/oxygene76/spheretrace/pkg/utils"
)

const (
	ModeFaithful = "faithful"
	ModeNearest  = "nearest"
)

// Client runs geometry operations with the configured defaults and prints
// their results.
type Client struct {
	config *utils.Config
	logger log.Logger
	out    io.Writer
}

// NewClient creates a client. A nil config means DefaultConfig.
func NewClient(config *utils.Config, logger log.Logger, out io.Writer) *Client {
	if config == nil {
		config = utils.DefaultConfig()
	}
	return &Client{
		config: config,
		logger: logger,
		out:    out,
	}
}

// Config returns the active configuration
func (c *Client) Config() *utils.Config {
	return c.config
}

// Raycast casts ray against sphere, or against the configured scene sphere
// when sphere is nil.
func (c *Client) Raycast(sphere *shapes.Sphere, ray shapes.Ray, nearest bool) (*types.RaycastResult, error) {
	s := c.config.DefaultSphere()
	if sphere != nil {
		s = *sphere
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	if err := ray.Validate(); err != nil {
		return nil, err
	}
	if c.degenerate(&ray.Direction) {
		// Raycast would report a miss; surface the cause to the user instead.
		return nil, geomath.ErrDegenerateRay.Wrapf("direction %s shorter than tolerance %g", &ray.Direction, c.config.Math.Tolerance)
	}

	mode := ModeFaithful
	var hit shapes.Intersection
	if nearest {
		mode = ModeNearest
		hit = s.RaycastNearest(ray)
	} else {
		hit = s.Raycast(ray)
	}

	c.logger.Debug("raycast",
		"mode", mode,
		"center", s.Center.String(),
		"radius", s.Radius,
		"origin", ray.Origin.String(),
		"direction", ray.Direction.String(),
		"hit", hit.Hit,
	)

	return types.NewRaycastResult(s, ray, hit, mode, c.config.Output.Precision), nil
}

// Length returns |v|
func (c *Client) Length(v *geomath.Vector3) *types.VectorResult {
	return types.NewScalarResult("length", v.Norm(), c.config.Output.Precision, v)
}

// Normalize returns the unit vector of v
func (c *Client) Normalize(v *geomath.Vector3) (*types.VectorResult, error) {
	if c.degenerate(v) {
		return nil, geomath.ErrDegenerateVector.Wrapf("cannot normalize %s", v)
	}
	n, err := v.TryNormalized()
	if err != nil {
		return nil, err
	}
	return types.NewVectorResult("normalize", n, c.config.Output.Precision, v), nil
}

// Dot returns a·b
func (c *Client) Dot(a, b *geomath.Vector3) *types.VectorResult {
	return types.NewScalarResult("dot", a.Dot(b), c.config.Output.Precision, a, b)
}

// FromTo returns the vector from one point to another
func (c *Client) FromTo(from, to *geomath.Vector3) *types.VectorResult {
	return types.NewVectorResult("from-to", geomath.CreateFromToVector(from, to), c.config.Output.Precision, from, to)
}

// Project projects p onto the direction of onto. With standard set the
// textbook projection is used, otherwise the component-wise form.
func (c *Client) Project(p, onto *geomath.Vector3, standard bool) (*types.VectorResult, error) {
	if c.degenerate(onto) {
		return nil, geomath.ErrDegenerateVector.Wrapf("cannot project onto %s", onto)
	}

	if !standard {
		return types.NewVectorResult("project", geomath.CreateProjectedVector(p, onto), c.config.Output.Precision, p, onto), nil
	}

	proj, err := geomath.ProjectOnto(p, onto)
	if err != nil {
		return nil, err
	}
	return types.NewVectorResult("project-standard", proj, c.config.Output.Precision, p, onto), nil
}

// degenerate reports vectors too short to normalize reliably, or whose
// length is not finite
func (c *Client) degenerate(v *geomath.Vector3) bool {
	mag := v.Norm()
	return mag < c.config.Math.Tolerance || math.IsInf(mag, 0) || math.IsNaN(mag)
}

// Print writes v in the configured output format
func (c *Client) Print(v interface{}) error {
	if err := types.Encode(c.out, c.config.Output.Format, v); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
