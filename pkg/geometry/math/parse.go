package math

import (
	"strconv"
	"strings"

	"cosmossdk.io/errors"
)

// ParseVector3 parses "x,y,z". Whitespace around components is ignored and
// empty components count as 0, so ",1," is (0, 1, 0).
func ParseVector3(s string) (*Vector3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, errors.Wrapf(ErrInvalidVectorFormat, "%q: expected 3 components, got %d", s, len(parts))
	}

	var c [3]float64
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidVectorFormat, "%q: component %d: %v", s, i, err)
		}
		c[i] = f
	}
	return NewVector3(c[0], c[1], c[2]), nil
}
