package math

import (
	"cosmossdk.io/errors"
)

// Codespace groups every error registered by the geometry packages.
const Codespace = "spheretrace"

var (
	ErrDegenerateVector    = errors.Register(Codespace, 2, "degenerate vector: zero or non-finite length")
	ErrDegenerateRay       = errors.Register(Codespace, 3, "degenerate ray: zero-length direction")
	ErrInvalidRadius       = errors.Register(Codespace, 4, "invalid sphere radius")
	ErrInvalidRay          = errors.Register(Codespace, 5, "invalid ray")
	ErrInvalidVectorFormat = errors.Register(Codespace, 6, "invalid vector format")
	ErrInvalidSphere       = errors.Register(Codespace, 8, "invalid sphere")
)
