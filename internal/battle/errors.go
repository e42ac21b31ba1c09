package battle

import "errors"

// Precondition violations. They abort the tick and propagate to the host.
var (
	ErrInvalidFacing  = errors.New("facing angle outside valid range")
	ErrDiagonalWall   = errors.New("wall is not axis-aligned")
	ErrMisalignedWall = errors.New("wall endpoints are not adjacent cell corners")
)
