package battle

import (
	"fmt"
	"math"
)

// Direction is a facing snapped to one of the four cardinal directions.
type Direction int

const (
	East Direction = iota
	North
	West
	South
)

func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	default:
		return "unknown"
	}
}

// Unit returns the world-space step for the direction (north is -Y).
func (d Direction) Unit() (int, int) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 1, 0
	}
}

// maxFacing bounds the angles SnapFacing accepts. Facing angles come from
// atan2 so anything past a quarter turn beyond a full turn is corrupted state.
const maxFacing = 2.25 * math.Pi

// SnapFacing classifies a facing angle (radians, 0 = east, π/2 = north) into
// one of four 90° sectors centred on the cardinals. Sector boundaries go to
// East or West: ±π/4 is East, ±3π/4 is West.
func SnapFacing(angle float64) (Direction, error) {
	if math.IsNaN(angle) || math.Abs(angle) > maxFacing {
		return East, fmt.Errorf("snap facing %v: %w", angle, ErrInvalidFacing)
	}
	switch angle {
	case 0:
		return East, nil
	case 0.5 * math.Pi:
		return North, nil
	case math.Pi, -math.Pi:
		return West, nil
	case -0.5 * math.Pi:
		return South, nil
	}

	a := math.Mod(angle, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a < -math.Pi {
		a += 2 * math.Pi
	}
	// Wrapped boundaries pick up rounding error from Mod.
	const eps = 1e-9
	switch {
	case math.Abs(math.Abs(a)-0.25*math.Pi) < eps:
		return East, nil
	case math.Abs(math.Abs(a)-0.75*math.Pi) < eps:
		return West, nil
	case a >= -0.25*math.Pi && a <= 0.25*math.Pi:
		return East, nil
	case a > 0.25*math.Pi && a < 0.75*math.Pi:
		return North, nil
	case a > -0.75*math.Pi && a < -0.25*math.Pi:
		return South, nil
	default:
		return West, nil
	}
}
