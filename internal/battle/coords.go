// Package battle is the simulation core of the battle screen: coordinates,
// geometry, pathfinding, the player and enemy state machines, and the
// per-tick orchestration that ties them together. It has no Ebiten
// dependency; the host feeds it one Input per tick and draws Snapshots.
package battle

import (
	"fmt"
	"math"
)

// CellSize is the side length of one grid cell in world units.
const CellSize = 20

const halfCell = CellSize / 2

// WorldCoord is a continuous position in world units. North is -Y.
type WorldCoord struct {
	X int
	Y int
}

// CellCoord is a discrete grid index. Cell (0,0) is centred on world (0,0).
type CellCoord struct {
	X int
	Y int
}

// Corners are the four world-space corners of a cell. Top means smaller Y.
type Corners struct {
	TopLeft     WorldCoord
	TopRight    WorldCoord
	BottomLeft  WorldCoord
	BottomRight WorldCoord
}

func (w WorldCoord) String() string { return fmt.Sprintf("(%d,%d)", w.X, w.Y) }
func (c CellCoord) String() string  { return fmt.Sprintf("[%d,%d]", c.X, c.Y) }

// Cell returns the grid cell containing w.
func (w WorldCoord) Cell() CellCoord {
	return WorldToCell(w)
}

// DistanceTo is the Euclidean distance in world units.
func (w WorldCoord) DistanceTo(o WorldCoord) float64 {
	dx := float64(o.X - w.X)
	dy := float64(o.Y - w.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// WorldToCell maps a world position to the cell whose center is nearest.
// A point exactly on a boundary resolves away from zero.
func WorldToCell(w WorldCoord) CellCoord {
	return CellCoord{X: axisToCell(w.X), Y: axisToCell(w.Y)}
}

func axisToCell(v int) int {
	if v < 0 {
		return -((-v + halfCell) / CellSize)
	}
	return (v + halfCell) / CellSize
}

// Center returns the world-space center of the cell.
func (c CellCoord) Center() WorldCoord {
	return WorldCoord{X: c.X * CellSize, Y: c.Y * CellSize}
}

// Corners returns the cell's corners.
func (c CellCoord) Corners() Corners {
	ctr := c.Center()
	return Corners{
		TopLeft:     WorldCoord{X: ctr.X - halfCell, Y: ctr.Y - halfCell},
		TopRight:    WorldCoord{X: ctr.X + halfCell, Y: ctr.Y - halfCell},
		BottomLeft:  WorldCoord{X: ctr.X - halfCell, Y: ctr.Y + halfCell},
		BottomRight: WorldCoord{X: ctr.X + halfCell, Y: ctr.Y + halfCell},
	}
}

// North and friends return the neighbouring cell n steps away.
func (c CellCoord) North(n int) CellCoord { return CellCoord{X: c.X, Y: c.Y - n} }
func (c CellCoord) South(n int) CellCoord { return CellCoord{X: c.X, Y: c.Y + n} }
func (c CellCoord) West(n int) CellCoord  { return CellCoord{X: c.X - n, Y: c.Y} }
func (c CellCoord) East(n int) CellCoord  { return CellCoord{X: c.X + n, Y: c.Y} }

// Neighbors returns the four orthogonal neighbours in N, S, W, E order.
func (c CellCoord) Neighbors() [4]CellCoord {
	return [4]CellCoord{c.North(1), c.South(1), c.West(1), c.East(1)}
}

// DistanceTo is the Euclidean distance between cell centers in cell units.
func (c CellCoord) DistanceTo(o CellCoord) float64 {
	dx := float64(o.X - c.X)
	dy := float64(o.Y - c.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// ManhattanTo is the 4-connected step count between two cells.
func (c CellCoord) ManhattanTo(o CellCoord) int {
	return absInt(o.X-c.X) + absInt(o.Y-c.Y)
}

// sharedEdge returns the two corners on the edge shared by adjacent cells a
// and b. ok is false when the cells are not orthogonally adjacent.
func sharedEdge(a, b CellCoord) (WorldCoord, WorldCoord, bool) {
	cs := a.Corners()
	switch b {
	case a.North(1):
		return cs.TopLeft, cs.TopRight, true
	case a.South(1):
		return cs.BottomLeft, cs.BottomRight, true
	case a.West(1):
		return cs.TopLeft, cs.BottomLeft, true
	case a.East(1):
		return cs.TopRight, cs.BottomRight, true
	}
	return WorldCoord{}, WorldCoord{}, false
}

// isCorner reports whether w lies on a cell corner.
func isCorner(w WorldCoord) bool {
	return modFloor(w.X+halfCell, CellSize) == 0 && modFloor(w.Y+halfCell, CellSize) == 0
}

// ScreenPoint is a pixel position produced by ToDisplay.
type ScreenPoint struct {
	X int
	Y int
}

// ToDisplay projects a world position onto a viewport centred on camera and
// scaled by scale. Only the rendering side calls this.
func ToDisplay(w, camera WorldCoord, scale float64, viewportW, viewportH int) ScreenPoint {
	x := int(float64(w.X-camera.X)*scale) + viewportW/2
	y := int(float64(w.Y-camera.Y)*scale) + viewportH/2
	return ScreenPoint{X: x, Y: y}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func modFloor(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
