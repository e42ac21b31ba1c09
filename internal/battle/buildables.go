package battle

import "fmt"

// DefaultWallHealth is the health of a freshly built wall.
const DefaultWallHealth = 100

// Wall is an impassable, opaque segment lying on exactly one cell edge.
type Wall struct {
	Endpoints [2]WorldCoord
	Health    int
	MaxHealth int
}

// Window lies on a cell edge like a wall but neither blocks movement nor
// sight. It is kept as its own type because combat will treat it differently.
type Window struct {
	Endpoints [2]WorldCoord
	Health    int
	MaxHealth int
}

// NewWall validates that a and b are adjacent corners of some cell and
// returns a full-health wall between them.
func NewWall(a, b WorldCoord) (Wall, error) {
	if err := checkEdge(a, b); err != nil {
		return Wall{}, fmt.Errorf("new wall %v-%v: %w", a, b, err)
	}
	return Wall{Endpoints: [2]WorldCoord{a, b}, Health: DefaultWallHealth, MaxHealth: DefaultWallHealth}, nil
}

// NewWindow is NewWall for windows.
func NewWindow(a, b WorldCoord) (Window, error) {
	if err := checkEdge(a, b); err != nil {
		return Window{}, fmt.Errorf("new window %v-%v: %w", a, b, err)
	}
	return Window{Endpoints: [2]WorldCoord{a, b}, Health: DefaultWallHealth, MaxHealth: DefaultWallHealth}, nil
}

func checkEdge(a, b WorldCoord) error {
	if !isCorner(a) || !isCorner(b) {
		return ErrMisalignedWall
	}
	dx, dy := absInt(a.X-b.X), absInt(a.Y-b.Y)
	if !(dx == CellSize && dy == 0) && !(dx == 0 && dy == CellSize) {
		return ErrMisalignedWall
	}
	return nil
}

// Segment returns the wall as a geometry segment.
func (w Wall) Segment() Segment { return Segment{A: w.Endpoints[0], B: w.Endpoints[1]} }

// Matches reports whether the wall lies exactly on the edge a-b, in either
// endpoint order.
func (w Wall) Matches(a, b WorldCoord) bool {
	return (w.Endpoints[0] == a && w.Endpoints[1] == b) ||
		(w.Endpoints[0] == b && w.Endpoints[1] == a)
}

// Blocks reports whether the wall sits on the edge shared by cells a and b.
func (w Wall) Blocks(a, b CellCoord) bool {
	c1, c2, ok := sharedEdge(a, b)
	return ok && w.Matches(c1, c2)
}

// Midpoint is the world-space midpoint of the wall.
func (w Wall) Midpoint() WorldCoord {
	return WorldCoord{
		X: (w.Endpoints[0].X + w.Endpoints[1].X) / 2,
		Y: (w.Endpoints[0].Y + w.Endpoints[1].Y) / 2,
	}
}

// Horizontal reports whether the wall runs east-west. Diagonal walls return
// ErrDiagonalWall.
func (w Wall) Horizontal() (bool, error) {
	a, b := w.Endpoints[0], w.Endpoints[1]
	switch {
	case a.Y == b.Y:
		return true, nil
	case a.X == b.X:
		return false, nil
	}
	return false, fmt.Errorf("wall %v-%v: %w", a, b, ErrDiagonalWall)
}

// Cells returns the two cells that share the wall's edge.
func (w Wall) Cells() [2]CellCoord {
	m := w.Midpoint()
	if w.Endpoints[0].Y == w.Endpoints[1].Y {
		return [2]CellCoord{
			WorldToCell(WorldCoord{X: m.X, Y: m.Y - halfCell}),
			WorldToCell(WorldCoord{X: m.X, Y: m.Y + halfCell}),
		}
	}
	return [2]CellCoord{
		WorldToCell(WorldCoord{X: m.X - halfCell, Y: m.Y}),
		WorldToCell(WorldCoord{X: m.X + halfCell, Y: m.Y}),
	}
}

// findWall returns the wall lying on edge a-b, if any.
func findWall(walls []Wall, a, b WorldCoord) (Wall, bool) {
	for _, w := range walls {
		if w.Matches(a, b) {
			return w, true
		}
	}
	return Wall{}, false
}
