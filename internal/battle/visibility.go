package battle

import "sort"

// visionTemplate returns the north-facing visibility offsets for a cone of
// the given depth: row r ahead spans r cells either side, plus the player's
// own cell and its eight neighbours.
func visionTemplate(depth int) []CellCoord {
	out := make([]CellCoord, 0, 9+depth*(depth+2))
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			out = append(out, CellCoord{X: dx, Y: dy})
		}
	}
	for r := 2; r <= depth; r++ {
		for dx := -r; dx <= r; dx++ {
			out = append(out, CellCoord{X: dx, Y: -r})
		}
	}
	return out
}

// rotateOffset turns a north-facing offset to face d.
func rotateOffset(o CellCoord, d Direction) CellCoord {
	switch d {
	case South:
		return CellCoord{X: -o.X, Y: -o.Y}
	case West:
		return CellCoord{X: o.Y, Y: o.X}
	case East:
		return CellCoord{X: -o.Y, Y: -o.X}
	default:
		return o
	}
}

// VisibleCellsFrom computes the cells visible from cell facing d with the
// given cone depth. A candidate cell is dropped when the sightline from just
// beyond the viewer's facing edge to the candidate's center crosses a wall
// bordering the candidate set. The viewer's own cell is always visible.
// Result order is row-major (y, then x).
func VisibleCellsFrom(cell CellCoord, d Direction, depth int, walls []Wall) []CellCoord {
	candidates := make(map[CellCoord]bool)
	for _, o := range visionTemplate(depth) {
		r := rotateOffset(o, d)
		candidates[CellCoord{X: cell.X + r.X, Y: cell.Y + r.Y}] = true
	}

	var bordering []Wall
	for _, w := range walls {
		cs := w.Cells()
		if candidates[cs[0]] || candidates[cs[1]] {
			bordering = append(bordering, w)
		}
	}

	ux, uy := d.Unit()
	origin := cell.Center()
	origin.X += ux * (halfCell + 1)
	origin.Y += uy * (halfCell + 1)

	out := make([]CellCoord, 0, len(candidates))
	for c := range candidates {
		if c == cell || !occluded(origin, c.Center(), bordering) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func occluded(from, to WorldCoord, walls []Wall) bool {
	sight := Segment{A: from, B: to}
	for _, w := range walls {
		if SegmentsIntersect(sight, w.Segment()) {
			return true
		}
	}
	return false
}

// VisibleCells is the player's current fog-of-war set. It is recomputed on
// every call.
func (b *BattleContext) VisibleCells() []CellCoord {
	p := &b.Player
	return VisibleCellsFrom(p.Cell(), p.Snapped, p.VisionRange(), b.Walls)
}
