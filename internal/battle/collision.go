package battle

// edgeHits records which edges of an entity's cell it is pressing into.
type edgeHits struct {
	Top, Right, Bottom, Left bool
}

func (h edgeHits) any() bool { return h.Top || h.Right || h.Bottom || h.Left }

// wallCollisions tests a square entity at pos against the walls lying on the
// four edges of its current cell.
func wallCollisions(walls []Wall, pos WorldCoord, width int) edgeHits {
	cs := WorldToCell(pos).Corners()
	hit := func(a, b WorldCoord) bool {
		w, ok := findWall(walls, a, b)
		return ok && SegmentIntersectsSquare(w.Segment(), pos, width)
	}
	return edgeHits{
		Top:    hit(cs.TopLeft, cs.TopRight),
		Right:  hit(cs.TopRight, cs.BottomRight),
		Bottom: hit(cs.BottomLeft, cs.BottomRight),
		Left:   hit(cs.TopLeft, cs.BottomLeft),
	}
}

// resolveWallCollisions pushes pos back half a cell from every wall it hit,
// each edge clamping only its own axis.
func resolveWallCollisions(walls []Wall, pos WorldCoord, width int) (WorldCoord, edgeHits) {
	h := wallCollisions(walls, pos, width)
	if !h.any() {
		return pos, h
	}
	cs := WorldToCell(pos).Corners()
	if h.Top {
		pos.Y = cs.TopLeft.Y + halfCell
	}
	if h.Right {
		pos.X = cs.TopRight.X - halfCell
	}
	if h.Bottom {
		pos.Y = cs.BottomLeft.Y - halfCell
	}
	if h.Left {
		pos.X = cs.TopLeft.X + halfCell
	}
	return pos, h
}

// resolveCollisions runs wall collision for the player and every enemy.
func (b *BattleContext) resolveCollisions() {
	var h edgeHits
	b.Player.Pos, h = resolveWallCollisions(b.Walls, b.Player.Pos, EntityWidth)
	if h.any() {
		b.Log.AddVerbose(b.Round, playerLabel, "player", "collision", b.Player.Pos.String(), 0)
	}
	for _, e := range b.Enemies {
		e.Pos, h = resolveWallCollisions(b.Walls, e.Pos, EntityWidth)
		if h.any() {
			b.Log.AddVerbose(b.Round, e.Label(), "enemy", "collision", e.Pos.String(), 0)
		}
	}
}
