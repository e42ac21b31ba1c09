package battle

// Segment is a line segment between two world points.
type Segment struct {
	A WorldCoord
	B WorldCoord
}

type vec2 struct{ x, y float64 }

func toVec(w WorldCoord) vec2       { return vec2{float64(w.X), float64(w.Y)} }
func (a vec2) sub(b vec2) vec2      { return vec2{a.x - b.x, a.y - b.y} }
func (a vec2) cross(b vec2) float64 { return a.x*b.y - a.y*b.x }

// SegmentsIntersect reports whether two segments touch or cross.
// Parallel collinear segments always count as intersecting, even when their
// extents do not overlap. Walls and sightlines are coarse enough that this
// has not mattered.
func SegmentsIntersect(first, second Segment) bool {
	p := toVec(first.A)
	q := toVec(second.A)
	r := toVec(first.B).sub(p)
	s := toVec(second.B).sub(q)

	rxs := r.cross(s)
	qp := q.sub(p)
	if rxs == 0 {
		return qp.cross(r) == 0 && qp.cross(s) == 0
	}

	t := qp.cross(s) / rxs
	u := qp.cross(r) / rxs
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// SegmentIntersectsSquare reports whether seg touches the axis-aligned square
// of the given side centred on center. Bounds are inclusive.
func SegmentIntersectsSquare(seg Segment, center WorldCoord, side int) bool {
	half := float64(side) / 2
	minX := float64(center.X) - half
	maxX := float64(center.X) + half
	minY := float64(center.Y) - half
	maxY := float64(center.Y) + half

	inside := func(w WorldCoord) bool {
		x, y := float64(w.X), float64(w.Y)
		return x >= minX && x <= maxX && y >= minY && y <= maxY
	}
	if inside(seg.A) || inside(seg.B) {
		return true
	}

	ax, ay := float64(seg.A.X), float64(seg.A.Y)
	bx, by := float64(seg.B.X), float64(seg.B.Y)
	switch {
	case ax < minX && bx < minX:
		return false
	case ax > maxX && bx > maxX:
		return false
	case ay < minY && by < minY:
		return false
	case ay > maxY && by > maxY:
		return false
	}

	h := side / 2
	tl := WorldCoord{X: center.X - h, Y: center.Y - h}
	tr := WorldCoord{X: center.X + h, Y: center.Y - h}
	bl := WorldCoord{X: center.X - h, Y: center.Y + h}
	br := WorldCoord{X: center.X + h, Y: center.Y + h}
	for _, edge := range [4]Segment{{tl, bl}, {tl, tr}, {tr, br}, {bl, br}} {
		if SegmentsIntersect(seg, edge) {
			return true
		}
	}
	return false
}
