package battle

import (
	"errors"
	"math"
	"testing"
)

func TestWorldToCell_Centers(t *testing.T) {
	cases := []struct {
		w    WorldCoord
		want CellCoord
	}{
		{WorldCoord{0, 0}, CellCoord{0, 0}},
		{WorldCoord{9, -9}, CellCoord{0, 0}},
		{WorldCoord{20, 40}, CellCoord{1, 2}},
		{WorldCoord{-20, -40}, CellCoord{-1, -2}},
		{WorldCoord{150, -150}, CellCoord{8, -8}},
		{WorldCoord{29, -31}, CellCoord{1, -2}},
	}
	for _, c := range cases {
		if got := WorldToCell(c.w); got != c.want {
			t.Fatalf("WorldToCell(%v) = %v, want %v", c.w, got, c.want)
		}
	}
}

func TestWorldToCell_BoundaryRoundsAwayFromZero(t *testing.T) {
	// (10,-10) is the corner shared by cells [0,0], [1,0], [0,-1], [1,-1].
	corner := WorldCoord{X: 10, Y: -10}
	first := WorldToCell(corner)
	for i := 0; i < 5; i++ {
		if got := WorldToCell(corner); got != first {
			t.Fatalf("call %d: %v, first call gave %v", i, got, first)
		}
	}
	if first != (CellCoord{X: 1, Y: -1}) {
		t.Fatalf("corner (10,-10) resolved to %v, want [1,-1]", first)
	}
	if got := WorldToCell(WorldCoord{X: -10, Y: 10}); got != (CellCoord{X: -1, Y: 1}) {
		t.Fatalf("corner (-10,10) resolved to %v, want [-1,1]", got)
	}
}

func TestCellCenter_RoundTrip(t *testing.T) {
	for x := -12; x <= 12; x++ {
		for y := -12; y <= 12; y++ {
			c := CellCoord{X: x, Y: y}
			if got := WorldToCell(c.Center()); got != c {
				t.Fatalf("round trip of %v gave %v", c, got)
			}
			if back := WorldToCell(c.Center()).Center(); back != c.Center() {
				t.Fatalf("center of %v drifted to %v", c, back)
			}
		}
	}
}

func TestCellCorners_TopIsNorth(t *testing.T) {
	cs := CellCoord{X: 1, Y: 2}.Corners()
	if cs.TopLeft != (WorldCoord{10, 30}) || cs.TopRight != (WorldCoord{30, 30}) {
		t.Fatalf("top corners wrong: %v %v", cs.TopLeft, cs.TopRight)
	}
	if cs.BottomLeft != (WorldCoord{10, 50}) || cs.BottomRight != (WorldCoord{30, 50}) {
		t.Fatalf("bottom corners wrong: %v %v", cs.BottomLeft, cs.BottomRight)
	}
	for _, w := range []WorldCoord{cs.TopLeft, cs.TopRight, cs.BottomLeft, cs.BottomRight} {
		if !isCorner(w) {
			t.Fatalf("%v should be a grid corner", w)
		}
	}
}

func TestSharedEdge_MatchesNeighbourCorners(t *testing.T) {
	c := CellCoord{X: 3, Y: -1}
	for _, n := range c.Neighbors() {
		a, b, ok := sharedEdge(c, n)
		if !ok {
			t.Fatalf("%v and %v should share an edge", c, n)
		}
		a2, b2, _ := sharedEdge(n, c)
		if !((a == a2 && b == b2) || (a == b2 && b == a2)) {
			t.Fatalf("edge %v-%v seen from %v is %v-%v", a, b, n, a2, b2)
		}
	}
	if _, _, ok := sharedEdge(c, CellCoord{X: 4, Y: 0}); ok {
		t.Fatal("diagonal cells do not share an edge")
	}
}

func TestToDisplay_CentersCamera(t *testing.T) {
	cam := WorldCoord{X: 100, Y: -50}
	if got := ToDisplay(cam, cam, 1.1, 1080, 720); got != (ScreenPoint{540, 360}) {
		t.Fatalf("camera center projected to %v", got)
	}
	got := ToDisplay(WorldCoord{X: 110, Y: -40}, cam, 1.1, 1080, 720)
	if got != (ScreenPoint{551, 371}) {
		t.Fatalf("offset point projected to %v, want (551,371)", got)
	}
}

func TestSnapFacing_Cardinals(t *testing.T) {
	cases := []struct {
		angle float64
		want  Direction
	}{
		{0, East},
		{math.Pi / 2, North},
		{math.Pi, West},
		{-math.Pi, West},
		{-math.Pi / 2, South},
		{2 * math.Pi, East},
		{math.Pi / 4, East},
		{-math.Pi / 4, East},
		{3 * math.Pi / 4, West},
		{-3 * math.Pi / 4, West},
		{1.0, North},
		{-1.0, South},
		{-2*math.Pi + 1.0, North},
		{-2*math.Pi - 0.1, East},
	}
	for _, c := range cases {
		got, err := SnapFacing(c.angle)
		if err != nil {
			t.Fatalf("SnapFacing(%v): %v", c.angle, err)
		}
		if got != c.want {
			t.Fatalf("SnapFacing(%v) = %s, want %s", c.angle, got, c.want)
		}
	}
}

func TestSnapFacing_OutOfRange(t *testing.T) {
	for _, a := range []float64{7.5, -7.5, math.NaN(), math.Inf(1)} {
		if _, err := SnapFacing(a); !errors.Is(err, ErrInvalidFacing) {
			t.Fatalf("SnapFacing(%v) err = %v, want ErrInvalidFacing", a, err)
		}
	}
}

func TestSegmentsIntersect_Cases(t *testing.T) {
	seg := func(ax, ay, bx, by int) Segment {
		return Segment{A: WorldCoord{ax, ay}, B: WorldCoord{bx, by}}
	}
	cases := []struct {
		name string
		a, b Segment
		want bool
	}{
		{"crossing", seg(0, 0, 10, 10), seg(0, 10, 10, 0), true},
		{"touching endpoint", seg(0, 0, 10, 0), seg(10, 0, 10, 10), true},
		{"disjoint", seg(0, 0, 10, 0), seg(0, 5, 10, 5), false},
		{"short of each other", seg(0, 0, 4, 4), seg(0, 10, 10, 0), false},
		{"collinear apart", seg(0, 0, 10, 0), seg(20, 0, 30, 0), true},
		{"parallel offset", seg(0, 0, 10, 10), seg(0, 1, 10, 11), false},
		{"point on segment", seg(5, 0, 5, 0), seg(0, 0, 10, 0), true},
		{"point off segment", seg(5, 3, 5, 3), seg(0, 0, 10, 0), false},
	}
	for _, c := range cases {
		if got := SegmentsIntersect(c.a, c.b); got != c.want {
			t.Fatalf("%s: got %t, want %t", c.name, got, c.want)
		}
		if SegmentsIntersect(c.a, c.b) != SegmentsIntersect(c.b, c.a) {
			t.Fatalf("%s: not symmetric", c.name)
		}
	}
}

func TestSegmentsIntersect_SymmetricGrid(t *testing.T) {
	var segs []Segment
	for _, a := range []WorldCoord{{0, 0}, {10, 0}, {-10, 10}, {5, 5}} {
		for _, b := range []WorldCoord{{0, 10}, {10, 10}, {-10, -10}, {5, 5}, {20, 0}} {
			segs = append(segs, Segment{A: a, B: b})
		}
	}
	for _, a := range segs {
		for _, b := range segs {
			if SegmentsIntersect(a, b) != SegmentsIntersect(b, a) {
				t.Fatalf("asymmetric for %v and %v", a, b)
			}
		}
	}
}

func TestSegmentIntersectsSquare(t *testing.T) {
	center := WorldCoord{X: 0, Y: 0}
	cases := []struct {
		name string
		seg  Segment
		want bool
	}{
		{"endpoint inside", Segment{WorldCoord{2, 2}, WorldCoord{50, 50}}, true},
		{"endpoint on boundary", Segment{WorldCoord{8, 0}, WorldCoord{50, 0}}, true},
		{"passes through", Segment{WorldCoord{-20, 0}, WorldCoord{20, 0}}, true},
		{"wholly above", Segment{WorldCoord{-20, -15}, WorldCoord{20, -15}}, false},
		{"wholly right", Segment{WorldCoord{15, -20}, WorldCoord{15, 20}}, false},
		{"clips corner", Segment{WorldCoord{0, -12}, WorldCoord{12, 0}}, true},
		{"misses corner", Segment{WorldCoord{4, -14}, WorldCoord{14, -4}}, false},
	}
	for _, c := range cases {
		if got := SegmentIntersectsSquare(c.seg, center, 16); got != c.want {
			t.Fatalf("%s: got %t, want %t", c.name, got, c.want)
		}
	}
}
