package battle

import "container/heap"

// DefaultMaxExpansions caps how many nodes one search may expand. The arena
// is a few dozen cells across, so a reachable goal never needs this many;
// hitting the cap means the goal is walled off and the search gives up.
const DefaultMaxExpansions = 1000

// --- A* pathfinding ---

type pathNode struct {
	cell   CellCoord
	g, h   float64
	seq    int // insertion order, breaks f ties
	parent *pathNode
}

type openList []*pathNode

func (ol openList) Len() int { return len(ol) }
func (ol openList) Less(i, j int) bool {
	fi, fj := ol[i].g+ol[i].h, ol[j].g+ol[j].h
	if fi != fj {
		return fi < fj
	}
	return ol[i].seq < ol[j].seq
}
func (ol openList) Swap(i, j int)       { ol[i], ol[j] = ol[j], ol[i] }
func (ol *openList) Push(x interface{}) { *ol = append(*ol, x.(*pathNode)) }
func (ol *openList) Pop() interface{} {
	old := *ol
	n := old[len(old)-1]
	old[len(old)-1] = nil
	*ol = old[:len(old)-1]
	return n
}

// PathTo searches the 4-connected grid from one cell to another. Walls block
// the edge they lie on and blocked cells are never entered. The returned path
// excludes from and ends at to; from == to yields an empty path. ok is false
// when the goal is unreachable or the search expanded more than maxExpansions
// nodes (<= 0 means DefaultMaxExpansions).
func PathTo(from, to CellCoord, walls []Wall, blocked []CellCoord, maxExpansions int) ([]CellCoord, bool) {
	if from == to {
		return []CellCoord{}, true
	}
	if maxExpansions <= 0 {
		maxExpansions = DefaultMaxExpansions
	}

	blockedSet := make(map[CellCoord]bool, len(blocked))
	for _, c := range blocked {
		blockedSet[c] = true
	}
	if blockedSet[to] {
		return nil, false
	}

	seq := 0
	start := &pathNode{cell: from, h: from.DistanceTo(to)}
	ol := &openList{start}
	heap.Init(ol)

	closed := make(map[CellCoord]bool)
	best := map[CellCoord]*pathNode{from: start}

	expansions := 0
	for ol.Len() > 0 {
		cur := heap.Pop(ol).(*pathNode)
		if closed[cur.cell] {
			continue
		}
		if cur.cell == to {
			return buildPath(cur), true
		}
		expansions++
		if expansions > maxExpansions {
			return nil, false
		}
		closed[cur.cell] = true

		for _, n := range cur.cell.Neighbors() {
			if blockedSet[n] || closed[n] || edgeBlocked(walls, cur.cell, n) {
				continue
			}
			g := cur.g + 1
			if prev, ok := best[n]; ok && g >= prev.g {
				continue
			}
			seq++
			node := &pathNode{cell: n, g: g, h: n.DistanceTo(to), seq: seq, parent: cur}
			best[n] = node
			heap.Push(ol, node)
		}
	}
	return nil, false
}

func edgeBlocked(walls []Wall, a, b CellCoord) bool {
	for _, w := range walls {
		if w.Blocks(a, b) {
			return true
		}
	}
	return false
}

func buildPath(end *pathNode) []CellCoord {
	var cells []CellCoord
	for n := end; n.parent != nil; n = n.parent {
		cells = append(cells, n.cell)
	}
	// Reverse
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	return cells
}
