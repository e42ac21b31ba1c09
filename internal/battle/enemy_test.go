package battle

import (
	"errors"
	"testing"
)

func TestEnemy_IdleTargetsNearbyPlayer(t *testing.T) {
	tb := NewTestBattle(Live(), WithPlayerInCell(5, 5), WithEnemyAt(0, 100))
	tick(t, tb, NoInput)

	e := tb.Enemies[0]
	b := e.Behavior
	if b.Kind != BehaviorTargetPlayer || b.Elapsed != 0 || b.Max != 150 {
		t.Fatalf("behavior = %s, want target_player(0/150)", b)
	}
	if len(b.Path) != 5 || b.Path[len(b.Path)-1] != (CellCoord{5, 5}) {
		t.Fatalf("path = %v, want 5 steps ending at player", b.Path)
	}
	assertContiguous(t, CellCoord{0, 5}, b.Path)
}

func TestEnemy_DiagonalTargetUsesGridDistance(t *testing.T) {
	// 3-4-5 triangle: Euclidean 5 cells, 7 grid steps.
	tb := NewTestBattle(Live(), WithPlayerInCell(6, 5), WithEnemyAt(60, 20))
	tick(t, tb, NoInput)
	b := tb.Enemies[0].Behavior
	if b.Kind != BehaviorTargetPlayer || len(b.Path) != 7 {
		t.Fatalf("behavior = %s path = %v, want target_player with 7 steps", b, b.Path)
	}
}

func TestEnemy_FarPlayerWalksToButton(t *testing.T) {
	tb := NewTestBattle(Live(), WithEnemyAt(-200, 200))
	tick(t, tb, NoInput)
	b := tb.Enemies[0].Behavior
	if b.Kind != BehaviorWalkToButton {
		t.Fatalf("behavior = %s, want walk_to_button", b)
	}
	if len(b.Path) != 20 || b.Path[len(b.Path)-1] != tb.Button.Cell {
		t.Fatalf("path = %v, want 20 steps to the button", b.Path)
	}
	if !tb.Log.HasEntry("enemy", "behavior", "walk_to_button") {
		t.Fatalf("behavior change not logged:\n%s", tb.Log.Format())
	}
}

func TestEnemy_WalledButtonFallsBackToWalls(t *testing.T) {
	tb := NewTestBattle(Live(),
		WithEnemyAt(100, 0),
		WithWall(-10, -10, 10, -10),
		WithWall(-10, 10, 10, 10),
		WithWall(-10, -10, -10, 10),
		WithWall(10, -10, 10, 10),
	)
	tick(t, tb, NoInput)
	b := tb.Enemies[0].Behavior
	if b.Kind != BehaviorAttackWalls {
		t.Fatalf("behavior = %s, want attack_walls", b)
	}
	if len(b.Path) != 4 || b.Path[3] != (CellCoord{1, 0}) {
		t.Fatalf("path = %v, want 4 steps to the east face of the box", b.Path)
	}
}

func TestEnemy_NothingReachableStaysIdle(t *testing.T) {
	// E1 sits on the button, so E0 cannot path there and has no wall to hit.
	tb := NewTestBattle(Live(), WithEnemyAt(-200, 200), WithEnemyAt(0, 0))
	tick(t, tb, NoInput)
	if k := tb.Enemies[0].Behavior.Kind; k != BehaviorIdle {
		t.Fatalf("behavior = %s, want idle", k)
	}
}

func TestEnemy_PathAvoidsOtherEnemies(t *testing.T) {
	tb := NewTestBattle(Live(), WithPlayerInCell(3, 5), WithEnemyAt(0, 100), WithEnemyAt(20, 100))
	tick(t, tb, NoInput)
	b := tb.Enemies[0].Behavior
	if b.Kind != BehaviorTargetPlayer {
		t.Fatalf("behavior = %s, want target_player", b)
	}
	for _, c := range b.Path {
		if c == (CellCoord{1, 5}) {
			t.Fatalf("path %v runs through the other enemy", b.Path)
		}
	}
	if len(b.Path) != 5 {
		t.Fatalf("detour path = %v, want 5 steps", b.Path)
	}
}

func TestEnemy_WaypointAdvancesWithinOwnBehavior(t *testing.T) {
	for _, kind := range []BehaviorKind{BehaviorTargetPlayer, BehaviorAttackWalls, BehaviorWalkToButton} {
		tb := NewTestBattle(Live(), WithEnemyAt(40, 0))
		e := tb.Enemies[0]
		e.Behavior = EnemyBehavior{Kind: kind, Elapsed: 3, Max: 150, Path: []CellCoord{{2, 0}, {3, 0}}}
		tick(t, tb, NoInput)
		b := e.Behavior
		if b.Kind != kind || b.Elapsed != 4 || len(b.Path) != 1 || b.Path[0] != (CellCoord{3, 0}) {
			t.Fatalf("%s: after waypoint = %s %v", kind, b, b.Path)
		}
		if e.Pos != (WorldCoord{40, 0}) {
			t.Fatalf("%s: popping a waypoint should not move, pos = %v", kind, e.Pos)
		}
	}
}

func TestEnemy_MovesTowardWaypoint(t *testing.T) {
	tb := NewTestBattle(Live(), WithEnemyAt(40, 0))
	e := tb.Enemies[0]
	e.Behavior = TargetPlayer(0, 150, []CellCoord{{3, 0}})
	tick(t, tb, NoInput)
	if e.Pos != (WorldCoord{41, 0}) || e.Snapped != East {
		t.Fatalf("pos = %v snapped = %s, want (41,0) east", e.Pos, e.Snapped)
	}
	if e.Behavior.Elapsed != 0 {
		t.Fatalf("moving should not count as progress, elapsed = %d", e.Behavior.Elapsed)
	}

	e.Behavior = TargetPlayer(0, 150, []CellCoord{{2, -1}})
	tick(t, tb, NoInput)
	if e.Pos != (WorldCoord{41, -1}) || e.Snapped != North {
		t.Fatalf("pos = %v snapped = %s, want one step north", e.Pos, e.Snapped)
	}
}

func TestEnemy_TimeBoxExpiresToIdle(t *testing.T) {
	tb := NewTestBattle(Live(), WithEnemyAt(40, 0))
	e := tb.Enemies[0]
	e.Behavior = WalkToButton(150, 150, []CellCoord{{3, 0}})
	tick(t, tb, NoInput)
	if e.Behavior.Kind != BehaviorIdle {
		t.Fatalf("behavior = %s, want idle", e.Behavior)
	}
}

func TestEnemy_ExhaustedPathGoesIdle(t *testing.T) {
	tb := NewTestBattle(Live(), WithEnemyAt(40, 0))
	e := tb.Enemies[0]
	e.Behavior = AttackWalls(2, 150, nil)
	tick(t, tb, NoInput)
	if e.Behavior.Kind != BehaviorIdle {
		t.Fatalf("behavior = %s, want idle", e.Behavior)
	}
}

func TestEnemy_ReachesButton(t *testing.T) {
	tb := NewTestBattle(Live(), WithEnemyAt(-100, 0))
	e := tb.Enemies[0]
	n, err := tb.RunUntil(NoInput, func(tb *TestBattle) bool {
		return e.Cell() == tb.Button.Cell
	}, 300)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if n < 0 {
		t.Fatalf("enemy never reached the button, ended at %v:\n%s", e.Pos, tb.Log.Format())
	}
}

func TestEnemy_DiagonalWallFailsTick(t *testing.T) {
	tb := NewTestBattle(Live(), WithEnemyAt(-200, 200), WithEnemyAt(0, 0))
	tb.Walls = append(tb.Walls, Wall{Endpoints: [2]WorldCoord{{-190, 170}, {-170, 190}}})
	err := tb.Tick(NoInput)
	if !errors.Is(err, ErrDiagonalWall) {
		t.Fatalf("err = %v, want ErrDiagonalWall", err)
	}
}

func TestNearestWall_SumOfEndpointDistances(t *testing.T) {
	walls := []Wall{
		mustWall(t, 90, -10, 90, 10),
		mustWall(t, 10, -10, 10, 10),
	}
	w, ok := nearestWall(walls, WorldCoord{60, 0})
	if !ok || w != walls[0] {
		t.Fatalf("nearest = %v, want %v", w, walls[0])
	}
	if _, ok := nearestWall(nil, WorldCoord{}); ok {
		t.Fatal("no walls should report false")
	}
}

func TestWallApproach_PicksNearSide(t *testing.T) {
	w := mustWall(t, -10, 10, 10, 10) // between [0,0] and [0,1]
	got, err := wallApproach(w, WorldCoord{0, 200})
	if err != nil || got != (CellCoord{0, 1}) {
		t.Fatalf("approach from south = %v (%v), want [0,1]", got, err)
	}
	got, _ = wallApproach(w, WorldCoord{0, -200})
	if got != (CellCoord{0, 0}) {
		t.Fatalf("approach from north = %v, want [0,0]", got)
	}
}
