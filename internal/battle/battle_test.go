package battle

import (
	"strings"
	"testing"
)

type soundCall struct {
	op, a, b string
	volume   float64
}

type recordingSound struct {
	calls []soundCall
}

func (r *recordingSound) RegisterFile(name, path string) {
	r.calls = append(r.calls, soundCall{op: "register", a: name, b: path})
}

func (r *recordingSound) PlayRegisteredLooping(channel, name string, volume float64) {
	r.calls = append(r.calls, soundCall{op: "play", a: channel, b: name, volume: volume})
}

func TestBattle_StartingGoesLiveAndStartsMusic(t *testing.T) {
	snd := &recordingSound{}
	b, err := New(DefaultConfig(), snd)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if b.State != BattleStarting {
		t.Fatalf("state = %s, want starting", b.State)
	}
	if err := b.Tick(NoInput); err != nil {
		t.Fatalf("tick: %v", err)
	}
	if b.State != BattleLive || b.Round != 1 {
		t.Fatalf("state = %s round = %d", b.State, b.Round)
	}
	want := []soundCall{
		{op: "register", a: "battle-bg", b: "assets/sounds/Cool-Adventure-Intro.mp3"},
		{op: "play", a: "bg", b: "battle-bg", volume: 0.2},
	}
	if len(snd.calls) != len(want) {
		t.Fatalf("sound calls = %+v", snd.calls)
	}
	for i := range want {
		if snd.calls[i] != want[i] {
			t.Fatalf("call %d = %+v, want %+v", i, snd.calls[i], want[i])
		}
	}
	for i := 0; i < 5; i++ {
		if err := b.Tick(NoInput); err != nil {
			t.Fatalf("tick: %v", err)
		}
	}
	if len(snd.calls) != 2 {
		t.Fatalf("music restarted: %+v", snd.calls)
	}
}

func TestBattle_DefaultArena(t *testing.T) {
	b, err := New(DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if b.Player.Pos != (WorldCoord{150, -150}) || b.Player.State.Kind != StateStanding {
		t.Fatalf("player = %v %s", b.Player.Pos, b.Player.State)
	}
	if len(b.Plots) != 8 || b.Button.Cell != (CellCoord{}) {
		t.Fatalf("plots = %d button = %v", len(b.Plots), b.Button.Cell)
	}
	if p, ok := b.PlotAt(CellCoord{-2, -1}); !ok || p.Ability != ButtonPress {
		t.Fatalf("plot at [-2,-1] = %v %t", p, ok)
	}
	if b.Camera.Scale != 1.1 {
		t.Fatalf("camera scale = %v", b.Camera.Scale)
	}
	for _, e := range b.Enemies {
		if e.Behavior.Kind != BehaviorIdle || e.Health != e.MaxHealth {
			t.Fatalf("enemy %d starts as %s hp %d/%d", e.ID, e.Behavior, e.Health, e.MaxHealth)
		}
	}
}

func TestBattle_FinishStopsTicks(t *testing.T) {
	tb := NewTestBattle()
	tb.Finish()
	if tb.State != BattleStarting {
		t.Fatal("finish before going live should be ignored")
	}
	tick(t, tb, NoInput)
	tb.Finish()
	if tb.State != BattleFinished {
		t.Fatalf("state = %s, want finished", tb.State)
	}
	round, pos := tb.Round, tb.Player.Pos
	run(t, tb, 10, Move(0))
	if tb.Round != round || tb.Player.Pos != pos {
		t.Fatal("finished battle should ignore ticks")
	}
}

func TestBattle_CameraTrailsPlayer(t *testing.T) {
	tb := NewTestBattle(Live())
	tick(t, tb, NoInput)
	if tb.Camera.Pos != (WorldCoord{15, -15}) {
		t.Fatalf("camera = %v, want (15,-15)", tb.Camera.Pos)
	}
	tick(t, tb, NoInput)
	if tb.Camera.Pos != (WorldCoord{28, -28}) {
		t.Fatalf("camera = %v, want (28,-28)", tb.Camera.Pos)
	}
	run(t, tb, 200, NoInput)
	if d := tb.Camera.Pos.DistanceTo(tb.Player.Pos); d > 15 {
		t.Fatalf("camera settled %.1f units from the player", d)
	}
}

func TestBattle_ButtonCountsLiveTicks(t *testing.T) {
	tb := NewTestBattle()
	tb.Button.State = ButtonState{Kind: ButtonPressed, Max: 10}
	run(t, tb, 4, NoInput) // first tick only goes live
	if tb.Button.State.Elapsed != 3 {
		t.Fatalf("button elapsed = %d, want 3", tb.Button.State.Elapsed)
	}

	idle := NewTestBattle(Live())
	run(t, idle, 4, NoInput)
	if idle.Button.State.Kind != ButtonNeverPressed || idle.Button.State.Elapsed != 0 {
		t.Fatalf("never-pressed button changed: %s", idle.Button.State)
	}
}

func TestBattle_NewRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Walls = append(cfg.Walls, EdgeConfig{A: WorldCoord{0, 0}, B: WorldCoord{20, 0}})
	if _, err := New(cfg, nil); err == nil {
		t.Fatal("misaligned wall should be rejected")
	}
}

func TestSnapshot_IsolatedFromBattle(t *testing.T) {
	tb := NewTestBattle(Live(), WithWall(-10, -10, 10, -10), WithEnemyAt(-200, 200))
	tick(t, tb, NoInput)
	snap := tb.Snapshot()
	if len(snap.Enemies) != 1 || len(snap.Enemies[0].Behavior.Path) == 0 {
		t.Fatalf("snapshot enemies = %+v", snap.Enemies)
	}
	snap.Walls[0].Health = 1
	snap.Enemies[0].Pos = WorldCoord{999, 999}
	snap.Enemies[0].Behavior.Path[0] = CellCoord{999, 999}
	snap.Player.Pos = WorldCoord{999, 999}

	if tb.Walls[0].Health != DefaultWallHealth {
		t.Fatal("snapshot wall aliases battle wall")
	}
	e := tb.Enemies[0]
	if e.Pos == (WorldCoord{999, 999}) || e.Behavior.Path[0] == (CellCoord{999, 999}) {
		t.Fatal("snapshot enemy aliases battle enemy")
	}
	if tb.Player.Pos == (WorldCoord{999, 999}) {
		t.Fatal("snapshot player aliases battle player")
	}
	if !snap.VisibleSet()[tb.Player.Cell()] {
		t.Fatal("snapshot visible set should contain the player's cell")
	}
}

func TestDebugReport_Sections(t *testing.T) {
	tb := NewTestBattle(WithEnemyAt(-200, 200), WithWall(-10, -10, 10, -10))
	run(t, tb, 3, NoInput)
	report := tb.DebugReport(0)
	for _, want := range []string{
		"state=live tick=3",
		"== player ==",
		"== enemies (1) ==",
		"E0",
		"walk_to_button",
		"walls=1",
		"starting → live",
	} {
		if !strings.Contains(report, want) {
			t.Fatalf("report missing %q:\n%s", want, report)
		}
	}
}
