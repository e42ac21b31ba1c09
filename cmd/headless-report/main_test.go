package main

import (
	"math"
	"testing"

	"github.com/Garsondee/Button-Game/internal/battle"
	"github.com/Garsondee/Button-Game/internal/logger"
)

func TestFirstTick(t *testing.T) {
	entries := []battle.SimLogEntry{
		{Tick: 3, Category: "enemy", Key: "behavior", Value: "idle → walk_to_button"},
		{Tick: 9, Category: "enemy", Key: "behavior", Value: "walk_to_button → target_player"},
		{Tick: 12, Category: "build", Key: "wall", Value: "(10,10)-(30,10)"},
	}
	if got := firstTick(entries, "enemy", "behavior", ""); got != 3 {
		t.Fatalf("first behavior = %d, want 3", got)
	}
	if got := firstTick(entries, "enemy", "behavior", "→ target_player"); got != 9 {
		t.Fatalf("first target = %d, want 9", got)
	}
	if got := firstTick(entries, "player", "learned", ""); got != -1 {
		t.Fatalf("missing event = %d, want -1", got)
	}
}

func TestWalkToward_Angles(t *testing.T) {
	origin := battle.WorldCoord{}
	cases := []struct {
		target battle.WorldCoord
		want   float64
	}{
		{battle.WorldCoord{X: 10}, 0},
		{battle.WorldCoord{Y: -10}, math.Pi / 2},
		{battle.WorldCoord{X: -10}, math.Pi},
		{battle.WorldCoord{Y: 10}, -math.Pi / 2},
	}
	for _, c := range cases {
		in := walkToward(origin, c.target)
		if !in.HasIntent || math.Abs(in.Angle-c.want) > 1e-9 {
			t.Fatalf("toward %v: %+v, want angle %v", c.target, in, c.want)
		}
	}
}

func TestScriptByName(t *testing.T) {
	if _, err := scriptByName("dance", battle.DefaultConfig()); err == nil {
		t.Fatal("unknown script should fail")
	}
	cfg := battle.DefaultConfig()
	cfg.Plots = nil
	if _, err := scriptByName("learn-build", cfg); err == nil {
		t.Fatal("learn-build needs a build plot")
	}
}

func TestConfigForRun_ShiftsSpawn(t *testing.T) {
	base := battle.DefaultConfig()
	if got := configForRun(base, 0, 1); got.Player.Spawn != base.Player.Spawn {
		t.Fatalf("run 0 spawn = %v, want base %v", got.Player.Spawn, base.Player.Spawn)
	}
	got := configForRun(base, 2, 1)
	want := battle.WorldCoord{X: base.Player.Spawn.X - 40, Y: base.Player.Spawn.Y + 40}
	if got.Player.Spawn != want {
		t.Fatalf("run 2 spawn = %v, want %v", got.Player.Spawn, want)
	}
	if base.Player.Spawn != battle.DefaultConfig().Player.Spawn {
		t.Fatal("base config mutated")
	}
	if same := configForRun(base, 3, 0); same.Player.Spawn != base.Player.Spawn {
		t.Fatal("zero step should repeat the base spawn")
	}
}

func TestRunBattle_RunsDiffer(t *testing.T) {
	logger.Silence()
	base := battle.DefaultConfig()
	var learned []int
	for i := 0; i < 2; i++ {
		cfg := configForRun(base, i, 1)
		sp, err := scriptByName("learn-build", cfg)
		if err != nil {
			t.Fatalf("script: %v", err)
		}
		b, err := runBattle(cfg, sp, 400, false)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		learned = append(learned, collectStats(i+1, "learn-build", b).firstLearnTick)
	}
	if learned[0] < 0 || learned[1] < 0 || learned[0] == learned[1] {
		t.Fatalf("first learn ticks = %v, want two distinct successes", learned)
	}
}

func TestRunBattle_LearnBuildScript(t *testing.T) {
	logger.Silence()
	cfg := battle.DefaultConfig()
	sp, err := scriptByName("learn-build", cfg)
	if err != nil {
		t.Fatalf("script: %v", err)
	}
	b, err := runBattle(cfg, sp, 400, false)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	rs := collectStats(1, "learn-build", b)
	if rs.firstLiveTick != 1 {
		t.Fatalf("live at %d, want 1", rs.firstLiveTick)
	}
	if rs.firstLearnTick < 0 || b.Player.Primary != battle.Build {
		t.Fatalf("build never learned (primary=%s)", b.Player.Primary.Name())
	}
	if rs.wallsBuilt != 1 || len(b.Walls) != 1 || rs.firstWallTick <= rs.firstLearnTick {
		t.Fatalf("walls built = %d at tick %d (learned %d)", rs.wallsBuilt, rs.firstWallTick, rs.firstLearnTick)
	}
	if rs.behaviorChanges == 0 || joinSet(rs.affected) == "none" {
		t.Fatal("enemies should have chosen behaviors")
	}
}

func TestAverages(t *testing.T) {
	if avg(7, 2) != 3.5 || avg(5, 0) != 0 {
		t.Fatal("avg wrong")
	}
	if avgTickString(nil) != "n/a" || avgTickString([]int{10, 20}) != "15.0" {
		t.Fatal("avgTickString wrong")
	}
	if got := joinSet(map[string]struct{}{"E2": {}, "E0": {}}); got != "E0,E2" {
		t.Fatalf("joinSet = %q", got)
	}
}
