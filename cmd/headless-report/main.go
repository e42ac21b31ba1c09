package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/Button-Game/internal/battle"
	"github.com/Garsondee/Button-Game/internal/logger"
)

type runStats struct {
	runIndex int
	script   string
	ticks    int

	firstLiveTick    int
	firstLearnTick   int
	firstWallTick    int
	firstTargetTick  int
	firstSiegeTick   int
	playerChanges    int
	behaviorChanges  int
	unhandledInputs  int
	wallsBuilt       int
	duplicateWalls   int
	enemiesAtButton  int
	finalPlayerState string
	affected         map[string]struct{}
}

// scriptedPlayer produces one tick of input from the battle state.
type scriptedPlayer interface {
	Next(b *battle.BattleContext) battle.Input
}

type idleScript struct{}

func (idleScript) Next(*battle.BattleContext) battle.Input { return battle.NoInput }

// buildScript walks to the Build plot, learns it on the primary slot, steps
// off the plot and builds one wall.
type buildScript struct {
	phase int
	plot  battle.CellCoord
	site  battle.CellCoord
	walls int
}

func newBuildScript(cfg battle.Config) (*buildScript, error) {
	for _, p := range cfg.Plots {
		if p.Ability == battle.Build {
			return &buildScript{plot: p.Cell, site: p.Cell.North(1)}, nil
		}
	}
	return nil, errors.New("no build plot in config")
}

func (s *buildScript) Next(b *battle.BattleContext) battle.Input {
	p := &b.Player
	switch s.phase {
	case 0:
		if p.Cell() != s.plot {
			return walkToward(p.Pos, s.plot.Center())
		}
		s.phase++
		return battle.NoInput
	case 1:
		if p.Slot(battle.Primary) != battle.Build {
			return battle.Press(battle.Primary)
		}
		s.phase++
		return battle.NoInput
	case 2:
		if p.Cell() != s.site {
			return walkToward(p.Pos, s.site.Center())
		}
		s.walls = len(b.Walls)
		s.phase++
		return battle.NoInput
	case 3:
		if len(b.Walls) == s.walls {
			return battle.Press(battle.Primary)
		}
		s.phase++
	}
	return battle.NoInput
}

// walkToward is a move intent from pos toward target in the core's angle
// convention (north is -Y, π/2).
func walkToward(pos, target battle.WorldCoord) battle.Input {
	return battle.Move(math.Atan2(float64(pos.Y-target.Y), float64(target.X-pos.X)))
}

// configForRun offsets the player spawn diagonally by run*step cells so
// otherwise deterministic runs start from different positions. Run 0 is the
// base config.
func configForRun(base battle.Config, run, step int) battle.Config {
	cfg := base
	d := run * step * battle.CellSize
	cfg.Player.Spawn = battle.WorldCoord{X: base.Player.Spawn.X - d, Y: base.Player.Spawn.Y + d}
	return cfg
}

func scriptByName(name string, cfg battle.Config) (scriptedPlayer, error) {
	switch name {
	case "idle":
		return idleScript{}, nil
	case "learn-build":
		return newBuildScript(cfg)
	default:
		return nil, fmt.Errorf("unsupported script %q (supported: idle, learn-build)", name)
	}
}

func main() {
	var runs int
	var ticks int
	var script string
	var configPath string
	var showReport bool
	var copyReport bool
	var verbose bool
	var events int
	var spawnStep int

	flag.IntVar(&runs, "runs", 3, "number of headless battle runs")
	flag.IntVar(&ticks, "ticks", 900, "ticks per run")
	flag.StringVar(&script, "script", "learn-build", "player script name")
	flag.StringVar(&configPath, "config", "", "optional battle YAML config")
	flag.BoolVar(&showReport, "report", true, "print the last run's debug report")
	flag.BoolVar(&copyReport, "copy", false, "copy the last run's debug report to the clipboard")
	flag.BoolVar(&verbose, "verbose", false, "record verbose sim log entries")
	flag.IntVar(&events, "events", 40, "log entries included in the debug report")
	flag.IntVar(&spawnStep, "spawn-step", 1, "cells the player spawn shifts south-west per run (0 repeats run 1)")
	flag.Parse()

	logger.Silence()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(2)
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		os.Exit(2)
	}
	cfg := battle.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = battle.LoadConfig(configPath); err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(1)
		}
	}

	fmt.Printf("=== Headless Battle Report ===\n")
	fmt.Printf("script=%s runs=%d ticks=%d spawn_step=%d enemies=%d plots=%d\n\n", script, runs, ticks, spawnStep, len(cfg.Enemies), len(cfg.Plots))

	all := make([]runStats, 0, runs)
	var last *battle.BattleContext
	for i := 0; i < runs; i++ {
		runCfg := configForRun(cfg, i, spawnStep)
		sp, err := scriptByName(script, runCfg)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			os.Exit(2)
		}
		b, err := runBattle(runCfg, sp, ticks, verbose)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			os.Exit(1)
		}
		stats := collectStats(i+1, script, b)
		all = append(all, stats)
		printRun(stats)
		last = b
	}
	printAggregate(all)

	report := last.DebugReport(events)
	if showReport {
		fmt.Println()
		fmt.Print(report)
	}
	if copyReport {
		if err := clipboard.WriteAll(report); err != nil {
			fmt.Printf("error: copy report: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("debug report copied to clipboard")
	}
}

func runBattle(cfg battle.Config, sp scriptedPlayer, ticks int, verbose bool) (*battle.BattleContext, error) {
	b, err := battle.New(cfg, nil)
	if err != nil {
		return nil, err
	}
	b.Log = battle.NewSimLog(verbose)
	for i := 0; i < ticks; i++ {
		if err := b.Tick(sp.Next(b)); err != nil {
			return b, err
		}
	}
	return b, nil
}

func collectStats(runIndex int, script string, b *battle.BattleContext) runStats {
	entries := b.Log.Entries()
	rs := runStats{
		runIndex:         runIndex,
		script:           script,
		ticks:            b.Round,
		firstLiveTick:    firstTick(entries, "battle", "state", "live"),
		firstLearnTick:   firstTick(entries, "player", "learned", ""),
		firstWallTick:    firstTick(entries, "build", "wall", ""),
		firstTargetTick:  firstTick(entries, "enemy", "behavior", "→ target_player"),
		firstSiegeTick:   firstTick(entries, "enemy", "behavior", "→ attack_walls"),
		finalPlayerState: b.Player.State.String(),
		affected:         map[string]struct{}{},
	}
	for _, e := range entries {
		switch e.Category {
		case "player":
			switch e.Key {
			case "state":
				rs.playerChanges++
			case "unhandled":
				rs.unhandledInputs++
			}
		case "enemy":
			if e.Key == "behavior" {
				rs.behaviorChanges++
				rs.affected[e.Actor] = struct{}{}
			}
		case "build":
			switch e.Key {
			case "wall":
				rs.wallsBuilt++
			case "duplicate":
				rs.duplicateWalls++
			}
		}
	}
	for _, e := range b.Enemies {
		if e.Cell() == b.Button.Cell {
			rs.enemiesAtButton++
		}
	}
	return rs
}

func firstTick(entries []battle.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains == "" || strings.Contains(e.Value, contains) {
			return e.Tick
		}
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (script=%s) ---\n", rs.runIndex, rs.script)
	fmt.Printf("phase_markers: live=%d learned=%d first_wall=%d first_target=%d first_siege=%d\n",
		rs.firstLiveTick, rs.firstLearnTick, rs.firstWallTick, rs.firstTargetTick, rs.firstSiegeTick)
	fmt.Printf("event_totals: player_state=%d enemy_behavior=%d unhandled=%d walls=%d duplicate_walls=%d\n",
		rs.playerChanges, rs.behaviorChanges, rs.unhandledInputs, rs.wallsBuilt, rs.duplicateWalls)
	fmt.Printf("end_state: tick=%d player=%s enemies_at_button=%d\n", rs.ticks, rs.finalPlayerState, rs.enemiesAtButton)
	fmt.Printf("active_enemies: %s\n\n", joinSet(rs.affected))
}

func printAggregate(all []runStats) {
	totalBehavior := 0
	totalWalls := 0
	totalUnhandled := 0
	totalAtButton := 0
	var learnTicks, targetTicks []int
	for _, rs := range all {
		totalBehavior += rs.behaviorChanges
		totalWalls += rs.wallsBuilt
		totalUnhandled += rs.unhandledInputs
		totalAtButton += rs.enemiesAtButton
		if rs.firstLearnTick >= 0 {
			learnTicks = append(learnTicks, rs.firstLearnTick)
		}
		if rs.firstTargetTick >= 0 {
			targetTicks = append(targetTicks, rs.firstTargetTick)
		}
	}
	n := len(all)
	fmt.Printf("=== Aggregate (%d runs) ===\n", n)
	fmt.Printf("avg_enemy_behavior_changes=%.1f avg_walls=%.1f avg_unhandled=%.1f avg_enemies_at_button=%.1f\n",
		avg(totalBehavior, n), avg(totalWalls, n), avg(totalUnhandled, n), avg(totalAtButton, n))
	fmt.Printf("avg_first_learn=%s avg_first_target=%s\n", avgTickString(learnTicks), avgTickString(targetTicks))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinSet(s map[string]struct{}) string {
	if len(s) == 0 {
		return "none"
	}
	labels := make([]string, 0, len(s))
	for k := range s {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return strings.Join(labels, ",")
}
