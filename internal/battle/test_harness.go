package battle

import "fmt"

// TestBattle is a headless battle harness for tests and the report tool. It
// builds a BattleContext from DefaultConfig with no enemies or walls and
// applies options on top.
type TestBattle struct {
	*BattleContext
}

// testOptionKind controls the pass in which an option is applied.
type testOptionKind int

const (
	testOptConfig testOptionKind = iota // edits the config before New
	testOptBattle                       // edits the built battle
)

// TestOption is a builder function applied during NewTestBattle.
type TestOption struct {
	kind testOptionKind
	cfg  func(*Config)
	fn   func(*TestBattle)
}

// WithPlayerAt spawns the player at world position (x,y).
func WithPlayerAt(x, y int) TestOption {
	return TestOption{kind: testOptConfig, cfg: func(c *Config) {
		c.Player.Spawn = WorldCoord{X: x, Y: y}
	}}
}

// WithPlayerInCell spawns the player on the center of cell (cx,cy).
func WithPlayerInCell(cx, cy int) TestOption {
	return WithPlayerAt(cx*CellSize, cy*CellSize)
}

// WithWall adds a wall between two corners.
func WithWall(ax, ay, bx, by int) TestOption {
	return TestOption{kind: testOptConfig, cfg: func(c *Config) {
		c.Walls = append(c.Walls, EdgeConfig{A: WorldCoord{X: ax, Y: ay}, B: WorldCoord{X: bx, Y: by}})
	}}
}

// WithWindow adds a window between two corners.
func WithWindow(ax, ay, bx, by int) TestOption {
	return TestOption{kind: testOptConfig, cfg: func(c *Config) {
		c.Windows = append(c.Windows, EdgeConfig{A: WorldCoord{X: ax, Y: ay}, B: WorldCoord{X: bx, Y: by}})
	}}
}

// WithEnemyAt adds an enemy at world position (x,y).
func WithEnemyAt(x, y int) TestOption {
	return TestOption{kind: testOptConfig, cfg: func(c *Config) {
		c.Enemies = append(c.Enemies, WorldCoord{X: x, Y: y})
	}}
}

// WithPlot adds an ability plot on cell (cx,cy).
func WithPlot(cx, cy int, a Ability) TestOption {
	return TestOption{kind: testOptConfig, cfg: func(c *Config) {
		c.Plots = append(c.Plots, PlotConfig{Cell: CellCoord{X: cx, Y: cy}, Ability: a})
	}}
}

// WithoutPlots removes the default ability plots.
func WithoutPlots() TestOption {
	return TestOption{kind: testOptConfig, cfg: func(c *Config) {
		c.Plots = nil
	}}
}

// WithButtonAt moves the button to cell (cx,cy).
func WithButtonAt(cx, cy int) TestOption {
	return TestOption{kind: testOptConfig, cfg: func(c *Config) {
		c.Button = CellCoord{X: cx, Y: cy}
	}}
}

// WithConfig applies an arbitrary config edit.
func WithConfig(edit func(*Config)) TestOption {
	return TestOption{kind: testOptConfig, cfg: edit}
}

// WithAbilities equips the player's two slots.
func WithAbilities(primary, secondary Ability) TestOption {
	return TestOption{kind: testOptBattle, fn: func(tb *TestBattle) {
		tb.Player.Primary = primary
		tb.Player.Secondary = secondary
	}}
}

// WithPlayerState forces the player's state machine value.
func WithPlayerState(s PlayerState) TestOption {
	return TestOption{kind: testOptBattle, fn: func(tb *TestBattle) {
		tb.Player.State = s
	}}
}

// WithVerbose records per-tick movement events.
func WithVerbose() TestOption {
	return TestOption{kind: testOptBattle, fn: func(tb *TestBattle) {
		tb.Log = NewSimLog(true)
	}}
}

// Live skips the Starting tick so the first Run tick is a live one.
func Live() TestOption {
	return TestOption{kind: testOptBattle, fn: func(tb *TestBattle) {
		tb.State = BattleLive
	}}
}

// NewTestBattle constructs a TestBattle from the given options in two passes:
//  1. config edits, then New
//  2. edits to the built battle
//
// It panics on an invalid config since callers are tests.
func NewTestBattle(opts ...TestOption) *TestBattle {
	cfg := DefaultConfig()
	cfg.Enemies = nil
	cfg.Walls = nil
	cfg.Windows = nil
	for _, o := range opts {
		if o.kind == testOptConfig {
			o.cfg(&cfg)
		}
	}
	b, err := New(cfg, NopSound{})
	if err != nil {
		panic(fmt.Sprintf("test battle: %v", err))
	}
	tb := &TestBattle{BattleContext: b}
	for _, o := range opts {
		if o.kind == testOptBattle {
			o.fn(tb)
		}
	}
	return tb
}

// Run ticks the battle n times with the same input, stopping at the first
// error.
func (tb *TestBattle) Run(n int, in Input) error {
	for i := 0; i < n; i++ {
		if err := tb.Tick(in); err != nil {
			return err
		}
	}
	return nil
}

// RunScript ticks once per input.
func (tb *TestBattle) RunScript(inputs []Input) error {
	for _, in := range inputs {
		if err := tb.Tick(in); err != nil {
			return err
		}
	}
	return nil
}

// RunUntil ticks with in until pred holds or maxTicks pass. It returns the
// number of ticks run, or -1 if pred never held.
func (tb *TestBattle) RunUntil(in Input, pred func(*TestBattle) bool, maxTicks int) (int, error) {
	for i := 1; i <= maxTicks; i++ {
		if err := tb.Tick(in); err != nil {
			return i, err
		}
		if pred(tb) {
			return i, nil
		}
	}
	return -1, nil
}
