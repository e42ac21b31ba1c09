package game

import (
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/Garsondee/Button-Game/internal/battle"
	"github.com/Garsondee/Button-Game/internal/logger"
)

const (
	ScreenWidth  = 1080
	ScreenHeight = 720
	// TickRate is the fixed update rate; one Update is one battle tick.
	TickRate = 30
)

// frameBudget is the time one Update may take before it is logged as a
// dropped frame.
const frameBudget = time.Second / TickRate

// reportEvents is how many log entries the F9 report includes.
const reportEvents = 60

type phase int

const (
	phaseStart phase = iota
	phaseBattle
)

// Game is the ebiten host: a start screen followed by a battle, then back to
// a fresh start screen when the battle finishes.
type Game struct {
	cfg    battle.Config
	sound  battle.SoundPlayer
	phase  phase
	start  *StartScreen
	battle *battle.BattleContext

	showFeed bool
	prevKeys map[ebiten.Key]bool

	// copyText writes to the system clipboard; tests swap it out.
	copyText func(string) error
	now      func() time.Time
}

// New creates a game that plays cfg's battle with real audio.
func New(cfg battle.Config) *Game {
	return newGame(cfg, NewSoundManager())
}

func newGame(cfg battle.Config, sound battle.SoundPlayer) *Game {
	return &Game{
		cfg:      cfg,
		sound:    sound,
		phase:    phaseStart,
		start:    NewStartScreen(),
		showFeed: true,
		prevKeys: map[ebiten.Key]bool{},
		copyText: clipboard.WriteAll,
		now:      time.Now,
	}
}

// Battle returns the running battle, or nil on the start screen.
func (g *Game) Battle() *battle.BattleContext { return g.battle }

func (g *Game) Update() error {
	began := g.now()
	err := g.step(g.pollFrame())
	if took := g.now().Sub(began); took > frameBudget {
		logger.Log.WithFields(logrus.Fields{
			"took":   took,
			"target": frameBudget,
		}).Warn("dropped framerate")
	}
	return err
}

// pollFrame samples ebiten input for one frame. Host keys are
// edge-triggered.
func (g *Game) pollFrame() frameInput {
	current := map[ebiten.Key]bool{}
	edge := func(k ebiten.Key) bool {
		current[k] = ebiten.IsKeyPressed(k)
		return current[k] && !g.prevKeys[k]
	}
	in := frameInput{
		controls:   pollControls(),
		start:      startJustPressed(),
		escape:     edge(ebiten.KeyEscape),
		copyReport: edge(ebiten.KeyF9),
		toggleFeed: edge(ebiten.KeyTab),
	}
	g.prevKeys = current
	return in
}

// step advances the current phase by one tick.
func (g *Game) step(in frameInput) error {
	switch g.phase {
	case phaseStart:
		if !g.start.Update(in.start) {
			return nil
		}
		b, err := battle.New(g.cfg, g.sound)
		if err != nil {
			return fmt.Errorf("starting battle: %w", err)
		}
		g.battle = b
		g.phase = phaseBattle
		logger.Log.Info("battle screen entered")
		return nil

	case phaseBattle:
		if in.toggleFeed {
			g.showFeed = !g.showFeed
		}
		if in.copyReport {
			g.copyReport()
		}
		if in.escape {
			g.battle.Finish()
		}
		if err := g.battle.Tick(in.battleInput()); err != nil {
			return fmt.Errorf("battle: %w", err)
		}
		if g.battle.State == battle.BattleFinished {
			logger.Log.WithField("tick", g.battle.Round).Info("battle finished, back to start screen")
			g.battle = nil
			g.start = NewStartScreen()
			g.phase = phaseStart
		}
	}
	return nil
}

func (g *Game) copyReport() {
	report := g.battle.DebugReport(reportEvents)
	if err := g.copyText(report); err != nil {
		logger.Log.WithError(err).Warn("copy debug report to clipboard")
		return
	}
	logger.Log.WithField("bytes", len(report)).Info("debug report copied to clipboard")
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.phase == phaseStart {
		drawStartScreen(screen, g.start)
		return
	}
	snap := g.battle.Snapshot()
	drawBattle(screen, &snap)
	drawHUD(screen, &snap)
	if g.showFeed {
		drawEventFeed(screen, g.battle.Log.Recent(feedEntries))
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return ScreenWidth, ScreenHeight
}
