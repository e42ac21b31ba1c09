package battle

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Garsondee/Button-Game/internal/logger"
)

const playerLabel = "P"

// BattleState is the one-way lifecycle of a battle.
type BattleState int

const (
	BattleStarting BattleState = iota
	BattleLive
	BattleFinished
)

func (s BattleState) String() string {
	switch s {
	case BattleStarting:
		return "starting"
	case BattleLive:
		return "live"
	case BattleFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// AbilityPlot is a fixed cell that teaches an ability.
type AbilityPlot struct {
	Cell    CellCoord
	Ability Ability
}

// SoundPlayer is the audio collaborator. Calls are fire-and-forget; the
// implementation reports its own failures.
type SoundPlayer interface {
	RegisterFile(name, path string)
	PlayRegisteredLooping(channel, name string, volume float64)
}

// NopSound discards every call. Headless runs and tests use it.
type NopSound struct{}

func (NopSound) RegisterFile(string, string)                   {}
func (NopSound) PlayRegisteredLooping(string, string, float64) {}

// BattleContext owns every entity of one battle and advances them a tick at
// a time. It is not safe for concurrent use.
type BattleContext struct {
	Player  Player
	Walls   []Wall
	Windows []Window
	Enemies []*Enemy
	Plots   []AbilityPlot
	Button  Button
	Camera  Camera
	State   BattleState
	Round   int // ticks since creation
	Log     *SimLog

	// LastOutcome is what the player state machine did on the latest tick.
	LastOutcome Outcome

	cfg   Config
	sound SoundPlayer
}

// New builds a fresh battle in the Starting state from cfg. A nil sound
// collaborator is replaced with NopSound.
func New(cfg Config, sound SoundPlayer) (*BattleContext, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new battle: %w", err)
	}
	walls, _ := cfg.walls()
	windows, _ := cfg.windows()
	if sound == nil {
		sound = NopSound{}
	}

	b := &BattleContext{
		Player: Player{
			Pos:             cfg.Player.Spawn,
			Snapped:         East,
			BaseVisionRange: cfg.Player.VisionRange,
			State:           Standing(),
		},
		Walls:   walls,
		Windows: windows,
		Button:  NewButton(cfg.Button),
		Camera:  Camera{Scale: cfg.Camera.Scale},
		State:   BattleStarting,
		Log:     NewSimLog(false),
		cfg:     cfg,
		sound:   sound,
	}
	for _, p := range cfg.Plots {
		b.Plots = append(b.Plots, AbilityPlot{Cell: p.Cell, Ability: p.Ability})
	}
	for i, pos := range cfg.Enemies {
		b.Enemies = append(b.Enemies, &Enemy{
			ID:        i,
			Pos:       pos,
			Snapped:   South,
			Health:    cfg.Enemy.Health,
			MaxHealth: cfg.Enemy.Health,
			Behavior:  IdleBehavior(),
		})
	}
	return b, nil
}

// Config returns the configuration the battle was built from.
func (b *BattleContext) Config() Config { return b.cfg }

// Tick advances the battle by one step of input. Starting goes live and
// starts the music; Live runs collisions, the player machine and every
// enemy in that order; Finished ignores input. A returned error is a broken
// invariant and the battle should not be ticked again.
func (b *BattleContext) Tick(in Input) error {
	switch b.State {
	case BattleStarting:
		b.Round++
		b.State = BattleLive
		snd := b.cfg.Sound
		b.sound.RegisterFile(snd.Name, snd.File)
		b.sound.PlayRegisteredLooping(snd.Channel, snd.Name, snd.Volume)
		logger.Log.WithFields(logrus.Fields{
			"enemies": len(b.Enemies),
			"plots":   len(b.Plots),
			"walls":   len(b.Walls),
		}).Info("battle live")
		b.Log.Add(b.Round, "--", "battle", "state", "starting → live", 0)
		return nil

	case BattleLive:
		b.Round++
		b.Camera.Follow(b.Player.Pos, b.cfg.Camera.Follow)
		b.Button.Update()
		b.resolveCollisions()

		outcome, err := b.stepPlayer(in)
		b.LastOutcome = outcome
		if err != nil {
			return fmt.Errorf("tick %d: player: %w", b.Round, err)
		}
		for _, e := range b.Enemies {
			if err := b.stepEnemy(e); err != nil {
				return fmt.Errorf("tick %d: %s: %w", b.Round, e.Label(), err)
			}
		}
		return nil
	}
	return nil
}

// Finish ends a live battle. It has no effect in any other state.
func (b *BattleContext) Finish() {
	if b.State != BattleLive {
		return
	}
	b.State = BattleFinished
	logger.Log.WithField("tick", b.Round).Info("battle finished")
	b.Log.Add(b.Round, "--", "battle", "state", "live → finished", 0)
}

// PlotAt returns the ability plot on cell, if any.
func (b *BattleContext) PlotAt(cell CellCoord) (AbilityPlot, bool) {
	for _, p := range b.Plots {
		if p.Cell == cell {
			return p, true
		}
	}
	return AbilityPlot{}, false
}
