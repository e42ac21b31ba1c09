package battle

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Garsondee/Button-Game/internal/logger"
)

// Outcome classifies what a state machine step did.
type Outcome int

const (
	// OutcomeApplied means a transition rule matched and was applied.
	OutcomeApplied Outcome = iota
	// OutcomeUnhandled means no rule covers the input; nothing changed.
	OutcomeUnhandled
	// OutcomePlaceholder means the state has no mechanics yet and fell back
	// to Standing.
	OutcomePlaceholder
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeUnhandled:
		return "unhandled"
	case OutcomePlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Input is one tick's sampled controls. Angle is meaningful only when
// HasIntent is set.
type Input struct {
	Angle     float64
	HasIntent bool
	Primary   bool
	Secondary bool
}

// NoInput is the zero input: no intent and no buttons.
var NoInput = Input{}

// Move returns an input with a movement intent and no buttons.
func Move(angle float64) Input { return Input{Angle: angle, HasIntent: true} }

// Press returns an input holding exactly one action button.
func Press(b ActionButton) Input {
	if b == Secondary {
		return Input{Secondary: true}
	}
	return Input{Primary: true}
}

// single reports the one held button, if exactly one is held.
func (in Input) single() (ActionButton, bool) {
	switch {
	case in.Primary && !in.Secondary:
		return Primary, true
	case in.Secondary && !in.Primary:
		return Secondary, true
	}
	return Primary, false
}

func (in Input) noButtons() bool { return !in.Primary && !in.Secondary }

func (in Input) String() string {
	intent := "none"
	if in.HasIntent {
		intent = fmt.Sprintf("%.2f", in.Angle)
	}
	return fmt.Sprintf("intent=%s primary=%t secondary=%t", intent, in.Primary, in.Secondary)
}

// stepPlayer advances the player state machine by one tick.
func (b *BattleContext) stepPlayer(in Input) (Outcome, error) {
	p := &b.Player
	s := p.State
	btn, single := in.single()

	switch s.Kind {
	case StateStanding:
		switch {
		case in.noButtons() && !in.HasIntent:
			return OutcomeApplied, nil
		case in.noButtons():
			if err := p.face(in.Angle); err != nil {
				return OutcomeApplied, err
			}
			p.step(b.cfg.Player.StartSpeed)
			b.setPlayerState(Running())
			return OutcomeApplied, nil
		case single:
			b.pressButton(btn)
			return OutcomeApplied, nil
		}

	case StateRunning:
		switch {
		case in.noButtons() && in.HasIntent:
			if err := p.face(in.Angle); err != nil {
				return OutcomeApplied, err
			}
			p.step(b.cfg.Player.RunSpeed)
			return OutcomeApplied, nil
		case single:
			b.pressButton(btn)
			return OutcomeApplied, nil
		case !in.HasIntent:
			b.setPlayerState(Standing())
			return OutcomeApplied, nil
		}

	case StateLearning:
		switch {
		case in.noButtons():
			b.setPlayerState(Standing())
			return OutcomeApplied, nil
		case single && btn == s.Slot:
			b.learn(s)
			return OutcomeApplied, nil
		}

	case StateBuildPlacing:
		switch {
		case in.noButtons() && !in.HasIntent:
			b.setPlayerState(Standing())
			return OutcomeApplied, nil
		case in.noButtons():
			if err := p.face(in.Angle); err != nil {
				return OutcomeApplied, err
			}
			b.setPlayerState(Running())
			return OutcomeApplied, nil
		case single && s.Elapsed < s.Max:
			if in.HasIntent {
				if err := p.face(in.Angle); err != nil {
					return OutcomeApplied, err
				}
			}
			if p.Slot(btn) == Build {
				b.setPlayerState(BuildPlacing(s.Elapsed+1, s.Max))
			} else {
				b.setPlayerState(Standing())
			}
			return OutcomeApplied, nil
		case single:
			if p.Slot(btn) == Build {
				if err := b.placeWall(); err != nil {
					return OutcomeApplied, err
				}
			}
			b.setPlayerState(Standing())
			return OutcomeApplied, nil
		}

	case StateMeleeAttacking, StateRangeTargeting, StateRangeAttacking,
		StateButtonPressing, StateRepairing, StateHealing, StateBuildChoosing:
		b.setPlayerState(Standing())
		return OutcomePlaceholder, nil
	}

	logger.Log.WithFields(logrus.Fields{
		"tick":  b.Round,
		"state": s.String(),
		"input": in.String(),
	}).Debug("unhandled player input")
	b.Log.Add(b.Round, playerLabel, "player", "unhandled", s.String()+" "+in.String(), 0)
	return OutcomeUnhandled, nil
}

// pressButton handles a single button pressed from Standing or Running:
// learn when on a plot, otherwise trigger the slot's ability.
func (b *BattleContext) pressButton(btn ActionButton) {
	if _, ok := b.PlotAt(b.Player.Cell()); ok {
		b.setPlayerState(Learning(btn, 0, b.cfg.Player.LearnTicks))
		return
	}
	b.setPlayerState(activation(b.Player.Slot(btn)))
}

// learn advances a Learning state held on its matching button. The ability
// is committed in the tick the counter reaches its maximum.
func (b *BattleContext) learn(s PlayerState) {
	p := &b.Player
	plot, onPlot := b.PlotAt(p.Cell())
	if s.Elapsed < s.Max {
		if !onPlot {
			b.setPlayerState(Standing())
			return
		}
		s.Elapsed++
		if s.Elapsed < s.Max {
			b.setPlayerState(s)
			return
		}
	}
	if onPlot {
		p.setSlot(s.Slot, plot.Ability)
		logger.Log.WithFields(logrus.Fields{
			"tick":    b.Round,
			"slot":    s.Slot.String(),
			"ability": plot.Ability.Name(),
		}).Info("ability learned")
		b.Log.Add(b.Round, playerLabel, "player", "learned", s.Slot.String()+"="+plot.Ability.Name(), 0)
	}
	b.setPlayerState(Standing())
}

// placeWall builds a wall on the cell edge the player faces unless one is
// already there.
func (b *BattleContext) placeWall() error {
	a, c := b.Player.buildEdge()
	if _, exists := findWall(b.Walls, a, c); exists {
		b.Log.Add(b.Round, playerLabel, "build", "duplicate", a.String()+"-"+c.String(), 0)
		return nil
	}
	w, err := NewWall(a, c)
	if err != nil {
		return err
	}
	b.Walls = append(b.Walls, w)
	logger.Log.WithFields(logrus.Fields{
		"tick": b.Round,
		"from": a.String(),
		"to":   c.String(),
	}).Info("wall placed")
	b.Log.Add(b.Round, playerLabel, "build", "wall", a.String()+"-"+c.String(), float64(len(b.Walls)))
	return nil
}

func (b *BattleContext) setPlayerState(next PlayerState) {
	prev := b.Player.State
	b.Player.State = next
	if prev.Kind != next.Kind {
		b.Log.Add(b.Round, playerLabel, "player", "state", prev.Kind.String()+" → "+next.Kind.String(), 0)
	}
}
