package battle

import (
	"fmt"
	"math"
)

const (
	// EntityWidth is the side of the collision square for players and enemies.
	EntityWidth = 16
	// actionTicks is how long a freshly activated ability runs.
	actionTicks = 25
)

// PlayerStateKind tags the variant held by a PlayerState.
type PlayerStateKind int

const (
	StateStanding PlayerStateKind = iota
	StateRunning
	StateLearning
	StateMeleeAttacking
	StateRangeTargeting
	StateRangeAttacking
	StateButtonPressing
	StateBuildChoosing
	StateBuildPlacing
	StateRepairing
	StateHealing
)

func (k PlayerStateKind) String() string {
	switch k {
	case StateStanding:
		return "standing"
	case StateRunning:
		return "running"
	case StateLearning:
		return "learning"
	case StateMeleeAttacking:
		return "melee_attacking"
	case StateRangeTargeting:
		return "range_targeting"
	case StateRangeAttacking:
		return "range_attacking"
	case StateButtonPressing:
		return "button_pressing"
	case StateBuildChoosing:
		return "build_choosing"
	case StateBuildPlacing:
		return "build_placing"
	case StateRepairing:
		return "repairing"
	case StateHealing:
		return "healing"
	default:
		return "unknown"
	}
}

// PlayerState is the player's state machine value. Slot is meaningful only
// for Learning; Elapsed/Max only for the timed variants.
type PlayerState struct {
	Kind    PlayerStateKind
	Slot    ActionButton
	Elapsed int
	Max     int
}

func Standing() PlayerState { return PlayerState{Kind: StateStanding} }
func Running() PlayerState  { return PlayerState{Kind: StateRunning} }

func Learning(slot ActionButton, elapsed, total int) PlayerState {
	return PlayerState{Kind: StateLearning, Slot: slot, Elapsed: elapsed, Max: total}
}

func BuildPlacing(elapsed, total int) PlayerState {
	return PlayerState{Kind: StateBuildPlacing, Elapsed: elapsed, Max: total}
}

func timed(kind PlayerStateKind, elapsed, total int) PlayerState {
	return PlayerState{Kind: kind, Elapsed: elapsed, Max: total}
}

// Timed reports whether the state carries a progress counter.
func (s PlayerState) Timed() bool {
	switch s.Kind {
	case StateStanding, StateRunning, StateRangeTargeting, StateBuildChoosing:
		return false
	}
	return true
}

func (s PlayerState) String() string {
	switch {
	case s.Kind == StateLearning:
		return fmt.Sprintf("learning(%s,%d/%d)", s.Slot, s.Elapsed, s.Max)
	case s.Timed():
		return fmt.Sprintf("%s(%d/%d)", s.Kind, s.Elapsed, s.Max)
	default:
		return s.Kind.String()
	}
}

// Player is the locally controlled actor.
type Player struct {
	Pos             WorldCoord
	Facing          float64 // radians, 0 = east, π/2 = north; never normalised
	Snapped         Direction
	Primary         Ability
	Secondary       Ability
	BaseVisionRange int
	State           PlayerState
}

// Cell is the grid cell the player stands in.
func (p *Player) Cell() CellCoord { return WorldToCell(p.Pos) }

// Slot returns the ability equipped on the given button.
func (p *Player) Slot(b ActionButton) Ability {
	if b == Secondary {
		return p.Secondary
	}
	return p.Primary
}

func (p *Player) setSlot(b ActionButton, a Ability) {
	if b == Secondary {
		p.Secondary = a
		return
	}
	p.Primary = a
}

// VisionRange is the cone depth in cells. The Vision ability doubles it.
func (p *Player) VisionRange() int {
	if p.Primary == Vision || p.Secondary == Vision {
		return 2 * p.BaseVisionRange
	}
	return p.BaseVisionRange
}

// face points the player along angle and re-snaps the cardinal facing.
func (p *Player) face(angle float64) error {
	d, err := SnapFacing(angle)
	if err != nil {
		return err
	}
	p.Facing = angle
	p.Snapped = d
	return nil
}

// step moves the player speed units along its facing. Angles grow
// counter-clockwise on screen, so the Y component is inverted.
func (p *Player) step(speed float64) {
	p.Pos.X += int(math.Cos(p.Facing) * speed)
	p.Pos.Y -= int(math.Sin(p.Facing) * speed)
}

// buildEdge returns the edge of the player's cell it is facing.
func (p *Player) buildEdge() (WorldCoord, WorldCoord) {
	cs := p.Cell().Corners()
	switch p.Snapped {
	case North:
		return cs.TopLeft, cs.TopRight
	case South:
		return cs.BottomLeft, cs.BottomRight
	case West:
		return cs.TopLeft, cs.BottomLeft
	default:
		return cs.TopRight, cs.BottomRight
	}
}

// activation is the state an ability enters when triggered off-plot.
// Passive abilities and Blank leave the player standing.
func activation(a Ability) PlayerState {
	switch a {
	case MeleeAttack:
		return timed(StateMeleeAttacking, 0, actionTicks)
	case RangeAttack:
		return PlayerState{Kind: StateRangeTargeting}
	case Build:
		return BuildPlacing(0, actionTicks)
	case Repair:
		return timed(StateRepairing, 0, actionTicks)
	case ButtonPress:
		return timed(StateButtonPressing, 0, actionTicks)
	case Heal:
		return timed(StateHealing, 0, actionTicks)
	default:
		return Standing()
	}
}
