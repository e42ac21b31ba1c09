package battle

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/Garsondee/Button-Game/internal/logger"
)

// BehaviorKind tags the variant held by an EnemyBehavior.
type BehaviorKind int

const (
	BehaviorIdle BehaviorKind = iota
	BehaviorWalkToButton
	BehaviorTargetPlayer
	BehaviorAttackWalls
)

func (k BehaviorKind) String() string {
	switch k {
	case BehaviorIdle:
		return "idle"
	case BehaviorWalkToButton:
		return "walk_to_button"
	case BehaviorTargetPlayer:
		return "target_player"
	case BehaviorAttackWalls:
		return "attack_walls"
	default:
		return "unknown"
	}
}

// EnemyBehavior is an enemy's behavior machine value. Every variant except
// Idle is time-boxed by Elapsed/Max and follows its own Path, which is
// consumed front to back.
type EnemyBehavior struct {
	Kind    BehaviorKind
	Elapsed int
	Max     int
	Path    []CellCoord
}

func IdleBehavior() EnemyBehavior { return EnemyBehavior{Kind: BehaviorIdle} }

func WalkToButton(elapsed, total int, path []CellCoord) EnemyBehavior {
	return EnemyBehavior{Kind: BehaviorWalkToButton, Elapsed: elapsed, Max: total, Path: path}
}

func TargetPlayer(elapsed, total int, path []CellCoord) EnemyBehavior {
	return EnemyBehavior{Kind: BehaviorTargetPlayer, Elapsed: elapsed, Max: total, Path: path}
}

func AttackWalls(elapsed, total int, path []CellCoord) EnemyBehavior {
	return EnemyBehavior{Kind: BehaviorAttackWalls, Elapsed: elapsed, Max: total, Path: path}
}

func (eb EnemyBehavior) String() string {
	if eb.Kind == BehaviorIdle {
		return eb.Kind.String()
	}
	return fmt.Sprintf("%s(%d/%d,%d left)", eb.Kind, eb.Elapsed, eb.Max, len(eb.Path))
}

// Enemy is an AI-controlled actor.
type Enemy struct {
	ID        int
	Pos       WorldCoord
	Snapped   Direction
	Health    int
	MaxHealth int
	Behavior  EnemyBehavior
}

// Label is the short actor name used in logs.
func (e *Enemy) Label() string { return fmt.Sprintf("E%d", e.ID) }

// Cell is the grid cell the enemy stands in.
func (e *Enemy) Cell() CellCoord { return WorldToCell(e.Pos) }

// stepEnemy runs one tick of an enemy's behavior machine.
func (b *BattleContext) stepEnemy(e *Enemy) error {
	if e.Behavior.Kind == BehaviorIdle {
		next, err := b.chooseBehavior(e)
		if err != nil {
			return err
		}
		b.setBehavior(e, next)
		return nil
	}

	eb := e.Behavior
	if eb.Elapsed >= eb.Max || len(eb.Path) == 0 {
		b.setBehavior(e, IdleBehavior())
		return nil
	}

	next := eb.Path[0]
	if e.Cell() == next {
		eb.Path = eb.Path[1:]
		eb.Elapsed++
		e.Behavior = eb
		b.Log.AddVerbose(b.Round, e.Label(), "enemy", "waypoint", next.String(), float64(len(eb.Path)))
		return nil
	}
	return b.moveEnemyToward(e, next.Center())
}

// chooseBehavior picks the next goal for an idle enemy: the player when near,
// else the button, else the nearest wall. It stays idle when nothing is
// reachable.
func (b *BattleContext) chooseBehavior(e *Enemy) (EnemyBehavior, error) {
	from := e.Cell()
	blocked := b.occupiedExcept(e)
	ticks := b.cfg.Enemy.BehaviorTicks

	if player := b.Player.Cell(); from.DistanceTo(player) <= b.cfg.Enemy.TargetRadius {
		if path, ok := PathTo(from, player, b.Walls, blocked, b.cfg.Pathing.MaxExpansions); ok {
			return TargetPlayer(0, ticks, path), nil
		}
	}
	if path, ok := PathTo(from, b.Button.Cell, b.Walls, blocked, b.cfg.Pathing.MaxExpansions); ok {
		return WalkToButton(0, ticks, path), nil
	}

	w, ok := nearestWall(b.Walls, e.Pos)
	if !ok {
		return IdleBehavior(), nil
	}
	target, err := wallApproach(w, e.Pos)
	if err != nil {
		return IdleBehavior(), err
	}
	if path, ok := PathTo(from, target, b.Walls, blocked, b.cfg.Pathing.MaxExpansions); ok {
		return AttackWalls(0, ticks, path), nil
	}
	return IdleBehavior(), nil
}

// moveEnemyToward steps the enemy straight at target in world space.
func (b *BattleContext) moveEnemyToward(e *Enemy, target WorldCoord) error {
	heading := math.Atan2(float64(target.Y-e.Pos.Y), float64(target.X-e.Pos.X))
	speed := b.cfg.Enemy.Speed
	e.Pos.X += int(speed * math.Cos(heading))
	e.Pos.Y += int(speed * math.Sin(heading))
	// World Y grows south, the facing convention grows north.
	d, err := SnapFacing(-heading)
	if err != nil {
		return err
	}
	e.Snapped = d
	return nil
}

func (b *BattleContext) setBehavior(e *Enemy, next EnemyBehavior) {
	prev := e.Behavior.Kind
	e.Behavior = next
	if prev == next.Kind {
		return
	}
	logger.Log.WithFields(logrus.Fields{
		"tick":  b.Round,
		"enemy": e.ID,
		"from":  prev.String(),
		"to":    next.Kind.String(),
	}).Debug("enemy behavior changed")
	b.Log.Add(b.Round, e.Label(), "enemy", "behavior", prev.String()+" → "+next.Kind.String(), float64(len(next.Path)))
}

// occupiedExcept returns the cells of every enemy other than self.
func (b *BattleContext) occupiedExcept(self *Enemy) []CellCoord {
	cells := make([]CellCoord, 0, len(b.Enemies))
	for _, o := range b.Enemies {
		if o == self {
			continue
		}
		cells = append(cells, o.Cell())
	}
	return cells
}

// nearestWall picks the wall whose endpoints are closest to pos in total.
func nearestWall(walls []Wall, pos WorldCoord) (Wall, bool) {
	best, bestDist := -1, math.Inf(1)
	for i, w := range walls {
		d := pos.DistanceTo(w.Endpoints[0]) + pos.DistanceTo(w.Endpoints[1])
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Wall{}, false
	}
	return walls[best], true
}

// wallApproach returns the cell on the near side of w, seen from pos.
func wallApproach(w Wall, pos WorldCoord) (CellCoord, error) {
	horizontal, err := w.Horizontal()
	if err != nil {
		return CellCoord{}, err
	}
	m := w.Midpoint()
	a, c := m, m
	if horizontal {
		a.Y -= halfCell
		c.Y += halfCell
	} else {
		a.X -= halfCell
		c.X += halfCell
	}
	if pos.DistanceTo(c) < pos.DistanceTo(a) {
		return WorldToCell(c), nil
	}
	return WorldToCell(a), nil
}
