package battle

// Snapshot is a read-only copy of a battle for the renderer. Nothing in it
// aliases the live BattleContext.
type Snapshot struct {
	State   BattleState
	Round   int
	Player  Player
	Camera  Camera
	Button  Button
	Walls   []Wall
	Windows []Window
	Plots   []AbilityPlot
	Enemies []Enemy
	Visible []CellCoord
	Outcome Outcome
}

// Snapshot copies the current battle state and computes visibility.
func (b *BattleContext) Snapshot() Snapshot {
	s := Snapshot{
		State:   b.State,
		Round:   b.Round,
		Player:  b.Player,
		Camera:  b.Camera,
		Button:  b.Button,
		Walls:   append([]Wall(nil), b.Walls...),
		Windows: append([]Window(nil), b.Windows...),
		Plots:   append([]AbilityPlot(nil), b.Plots...),
		Enemies: make([]Enemy, len(b.Enemies)),
		Visible: b.VisibleCells(),
		Outcome: b.LastOutcome,
	}
	for i, e := range b.Enemies {
		s.Enemies[i] = *e
		s.Enemies[i].Behavior.Path = append([]CellCoord(nil), e.Behavior.Path...)
	}
	return s
}

// VisibleSet indexes the visible cells for lookup.
func (s *Snapshot) VisibleSet() map[CellCoord]bool {
	set := make(map[CellCoord]bool, len(s.Visible))
	for _, c := range s.Visible {
		set[c] = true
	}
	return set
}
