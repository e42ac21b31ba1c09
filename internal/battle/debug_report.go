package battle

import (
	"fmt"
	"strings"
)

// DebugReport renders a plain-text dump of the battle plus the last
// lastEvents log entries. The host copies it to the clipboard.
func (b *BattleContext) DebugReport(lastEvents int) string {
	if lastEvents <= 0 {
		lastEvents = 40
	}
	s := b.Snapshot()
	p := s.Player

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Button Game debug report ---\n")
	fmt.Fprintf(&sb, "state=%s tick=%d outcome=%s\n\n", s.State, s.Round, s.Outcome)

	sb.WriteString("== player ==\n")
	fmt.Fprintf(&sb, "pos=%s cell=%s facing=%.3f snapped=%s\n", p.Pos, p.Cell(), p.Facing, p.Snapped)
	fmt.Fprintf(&sb, "state=%s primary=%q secondary=%q vision=%d\n", p.State, p.Primary, p.Secondary, p.VisionRange())
	if plot, ok := b.PlotAt(p.Cell()); ok {
		fmt.Fprintf(&sb, "on plot: %s\n", plot.Ability.Name())
	}
	fmt.Fprintf(&sb, "visible cells=%d camera=%s x%.2f\n\n", len(s.Visible), s.Camera.Pos, s.Camera.Scale)

	fmt.Fprintf(&sb, "== enemies (%d) ==\n", len(s.Enemies))
	for _, e := range s.Enemies {
		fmt.Fprintf(&sb, "%-4s pos=%s cell=%s hp=%d/%d facing=%s behavior=%s",
			e.Label(), e.Pos, e.Cell(), e.Health, e.MaxHealth, e.Snapped, e.Behavior)
		if len(e.Behavior.Path) > 0 {
			fmt.Fprintf(&sb, " next=%s goal=%s", e.Behavior.Path[0], e.Behavior.Path[len(e.Behavior.Path)-1])
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "== arena ==\nbutton=%s %s\n", s.Button.Cell, s.Button.State)
	fmt.Fprintf(&sb, "walls=%d windows=%d plots=%d\n", len(s.Walls), len(s.Windows), len(s.Plots))
	for _, w := range s.Walls {
		fmt.Fprintf(&sb, "  wall %s-%s hp=%d/%d\n", w.Endpoints[0], w.Endpoints[1], w.Health, w.MaxHealth)
	}
	sb.WriteByte('\n')

	fmt.Fprintf(&sb, "== events (last %d of %d) ==\n", lastEvents, b.Log.Len())
	recent := b.Log.Recent(lastEvents)
	if len(recent) == 0 {
		sb.WriteString("(no events recorded yet)\n")
	}
	for _, e := range recent {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
