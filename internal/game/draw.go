package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Button-Game/internal/battle"
)

var (
	colBackground = color.RGBA{R: 0, G: 0, B: 16, A: 255}
	colGrid       = color.RGBA{R: 40, G: 44, B: 70, A: 255}
	colFog        = color.RGBA{R: 0, G: 0, B: 0, A: 150}
	colWall       = color.RGBA{R: 200, G: 190, B: 170, A: 255}
	colWindow     = color.RGBA{R: 110, G: 180, B: 230, A: 220}
	colButton     = color.RGBA{R: 210, G: 40, B: 40, A: 255}
	colPlayer     = color.RGBA{R: 70, G: 110, B: 210, A: 255}
	colEnemy      = color.RGBA{R: 210, G: 70, B: 70, A: 255}
	colFacing     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colBarBack    = color.RGBA{R: 64, G: 64, B: 64, A: 255}
	colProgress   = color.RGBA{R: 240, G: 210, B: 60, A: 255}
	colHealth     = color.RGBA{R: 220, G: 30, B: 30, A: 255}
)

// plotColors tints each ability plot.
var plotColors = map[battle.Ability]color.RGBA{
	battle.MeleeAttack: {R: 170, G: 60, B: 40, A: 200},
	battle.Armor:       {R: 120, G: 120, B: 130, A: 200},
	battle.RangeAttack: {R: 200, G: 120, B: 40, A: 200},
	battle.Vision:      {R: 60, G: 170, B: 200, A: 200},
	battle.Build:       {R: 140, G: 100, B: 60, A: 200},
	battle.Repair:      {R: 90, G: 160, B: 90, A: 200},
	battle.ButtonPress: {R: 200, G: 60, B: 160, A: 200},
	battle.Heal:        {R: 60, G: 200, B: 110, A: 200},
}

// view projects world coordinates through a snapshot's camera.
type view struct {
	snap    *battle.Snapshot
	w, h    int
	visible map[battle.CellCoord]bool
}

func newView(snap *battle.Snapshot, w, h int) view {
	return view{snap: snap, w: w, h: h, visible: snap.VisibleSet()}
}

func (v view) pt(w battle.WorldCoord) (float32, float32) {
	p := battle.ToDisplay(w, v.snap.Camera.Pos, v.snap.Camera.Scale, v.w, v.h)
	return float32(p.X), float32(p.Y)
}

func (v view) scale() float32 { return float32(v.snap.Camera.Scale) }

// cellRect is the screen rectangle of a cell.
func (v view) cellRect(c battle.CellCoord) (x, y, size float32) {
	x, y = v.pt(c.Corners().TopLeft)
	return x, y, float32(battle.CellSize) * v.scale()
}

// cellRange is the inclusive block of cells the viewport can show.
func (v view) cellRange() (lo, hi battle.CellCoord) {
	cam := v.snap.Camera
	halfW := int(float64(v.w)/2/cam.Scale) + battle.CellSize
	halfH := int(float64(v.h)/2/cam.Scale) + battle.CellSize
	lo = battle.WorldToCell(battle.WorldCoord{X: cam.Pos.X - halfW, Y: cam.Pos.Y - halfH})
	hi = battle.WorldToCell(battle.WorldCoord{X: cam.Pos.X + halfW, Y: cam.Pos.Y + halfH})
	return lo, hi
}

// drawBattle renders the arena. Draw order: ground, plots, button, fog,
// edges, enemies, player.
func drawBattle(screen *ebiten.Image, snap *battle.Snapshot) {
	b := screen.Bounds()
	v := newView(snap, b.Dx(), b.Dy())
	screen.Fill(colBackground)

	lo, hi := v.cellRange()
	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			cx, cy, s := v.cellRect(battle.CellCoord{X: x, Y: y})
			vector.StrokeRect(screen, cx, cy, s, s, 1, colGrid, false)
		}
	}

	for _, p := range snap.Plots {
		cx, cy, s := v.cellRect(p.Cell)
		vector.FillRect(screen, cx+2, cy+2, s-4, s-4, plotColors[p.Ability], false)
	}
	drawButton(screen, v)

	for y := lo.Y; y <= hi.Y; y++ {
		for x := lo.X; x <= hi.X; x++ {
			c := battle.CellCoord{X: x, Y: y}
			if v.visible[c] {
				continue
			}
			cx, cy, s := v.cellRect(c)
			vector.FillRect(screen, cx, cy, s, s, colFog, false)
		}
	}

	for _, w := range snap.Windows {
		ax, ay := v.pt(w.Endpoints[0])
		bx, by := v.pt(w.Endpoints[1])
		vector.StrokeLine(screen, ax, ay, bx, by, 2, colWindow, false)
	}
	for _, w := range snap.Walls {
		ax, ay := v.pt(w.Endpoints[0])
		bx, by := v.pt(w.Endpoints[1])
		vector.StrokeLine(screen, ax, ay, bx, by, 4, colWall, false)
	}

	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		if !v.visible[e.Cell()] {
			continue
		}
		drawActor(screen, v, e.Pos, e.Snapped, colEnemy)
		x, y := v.pt(e.Pos)
		half := float32(battle.EntityWidth) * v.scale() / 2
		drawBar(screen, x-half, y-half-6, 2*half, 3, e.Health, e.MaxHealth, colHealth)
	}

	p := &snap.Player
	drawActor(screen, v, p.Pos, p.Snapped, colPlayer)
	if p.State.Timed() && p.State.Max > 0 {
		x, y := v.pt(p.Pos)
		half := float32(battle.EntityWidth) * v.scale() / 2
		drawBar(screen, x-half, y+half+3, 2*half, 3, p.State.Elapsed, p.State.Max, colProgress)
	}
}

func drawButton(screen *ebiten.Image, v view) {
	btn := v.snap.Button
	cx, cy, s := v.cellRect(btn.Cell)
	inset := s / 5
	vector.FillRect(screen, cx+inset, cy+inset, s-2*inset, s-2*inset, colButton, false)
	vector.StrokeRect(screen, cx+inset, cy+inset, s-2*inset, s-2*inset, 1, colFacing, false)
	if btn.State.Kind == battle.ButtonPressed && btn.State.Max > 0 {
		drawBar(screen, cx, cy+s+2, s, 3, btn.State.Elapsed, btn.State.Max, colProgress)
	}
}

// drawActor draws a collision square with a line toward its snapped facing.
func drawActor(screen *ebiten.Image, v view, pos battle.WorldCoord, facing battle.Direction, col color.RGBA) {
	x, y := v.pt(pos)
	half := float32(battle.EntityWidth) * v.scale() / 2
	vector.FillRect(screen, x-half, y-half, 2*half, 2*half, col, false)
	ux, uy := facing.Unit()
	vector.StrokeLine(screen, x, y, x+float32(ux)*half*1.4, y+float32(uy)*half*1.4, 2, colFacing, false)
}

// drawBar is a horizontal progress bar filled to cur/total.
func drawBar(screen *ebiten.Image, x, y, w, h float32, cur, total int, fill color.RGBA) {
	vector.FillRect(screen, x, y, w, h, colBarBack, false)
	if total <= 0 || cur <= 0 {
		return
	}
	frac := float32(cur) / float32(total)
	if frac > 1 {
		frac = 1
	}
	vector.FillRect(screen, x, y, w*frac, h, fill, false)
}
