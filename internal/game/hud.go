package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Button-Game/internal/battle"
)

const (
	feedPanelWidth = 360
	feedEntries    = 40
	feedLineHeight = 14
	healthBarWidth = 300
	// playerMaxHealth is shown full until the core tracks player damage.
	playerMaxHealth = 100
)

var (
	hudFace     = text.NewGoXFace(basicfont.Face7x13)
	colText     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colTitle    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colDim      = color.RGBA{R: 170, G: 180, B: 170, A: 255}
	colPanel    = color.RGBA{R: 10, G: 12, B: 10, A: 235}
	colPanelBar = color.RGBA{R: 20, G: 30, B: 20, A: 255}
	colPanelRim = color.RGBA{R: 50, G: 70, B: 50, A: 255}
	colRecent   = color.RGBA{R: 30, G: 40, B: 30, A: 160}
)

// actorColors tints the feed's actor marker.
var actorColors = map[string]color.RGBA{
	"P":  colPlayer,
	"--": colDim,
}

// drawText draws s with its top-left at (x, y), scaled up from the 7x13 face.
func drawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, hudFace, op)
}

// drawHUD shows the health bar, both ability slots and a status line.
func drawHUD(screen *ebiten.Image, snap *battle.Snapshot) {
	drawBar(screen, 10, 10, healthBarWidth, 30, playerMaxHealth, playerMaxHealth, colHealth)

	p := snap.Player
	if l := p.Primary.String(); l != "" {
		drawText(screen, l, 10, 50, 2, colText)
	}
	if l := p.Secondary.String(); l != "" {
		drawText(screen, l, 10, 110, 2, colText)
	}

	h := screen.Bounds().Dy()
	status := fmt.Sprintf("T=%d  %s  %s  facing %s  [Tab] events  [F9] copy report  [Esc] quit",
		snap.Round, snap.State, p.State, p.Snapped)
	drawText(screen, status, 10, float64(h-20), 1, colDim)
}

// drawEventFeed renders recent battle events in a panel on the right edge,
// newest at the bottom.
func drawEventFeed(screen *ebiten.Image, entries []battle.SimLogEntry) {
	b := screen.Bounds()
	panelX := float32(b.Dx() - feedPanelWidth)
	panelH := float32(b.Dy())

	vector.FillRect(screen, panelX, 0, feedPanelWidth, panelH, colPanel, false)
	vector.StrokeLine(screen, panelX, 0, panelX, panelH, 1, colPanelRim, false)
	vector.FillRect(screen, panelX, 0, feedPanelWidth, 18, colPanelBar, false)
	drawText(screen, "BATTLE EVENTS", float64(panelX)+8, 3, 1, colText)

	maxVisible := (b.Dy() - 24) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	const highlight = 3

	y := 22
	for i, e := range entries {
		recent := i >= len(entries)-highlight
		if recent {
			vector.FillRect(screen, panelX+2, float32(y), feedPanelWidth-4, feedLineHeight, colRecent, false)
		}
		dot, ok := actorColors[e.Actor]
		if !ok {
			dot = colEnemy
		}
		vector.FillRect(screen, panelX+5, float32(y+4), 3, 6, dot, false)

		clr := colDim
		if recent {
			clr = colText
		}
		line := fmt.Sprintf("%4d [%s] %s %s", e.Tick, e.Actor, e.Key, e.Value)
		drawText(screen, line, float64(panelX)+12, float64(y), 1, clr)
		y += feedLineHeight
	}
}

// drawStartScreen draws the title card and the current fade.
func drawStartScreen(screen *ebiten.Image, s *StartScreen) {
	b := screen.Bounds()
	screen.Fill(colBackground)
	drawText(screen, "Button Game", 50, 100, 8, colTitle)
	drawText(screen, "Survival", 50, 250, 4, colTitle)
	drawText(screen, "Press Start", float64(b.Dx()/2-130), float64(b.Dy()/2+50), 3, colText)

	if clr, ok := s.Overlay(); ok {
		vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), clr, false)
	}
}
