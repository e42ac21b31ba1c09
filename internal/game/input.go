package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Garsondee/Button-Game/internal/battle"
)

// stickDeadzone ignores analog stick drift.
const stickDeadzone = 0.25

// controls is one frame of raw player input. dx/dy are screen-space
// (+y is down) and may exceed 1 when keys and stick are combined.
type controls struct {
	dx, dy    float64
	primary   bool
	secondary bool
}

// frameInput is everything the host reads in one frame.
type frameInput struct {
	controls
	start      bool
	escape     bool
	copyReport bool
	toggleFeed bool
}

var (
	leftKeys      = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys     = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	upKeys        = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	downKeys      = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
	primaryKeys   = []ebiten.Key{ebiten.KeyJ, ebiten.KeyZ}
	secondaryKeys = []ebiten.Key{ebiten.KeyK, ebiten.KeyX}
)

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// pollControls reads the keyboard and every connected gamepad. Gamepads
// with a standard layout use the left stick and face buttons; others fall
// back to raw axes 0/1 and buttons 0/1.
func pollControls() controls {
	var c controls
	if anyPressed(leftKeys) {
		c.dx--
	}
	if anyPressed(rightKeys) {
		c.dx++
	}
	if anyPressed(upKeys) {
		c.dy--
	}
	if anyPressed(downKeys) {
		c.dy++
	}
	c.primary = anyPressed(primaryKeys)
	c.secondary = anyPressed(secondaryKeys)

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		var ax, ay float64
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			ax = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
			ay = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
			c.primary = c.primary || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
			c.secondary = c.secondary || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightRight)
		} else {
			ax = ebiten.GamepadAxisValue(id, 0)
			ay = ebiten.GamepadAxisValue(id, 1)
			c.primary = c.primary || ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton0)
			c.secondary = c.secondary || ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton1)
		}
		if math.Abs(ax) > stickDeadzone {
			c.dx += ax
		}
		if math.Abs(ay) > stickDeadzone {
			c.dy += ay
		}
	}
	return c
}

// startJustPressed is Enter, Space or a gamepad's start button.
func startJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if ebiten.IsStandardGamepadLayoutAvailable(id) &&
			inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}

// battleInput converts raw controls into the core's input. The intent angle
// uses the core's convention: 0 = east, π/2 = north.
func (c controls) battleInput() battle.Input {
	in := battle.Input{Primary: c.primary, Secondary: c.secondary}
	if math.Hypot(c.dx, c.dy) > 0 {
		in.HasIntent = true
		in.Angle = math.Atan2(-c.dy, c.dx)
	}
	return in
}
