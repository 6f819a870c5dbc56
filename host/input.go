package host

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/ycanvas"
)

// Input is the pointer state a Host polls once per tick.
type Input interface {
	// CursorPosition returns the cursor in window coordinates.
	CursorPosition() (x, y float64)
	// Button reports whether a mouse button is held and which one.
	Button() (pressed bool, button ycanvas.MouseButton)
	// Modifiers returns the keyboard modifiers currently held.
	Modifiers() ycanvas.KeyModifiers
}

// ebitenInput reads the mouse and keyboard through Ebitengine.
type ebitenInput struct{}

func (ebitenInput) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

// Button prefers left over right over middle when several are held.
func (ebitenInput) Button() (bool, ycanvas.MouseButton) {
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		return true, ycanvas.MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		return true, ycanvas.MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		return true, ycanvas.MouseButtonMiddle
	}
	return false, ycanvas.MouseButtonLeft
}

func (ebitenInput) Modifiers() ycanvas.KeyModifiers {
	var mods ycanvas.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ycanvas.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ycanvas.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ycanvas.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ycanvas.ModMeta
	}
	return mods
}
