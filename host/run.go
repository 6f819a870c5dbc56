package host

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Width and Height are the window size. Zero fits the canvas and its
	// offset.
	Width, Height int
	// ShowFPS overlays the current FPS and TPS.
	ShowFPS bool
	// ClearColor fills the window around the canvas. Nil keeps the default.
	ClearColor color.Color
	// ExitOnScriptDone ends the game loop once an attached TestRunner has
	// executed every step.
	ExitOnScriptDone bool
}

// Run opens a window and runs h until the window is closed or Update
// returns an error. It blocks.
func Run(h *Host, cfg RunConfig) error {
	h.configure(cfg)
	ebiten.SetWindowSize(h.screenW, h.screenH)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	return ebiten.RunGame(h)
}

func (h *Host) configure(cfg RunConfig) {
	w, ht := cfg.Width, cfg.Height
	if w <= 0 || ht <= 0 {
		w, ht = h.windowSize()
	}
	h.screenW, h.screenH = w, ht
	h.showFPS = cfg.ShowFPS
	if cfg.ClearColor != nil {
		h.clearColor = cfg.ClearColor
	}
	h.exitOnScriptDone = cfg.ExitOnScriptDone
}
