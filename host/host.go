// Package host runs a ycanvas engine inside an Ebitengine window.
//
// A Host polls the mouse once per tick, turns button transitions into
// press, release, move, click and double-click events on the canvas, lets
// the engine run its coalesced repaint and shows the canvas pixels on
// screen. Scripted input (Inject*, TestRunner) goes through the same path
// as real input.
package host

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/draw"

	"github.com/phanxgames/ycanvas"
)

// ErrNotCanvas is returned by New when the engine does not paint onto a
// *ycanvas.Canvas.
var ErrNotCanvas = errors.New("host: engine surface is not a *ycanvas.Canvas")

// Default double-click thresholds.
const (
	DefaultDoubleClickTicks = 18 // 300ms at 60 TPS
	DefaultDoubleClickSlop  = 4.0
)

// Option configures a Host.
type Option func(*Host)

// WithInput replaces the Ebitengine mouse reader.
func WithInput(in Input) Option {
	return func(h *Host) { h.input = in }
}

// WithLogger routes host diagnostics to l instead of ycanvas.Logger().
func WithLogger(l *slog.Logger) Option {
	return func(h *Host) { h.log = l }
}

// WithScreenshotDir sets the directory screenshot steps write to.
func WithScreenshotDir(dir string) Option {
	return func(h *Host) { h.screenshotDir = dir }
}

// Host implements ebiten.Game for one engine and its canvas.
type Host struct {
	engine *ycanvas.Engine
	canvas *ycanvas.Canvas
	input  Input
	log    *slog.Logger

	// DoubleClickTicks is the longest gap, in ticks, between two clicks
	// that still form a double click.
	DoubleClickTicks int
	// DoubleClickSlop is the largest distance, in pixels, between two
	// clicks that still form a double click.
	DoubleClickSlop float64

	updateFunc func() error
	tick       int
	lastErr    error

	// Pointer state.
	hasPos        bool
	lastX, lastY  float64
	down          bool
	downButton    ycanvas.MouseButton
	offCanvas     bool
	lastClickTick int
	lastClickX    float64
	lastClickY    float64

	// Scripted input.
	injectQueue      []pointerSample
	testRunner       *TestRunner
	screenshotDir    string
	exitOnScriptDone bool

	// Presentation.
	screenW, screenH int
	clearColor       color.Color
	showFPS          bool
	frameBuf         *image.RGBA
	uploaded         int
	img              *ebiten.Image
}

// New creates a host for e. The engine must paint onto a *ycanvas.Canvas.
func New(e *ycanvas.Engine, opts ...Option) (*Host, error) {
	if e == nil {
		return nil, ycanvas.ErrNoSurface
	}
	canvas, ok := e.Surface().(*ycanvas.Canvas)
	if !ok {
		return nil, ErrNotCanvas
	}
	h := &Host{
		engine:           e,
		canvas:           canvas,
		input:            ebitenInput{},
		DoubleClickTicks: DefaultDoubleClickTicks,
		DoubleClickSlop:  DefaultDoubleClickSlop,
		screenshotDir:    "screenshots",
		clearColor:       color.RGBA{R: 0x23, G: 0x1e, B: 0x2d, A: 0xff},
		uploaded:         -1,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// Engine returns the hosted engine.
func (h *Host) Engine() *ycanvas.Engine { return h.engine }

// Canvas returns the hosted canvas.
func (h *Host) Canvas() *ycanvas.Canvas { return h.canvas }

// SetUpdateFunc sets a callback run once per tick before input is
// processed. A non-nil error stops the game loop.
func (h *Host) SetUpdateFunc(fn func() error) {
	h.updateFunc = fn
}

// LastError returns the most recent paint error reported by the engine.
// Paint errors are logged and do not stop the game loop.
func (h *Host) LastError() error { return h.lastErr }

// Ticks returns the number of Update calls so far.
func (h *Host) Ticks() int { return h.tick }

func (h *Host) logger() *slog.Logger {
	if h.log != nil {
		return h.log
	}
	return ycanvas.Logger()
}

// Update implements ebiten.Game.
func (h *Host) Update() error {
	h.tick++

	if h.testRunner != nil {
		h.testRunner.step(h)
		if h.exitOnScriptDone && h.testRunner.Done() {
			return ebiten.Termination
		}
	}
	if h.updateFunc != nil {
		if err := h.updateFunc(); err != nil {
			return err
		}
	}

	if !h.processInjectedInput() && h.listening() {
		x, y := h.input.CursorPosition()
		pressed, button := h.input.Button()
		h.processPointer(x, y, pressed, button, h.input.Modifiers())
	}

	if err := h.engine.Tick(); err != nil {
		h.lastErr = err
		h.logger().Error("host: repaint failed", slog.Int("tick", h.tick), slog.Any("err", err))
	}
	return nil
}

// listening reports whether the canvas has a listener for any kind.
func (h *Host) listening() bool {
	for _, k := range ycanvas.EventKinds {
		if h.canvas.Subscribed(k) {
			return true
		}
	}
	return false
}

// processPointer turns one pointer sample into canvas events. Events are
// only delivered while the pointer is over the canvas.
func (h *Host) processPointer(x, y float64, pressed bool, button ycanvas.MouseButton, mods ycanvas.KeyModifiers) {
	moved := !h.hasPos || x != h.lastX || y != h.lastY
	h.hasPos, h.lastX, h.lastY = true, x, y
	inside := h.inside(x, y)

	if moved && inside {
		h.emit(ycanvas.EventMove, x, y, h.heldButton(pressed, button), mods)
	}

	switch {
	case pressed && !h.down:
		h.down = true
		h.downButton = button
		h.offCanvas = !inside
		if inside {
			h.emit(ycanvas.EventPress, x, y, button, mods)
		}
	case pressed && h.down:
		if !inside {
			h.offCanvas = true
		}
	case !pressed && h.down:
		h.down = false
		if !inside {
			return
		}
		h.emit(ycanvas.EventRelease, x, y, h.downButton, mods)
		if !h.offCanvas {
			h.click(x, y, h.downButton, mods)
		}
	}
}

func (h *Host) heldButton(pressed bool, button ycanvas.MouseButton) ycanvas.MouseButton {
	if h.down {
		return h.downButton
	}
	if pressed {
		return button
	}
	return ycanvas.MouseButtonLeft
}

// click emits a click and, when it closely follows the previous one, a
// double click.
func (h *Host) click(x, y float64, button ycanvas.MouseButton, mods ycanvas.KeyModifiers) {
	h.emit(ycanvas.EventClick, x, y, button, mods)

	if h.lastClickTick > 0 &&
		h.tick-h.lastClickTick <= h.DoubleClickTicks &&
		math.Abs(x-h.lastClickX) <= h.DoubleClickSlop &&
		math.Abs(y-h.lastClickY) <= h.DoubleClickSlop {
		h.emit(ycanvas.EventDoubleClick, x, y, button, mods)
		h.lastClickTick = 0
		return
	}
	h.lastClickTick, h.lastClickX, h.lastClickY = h.tick, x, y
}

func (h *Host) emit(kind ycanvas.EventKind, x, y float64, button ycanvas.MouseButton, mods ycanvas.KeyModifiers) {
	h.canvas.Emit(ycanvas.PointerEvent{
		Kind:      kind,
		ClientX:   x,
		ClientY:   y,
		Button:    button,
		Modifiers: mods,
	})
}

func (h *Host) inside(x, y float64) bool {
	left, top := h.canvas.Offset()
	w, ht := h.canvas.Size()
	return x >= left && x < left+float64(w) && y >= top && y < top+float64(ht)
}

// frame returns the canvas pixels as RGBA and whether they changed since
// the previous call. Pixels are only copied after a repaint.
func (h *Host) frame() (*image.RGBA, bool) {
	n := h.engine.Repaints()
	if h.frameBuf != nil && n == h.uploaded {
		return h.frameBuf, false
	}
	src := h.canvas.Image()
	b := src.Bounds()
	if h.frameBuf == nil || h.frameBuf.Rect.Dx() != b.Dx() || h.frameBuf.Rect.Dy() != b.Dy() {
		h.frameBuf = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	}
	draw.Draw(h.frameBuf, h.frameBuf.Rect, src, b.Min, draw.Src)
	h.uploaded = n
	return h.frameBuf, true
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(h.clearColor)

	rgba, changed := h.frame()
	w, ht := rgba.Rect.Dx(), rgba.Rect.Dy()
	if h.img == nil || h.img.Bounds().Dx() != w || h.img.Bounds().Dy() != ht {
		if h.img != nil {
			h.img.Deallocate()
		}
		h.img = ebiten.NewImage(w, ht)
		changed = true
	}
	if changed {
		h.img.WritePixels(rgba.Pix)
	}

	left, top := h.canvas.Offset()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(left, top)
	screen.DrawImage(h.img, op)

	if h.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

// Layout implements ebiten.Game. The logical screen is the window size
// given to Run, or the canvas plus its offset when none was given.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.screenW > 0 && h.screenH > 0 {
		return h.screenW, h.screenH
	}
	return h.windowSize()
}

func (h *Host) windowSize() (int, int) {
	left, top := h.canvas.Offset()
	w, ht := h.canvas.Size()
	return w + int(math.Ceil(left)), ht + int(math.Ceil(top))
}
