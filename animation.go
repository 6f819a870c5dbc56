package ycanvas

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 2 values of a queued shape simultaneously.
// Create one via TweenPosition or TweenLayer and call Update(dt) each frame.
// Each update applies the values and requests a repaint. If the shape is no
// longer queued on the engine, the group stops immediately.
//
// There is no global animation manager; callers drive Update themselves.
type TweenGroup struct {
	tweens [2]*gween.Tween
	count  int
	apply  func(vals [2]float64)
	engine *Engine
	target Shape
	Done   bool
}

// Update advances all tweens by dt seconds, applies the values and requests
// a repaint.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if !g.engine.Queued(g.target) {
		g.Done = true
		return
	}

	var vals [2]float64
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		vals[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.apply(vals)
	g.Done = allDone
	g.engine.RequestRepaint()
}

// TweenPosition creates a TweenGroup that moves s to (toX, toY) over the
// given duration using the easing function.
func TweenPosition(e *Engine, s Movable, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	from := s.Position()
	g := &TweenGroup{count: 2, engine: e, target: s}
	g.tweens[0] = gween.New(float32(from.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(from.Y), float32(toY), duration, fn)
	g.apply = func(vals [2]float64) { s.SetPosition(vals[0], vals[1]) }
	return g
}

// TweenLayer creates a TweenGroup that walks the declared z-order of s to
// toZ over the given duration, rounding to the nearest layer.
func TweenLayer(e *Engine, s Shape, toZ int, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, engine: e, target: s}
	g.tweens[0] = gween.New(float32(s.Base().ZIndex), float32(toZ), duration, fn)
	g.apply = func(vals [2]float64) {
		z := int(vals[0] + 0.5)
		if vals[0] < 0 {
			z = int(vals[0] - 0.5)
		}
		if z != s.Base().ZIndex {
			e.ModifyLayer(s, z)
		}
	}
	return g
}
