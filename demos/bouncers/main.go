// bouncers spawns 1,000 circles that bounce around the canvas, each on its
// own layer. Every tick moves all of them and the engine coalesces the
// moves into one software repaint. Click a circle to remove it; only the
// topmost circle under the pointer is hit. A stress test for the ycanvas
// scheduler and dispatcher.
package main

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/phanxgames/ycanvas"
	"github.com/phanxgames/ycanvas/host"
)

const (
	screenW = 960
	screenH = 600
	count   = 1_000
)

type bouncer struct {
	arc    *ycanvas.Arc
	dx, dy float64
	alive  bool
}

func main() {
	canvas := ycanvas.NewCanvas(screenW, screenH)
	engine, err := ycanvas.New(canvas)
	if err != nil {
		log.Fatal(err)
	}

	bouncers := make([]bouncer, count)
	for i := range bouncers {
		r := 6 + rand.Float64()*14
		a := ycanvas.NewArc(ycanvas.ArcOptions{
			X:      r + rand.Float64()*(screenW-2*r),
			Y:      r + rand.Float64()*(screenH-2*r),
			Radius: r,
			ZIndex: i,
		})
		color := fmt.Sprintf("#%02x%02x%02x",
			128+rand.IntN(128), 128+rand.IntN(128), 128+rand.IntN(128))
		engine.Render(a, ycanvas.RenderOptions{Color: color})

		b := &bouncers[i]
		*b = bouncer{
			arc:   a,
			dx:    (rand.Float64() - 0.5) * 4,
			dy:    (rand.Float64() - 0.5) * 4,
			alive: true,
		}
		engine.AddEventListener(a, ycanvas.EventClick, func(ycanvas.PointerEvent) {
			b.alive = false
			engine.Clear(a)
		})
	}

	h, err := host.New(engine)
	if err != nil {
		log.Fatal(err)
	}
	h.SetUpdateFunc(func() error {
		for i := range bouncers {
			b := &bouncers[i]
			if !b.alive {
				continue
			}
			a := b.arc
			x, y := a.X+b.dx, a.Y+b.dy
			if x < a.Radius || x > screenW-a.Radius {
				b.dx = -b.dx
				x = a.X + b.dx
			}
			if y < a.Radius || y > screenH-a.Radius {
				b.dy = -b.dy
				y = a.Y + b.dy
			}
			a.SetPosition(x, y)
		}
		engine.RequestRepaint()
		return nil
	})

	if err := host.Run(h, host.RunConfig{
		Title:   "ycanvas — 1k Bouncers",
		Width:   screenW,
		Height:  screenH,
		ShowFPS: true,
	}); err != nil {
		log.Fatal(err)
	}
}
