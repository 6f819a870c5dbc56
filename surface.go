package ycanvas

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// Surface is the drawing surface an Engine paints onto and receives pointer
// input from.
type Surface interface {
	// Context returns the 2D paint context.
	Context() *gg.Context
	// Clear erases the entire visible surface.
	Clear()
	// InFill reports whether (x, y) lies inside region under the nonzero
	// fill rule.
	InFill(region *gg.Path, x, y float64) bool
	// InStroke reports whether (x, y) lies on the outline of region when
	// stroked with the given width.
	InStroke(region *gg.Path, width, x, y float64) bool
	// Offset returns the current on-screen position of the surface's
	// top-left corner. It is queried on every event, never cached.
	Offset() (left, top float64)
	// Size returns the surface dimensions in pixels.
	Size() (width, height int)
	// Subscribe attaches fn as the native listener for kind, replacing any
	// previous listener.
	Subscribe(kind EventKind, fn func(PointerEvent))
	// Unsubscribe detaches the native listener for kind.
	Unsubscribe(kind EventKind)
}

// Default surface dimensions used when NewCanvas receives a non-positive size.
const (
	DefaultCanvasWidth  = 500
	DefaultCanvasHeight = 500
)

// strokeFlattenTolerance is the largest distance between a curve and the
// polyline that stands in for it in stroke-region hit tests.
const strokeFlattenTolerance = 0.1

// Canvas is a Surface backed by a gg software context. Input is pushed in by
// the host through Emit; only kinds with a subscribed listener are delivered.
type Canvas struct {
	dc        *gg.Context
	width     int
	height    int
	left, top float64
	listeners [numEventKinds]func(PointerEvent)
}

var _ Surface = (*Canvas)(nil)

// NewCanvas creates a canvas of the given size. Non-positive dimensions fall
// back to DefaultCanvasWidth / DefaultCanvasHeight.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 {
		width = DefaultCanvasWidth
	}
	if height <= 0 {
		height = DefaultCanvasHeight
	}
	return &Canvas{
		dc:     gg.NewContext(width, height),
		width:  width,
		height: height,
	}
}

// Context implements Surface.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Clear implements Surface.
func (c *Canvas) Clear() { c.dc.Clear() }

// InFill implements Surface.
func (c *Canvas) InFill(region *gg.Path, x, y float64) bool {
	if region == nil {
		return false
	}
	return region.Contains(gg.Pt(x, y))
}

// InStroke implements Surface.
func (c *Canvas) InStroke(region *gg.Path, width, x, y float64) bool {
	if region == nil {
		return false
	}
	return strokeContains(region, width, gg.Pt(x, y))
}

// Offset implements Surface.
func (c *Canvas) Offset() (float64, float64) { return c.left, c.top }

// SetOffset moves the canvas within its host window. Subsequent events are
// hit-tested against the new position.
func (c *Canvas) SetOffset(left, top float64) {
	c.left, c.top = left, top
}

// Size implements Surface.
func (c *Canvas) Size() (int, int) { return c.width, c.height }

// Resize reallocates the backing pixels. The caller should follow up with
// Engine.Reload to repaint.
func (c *Canvas) Resize(width, height int) error {
	if err := c.dc.Resize(width, height); err != nil {
		return err
	}
	c.width, c.height = width, height
	return nil
}

// Subscribe implements Surface.
func (c *Canvas) Subscribe(kind EventKind, fn func(PointerEvent)) {
	if kind < numEventKinds {
		c.listeners[kind] = fn
	}
}

// Unsubscribe implements Surface.
func (c *Canvas) Unsubscribe(kind EventKind) {
	if kind < numEventKinds {
		c.listeners[kind] = nil
	}
}

// Subscribed reports whether a native listener is attached for kind. Hosts
// use it to skip synthesizing events nobody listens to.
func (c *Canvas) Subscribed(kind EventKind) bool {
	return kind < numEventKinds && c.listeners[kind] != nil
}

// Emit delivers ev to the listener subscribed for ev.Kind. It reports
// whether a listener received the event.
func (c *Canvas) Emit(ev PointerEvent) bool {
	if !c.Subscribed(ev.Kind) {
		return false
	}
	c.listeners[ev.Kind](ev)
	return true
}

// Image returns a snapshot of the canvas pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the canvas pixels to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

// --- Stroke hit testing ---

// strokeContains reports whether pt lies within width/2 of the outline of
// p. Each subpath is flattened by gg; open subpaths are not implicitly
// closed.
func strokeContains(p *gg.Path, width float64, pt gg.Point) bool {
	half := math.Max(width, 1) / 2
	limit := half * half

	hit := false
	sub := gg.NewPath()
	flush := func() {
		if !hit && sub.NumVerbs() > 0 {
			pts := sub.Flatten(strokeFlattenTolerance)
			for i := 1; i < len(pts) && !hit; i++ {
				hit = segmentDistSq(pts[i-1], pts[i], pt) <= limit
			}
		}
		sub.Clear()
	}

	p.Iterate(func(verb gg.PathVerb, c []float64) {
		switch verb {
		case gg.MoveTo:
			flush()
			sub.MoveTo(c[0], c[1])
		case gg.LineTo:
			sub.LineTo(c[0], c[1])
		case gg.QuadTo:
			sub.QuadraticTo(c[0], c[1], c[2], c[3])
		case gg.CubicTo:
			sub.CubicTo(c[0], c[1], c[2], c[3], c[4], c[5])
		case gg.Close:
			sub.Close()
		}
	})
	flush()
	return hit
}

// segmentDistSq returns the squared distance from p to segment ab.
func segmentDistSq(a, b, p gg.Point) float64 {
	ab := b.Sub(a)
	l2 := ab.LengthSquared()
	if l2 == 0 {
		return p.Sub(a).LengthSquared()
	}
	t := p.Sub(a).Dot(ab) / l2
	t = math.Max(0, math.Min(1, t))
	proj := a.Add(ab.Mul(t))
	return p.Sub(proj).LengthSquared()
}
