package ycanvas

import (
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for NewImageFromReader
	_ "image/png"
	"io"

	"github.com/gogpu/gg"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// DefaultColor is used when RenderOptions.Color is empty.
const DefaultColor = "#000000"

// Movable is a shape with a position that helpers such as Draggable and
// TweenPosition can drive.
type Movable interface {
	Shape
	Position() Vec2
	SetPosition(x, y float64)
}

// Translate moves m by (dx, dy). It does not request a repaint.
func Translate(m Movable, dx, dy float64) {
	p := m.Position()
	m.SetPosition(p.X+dx, p.Y+dy)
}

// paintPath fills or strokes p and records the mode on b so hit-testing
// follows what was last painted.
func paintPath(e *Engine, b *ShapeBase, p *gg.Path, opts RenderOptions) error {
	dc := e.Surface().Context()
	color := opts.Color
	if color == "" {
		color = DefaultColor
	}
	b.RenderMode = opts.Mode

	dc.ClearPath()
	dc.AppendPath(p)
	dc.SetHexColor(color)
	if opts.Mode == PaintStroke {
		dc.SetLineWidth(b.LineWidth)
		return dc.Stroke()
	}
	return dc.Fill()
}

// --- Rect ---

// RectOptions describes a rectangle.
type RectOptions struct {
	X, Y, W, H float64
	ZIndex     int
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	ShapeBase
	X, Y, W, H float64
	path       *gg.Path
}

// NewRect creates a rectangle.
func NewRect(opts RectOptions) *Rect {
	r := &Rect{ShapeBase: NewShapeBase(opts.ZIndex)}
	r.apply(opts)
	return r
}

func (r *Rect) apply(opts RectOptions) {
	r.X, r.Y, r.W, r.H = opts.X, opts.Y, opts.W, opts.H
	r.ZIndex = opts.ZIndex
	r.rebuild()
}

func (r *Rect) rebuild() {
	p := gg.NewPath()
	p.Rectangle(r.X, r.Y, r.W, r.H)
	r.path = p
}

// SetOptions replaces the rectangle's geometry and z-order and requests a
// repaint on e. e may be nil when the rectangle is not rendered yet.
func (r *Rect) SetOptions(e *Engine, opts RectOptions) {
	r.apply(opts)
	if e != nil {
		e.RequestRepaint()
	}
}

// Center returns the midpoint of the rectangle.
func (r *Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Position implements Movable.
func (r *Rect) Position() Vec2 { return Vec2{X: r.X, Y: r.Y} }

// SetPosition implements Movable.
func (r *Rect) SetPosition(x, y float64) {
	r.X, r.Y = x, y
	r.rebuild()
}

// HitRegion implements Shape.
func (r *Rect) HitRegion() *gg.Path { return r.path }

// Render implements Shape.
func (r *Rect) Render(e *Engine, opts RenderOptions) error {
	if err := paintPath(e, &r.ShapeBase, r.path, opts); err != nil {
		return err
	}
	opts.done()
	return nil
}

// --- Arc ---

// ArcOptions describes a full circle centered at (X, Y).
type ArcOptions struct {
	X, Y, Radius float64
	ZIndex       int
}

// Arc is a circle.
type Arc struct {
	ShapeBase
	X, Y, Radius float64
	path         *gg.Path
}

// NewArc creates a circle.
func NewArc(opts ArcOptions) *Arc {
	a := &Arc{
		ShapeBase: NewShapeBase(opts.ZIndex),
		X:         opts.X,
		Y:         opts.Y,
		Radius:    opts.Radius,
	}
	a.rebuild()
	return a
}

func (a *Arc) rebuild() {
	p := gg.NewPath()
	p.Circle(a.X, a.Y, a.Radius)
	a.path = p
}

// Bounds returns the top, right, bottom and left extreme points of the circle.
func (a *Arc) Bounds() (top, right, bottom, left Vec2) {
	return Vec2{a.X, a.Y - a.Radius}, Vec2{a.X + a.Radius, a.Y},
		Vec2{a.X, a.Y + a.Radius}, Vec2{a.X - a.Radius, a.Y}
}

// Position implements Movable. The position of a circle is its center.
func (a *Arc) Position() Vec2 { return Vec2{X: a.X, Y: a.Y} }

// SetPosition implements Movable.
func (a *Arc) SetPosition(x, y float64) {
	a.X, a.Y = x, y
	a.rebuild()
}

// HitRegion implements Shape.
func (a *Arc) HitRegion() *gg.Path { return a.path }

// Render implements Shape.
func (a *Arc) Render(e *Engine, opts RenderOptions) error {
	if err := paintPath(e, &a.ShapeBase, a.path, opts); err != nil {
		return err
	}
	opts.done()
	return nil
}

// --- Line ---

// LineOptions describes the start of a polyline.
type LineOptions struct {
	X, Y      float64
	LineWidth float64
	ZIndex    int
}

// Line is a polyline grown with Move.
type Line struct {
	ShapeBase
	Start  Vec2
	Points []Vec2 // vertices after Start, in order
	path   *gg.Path
	closed *gg.Path
}

// NewLine creates a polyline starting at (X, Y).
func NewLine(opts LineOptions) *Line {
	l := &Line{
		ShapeBase: NewShapeBase(opts.ZIndex),
		Start:     Vec2{X: opts.X, Y: opts.Y},
	}
	if opts.LineWidth > 0 {
		l.LineWidth = opts.LineWidth
	}
	l.rebuild()
	return l
}

// End returns the last vertex.
func (l *Line) End() Vec2 {
	if len(l.Points) == 0 {
		return l.Start
	}
	return l.Points[len(l.Points)-1]
}

// Move appends a vertex offset by (dx, dy) from the current end and returns
// the line for chaining.
func (l *Line) Move(dx, dy float64) *Line {
	end := l.End()
	l.Points = append(l.Points, Vec2{X: end.X + dx, Y: end.Y + dy})
	l.rebuild()
	return l
}

func (l *Line) rebuild() {
	p := gg.NewPath()
	p.MoveTo(l.Start.X, l.Start.Y)
	for _, pt := range l.Points {
		p.LineTo(pt.X, pt.Y)
	}
	l.path = p
	l.closed = p.Clone()
	l.closed.Close()
}

// Position implements Movable. The position of a line is its start.
func (l *Line) Position() Vec2 { return l.Start }

// SetPosition implements Movable by translating every vertex.
func (l *Line) SetPosition(x, y float64) {
	dx, dy := x-l.Start.X, y-l.Start.Y
	l.Start = Vec2{X: x, Y: y}
	for i := range l.Points {
		l.Points[i].X += dx
		l.Points[i].Y += dy
	}
	l.rebuild()
}

// HitRegion implements Shape. A filled line is hit-tested as the polygon
// its fill covers.
func (l *Line) HitRegion() *gg.Path {
	if l.RenderMode == PaintFill {
		return l.closed
	}
	return l.path
}

// Render implements Shape.
func (l *Line) Render(e *Engine, opts RenderOptions) error {
	if err := paintPath(e, &l.ShapeBase, l.path, opts); err != nil {
		return err
	}
	opts.done()
	return nil
}

// --- Image ---

// ImageOptions describes where an image is drawn. Zero W or H uses the
// image's own size.
type ImageOptions struct {
	X, Y, W, H float64
	Src        string
	ZIndex     int
}

// Image draws a bitmap scaled into its rectangle.
type Image struct {
	ShapeBase
	X, Y, W, H float64
	buf        *gg.ImageBuf
	path       *gg.Path
}

// NewImage loads opts.Src from disk (PNG, JPEG or WebP).
func NewImage(opts ImageOptions) (*Image, error) {
	buf, err := gg.LoadImage(opts.Src)
	if err != nil {
		return nil, fmt.Errorf("load image %s: %w", opts.Src, err)
	}
	return newImage(buf, opts), nil
}

// NewImageFromReader decodes an image (PNG, JPEG, WebP or BMP) from r.
func NewImageFromReader(r io.Reader, opts ImageOptions) (*Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return newImage(gg.ImageBufFromImage(img), opts), nil
}

// NewImageFromImage wraps an already decoded image.
func NewImageFromImage(img image.Image, opts ImageOptions) *Image {
	return newImage(gg.ImageBufFromImage(img), opts)
}

func newImage(buf *gg.ImageBuf, opts ImageOptions) *Image {
	im := &Image{
		ShapeBase: NewShapeBase(opts.ZIndex),
		X:         opts.X,
		Y:         opts.Y,
		W:         opts.W,
		H:         opts.H,
		buf:       buf,
	}
	if im.W == 0 {
		im.W = float64(buf.Width())
	}
	if im.H == 0 {
		im.H = float64(buf.Height())
	}
	im.rebuild()
	return im
}

func (im *Image) rebuild() {
	p := gg.NewPath()
	p.Rectangle(im.X, im.Y, im.W, im.H)
	im.path = p
}

// Position implements Movable.
func (im *Image) Position() Vec2 { return Vec2{X: im.X, Y: im.Y} }

// SetPosition implements Movable.
func (im *Image) SetPosition(x, y float64) {
	im.X, im.Y = x, y
	im.rebuild()
}

// HitRegion implements Shape. Images are always hit-tested as filled
// rectangles.
func (im *Image) HitRegion() *gg.Path { return im.path }

// Render implements Shape. Paint options other than Done are ignored.
func (im *Image) Render(e *Engine, opts RenderOptions) error {
	im.RenderMode = PaintFill
	e.Surface().Context().DrawImageEx(im.buf, gg.DrawImageOptions{
		X:         im.X,
		Y:         im.Y,
		DstWidth:  im.W,
		DstHeight: im.H,
		Opacity:   1,
	})
	opts.done()
	return nil
}
