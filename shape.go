package ycanvas

import "github.com/gogpu/gg"

// ShapeID identifies a shape for its whole lifetime. IDs are never reused
// within a process; the zero value is not a valid ID.
type ShapeID uint64

// shapeIDCounter is a plain counter; ycanvas is single-threaded.
var shapeIDCounter ShapeID

func nextShapeID() ShapeID {
	shapeIDCounter++
	return shapeIDCounter
}

// RenderOptions carries the per-call paint options of a render entry.
type RenderOptions struct {
	// Color is a hex color ("#rrggbb", "#rgb", "#rrggbbaa"). Empty means
	// the shape's default.
	Color string
	// Mode selects fill or stroke painting.
	Mode PaintMode
	// Done is invoked by the shape's paint routine once painting completes.
	// The scheduler never waits for it.
	Done func()
}

func (o RenderOptions) done() {
	if o.Done != nil {
		o.Done()
	}
}

// Shape is the contract between the engine and a drawable object.
//
// Concrete shapes embed ShapeBase, which supplies Base and a no-op
// BeforeRender.
type Shape interface {
	// Base returns the engine-facing state embedded in the shape.
	Base() *ShapeBase
	// HitRegion returns the path tested by the dispatcher.
	HitRegion() *gg.Path
	// BeforeRender runs right before Render, after the paint-order stamp
	// has been assigned.
	BeforeRender(e *Engine, opts RenderOptions)
	// Render paints the shape onto e.Surface().Context().
	Render(e *Engine, opts RenderOptions) error
}

// ShapeBase holds identity, layering and event bookkeeping shared by every
// shape. Create it with NewShapeBase; the zero value has no identity.
type ShapeBase struct {
	id ShapeID

	// ZIndex is the declared z-order. Shapes with lower values paint first.
	// Change it through Engine.ModifyLayer so a repaint is requested.
	ZIndex int

	// RenderMode selects the hit-test predicate (fill or stroke).
	RenderMode PaintMode

	// LineWidth is the stroke width used for stroke painting and
	// stroke-region hit tests.
	LineWidth float64

	// EntityID is forwarded to the EntityStore on resolved dispatches.
	// Zero means "no entity".
	EntityID uint32

	stamp  uint64
	events map[EventKind][]HandlerID
}

// NewShapeBase allocates a fresh identity with the given declared z-order.
func NewShapeBase(z int) ShapeBase {
	return ShapeBase{
		id:        nextShapeID(),
		ZIndex:    z,
		LineWidth: 1,
	}
}

// Base implements Shape.
func (b *ShapeBase) Base() *ShapeBase { return b }

// BeforeRender implements Shape as a no-op.
func (b *ShapeBase) BeforeRender(*Engine, RenderOptions) {}

// ID returns the shape identity.
func (b *ShapeBase) ID() ShapeID { return b.id }

// Stamp returns the paint-order stamp assigned by the most recent repaint
// that painted this shape. It is zero until the shape has been painted.
func (b *ShapeBase) Stamp() uint64 { return b.stamp }

// Listening reports the kinds this shape currently has registrations for.
func (b *ShapeBase) Listening() []EventKind {
	var kinds []EventKind
	for _, k := range EventKinds {
		if len(b.events[k]) > 0 {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func (b *ShapeBase) addHandler(kind EventKind, id HandlerID) {
	if b.events == nil {
		b.events = make(map[EventKind][]HandlerID)
	}
	b.events[kind] = append(b.events[kind], id)
}

func (b *ShapeBase) removeHandler(kind EventKind, id HandlerID) {
	ids := b.events[kind]
	for i := range ids {
		if ids[i] == id {
			b.events[kind] = append(ids[:i], ids[i+1:]...)
			return
		}
	}
}
