package ycanvas

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// HandlerID identifies one event registration.
type HandlerID uint32

// EventFunc receives the raw pointer event that resolved to its shape.
type EventFunc func(PointerEvent)

// --- Hit testing ---

// hitTester is the geometric predicate used for one paint mode.
type hitTester func(s Surface, region *gg.Path, width, x, y float64) bool

var hitTesters = [...]hitTester{
	PaintFill: func(s Surface, region *gg.Path, _, x, y float64) bool {
		return s.InFill(region, x, y)
	},
	PaintStroke: func(s Surface, region *gg.Path, width, x, y float64) bool {
		return s.InStroke(region, width, x, y)
	},
}

func hitTesterFor(mode PaintMode) hitTester {
	if int(mode) < len(hitTesters) {
		return hitTesters[mode]
	}
	return hitTesters[PaintFill]
}

// --- Dispatcher ---

type registration struct {
	id    HandlerID
	shape Shape
	fn    EventFunc
}

type candidate struct {
	reg   registration
	stamp uint64
}

// dispatcher is the registration table for a single event kind. It is
// subscribed to the surface only while it holds at least one registration.
type dispatcher struct {
	kind       EventKind
	engine     *Engine
	regs       []registration
	attached   bool
	candidates []candidate
}

func (d *dispatcher) track(s Shape, fn EventFunc) HandlerID {
	if len(d.regs) == 0 {
		d.attach()
	}
	d.engine.nextHandler++
	id := d.engine.nextHandler
	d.regs = append(d.regs, registration{id: id, shape: s, fn: fn})
	return id
}

// untrack removes the registration with the given id. Unknown ids are
// reported as a warning and otherwise ignored.
func (d *dispatcher) untrack(id HandlerID) bool {
	for i := range d.regs {
		if d.regs[i].id == id {
			copy(d.regs[i:], d.regs[i+1:])
			d.regs[len(d.regs)-1] = registration{}
			d.regs = d.regs[:len(d.regs)-1]
			d.detachIfEmpty()
			return true
		}
	}
	d.engine.logger().Warn("ycanvas: handler not registered",
		slog.String("event", d.kind.String()),
		slog.Uint64("handler", uint64(id)),
	)
	return false
}

// untrackShape removes every registration owned by the shape.
func (d *dispatcher) untrackShape(id ShapeID) {
	n := 0
	for _, r := range d.regs {
		if r.shape.Base().id != id {
			d.regs[n] = r
			n++
		}
	}
	clear(d.regs[n:])
	d.regs = d.regs[:n]
	d.detachIfEmpty()
}

func (d *dispatcher) attach() {
	if d.attached {
		return
	}
	d.engine.surface.Subscribe(d.kind, d.dispatch)
	d.attached = true
}

func (d *dispatcher) detachIfEmpty() {
	if len(d.regs) > 0 || !d.attached {
		return
	}
	d.engine.surface.Unsubscribe(d.kind)
	d.attached = false
}

// dispatch hit-tests ev against every registration and invokes the callback
// of the matching shape with the highest paint-order stamp. Every other
// match is suppressed.
func (d *dispatcher) dispatch(ev PointerEvent) {
	surface := d.engine.surface
	// The surface may have moved since the last event; never cache this.
	left, top := surface.Offset()
	x, y := ev.ClientX-left, ev.ClientY-top

	d.candidates = d.candidates[:0]
	for _, r := range d.regs {
		b := r.shape.Base()
		if hitTesterFor(b.RenderMode)(surface, r.shape.HitRegion(), b.LineWidth, x, y) {
			d.candidates = append(d.candidates, candidate{reg: r, stamp: b.stamp})
		}
	}
	if len(d.candidates) == 0 {
		return
	}

	top1 := d.candidates[0]
	for _, c := range d.candidates[1:] {
		if c.stamp > top1.stamp {
			top1 = c
		}
	}
	clear(d.candidates)

	top1.reg.fn(ev)
	d.engine.emitInteractionEvent(ev, top1.reg.shape, x, y, top1.stamp)
}

// --- Engine-level registration ---

// Registration is the handle returned by AddEventListener.
type Registration struct {
	id     HandlerID
	kind   EventKind
	shape  Shape
	engine *Engine
}

// ID returns the handler identity.
func (r Registration) ID() HandlerID { return r.id }

// Kind returns the event kind the callback was registered for.
func (r Registration) Kind() EventKind { return r.kind }

// Remove unregisters the callback. Calling Remove again is harmless: the
// engine logs a warning and nothing else happens.
func (r Registration) Remove() {
	if r.engine == nil || r.kind >= numEventKinds {
		return
	}
	if r.engine.dispatchers[r.kind].untrack(r.id) {
		r.shape.Base().removeHandler(r.kind, r.id)
	}
}

// AddEventListener registers fn for events of the given kind on s. Only the
// topmost shape under the pointer receives an event; see dispatch.
// The first registration of a kind subscribes the engine to the surface's
// input for that kind. An unknown kind is logged and yields a zero
// Registration.
func (e *Engine) AddEventListener(s Shape, kind EventKind, fn EventFunc) Registration {
	if kind >= numEventKinds {
		e.logger().Warn("ycanvas: unknown event kind",
			slog.Int("kind", int(kind)),
			slog.Uint64("shape", uint64(s.Base().id)),
		)
		return Registration{}
	}
	d := e.dispatchers[kind]
	id := d.track(s, fn)
	s.Base().addHandler(kind, id)
	return Registration{id: id, kind: kind, shape: s, engine: e}
}

// RemoveListeners drops every registration owned by s, for all kinds.
func (e *Engine) RemoveListeners(s Shape) {
	for _, k := range EventKinds {
		e.RemoveListenersOf(s, k)
	}
}

// RemoveListenersOf drops every registration of the given kind owned by s.
func (e *Engine) RemoveListenersOf(s Shape, kind EventKind) {
	b := s.Base()
	if kind >= numEventKinds {
		return
	}
	if _, ok := b.events[kind]; !ok {
		return
	}
	e.dispatchers[kind].untrackShape(b.id)
	delete(b.events, kind)
}

// HandlerCount returns the number of registrations for kind.
func (e *Engine) HandlerCount(kind EventKind) int {
	if kind >= numEventKinds {
		return 0
	}
	return len(e.dispatchers[kind].regs)
}

// Subscribed reports whether the engine is currently subscribed to the
// surface's input for kind.
func (e *Engine) Subscribed(kind EventKind) bool {
	return kind < numEventKinds && e.dispatchers[kind].attached
}

// --- ECS bridge ---

func (e *Engine) emitInteractionEvent(ev PointerEvent, s Shape, x, y float64, stamp uint64) {
	if e.store == nil {
		return
	}
	b := s.Base()
	if b.EntityID == 0 {
		return
	}
	e.store.EmitEvent(InteractionEvent{
		Kind:      ev.Kind,
		ShapeID:   b.id,
		EntityID:  b.EntityID,
		X:         x,
		Y:         y,
		Stamp:     stamp,
		Button:    ev.Button,
		Modifiers: ev.Modifiers,
	})
}
