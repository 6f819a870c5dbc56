package ycanvas

import (
	"errors"
	"log/slog"
)

// ErrNoSurface is returned by New when no drawing surface is supplied.
var ErrNoSurface = errors.New("ycanvas: drawing surface is required")

// EntityStore is the interface for optional ECS integration.
// When set on an Engine, resolved pointer events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries a resolved dispatch for the ECS bridge.
type InteractionEvent struct {
	Kind      EventKind
	ShapeID   ShapeID
	EntityID  uint32
	X, Y      float64 // surface-relative position
	Stamp     uint64  // paint-order stamp of the winning shape
	Button    MouseButton
	Modifiers KeyModifiers
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger routes the engine's diagnostics to l instead of the package
// logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithScheduler installs a hook that is handed the flush function each time
// the engine goes from idle to scheduled. The hook decides when the flush
// runs; it must run it exactly once and owns the paint error it returns.
// Without a hook the owner calls Tick once per frame.
func WithScheduler(schedule func(flush func() error)) Option {
	return func(e *Engine) { e.schedule = schedule }
}

// WithEntityStore sets the optional ECS bridge.
func WithEntityStore(store EntityStore) Option {
	return func(e *Engine) { e.store = store }
}

// Engine owns the draw queue, the shape registry and one dispatcher per
// event kind. It is not safe for concurrent use; drive it from a single
// game loop.
type Engine struct {
	surface  Surface
	log      *slog.Logger
	schedule func(flush func() error)
	store    EntityStore
	debug    bool

	// Shape registry: every shape that currently has a render entry.
	shapes map[ShapeID]Shape

	// Render scheduler state.
	queue    []renderEntry
	sortBuf  []renderEntry
	paintBuf []renderEntry
	seq      uint64
	maxStamp uint64
	dirty    bool
	painting bool
	repaints int

	// Event dispatch state.
	dispatchers [numEventKinds]*dispatcher
	nextHandler HandlerID
}

// New creates an engine painting onto surface. It fails with ErrNoSurface
// when surface is nil; the surface is mandatory and never retried.
func New(surface Surface, opts ...Option) (*Engine, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if c, ok := surface.(*Canvas); ok && c == nil {
		return nil, ErrNoSurface
	}
	e := &Engine{
		surface: surface,
		shapes:  make(map[ShapeID]Shape),
	}
	for _, k := range EventKinds {
		e.dispatchers[k] = &dispatcher{kind: k, engine: e}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Surface returns the drawing surface.
func (e *Engine) Surface() Surface {
	return e.surface
}

// SetEntityStore sets the optional ECS bridge.
func (e *Engine) SetEntityStore(store EntityStore) {
	e.store = store
}

// SetDebugMode enables or disables per-repaint timing logs at debug level.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

func (e *Engine) logger() *slog.Logger {
	if e.log != nil {
		return e.log
	}
	return Logger()
}

// Render queues s for painting with opts and requests a repaint.
//
// Render always appends: rendering the same shape twice produces two entries
// that both paint it. Call Clear first to replace an entry.
func (e *Engine) Render(s Shape, opts RenderOptions) {
	b := s.Base()
	e.shapes[b.id] = s
	e.seq++
	e.queue = append(e.queue, renderEntry{shape: s, opts: opts, seq: e.seq})
	e.RequestRepaint()
}

// Clear removes every render entry for s, drops it from the registry,
// removes all of its event registrations and requests a repaint. Clearing
// a shape that is not queued does nothing.
func (e *Engine) Clear(s Shape) {
	id := s.Base().id
	n := 0
	for _, ent := range e.queue {
		if ent.shape.Base().id != id {
			e.queue[n] = ent
			n++
		}
	}
	if n == len(e.queue) {
		return
	}
	clear(e.queue[n:])
	e.queue = e.queue[:n]
	delete(e.shapes, id)
	e.RemoveListeners(s)
	e.RequestRepaint()
}

// ModifyLayer sets the declared z-order of s and requests a repaint.
func (e *Engine) ModifyLayer(s Shape, z int) {
	s.Base().ZIndex = z
	e.RequestRepaint()
}

// Queued reports whether s currently has at least one render entry.
func (e *Engine) Queued(s Shape) bool {
	_, ok := e.shapes[s.Base().id]
	return ok
}

// Lookup returns the queued shape with the given identity.
func (e *Engine) Lookup(id ShapeID) (Shape, bool) {
	s, ok := e.shapes[id]
	return s, ok
}

// Len returns the number of render entries in the draw queue.
func (e *Engine) Len() int {
	return len(e.queue)
}
