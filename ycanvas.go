package ycanvas

// Vec2 is a 2D vector used for positions, offsets and deltas throughout the API.
type Vec2 struct {
	X, Y float64
}

// PaintMode selects how a shape is painted and, therefore, which geometric
// predicate is used to hit-test it.
type PaintMode uint8

const (
	PaintFill   PaintMode = iota // interior of the region (nonzero winding)
	PaintStroke                  // outline of the region, widened by LineWidth
)

// String returns the canvas-style name of the mode.
func (m PaintMode) String() string {
	switch m {
	case PaintFill:
		return "fill"
	case PaintStroke:
		return "stroke"
	default:
		return "unknown"
	}
}

// ParsePaintMode maps "fill" and "stroke" to a PaintMode. Empty input is fill.
func ParsePaintMode(s string) (PaintMode, bool) {
	switch s {
	case "", "fill":
		return PaintFill, true
	case "stroke":
		return PaintStroke, true
	}
	return PaintFill, false
}

// EventKind identifies a kind of pointer event.
type EventKind uint8

const (
	EventPress       EventKind = iota // pointer button pressed
	EventRelease                      // pointer button released
	EventMove                         // pointer moved
	EventClick                        // press then release
	EventDoubleClick                  // two clicks in quick succession

	numEventKinds
)

// EventKinds lists every kind in dispatcher order.
var EventKinds = [numEventKinds]EventKind{
	EventPress, EventRelease, EventMove, EventClick, EventDoubleClick,
}

var eventKindNames = [numEventKinds]string{
	EventPress:       "mousedown",
	EventRelease:     "mouseup",
	EventMove:        "mousemove",
	EventClick:       "click",
	EventDoubleClick: "dblclick",
}

// String returns the DOM-style event name ("mousedown", "click", ...).
func (k EventKind) String() string {
	if k < numEventKinds {
		return eventKindNames[k]
	}
	return "unknown"
}

// ParseEventKind maps a DOM-style event name back to its EventKind.
func ParseEventKind(name string) (EventKind, bool) {
	for k, n := range eventKindNames {
		if n == name {
			return EventKind(k), true
		}
	}
	return 0, false
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// PointerEvent is a raw pointer event as delivered by the drawing surface.
// ClientX and ClientY are window coordinates; the dispatcher subtracts the
// surface offset before hit-testing.
type PointerEvent struct {
	Kind      EventKind
	ClientX   float64
	ClientY   float64
	Button    MouseButton
	Modifiers KeyModifiers
}
