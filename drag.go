package ycanvas

// DragHandle owns the listeners installed by Draggable.
type DragHandle struct {
	regs     [3]Registration
	dragging *bool
}

// Dragging reports whether a drag is in progress.
func (h DragHandle) Dragging() bool {
	return h.dragging != nil && *h.dragging
}

// Stop removes the drag listeners.
func (h DragHandle) Stop() {
	for _, r := range h.regs {
		r.Remove()
	}
	if h.dragging != nil {
		*h.dragging = false
	}
}

// Draggable makes s follow the pointer: a press on s starts a drag, each
// move event over s translates it by the pointer delta and requests a
// repaint, and a release over s ends the drag.
//
// Move events are only delivered while the pointer is over s (the
// dispatcher never captures the pointer), so fast drags that leave the
// shape stall until the pointer is back over it.
func Draggable(e *Engine, s Movable) DragHandle {
	dragging := new(bool)
	var last Vec2

	down := e.AddEventListener(s, EventPress, func(ev PointerEvent) {
		*dragging = true
		last = Vec2{X: ev.ClientX, Y: ev.ClientY}
	})
	up := e.AddEventListener(s, EventRelease, func(PointerEvent) {
		*dragging = false
	})
	move := e.AddEventListener(s, EventMove, func(ev PointerEvent) {
		if !*dragging {
			return
		}
		dx, dy := ev.ClientX-last.X, ev.ClientY-last.Y
		last = Vec2{X: ev.ClientX, Y: ev.ClientY}
		if dx == 0 && dy == 0 {
			return
		}
		Translate(s, dx, dy)
		e.RequestRepaint()
	})
	return DragHandle{regs: [3]Registration{down, up, move}, dragging: dragging}
}
