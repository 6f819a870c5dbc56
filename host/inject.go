package host

import "github.com/phanxgames/ycanvas"

// pointerSample is one scripted pointer state in window coordinates. Each
// sample stands in for a single tick of real mouse polling.
type pointerSample struct {
	x, y    float64
	pressed bool
}

func (h *Host) queueSample(x, y float64, pressed bool) {
	h.injectQueue = append(h.injectQueue, pointerSample{x: x, y: y, pressed: pressed})
}

// InjectPress queues a left-button press at (x, y).
func (h *Host) InjectPress(x, y float64) { h.queueSample(x, y, true) }

// InjectMove queues a move to (x, y) with the left button held. Between
// InjectPress and InjectRelease it drags.
func (h *Host) InjectMove(x, y float64) { h.queueSample(x, y, true) }

// InjectHover queues a move to (x, y) with no button held.
func (h *Host) InjectHover(x, y float64) { h.queueSample(x, y, false) }

// InjectRelease queues a left-button release at (x, y).
func (h *Host) InjectRelease(x, y float64) { h.queueSample(x, y, false) }

// InjectClick queues a press and a release at (x, y), two ticks in all.
func (h *Host) InjectClick(x, y float64) {
	h.InjectPress(x, y)
	h.InjectRelease(x, y)
}

// InjectDoubleClick queues two clicks at (x, y). The four ticks it takes
// are well inside DefaultDoubleClickTicks.
func (h *Host) InjectDoubleClick(x, y float64) {
	h.InjectClick(x, y)
	h.InjectClick(x, y)
}

// InjectDrag presses at (fromX, fromY), moves in a straight line and
// releases at (toX, toY). The whole gesture spans ticks ticks; fewer than
// two is treated as two (press, release).
func (h *Host) InjectDrag(fromX, fromY, toX, toY float64, ticks int) {
	ticks = max(ticks, 2)
	h.InjectPress(fromX, fromY)
	for i := 1; i < ticks-1; i++ {
		f := float64(i) / float64(ticks-1)
		h.InjectMove(fromX+(toX-fromX)*f, fromY+(toY-fromY)*f)
	}
	h.InjectRelease(toX, toY)
}

// Pending returns the number of scripted samples not yet consumed.
func (h *Host) Pending() int {
	return len(h.injectQueue)
}

// processInjectedInput feeds the oldest scripted sample to processPointer.
// While samples remain, the real mouse is not polled.
func (h *Host) processInjectedInput() bool {
	if len(h.injectQueue) == 0 {
		return false
	}
	s := h.injectQueue[0]
	h.injectQueue = h.injectQueue[1:]
	if len(h.injectQueue) == 0 {
		h.injectQueue = nil
	}
	h.processPointer(s.x, s.y, s.pressed, ycanvas.MouseButtonLeft, 0)
	return true
}
