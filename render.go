package ycanvas

import (
	"fmt"
	"time"
)

// renderEntry pairs a queued shape with the options it was rendered with.
type renderEntry struct {
	shape Shape
	opts  RenderOptions
	seq   uint64 // insertion sequence, secondary sort key
}

// RequestRepaint marks the engine dirty. Repeated calls before the next
// flush are coalesced into a single repaint. On the idle-to-scheduled
// transition the scheduler hook, if any, is handed the flush function.
func (e *Engine) RequestRepaint() {
	if e.dirty {
		return
	}
	e.dirty = true
	if !e.painting {
		e.scheduleFlush()
	}
}

// scheduleFlush hands the flush function to the scheduler hook, if any.
// Requests made while painting are handed over once the pass ends.
func (e *Engine) scheduleFlush() {
	if e.schedule != nil {
		e.schedule(e.FlushPendingRepaint)
	}
}

// Pending reports whether a repaint has been requested but not yet run.
func (e *Engine) Pending() bool {
	return e.dirty
}

// Repaints returns the number of repaint passes executed so far.
func (e *Engine) Repaints() int {
	return e.repaints
}

// FlushPendingRepaint runs the pending repaint, if any, synchronously.
//
// Errors returned by paint routines surface here, at the flush boundary,
// and not at the Render or ModifyLayer call that queued the work. The error
// names the shape whose paint routine failed; shapes after it in the pass
// are not painted. The engine is idle again when FlushPendingRepaint
// returns, whatever the outcome, unless the pass itself requested another
// repaint.
//
// Called from inside a paint routine, FlushPendingRepaint does nothing; the
// pending repaint runs on the next flush.
func (e *Engine) FlushPendingRepaint() error {
	if !e.dirty || e.painting {
		return nil
	}
	e.dirty = false
	return e.repaint()
}

// Tick is the engine's cooperative scheduling turn. Hosts call it once per
// frame after delivering input. It has the same error attribution as
// FlushPendingRepaint.
func (e *Engine) Tick() error {
	return e.FlushPendingRepaint()
}

// Reload clears the surface and repaints immediately, whether or not a
// repaint is pending. Use it after resizing the surface. Like
// FlushPendingRepaint it does nothing inside a paint routine.
func (e *Engine) Reload() error {
	if e.painting {
		return nil
	}
	e.dirty = false
	return e.repaint()
}

// ClearView erases the whole visible surface without repainting.
func (e *Engine) ClearView() {
	e.surface.Clear()
}

// repaint clears the surface, sorts the queue by declared z-order and paints
// every entry, assigning strictly increasing paint-order stamps.
func (e *Engine) repaint() error {
	e.painting = true
	defer func() {
		e.painting = false
		if e.dirty {
			e.scheduleFlush()
		}
	}()

	var stats debugStats
	var t0 time.Time

	if e.debug {
		t0 = time.Now()
	}

	e.ClearView()

	if e.debug {
		stats.clearTime = time.Since(t0)
		t0 = time.Now()
	}

	e.mergeSort()

	if e.debug {
		stats.sortTime = time.Since(t0)
		stats.entryCount = len(e.queue)
		t0 = time.Now()
	}

	e.repaints++

	// Paint from a snapshot: paint routines may call back into the engine.
	e.paintBuf = append(e.paintBuf[:0], e.queue...)
	defer clear(e.paintBuf)

	for _, ent := range e.paintBuf {
		b := ent.shape.Base()
		e.maxStamp++
		b.stamp = e.maxStamp
		ent.shape.BeforeRender(e, ent.opts)
		if err := ent.shape.Render(e, ent.opts); err != nil {
			return fmt.Errorf("paint shape %d: %w", b.id, err)
		}
	}

	if e.debug {
		stats.paintTime = time.Since(t0)
		e.debugLog(stats)
	}
	return nil
}

// --- Merge sort ---

// entryLessOrEqual orders entries by ZIndex, then by insertion sequence.
func entryLessOrEqual(a, b renderEntry) bool {
	az, bz := a.shape.Base().ZIndex, b.shape.Base().ZIndex
	if az != bz {
		return az < bz
	}
	return a.seq <= b.seq
}

// mergeSort stable-sorts the draw queue, ping-ponging runs between e.queue
// and e.sortBuf. sortBuf is kept between passes.
func (e *Engine) mergeSort() {
	n := len(e.queue)
	if n <= 1 {
		return
	}
	if cap(e.sortBuf) < n {
		e.sortBuf = make([]renderEntry, n)
	}
	e.sortBuf = e.sortBuf[:n]

	src, dst := e.queue, e.sortBuf
	for run := 1; run < n; run *= 2 {
		for lo := 0; lo < n; lo += 2 * run {
			mergeRun(src, dst, lo, min(lo+run, n), min(lo+2*run, n))
		}
		src, dst = dst, src
	}
	if &src[0] != &e.queue[0] {
		copy(e.queue, src)
	}
	clear(e.sortBuf)
}

// mergeRun merges src[lo:mid] and src[mid:hi] into dst[lo:hi].
func mergeRun(src, dst []renderEntry, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if entryLessOrEqual(src[i], src[j]) {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
