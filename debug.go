package ycanvas

import (
	"log/slog"
	"time"
)

// debugStats holds per-repaint timing metrics.
// Only populated when Engine.debug is true.
type debugStats struct {
	clearTime  time.Duration
	sortTime   time.Duration
	paintTime  time.Duration
	entryCount int
}

// debugLog writes timing stats for one repaint at debug level.
func (e *Engine) debugLog(stats debugStats) {
	if !e.debug {
		return
	}
	total := stats.clearTime + stats.sortTime + stats.paintTime
	e.logger().Debug("ycanvas: repaint",
		slog.Int("pass", e.repaints),
		slog.Int("entries", stats.entryCount),
		slog.Uint64("max_stamp", e.maxStamp),
		slog.Duration("clear", stats.clearTime),
		slog.Duration("sort", stats.sortTime),
		slog.Duration("paint", stats.paintTime),
		slog.Duration("total", total),
	)
}
