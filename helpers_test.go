package ycanvas

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/gogpu/gg"
)

// recordHandler is a slog.Handler that keeps every record it receives.
type recordHandler struct {
	mu      sync.Mutex
	level   slog.Level
	records []slog.Record
}

func (h *recordHandler) Enabled(_ context.Context, l slog.Level) bool { return l >= h.level }

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(string) slog.Handler      { return h }

// count returns the number of records at exactly level l.
func (h *recordHandler) count(l slog.Level) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.Level == l {
			n++
		}
	}
	return n
}

// countingCanvas wraps a Canvas and counts Clear calls, i.e. repaint passes.
type countingCanvas struct {
	*Canvas
	clears int
}

func (c *countingCanvas) Clear() {
	c.clears++
	c.Canvas.Clear()
}

// probe is a rectangle that records the order its paint routine runs in.
type probe struct {
	*Rect
	name  string
	log   *[]string
	fail  error
	onRun func(e *Engine)
}

func newProbe(name string, z int, log *[]string) *probe {
	return &probe{
		Rect: NewRect(RectOptions{W: 10, H: 10, ZIndex: z}),
		name: name,
		log:  log,
	}
}

func (p *probe) Render(e *Engine, opts RenderOptions) error {
	if p.log != nil {
		*p.log = append(*p.log, p.name)
	}
	if p.onRun != nil {
		p.onRun(e)
	}
	if p.fail != nil {
		return p.fail
	}
	return p.Rect.Render(e, opts)
}

func newTestEngine(t *testing.T, opts ...Option) (*Engine, *Canvas) {
	t.Helper()
	c := NewCanvas(200, 200)
	e, err := New(c, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e, c
}

func flush(t *testing.T, e *Engine) {
	t.Helper()
	if err := e.FlushPendingRepaint(); err != nil {
		t.Fatalf("FlushPendingRepaint: %v", err)
	}
}

func gPt(x, y float64) gg.Point { return gg.Pt(x, y) }
