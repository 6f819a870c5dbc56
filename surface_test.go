package ycanvas

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
)

func TestNewCanvas_Defaults(t *testing.T) {
	tests := []struct {
		w, h         int
		wantW, wantH int
	}{
		{0, 0, DefaultCanvasWidth, DefaultCanvasHeight},
		{-5, 300, DefaultCanvasWidth, 300},
		{640, 480, 640, 480},
	}
	for _, tt := range tests {
		c := NewCanvas(tt.w, tt.h)
		w, h := c.Size()
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("NewCanvas(%d,%d) size = %dx%d, want %dx%d", tt.w, tt.h, w, h, tt.wantW, tt.wantH)
		}
		if b := c.Image().Bounds(); b.Dx() != tt.wantW || b.Dy() != tt.wantH {
			t.Errorf("NewCanvas(%d,%d) image = %v", tt.w, tt.h, b)
		}
	}
}

func TestCanvas_Resize(t *testing.T) {
	c := NewCanvas(100, 100)
	if err := c.Resize(300, 200); err != nil {
		t.Fatal(err)
	}
	if w, h := c.Size(); w != 300 || h != 200 {
		t.Errorf("size = %dx%d, want 300x200", w, h)
	}
	if err := c.Resize(0, 10); err == nil {
		t.Error("expected error for zero width")
	}
	if w, h := c.Size(); w != 300 || h != 200 {
		t.Errorf("failed resize changed size to %dx%d", w, h)
	}
}

func TestCanvas_EmitOnlyWhenSubscribed(t *testing.T) {
	c := NewCanvas(10, 10)
	if c.Emit(PointerEvent{Kind: EventClick}) {
		t.Error("Emit delivered without a listener")
	}
	got := 0
	c.Subscribe(EventClick, func(PointerEvent) { got++ })
	if !c.Emit(PointerEvent{Kind: EventClick}) || got != 1 {
		t.Errorf("Emit with listener: got %d", got)
	}
	if c.Emit(PointerEvent{Kind: EventMove}) {
		t.Error("Emit delivered a kind with no listener")
	}
	c.Unsubscribe(EventClick)
	if c.Emit(PointerEvent{Kind: EventClick}) || got != 1 {
		t.Error("Emit delivered after Unsubscribe")
	}
	if c.Subscribed(EventKind(200)) {
		t.Error("out-of-range kind reported as subscribed")
	}
}

func TestCanvas_InFillNilRegion(t *testing.T) {
	c := NewCanvas(10, 10)
	if c.InFill(nil, 1, 1) || c.InStroke(nil, 1, 1, 1) {
		t.Error("nil region reported a hit")
	}
}

func TestStrokeContains(t *testing.T) {
	open := gg.NewPath()
	open.MoveTo(0, 0)
	open.LineTo(100, 0)
	open.LineTo(100, 100)

	closed := open.Clone()
	closed.Close()

	curve := gg.NewPath()
	curve.MoveTo(0, 0)
	curve.QuadraticTo(50, 100, 100, 0)

	circle := gg.NewPath()
	circle.Circle(50, 50, 20)

	cubic := gg.NewPath()
	cubic.MoveTo(0, 0)
	cubic.CubicTo(0, 100, 100, 100, 100, 0)

	dashes := gg.NewPath()
	dashes.MoveTo(0, 0)
	dashes.LineTo(10, 0)
	dashes.MoveTo(50, 0)
	dashes.LineTo(60, 0)

	tests := []struct {
		name  string
		path  *gg.Path
		width float64
		pt    gg.Point
		want  bool
	}{
		{"on first segment", open, 2, gg.Pt(50, 0.9), true},
		{"beyond half width", open, 2, gg.Pt(50, 1.5), false},
		{"wide stroke", open, 10, gg.Pt(50, 4.9), true},
		{"open path not closed", open, 2, gg.Pt(50, 50), false},
		{"closing segment", closed, 2, gg.Pt(50, 50.5), true},
		{"thin stroke floors at one pixel", open, 0.1, gg.Pt(50, 0.4), true},
		{"quad apex", curve, 2, gg.Pt(50, 50), true},
		{"quad control point", curve, 2, gg.Pt(50, 100), false},
		{"circle rim", circle, 2, gg.Pt(70, 50), true},
		{"circle center", circle, 2, gg.Pt(50, 50), false},
		{"circle diagonal rim", circle, 2, gg.Pt(50+20/math.Sqrt2, 50+20/math.Sqrt2), true},
		{"cubic apex", cubic, 2, gg.Pt(50, 75), true},
		{"cubic inside hull", cubic, 2, gg.Pt(50, 40), false},
		{"second subpath", dashes, 2, gg.Pt(55, 0.5), true},
		{"gap between subpaths", dashes, 2, gg.Pt(30, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := strokeContains(tt.path, tt.width, tt.pt); got != tt.want {
				t.Errorf("strokeContains(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestSegmentDistSq(t *testing.T) {
	tests := []struct {
		a, b, p gg.Point
		want    float64
	}{
		{gg.Pt(0, 0), gg.Pt(10, 0), gg.Pt(5, 3), 9},
		{gg.Pt(0, 0), gg.Pt(10, 0), gg.Pt(-3, 4), 25},
		{gg.Pt(0, 0), gg.Pt(10, 0), gg.Pt(13, 4), 25},
		{gg.Pt(2, 2), gg.Pt(2, 2), gg.Pt(5, 6), 25},
	}
	for _, tt := range tests {
		if got := segmentDistSq(tt.a, tt.b, tt.p); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("segmentDistSq(%v,%v,%v) = %v, want %v", tt.a, tt.b, tt.p, got, tt.want)
		}
	}
}
