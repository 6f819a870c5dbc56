package ycanvas

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testScene = `
[canvas]
width = 320
height = 240
offset_x = 8
offset_y = 16

[[shapes]]
kind = "rect"
name = "back"
x = 0
y = 0
w = 320
h = 240
z = 0
color = "#202020"

[[shapes]]
kind = "arc"
name = "ball"
x = 100
y = 100
radius = 20
z = 2
color = "#ff0000"
mode = "stroke"

[[shapes]]
kind = "line"
x = 10
y = 10
line_width = 3
points = [[50, 0], [0, 50]]
z = 1
`

func TestLoadScene(t *testing.T) {
	cfg, err := LoadScene(testScene)
	if err != nil {
		t.Fatalf("LoadScene: %v", err)
	}
	if cfg.Canvas.Width != 320 || cfg.Canvas.Height != 240 {
		t.Errorf("canvas = %+v", cfg.Canvas)
	}
	if len(cfg.Shapes) != 3 {
		t.Fatalf("shapes = %d, want 3", len(cfg.Shapes))
	}

	c := cfg.NewCanvas()
	if w, h := c.Size(); w != 320 || h != 240 {
		t.Errorf("canvas size = %dx%d", w, h)
	}
	if l, tp := c.Offset(); l != 8 || tp != 16 {
		t.Errorf("offset = (%v,%v)", l, tp)
	}

	e, err := New(c)
	if err != nil {
		t.Fatal(err)
	}
	shapes, named, err := cfg.Build(e)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(shapes) != 3 || e.Len() != 3 {
		t.Fatalf("built %d shapes, queue %d", len(shapes), e.Len())
	}
	ball, ok := named["ball"].(*Arc)
	if !ok || ball.Radius != 20 || ball.ZIndex != 2 {
		t.Fatalf("ball = %#v", named["ball"])
	}
	line := shapes[2].(*Line)
	if line.LineWidth != 3 || line.End() != (Vec2{60, 60}) {
		t.Errorf("line width=%v end=%v", line.LineWidth, line.End())
	}

	flush(t, e)
	if ball.RenderMode != PaintStroke {
		t.Error("mode not applied")
	}
	if !(named["back"].Base().Stamp() < line.Stamp() && line.Stamp() < ball.Stamp()) {
		t.Error("scene not painted in z-order")
	}
}

func TestLoadScene_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad toml", "[canvas\nwidth = 1", "parse scene"},
		{"unknown kind", "[[shapes]]\nkind = \"star\"", "unknown kind"},
		{"unknown mode", "[[shapes]]\nkind = \"line\"\nmode = \"dashed\"", "unknown mode"},
		{"rect without size", "[[shapes]]\nkind = \"rect\"", "positive w and h"},
		{"arc without radius", "[[shapes]]\nkind = \"arc\"", "positive radius"},
		{"image without src", "[[shapes]]\nkind = \"image\"", "needs src"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScene(tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadScene_ReportsEveryProblem(t *testing.T) {
	_, err := LoadScene("[[shapes]]\nkind = \"rect\"\n[[shapes]]\nkind = \"blob\"")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "shapes[0]") || !strings.Contains(err.Error(), "shapes[1]") {
		t.Errorf("err = %v, want both entries reported", err)
	}
}

func TestSceneConfig_BuildImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dot.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(0, 0, color.White)
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cfg, err := LoadScene("[[shapes]]\nkind = \"image\"\nsrc = '" + path + "'\nx = 4")
	if err != nil {
		t.Fatal(err)
	}
	if w, h := cfg.NewCanvas().Size(); w != DefaultCanvasWidth || h != DefaultCanvasHeight {
		t.Errorf("default canvas = %dx%d", w, h)
	}
	e, _ := newTestEngine(t)
	shapes, _, err := cfg.Build(e)
	if err != nil {
		t.Fatal(err)
	}
	im := shapes[0].(*Image)
	if im.X != 4 || im.W != 3 || im.H != 2 {
		t.Errorf("image = %+v", *im)
	}

	cfg.Shapes[0].Src = filepath.Join(dir, "missing.png")
	if _, _, err := cfg.Build(e); err == nil {
		t.Error("expected error for missing image")
	}
}

func TestSceneConfig_BuildIsAllOrNothing(t *testing.T) {
	cfg := &SceneConfig{Shapes: []ShapeConfig{
		{Kind: "rect", W: 1, H: 1},
		{Kind: "image", Src: filepath.Join(t.TempDir(), "missing.png")},
	}}
	e, _ := newTestEngine(t)
	if _, _, err := cfg.Build(e); err == nil {
		t.Fatal("expected error")
	}
	if e.Len() != 0 || e.Pending() {
		t.Errorf("failed Build queued %d entries", e.Len())
	}
}
