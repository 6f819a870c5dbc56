package ycanvas

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-drag", "after-drag"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCanvasScreenshot(t *testing.T) {
	e, c := newTestEngine(t)
	e.Render(NewRect(RectOptions{W: 20, H: 20}), RenderOptions{Color: "#00ff00"})
	flush(t, e)

	dir := filepath.Join(t.TempDir(), "shots")
	path, err := c.Screenshot(dir, "after paint")
	if err != nil {
		t.Fatalf("Screenshot: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("path %q not in %q", path, dir)
	}
	if !strings.HasSuffix(path, "_after_paint.png") {
		t.Errorf("path %q does not end with the sanitized label", path)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("empty screenshot file")
	}
}
