package host

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"click":      true,
	"dblclick":   true,
	"hover":      true,
	"drag":       true,
	"wait":       true,
	"screenshot": true,
}

// TestRunner sequences injected input and screenshots across ticks for
// automated visual testing. Attach to a Host via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	shots     []string
}

// LoadTestScript parses a JSON test script:
//
//	{"steps": [
//	  {"action": "click", "x": 120, "y": 80},
//	  {"action": "drag", "fromX": 10, "fromY": 10, "toX": 90, "toY": 40, "frames": 8},
//	  {"action": "wait", "frames": 2},
//	  {"action": "screenshot", "label": "after-drag"}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the host. The runner advances at
// the start of every Update.
func (h *Host) SetTestRunner(runner *TestRunner) {
	h.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Screenshots returns the paths written by screenshot steps so far.
func (r *TestRunner) Screenshots() []string {
	return r.shots
}

// step advances the runner by one tick.
func (r *TestRunner) step(h *Host) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(h.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		r.screenshot(h, st.Label)
	case "click":
		h.InjectClick(st.X, st.Y)
	case "dblclick":
		h.InjectDoubleClick(st.X, st.Y)
	case "hover":
		h.InjectHover(st.X, st.Y)
	case "drag":
		h.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(h.injectQueue) == 0 {
		r.done = true
	}
}

// screenshot flushes any pending repaint so the file shows the current
// queue, then writes the canvas.
func (r *TestRunner) screenshot(h *Host, label string) {
	if err := h.engine.FlushPendingRepaint(); err != nil {
		h.lastErr = err
		h.logger().Error("host: repaint before screenshot failed", slog.Any("err", err))
	}
	path, err := h.canvas.Screenshot(h.screenshotDir, label)
	if err != nil {
		h.logger().Error("host: screenshot failed", slog.String("label", label), slog.Any("err", err))
		return
	}
	r.shots = append(r.shots, path)
	h.logger().Info("host: screenshot", slog.String("path", path))
}
