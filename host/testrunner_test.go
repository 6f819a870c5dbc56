package host

import (
	"testing"

	"github.com/phanxgames/ycanvas"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "drag", "fromX": 1, "fromY": 2, "toX": 3, "toY": 4, "frames": 5}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if st := runner.steps[3]; st.FromX != 1 || st.FromY != 2 || st.ToX != 3 || st.ToY != 4 || st.Frames != 5 {
		t.Errorf("step 3 mismatch: %+v", st)
	}
}

func TestLoadTestScript_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestRunnerStep_ClickAndWait(t *testing.T) {
	h, engine, _ := newTestHost(t, WithInput(&fakeInput{}))
	rect := ycanvas.NewRect(ycanvas.RectOptions{W: 100, H: 100})
	engine.Render(rect, ycanvas.RenderOptions{})
	var rec recorder
	rec.listen(engine, rect, ycanvas.EventClick, ycanvas.EventDoubleClick)

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "click", "x": 50, "y": 50},
		{"action": "wait", "frames": 3},
		{"action": "dblclick", "x": 10, "y": 10}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	h.SetTestRunner(runner)

	// click step queues 2 samples; runner.step runs before input each tick.
	tick(t, h, 2)
	if rec.counts[ycanvas.EventClick] != 1 {
		t.Fatalf("clicks after click step = %d, want 1", rec.counts[ycanvas.EventClick])
	}

	for i := 0; i < 20 && !runner.Done(); i++ {
		tick(t, h, 1)
	}
	if !runner.Done() {
		t.Fatal("runner never finished")
	}
	if rec.counts[ycanvas.EventClick] != 3 {
		t.Errorf("clicks = %d, want 3", rec.counts[ycanvas.EventClick])
	}
	if rec.counts[ycanvas.EventDoubleClick] != 1 {
		t.Errorf("double clicks = %d, want 1", rec.counts[ycanvas.EventDoubleClick])
	}
}

func TestRunner_ExitOnScriptDone(t *testing.T) {
	h, _, _ := newTestHost(t, WithInput(&fakeInput{}))
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 1}]}`))
	if err != nil {
		t.Fatal(err)
	}
	h.SetTestRunner(runner)
	h.configure(RunConfig{ExitOnScriptDone: true})

	var err2 error
	for i := 0; i < 5 && err2 == nil; i++ {
		err2 = h.Update()
	}
	if err2 == nil {
		t.Fatal("Update never returned termination")
	}
	if !runner.Done() {
		t.Error("terminated before the script finished")
	}
}
