package canvas

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/escape"
)

func TestLoadTestScript(t *testing.T) {
	tests := []struct {
		name    string
		script  string
		wantErr bool
	}{
		{"valid", `{"steps":[{"action":"key","dir":"left","frames":3},{"action":"wait","frames":2},{"action":"screenshot","label":"a"}]}`, false},
		{"all actions", `{"steps":[{"action":"pointer","x":1,"y":2},{"action":"drag","x":0,"y":0,"toX":5,"toY":5,"frames":3},{"action":"restart"}]}`, false},
		{"bad json", `{"steps":`, true},
		{"no steps", `{"steps":[]}`, true},
		{"unknown action", `{"steps":[{"action":"jump"}]}`, true},
		{"unknown direction", `{"steps":[{"action":"key","dir":"sideways"}]}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := LoadTestScript([]byte(tt.script))
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && r == nil {
				t.Fatal("nil runner without error")
			}
		})
	}
}

func TestTestRunnerKeyThenWait(t *testing.T) {
	app, game, _ := newTestApp(t)
	r, err := LoadTestScript([]byte(`{"steps":[
		{"action":"key","dir":"right","frames":1},
		{"action":"wait","frames":3},
		{"action":"key","dir":"up-left","frames":1}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	app.SetTestRunner(r)

	for i := 0; i < 20 && !r.Done(); i++ {
		_ = app.Update()
	}
	if !r.Done() {
		t.Fatal("runner did not finish")
	}
	// right 5, then up-left 5 on both axes.
	if got := game.Player(); got != (escape.Vec2{X: 185, Y: 365}) {
		t.Errorf("Player() = %v, want (185, 365)", got)
	}
}

func TestTestRunnerWaitCountsFrames(t *testing.T) {
	app, _, _ := newTestApp(t)
	r, err := LoadTestScript([]byte(`{"steps":[{"action":"wait","frames":4}]}`))
	if err != nil {
		t.Fatal(err)
	}
	app.SetTestRunner(r)

	frames := 0
	for !r.Done() && frames < 100 {
		_ = app.Update()
		frames++
	}
	if frames != 5 {
		t.Errorf("finished after %d frames, want 5", frames)
	}
}

func TestTestRunnerScreenshotQueues(t *testing.T) {
	app, _, _ := newTestApp(t)
	r, err := LoadTestScript([]byte(`{"steps":[{"action":"screenshot","label":"start"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	app.SetTestRunner(r)
	_ = app.Update()
	if len(app.screenshotQueue) != 1 || app.screenshotQueue[0].label != "start" {
		t.Errorf("screenshotQueue = %v, want [start]", app.screenshotQueue)
	}
	if !r.Done() {
		t.Error("single-step script should be done after one frame")
	}
}

func TestExitWhenDone(t *testing.T) {
	app, _, _ := newTestApp(t)
	r, err := LoadTestScript([]byte(`{"steps":[{"action":"wait","frames":2}]}`))
	if err != nil {
		t.Fatal(err)
	}
	app.SetTestRunner(r)
	app.ExitWhenDone = true

	var frames int
	for frames = 1; frames < 100; frames++ {
		if err := app.Update(); err != nil {
			if !errors.Is(err, ebiten.Termination) {
				t.Fatalf("Update() = %v, want ebiten.Termination", err)
			}
			break
		}
	}
	// Two wait frames, one to notice the end, one to exit.
	if frames != 4 {
		t.Errorf("terminated on frame %d, want 4", frames)
	}
}
