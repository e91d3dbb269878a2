package canvas

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/phanxgames/escape"
)

// fakeInput replays a fixed frame on every read.
type fakeInput struct {
	frame inputFrame
	reads int
}

func (f *fakeInput) read() inputFrame {
	f.reads++
	return f.frame
}

func newTestApp(t *testing.T) (*App, *escape.Game, *escape.Clock) {
	t.Helper()
	clock := escape.NewClock()
	game, err := escape.NewGame(escape.DefaultConfig(), clock,
		escape.WithRand(rand.New(rand.NewPCG(1, 2))))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	app, err := NewApp(game, clock)
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	app.input = &fakeInput{}
	return app, game, clock
}

func TestNewAppDefaults(t *testing.T) {
	app, game, _ := newTestApp(t)
	if app.Game() != game {
		t.Error("Game() should return the wrapped game")
	}
	if app.TPS != DefaultTPS {
		t.Errorf("TPS = %d, want %d", app.TPS, DefaultTPS)
	}
	if app.ScreenshotDir != "screenshots" {
		t.Errorf("ScreenshotDir = %q, want %q", app.ScreenshotDir, "screenshots")
	}
	if w, h := app.Layout(1920, 1080); w != 400 || h != 400 {
		t.Errorf("Layout() = %d, %d, want 400, 400", w, h)
	}
}

func TestNewAppRejectsNil(t *testing.T) {
	if _, err := NewApp(nil, escape.NewClock()); err == nil {
		t.Error("expected error for nil game")
	}
}

func TestUpdateTicksOncePerFrame(t *testing.T) {
	app, game, clock := newTestApp(t)
	game.Start()
	for range 60 {
		if err := app.Update(); err != nil {
			t.Fatal(err)
		}
	}
	if game.TickCount() != 60 {
		t.Errorf("TickCount() = %d after 60 updates, want 60", game.TickCount())
	}
	// 60 frames at 60 TPS is one second: six 150ms spawns.
	if n := len(game.Enemies()); n != 6 {
		t.Errorf("enemies = %d, want 6", n)
	}
	if want := 60 * (time.Second / 60); clock.Now() != want {
		t.Errorf("clock = %v, want %v", clock.Now(), want)
	}
}

func TestUpdateShowsAndHidesOverlay(t *testing.T) {
	app, game, _ := newTestApp(t)
	game.Start()

	// Park the player under a falling column until it is hit.
	for i := 0; i < 2000 && game.State() == escape.StateRunning; i++ {
		app.InjectPointer(200, 385)
		_ = app.Update()
	}
	if game.State() != escape.StateLost {
		t.Fatalf("State() = %v, want lost", game.State())
	}
	if !app.overlay.Visible() {
		t.Fatal("overlay should be visible after game over")
	}
	for range 60 {
		_ = app.Update()
	}
	if !app.overlay.Done() || app.overlay.Alpha != 1 || app.overlay.Scale != 1 {
		t.Errorf("overlay after 1s: done=%v alpha=%v scale=%v", app.overlay.Done(), app.overlay.Alpha, app.overlay.Scale)
	}

	app.InjectRestart()
	_ = app.Update()
	if game.State() != escape.StateRunning {
		t.Errorf("State() = %v after restart, want running", game.State())
	}
	if app.overlay.Visible() {
		t.Error("overlay should hide after restart")
	}
}

func TestAfterUpdateHook(t *testing.T) {
	app, _, _ := newTestApp(t)
	calls := 0
	app.AfterUpdate = func() { calls++ }
	_ = app.Update()
	_ = app.Update()
	if calls != 2 {
		t.Errorf("AfterUpdate calls = %d, want 2", calls)
	}
}
