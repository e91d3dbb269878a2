package canvas

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/escape"
)

// DefaultTPS is the update rate Run asks Ebitengine for.
const DefaultTPS = 60

// App drives an escape.Game from the Ebitengine loop. Each Update advances
// the game's Clock by one tick period, which fires due spawns and then one
// simulation Tick; Draw renders the resulting snapshot.
type App struct {
	game  *escape.Game
	clock *escape.Clock

	// TPS is the number of updates per second. Run passes it to Ebitengine.
	TPS int
	// ShowHUD draws frame rates and counters in the top-left corner.
	ShowHUD bool
	// Status, if set, supplies an extra HUD line each frame.
	Status func() string
	// AfterUpdate, if set, runs at the end of every Update.
	AfterUpdate func()
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string
	// ExitWhenDone ends the run loop once an attached TestRunner finishes.
	ExitWhenDone bool

	renderer   *renderer
	input      inputSource
	overlay    overlay
	lastState  escape.State
	testRunner *TestRunner

	// pointerHeld is set while the press that clicked Restart is still down.
	pointerHeld bool

	injectQueue     []inputFrame
	screenshotQueue []shot
}

var _ ebiten.Game = (*App)(nil)

// NewApp wraps a game and the clock it was created with.
func NewApp(game *escape.Game, clock *escape.Clock) (*App, error) {
	if game == nil || clock == nil {
		return nil, fmt.Errorf("new app: nil game or clock")
	}
	r, err := newRenderer()
	if err != nil {
		return nil, fmt.Errorf("new app: %w", err)
	}
	return &App{
		game:          game,
		clock:         clock,
		TPS:           DefaultTPS,
		ScreenshotDir: "screenshots",
		renderer:      r,
		input:         &ebitenInput{},
		lastState:     game.State(),
	}, nil
}

// Game returns the wrapped game.
func (a *App) Game() *escape.Game {
	return a.game
}

// Update runs one frame: scripted steps, input, the clock, then the banner.
func (a *App) Update() error {
	if a.testRunner != nil {
		if a.ExitWhenDone && a.testRunner.Done() {
			return ebiten.Termination
		}
		a.testRunner.step(a)
	}
	a.applyInput(a.nextInput())

	tps := a.TPS
	if tps <= 0 {
		tps = DefaultTPS
	}
	a.clock.Advance(time.Second / time.Duration(tps))

	state := a.game.State()
	switch {
	case state.Terminal() && !a.lastState.Terminal():
		a.overlay.show()
	case !state.Terminal() && a.lastState.Terminal():
		a.overlay.hide()
	}
	a.lastState = state
	a.overlay.update(1 / float32(tps))

	if a.AfterUpdate != nil {
		a.AfterUpdate()
	}
	return nil
}

// Draw renders the current snapshot, the HUD if enabled, and flushes any
// queued screenshots.
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.game.Snapshot()
	a.renderer.draw(screen, snap, &a.overlay)
	if a.ShowHUD {
		a.drawHUD(screen, snap)
	}
	a.flushScreenshots(screen)
}

// Layout fixes the logical screen to the canvas size; Ebitengine scales it
// to the window.
func (a *App) Layout(_, _ int) (int, int) {
	cfg := a.game.Config()
	return int(cfg.CanvasWidth), int(cfg.CanvasHeight)
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Scale multiplies the canvas size to get the initial window size.
	// Values <= 0 mean 1.
	Scale float64
	// Resizable lets the user resize the window; the canvas keeps its aspect.
	Resizable bool
}

// Run starts the game and blocks in the Ebitengine loop until the window
// closes. The game is stopped on return.
func Run(app *App, cfg RunConfig) error {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	gc := app.game.Config()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(int(gc.CanvasWidth*scale), int(gc.CanvasHeight*scale))
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if app.TPS > 0 {
		ebiten.SetTPS(app.TPS)
	}

	app.game.Start()
	defer app.game.Stop()
	if err := ebiten.RunGame(app); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
