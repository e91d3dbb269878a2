// Escape is a dodge game: move the white square and avoid the green squares
// falling from the top. It opens a window by default or runs in the terminal
// with -tty.
//
// Tunables are read from ESCAPE_* environment variables and, if present, a
// dotenv file (see escape.LoadConfig).
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/escape"
	"github.com/phanxgames/escape/audio"
	"github.com/phanxgames/escape/canvas"
	"github.com/phanxgames/escape/ecs"
	"github.com/phanxgames/escape/tty"
)

const windowTitle = "Space Escape"

var (
	ttyMode  = flag.Bool("tty", false, "run in the terminal instead of a window")
	envFile  = flag.String("env", "", "dotenv file with ESCAPE_* settings (default .env if it exists)")
	debug    = flag.Bool("debug", false, "log game diagnostics to stderr and show the HUD")
	script   = flag.String("script", "", "JSON test script to play in the window")
	mute     = flag.Bool("mute", false, "disable sound")
	seed     = flag.Uint64("seed", 0, "random seed for enemy placement (0 = time based)")
	scale    = flag.Float64("scale", 1.5, "initial window scale")
	tps      = flag.Int("tps", canvas.DefaultTPS, "simulation ticks per second")
	shotsDir = flag.String("screenshots", "screenshots", "directory for script screenshots")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

// run wires the game and blocks in the chosen frontend. Deferred cleanup
// runs before main reports an error.
func run() error {
	escape.SetDebugMode(*debug)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}

	world := donburi.NewWorld()
	hooks := newHooks(world)
	stores := []escape.EventStore{ecs.NewDonburiStore(world)}

	if !*mute {
		snd := audio.New()
		if err := snd.Init(); err == nil {
			defer snd.Close()
			stores = append(stores, snd)
		}
	}

	clock := escape.NewClock()
	game, err := escape.NewGame(cfg, clock,
		escape.WithRand(rand.New(rand.NewPCG(s, s>>1|1))),
		escape.WithEventStore(escape.MultiStore(stores...)))
	if err != nil {
		return err
	}

	if *ttyMode {
		return runTerminal(game, clock, hooks)
	}
	return runWindow(game, clock, hooks)
}

// frontendHooks are the per-frame callbacks both frontends install.
type frontendHooks struct {
	status        func() string
	processEvents func()
}

// newHooks subscribes the ECS counters and enemy mirror to world.
func newHooks(world donburi.World) frontendHooks {
	stats := ecs.NewStats(world)
	mirror := ecs.NewMirror(world)
	return frontendHooks{
		status:        func() string { return ecs.StatusLine(stats, mirror) },
		processEvents: func() { events.ProcessAllEvents(world) },
	}
}

// loadConfig reads the -env file, or .env when it exists.
func loadConfig() (escape.Config, error) {
	if *envFile != "" {
		return escape.LoadConfig(*envFile)
	}
	if _, err := os.Stat(".env"); err == nil {
		return escape.LoadConfig(".env")
	}
	return escape.LoadConfig()
}

func runWindow(game *escape.Game, clock *escape.Clock, hooks frontendHooks) error {
	app, err := canvas.NewApp(game, clock)
	if err != nil {
		return err
	}
	app.TPS = *tps
	app.ShowHUD = *debug
	app.Status = hooks.status
	app.AfterUpdate = hooks.processEvents
	app.ScreenshotDir = *shotsDir

	if *script != "" {
		data, err := os.ReadFile(*script)
		if err != nil {
			return err
		}
		runner, err := canvas.LoadTestScript(data)
		if err != nil {
			return err
		}
		app.SetTestRunner(runner)
		app.ExitWhenDone = true
	}

	return canvas.Run(app, canvas.RunConfig{
		Title:     windowTitle,
		Scale:     *scale,
		Resizable: true,
	})
}

func runTerminal(game *escape.Game, clock *escape.Clock, hooks frontendHooks) error {
	term, err := tty.New(game, clock, nil)
	if err != nil {
		return err
	}
	defer term.Close()
	term.TPS = *tps
	term.Status = hooks.status
	term.AfterUpdate = hooks.processEvents

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := term.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
