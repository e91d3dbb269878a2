package tty

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/escape"
)

// DefaultTPS is the tick rate used when Terminal.TPS is not positive.
const DefaultTPS = 60

// Terminal drives an escape.Game from tcell events and a tick timer.
type Terminal struct {
	game   *escape.Game
	clock  *escape.Clock
	screen tcell.Screen

	// TPS is the number of clock steps per second.
	TPS int
	// Status, if set, supplies extra text for the status line.
	Status func() string
	// AfterUpdate, if set, runs after every clock step.
	AfterUpdate func()

	// buttonHeld is set while the click that restarted the game is down.
	buttonHeld bool
}

// New initializes screen and returns a Terminal bound to it. A nil screen
// opens the controlling terminal. Call Close when done.
func New(game *escape.Game, clock *escape.Clock, screen tcell.Screen) (*Terminal, error) {
	if game == nil || clock == nil {
		return nil, fmt.Errorf("new terminal: nil game or clock")
	}
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("new terminal: %w", err)
		}
		screen = s
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("new terminal: init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	return &Terminal{
		game:   game,
		clock:  clock,
		screen: screen,
		TPS:    DefaultTPS,
	}, nil
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}

// Run starts the game and processes input and ticks until the user quits or
// ctx is canceled. It returns nil on a user quit and ctx.Err() on
// cancellation. The game is stopped on return.
func (t *Terminal) Run(ctx context.Context) error {
	tps := t.TPS
	if tps <= 0 {
		tps = DefaultTPS
	}
	step := time.Second / time.Duration(tps)

	t.game.Start()
	defer t.game.Stop()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go t.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(step)
	defer ticker.Stop()

	t.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !t.handle(ev) {
				return nil
			}
			t.draw()
		case <-ticker.C:
			t.advance(step)
			t.draw()
		}
	}
}

// advance moves the game clock forward by dt.
func (t *Terminal) advance(dt time.Duration) {
	t.clock.Advance(dt)
	if t.AfterUpdate != nil {
		t.AfterUpdate()
	}
}

// handle applies one event. It returns false when the user asked to quit.
func (t *Terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 == 0 {
			t.buttonHeld = false
			return true
		}
		x, y := ev.Position()
		if t.game.State().Terminal() {
			if y == t.grid().hintRow() {
				t.buttonHeld = t.game.Restart()
			}
			return true
		}
		if t.buttonHeld {
			return true
		}
		cx, cy := t.toCanvas(x, y)
		t.game.MoveTo(cx, cy)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *Terminal) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		t.game.Move(escape.DirUp)
	case tcell.KeyDown:
		t.game.Move(escape.DirDown)
	case tcell.KeyLeft:
		t.game.Move(escape.DirLeft)
	case tcell.KeyRight:
		t.game.Move(escape.DirRight)
	case tcell.KeyEnter:
		t.game.Restart()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'r', 'R':
			t.game.Restart()
		case 'w', 'W':
			t.game.Move(escape.DirUp)
		case 's', 'S':
			t.game.Move(escape.DirDown)
		case 'a', 'A':
			t.game.Move(escape.DirLeft)
		case 'd', 'D':
			t.game.Move(escape.DirRight)
		}
	}
	return true
}
