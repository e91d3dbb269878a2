package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/escape"
)

// --- Constants ---

const (
	// RepeatDelay is how many frames a direction key must be held before it
	// starts repeating, like an OS keydown autorepeat.
	RepeatDelay = 24
	// RepeatInterval is the number of frames between repeated steps.
	RepeatInterval = 2
)

// inputFrame is everything the app consumes from input in one frame. Key
// fields hold how many consecutive frames the key has been down (0 = up).
type inputFrame struct {
	left, right, up, down int

	pointer     bool // a mouse button or finger is down
	pointerJust bool // it went down this frame
	pointerX    float64
	pointerY    float64

	restart bool
}

// inputSource produces one inputFrame per Update.
type inputSource interface {
	read() inputFrame
}

// ebitenInput reads the keyboard, mouse and touch screen through Ebitengine.
type ebitenInput struct {
	touchIDs []ebiten.TouchID
}

// keyDuration returns the longest press duration among keys.
func keyDuration(keys ...ebiten.Key) int {
	d := 0
	for _, k := range keys {
		d = max(d, inpututil.KeyPressDuration(k))
	}
	return d
}

func (s *ebitenInput) read() inputFrame {
	f := inputFrame{
		left:  keyDuration(ebiten.KeyArrowLeft, ebiten.KeyA),
		right: keyDuration(ebiten.KeyArrowRight, ebiten.KeyD),
		up:    keyDuration(ebiten.KeyArrowUp, ebiten.KeyW),
		down:  keyDuration(ebiten.KeyArrowDown, ebiten.KeyS),
		restart: inpututil.IsKeyJustPressed(ebiten.KeyR) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter),
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		f.pointer = true
		f.pointerJust = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		f.pointerX, f.pointerY = float64(mx), float64(my)
	}

	// The first finger wins over the mouse.
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		tid := s.touchIDs[0]
		tx, ty := ebiten.TouchPosition(tid)
		f.pointer = true
		f.pointerJust = inpututil.IsTouchJustPressed(tid)
		f.pointerX, f.pointerY = float64(tx), float64(ty)
	}
	return f
}

// repeats reports whether a key held for d frames produces a step this frame.
func repeats(d int) bool {
	if d <= 0 {
		return false
	}
	if d == 1 {
		return true
	}
	return d > RepeatDelay && (d-RepeatDelay)%RepeatInterval == 0
}

// axisStep combines the negative and positive keys of one axis.
func axisStep(neg, pos int) int {
	step := 0
	if repeats(neg) {
		step--
	}
	if repeats(pos) {
		step++
	}
	return step
}

// direction returns the movement requested by f's keys this frame.
func (f inputFrame) direction() escape.Direction {
	return escape.DirectionOf(axisStep(f.left, f.right), axisStep(f.up, f.down))
}

// applyInput feeds one frame of input into the game. Restart requests and
// clicks on the restart button only matter once the game is over; pointer
// positions move the player while it is running. A press that restarted
// the game is ignored until it is released.
func (a *App) applyInput(f inputFrame) {
	if a.pointerHeld && !f.pointer {
		a.pointerHeld = false
	}

	if a.game.State().Terminal() {
		if f.restart {
			a.game.Restart()
			return
		}
		if f.pointerJust && restartButtonRect(a.game.Config()).Contains(f.pointerX, f.pointerY) {
			a.pointerHeld = a.game.Restart()
		}
		return
	}

	if d := f.direction(); d != escape.DirNone {
		a.game.Move(d)
	}
	if f.pointer && !a.pointerHeld {
		a.game.MoveTo(f.pointerX, f.pointerY)
	}
}
