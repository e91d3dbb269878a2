package canvas

import "github.com/phanxgames/escape"

// InjectKey queues a direction held down for the given number of frames.
// Held frames repeat the same way a physical key does, so frames=1 moves one
// step and longer holds start repeating after RepeatDelay frames. The
// events are consumed one per Update ahead of real input.
func (a *App) InjectKey(dir escape.Direction, frames int) {
	if frames < 1 {
		frames = 1
	}
	dx, dy := dir.Delta()
	for i := 1; i <= frames; i++ {
		var f inputFrame
		switch dx {
		case -1:
			f.left = i
		case 1:
			f.right = i
		}
		switch dy {
		case -1:
			f.up = i
		case 1:
			f.down = i
		}
		a.injectQueue = append(a.injectQueue, f)
	}
}

// InjectPointer queues a single-frame press at canvas coordinates (x, y).
// While running it moves the player; once the game is over it clicks.
func (a *App) InjectPointer(x, y float64) {
	a.injectQueue = append(a.injectQueue, inputFrame{
		pointer:     true,
		pointerJust: true,
		pointerX:    x,
		pointerY:    y,
	})
}

// InjectDrag queues a pointer held down while moving linearly from
// (fromX, fromY) to (toX, toY). The sequence consumes frames frames, at
// least 2.
func (a *App) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		a.injectQueue = append(a.injectQueue, inputFrame{
			pointer:     true,
			pointerJust: i == 0,
			pointerX:    fromX + (toX-fromX)*t,
			pointerY:    fromY + (toY-fromY)*t,
		})
	}
}

// InjectRestart queues a restart key press.
func (a *App) InjectRestart() {
	a.injectQueue = append(a.injectQueue, inputFrame{restart: true})
}

// nextInput pops one injected frame if any are queued, otherwise reads the
// real input source. Real input is skipped while injections are pending.
func (a *App) nextInput() inputFrame {
	if len(a.injectQueue) > 0 {
		f := a.injectQueue[0]
		copy(a.injectQueue, a.injectQueue[1:])
		a.injectQueue = a.injectQueue[:len(a.injectQueue)-1]
		return f
	}
	if a.input == nil {
		return inputFrame{}
	}
	return a.input.read()
}
