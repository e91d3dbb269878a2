package escape

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// Predefined colors matching the classic presentation.
var (
	ColorBlack  = Color{0, 0, 0, 1}
	ColorWhite  = Color{1, 1, 1, 1}
	ColorGreen  = Color{0, 128.0 / 255.0, 0, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorYellow = Color{1, 1, 0, 1}
)

// RGBA converts c to an 8-bit premultiplied color.RGBA.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Square returns the rect of a square with its top-left corner at p.
func Square(p Vec2, size float64) Rect {
	return Rect{X: p.X, Y: p.Y, Width: size, Height: size}
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Overlaps reports whether r and other share interior area.
// Rectangles that only touch along an edge do not overlap.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// State is the game's position in its state machine.
type State uint8

const (
	StateRunning State = iota // initial; enemies fall and input moves the player
	StateLost                 // terminal; entered on any collision
	StateWon                  // terminal; declared but never entered
)

// String returns the state's name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateLost:
		return "lost"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether s halts the simulation.
func (s State) Terminal() bool {
	return s == StateLost || s == StateWon
}

// Direction is a discrete movement request from a keyboard-like source.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
	DirUpLeft
	DirUpRight
	DirDownLeft
	DirDownRight
)

// Delta returns the unit step of d on each axis (-1, 0 or 1).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUpLeft:
		return -1, -1
	case DirUpRight:
		return 1, -1
	case DirDownLeft:
		return -1, 1
	case DirDownRight:
		return 1, 1
	default:
		return 0, 0
	}
}

// DirectionOf combines per-axis unit steps into a Direction.
// Values other than -1, 0 and 1 are reduced to their sign.
func DirectionOf(dx, dy int) Direction {
	dx, dy = sign(dx), sign(dy)
	switch {
	case dx == 0 && dy == -1:
		return DirUp
	case dx == 0 && dy == 1:
		return DirDown
	case dx == -1 && dy == 0:
		return DirLeft
	case dx == 1 && dy == 0:
		return DirRight
	case dx == -1 && dy == -1:
		return DirUpLeft
	case dx == 1 && dy == -1:
		return DirUpRight
	case dx == -1 && dy == 1:
		return DirDownLeft
	case dx == 1 && dy == 1:
		return DirDownRight
	}
	return DirNone
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// String returns the direction's name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUpLeft:
		return "up-left"
	case DirUpRight:
		return "up-right"
	case DirDownLeft:
		return "down-left"
	case DirDownRight:
		return "down-right"
	default:
		return "none"
	}
}

// ParseDirection maps a name produced by Direction.String back to its value.
func ParseDirection(s string) (Direction, bool) {
	for d := DirUp; d <= DirDownRight; d++ {
		if d.String() == s {
			return d, true
		}
	}
	return DirNone, false
}
