// Package tty runs an escape game inside a terminal using tcell.
//
// The canvas is scaled onto the character grid, one row is kept for a
// status line, and the game clock is advanced from a ticker on the same
// goroutine that handles input, so the game is never touched concurrently.
package tty
