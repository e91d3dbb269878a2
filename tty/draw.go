package tty

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/escape"
)

const (
	playerGlyph = '█'
	enemyGlyph  = '▼'
	restartHint = "[r] Restart"
)

// grid maps canvas coordinates onto the playfield cells. The bottom screen
// row is the status line and is not part of the grid.
type grid struct {
	cols, rows int
	w, h       float64
}

func (t *Terminal) grid() grid {
	cols, rows := t.screen.Size()
	cfg := t.game.Config()
	return grid{cols: cols, rows: max(rows-1, 1), w: cfg.CanvasWidth, h: cfg.CanvasHeight}
}

// span returns the half-open cell range [lo, hi) covered by [pos, pos+size)
// on an axis of n cells spanning dim canvas units. It is never empty.
func span(pos, size, dim float64, n int) (lo, hi int) {
	lo = int(math.Floor(pos * float64(n) / dim))
	hi = int(math.Ceil((pos + size) * float64(n) / dim))
	lo = min(max(lo, 0), n-1)
	hi = min(max(hi, lo+1), n)
	return lo, hi
}

// cells returns the cell rectangle covered by r.
func (g grid) cells(r escape.Rect) (x0, y0, x1, y1 int) {
	x0, x1 = span(r.X, r.Width, g.w, g.cols)
	y0, y1 = span(r.Y, r.Height, g.h, g.rows)
	return
}

// hintRow is the row of the restart hint; clicking it restarts.
func (g grid) hintRow() int {
	return min(g.rows/2+2, g.rows-1)
}

// toCanvas returns the canvas point at the center of cell (x, y).
func (t *Terminal) toCanvas(x, y int) (float64, float64) {
	g := t.grid()
	return (float64(x) + 0.5) * g.w / float64(g.cols), (float64(y) + 0.5) * g.h / float64(g.rows)
}

func tcellColor(c escape.Color) tcell.Color {
	rgba := c.RGBA()
	return tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B))
}

func (t *Terminal) fill(r escape.Rect, g grid, ch rune, style tcell.Style) {
	x0, y0, x1, y1 := g.cells(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			t.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (t *Terminal) print(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		t.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (t *Terminal) printCentered(y int, s string, cols int, style tcell.Style) {
	x := (cols - len([]rune(s))) / 2
	t.print(max(x, 0), y, s, style)
}

// draw renders the current snapshot and shows it.
func (t *Terminal) draw() {
	snap := t.game.Snapshot()
	cfg := snap.Config
	g := t.grid()
	bg := tcell.StyleDefault.Background(tcellColor(cfg.BackgroundColor))

	t.screen.Fill(' ', bg)

	t.fill(escape.Square(snap.Player, cfg.PlayerSize), g, playerGlyph,
		bg.Foreground(tcellColor(cfg.PlayerColor)))
	enemyStyle := bg.Foreground(tcellColor(cfg.EnemyColor))
	for _, e := range snap.Enemies {
		t.fill(escape.Square(escape.Vec2{X: e.X, Y: e.Y}, cfg.EnemySize), g, enemyGlyph, enemyStyle)
	}

	if snap.State.Terminal() {
		label, col := cfg.GameOverText, cfg.GameOverColor
		if snap.State == escape.StateWon {
			label, col = cfg.WinText, cfg.WinColor
		}
		t.printCentered(g.rows/2, label, g.cols, bg.Foreground(tcellColor(col)).Bold(true))
		t.printCentered(g.hintRow(), restartHint, g.cols, bg.Foreground(tcell.ColorWhite))
	}

	t.print(0, g.rows, t.statusLine(snap), tcell.StyleDefault.Reverse(true))
	t.screen.Show()
}

// statusLine is the text of the bottom row.
func (t *Terminal) statusLine(snap escape.Snapshot) string {
	s := fmt.Sprintf("tick %d  enemies %d  %s", snap.Tick, len(snap.Enemies), snap.State)
	if t.Status != nil {
		if extra := t.Status(); extra != "" {
			s += "  " + extra
		}
	}
	return s
}
