package canvas

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/escape"
)

// hudText formats the debug overlay: frame rates, then game counters, then
// an optional caller-provided status line.
func hudText(fps, tps float64, snap escape.Snapshot, status string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f\nTPS: %.1f\n", fps, tps)
	fmt.Fprintf(&b, "tick: %d  enemies: %d  %s", snap.Tick, len(snap.Enemies), snap.State)
	if status != "" {
		b.WriteByte('\n')
		b.WriteString(status)
	}
	return b.String()
}

// drawHUD prints the debug overlay in the top-left corner.
func (a *App) drawHUD(screen *ebiten.Image, snap escape.Snapshot) {
	var status string
	if a.Status != nil {
		status = a.Status()
	}
	ebitenutil.DebugPrintAt(screen, hudText(ebiten.ActualFPS(), ebiten.ActualTPS(), snap, status), 4, 4)
}
