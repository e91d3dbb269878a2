package canvas

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/escape"
)

const (
	bannerFontSize = 40
	buttonFontSize = 16
	buttonWidth    = 100
	buttonHeight   = 30
	buttonGap      = 30 // between banner center and button top
	buttonLabel    = "Restart"
)

// buttonColor fills the restart button; its label uses the background color.
var buttonColor = escape.Color{R: 0.85, G: 0.85, B: 0.85, A: 1}

// restartButtonRect returns the restart button's bounds in canvas space,
// centered horizontally below the banner.
func restartButtonRect(cfg escape.Config) escape.Rect {
	return escape.Rect{
		X:      cfg.CanvasWidth/2 - buttonWidth/2,
		Y:      cfg.CanvasHeight/2 + buttonGap,
		Width:  buttonWidth,
		Height: buttonHeight,
	}
}

// renderer draws a Snapshot. Every rectangle is a scaled 1x1 white pixel
// tinted per draw, so all sprites share one source image.
type renderer struct {
	white  *ebiten.Image
	banner *text.GoTextFace
	button *text.GoTextFace
}

// newRenderer loads the Go Regular font faces. The white pixel is created on
// first draw, once the graphics driver is up.
func newRenderer() (*renderer, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &renderer{
		banner: &text.GoTextFace{Source: source, Size: bannerFontSize},
		button: &text.GoTextFace{Source: source, Size: buttonFontSize},
	}, nil
}

func (r *renderer) whitePixel() *ebiten.Image {
	if r.white == nil {
		r.white = ebiten.NewImage(1, 1)
		r.white.Fill(escape.ColorWhite.RGBA())
	}
	return r.white
}

// fillRect draws rect in c.
func (r *renderer) fillRect(dst *ebiten.Image, rect escape.Rect, c escape.Color) {
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(rect.Width, rect.Height)
	op.GeoM.Translate(rect.X, rect.Y)
	op.ColorScale.ScaleWithColor(c.RGBA())
	dst.DrawImage(r.whitePixel(), &op)
}

// drawText draws s centered on (cx, cy) scaled by scale with alpha applied.
func (r *renderer) drawText(dst *ebiten.Image, s string, face *text.GoTextFace, cx, cy, scale, alpha float64, c escape.Color) {
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c.RGBA())
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(dst, s, face, op)
}

// draw renders one frame: background, player, enemies and, once the game has
// ended, the banner and restart button.
func (r *renderer) draw(dst *ebiten.Image, snap escape.Snapshot, ov *overlay) {
	cfg := snap.Config
	dst.Fill(cfg.BackgroundColor.RGBA())

	r.fillRect(dst, escape.Square(snap.Player, cfg.PlayerSize), cfg.PlayerColor)
	for _, e := range snap.Enemies {
		r.fillRect(dst, escape.Square(escape.Vec2{X: e.X, Y: e.Y}, cfg.EnemySize), cfg.EnemyColor)
	}

	if !snap.State.Terminal() || !ov.Visible() {
		return
	}

	label, col := cfg.GameOverText, cfg.GameOverColor
	if snap.State == escape.StateWon {
		label, col = cfg.WinText, cfg.WinColor
	}
	cx, cy := cfg.CanvasWidth/2, cfg.CanvasHeight/2
	r.drawText(dst, label, r.banner, cx, cy, ov.Scale, ov.Alpha, col)

	btn := restartButtonRect(cfg)
	fill := buttonColor
	fill.A = ov.Alpha
	r.fillRect(dst, btn, fill)
	r.drawText(dst, buttonLabel, r.button, btn.X+btn.Width/2, btn.Y+btn.Height/2, 1, ov.Alpha, cfg.BackgroundColor)
}
