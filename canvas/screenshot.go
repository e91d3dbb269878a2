package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// shot is a screenshot request. The tick is recorded when it is queued so
// file names follow the play-through order.
type shot struct {
	label string
	tick  uint64
}

// fileName is "<tick>-<slug>.png" with the tick zero padded.
func (s shot) fileName() string {
	return fmt.Sprintf("%06d-%s.png", s.tick, slug(s.label))
}

// Screenshot asks for the next rendered frame to be saved as a PNG in
// ScreenshotDir.
func (a *App) Screenshot(label string) {
	a.screenshotQueue = append(a.screenshotQueue, shot{label: label, tick: a.game.TickCount()})
}

// flushScreenshots saves the frame just drawn once per pending request.
func (a *App) flushScreenshots(screen *ebiten.Image) {
	if len(a.screenshotQueue) == 0 {
		return
	}
	shots := a.screenshotQueue
	a.screenshotQueue = nil

	frame := captureFrame(screen)
	for _, s := range shots {
		if err := saveShot(a.ScreenshotDir, s, frame); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[escape] screenshot %q: %v\n", s.label, err)
		}
	}
}

// captureFrame copies screen into an RGBA image. Ebitengine pixels and
// image.RGBA are both alpha-premultiplied, so the bytes copy straight over.
func captureFrame(screen *ebiten.Image) *image.RGBA {
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	return img
}

// saveShot writes img under dir, creating dir if needed.
func saveShot(dir string, s shot, img image.Image) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return os.WriteFile(filepath.Join(dir, s.fileName()), buf.Bytes(), 0o644)
}

// slug lowercases label, keeps ASCII letters and digits, and turns every
// other run of characters into a single dash. Empty results become "frame".
func slug(label string) string {
	var b strings.Builder
	gap := false
	for _, r := range strings.ToLower(label) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if gap && b.Len() > 0 {
				b.WriteByte('-')
			}
			gap = false
			b.WriteRune(r)
			continue
		}
		gap = true
	}
	if b.Len() == 0 {
		return "frame"
	}
	return b.String()
}
