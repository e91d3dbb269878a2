package canvas

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	overlayFadeSeconds  = 0.35
	overlayScaleSeconds = 0.5
	overlayStartScale   = 1.8
)

// overlay animates the end-of-game banner. It fades in while shrinking from
// overlayStartScale to its natural size. Call update once per frame.
type overlay struct {
	Alpha float64
	Scale float64

	fade    *gween.Tween
	scale   *gween.Tween
	visible bool
	done    bool
}

// show starts the entrance animation from the beginning.
func (o *overlay) show() {
	o.visible = true
	o.done = false
	o.Alpha = 0
	o.Scale = overlayStartScale
	o.fade = gween.New(0, 1, overlayFadeSeconds, ease.OutQuad)
	o.scale = gween.New(overlayStartScale, 1, overlayScaleSeconds, ease.OutBack)
}

// hide removes the banner immediately.
func (o *overlay) hide() {
	*o = overlay{}
}

// update advances both tweens by dt seconds and writes their values.
func (o *overlay) update(dt float32) {
	if !o.visible || o.done {
		return
	}
	a, fadeDone := o.fade.Update(dt)
	s, scaleDone := o.scale.Update(dt)
	o.Alpha = float64(a)
	o.Scale = float64(s)
	o.done = fadeDone && scaleDone
}

// Visible reports whether the banner should be drawn.
func (o *overlay) Visible() bool {
	return o.visible
}

// Done reports whether the entrance animation has finished.
func (o *overlay) Done() bool {
	return o.done
}
