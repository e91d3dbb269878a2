package canvas

import "testing"

func TestOverlayHiddenByDefault(t *testing.T) {
	var o overlay
	o.update(1)
	if o.Visible() || o.Done() {
		t.Error("zero overlay should be hidden and idle")
	}
}

func TestOverlayShowAnimates(t *testing.T) {
	var o overlay
	o.show()
	if !o.Visible() {
		t.Fatal("show should make the overlay visible")
	}
	if o.Alpha != 0 || o.Scale != overlayStartScale {
		t.Errorf("start alpha=%v scale=%v, want 0 and %v", o.Alpha, o.Scale, overlayStartScale)
	}

	o.update(0.1)
	if o.Alpha <= 0 || o.Alpha >= 1 {
		t.Errorf("alpha after 0.1s = %v, want in (0, 1)", o.Alpha)
	}
	if o.Scale >= overlayStartScale {
		t.Errorf("scale after 0.1s = %v, want below %v", o.Scale, overlayStartScale)
	}
	if o.Done() {
		t.Error("animation should still be running")
	}

	// Fade ends first; the scale tween keeps running.
	o.update(0.3)
	if o.Alpha != 1 {
		t.Errorf("alpha after fade = %v, want 1", o.Alpha)
	}
	if o.Done() {
		t.Error("scale tween should still be running")
	}

	o.update(0.2)
	if !o.Done() || o.Scale != 1 {
		t.Errorf("after 0.6s done=%v scale=%v, want done at 1", o.Done(), o.Scale)
	}
}

func TestOverlayHideResets(t *testing.T) {
	var o overlay
	o.show()
	o.update(1)
	o.hide()
	if o.Visible() || o.Done() || o.Alpha != 0 {
		t.Errorf("after hide: visible=%v done=%v alpha=%v", o.Visible(), o.Done(), o.Alpha)
	}
	o.show()
	if o.Done() || o.Alpha != 0 {
		t.Error("show should restart the animation")
	}
}
