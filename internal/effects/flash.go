package effects

import (
	"github.com/vovakirdan/pixelpong/internal/core"
	"github.com/vovakirdan/pixelpong/internal/render"
)

const flashFadeSpeed = 3.0 // alpha per second

// FlashEffect washes the whole field white, then fades out linearly.
type FlashEffect struct {
	alpha  float64
	active bool
}

// Start resets the flash to full brightness.
func (f *FlashEffect) Start() {
	f.alpha = 1
	f.active = true
}

// Tick fades the flash; it deactivates once fully transparent.
func (f *FlashEffect) Tick(dt float64) {
	if !f.active {
		return
	}
	f.alpha -= dt * flashFadeSpeed
	if f.alpha <= 0 {
		f.alpha = 0
		f.active = false
	}
}

// Stop cancels the flash immediately.
func (f *FlashEffect) Stop() {
	f.alpha = 0
	f.active = false
}

// Finished reports whether the flash has fully faded.
func (f *FlashEffect) Finished() bool { return !f.active }

// Alpha returns the current fade value in [0, 1].
func (f *FlashEffect) Alpha() float64 { return f.alpha }

// Render overlays the field with a brightness derived from the remaining
// alpha. The overlay rectangle deliberately exceeds the field bounds so the
// whole viewport is covered.
func (f *FlashEffect) Render(fb *render.Framebuffer) {
	if !f.active {
		return
	}
	v := uint8(255 * (0.3 + 0.7*core.ClampF(f.alpha, 0, 1)))
	fb.FillRect(0, 0, 100, 100, core.RGB(v, v, v))
}
