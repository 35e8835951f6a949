package game

import (
	"math"

	"github.com/vovakirdan/pixelpong/internal/core"
	"github.com/vovakirdan/pixelpong/internal/render"
)

// World draws the animated arena background: a slowly pulsing base color,
// drifting horizontal bands, and a vertical light sweep down the center line
// during play. It keeps its own clock so menus can keep animating while the
// simulation is frozen.
type World struct {
	totalTime float64
}

// Advance moves the background clock forward.
func (w *World) Advance(dt float64) {
	w.totalTime += dt
}

func (w *World) drawBackground(fb *render.Framebuffer) {
	pulse := 0.5 + 0.5*math.Sin(w.totalTime*0.5)
	brightness := 0.4 + 0.4*pulse

	base := core.RGB(0x30, 0x30, 0x50)
	fb.Clear(base.Scale(brightness))
}

func (w *World) drawBands(fb *render.Framebuffer) {
	offset := math.Sin(w.totalTime*0.5) * 20.0
	for i := 0; i <= 10; i++ {
		band := core.Color(0x00202030)
		if i%2 == 0 {
			band = 0x00282838
		}
		fb.FillRect(0, float64(i-5)*20.0+offset, 60.0, 10.0, band)
	}
}

func (w *World) drawLightSweep(fb *render.Framebuffer) {
	pulse := 0.5 + 0.5*math.Sin(w.totalTime*2.0)
	intensity := uint8(80 + 100*pulse)
	grid := core.RGB(intensity, intensity, 255)

	for y := -50; y <= 50; y += 10 {
		fb.FillRect(0, float64(y), 0.5, 4.0, grid)
	}
}

// Draw renders the full arena background including the center light sweep.
func (w *World) Draw(fb *render.Framebuffer) {
	w.drawBackground(fb)
	w.drawBands(fb)
	w.drawLightSweep(fb)
}

// DrawCalm renders the background without the light sweep, used behind
// menus and overlays.
func (w *World) DrawCalm(fb *render.Framebuffer) {
	w.drawBackground(fb)
	w.drawBands(fb)
}
