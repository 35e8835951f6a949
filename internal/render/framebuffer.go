// Package render is a software rasterizer drawing into a packed BGRX pixel
// buffer. Shapes are given in virtual coordinates (y in [-50, 50], centered
// on the viewport); the framebuffer maps them to pixels based on the current
// viewport height, so callers never deal with resolution.
package render

import (
	"math"

	"github.com/vovakirdan/pixelpong/internal/core"
)

// Framebuffer is a top-down row-major 32-bit pixel buffer. A zero-sized
// buffer (minimized viewport) is valid: every draw call becomes a no-op.
type Framebuffer struct {
	width  int
	height int
	pix    []uint32
}

// New creates a framebuffer with the given pixel dimensions.
func New(width, height int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(width, height)
	return fb
}

// Width returns the buffer width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the buffer height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// Pix exposes the raw pixel storage for the presentation layer to blit.
// Row-major, top-down, one uint32 BGRX value per pixel.
func (fb *Framebuffer) Pix() []uint32 { return fb.pix }

// Resize reallocates the buffer for a new viewport size. Non-positive
// dimensions leave the buffer unallocated.
func (fb *Framebuffer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		fb.width, fb.height = 0, 0
		fb.pix = nil
		return
	}
	if width == fb.width && height == fb.height {
		return
	}
	fb.width = width
	fb.height = height
	fb.pix = make([]uint32, width*height)
}

// At returns the pixel at (x, y), or zero when out of bounds.
func (fb *Framebuffer) At(x, y int) core.Color {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return 0
	}
	return core.Color(fb.pix[y*fb.width+x])
}

// Clear fills the entire buffer with one color.
func (fb *Framebuffer) Clear(color core.Color) {
	if fb.pix == nil {
		return
	}
	c := uint32(color)
	for i := range fb.pix {
		fb.pix[i] = c
	}
}

// fillRectPx writes the half-open pixel rectangle [x0,x1) x [y0,y1),
// clipped to the buffer bounds.
func (fb *Framebuffer) fillRectPx(x0, y0, x1, y1 int, color core.Color) {
	if fb.pix == nil {
		return
	}
	x0 = core.Clamp(x0, 0, fb.width)
	x1 = core.Clamp(x1, 0, fb.width)
	y0 = core.Clamp(y0, 0, fb.height)
	y1 = core.Clamp(y1, 0, fb.height)

	c := uint32(color)
	for y := y0; y < y1; y++ {
		row := fb.pix[y*fb.width : (y+1)*fb.width]
		for x := x0; x < x1; x++ {
			row[x] = c
		}
	}
}

// FillRect fills a rectangle centered at (cx, cy) in virtual units with the
// given half-extents. The virtual-to-pixel scale is height*0.01, so a span
// of 100 virtual units always covers the full viewport height.
func (fb *Framebuffer) FillRect(cx, cy, halfW, halfH float64, color core.Color) {
	if fb.width == 0 || fb.height == 0 {
		return
	}
	scale := float64(fb.height) * 0.01
	cx *= scale
	cy *= scale
	halfW *= scale
	halfH *= scale
	cx += float64(fb.width) * 0.5
	cy += float64(fb.height) * 0.5

	x0 := int(math.Round(cx - halfW))
	x1 := int(math.Round(cx + halfW))
	y0 := int(math.Round(cy - halfH))
	y1 := int(math.Round(cy + halfH))

	fb.fillRectPx(x0, y0, x1, y1, color)
}
