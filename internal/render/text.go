package render

import "github.com/vovakirdan/pixelpong/internal/core"

// DrawGlyph renders one 5x7 glyph centered at (cx, cy) in virtual units.
// Each set bit becomes a filled block of side pixelSize, so text renders as
// chunky blocks rather than antialiased strokes.
func (fb *Framebuffer) DrawGlyph(c byte, cx, cy, pixelSize float64, color core.Color) {
	if fb.width == 0 || fb.height == 0 {
		return
	}
	glyph := &font5x7[glyphIndex(c)]

	totalW := glyphCols * pixelSize
	totalH := glyphRows * pixelSize
	startX := cx - totalW*0.5 + pixelSize*0.5
	startY := cy - totalH*0.5 + pixelSize*0.5

	for ry := 0; ry < glyphRows; ry++ {
		row := glyph[ry]
		for rx := 0; rx < glyphCols; rx++ {
			// bits read high-to-low so the mask literal reads left-to-right
			if (row>>(glyphCols-1-rx))&1 == 0 {
				continue
			}
			px := startX + float64(rx)*pixelSize
			py := startY + float64(ry)*pixelSize
			fb.FillRect(px, py, pixelSize*0.5, pixelSize*0.5, color)
		}
	}
}

// DrawText renders a string horizontally centered at (cx, cy). Total width
// is len(s) glyph widths plus (len(s)-1) spacings; unsupported characters
// render blank.
func (fb *Framebuffer) DrawText(s string, cx, cy, pixelSize, spacing float64, color core.Color) {
	if len(s) == 0 {
		return
	}
	glyphW := glyphCols * pixelSize
	total := float64(len(s))*glyphW + float64(len(s)-1)*spacing
	startX := cx - total*0.5 + glyphW*0.5
	for i := 0; i < len(s); i++ {
		gx := startX + float64(i)*(glyphW+spacing)
		fb.DrawGlyph(s[i], gx, cy, pixelSize, color)
	}
}
