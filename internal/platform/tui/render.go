package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixelpong/internal/core"
	"github.com/vovakirdan/pixelpong/internal/render"
)

// RenderFrame converts the framebuffer to a styled string. Each terminal
// cell shows two vertically stacked pixels through the upper-half-block
// rune: the glyph color is the top pixel, the cell background the bottom
// one. Runs of identical pixel pairs are grouped to keep the ANSI output
// small.
func RenderFrame(fb *render.Framebuffer) string {
	w, h := fb.Width(), fb.Height()
	rows := h / 2
	if w <= 0 || rows <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(w*rows*24 + rows)

	for cy := 0; cy < rows; cy++ {
		if cy > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < w {
			top := fb.At(x, cy*2)
			bottom := fb.At(x, cy*2+1)

			n := 1
			for x+n < w && fb.At(x+n, cy*2) == top && fb.At(x+n, cy*2+1) == bottom {
				n++
			}

			style := lipgloss.NewStyle().
				Foreground(hexColor(top)).
				Background(hexColor(bottom))
			sb.WriteString(style.Render(strings.Repeat("▀", n)))
			x += n
		}
	}
	return sb.String()
}

// hexColor converts a packed BGRX pixel to a truecolor lipgloss color.
func hexColor(c core.Color) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B()))
}
