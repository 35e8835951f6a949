package render

import "github.com/vovakirdan/pixelpong/internal/core"

// segMap holds the lit segments per digit in A,B,C,D,E,F,G order.
var segMap = [10][7]bool{
	{true, true, true, true, true, true, false},    // 0
	{false, true, true, false, false, false, false}, // 1
	{true, true, false, true, true, false, true},   // 2
	{true, true, true, true, false, false, true},   // 3
	{false, true, true, false, false, true, true},  // 4
	{true, false, true, true, false, true, true},   // 5
	{true, false, true, true, true, true, true},    // 6
	{true, true, true, false, false, false, false}, // 7
	{true, true, true, true, true, true, true},     // 8
	{true, true, true, true, false, true, true},    // 9
}

// DrawDigit renders a single seven-segment digit centered at (cx, cy).
// Out-of-range digits draw nothing.
func (fb *Framebuffer) DrawDigit(digit int, cx, cy, size float64, color core.Color) {
	if digit < 0 || digit > 9 {
		return
	}

	segTh := size * 0.5
	vHalfY := size * 2.5
	hHalfX := size * 1.2

	aY := cy - vHalfY + segTh
	gY := cy
	dY := cy + vHalfY - segTh

	topVY := (aY + gY) * 0.5
	botVY := (gY + dY) * 0.5

	leftX := cx - hHalfX
	rightX := cx + hHalfX

	vertHalfY := (vHalfY - segTh) * 0.5

	for i, on := range segMap[digit] {
		if !on {
			continue
		}
		switch i {
		case 0:
			fb.FillRect(cx, aY, hHalfX, segTh, color)
		case 1:
			fb.FillRect(rightX, topVY, segTh, vertHalfY, color)
		case 2:
			fb.FillRect(rightX, botVY, segTh, vertHalfY, color)
		case 3:
			fb.FillRect(cx, dY, hHalfX, segTh, color)
		case 4:
			fb.FillRect(leftX, botVY, segTh, vertHalfY, color)
		case 5:
			fb.FillRect(leftX, topVY, segTh, vertHalfY, color)
		case 6:
			fb.FillRect(cx, gY, hHalfX, segTh, color)
		}
	}
}

// DrawNumber renders an integer as seven-segment digits centered at (x, y),
// with a leading minus bar for negative values.
func (fb *Framebuffer) DrawNumber(number int, x, y, size float64, color core.Color) {
	if fb.width == 0 || fb.height == 0 || fb.pix == nil {
		return
	}

	negative := number < 0
	if negative {
		number = -number
	}

	// digit count without allocating a string
	n := 1
	for v := number; v >= 10; v /= 10 {
		n++
	}

	segTh := size * 0.5
	hHalfX := size * 1.2
	digitWidth := hHalfX*2 + segTh*2
	spacing := size * 0.6
	step := digitWidth + spacing

	startX := x - float64(n-1)*step/2

	div := 1
	for i := 1; i < n; i++ {
		div *= 10
	}
	for i := 0; i < n; i++ {
		d := (number / div) % 10
		cx := startX + float64(i)*step
		fb.DrawDigit(d, cx, y, size, color)
		div /= 10
	}

	if negative {
		fb.FillRect(startX-step, y, digitWidth*0.35, segTh, color)
	}
}
