package core

// Color is a packed 32-bit BGRX pixel value (blue in the low byte, the top
// byte unused), matching the framebuffer's in-memory layout.
type Color uint32

// RGB packs three 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// Scale multiplies each channel by a, clamped to [0, 1].
func (c Color) Scale(a float64) Color {
	a = ClampF(a, 0, 1)
	return RGB(
		uint8(float64(c.R())*a),
		uint8(float64(c.G())*a),
		uint8(float64(c.B())*a),
	)
}

// Shared palette for game elements.
const (
	ColorBall        Color = 0x0000FFFF
	ColorLeftPaddle  Color = 0x00FF6B6B
	ColorRightPaddle Color = 0x004DABF7
	ColorScore       Color = 0x00BBFFBB
	ColorMenuActive  Color = 0x00FFCC66
	ColorMenuIdle    Color = 0x00666666
	ColorMenuPanel   Color = 0x00102030
	ColorWhite       Color = 0x00FFFFFF
	ColorValueText   Color = 0x00AAAAAA
)
