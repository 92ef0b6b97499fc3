package ui2d

import "image/color"

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Overlay palette.
var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorWhite       = Color{1, 1, 1, 1}

	ColorPanelBg     = Color{0.97, 0.96, 0.92, 0.88}
	ColorPanelBorder = Color{1, 1, 1, 0.35}
	ColorText        = Color{0.12, 0.13, 0.11, 1}
	ColorTextDim     = Color{0.35, 0.37, 0.33, 1}
	ColorChromeText  = Color{0.98, 0.98, 0.95, 1}
	ColorLink        = Color{0.16, 0.42, 0.28, 1}
	ColorLinkActive  = Color{1, 0.93, 0.62, 1}
	ColorButton      = Color{0.12, 0.13, 0.11, 0.12}
)

// RGBA creates a color from 8-bit RGBA values (0-255).
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: float32(a) / 255.0,
	}
}

// RGB creates an opaque color from float components.
func RGB(c [3]float32) Color {
	return Color{c[0], c[1], c[2], 1}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// Lighten returns a lighter version of the color.
func (c Color) Lighten(factor float32) Color {
	return Color{
		R: c.R + (1-c.R)*factor,
		G: c.G + (1-c.G)*factor,
		B: c.B + (1-c.B)*factor,
		A: c.A,
	}
}

// NRGBA converts to a non-premultiplied 8-bit color for image drawing.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A),
	}
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
