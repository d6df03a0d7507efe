package ui2d

// Color represents an RGBA color with float components (0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Predefined colors for UI theming.
var (
	ColorTransparent = Color{0, 0, 0, 0}
	ColorWhite       = Color{1, 1, 1, 1}
	ColorBlack       = Color{0, 0, 0, 1}

	// Clear color behind every panel and the 3D viewport.
	ColorBackground = Color{0.1, 0.1, 0.1, 1}

	ColorBarBg        = Color{0.14, 0.14, 0.16, 1}
	ColorBarBorder    = Color{0.24, 0.24, 0.28, 1}
	ColorPopupBg      = Color{0.11, 0.11, 0.13, 0.98}
	ColorButtonNormal = Color{0.2, 0.2, 0.24, 1}
	ColorButtonHover  = Color{0.28, 0.28, 0.34, 1}
	ColorButtonActive = Color{0.16, 0.36, 0.56, 1}
	ColorText         = Color{0.9, 0.9, 0.9, 1}
	ColorTextDim      = Color{0.55, 0.55, 0.6, 1}
)

// RGB creates a color from 8-bit RGB values with full alpha.
func RGB(r, g, b uint8) Color {
	return Color{
		R: float32(r) / 255.0,
		G: float32(g) / 255.0,
		B: float32(b) / 255.0,
		A: 1.0,
	}
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
