package ui2d

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	atlasCols  = 16
	firstGlyph = 32
	lastGlyph  = 126
)

// Font is a fixed-width bitmap font baked into a single-channel atlas.
// The atlas also carries an opaque cell used for solid fills, so text
// and rectangles share one texture.
type Font struct {
	atlas   *image.Alpha
	advance int
	height  int
	cellW   int
	cellH   int
}

// NewFont bakes the 7x13 basic font.
func NewFont() *Font {
	face := basicfont.Face7x13
	m := face.Metrics()
	f := &Font{
		advance: face.Advance,
		height:  m.Height.Ceil(),
	}
	f.cellW = f.advance + 1
	f.cellH = f.height + 1

	glyphRows := (lastGlyph - firstGlyph + atlasCols) / atlasCols
	f.atlas = image.NewAlpha(image.Rect(0, 0, atlasCols*f.cellW, (glyphRows+1)*f.cellH))

	d := font.Drawer{Dst: f.atlas, Src: image.Opaque, Face: face}
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		x, y := f.cell(r)
		d.Dot = fixed.P(x, y+m.Ascent.Ceil())
		d.DrawString(string(r))
	}

	wx, wy := f.whiteCell()
	draw.Draw(f.atlas, image.Rect(wx, wy, wx+f.cellW, wy+f.cellH), image.Opaque, image.Point{}, draw.Src)
	return f
}

func (f *Font) cell(r rune) (x, y int) {
	i := int(r - firstGlyph)
	return (i % atlasCols) * f.cellW, (i / atlasCols) * f.cellH
}

func (f *Font) whiteCell() (x, y int) {
	return 0, f.atlas.Bounds().Dy() - f.cellH
}

// Atlas returns the baked coverage image.
func (f *Font) Atlas() *image.Alpha { return f.atlas }

// GlyphSize returns the unscaled glyph cell drawn per character.
func (f *Font) GlyphSize() (w, h int) { return f.advance, f.height }

// GlyphUV returns the atlas coordinates of r. Runes outside printable
// ASCII render as '?'.
func (f *Font) GlyphUV(r rune) (u0, v0, u1, v1 float32) {
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	x, y := f.cell(r)
	b := f.atlas.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	return float32(x) / w, float32(y) / h, float32(x+f.advance) / w, float32(y+f.height) / h
}

// WhiteUV returns a coordinate inside the opaque cell.
func (f *Font) WhiteUV() (u, v float32) {
	x, y := f.whiteCell()
	b := f.atlas.Bounds()
	return (float32(x) + float32(f.cellW)/2) / float32(b.Dx()), (float32(y) + float32(f.cellH)/2) / float32(b.Dy())
}

// MeasureText returns the size of a single line of text.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	n := 0
	for range text {
		n++
	}
	return float32(n*f.advance) * scale, float32(f.height) * scale
}
