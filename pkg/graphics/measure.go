package graphics

import (
	"image"

	"golang.org/x/image/font"
)

// TextBounds is the box a string covers when drawn with its dot at the origin.
// Min is usually negative in Y since glyphs rise above the baseline.
type TextBounds struct {
	Min           image.Point
	Width, Height int
}

// MeasureText returns the ink bounds of s. Faces that report no ink (blank
// glyphs, faces without glyph bounds) are measured by advance and line height.
func MeasureText(face font.Face, s string) TextBounds {
	if b, ok := inkBounds(face, s); ok {
		return b
	}
	return advanceBounds(face, s)
}

func inkBounds(face font.Face, s string) (TextBounds, bool) {
	r, _ := font.BoundString(face, s)
	minX, minY := r.Min.X.Floor(), r.Min.Y.Floor()
	maxX, maxY := r.Max.X.Ceil(), r.Max.Y.Ceil()
	if maxX <= minX || maxY <= minY {
		return TextBounds{}, false
	}
	return TextBounds{
		Min:    image.Pt(minX, minY),
		Width:  maxX - minX,
		Height: maxY - minY,
	}, true
}

func advanceBounds(face font.Face, s string) TextBounds {
	m := face.Metrics()
	return TextBounds{
		Min:    image.Pt(0, -m.Ascent.Ceil()),
		Width:  font.MeasureString(face, s).Ceil(),
		Height: m.Height.Ceil(),
	}
}
