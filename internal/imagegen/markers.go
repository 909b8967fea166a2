// ABOUTME: X and O marker glyph rendering
// ABOUTME: Strokes the glyph with gg and layers a blurred glow beneath it
package imagegen

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

const (
	// glowSigma is the gaussian sigma of the glow layer
	glowSigma = 3.0
	// glowOpacity scales the glow layer's alpha
	glowOpacity = 0.6

	xPadding = 0.2
	oPadding = 0.15
)

// StrokeWidth is the marker line width for a canvas of the given size
func StrokeWidth(size int) int {
	w := size / 12
	if w < 5 {
		w = 5
	}
	return w
}

// XMarker renders two diagonal round-capped strokes with a glow
func XMarker(size int, col color.RGBA) *image.RGBA {
	pad := float64(int(float64(size) * xPadding))
	far := float64(size) - pad

	dc := gg.NewContext(size, size)
	dc.SetColor(opaque(col))
	dc.SetLineWidth(float64(StrokeWidth(size)))
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	dc.DrawLine(pad, pad, far, far)
	dc.Stroke()
	dc.DrawLine(far, pad, pad, far)
	dc.Stroke()

	return withGlow(dc.Image())
}

// OMarker renders an unfilled ring inside the padded box with a glow
func OMarker(size int, col color.RGBA) *image.RGBA {
	pad := float64(int(float64(size) * oPadding))
	width := float64(StrokeWidth(size))
	center := float64(size) / 2
	// the outline sits inside the padded box like an inset border
	radius := (float64(size)-2*pad)/2 - width/2

	dc := gg.NewContext(size, size)
	dc.SetColor(opaque(col))
	dc.SetLineWidth(width)
	dc.DrawCircle(center, center, radius)
	dc.Stroke()

	return withGlow(dc.Image())
}

// withGlow composites a blurred, faded copy of sharp beneath it on a
// transparent canvas
func withGlow(sharp image.Image) *image.RGBA {
	bounds := sharp.Bounds()
	glow := imaging.Blur(sharp, glowSigma)

	out := image.NewRGBA(bounds)
	fade := image.NewUniform(color.Alpha{A: uint8(255 * glowOpacity)})
	draw.DrawMask(out, bounds, glow, glow.Bounds().Min, fade, image.Point{}, draw.Over)
	draw.Draw(out, bounds, sharp, bounds.Min, draw.Over)
	return out
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 255
	return c
}
