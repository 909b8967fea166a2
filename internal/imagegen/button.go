// ABOUTME: Button skin rendering
// ABOUTME: Rounded rectangle with outline, top highlight band and a light blur
package imagegen

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

const (
	outlineWidth     = 2
	highlightShare   = 0.5
	highlightOpacity = 100
	buttonBlurSigma  = 0.5
)

// ButtonStyle configures a button skin
type ButtonStyle struct {
	Width   int
	Height  int
	Radius  int // corner radius, Height/3 when zero
	Fill    color.RGBA
	Outline color.RGBA
}

func (s ButtonStyle) radius() int {
	if s.Radius > 0 {
		return s.Radius
	}
	return s.Height / 3
}

// Button renders a button skin
func Button(s ButtonStyle) *image.NRGBA {
	w, h := float64(s.Width), float64(s.Height)
	r := s.radius()

	dc := gg.NewContext(s.Width, s.Height)
	dc.SetColor(opaque(s.Fill))
	dc.DrawRoundedRectangle(0, 0, w, h, float64(r))
	dc.Fill()

	// outline stays inside the canvas
	inset := float64(outlineWidth) / 2
	dc.SetColor(opaque(s.Outline))
	dc.SetLineWidth(outlineWidth)
	dc.DrawRoundedRectangle(inset, inset, w-2*inset, h-2*inset, math.Max(0, float64(r)-inset))
	dc.Stroke()

	img := image.NewRGBA(image.Rect(0, 0, s.Width, s.Height))
	draw.Draw(img, img.Bounds(), dc.Image(), image.Point{}, draw.Src)

	addHighlight(img, r)

	return imaging.Blur(img, buttonBlurSigma)
}

// addHighlight lightens the top rows with a white band whose opacity fades
// toward the middle, inset to follow the rounded corners
func addHighlight(img *image.RGBA, r int) {
	width := img.Bounds().Dx()
	band := int(float64(img.Bounds().Dy()) * highlightShare)

	for y := 0; y < band; y++ {
		alpha := int(highlightOpacity * (1 - float64(y)/float64(band)))
		if alpha <= 0 {
			continue
		}

		dx := cornerInset(r, y)
		if width-2*dx <= 0 {
			continue
		}

		row := image.Rect(dx, y, width-dx, y+1)
		white := image.NewUniform(color.NRGBA{R: 255, G: 255, B: 255, A: uint8(alpha)})
		draw.Draw(img, row, white, image.Point{}, draw.Over)
	}
}

// cornerInset is how far the rounded corner of radius r cuts into row y
func cornerInset(r, y int) int {
	if y >= r {
		return 0
	}
	d := r - y
	return r - int(math.Sqrt(float64(r*r-d*d)))
}
