// ABOUTME: SVG drawing of the marker, background and button shapes
// ABOUTME: Emits the same geometry as the raster images using svgo
package vectorgen

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/tictactech/assetgen/internal/imagegen"
)

const (
	// glowWidth is added to the stroke width for the translucent halo
	glowWidth   = 6
	glowOpacity = 0.3

	gridSpacing = 20
)

// Hex formats c as #rrggbb
func Hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func strokeStyle(c color.RGBA, width int, opacity float64) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d;stroke-linecap:round;stroke-opacity:%.2f",
		Hex(c), width, opacity)
}

// XMarker writes the X glyph as two round-capped diagonals over a halo
func XMarker(w io.Writer, size int, col color.RGBA) {
	pad := int(float64(size) * 0.2)
	far := size - pad
	width := imagegen.StrokeWidth(size)

	canvas := svg.New(w)
	canvas.Startview(size, size, 0, 0, size, size)
	for _, layer := range []struct {
		width   int
		opacity float64
	}{
		{width + glowWidth, glowOpacity},
		{width, 1},
	} {
		canvas.Gstyle(strokeStyle(col, layer.width, layer.opacity))
		canvas.Line(pad, pad, far, far)
		canvas.Line(far, pad, pad, far)
		canvas.Gend()
	}
	canvas.End()
}

// OMarker writes the O glyph as a ring inside the padded box over a halo
func OMarker(w io.Writer, size int, col color.RGBA) {
	pad := int(float64(size) * 0.15)
	width := imagegen.StrokeWidth(size)
	radius := (size-2*pad)/2 - width/2
	center := size / 2

	canvas := svg.New(w)
	canvas.Startview(size, size, 0, 0, size, size)
	canvas.Circle(center, center, radius, strokeStyle(col, width+glowWidth, glowOpacity))
	canvas.Circle(center, center, radius, strokeStyle(col, width, 1))
	canvas.End()
}

// Background writes the dark board with grid lines and a vignette overlay
func Background(w io.Writer, width, height int) {
	base := color.RGBA{25, 25, 40, 255}
	grid := color.RGBA{33, 33, 52, 255}

	canvas := svg.New(w)
	canvas.Startview(width, height, 0, 0, width, height)
	canvas.Def()
	canvas.RadialGradient("vignette", 50, 50, 71, 50, 50, []svg.Offcolor{
		{Offset: 0, Color: "#000000", Opacity: 0},
		{Offset: 70, Color: "#000000", Opacity: 0},
		{Offset: 100, Color: "#000000", Opacity: 0.7},
	})
	canvas.DefEnd()

	canvas.Rect(0, 0, width, height, "fill:"+Hex(base))
	canvas.Gstyle(fmt.Sprintf("stroke:%s;stroke-width:1", Hex(grid)))
	for x := 0; x < width; x += gridSpacing {
		canvas.Line(x, 0, x, height)
	}
	for y := 0; y < height; y += gridSpacing {
		canvas.Line(0, y, width, y)
	}
	canvas.Gend()
	canvas.Rect(0, 0, width, height, "fill:url(#vignette)")
	canvas.End()
}

// Button writes a rounded rectangle with an outline and a top highlight
func Button(w io.Writer, s imagegen.ButtonStyle) {
	r := s.Radius
	if r == 0 {
		r = s.Height / 3
	}

	canvas := svg.New(w)
	canvas.Startview(s.Width, s.Height, 0, 0, s.Width, s.Height)
	canvas.Def()
	canvas.LinearGradient("highlight", 0, 0, 0, 100, []svg.Offcolor{
		{Offset: 0, Color: "#ffffff", Opacity: 0.39},
		{Offset: 100, Color: "#ffffff", Opacity: 0},
	})
	canvas.DefEnd()

	canvas.Roundrect(1, 1, s.Width-2, s.Height-2, r, r,
		fmt.Sprintf("fill:%s;stroke:%s;stroke-width:2", Hex(s.Fill), Hex(s.Outline)))
	band := s.Height/2 - 2
	hr := r
	if hr > band/2 {
		hr = band / 2
	}
	canvas.Roundrect(2, 2, s.Width-4, band, hr, hr, "fill:url(#highlight)")
	canvas.End()
}
