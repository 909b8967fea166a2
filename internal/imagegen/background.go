// ABOUTME: Procedural game background
// ABOUTME: Radial gradient, periodic grid and vignette computed per pixel
package imagegen

import (
	"image"
	"image/color"
	"math"
)

const (
	gridSpacing = 20

	vignetteStart    = 0.7
	vignetteRange    = 0.3
	vignetteStrength = 0.7
)

// Background renders an opaque w×h background
func Background(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	// Elegant dark radial gradient
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := radialDistance(x, y, w, h)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(clampInt(int(25-10*d), 10, 40)),
				G: uint8(clampInt(int(25-10*d), 10, 40)),
				B: uint8(clampInt(int(40-15*d), 25, 60)),
				A: 255,
			})
		}
	}

	// Subtle grid, columns first then rows, so crossings are lit twice
	for x := 0; x < w; x += gridSpacing {
		for y := 0; y < h; y++ {
			brighten(img, x, y)
		}
	}
	for y := 0; y < h; y += gridSpacing {
		for x := 0; x < w; x++ {
			brighten(img, x, y)
		}
	}

	// Vignette near the edges
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			d := radialDistance(x, y, w, h)
			if d <= vignetteStart {
				continue
			}
			factor := math.Max(0, math.Min(1, (d-vignetteStart)/vignetteRange))
			keep := 1 - factor*vignetteStrength
			c := img.RGBAAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(float64(c.R) * keep),
				G: uint8(float64(c.G) * keep),
				B: uint8(float64(c.B) * keep),
				A: 255,
			})
		}
	}

	return img
}

// radialDistance is the distance from the center normalized so the edge
// midpoints sit at 1
func radialDistance(x, y, w, h int) float64 {
	dx := 2 * (float64(x) - float64(w)/2) / float64(w)
	dy := 2 * (float64(y) - float64(h)/2) / float64(h)
	return math.Sqrt(dx*dx + dy*dy)
}

func brighten(img *image.RGBA, x, y int) {
	c := img.RGBAAt(x, y)
	img.SetRGBA(x, y, color.RGBA{
		R: uint8(clampInt(int(c.R)+8, 0, 255)),
		G: uint8(clampInt(int(c.G)+8, 0, 255)),
		B: uint8(clampInt(int(c.B)+12, 0, 255)),
		A: 255,
	})
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
