// ABOUTME: Tests for the procedural background
// ABOUTME: Checks gradient bounds, grid lines and vignette darkening
package imagegen

import (
	"testing"
)

func TestBackgroundSize(t *testing.T) {
	img := Background(800, 600)
	if b := img.Bounds(); b.Dx() != 800 || b.Dy() != 600 {
		t.Fatalf("expected 800x600, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestBackgroundOpaque(t *testing.T) {
	img := Background(120, 80)
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("pixel %d alpha = %d, want 255", i/4, img.Pix[i])
		}
	}
}

func TestBackgroundCenter(t *testing.T) {
	img := Background(800, 600)

	// (401,301) is off the grid and almost at the center: d ~ 0
	c := img.RGBAAt(401, 301)
	if c.R != 24 || c.G != 24 || c.B != 39 {
		t.Errorf("center = %+v, want (24,24,39)", c)
	}
}

func TestBackgroundGrid(t *testing.T) {
	img := Background(800, 600)

	off := img.RGBAAt(401, 301)
	col := img.RGBAAt(400, 301)
	row := img.RGBAAt(401, 300)
	cross := img.RGBAAt(400, 300)

	if int(col.R)-int(off.R) != 8 || int(col.B)-int(off.B) != 12 {
		t.Errorf("grid column = %+v, off-grid = %+v", col, off)
	}
	if int(row.G)-int(off.G) != 8 {
		t.Errorf("grid row = %+v, off-grid = %+v", row, off)
	}
	// crossings are brightened by both passes
	if int(cross.R)-int(off.R) < 16 || int(cross.B)-int(off.B) < 24 {
		t.Errorf("grid crossing = %+v, off-grid = %+v", cross, off)
	}
}

func TestBackgroundVignette(t *testing.T) {
	img := Background(800, 600)

	// corner distance is sqrt(2) > 1, full vignette: values scaled by 0.3
	corner := img.RGBAAt(1, 1)
	if corner.R > 4 || corner.B > 10 {
		t.Errorf("corner not darkened: %+v", corner)
	}

	// Along the horizontal midline x=401..., d < 0.7 is untouched
	inner := img.RGBAAt(521, 301) // d = 0.3
	if inner.R < 20 {
		t.Errorf("inner pixel unexpectedly dark: %+v", inner)
	}
}

func TestRadialDistance(t *testing.T) {
	if d := radialDistance(400, 300, 800, 600); d != 0 {
		t.Errorf("center distance = %v, want 0", d)
	}
	if d := radialDistance(0, 300, 800, 600); d != 1 {
		t.Errorf("edge midpoint distance = %v, want 1", d)
	}
}
