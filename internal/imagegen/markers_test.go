// ABOUTME: Tests for marker glyph rendering
// ABOUTME: Checks sizes, transparency, diagonal coverage and ring shape
package imagegen

import (
	"image"
	"image/color"
	"testing"
)

func TestStrokeWidth(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{100, 8},
		{48, 5},
		{12, 5},
		{240, 20},
	}

	for _, tt := range tests {
		if got := StrokeWidth(tt.size); got != tt.want {
			t.Errorf("StrokeWidth(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestXMarker(t *testing.T) {
	img := XMarker(100, color.RGBA{235, 65, 65, 255})

	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("expected 100x100, got %dx%d", b.Dx(), b.Dy())
	}

	corners := [][2]int{{0, 0}, {99, 0}, {0, 99}, {99, 99}}
	for _, c := range corners {
		if a := img.RGBAAt(c[0], c[1]).A; a != 0 {
			t.Errorf("corner %v alpha = %d, want 0", c, a)
		}
	}

	for i := 20; i <= 80; i++ {
		if a := img.RGBAAt(i, i).A; a == 0 {
			t.Errorf("main diagonal pixel (%d,%d) is transparent", i, i)
		}
		if a := img.RGBAAt(i, 99-i).A; a == 0 {
			t.Errorf("anti-diagonal pixel (%d,%d) is transparent", i, 99-i)
		}
	}

	// The stroke core carries the requested color
	center := img.RGBAAt(50, 50)
	if center.A != 255 || center.R != 235 || center.G != 65 || center.B != 65 {
		t.Errorf("center pixel = %+v, want opaque (235,65,65)", center)
	}
}

func TestXMarkerGlowOutsideStroke(t *testing.T) {
	img := XMarker(100, color.RGBA{235, 65, 65, 255})

	// A few pixels off the diagonal the glow is visible but translucent
	p := img.RGBAAt(50, 58)
	if p.A == 0 || p.A == 255 {
		t.Errorf("expected translucent glow at (50,58), alpha = %d", p.A)
	}
}

func TestOMarker(t *testing.T) {
	img := OMarker(100, color.RGBA{65, 105, 225, 255})

	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("expected 100x100, got %dx%d", b.Dx(), b.Dy())
	}

	// Ring is unfilled in the middle and transparent in the corners
	if a := img.RGBAAt(50, 50).A; a != 0 {
		t.Errorf("center alpha = %d, want 0", a)
	}
	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}

	// The ring band: outer radius 35, width 8, so x in (15, 23) on the midline
	for _, x := range []int{17, 19, 21} {
		p := img.RGBAAt(x, 50)
		if p.A != 255 {
			t.Errorf("ring pixel (%d,50) alpha = %d, want 255", x, p.A)
		}
	}
	if p := img.RGBAAt(19, 50); p.B != 225 {
		t.Errorf("ring color = %+v, want blue 225", p)
	}
}

func TestMarkersDeterministic(t *testing.T) {
	a := XMarker(64, XColor)
	b := XMarker(64, XColor)
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("pixel byte %d differs between runs", i)
		}
	}
}

func TestBufferTypes(t *testing.T) {
	col := color.RGBA{255, 0, 0, 255}
	var (
		x   *image.RGBA  = XMarker(32, col)
		o   *image.RGBA  = OMarker(32, col)
		bg  *image.RGBA  = Background(40, 20)
		btn *image.NRGBA = Button(ButtonStyle{Width: 40, Height: 20, Fill: col, Outline: col})
	)
	if x == nil || o == nil || bg == nil || btn == nil {
		t.Fatal("expected every renderer to return a buffer")
	}
}
