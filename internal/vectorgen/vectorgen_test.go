// ABOUTME: Tests for SVG source generation
// ABOUTME: Checks documents, the catalog and conversion of the written files
package vectorgen

import (
	"bytes"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tictactech/assetgen/internal/imagegen"
	"github.com/tictactech/assetgen/internal/svgconv"
)

func TestHex(t *testing.T) {
	tests := []struct {
		input    color.RGBA
		expected string
	}{
		{color.RGBA{235, 65, 65, 255}, "#eb4141"},
		{color.RGBA{0, 0, 0, 255}, "#000000"},
		{color.RGBA{255, 255, 255, 0}, "#ffffff"},
	}

	for _, tt := range tests {
		if got := Hex(tt.input); got != tt.expected {
			t.Errorf("Hex(%v) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestXMarkerDocument(t *testing.T) {
	var buf bytes.Buffer
	XMarker(&buf, 100, imagegen.XColor)
	doc := buf.String()

	for _, want := range []string{`viewBox="0 0 100 100"`, "#eb4141", "stroke-linecap:round", "</svg>"} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
	if n := strings.Count(doc, "<line"); n != 4 {
		t.Errorf("expected 4 lines (halo and stroke), got %d", n)
	}
}

func TestOMarkerDocument(t *testing.T) {
	var buf bytes.Buffer
	OMarker(&buf, 100, imagegen.OColor)
	doc := buf.String()

	if n := strings.Count(doc, "<circle"); n != 2 {
		t.Errorf("expected 2 circles, got %d", n)
	}
	if !strings.Contains(doc, "fill:none") {
		t.Error("ring must not be filled")
	}
}

func TestShapesRasterize(t *testing.T) {
	tests := []struct {
		name   string
		draw   func(*bytes.Buffer)
		width  int
		height int
	}{
		{"x", func(b *bytes.Buffer) { XMarker(b, 100, imagegen.XColor) }, 100, 100},
		{"o", func(b *bytes.Buffer) { OMarker(b, 100, imagegen.OColor) }, 100, 100},
		{"background", func(b *bytes.Buffer) { Background(b, 800, 600) }, 800, 600},
		{"button", func(b *bytes.Buffer) { Button(b, imagegen.ButtonNormal) }, 200, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.draw(&buf)

			img, err := svgconv.Rasterize(&buf)
			if err != nil {
				t.Fatalf("rasterize failed: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.width || b.Dy() != tt.height {
				t.Errorf("expected %dx%d, got %dx%d", tt.width, tt.height, b.Dx(), b.Dy())
			}
		})
	}
}

func TestXMarkerRasterCorners(t *testing.T) {
	var buf bytes.Buffer
	XMarker(&buf, 100, imagegen.XColor)

	img, err := svgconv.Rasterize(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("expected transparent corner, got alpha %d", a)
	}
	if a := img.RGBAAt(50, 50).A; a == 0 {
		t.Error("expected the crossing point to be drawn")
	}
}

func TestRunThenConvert(t *testing.T) {
	dir := t.TempDir()
	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)

	res, err := Run(Config{Dir: dir, Logger: logger})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(res.Written) != len(Catalog()) {
		t.Fatalf("expected %d files, got %d", len(Catalog()), len(res.Written))
	}
	for _, path := range res.Written {
		if !strings.Contains(logs.String(), "Created "+path) {
			t.Errorf("missing log line for %s", path)
		}
	}

	conv, err := svgconv.Run(svgconv.Config{Dir: dir, Logger: logger})
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if conv.Found != len(Catalog()) || conv.Converted != len(Catalog()) || len(conv.Failed) != 0 {
		t.Errorf("unexpected conversion result %+v", conv)
	}
	if _, err := os.Stat(filepath.Join(dir, "button_hover.png")); err != nil {
		t.Errorf("button_hover.png missing: %v", err)
	}
}

func TestRunDeterministic(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	logger := log.New(&bytes.Buffer{}, "", 0)

	if _, err := Run(Config{Dir: first, Logger: logger}); err != nil {
		t.Fatal(err)
	}
	if _, err := Run(Config{Dir: second, Logger: logger}); err != nil {
		t.Fatal(err)
	}

	for _, asset := range Catalog() {
		a, err := os.ReadFile(filepath.Join(first, asset.Name))
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(filepath.Join(second, asset.Name))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between runs", asset.Name)
		}
	}
}
