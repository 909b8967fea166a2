// ABOUTME: Image catalog generation
// ABOUTME: Renders every marker, background and button skin into a directory
package imagegen

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/tictactech/assetgen/internal/capability"
	"github.com/tictactech/assetgen/internal/resources"
)

const (
	// MarkerSize is the edge length of the marker glyphs
	MarkerSize = 100

	BackgroundWidth  = 800
	BackgroundHeight = 600

	ButtonWidth  = 200
	ButtonHeight = 50
)

// Marker colors
var (
	XColor     = color.RGBA{235, 65, 65, 255}
	XDarkColor = color.RGBA{180, 50, 50, 255}
	XVivid     = color.RGBA{255, 40, 80, 255}

	OColor     = color.RGBA{65, 105, 225, 255}
	ODarkColor = color.RGBA{50, 80, 180, 255}
	OVivid     = color.RGBA{40, 120, 255, 255}
)

// Button skins
var (
	ButtonNormal  = ButtonStyle{Width: ButtonWidth, Height: ButtonHeight, Fill: color.RGBA{80, 80, 100, 255}, Outline: color.RGBA{120, 120, 150, 255}}
	ButtonHover   = ButtonStyle{Width: ButtonWidth, Height: ButtonHeight, Fill: color.RGBA{100, 100, 130, 255}, Outline: color.RGBA{160, 160, 200, 255}}
	ButtonPressed = ButtonStyle{Width: ButtonWidth, Height: ButtonHeight, Fill: color.RGBA{60, 60, 80, 255}, Outline: color.RGBA{100, 100, 130, 255}}
)

// Asset is one entry of the image catalog
type Asset struct {
	Name   string
	Render func() image.Image
}

// Catalog lists every image the game expects, in generation order
func Catalog() []Asset {
	return []Asset{
		{"x.png", func() image.Image { return XMarker(MarkerSize, XColor) }},
		{"x_dark.png", func() image.Image { return XMarker(MarkerSize, XDarkColor) }},
		{"x_color.png", func() image.Image { return XMarker(MarkerSize, XVivid) }},
		{"o.png", func() image.Image { return OMarker(MarkerSize, OColor) }},
		{"o_dark.png", func() image.Image { return OMarker(MarkerSize, ODarkColor) }},
		{"o_color.png", func() image.Image { return OMarker(MarkerSize, OVivid) }},
		{"background.png", func() image.Image { return Background(BackgroundWidth, BackgroundHeight) }},
		{"button.png", func() image.Image { return Button(ButtonNormal) }},
		{"button_hover.png", func() image.Image { return Button(ButtonHover) }},
		{"button_pressed.png", func() image.Image { return Button(ButtonPressed) }},
	}
}

// Config controls a generation run
type Config struct {
	// Dir receives the PNG files; it is created if missing
	Dir    string
	Logger *log.Logger
}

// Result lists what a run wrote
type Result struct {
	Written []string
}

// Generator writes rendered images and reports each file
type Generator struct {
	logger *log.Logger
}

// NewGenerator creates a generator that reports through logger
func NewGenerator(logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{logger: logger}
}

// Save encodes img as PNG at path
func (g *Generator) Save(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	g.logger.Printf("Created %s", path)
	return nil
}

// Run writes the whole catalog into cfg.Dir
func Run(cfg Config) (Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	var res Result
	if _, err := resources.EnsureDir(cfg.Dir, logger); err != nil {
		return res, err
	}

	logger.Printf("Creating game images in %s", cfg.Dir)
	g := NewGenerator(logger)
	for _, asset := range Catalog() {
		path := filepath.Join(cfg.Dir, asset.Name)
		if err := g.Save(path, asset.Render()); err != nil {
			return res, err
		}
		res.Written = append(res.Written, path)
	}

	logger.Printf("Image generation complete! %d files written", len(res.Written))
	return res, nil
}

// Probe confirms the imaging encoder works
func Probe() error {
	img := imaging.New(1, 1, color.NRGBA{})
	if err := imaging.Encode(io.Discard, img, imaging.PNG); err != nil {
		return fmt.Errorf("png encode failed: %w", err)
	}
	return nil
}

// Capability describes the startup probe for this tool
func Capability() capability.Check {
	return capability.Check{
		Name:    "PNG encoder (disintegration/imaging)",
		Install: "Install with: go get github.com/disintegration/imaging github.com/fogleman/gg",
		Probe:   Probe,
	}
}
