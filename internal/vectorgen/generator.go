// ABOUTME: Vector source catalog generation
// ABOUTME: Writes the SVG counterparts of every raster image into a directory
package vectorgen

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/tictactech/assetgen/internal/imagegen"
	"github.com/tictactech/assetgen/internal/resources"
)

// Asset is one SVG document of the catalog
type Asset struct {
	Name string
	Draw func(io.Writer)
}

// Catalog lists every vector source, named to match the raster catalog
func Catalog() []Asset {
	size := imagegen.MarkerSize
	return []Asset{
		{"x.svg", func(w io.Writer) { XMarker(w, size, imagegen.XColor) }},
		{"x_dark.svg", func(w io.Writer) { XMarker(w, size, imagegen.XDarkColor) }},
		{"x_color.svg", func(w io.Writer) { XMarker(w, size, imagegen.XVivid) }},
		{"o.svg", func(w io.Writer) { OMarker(w, size, imagegen.OColor) }},
		{"o_dark.svg", func(w io.Writer) { OMarker(w, size, imagegen.ODarkColor) }},
		{"o_color.svg", func(w io.Writer) { OMarker(w, size, imagegen.OVivid) }},
		{"background.svg", func(w io.Writer) { Background(w, imagegen.BackgroundWidth, imagegen.BackgroundHeight) }},
		{"button.svg", func(w io.Writer) { Button(w, imagegen.ButtonNormal) }},
		{"button_hover.svg", func(w io.Writer) { Button(w, imagegen.ButtonHover) }},
		{"button_pressed.svg", func(w io.Writer) { Button(w, imagegen.ButtonPressed) }},
	}
}

// Config controls a generation run
type Config struct {
	// Dir receives the SVG files; it is created if missing
	Dir    string
	Logger *log.Logger
}

// Result lists what a run wrote
type Result struct {
	Written []string
}

// Run writes the whole vector catalog into cfg.Dir
func Run(cfg Config) (Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	var res Result
	if _, err := resources.EnsureDir(cfg.Dir, logger); err != nil {
		return res, err
	}

	logger.Printf("Creating vector sources in %s", cfg.Dir)
	for _, asset := range Catalog() {
		path := filepath.Join(cfg.Dir, asset.Name)

		var buf bytes.Buffer
		asset.Draw(&buf)
		if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
			return res, fmt.Errorf("failed to write %s: %w", path, err)
		}

		logger.Printf("Created %s", path)
		res.Written = append(res.Written, path)
	}

	logger.Printf("Vector generation complete! %d files written", len(res.Written))
	return res, nil
}
