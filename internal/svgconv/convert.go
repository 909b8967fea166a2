// ABOUTME: SVG to PNG batch conversion
// ABOUTME: Rasterizes every SVG in a directory with oksvg and writes sibling PNGs
package svgconv

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/tictactech/assetgen/internal/capability"
	"github.com/tictactech/assetgen/internal/resources"
	"github.com/tictactech/assetgen/internal/version"
)

// Config controls a conversion run
type Config struct {
	// Dir is scanned for *.svg; it is created if missing
	Dir    string
	Logger *log.Logger

	// KeepExisting leaves an SVG unconverted when its PNG already exists
	KeepExisting bool
}

// FileError records a single failed conversion
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("Error converting %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying cause
func (e FileError) Unwrap() error {
	return e.Err
}

// Result summarizes a conversion run
type Result struct {
	Found     int
	Converted int
	Kept      int
	Failed    []FileError
}

// Run converts every SVG file in cfg.Dir. Per-file failures are logged and
// collected in the result; only directory-level problems return an error.
func Run(cfg Config) (Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	logger.Printf("Converting SVG images to PNG for %s game...", version.Game)

	var res Result
	if _, err := resources.EnsureDir(cfg.Dir, logger); err != nil {
		return res, err
	}

	files, err := filepath.Glob(filepath.Join(cfg.Dir, "*.svg"))
	if err != nil {
		return res, fmt.Errorf("failed to scan %s: %w", cfg.Dir, err)
	}

	res.Found = len(files)
	if len(files) == 0 {
		logger.Printf("No SVG files found in %s", cfg.Dir)
		return res, nil
	}

	logger.Printf("Found %d SVG files to convert", len(files))

	for _, svgPath := range files {
		pngPath := PNGPath(svgPath)
		if cfg.KeepExisting {
			if _, err := os.Stat(pngPath); err == nil {
				logger.Printf("Keeping existing %s", pngPath)
				res.Kept++
				continue
			}
		}
		if err := Convert(svgPath, pngPath); err != nil {
			fe := FileError{Path: svgPath, Err: err}
			logger.Print(fe.Error())
			res.Failed = append(res.Failed, fe)
			continue
		}
		logger.Printf("Converted %s to %s", svgPath, pngPath)
		res.Converted++
	}

	logger.Printf("Conversion complete! %d of %d files converted, SVG sources kept alongside",
		res.Converted, res.Found)
	return res, nil
}

// PNGPath swaps the .svg extension for .png
func PNGPath(svgPath string) string {
	return strings.TrimSuffix(svgPath, filepath.Ext(svgPath)) + ".png"
}

// Convert rasterizes one SVG file to a PNG file at its viewBox size
func Convert(svgPath, pngPath string) error {
	f, err := os.Open(svgPath)
	if err != nil {
		return fmt.Errorf("failed to open svg: %w", err)
	}
	defer f.Close()

	img, err := Rasterize(f)
	if err != nil {
		return err
	}

	out, err := os.Create(pngPath)
	if err != nil {
		return fmt.Errorf("failed to create png: %w", err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return out.Close()
}

// Rasterize parses an SVG document and renders it at its viewBox size
func Rasterize(r io.Reader) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}

	w := int(math.Ceil(icon.ViewBox.W))
	h := int(math.Ceil(icon.ViewBox.H))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("svg has no usable viewBox (%gx%g)", icon.ViewBox.W, icon.ViewBox.H)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	icon.Draw(raster, 1.0)

	return img, nil
}

const probeSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 4 4"><rect x="0" y="0" width="4" height="4" fill="#ffffff"/></svg>`

// Probe renders a tiny built-in document to confirm the rasterizer works
func Probe() error {
	img, err := Rasterize(strings.NewReader(probeSVG))
	if err != nil {
		return err
	}
	if img.RGBAAt(2, 2).A == 0 {
		return fmt.Errorf("rasterizer produced an empty image")
	}
	return nil
}

// Capability describes the startup probe for this tool
func Capability() capability.Check {
	return capability.Check{
		Name:    "SVG rasterizer (srwiley/oksvg)",
		Install: "Install with: go get github.com/srwiley/oksvg github.com/srwiley/rasterx",
		Probe:   Probe,
	}
}
