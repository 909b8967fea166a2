// ABOUTME: Direct-synthesis generation run
// ABOUTME: Writes every effect as WAV plus empty music placeholders
package simplefx

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/tictactech/assetgen/internal/resources"
	"github.com/tictactech/assetgen/internal/version"
	"github.com/tictactech/assetgen/pkg/audio"
	"github.com/tictactech/assetgen/pkg/audio/encode"
	"github.com/tictactech/assetgen/pkg/audio/output"
)

// Placeholders are created empty for the music the game streams
var Placeholders = []string{"background_music.ogg", "menu_music.ogg"}

// Config controls a generation run
type Config struct {
	// Dir receives the sound files; it is created if missing
	Dir    string
	Logger *log.Logger

	// Preview, when set, plays each effect after it is written
	Preview output.Output
}

// Result lists what a run wrote
type Result struct {
	Written      []string
	Placeholders []string
}

// Run renders and writes the catalog, then the placeholders
func Run(cfg Config) (Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	var res Result
	logger.Printf("Generating simple sound effects for %s game...", version.Game)
	if _, err := resources.EnsureDir(cfg.Dir, logger); err != nil {
		return res, err
	}

	preview := cfg.Preview
	for _, fx := range Catalog() {
		path := filepath.Join(cfg.Dir, fx.Name)
		buf := audio.NewBuffer(fx.Render(audio.FrameCount(fx.Duration, audio.DefaultSampleRate)))

		if err := encode.WriteWAV(path, buf); err != nil {
			return res, fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Printf("Created %s", path)
		res.Written = append(res.Written, path)

		if preview != nil {
			if err := output.Play(preview, buf); err != nil {
				logger.Printf("Preview disabled: %v", err)
				preview = nil
			}
		}
	}

	for _, name := range Placeholders {
		path := filepath.Join(cfg.Dir, name)
		if err := os.WriteFile(path, nil, 0644); err != nil {
			return res, fmt.Errorf("failed to create placeholder %s: %w", path, err)
		}
		logger.Printf("Created placeholder %s", path)
		res.Placeholders = append(res.Placeholders, path)
	}

	logger.Printf("Sound generation complete! Placeholder sound files have been created.")
	logger.Printf("Note: The OGG music files are empty placeholders.")
	return res, nil
}
