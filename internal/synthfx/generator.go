// ABOUTME: Sound effect generation run
// ABOUTME: Renders the catalog, normalizes it and hands each buffer to a sink
package synthfx

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/tictactech/assetgen/internal/capability"
	"github.com/tictactech/assetgen/internal/resources"
	"github.com/tictactech/assetgen/internal/version"
	"github.com/tictactech/assetgen/pkg/audio"
	"github.com/tictactech/assetgen/pkg/audio/output"
)

// ErrNoSink is reported when no WAV writer was configured
var ErrNoSink = errors.New("no WAV writer configured")

// MusicFiles must be supplied separately; they are not synthesized
var MusicFiles = []string{"background_music.ogg", "menu_music.ogg"}

// Config controls a generation run
type Config struct {
	// Dir receives the WAV files; it is created if missing
	Dir    string
	Logger *log.Logger

	// Sink persists each effect. A nil sink renders but writes nothing.
	Sink Sink

	// Preview, when set, plays each effect after it is written
	Preview output.Output
}

// Result reports what a run produced
type Result struct {
	Written []string
	Skipped []string
	// Silent lists effects that rendered all zeros
	Silent []string
}

// Run renders every effect in the catalog and persists it through cfg.Sink
func Run(cfg Config) (Result, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	var res Result
	logger.Printf("Generating sound effects for %s game...", version.Game)
	if _, err := resources.EnsureDir(cfg.Dir, logger); err != nil {
		return res, err
	}

	sinkErr := probeSink(logger, cfg.Sink)
	preview := cfg.Preview

	for _, snd := range Catalog() {
		path := filepath.Join(cfg.Dir, snd.Name)

		buf := audio.NewBuffer(Normalize(snd.Render(snd.Frames), snd.Headroom))
		if buf.Peak() == 0 {
			logger.Printf("Warning: %s rendered silence, skipping normalization", snd.Name)
			res.Silent = append(res.Silent, snd.Name)
		}

		if sinkErr != nil {
			logger.Printf("Could not save WAV file: %v", sinkErr)
			res.Skipped = append(res.Skipped, path)
			continue
		}

		if err := cfg.Sink.Write(path, buf); err != nil {
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

	logger.Printf("Sound generation complete! Place these files in your resources/sounds directory.")
	logger.Printf("For background music, you'll need to find or create OGG files named:")
	for _, name := range MusicFiles {
		logger.Printf("- %s", name)
	}
	return res, nil
}

func probeSink(logger *log.Logger, sink Sink) error {
	if sink == nil {
		logger.Printf("Optional capability not available: %v", ErrNoSink)
		return ErrNoSink
	}
	return capability.Optional(logger, capability.Check{
		Name:    "WAV writer " + sink.Name(),
		Install: "Install with: go get github.com/gopxl/beep/v2",
		Probe:   sink.Probe,
	})
}
