// ABOUTME: Full asset pipeline over one resource layout
// ABOUTME: Runs images, vectors, conversion and sounds in sequence
package pipeline

import (
	"fmt"
	"log"

	"github.com/tictactech/assetgen/internal/capability"
	"github.com/tictactech/assetgen/internal/imagegen"
	"github.com/tictactech/assetgen/internal/resources"
	"github.com/tictactech/assetgen/internal/simplefx"
	"github.com/tictactech/assetgen/internal/svgconv"
	"github.com/tictactech/assetgen/internal/synthfx"
	"github.com/tictactech/assetgen/internal/vectorgen"
	"github.com/tictactech/assetgen/pkg/audio/output"
)

// Observer is told when each step starts and finishes
type Observer interface {
	StepStarted(i int, name string)
	StepFinished(i int, name string, err error)
}

// Config controls a pipeline run
type Config struct {
	Layout resources.Layout
	Logger *log.Logger

	// Simple selects the direct-synthesis sound generator
	Simple bool

	// Sink overrides the WAV writer of the synthesizer-backed generator
	Sink synthfx.Sink

	// Preview, when set, plays each sound after it is written
	Preview output.Output

	// Observer, when set, receives step progress
	Observer Observer
}

// Step is one stage of the pipeline
type Step struct {
	Name string
	Run  func(logger *log.Logger) error
}

// Steps returns the stages in execution order
func Steps(cfg Config) []Step {
	images := cfg.Layout.Images()
	sounds := cfg.Layout.Sounds()

	soundStep := Step{Name: "sounds", Run: func(logger *log.Logger) error {
		sink := cfg.Sink
		if sink == nil {
			sink = synthfx.DefaultSink()
		}
		_, err := synthfx.Run(synthfx.Config{Dir: sounds, Logger: logger, Sink: sink, Preview: cfg.Preview})
		return err
	}}
	if cfg.Simple {
		soundStep = Step{Name: "simple sounds", Run: func(logger *log.Logger) error {
			_, err := simplefx.Run(simplefx.Config{Dir: sounds, Logger: logger, Preview: cfg.Preview})
			return err
		}}
	}

	return []Step{
		{Name: "images", Run: func(logger *log.Logger) error {
			_, err := imagegen.Run(imagegen.Config{Dir: images, Logger: logger})
			return err
		}},
		{Name: "vectors", Run: func(logger *log.Logger) error {
			_, err := vectorgen.Run(vectorgen.Config{Dir: images, Logger: logger})
			return err
		}},
		{Name: "convert", Run: func(logger *log.Logger) error {
			res, err := svgconv.Run(svgconv.Config{Dir: images, Logger: logger, KeepExisting: true})
			if err == nil && len(res.Failed) > 0 {
				logger.Printf("%d of %d SVG files failed to convert", len(res.Failed), res.Found)
			}
			return err
		}},
		soundStep,
	}
}

// Names lists the step names for cfg
func Names(cfg Config) []string {
	steps := Steps(cfg)
	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.Name
	}
	return names
}

// Checks returns the capabilities every step requires
func Checks() []capability.Check {
	return []capability.Check{imagegen.Capability(), svgconv.Capability()}
}

// Run executes every step and stops at the first failure
func Run(cfg Config) error {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	for i, step := range Steps(cfg) {
		if cfg.Observer != nil {
			cfg.Observer.StepStarted(i, step.Name)
		}
		logger.Printf("Step %d: %s", i+1, step.Name)

		err := step.Run(logger)
		if cfg.Observer != nil {
			cfg.Observer.StepFinished(i, step.Name, err)
		}
		if err != nil {
			return fmt.Errorf("%s step failed: %w", step.Name, err)
		}
	}
	return nil
}
