// ABOUTME: Entry point for the full asset pipeline
// ABOUTME: Generates every image and sound, optionally with a progress TUI
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tictactech/assetgen/internal/capability"
	"github.com/tictactech/assetgen/internal/pipeline"
	"github.com/tictactech/assetgen/internal/resources"
	"github.com/tictactech/assetgen/internal/ui"
	"github.com/tictactech/assetgen/internal/version"
	"github.com/tictactech/assetgen/pkg/audio/output/speaker"
)

var (
	base        = flag.String("base", ".", "Directory that contains the resources folder")
	simple      = flag.Bool("simple", false, "Use the direct-synthesis sound generator")
	useTUI      = flag.Bool("tui", false, "Show a progress TUI instead of streaming logs")
	play        = flag.Bool("play", false, "Play each sound after writing it")
	volume      = flag.Int("volume", 100, "Preview volume (0-100)")
	logFile     = flag.String("log-file", "", "Also append progress to this file")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	log.SetFlags(0)

	// Set up logging (console plus optional file)
	var logSinks []io.Writer
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("error opening log file: %v", err)
		}
		defer func() { _ = f.Close() }()
		logSinks = append(logSinks, f)
	}
	log.SetOutput(io.MultiWriter(append([]io.Writer{os.Stdout}, logSinks...)...))

	if err := capability.Require(log.Default(), pipeline.Checks()...); err != nil {
		os.Exit(1)
	}

	cfg := pipeline.Config{
		Layout: resources.New(*base),
		Simple: *simple,
	}

	if *play {
		out := speaker.NewOto()
		out.SetVolume(*volume)
		defer func() { _ = out.Close() }()
		cfg.Preview = out
	}

	var err error
	if *useTUI {
		// the view owns stdout while it runs
		log.SetOutput(io.MultiWriter(append([]io.Writer{io.Discard}, logSinks...)...))
		err = ui.Run(pipeline.Names(cfg), func(r *ui.Reporter) error {
			// TUI mode: progress goes to the view and the log file only
			tuiCfg := cfg
			tuiCfg.Logger = log.New(io.MultiWriter(append([]io.Writer{r}, logSinks...)...), "", 0)
			tuiCfg.Observer = r
			return pipeline.Run(tuiCfg)
		})
	} else {
		log.Printf("%s: generating assets under %s", version.String(), cfg.Layout.Base())
		err = pipeline.Run(cfg)
	}

	log.SetOutput(io.MultiWriter(append([]io.Writer{os.Stdout}, logSinks...)...))
	if errors.Is(err, ui.ErrInterrupted) {
		log.Printf("Interrupted")
		os.Exit(130)
	}
	if err != nil {
		log.Printf("Asset generation failed: %v", err)
		os.Exit(1)
	}
}
