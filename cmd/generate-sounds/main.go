// ABOUTME: Entry point for the synthesizer-backed sound generator
// ABOUTME: Renders the effect catalog and writes WAV files to resources/sounds
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tictactech/assetgen/internal/resources"
	"github.com/tictactech/assetgen/internal/synthfx"
	"github.com/tictactech/assetgen/internal/version"
	"github.com/tictactech/assetgen/pkg/audio/output/speaker"
)

var (
	base        = flag.String("base", ".", "Directory that contains the resources folder")
	play        = flag.Bool("play", false, "Play each sound after writing it")
	volume      = flag.Int("volume", 100, "Preview volume (0-100)")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	log.SetOutput(os.Stdout)
	log.SetFlags(0)

	cfg := synthfx.Config{
		Dir:  resources.New(*base).Sounds(),
		Sink: synthfx.DefaultSink(),
	}

	if *play {
		out := speaker.NewOto()
		out.SetVolume(*volume)
		defer out.Close()
		cfg.Preview = out
	}

	if _, err := synthfx.Run(cfg); err != nil {
		log.Printf("Sound generation failed: %v", err)
		os.Exit(1)
	}
}
