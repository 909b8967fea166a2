// ABOUTME: Entry point for the direct-synthesis sound generator
// ABOUTME: Writes WAV effects and empty music placeholders to resources/sounds
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tictactech/assetgen/internal/resources"
	"github.com/tictactech/assetgen/internal/simplefx"
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

	cfg := simplefx.Config{Dir: resources.New(*base).Sounds()}

	if *play {
		out := speaker.NewOto()
		out.SetVolume(*volume)
		defer out.Close()
		cfg.Preview = out
	}

	if _, err := simplefx.Run(cfg); err != nil {
		log.Printf("Sound generation failed: %v", err)
		os.Exit(1)
	}
}
