// ABOUTME: Entry point for the procedural image generator
// ABOUTME: Writes markers, background and button skins to resources/images
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tictactech/assetgen/internal/capability"
	"github.com/tictactech/assetgen/internal/imagegen"
	"github.com/tictactech/assetgen/internal/resources"
	"github.com/tictactech/assetgen/internal/version"
)

var (
	base        = flag.String("base", ".", "Directory that contains the resources folder")
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

	if err := capability.Require(log.Default(), imagegen.Capability()); err != nil {
		os.Exit(1)
	}

	layout := resources.New(*base)
	if _, err := imagegen.Run(imagegen.Config{Dir: layout.Images()}); err != nil {
		log.Printf("Image generation failed: %v", err)
		os.Exit(1)
	}
}
