// ABOUTME: Entry point for the vector source generator
// ABOUTME: Writes the SVG versions of every image to resources/images
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tictactech/assetgen/internal/resources"
	"github.com/tictactech/assetgen/internal/vectorgen"
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

	layout := resources.New(*base)
	if _, err := vectorgen.Run(vectorgen.Config{Dir: layout.Images()}); err != nil {
		log.Printf("Vector generation failed: %v", err)
		os.Exit(1)
	}
}
