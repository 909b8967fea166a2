// ABOUTME: Entry point for the SVG to PNG converter
// ABOUTME: Converts every SVG in resources/images to a PNG beside it
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/tictactech/assetgen/internal/capability"
	"github.com/tictactech/assetgen/internal/resources"
	"github.com/tictactech/assetgen/internal/svgconv"
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

	if err := capability.Require(log.Default(), svgconv.Capability()); err != nil {
		os.Exit(1)
	}

	layout := resources.New(*base)
	res, err := svgconv.Run(svgconv.Config{Dir: layout.Images()})
	if err != nil {
		log.Printf("Conversion failed: %v", err)
		os.Exit(1)
	}

	if res.Converted > 0 {
		log.Printf("PNG files are now available in %s", layout.Images())
	}
}
