// ABOUTME: Resource directory layout rooted at an explicit base path
// ABOUTME: Resolves images/sounds directories and creates them on demand
package resources

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

const (
	// Root is the directory under the base that holds all game resources
	Root = "resources"

	imagesDir = "images"
	soundsDir = "sounds"
)

// Layout locates the resource directories under a base path
type Layout struct {
	base string
}

// New creates a layout rooted at base (the directory that contains
// "resources"). An empty base means the current directory.
func New(base string) Layout {
	if base == "" {
		base = "."
	}
	return Layout{base: filepath.Clean(base)}
}

// Base returns the base path
func (l Layout) Base() string {
	return l.base
}

// Images returns the image resource directory
func (l Layout) Images() string {
	return filepath.Join(l.base, Root, imagesDir)
}

// Sounds returns the sound resource directory
func (l Layout) Sounds() string {
	return filepath.Join(l.base, Root, soundsDir)
}

// EnsureDir creates dir (and parents) if it is missing. It reports whether
// the directory was created. Calling it on an existing directory is a no-op.
func EnsureDir(dir string, logger *log.Logger) (bool, error) {
	if logger == nil {
		logger = log.Default()
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory", dir)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to stat %s: %w", dir, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	logger.Printf("Created directory: %s", dir)
	return true, nil
}
