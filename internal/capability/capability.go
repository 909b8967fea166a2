// ABOUTME: Explicit startup capability checks
// ABOUTME: Probes optional libraries and devices before a tool does any work
package capability

import (
	"errors"
	"fmt"
	"log"
)

// ErrUnavailable marks a capability whose probe failed
var ErrUnavailable = errors.New("capability unavailable")

// Check describes one capability a tool depends on
type Check struct {
	// Name is shown to the user, e.g. "SVG rasterizer"
	Name string
	// Install tells the user how to make the capability available
	Install string
	// Probe returns nil when the capability works
	Probe func() error
}

// MissingError reports a failed capability probe
type MissingError struct {
	Name    string
	Install string
	Err     error
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Name, e.Err)
}

// Unwrap exposes the probe error
func (e *MissingError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrUnavailable
func (e *MissingError) Is(target error) bool {
	return target == ErrUnavailable
}

// Run executes the probe
func (c Check) Run() error {
	if c.Probe == nil {
		return nil
	}
	if err := c.Probe(); err != nil {
		return &MissingError{Name: c.Name, Install: c.Install, Err: err}
	}
	return nil
}

// Require runs every check in order and returns the first failure after
// printing the install instructions for it
func Require(logger *log.Logger, checks ...Check) error {
	if logger == nil {
		logger = log.Default()
	}
	for _, c := range checks {
		if err := c.Run(); err != nil {
			logger.Printf("Required capability not available: %v", err)
			if c.Install != "" {
				logger.Printf("%s", c.Install)
			}
			return err
		}
	}
	return nil
}

// Optional runs check and logs, without failing, when it is missing.
// It returns the probe failure so callers can report it per use.
func Optional(logger *log.Logger, c Check) error {
	if logger == nil {
		logger = log.Default()
	}
	if err := c.Run(); err != nil {
		logger.Printf("Optional capability not available: %v", err)
		return err
	}
	return nil
}
