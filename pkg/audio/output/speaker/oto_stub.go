//go:build nospeaker

// ABOUTME: Speaker stub for builds without a system audio library
// ABOUTME: Provides a compile-time placeholder when built with -tags nospeaker
package speaker

import "fmt"

// Oto output implementation (stub)
type Oto struct {
	volume int
}

// NewOto creates a new Oto output
func NewOto() *Oto {
	return &Oto{volume: 100}
}

// Open initializes the output device
func (o *Oto) Open(sampleRate, channels int) error {
	return fmt.Errorf("speaker support not enabled (build without -tags nospeaker)")
}

// Write plays samples
func (o *Oto) Write(samples []int16) error {
	return fmt.Errorf("speaker support not enabled (build without -tags nospeaker)")
}

// Close releases resources
func (o *Oto) Close() error {
	return nil
}
