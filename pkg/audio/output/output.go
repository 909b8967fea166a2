// ABOUTME: Audio output interface definition
// ABOUTME: Common interface for audio preview backends
package output

import "github.com/tictactech/assetgen/pkg/audio"

// Output represents an audio output device
type Output interface {
	// Open initializes the output device
	Open(sampleRate, channels int) error

	// Write plays audio samples (blocks until played)
	Write(samples []int16) error

	// Close releases output resources
	Close() error
}

// Discard is an Output that accepts and drops samples
type Discard struct {
	Written int
}

// Open accepts any format
func (d *Discard) Open(sampleRate, channels int) error { return nil }

// Write counts the samples it was given
func (d *Discard) Write(samples []int16) error {
	d.Written += len(samples)
	return nil
}

// Close is a no-op
func (d *Discard) Close() error { return nil }

// Play opens out for the buffer's format and plays the whole buffer
func Play(out Output, buf *audio.Buffer) error {
	if err := out.Open(buf.Format.SampleRate, buf.Format.Channels); err != nil {
		return err
	}
	return out.Write(buf.Samples)
}
