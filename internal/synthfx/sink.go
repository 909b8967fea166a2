// ABOUTME: Persistence targets for rendered effects
// ABOUTME: Defines the Sink interface and an in-memory implementation
package synthfx

import (
	"github.com/tictactech/assetgen/pkg/audio"
	"github.com/tictactech/assetgen/pkg/audio/encode"
)

// Sink persists a rendered buffer under a path
type Sink interface {
	// Name identifies the sink in log lines
	Name() string

	// Probe returns nil when the sink can write files
	Probe() error

	// Write stores buf at path
	Write(path string, buf *audio.Buffer) error
}

// DefaultSink returns the beep-backed WAV writer
func DefaultSink() Sink {
	return encode.NewBeepWriter()
}

// MemorySink keeps written buffers in memory, keyed by path
type MemorySink struct {
	Buffers map[string]*audio.Buffer
}

// NewMemorySink creates an empty memory sink. The zero value is also ready
// to use.
func NewMemorySink() *MemorySink {
	return &MemorySink{Buffers: make(map[string]*audio.Buffer)}
}

// Name identifies the sink
func (m *MemorySink) Name() string {
	return "memory"
}

// Probe always succeeds
func (m *MemorySink) Probe() error {
	return nil
}

// Write copies buf into the sink
func (m *MemorySink) Write(path string, buf *audio.Buffer) error {
	samples := make([]int16, len(buf.Samples))
	copy(samples, buf.Samples)
	if m.Buffers == nil {
		m.Buffers = make(map[string]*audio.Buffer)
	}
	m.Buffers[path] = &audio.Buffer{Samples: samples, Format: buf.Format}
	return nil
}
