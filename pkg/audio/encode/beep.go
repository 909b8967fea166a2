// ABOUTME: WAV sink backed by the beep audio library
// ABOUTME: Streams int16 buffers through beep's WAV encoder into files
package encode

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/tictactech/assetgen/pkg/audio"
	"github.com/tictactech/assetgen/pkg/audio/decode"
)

// BeepWriter persists buffers with github.com/gopxl/beep/v2/wav
type BeepWriter struct{}

// NewBeepWriter creates a beep-backed WAV writer
func NewBeepWriter() *BeepWriter {
	return &BeepWriter{}
}

// Name identifies the writer in log lines
func (w *BeepWriter) Name() string {
	return "beep/wav"
}

// Probe encodes a short ramp to a temporary file and reads it back, so
// the writer is known to store every sample exactly on this system
func (w *BeepWriter) Probe() error {
	dir, err := os.MkdirTemp("", "assetgen-wav-")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	samples := []int16{0, 1, -1, 16384, -16384, 32767, -32768}
	path := filepath.Join(dir, "ramp.wav")
	if err := w.Write(path, audio.NewBuffer(samples)); err != nil {
		return fmt.Errorf("beep wav encode failed: %w", err)
	}

	back, err := decode.ReadWAV(path)
	if err != nil {
		return fmt.Errorf("beep wav read back failed: %w", err)
	}
	if len(back.Samples) != len(samples) {
		return fmt.Errorf("beep wav read back %d samples, wrote %d", len(back.Samples), len(samples))
	}
	for i, want := range samples {
		if back.Samples[i] != want {
			return fmt.Errorf("beep wav sample %d read back as %d, wrote %d", i, back.Samples[i], want)
		}
	}
	return nil
}

// Write encodes buf as WAV at path
func (w *BeepWriter) Write(path string, buf *audio.Buffer) error {
	if buf.Format.Channels != 1 {
		return fmt.Errorf("unsupported channel count: %d (supported: 1)", buf.Format.Channels)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := wav.Encode(f, newSampleStreamer(buf.Samples), beepFormat(buf.Format)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func beepFormat(format audio.Format) beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(format.SampleRate),
		NumChannels: format.Channels,
		Precision:   format.BitDepth / 8,
	}
}

// newSampleStreamer replays int16 samples as beep floats. beep's 16-bit
// encoder multiplies by 2^15 and truncates, so s/2^15 lands back on s.
func newSampleStreamer(samples []int16) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(out [][2]float64) (int, bool) {
		if pos >= len(samples) {
			return 0, false
		}
		n := copy16(out, samples[pos:])
		pos += n
		return n, true
	})
}

func copy16(out [][2]float64, samples []int16) int {
	n := len(out)
	if len(samples) < n {
		n = len(samples)
	}
	for i := 0; i < n; i++ {
		v := float64(samples[i]) / 32768
		out[i][0] = v
		out[i][1] = v
	}
	return n
}
