// ABOUTME: WAV reader backed by the beep audio library
// ABOUTME: Decodes 16-bit WAV files into integer sample buffers
package decode

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gopxl/beep/v2/wav"
	"github.com/tictactech/assetgen/pkg/audio"
)

// streamChunk is the number of frames pulled from beep per call
const streamChunk = 512

// DecodeWAV reads a 16-bit PCM WAV stream. beep yields s/2^15 for each
// 16-bit sample, so scaling back by 2^15 restores the stored integer.
func DecodeWAV(r io.Reader) (*audio.Buffer, error) {
	streamer, format, err := wav.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav: %w", err)
	}
	defer streamer.Close()

	if format.Precision != 2 {
		return nil, fmt.Errorf("unsupported precision: %d bytes (supported: 2)", format.Precision)
	}

	channels := format.NumChannels
	samples := make([]int16, 0, streamer.Len()*channels)
	chunk := make([][2]float64, streamChunk)
	for {
		n, ok := streamer.Stream(chunk)
		for i := 0; i < n; i++ {
			for c := 0; c < channels; c++ {
				samples = append(samples, toInt16(chunk[i][c]))
			}
		}
		if !ok || n == 0 {
			break
		}
	}
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("failed to stream wav: %w", err)
	}

	return &audio.Buffer{
		Samples: samples,
		Format: audio.Format{
			SampleRate: int(format.SampleRate),
			Channels:   channels,
			BitDepth:   16,
		},
	}, nil
}

// ReadWAV loads and decodes a WAV file from disk
func ReadWAV(path string) (*audio.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	buf, err := DecodeWAV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return buf, nil
}

func toInt16(v float64) int16 {
	return audio.ClampInt16(math.Round(v * 32768))
}
