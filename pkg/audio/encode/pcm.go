// ABOUTME: PCM audio encoder
// ABOUTME: Encodes int16 samples to little-endian PCM bytes
package encode

import (
	"encoding/binary"
	"fmt"

	"github.com/tictactech/assetgen/pkg/audio"
)

// PCMEncoder encodes PCM audio
type PCMEncoder struct {
	channels int
}

// NewPCM creates a new PCM encoder
func NewPCM(format audio.Format) (Encoder, error) {
	if format.BitDepth != 16 {
		return nil, fmt.Errorf("unsupported bit depth: %d (supported: 16)", format.BitDepth)
	}

	if format.Channels != 1 && format.Channels != 2 {
		return nil, fmt.Errorf("unsupported channel count: %d (supported: 1, 2)", format.Channels)
	}

	return &PCMEncoder{
		channels: format.Channels,
	}, nil
}

// Encode converts int16 samples to PCM bytes
func (e *PCMEncoder) Encode(samples []int16) ([]byte, error) {
	if len(samples)%e.channels != 0 {
		return nil, fmt.Errorf("sample count %d is not a multiple of %d channels", len(samples), e.channels)
	}

	// 16-bit PCM: 2 bytes per sample
	output := make([]byte, len(samples)*2)
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(output[i*2:], uint16(sample))
	}
	return output, nil
}

// Close releases resources
func (e *PCMEncoder) Close() error {
	return nil
}
