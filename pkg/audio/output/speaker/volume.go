// ABOUTME: Software volume and sample packing for the speaker
// ABOUTME: Shared by the oto backend and its build-tagged stub
package speaker

import (
	"encoding/binary"

	"github.com/tictactech/assetgen/pkg/audio"
)

// SetVolume sets the volume (0-100)
func (o *Oto) SetVolume(volume int) {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	o.volume = volume
}

// applyVolume scales samples with clipping protection
func applyVolume(samples []int16, volume int) []int16 {
	multiplier := float64(volume) / 100.0

	result := make([]int16, len(samples))
	for i, sample := range samples {
		result[i] = audio.ClampInt16(float64(sample) * multiplier)
	}

	return result
}

// toBytes converts int16 samples to little-endian bytes
func toBytes(samples []int16) []byte {
	out := make([]byte, len(samples)*2)
	for i, sample := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(sample))
	}
	return out
}
