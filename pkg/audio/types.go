// ABOUTME: Audio type definitions
// ABOUTME: Defines the mono 16-bit PCM format and sample buffers
package audio

import "math"

const (
	// DefaultSampleRate is the rate every generated effect is rendered at
	DefaultSampleRate = 44100

	// 16-bit audio range constants
	Max16Bit = 32767  // 2^15 - 1
	Min16Bit = -32768 // -2^15
)

// Format describes audio stream format
type Format struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// Mono16 returns the mono 16-bit format at the default sample rate
func Mono16() Format {
	return Format{
		SampleRate: DefaultSampleRate,
		Channels:   1,
		BitDepth:   16,
	}
}

// BytesPerFrame returns the size of one interleaved frame
func (f Format) BytesPerFrame() int {
	return f.Channels * f.BitDepth / 8
}

// Buffer represents rendered PCM audio
type Buffer struct {
	Samples []int16
	Format  Format
}

// NewBuffer wraps samples in a mono 16-bit buffer
func NewBuffer(samples []int16) *Buffer {
	return &Buffer{Samples: samples, Format: Mono16()}
}

// Peak returns the largest absolute sample value
func (b *Buffer) Peak() int {
	peak := 0
	for _, s := range b.Samples {
		v := int(s)
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}

// FrameCount returns round(seconds * sampleRate)
func FrameCount(seconds float64, sampleRate int) int {
	return int(math.Round(seconds * float64(sampleRate)))
}

// ClampInt16 truncates v toward zero and clamps it to the 16-bit range
func ClampInt16(v float64) int16 {
	if math.IsNaN(v) {
		return 0
	}
	if v >= Max16Bit {
		return Max16Bit
	}
	if v <= Min16Bit {
		return Min16Bit
	}
	return int16(v)
}
