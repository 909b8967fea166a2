// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines Format, Buffer types and sample clamping helpers
// Package audio provides the PCM types shared by the sound generators.
//
// This package defines core types used throughout the asset tools:
//   - Format: Describes audio stream format (sample rate, channels, bit depth)
//   - Buffer: Holds rendered 16-bit samples together with their format
//
// It also provides helpers for turning synthesized float values into
// persisted samples:
//   - ClampInt16: float64 → int16 with saturation
//   - FrameCount: seconds → frames, rounded
//
// Example:
//
//	n := audio.FrameCount(0.15, audio.DefaultSampleRate)
//	samples := make([]int16, n)
//	for i := range samples {
//	    samples[i] = audio.ClampInt16(value(i))
//	}
//	buf := audio.NewBuffer(samples)
package audio
