// ABOUTME: Audio encoder package for persisting rendered PCM
// ABOUTME: Provides Encoder interface, raw PCM, RIFF/WAVE and beep-backed writers
// Package encode turns rendered sample buffers into bytes and files.
//
// Supports: raw 16-bit PCM, RIFF/WAVE containers written by hand, and a
// WAV sink backed by github.com/gopxl/beep/v2/wav.
//
// Example:
//
//	encoder, err := encode.NewWAV(audio.Mono16())
//	data, err := encoder.Encode(samples)
//
//	err = encode.WriteWAV("win.wav", buf)
package encode
