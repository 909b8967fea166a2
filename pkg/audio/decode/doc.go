// ABOUTME: Audio decoder package for reading generated files back
// ABOUTME: Provides a beep-backed WAV reader returning int16 buffers
// Package decode reads WAV files back into sample buffers.
//
// Decoding goes through github.com/gopxl/beep/v2/wav and converts beep's
// float samples back to the exact 16-bit values that were stored.
//
// Example:
//
//	buf, err := decode.ReadWAV("resources/sounds/win.wav")
//	fmt.Println(len(buf.Samples), buf.Format.SampleRate)
package decode
