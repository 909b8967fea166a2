// ABOUTME: Speaker package for previewing rendered sounds
// ABOUTME: Wraps oto behind the output.Output interface
// Package speaker plays preview clips on the system audio device.
//
// The oto backend needs cgo and a working audio device (ALSA on Linux).
// Build with -tags nospeaker to compile a stub whose Open always fails;
// the generators then disable previews for the rest of a run.
//
// Only the command binaries import this package, so the generator
// packages build and test without an audio library.
//
// Example:
//
//	out := speaker.NewOto()
//	out.SetVolume(80)
//	err := output.Play(out, buf)
package speaker
