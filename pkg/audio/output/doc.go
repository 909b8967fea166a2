// ABOUTME: Audio output package for previewing rendered sounds
// ABOUTME: Provides the Output interface and a discarding backend
// Package output defines the preview playback interface.
//
// The oto backend lives in the speaker subpackage so that importing
// output never pulls in cgo or a system audio library.
//
// Example:
//
//	d := &output.Discard{}
//	err := output.Play(d, buf)
package output
