// ABOUTME: Tests for the RIFF/WAVE encoder
// ABOUTME: Verifies header fields, data layout and file writing
package encode

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/tictactech/assetgen/pkg/audio"
)

func TestNewWAV_InvalidSampleRate(t *testing.T) {
	_, err := NewWAV(audio.Format{SampleRate: 0, Channels: 1, BitDepth: 16})
	if err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if !contains(err.Error(), "invalid sample rate") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestWAVEncoder_Header(t *testing.T) {
	encoder, err := NewWAV(audio.Mono16())
	if err != nil {
		t.Fatalf("NewWAV() failed: %v", err)
	}
	defer encoder.Close()

	samples := []int16{0, 1000, -1000, 32767, -32768}
	out, err := encoder.Encode(samples)
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	if len(out) != WAVHeaderSize+len(samples)*2 {
		t.Fatalf("expected %d bytes, got %d", WAVHeaderSize+len(samples)*2, len(out))
	}

	checks := []struct {
		name string
		got  []byte
		want string
	}{
		{"riff", out[0:4], "RIFF"},
		{"wave", out[8:12], "WAVE"},
		{"fmt", out[12:16], "fmt "},
		{"data", out[36:40], "data"},
	}
	for _, c := range checks {
		if string(c.got) != c.want {
			t.Errorf("%s tag = %q, want %q", c.name, c.got, c.want)
		}
	}

	le := binary.LittleEndian
	if got := le.Uint32(out[4:8]); got != uint32(36+len(samples)*2) {
		t.Errorf("riff size = %d", got)
	}
	if got := le.Uint16(out[20:22]); got != 1 {
		t.Errorf("audio format = %d, want 1 (PCM)", got)
	}
	if got := le.Uint16(out[22:24]); got != 1 {
		t.Errorf("channels = %d, want 1", got)
	}
	if got := le.Uint32(out[24:28]); got != 44100 {
		t.Errorf("sample rate = %d, want 44100", got)
	}
	if got := le.Uint32(out[28:32]); got != 88200 {
		t.Errorf("byte rate = %d, want 88200", got)
	}
	if got := le.Uint16(out[32:34]); got != 2 {
		t.Errorf("block align = %d, want 2", got)
	}
	if got := le.Uint16(out[34:36]); got != 16 {
		t.Errorf("bits per sample = %d, want 16", got)
	}
	if got := le.Uint32(out[40:44]); got != uint32(len(samples)*2) {
		t.Errorf("data size = %d", got)
	}

	for i, want := range samples {
		got := int16(le.Uint16(out[WAVHeaderSize+i*2:]))
		if got != want {
			t.Errorf("sample %d = %d, want %d", i, got, want)
		}
	}
}

func TestWriteWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	buf := audio.NewBuffer([]int16{1, 2, 3, 4})

	if err := WriteWAV(path, buf); err != nil {
		t.Fatalf("WriteWAV() failed: %v", err)
	}

	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(first) != WAVHeaderSize+8 {
		t.Errorf("expected %d bytes, got %d", WAVHeaderSize+8, len(first))
	}

	// Rewriting the same buffer produces the same bytes
	if err := WriteWAV(path, buf); err != nil {
		t.Fatalf("second WriteWAV() failed: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("expected identical output on rewrite")
	}
}

func TestWriteWAV_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "tone.wav")
	if err := WriteWAV(path, audio.NewBuffer([]int16{0})); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}
