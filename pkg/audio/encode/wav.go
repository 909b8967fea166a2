// ABOUTME: RIFF/WAVE container encoder
// ABOUTME: Wraps 16-bit PCM data in a canonical 44-byte WAV header
package encode

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/tictactech/assetgen/pkg/audio"
)

// WAVHeaderSize is the size of the canonical PCM WAV header
const WAVHeaderSize = 44

const wavFormatPCM = 1

// WAVEncoder encodes PCM samples into a RIFF/WAVE file image
type WAVEncoder struct {
	format audio.Format
	pcm    Encoder
}

// NewWAV creates a new WAV encoder
func NewWAV(format audio.Format) (Encoder, error) {
	if format.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate: %d", format.SampleRate)
	}

	pcm, err := NewPCM(format)
	if err != nil {
		return nil, err
	}

	return &WAVEncoder{
		format: format,
		pcm:    pcm,
	}, nil
}

// Encode returns the header followed by the PCM data chunk
func (e *WAVEncoder) Encode(samples []int16) ([]byte, error) {
	data, err := e.pcm.Encode(samples)
	if err != nil {
		return nil, err
	}

	blockAlign := e.format.BytesPerFrame()
	out := make([]byte, WAVHeaderSize+len(data))

	copy(out[0:4], "RIFF")
	binary.LittleEndian.PutUint32(out[4:8], uint32(36+len(data)))
	copy(out[8:12], "WAVE")

	copy(out[12:16], "fmt ")
	binary.LittleEndian.PutUint32(out[16:20], 16)
	binary.LittleEndian.PutUint16(out[20:22], wavFormatPCM)
	binary.LittleEndian.PutUint16(out[22:24], uint16(e.format.Channels))
	binary.LittleEndian.PutUint32(out[24:28], uint32(e.format.SampleRate))
	binary.LittleEndian.PutUint32(out[28:32], uint32(e.format.SampleRate*blockAlign))
	binary.LittleEndian.PutUint16(out[32:34], uint16(blockAlign))
	binary.LittleEndian.PutUint16(out[34:36], uint16(e.format.BitDepth))

	copy(out[36:40], "data")
	binary.LittleEndian.PutUint32(out[40:44], uint32(len(data)))
	copy(out[WAVHeaderSize:], data)

	return out, nil
}

// Close releases resources
func (e *WAVEncoder) Close() error {
	return e.pcm.Close()
}

// WriteWAV encodes buf and writes it to path in a single write
func WriteWAV(path string, buf *audio.Buffer) error {
	encoder, err := NewWAV(buf.Format)
	if err != nil {
		return err
	}
	defer encoder.Close()

	data, err := encoder.Encode(buf.Samples)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
