package media

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/ardnew/softsd/pkg"
)

// WAV header field offsets of a canonical 44-byte header.
const (
	wavSizeField     = 4
	wavChannels      = 22
	wavSampleRate    = 24
	wavBitsPerSample = 34
	WAVHeaderSize    = 44
)

// WAVFormat describes PCM audio in a canonical WAV header.
type WAVFormat struct {
	Channels      int
	SampleRate    int
	BitsPerSample int
	// Size is the RIFF size field.
	Size uint32
}

// ParseWAVHeader decodes the canonical header at the start of b.
func ParseWAVHeader(b []byte) (WAVFormat, error) {
	if len(b) < WAVHeaderSize {
		return WAVFormat{}, fmt.Errorf("media: %w: wav header needs %d bytes", pkg.ErrBufferTooSmall, WAVHeaderSize)
	}
	if !bytes.Equal(b[0:4], []byte("RIFF")) || !bytes.Equal(b[8:12], []byte("WAVE")) {
		return WAVFormat{}, fmt.Errorf("media: %w: not a wav header", pkg.ErrProtocol)
	}
	f := WAVFormat{
		Channels:      int(binary.LittleEndian.Uint16(b[wavChannels:])),
		SampleRate:    int(binary.LittleEndian.Uint32(b[wavSampleRate:])),
		BitsPerSample: int(binary.LittleEndian.Uint16(b[wavBitsPerSample:])),
		Size:          binary.LittleEndian.Uint32(b[wavSizeField:]),
	}
	if f.Channels == 0 || f.SampleRate == 0 {
		return f, fmt.Errorf("media: %w: wav format %+v", pkg.ErrProtocol, f)
	}
	switch f.BitsPerSample {
	case 8, 16:
	default:
		return f, fmt.Errorf("media: %w: %d-bit wav", pkg.ErrNotSupported, f.BitsPerSample)
	}
	return f, nil
}

// SizeBlocks returns the RIFF size in whole blocks.
func (f WAVFormat) SizeBlocks() uint32 {
	return f.Size / 512
}

// Silence returns the sample byte value of silence.
func (f WAVFormat) Silence() byte {
	if f.BitsPerSample == 8 {
		return 0x80
	}
	return 0
}
