//go:build !headless

package otosink

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/ardnew/softsd/media"
	"github.com/ardnew/softsd/pkg"
)

// Sink plays PCM written to it on the host audio device. Write never
// blocks; when the buffer runs dry the player hears silence.
type Sink struct {
	ctx     *oto.Context
	player  *oto.Player
	format  media.WAVFormat
	buf     []byte
	skip    int
	started bool
	mutex   sync.Mutex
}

// New opens the audio device for f. The first skip bytes written are
// dropped, which lets a caller feed whole blocks including the WAV header.
func New(f media.WAVFormat, skip int) (*Sink, error) {
	op := &oto.NewContextOptions{
		SampleRate:   f.SampleRate,
		ChannelCount: f.Channels,
		Format:       oto.FormatUnsignedInt8,
	}
	if f.BitsPerSample == 16 {
		op.Format = oto.FormatSignedInt16LE
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("otosink: %w", err)
	}
	<-ready

	s := &Sink{ctx: ctx, format: f, skip: skip}
	s.player = ctx.NewPlayer(s)
	pkg.LogInfo(pkg.ComponentMedia, "audio sink open", "rate", f.SampleRate, "channels", f.Channels, "bits", f.BitsPerSample)
	return s, nil
}

// Write queues PCM and starts the player on first use.
func (s *Sink) Write(p []byte) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	n := len(p)
	if s.skip > 0 {
		k := min(s.skip, len(p))
		s.skip -= k
		p = p[k:]
	}
	s.buf = append(s.buf, p...)
	if !s.started {
		s.player.Play()
		s.started = true
	}
	return n, nil
}

// Read is called by the player. It never returns short.
func (s *Sink) Read(p []byte) (int, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	n := copy(p, s.buf)
	s.buf = s.buf[n:]
	for i := n; i < len(p); i++ {
		p[i] = s.format.Silence()
	}
	return len(p), nil
}

// Buffered returns the number of queued bytes not yet played.
func (s *Sink) Buffered() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.buf)
}

// Close stops playback.
func (s *Sink) Close() error {
	s.mutex.Lock()
	p := s.player
	s.player = nil
	s.mutex.Unlock()

	if p == nil {
		return nil
	}
	return p.Close()
}
