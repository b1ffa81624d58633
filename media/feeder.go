package media

import (
	"fmt"
	"io"

	"github.com/ardnew/softsd/card"
	"github.com/ardnew/softsd/pkg"
)

type feederState uint8

const (
	feederIdle feederState = iota
	feederPlaying
	feederPaused
)

// Feeder moves audio from the card into a playback sink one block per
// timer tick. Playback is a single open stream; a paused feeder holds no
// stream and resumes at the first unplayed block.
type Feeder struct {
	src    Source
	out    io.Writer
	state  feederState
	addr   card.BlockAddress
	size   uint32
	played uint32
	stream *card.Stream
	buf    card.Block
}

// NewFeeder creates an idle feeder writing blocks to out.
func NewFeeder(src Source, out io.Writer) *Feeder {
	return &Feeder{src: src, out: out}
}

// Start begins playback of sizeBlocks blocks at addr, stopping any
// playback in progress. Address 0 means the file is absent and Start does
// nothing. A size of 0 plays until Service is told to terminate.
func (f *Feeder) Start(addr card.BlockAddress, sizeBlocks uint32) error {
	if err := f.Stop(); err != nil {
		pkg.LogWarn(pkg.ComponentMedia, "feeder: stop previous", "error", err)
	}
	if addr == 0 {
		return nil
	}
	f.addr, f.size, f.played = addr, sizeBlocks, 0
	if err := f.open(); err != nil {
		return err
	}
	pkg.LogDebug(pkg.ComponentMedia, "feeder started", "block", uint32(addr), "blocks", sizeBlocks)
	return nil
}

func (f *Feeder) open() error {
	s, err := f.src.StartStream(f.addr+card.BlockAddress(f.played), f.remaining())
	if err != nil {
		f.state = feederIdle
		return fmt.Errorf("media: feeder: %w", err)
	}
	f.stream = s
	f.state = feederPlaying
	return nil
}

func (f *Feeder) remaining() uint32 {
	if f.size == 0 || f.played >= f.size {
		return 0
	}
	return f.size - f.played
}

// Service copies the next block into the sink. It reports done once the
// file has played out, the stream was stopped underneath it, terminate is
// set, or an error ends playback. A paused or idle feeder does nothing; an
// idle feeder reports done.
func (f *Feeder) Service(terminate bool) (done bool, err error) {
	switch f.state {
	case feederIdle:
		return true, nil
	case feederPaused:
		if terminate {
			f.state = feederIdle
			return true, nil
		}
		return false, nil
	}

	if !f.stream.Active() {
		pkg.LogDebug(pkg.ComponentMedia, "feeder stream quiesced", "played", f.played)
		f.stream = nil
		f.state = feederIdle
		return true, nil
	}
	if terminate {
		return true, f.Stop()
	}

	if _, err := io.ReadFull(f.stream, f.buf[:]); err != nil {
		return true, fmt.Errorf("media: feeder block %d: %w", f.played, joinStop(err, f.Stop()))
	}
	if _, err := f.out.Write(f.buf[:]); err != nil {
		return true, fmt.Errorf("media: feeder sink: %w", joinStop(err, f.Stop()))
	}
	f.played++

	if f.size != 0 && f.played >= f.size {
		return true, f.Stop()
	}
	return false, nil
}

// joinStop keeps the primary error and logs a failed stop.
func joinStop(err, serr error) error {
	if serr != nil {
		pkg.LogWarn(pkg.ComponentMedia, "feeder: stop after error", "error", serr)
	}
	return err
}

// Pause stops the stream and keeps the playback position.
func (f *Feeder) Pause() error {
	if f.state != feederPlaying {
		return nil
	}
	err := f.closeStream()
	f.state = feederPaused
	return err
}

// Resume restarts a paused feeder at the first unplayed block.
func (f *Feeder) Resume() error {
	if f.state != feederPaused {
		return nil
	}
	return f.open()
}

// Stop ends playback and returns the feeder to idle.
func (f *Feeder) Stop() error {
	err := f.closeStream()
	f.state = feederIdle
	return err
}

func (f *Feeder) closeStream() error {
	s := f.stream
	f.stream = nil
	if s == nil || !s.Active() {
		return nil
	}
	return s.Stop()
}

// Active reports whether playback is in progress or paused.
func (f *Feeder) Active() bool {
	return f.state != feederIdle
}

// Paused reports whether playback is paused.
func (f *Feeder) Paused() bool {
	return f.state == feederPaused
}

// Played returns the number of blocks written to the sink.
func (f *Feeder) Played() uint32 {
	return f.played
}
