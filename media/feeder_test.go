package media

import (
	"bytes"
	"errors"
	"testing"

	"periph.io/x/conn/v3/physic"

	"github.com/ardnew/softsd/card"
	"github.com/ardnew/softsd/pkg"
)

type floating struct{}

func (floating) Select() error { return nil }
func (floating) Deselect() error { return nil }
func (floating) Exchange(byte) (byte, error) { return 0xFF, nil }
func (floating) SetFrequency(physic.Frequency) error { return nil }

// pattern returns n blocks whose bytes identify block and offset.
func pattern(n int) []byte {
	b := make([]byte, n*card.BlockSize)
	for i := range b {
		b[i] = byte(i/card.BlockSize*7 + i)
	}
	return b
}

func TestFeederPlaysOut(t *testing.T) {
	c, bus, store := newCard(t)
	data := pattern(5)
	store.Put(200, data)

	var sink bytes.Buffer
	f := NewFeeder(c, &sink)
	if err := f.Start(200, 5); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	ticks := 0
	for {
		done, err := f.Service(false)
		if err != nil {
			t.Fatalf("Service() error = %v", err)
		}
		ticks++
		if done {
			break
		}
	}
	if ticks != 5 {
		t.Errorf("ticks = %d, want 5", ticks)
	}
	if !bytes.Equal(sink.Bytes(), data) {
		t.Error("sink data does not match store")
	}
	if f.Active() || c.Streaming() || bus.Selected() {
		t.Error("feeder still active after playing out")
	}
	if done, err := f.Service(false); !done || err != nil {
		t.Errorf("Service() idle = %v, %v, want true, nil", done, err)
	}
}

func TestFeederTerminate(t *testing.T) {
	c, _, store := newCard(t)
	store.Put(200, pattern(5))

	var sink bytes.Buffer
	f := NewFeeder(c, &sink)
	if err := f.Start(200, 5); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Service(false); err != nil {
		t.Fatal(err)
	}
	done, err := f.Service(true)
	if !done || err != nil {
		t.Errorf("Service(true) = %v, %v, want true, nil", done, err)
	}
	if sink.Len() != card.BlockSize {
		t.Errorf("sink holds %d bytes, want %d", sink.Len(), card.BlockSize)
	}
	if c.Streaming() {
		t.Error("stream left open after terminate")
	}
}

func TestFeederPauseResume(t *testing.T) {
	c, _, store := newCard(t)
	data := pattern(4)
	store.Put(200, data)

	var sink bytes.Buffer
	f := NewFeeder(c, &sink)
	if err := f.Start(200, 4); err != nil {
		t.Fatal(err)
	}
	for range 2 {
		if _, err := f.Service(false); err != nil {
			t.Fatal(err)
		}
	}

	if err := f.Pause(); err != nil {
		t.Fatalf("Pause() error = %v", err)
	}
	if !f.Paused() || c.Streaming() {
		t.Fatalf("Paused() = %v, Streaming() = %v, want true, false", f.Paused(), c.Streaming())
	}
	if done, err := f.Service(false); done || err != nil {
		t.Errorf("Service() paused = %v, %v, want false, nil", done, err)
	}

	// The card is free for other work while paused.
	var b card.Block
	if err := c.ReadBlock(10, &b); err != nil {
		t.Fatalf("ReadBlock() while paused error = %v", err)
	}

	if err := f.Resume(); err != nil {
		t.Fatalf("Resume() error = %v", err)
	}
	for {
		done, err := f.Service(false)
		if err != nil {
			t.Fatal(err)
		}
		if done {
			break
		}
	}
	if f.Played() != 4 {
		t.Errorf("Played() = %d, want 4", f.Played())
	}
	if !bytes.Equal(sink.Bytes(), data) {
		t.Error("sink data does not match store after resume")
	}
}

func TestFeederQuiesced(t *testing.T) {
	c, _, store := newCard(t)
	store.Put(200, pattern(4))

	f := NewFeeder(c, &bytes.Buffer{})
	if err := f.Start(200, 4); err != nil {
		t.Fatal(err)
	}
	if err := c.Quiesce(); err != nil {
		t.Fatalf("Quiesce() error = %v", err)
	}
	done, err := f.Service(false)
	if !done || err != nil {
		t.Errorf("Service() after Quiesce = %v, %v, want true, nil", done, err)
	}
	if f.Active() {
		t.Error("Active() = true after Quiesce")
	}
	if err := f.Stop(); err != nil {
		t.Errorf("Stop() error = %v, want nil", err)
	}
}

func TestFeederAbsent(t *testing.T) {
	c, bus, _ := newCard(t)
	before := len(bus.Commands())

	f := NewFeeder(c, &bytes.Buffer{})
	if err := f.Start(0, 10); err != nil {
		t.Fatalf("Start(0) error = %v", err)
	}
	if f.Active() {
		t.Error("Active() = true for absent file")
	}
	if got := len(bus.Commands()); got != before {
		t.Errorf("Start(0) sent %d commands, want 0", got-before)
	}
}

type failingSink struct{}

var errSink = errors.New("sink closed")

func (failingSink) Write([]byte) (int, error) { return 0, errSink }

func TestFeederErrors(t *testing.T) {
	c, _, store := newCard(t)
	store.Put(200, pattern(2))

	f := NewFeeder(c, failingSink{})
	if err := f.Start(200, 2); err != nil {
		t.Fatal(err)
	}
	done, err := f.Service(false)
	if !done || !errors.Is(err, errSink) {
		t.Errorf("Service() = %v, %v, want true, %v", done, err, errSink)
	}
	if c.Streaming() {
		t.Error("stream left open after sink error")
	}

	// Past the end of the card the stream fails with end of media.
	f = NewFeeder(c, &bytes.Buffer{})
	if err := f.Start(testBlocks-1, 3); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Service(false); err != nil {
		t.Fatalf("Service() last block error = %v", err)
	}
	done, err = f.Service(false)
	if !done || !errors.Is(err, pkg.ErrEndOfMedia) {
		t.Errorf("Service() past end = %v, %v, want true, %v", done, err, pkg.ErrEndOfMedia)
	}
	if c.Streaming() {
		t.Error("stream left open after end of media")
	}

	uninit := NewFeeder(card.New(floating{}, card.DefaultConfig()), &bytes.Buffer{})
	if err := uninit.Start(200, 2); !errors.Is(err, pkg.ErrNotInitialized) {
		t.Errorf("Start() error = %v, want %v", err, pkg.ErrNotInitialized)
	}
	if uninit.Active() {
		t.Error("Active() = true after failed start")
	}
}
