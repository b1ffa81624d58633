package card

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/ardnew/softsd/card/hal/sim"
	"github.com/ardnew/softsd/pkg"
)

func TestStreamEquivalence(t *testing.T) {
	for _, delay := range []int{0, 1, 64} {
		c, _, _ := newReady(t, sim.WithTokenDelay(delay))
		const addr = 20000
		for i := range 3 {
			if err := c.WriteBlock(addr+BlockAddress(i), pattern(byte(i+1))); err != nil {
				t.Fatalf("WriteBlock() error = %v", err)
			}
		}

		var want []byte
		for i := range 3 {
			var b Block
			if err := c.ReadBlock(addr+BlockAddress(i), &b); err != nil {
				t.Fatalf("ReadBlock() error = %v", err)
			}
			want = append(want, b[:]...)
		}

		s, err := c.StartStream(addr, 3)
		if err != nil {
			t.Fatalf("StartStream() error = %v", err)
		}
		got := make([]byte, 3*BlockSize)
		n, err := s.Read(got)
		if err != nil || n != len(got) {
			t.Fatalf("Read() = %d, %v, want %d, nil", n, err, len(got))
		}
		if err := s.Stop(); err != nil {
			t.Fatalf("Stop() error = %v", err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("token delay %d: streamed bytes differ from block reads", delay)
		}
	}
}

func TestStreamSmallReads(t *testing.T) {
	c, _, store := newReady(t)
	data := make([]byte, 2*BlockSize)
	for i := range data {
		data[i] = byte(i * 13)
	}
	store.Put(100, data)

	s, err := c.StartStream(100, 2)
	if err != nil {
		t.Fatalf("StartStream() error = %v", err)
	}
	defer s.Stop()

	var got []byte
	buf := make([]byte, 100)
	for len(got) < len(data) {
		n := min(len(buf), len(data)-len(got))
		if _, err := io.ReadFull(s, buf[:n]); err != nil {
			t.Fatalf("ReadFull() error = %v", err)
		}
		got = append(got, buf[:n]...)
	}
	if !bytes.Equal(got, data) {
		t.Error("streamed bytes mismatch")
	}
}

func TestStreamReadByteAndSkip(t *testing.T) {
	c, _, store := newReady(t)
	data := make([]byte, 2*BlockSize)
	for i := range data {
		data[i] = byte(i)
	}
	data[BlockSize] = 0xAB
	store.Put(10, data)

	s, err := c.StartStream(10, 0)
	if err != nil {
		t.Fatalf("StartStream() error = %v", err)
	}
	defer s.Stop()

	if err := s.Skip(BlockSize - 1); err != nil {
		t.Fatalf("Skip() error = %v", err)
	}
	b, err := s.ReadByte()
	if err != nil || b != data[BlockSize-1] {
		t.Fatalf("ReadByte() = %#02x, %v, want %#02x, nil", b, err, data[BlockSize-1])
	}
	if got := s.RemainingInBlock(); got != 0 {
		t.Errorf("RemainingInBlock() = %d, want 0", got)
	}
	b, err = s.ReadByte()
	if err != nil || b != 0xAB {
		t.Errorf("ReadByte() across boundary = %#02x, %v, want 0xab, nil", b, err)
	}
	if err := s.Skip(-1); !errors.Is(err, pkg.ErrInvalidParameter) {
		t.Errorf("Skip(-1) error = %v, want %v", err, pkg.ErrInvalidParameter)
	}
}

func TestStreamBookkeeping(t *testing.T) {
	c, _, _ := newReady(t)
	s, err := c.StartStream(500, 3)
	if err != nil {
		t.Fatalf("StartStream() error = %v", err)
	}
	defer s.Stop()

	check := func(read, remaining uint32, inBlock int, addr BlockAddress) {
		t.Helper()
		if got := s.BlocksRead(); got != read {
			t.Errorf("BlocksRead() = %d, want %d", got, read)
		}
		if got := s.BlocksRemaining(); got != remaining {
			t.Errorf("BlocksRemaining() = %d, want %d", got, remaining)
		}
		if got := s.RemainingInBlock(); got != inBlock {
			t.Errorf("RemainingInBlock() = %d, want %d", got, inBlock)
		}
		if got := s.Address(); got != addr {
			t.Errorf("Address() = %d, want %d", got, addr)
		}
	}

	check(0, 3, BlockSize, 500)
	buf := make([]byte, 600)
	if _, err := s.Read(buf); err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	check(1, 2, BlockSize-88, 501)
	if err := s.Skip(BlockSize - 88); err != nil {
		t.Fatalf("Skip() error = %v", err)
	}
	check(2, 1, 0, 501)
	if s.Start() != 500 {
		t.Errorf("Start() = %d, want 500", s.Start())
	}
}

func TestStreamMisuse(t *testing.T) {
	c, bus, _ := newReady(t)
	s, err := c.StartStream(0, 1)
	if err != nil {
		t.Fatalf("StartStream() error = %v", err)
	}
	if !c.Streaming() {
		t.Error("Streaming() = false, want true")
	}

	if _, err := c.StartStream(1, 1); !errors.Is(err, pkg.ErrStreamMisuse) {
		t.Errorf("second StartStream() error = %v, want %v", err, pkg.ErrStreamMisuse)
	}
	var b Block
	if err := c.ReadBlock(1, &b); !errors.Is(err, pkg.ErrStreamMisuse) {
		t.Errorf("ReadBlock() error = %v, want %v", err, pkg.ErrStreamMisuse)
	}
	if err := c.WriteBlock(1, &b); !errors.Is(err, pkg.ErrStreamMisuse) {
		t.Errorf("WriteBlock() error = %v, want %v", err, pkg.ErrStreamMisuse)
	}

	if err := s.Stop(); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	cmds := len(bus.Commands())

	if err := s.Stop(); !errors.Is(err, pkg.ErrStreamMisuse) {
		t.Errorf("second Stop() error = %v, want %v", err, pkg.ErrStreamMisuse)
	}
	if err := s.Close(); !errors.Is(err, pkg.ErrStreamMisuse) {
		t.Errorf("Close() after Stop error = %v, want %v", err, pkg.ErrStreamMisuse)
	}
	if _, err := s.Read(b[:]); !errors.Is(err, pkg.ErrStreamMisuse) {
		t.Errorf("Read() after Stop error = %v, want %v", err, pkg.ErrStreamMisuse)
	}
	if got := len(bus.Commands()); got != cmds {
		t.Errorf("commands after stopped-stream calls = %d, want %d", got, cmds)
	}
	if got := bus.Count(CmdStopTransmission); got != 1 {
		t.Errorf("CMD12 count = %d, want 1", got)
	}
}

func TestQuiesce(t *testing.T) {
	c, bus, _ := newReady(t)
	if err := c.Quiesce(); err != nil {
		t.Errorf("Quiesce() with no stream error = %v", err)
	}
	if got := bus.Count(CmdStopTransmission); got != 0 {
		t.Errorf("CMD12 count = %d, want 0", got)
	}

	s, err := c.StartStream(0, 0)
	if err != nil {
		t.Fatalf("StartStream() error = %v", err)
	}
	if err := c.Quiesce(); err != nil {
		t.Fatalf("Quiesce() error = %v", err)
	}
	if c.Streaming() {
		t.Error("Streaming() = true after Quiesce")
	}
	if err := s.Stop(); !errors.Is(err, pkg.ErrStreamMisuse) {
		t.Errorf("Stop() after Quiesce error = %v, want %v", err, pkg.ErrStreamMisuse)
	}
	if bus.Selected() {
		t.Error("bus left selected after Quiesce")
	}
}

func TestReadAfterEarlyStop(t *testing.T) {
	tests := []struct {
		name string
		read int
		busy int
	}{
		{"at start", 0, 32},
		{"mid block", 700, 32},
		{"block boundary", 2 * BlockSize, 32},
		{"long busy", 100, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, store := newReady(t, sim.WithStopBusy(tt.busy))
			store.Put(300, bytes.Repeat([]byte{0x11}, 4*BlockSize))
			want := bytes.Repeat([]byte{0x22}, BlockSize)
			store.Put(9000, want)

			s, err := c.StartStream(300, 4)
			if err != nil {
				t.Fatalf("StartStream() error = %v", err)
			}
			buf := make([]byte, tt.read)
			if _, err := s.Read(buf); err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if err := s.Stop(); err != nil {
				t.Fatalf("Stop() error = %v", err)
			}

			// The card is still busy from CMD12 unless Stop drained it.
			var got Block
			if err := c.ReadBlock(9000, &got); err != nil {
				t.Fatalf("ReadBlock() after early stop error = %v", err)
			}
			if !bytes.Equal(got[:], want) {
				t.Error("ReadBlock() after early stop returned wrong data")
			}
			if err := c.WriteBlock(9001, &got); err != nil {
				t.Errorf("WriteBlock() after early stop error = %v", err)
			}
		})
	}
}

func TestStreamPastEnd(t *testing.T) {
	c, _, _ := newReady(t)
	s, err := c.StartStream(testBlocks-1, 0)
	if err != nil {
		t.Fatalf("StartStream() error = %v", err)
	}

	buf := make([]byte, 2*BlockSize)
	n, err := s.Read(buf)
	if !IsEndOfMedia(err) {
		t.Errorf("Read() error = %v, want end of media", err)
	}
	if n != BlockSize {
		t.Errorf("Read() n = %d, want %d", n, BlockSize)
	}
	// The error sticks and the stream still needs stopping.
	if _, err := s.Read(buf); !IsEndOfMedia(err) {
		t.Errorf("second Read() error = %v, want end of media", err)
	}
	if !c.Streaming() {
		t.Error("Streaming() = false after read error, want true")
	}
	if err := s.Stop(); err != nil {
		t.Errorf("Stop() error = %v", err)
	}

	var b Block
	if err := c.ReadBlock(0, &b); err != nil {
		t.Errorf("ReadBlock() after stop error = %v", err)
	}
}

func TestStartStreamFailure(t *testing.T) {
	c, bus, _ := newReady(t)
	if _, err := c.StartStream(testBlocks, 0); !IsEndOfMedia(err) {
		t.Fatalf("StartStream() error = %v, want end of media", err)
	}
	if c.Streaming() {
		t.Error("Streaming() = true after failed start")
	}
	if bus.Selected() {
		t.Error("bus left selected after failed start")
	}
}

func TestStartStreamTokenTimeout(t *testing.T) {
	c, bus, _ := newSim(t, Config{TokenPolls: 10}, sim.WithTokenDelay(40))
	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if _, err := c.StartStream(0, 0); !errors.Is(err, pkg.ErrTransportTimeout) {
		t.Fatalf("StartStream() error = %v, want %v", err, pkg.ErrTransportTimeout)
	}
	if c.Streaming() {
		t.Error("Streaming() = true after failed start")
	}
	if got := bus.Count(CmdStopTransmission); got != 1 {
		t.Errorf("CMD12 count = %d, want 1", got)
	}

	var b Block
	if _, err := c.StartStream(0, 0); err == nil {
		t.Error("StartStream() error = nil, want timeout")
	}
	if err := c.ReadBlock(0, &b); !errors.Is(err, pkg.ErrTransportTimeout) {
		t.Errorf("ReadBlock() error = %v, want %v", err, pkg.ErrTransportTimeout)
	}
}
