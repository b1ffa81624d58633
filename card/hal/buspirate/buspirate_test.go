package buspirate

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"periph.io/x/conn/v3/physic"

	"github.com/ardnew/softsd/card"
	"github.com/ardnew/softsd/card/hal"
	"github.com/ardnew/softsd/card/hal/sim"
	"github.com/ardnew/softsd/pkg"
)

type pirateMode uint8

const (
	modeTerminal pirateMode = iota
	modeBitbang
	modeSPI
)

// pirate emulates the binary-mode firmware in front of a simulated card.
type pirate struct {
	card     *sim.Card
	mode     pirateMode
	pending  int
	out      bytes.Buffer
	commands []byte
}

func (p *pirate) Write(b []byte) (int, error) {
	for _, c := range b {
		p.input(c)
	}
	return len(b), nil
}

func (p *pirate) Read(b []byte) (int, error) {
	if p.out.Len() == 0 {
		return 0, io.EOF
	}
	return p.out.Read(b)
}

func (p *pirate) input(c byte) {
	if p.pending > 0 {
		v, _ := p.card.Exchange(c)
		p.out.WriteByte(v)
		p.pending--
		return
	}
	p.commands = append(p.commands, c)

	switch p.mode {
	case modeTerminal:
		if c == cmdReset {
			p.out.WriteString(bitbangSig)
			p.mode = modeBitbang
		}
	case modeBitbang:
		switch c {
		case cmdReset:
			p.out.WriteString(bitbangSig)
		case cmdSPI:
			p.out.WriteString(spiModeSig)
			p.mode = modeSPI
		case cmdUserMode:
			p.mode = modeTerminal
		}
	case modeSPI:
		switch {
		case c == cmdReset:
			p.out.WriteString(bitbangSig)
			p.mode = modeBitbang
		case c == cmdCSLow:
			_ = p.card.Select()
			p.out.WriteByte(replyOK)
		case c == cmdCSHigh:
			_ = p.card.Deselect()
			p.out.WriteByte(replyOK)
		case c&0xF0 == cmdBulk:
			p.out.WriteByte(replyOK)
			p.pending = int(c&0x0F) + 1
		case c&0xF0 == cmdSpeed:
			_ = p.card.SetFrequency(speeds[c&0x07])
			p.out.WriteByte(replyOK)
		case c&0xF0 == cmdPeripherals, c&0xF0 == cmdConfig:
			p.out.WriteByte(replyOK)
		default:
			p.out.WriteByte(0x00)
		}
	}
}

func newPirate(t *testing.T) (*Bus, *pirate, *sim.MemoryStore) {
	t.Helper()
	store := sim.NewMemoryStore(1 << 16)
	p := &pirate{card: sim.New(store)}
	b, err := New(p)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return b, p, store
}

func TestNew(t *testing.T) {
	_, p, _ := newPirate(t)
	if p.mode != modeSPI {
		t.Errorf("mode = %d, want SPI", p.mode)
	}
	want := []byte{cmdReset, cmdSPI, 0x8A, 0x49}
	if !bytes.Equal(p.commands, want) {
		t.Errorf("commands = % x, want % x", p.commands, want)
	}
}

func TestNewSilent(t *testing.T) {
	_, err := New(&bytes.Buffer{})
	if !errors.Is(err, pkg.ErrTransportTimeout) {
		t.Errorf("New() error = %v, want %v", err, pkg.ErrTransportTimeout)
	}
}

func TestSetFrequency(t *testing.T) {
	tests := []struct {
		f, want physic.Frequency
	}{
		{hal.SlowFrequency, 250 * physic.KiloHertz},
		{400 * physic.KiloHertz, 250 * physic.KiloHertz},
		{hal.FastFrequency, 8 * physic.MegaHertz},
		{20 * physic.MegaHertz, 8 * physic.MegaHertz},
		{3 * physic.MegaHertz, 2600 * physic.KiloHertz},
		{10 * physic.KiloHertz, 30 * physic.KiloHertz},
	}
	b, p, _ := newPirate(t)
	for _, tt := range tests {
		if err := b.SetFrequency(tt.f); err != nil {
			t.Fatalf("SetFrequency(%v) error = %v", tt.f, err)
		}
		if got := b.Frequency(); got != tt.want {
			t.Errorf("SetFrequency(%v) selected %v, want %v", tt.f, got, tt.want)
		}
		if got := p.card.Frequency(); got != tt.want {
			t.Errorf("card clock = %v, want %v", got, tt.want)
		}
	}
}

func TestCard(t *testing.T) {
	b, p, store := newPirate(t)
	var _ hal.Bulk = b

	c := card.New(b, card.DefaultConfig())
	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if got := p.card.Frequency(); got != hal.SlowFrequency {
		t.Errorf("clock during init = %v, want %v", got, hal.SlowFrequency)
	}
	if err := c.RaiseClock(); err != nil {
		t.Fatalf("RaiseClock() error = %v", err)
	}

	var w, r card.Block
	for i := range w {
		w[i] = byte(i * 3)
	}
	if err := c.WriteBlock(42, &w); err != nil {
		t.Fatalf("WriteBlock() error = %v", err)
	}
	if err := c.ReadBlock(42, &r); err != nil {
		t.Fatalf("ReadBlock() error = %v", err)
	}
	if r != w {
		t.Error("ReadBlock() data does not match WriteBlock()")
	}

	got := make([]byte, card.BlockSize)
	if err := store.ReadBlock(42, got); err != nil || !bytes.Equal(got, w[:]) {
		t.Errorf("store block 42 does not match, err = %v", err)
	}
	if p.card.Selected() {
		t.Error("card left selected")
	}
}

func TestClose(t *testing.T) {
	b, p, _ := newPirate(t)
	if err := b.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if p.mode != modeTerminal {
		t.Errorf("mode after Close = %d, want terminal", p.mode)
	}
}
