package engine

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/ardnew/softsd/card"
	"github.com/ardnew/softsd/pkg"
)

// memDevice records block writes.
type memDevice struct {
	blocks map[card.BlockAddress]card.Block
	writes []card.BlockAddress
	fail   error
}

func newMemDevice() *memDevice {
	return &memDevice{blocks: make(map[card.BlockAddress]card.Block)}
}

func (d *memDevice) ReadBlock(addr card.BlockAddress, b *card.Block) error {
	if d.fail != nil {
		return d.fail
	}
	*b = d.blocks[addr]
	return nil
}

func (d *memDevice) WriteBlock(addr card.BlockAddress, b *card.Block) error {
	if d.fail != nil {
		return d.fail
	}
	d.blocks[addr] = *b
	d.writes = append(d.writes, addr)
	return nil
}

func TestBatteryLogFillsBlocks(t *testing.T) {
	dev := newMemDevice()
	log := NewBatteryLog(dev, 100)

	for i := range samplesPerBlock + 3 {
		if err := log.Record(uint16(2000 + i)); err != nil {
			t.Fatalf("Record(%d) error = %v", i, err)
		}
	}
	if len(dev.writes) != 1 || dev.writes[0] != 100 {
		t.Fatalf("writes = %v, want [100]", dev.writes)
	}
	if got := log.Next(); got != 101 {
		t.Errorf("Next() = %d, want 101", got)
	}
	if got := log.Pending(); got != 3 {
		t.Errorf("Pending() = %d, want 3", got)
	}

	b := dev.blocks[100]
	for i := range samplesPerBlock {
		if got := binary.BigEndian.Uint16(b[i*2:]); got != uint16(2000+i) {
			t.Fatalf("sample %d = %d, want %d", i, got, 2000+i)
		}
	}
}

func TestBatteryLogRetriesFullBlock(t *testing.T) {
	dev := newMemDevice()
	log := NewBatteryLog(dev, 100)

	dev.fail = errors.New("busy")
	for i := range samplesPerBlock - 1 {
		if err := log.Record(2000); err != nil {
			t.Fatalf("Record(%d) error = %v", i, err)
		}
	}
	if err := log.Record(2000); err == nil {
		t.Fatal("Record() filling the block error = nil, want failure")
	}
	if err := log.Record(2001); err == nil {
		t.Fatal("Record() on a stuck block error = nil, want failure")
	}
	if got := log.Pending(); got != samplesPerBlock {
		t.Fatalf("Pending() = %d, want %d", got, samplesPerBlock)
	}

	dev.fail = nil
	if err := log.Record(2002); err != nil {
		t.Fatalf("Record() after recovery error = %v", err)
	}
	if got := log.Next(); got != 101 {
		t.Errorf("Next() = %d, want 101", got)
	}
	if got := log.Pending(); got != 1 {
		t.Errorf("Pending() = %d, want 1", got)
	}
}

func TestBatteryLogLowSample(t *testing.T) {
	dev := newMemDevice()
	log := NewBatteryLog(dev, 100)

	for _, s := range []uint16{1600, 1500, 1450} {
		if err := log.Record(s); err != nil {
			t.Fatal(err)
		}
	}
	if len(dev.writes) != 0 {
		t.Fatalf("writes = %v, want none above threshold", dev.writes)
	}

	if err := log.Record(1449); err != nil {
		t.Fatal(err)
	}
	if err := log.Record(1400); err != nil {
		t.Fatal(err)
	}
	want := []card.BlockAddress{100, 100}
	if len(dev.writes) != len(want) || dev.writes[0] != want[0] || dev.writes[1] != want[1] {
		t.Errorf("writes = %v, want %v", dev.writes, want)
	}
	if got := log.Next(); got != 100 {
		t.Errorf("Next() = %d, want 100", got)
	}

	got, err := ReadBatteryLog(dev, 100, 1)
	if err != nil {
		t.Fatalf("ReadBatteryLog() error = %v", err)
	}
	wantSamples := []uint16{1600, 1500, 1450, 1449, 1400}
	if len(got) != len(wantSamples) {
		t.Fatalf("ReadBatteryLog() = %v, want %v", got, wantSamples)
	}
	for i := range got {
		if got[i] != wantSamples[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], wantSamples[i])
		}
	}
}

func TestBatteryLogFlush(t *testing.T) {
	dev := newMemDevice()
	log := NewBatteryLog(dev, 7)

	if err := log.Flush(); err != nil || len(dev.writes) != 0 {
		t.Errorf("Flush() on empty log = %v, writes %v", err, dev.writes)
	}

	_ = log.Record(2000)
	if err := log.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if len(dev.writes) != 1 || dev.writes[0] != 7 {
		t.Errorf("writes = %v, want [7]", dev.writes)
	}
	if got := log.Pending(); got != 1 {
		t.Errorf("Pending() = %d, want 1", got)
	}

	dev.fail = errors.New("bus fault")
	if err := log.Flush(); !errors.Is(err, dev.fail) {
		t.Errorf("Flush() error = %v, want %v", err, dev.fail)
	}
}

func TestReadBatteryLog(t *testing.T) {
	dev := newMemDevice()
	log := NewBatteryLog(dev, 0)
	for i := range 2*samplesPerBlock + 1 {
		_ = log.Record(3000 + uint16(i%5))
	}
	_ = log.Flush()

	got, err := ReadBatteryLog(dev, 0, 7)
	if err != nil {
		t.Fatalf("ReadBatteryLog() error = %v", err)
	}
	if len(got) != 2*samplesPerBlock+1 {
		t.Errorf("len(samples) = %d, want %d", len(got), 2*samplesPerBlock+1)
	}

	dev.fail = errors.New("unreadable")
	if _, err := ReadBatteryLog(dev, 0, 1); !errors.Is(err, dev.fail) {
		t.Errorf("ReadBatteryLog() error = %v, want %v", err, dev.fail)
	}
}

func TestReadBatteryLogBlocks(t *testing.T) {
	dev := newMemDevice()
	log := NewBatteryLog(dev, 0)
	for range samplesPerBlock {
		_ = log.Record(3000)
	}

	tests := []struct {
		name    string
		blocks  int
		want    int
		wantErr error
	}{
		{"negative", -1, 0, pkg.ErrInvalidParameter},
		{"none", 0, 0, nil},
		{"one", 1, samplesPerBlock, nil},
		{"past the log", 3, samplesPerBlock, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadBatteryLog(dev, 0, tt.blocks)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ReadBatteryLog(%d) error = %v, want %v", tt.blocks, err, tt.wantErr)
			}
			if len(got) != tt.want {
				t.Errorf("ReadBatteryLog(%d) = %d samples, want %d", tt.blocks, len(got), tt.want)
			}
		})
	}
}
