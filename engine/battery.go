package engine

import (
	"encoding/binary"
	"fmt"

	"github.com/ardnew/softsd/card"
	"github.com/ardnew/softsd/pkg"
)

// LowBatteryThreshold is the raw ADC reading below which the battery is
// considered low. A low sample is written to the card immediately.
const LowBatteryThreshold = 1450

// samplesPerBlock is the number of 16-bit samples in one block.
const samplesPerBlock = card.BlockSize / 2

// BlockDevice reads and writes single blocks.
type BlockDevice interface {
	ReadBlock(addr card.BlockAddress, b *card.Block) error
	WriteBlock(addr card.BlockAddress, b *card.Block) error
}

// BatteryLog records raw battery samples as big-endian uint16 values packed
// into consecutive blocks. A block is written when it fills or when a low
// sample arrives, so the log survives the device shutting off.
type BatteryLog struct {
	dev   BlockDevice
	start card.BlockAddress
	next  card.BlockAddress
	buf   card.Block
	n     int
}

// NewBatteryLog creates a log writing from block start.
func NewBatteryLog(dev BlockDevice, start card.BlockAddress) *BatteryLog {
	return &BatteryLog{dev: dev, start: start, next: start}
}

// Record appends one sample. If a full block is still waiting on a failed
// flush, it is retried first and the sample is dropped if that fails again.
func (l *BatteryLog) Record(sample uint16) error {
	if l.n == samplesPerBlock {
		if err := l.Flush(); err != nil {
			return err
		}
	}
	binary.BigEndian.PutUint16(l.buf[l.n*2:], sample)
	l.n++

	if l.n == samplesPerBlock {
		return l.Flush()
	}
	if sample < LowBatteryThreshold {
		pkg.LogWarn(pkg.ComponentEngine, "battery low", "sample", sample)
		return l.Flush()
	}
	return nil
}

// Flush writes the current block. A full block advances the log to the
// next block; a partial one is rewritten by later flushes.
func (l *BatteryLog) Flush() error {
	if l.n == 0 {
		return nil
	}
	if err := l.dev.WriteBlock(l.next, &l.buf); err != nil {
		return fmt.Errorf("engine: battery log: %w", err)
	}
	if l.n == samplesPerBlock {
		l.next++
		l.buf = card.Block{}
		l.n = 0
	}
	return nil
}

// Pending returns the number of samples in the current block.
func (l *BatteryLog) Pending() int {
	return l.n
}

// Next returns the block the next flush writes.
func (l *BatteryLog) Next() card.BlockAddress {
	return l.next
}

// ReadBatteryLog reads blocks log blocks from start and returns their
// samples. Trailing zero samples of the last block are dropped.
func ReadBatteryLog(dev BlockDevice, start card.BlockAddress, blocks int) ([]uint16, error) {
	if blocks < 0 {
		return nil, fmt.Errorf("engine: %w: battery log blocks %d", pkg.ErrInvalidParameter, blocks)
	}
	samples := make([]uint16, 0, blocks*samplesPerBlock)
	var b card.Block
	for i := range blocks {
		if err := dev.ReadBlock(start+card.BlockAddress(i), &b); err != nil {
			return samples, fmt.Errorf("engine: battery log block %d: %w", i, err)
		}
		for j := 0; j < card.BlockSize; j += 2 {
			samples = append(samples, binary.BigEndian.Uint16(b[j:]))
		}
	}
	for len(samples) > 0 && samples[len(samples)-1] == 0 {
		samples = samples[:len(samples)-1]
	}
	return samples, nil
}
