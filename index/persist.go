package index

import (
	"encoding/binary"
	"fmt"

	"github.com/ardnew/softsd/card"
	"github.com/ardnew/softsd/pkg"
)

// Address table geometry: one big-endian uint32 per catalog entry across
// two consecutive blocks.
const (
	addressSize = 4
	tableBlocks = 2
	tableSize   = tableBlocks * card.BlockSize
)

// wavSizeOffset is the offset of the little-endian RIFF size field.
const wavSizeOffset = 4

// Export writes the address table to the two index blocks in catalog
// order. Unused bytes are zero.
func (x *Index) Export(dev Device) error {
	if err := x.checkTable(); err != nil {
		return err
	}

	var buf [tableSize]byte
	for i, r := range x.records {
		binary.BigEndian.PutUint32(buf[i*addressSize:], uint32(r.Address))
	}
	for b := range tableBlocks {
		blk := (*card.Block)(buf[b*card.BlockSize : (b+1)*card.BlockSize])
		addr := x.layout.IndexBlock + card.BlockAddress(b)
		if err := dev.WriteBlock(addr, blk); err != nil {
			return fmt.Errorf("index: export block %d: %w", addr, err)
		}
	}
	pkg.LogInfo(pkg.ComponentIndex, "index exported", "block", uint32(x.layout.IndexBlock), "resolved", x.Resolved())
	return nil
}

// Import loads the address table from the card and reads the size of
// every audio file with a non-zero address. A size that cannot be read is
// logged and left at 0.
func (x *Index) Import(dev Device) error {
	x.Reset()
	if err := x.readTable(dev); err != nil {
		return err
	}
	x.loadSizes(dev)
	pkg.LogInfo(pkg.ComponentIndex, "index imported", "resolved", x.Resolved())
	return nil
}

// readTable replaces every address with the one stored on the card.
func (x *Index) readTable(dev Device) error {
	if err := x.checkTable(); err != nil {
		return err
	}

	var buf [tableSize]byte
	for b := range tableBlocks {
		blk := (*card.Block)(buf[b*card.BlockSize : (b+1)*card.BlockSize])
		addr := x.layout.IndexBlock + card.BlockAddress(b)
		if err := dev.ReadBlock(addr, blk); err != nil {
			return fmt.Errorf("index: import block %d: %w", addr, err)
		}
	}
	for i := range x.records {
		x.records[i].Address = card.BlockAddress(binary.BigEndian.Uint32(buf[i*addressSize:]))
	}
	return nil
}

func (x *Index) checkTable() error {
	if len(x.records)*addressSize > tableSize {
		return fmt.Errorf("index: %w: %d entries exceed the %d-byte table",
			pkg.ErrBufferTooSmall, len(x.records), tableSize)
	}
	return nil
}

// loadSizes reads the size of every resolved audio file.
func (x *Index) loadSizes(dev Device) {
	for i, r := range x.records {
		if r.Kind != KindAudio || !r.Resolved() {
			continue
		}
		size, err := ReadWAVSize(dev, r.Address)
		if err != nil {
			pkg.LogWarn(pkg.ComponentIndex, "audio size unreadable", "id", r.ID, "block", uint32(r.Address), "error", err)
			continue
		}
		x.records[i].SizeBlocks = size
	}
}

// ReadWAVSize opens a short stream at addr and returns the RIFF size field
// of the WAV header in whole blocks.
func ReadWAVSize(dev Device, addr card.BlockAddress) (uint32, error) {
	s, err := dev.StartStream(addr, 1)
	if err != nil {
		return 0, err
	}

	var size [4]byte
	err = s.Skip(wavSizeOffset)
	if err == nil {
		_, err = s.Read(size[:])
	}
	if serr := s.Stop(); err == nil {
		err = serr
	}
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(size[:]) / card.BlockSize, nil
}
