package index

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/ardnew/softsd/card"
	"github.com/ardnew/softsd/pkg"
)

// Default scan bounds. The scan starts well past the blocks a FAT
// formatter touches and may run to the end of the 32-bit address space.
const (
	DefaultScanStart card.BlockAddress = 15000
	DefaultScanEnd   card.BlockAddress = 0xFFFFFFFE
)

// progressInterval is the number of blocks between scan progress logs.
const progressInterval = 100000

// ScanRange is the half-open block range [Start, End) searched by Build
// and Append.
type ScanRange struct {
	Start card.BlockAddress
	End   card.BlockAddress
}

// DefaultScanRange returns the range scanned by the device provisioning
// tool.
func DefaultScanRange() ScanRange {
	return ScanRange{Start: DefaultScanStart, End: DefaultScanEnd}
}

// Build resolves every catalog entry except Null by scanning r for its
// identifier, then reads the size of each audio file found. The first
// block containing an identifier wins. Files never found resolve to 0.
// Null is never scanned for, so its slot in the table is always 0.
//
// All ids are searched in a single pass over the range, which gives the
// same result as scanning once per id. A block past the end of the card
// ends the scan early.
func (x *Index) Build(ctx context.Context, dev Device, r ScanRange) error {
	x.Reset()

	pending := make([]int, 0, len(x.catalog))
	for i, e := range x.catalog {
		if e.ID != Null {
			pending = append(pending, i)
		}
	}
	if err := x.scan(ctx, dev, r, pending); err != nil {
		return err
	}
	x.loadSizes(dev)
	return nil
}

// Append rescans the ids in [from, to) and patches them into the table
// already stored on the card, leaving other entries as they are. Null is
// skipped as in Build. The updated table is written back.
func (x *Index) Append(ctx context.Context, dev Device, from, to ID, r ScanRange) error {
	if from >= to {
		return fmt.Errorf("index: %w: empty id range [%v, %v)", pkg.ErrInvalidParameter, from, to)
	}
	if err := x.readTable(dev); err != nil {
		return err
	}

	var pending []int
	for i, e := range x.catalog {
		if e.ID >= from && e.ID < to && e.ID != Null {
			x.records[i].Address = 0
			x.records[i].SizeBlocks = 0
			pending = append(pending, i)
		}
	}
	if err := x.scan(ctx, dev, r, pending); err != nil {
		return err
	}
	x.loadSizes(dev)
	return x.Export(dev)
}

func (x *Index) scan(ctx context.Context, dev Device, r ScanRange, pending []int) error {
	if r.End <= r.Start {
		return fmt.Errorf("index: %w: scan range [%d, %d)", pkg.ErrInvalidParameter, r.Start, r.End)
	}
	pkg.LogInfo(pkg.ComponentIndex, "scan started", "start", uint32(r.Start), "end", uint32(r.End), "files", len(pending))

	var blk card.Block
	addr := r.Start
	for ; addr < r.End && len(pending) > 0; addr++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("index: scan: %w", err)
		}
		if err := dev.ReadBlock(addr, &blk); err != nil {
			if card.IsEndOfMedia(err) {
				pkg.LogInfo(pkg.ComponentIndex, "scan reached end of media", "block", uint32(addr))
				break
			}
			return fmt.Errorf("index: scan block %d: %w", addr, err)
		}
		if (addr-r.Start)%progressInterval == 0 {
			pkg.LogDebug(pkg.ComponentIndex, "scan progress", "block", uint32(addr), "pending", len(pending))
		}

		pending = slices.DeleteFunc(pending, func(i int) bool {
			e := x.catalog[i]
			if !bytes.Contains(blk[:], e.Identifier[:]) {
				return false
			}
			x.records[i].Address = addr
			pkg.LogInfo(pkg.ComponentIndex, "file found", "id", e.ID, "block", uint32(addr))
			return true
		})
	}

	for _, i := range pending {
		pkg.LogWarn(pkg.ComponentIndex, "file not found", "id", x.catalog[i].ID, "identifier", x.catalog[i].Identifier)
	}
	pkg.LogInfo(pkg.ComponentIndex, "scan complete", "last", uint32(addr), "missing", len(pending))
	return nil
}
