package index

import (
	"fmt"

	"github.com/ardnew/softsd/card"
	"github.com/ardnew/softsd/pkg"
)

// Default card layout.
const (
	DefaultIndexBlock       card.BlockAddress = 4000000
	DefaultStartupFlagBlock card.BlockAddress = 4005000
	DefaultBatteryLogBlock  card.BlockAddress = 4010000
)

// Layout holds the reserved block addresses of a provisioned card.
type Layout struct {
	// IndexBlock is the first of the two blocks holding the address table.
	IndexBlock card.BlockAddress

	// StartupFlagBlock holds the intro preference in its first byte.
	StartupFlagBlock card.BlockAddress

	// BatteryLogBlock is the first block of the battery drain log.
	BatteryLogBlock card.BlockAddress
}

// DefaultLayout returns the layout used by the device.
func DefaultLayout() Layout {
	return Layout{
		IndexBlock:       DefaultIndexBlock,
		StartupFlagBlock: DefaultStartupFlagBlock,
		BatteryLogBlock:  DefaultBatteryLogBlock,
	}
}

// Record is the resolved location of one file.
type Record struct {
	ID         ID
	Kind       Kind
	Identifier Identifier

	// Address is the first block of the file, or 0 if the file is absent.
	Address card.BlockAddress

	// SizeBlocks is the payload size of an audio file in blocks.
	SizeBlocks uint32
}

// Resolved reports whether the file was found on the card.
func (r Record) Resolved() bool {
	return r.Address != 0
}

// Device is the block and stream interface the index needs. *card.Card
// implements it.
type Device interface {
	ReadBlock(addr card.BlockAddress, b *card.Block) error
	WriteBlock(addr card.BlockAddress, b *card.Block) error
	StartStream(addr card.BlockAddress, blocks uint32) (*card.Stream, error)
}

// Index maps file ids to block addresses. It is owned by the caller and
// passed by pointer to consumers. Only Build, Append and Import modify it.
type Index struct {
	catalog Catalog
	layout  Layout
	records []Record
	pos     map[ID]int
}

// New creates an empty index for catalog. Every lookup resolves to 0
// until the index is built or imported.
func New(catalog Catalog, layout Layout) *Index {
	x := &Index{
		catalog: catalog,
		layout:  layout,
		records: make([]Record, len(catalog)),
		pos:     make(map[ID]int, len(catalog)),
	}
	for i, e := range catalog {
		x.pos[e.ID] = i
	}
	x.Reset()
	return x
}

// Reset clears every resolved address and size.
func (x *Index) Reset() {
	for i, e := range x.catalog {
		x.records[i] = Record{ID: e.ID, Kind: e.Kind, Identifier: e.Identifier}
	}
}

// Catalog returns the catalog the index was created with.
func (x *Index) Catalog() Catalog {
	return x.catalog
}

// Layout returns the reserved block layout.
func (x *Index) Layout() Layout {
	return x.layout
}

// AddressOf returns the first block of id, or 0 if it is absent or unknown.
func (x *Index) AddressOf(id ID) card.BlockAddress {
	if i, ok := x.pos[id]; ok {
		return x.records[i].Address
	}
	return 0
}

// SizeBlocksOf returns the size in blocks of audio file id, or 0.
func (x *Index) SizeBlocksOf(id ID) uint32 {
	if i, ok := x.pos[id]; ok {
		return x.records[i].SizeBlocks
	}
	return 0
}

// Lookup returns the record of id. It fails with pkg.ErrFileUnresolved if
// the id is unknown or the file is absent.
func (x *Index) Lookup(id ID) (Record, error) {
	i, ok := x.pos[id]
	if !ok {
		return Record{}, fmt.Errorf("index: %w: unknown id %v", pkg.ErrFileUnresolved, id)
	}
	r := x.records[i]
	if !r.Resolved() {
		return r, fmt.Errorf("index: %w: %v", pkg.ErrFileUnresolved, id)
	}
	return r, nil
}

// Records returns a copy of all records in catalog order.
func (x *Index) Records() []Record {
	return append([]Record(nil), x.records...)
}

// Resolved returns the number of files with a non-zero address.
func (x *Index) Resolved() int {
	n := 0
	for _, r := range x.records {
		if r.Resolved() {
			n++
		}
	}
	return n
}
