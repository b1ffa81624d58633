package index

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/ardnew/softsd/pkg"
)

// Kind is the media type of a file.
type Kind uint8

// File kinds.
const (
	KindImage Kind = iota
	KindAudio
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindAudio:
		return "audio"
	default:
		return "unknown"
	}
}

// Identifier is the 5-byte marker embedded in a file. The provisioning
// scan locates a file by the first block containing its identifier.
type Identifier [5]byte

func (i Identifier) String() string {
	return hex.EncodeToString(i[:])
}

// ParseIdentifier decodes a 10-digit hex identifier.
func ParseIdentifier(s string) (Identifier, error) {
	var id Identifier
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != len(id) {
		return id, fmt.Errorf("index: %w: identifier %q", pkg.ErrInvalidParameter, s)
	}
	copy(id[:], b)
	return id, nil
}

// Entry describes one file of a catalog.
type Entry struct {
	ID         ID
	Kind       Kind
	Identifier Identifier
}

// Catalog is the ordered list of files an index tracks. The persisted
// address table follows catalog order.
type Catalog []Entry

// Validate checks that the catalog fits the table and that ids and
// identifiers are unique.
func (c Catalog) Validate() error {
	var errs []error
	if len(c)*addressSize > tableSize {
		errs = append(errs, fmt.Errorf("index: %w: %d entries exceed the %d-byte table",
			pkg.ErrBufferTooSmall, len(c), tableSize))
	}
	ids := make(map[ID]bool, len(c))
	idents := make(map[Identifier]ID, len(c))
	for _, e := range c {
		if ids[e.ID] {
			errs = append(errs, fmt.Errorf("index: %w: duplicate id %v", pkg.ErrInvalidParameter, e.ID))
		}
		ids[e.ID] = true
		if e.ID == Null {
			continue
		}
		if prev, ok := idents[e.Identifier]; ok {
			errs = append(errs, fmt.Errorf("index: %w: %v and %v share identifier %v",
				pkg.ErrInvalidParameter, prev, e.ID, e.Identifier))
		}
		idents[e.Identifier] = e.ID
	}
	return errors.Join(errs...)
}

// Entry returns the entry of id.
func (c Catalog) Entry(id ID) (Entry, bool) {
	for _, e := range c {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}
