package hal

import (
	"periph.io/x/conn/v3/physic"
)

// Bus clock rates used by the card driver.
const (
	// SlowFrequency is the identification-mode clock used during
	// initialization. Cards must accept anything at or below 400 kHz.
	SlowFrequency = 250 * physic.KiloHertz

	// FastFrequency is the data-transfer clock applied once the card is
	// ready and the file index has been imported.
	FastFrequency = 8 * physic.MegaHertz
)

// Bus defines the transport between the card driver and an SPI peripheral.
//
// A Bus is a single shared, non-reentrant resource. The card driver is the
// only caller and never interleaves operations, so implementations need no
// internal locking.
type Bus interface {
	// Select drives the card's chip-select line active (low).
	Select() error

	// Deselect drives the card's chip-select line inactive (high).
	Deselect() error

	// Exchange clocks out b and returns the byte clocked in at the same time.
	Exchange(b byte) (byte, error)

	// SetFrequency changes the bus clock for subsequent exchanges.
	SetFrequency(f physic.Frequency) error
}

// Bulk is implemented by buses that can exchange many bytes in one
// transaction. When available the card driver uses it for block payloads.
// w and r have equal length; r may alias w.
type Bulk interface {
	Tx(w, r []byte) error
}

// Fill sets every byte of buf to 0xFF, the idle level of the data line.
func Fill(buf []byte) {
	for i := range buf {
		buf[i] = 0xFF
	}
}
