// Package card implements an SD card driver in SPI mode.
//
// The driver talks to the card through a hal.Bus, a minimal chip-select and
// byte-exchange interface, so the same protocol code runs against the
// simulated card in card/hal/sim, a Linux spidev port, a Bus Pirate bridge
// or a microcontroller SPI peripheral.
//
// # Layers
//
// The package is organized bottom-up:
//
//   - link: dummy-byte chip-select framing around every transaction and a
//     sticky transport error, so protocol code reads straight through.
//   - codec: 6-byte command frames with fixed CRC bytes, and R1, R3 (OCR)
//     and R7 response parsing. CRCs are never checked on receive.
//   - Init: the power-on sequence CMD0, CMD8, CMD58, CMD55/ACMD41 and a
//     final CMD58 capacity check.
//   - ReadBlock and WriteBlock: single 512-byte transfers.
//   - Stream: a CMD18 multi-block read exposed as an io.Reader.
//
// # Card States
//
// A Card starts in StateUninitialized. Init moves it through StateIdle to
// StateReady, or to StateFailed on any error. Only high-capacity (block
// addressed) cards are supported; a standard-capacity or version 1.x card
// fails initialization with pkg.ErrUnsupportedCard.
//
// # Streams
//
// At most one Stream is open per Card. While it is open, block I/O and
// StartStream return pkg.ErrStreamMisuse. Stop sends CMD12 and discards a
// full block before releasing the bus, because the card may already be
// sending the next packet. Code that can be interrupted must call Quiesce
// before handling the interruption:
//
//	s, err := c.StartStream(addr, blocks)
//	if err != nil {
//		return err
//	}
//	defer s.Stop()
//
//	for !abort() {
//		if _, err := io.ReadFull(s, buf); err != nil {
//			return err
//		}
//	}
//
// # Timeouts
//
// Every wait is bounded by an iteration count from Config. Exceeding a
// bound returns an error wrapping pkg.ErrTransportTimeout and leaves the
// bus deselected.
//
// # Concurrency
//
// A Card is not safe for concurrent use. The bus is a single non-reentrant
// resource and operations must never be interleaved.
package card
