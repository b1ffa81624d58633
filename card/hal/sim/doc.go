// Package sim implements a simulated SD card that speaks the SPI-mode
// protocol over the hal.Bus interface.
//
// The simulator is primarily intended for tests, examples and host-side
// tooling. It parses command frames byte by byte, answers with R1, R3 and R7
// responses after a configurable Ncr gap, and serves single and multi-block
// data packets from a block Store.
//
// # Stores
//
// Two stores are provided:
//
//   - MemoryStore keeps written blocks in a sparse map, so a card that
//     reports millions of blocks costs only what is actually written.
//   - FileStore backs the card with a raw image file, as produced by
//     "sdtool mkimage".
//
// # Timing
//
// A real card needs at least 74 clocks with chip select high before it
// accepts CMD0. The simulator counts clocks exchanged while deselected and
// ignores an early CMD0, so drivers that skip the power-up sequence fail
// against it the way they fail on hardware.
//
// # Usage
//
//	store := sim.NewMemoryStore(8 << 20)
//	bus := sim.New(store, sim.WithTokenDelay(4))
//	c := card.New(bus, card.DefaultConfig())
//	if err := c.Init(ctx); err != nil {
//		return err
//	}
package sim
