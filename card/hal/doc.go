// Package hal defines the transport interface between the SD card driver
// and SPI hardware.
//
// The card driver implements the whole SD SPI-mode protocol (command
// framing, response parsing, token polling, multi-block streaming). A
// transport only has to move bytes and drive chip select, which keeps the
// protocol logic hardware-agnostic and testable against a simulated card.
//
// # Interface Overview
//
// The [Bus] interface is intentionally minimal:
//
//   - Select/Deselect: raw chip-select control
//   - Exchange: one full-duplex byte
//   - SetFrequency: switch between identification and transfer clocks
//
// Implementations that can move a whole buffer in one transaction should
// also implement [Bulk].
//
// # Implementations
//
//   - [github.com/ardnew/softsd/card/hal/sim]: simulated card for tests
//   - [github.com/ardnew/softsd/card/hal/spidev]: Linux spidev via periph.io
//   - [github.com/ardnew/softsd/card/hal/buspirate]: Bus Pirate bridge over a serial port
//   - [github.com/ardnew/softsd/card/hal/mcu]: TinyGo targets via tinygo.org/x/drivers
package hal
