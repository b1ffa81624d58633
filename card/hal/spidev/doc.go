// Package spidev connects the card driver to a host SPI port through
// periph.io, for example /dev/spidev0.0 on a Raspberry Pi.
//
// The port is opened without hardware chip select; a GPIO carries it
// instead so the card stays selected across the many single-byte
// transactions of a command.
//
//	bus, err := spidev.Open("SPI0.0", "GPIO25", hal.FastFrequency)
//	if err != nil {
//		return err
//	}
//	defer bus.Close()
//	c := card.New(bus, card.DefaultConfig())
package spidev
