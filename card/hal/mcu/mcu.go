package mcu

import (
	"periph.io/x/conn/v3/physic"
	"tinygo.org/x/drivers"
)

// Pin is a chip-select output. machine.Pin satisfies it.
type Pin interface {
	High()
	Low()
}

// ConfigureFunc reprograms the SPI peripheral clock, typically by calling
// machine.SPI.Configure with the new frequency in hertz.
type ConfigureFunc func(hz uint32) error

// Bus drives a card on a microcontroller SPI peripheral.
type Bus struct {
	spi       drivers.SPI
	cs        Pin
	configure ConfigureFunc
}

// New creates a bus on spi with chip select on cs. configure may be nil if
// the peripheral clock is fixed.
func New(spi drivers.SPI, cs Pin, configure ConfigureFunc) *Bus {
	cs.High()
	return &Bus{spi: spi, cs: cs, configure: configure}
}

// Select drives chip select low.
func (b *Bus) Select() error {
	b.cs.Low()
	return nil
}

// Deselect drives chip select high.
func (b *Bus) Deselect() error {
	b.cs.High()
	return nil
}

// Exchange clocks one byte in each direction.
func (b *Bus) Exchange(v byte) (byte, error) {
	return b.spi.Transfer(v)
}

// Tx exchanges a whole buffer.
func (b *Bus) Tx(w, r []byte) error {
	return b.spi.Tx(w, r)
}

// SetFrequency reconfigures the peripheral clock.
func (b *Bus) SetFrequency(f physic.Frequency) error {
	if b.configure == nil {
		return nil
	}
	return b.configure(uint32(f / physic.Hertz))
}
