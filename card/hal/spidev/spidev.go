package spidev

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/ardnew/softsd/pkg"
)

// Bus drives a card on a host SPI port. Chip select is a GPIO driven by
// the card driver, since the port's own chip select toggles on every
// transaction.
type Bus struct {
	port spi.PortCloser
	conn spi.Conn
	cs   gpio.PinOut
	w, r [1]byte
}

// Open initializes the host drivers and connects to SPI port name (empty
// for the first port) with chip select on the GPIO named chipSelect. limit
// is the highest clock the bus will be asked for.
func Open(name, chipSelect string, limit physic.Frequency) (*Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("spidev: host init: %w", err)
	}
	port, err := spireg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("spidev: open %q: %w", name, err)
	}
	cs := gpioreg.ByName(chipSelect)
	if cs == nil {
		port.Close()
		return nil, fmt.Errorf("spidev: %w: no GPIO named %q", pkg.ErrInvalidParameter, chipSelect)
	}
	b, err := New(port, cs, limit)
	if err != nil {
		port.Close()
		return nil, err
	}
	return b, nil
}

// New connects to port in mode 0 with manual chip select on cs.
func New(port spi.PortCloser, cs gpio.PinOut, limit physic.Frequency) (*Bus, error) {
	if err := cs.Out(gpio.High); err != nil {
		return nil, fmt.Errorf("spidev: chip select: %w", err)
	}
	conn, err := port.Connect(limit, spi.Mode0|spi.NoCS, 8)
	if err != nil {
		return nil, fmt.Errorf("spidev: connect: %w", err)
	}
	pkg.LogDebug(pkg.ComponentHAL, "spidev connected", "port", port, "cs", cs, "limit", limit)
	return &Bus{port: port, conn: conn, cs: cs}, nil
}

// Select drives chip select low.
func (b *Bus) Select() error {
	return b.cs.Out(gpio.Low)
}

// Deselect drives chip select high.
func (b *Bus) Deselect() error {
	return b.cs.Out(gpio.High)
}

// Exchange clocks one byte in each direction.
func (b *Bus) Exchange(v byte) (byte, error) {
	b.w[0] = v
	if err := b.conn.Tx(b.w[:], b.r[:]); err != nil {
		return 0xFF, err
	}
	return b.r[0], nil
}

// Tx exchanges a whole buffer in one transaction.
func (b *Bus) Tx(w, r []byte) error {
	return b.conn.Tx(w, r)
}

// SetFrequency limits the port clock. It cannot exceed the clock given to
// New.
func (b *Bus) SetFrequency(f physic.Frequency) error {
	return b.port.LimitSpeed(f)
}

// Close releases chip select and the port.
func (b *Bus) Close() error {
	err := b.cs.Out(gpio.High)
	if cerr := b.port.Close(); err == nil {
		err = cerr
	}
	return err
}
