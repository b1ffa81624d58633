package buspirate

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/goburrow/serial"
	"periph.io/x/conn/v3/physic"

	"github.com/ardnew/softsd/pkg"
)

// Binary mode commands.
const (
	cmdReset       = 0x00 // bitbang: enter binary mode; SPI: leave SPI mode
	cmdSPI         = 0x01
	cmdCSLow       = 0x02
	cmdCSHigh      = 0x03
	cmdUserMode    = 0x0F
	cmdBulk        = 0x10 // | n-1, 1 to 16 bytes
	cmdPeripherals = 0x40 // | power, pull-ups, AUX, CS
	cmdSpeed       = 0x60 // | speed index
	cmdConfig      = 0x80 // | 3.3 V output, CKP, CKE, SMP
)

// Peripheral and configuration bits.
const (
	periphPower  = 0x08
	periphCSHigh = 0x01
	config3V3    = 0x08
	configCKE    = 0x02
)

const (
	replyOK    = 0x01
	ackSig     = "\x01"
	maxBulk    = 16
	resetTries = 20
	bitbangSig = "BBIO1"
	spiModeSig = "SPI1"
)

// DefaultBaud is the binary-mode serial rate.
const DefaultBaud = 115200

// speeds are the SPI clock settings, indexed by the low bits of cmdSpeed.
var speeds = [...]physic.Frequency{
	30 * physic.KiloHertz,
	125 * physic.KiloHertz,
	250 * physic.KiloHertz,
	1 * physic.MegaHertz,
	2 * physic.MegaHertz,
	2600 * physic.KiloHertz,
	4 * physic.MegaHertz,
	8 * physic.MegaHertz,
}

// Bus drives a card through a Bus Pirate in binary SPI mode.
type Bus struct {
	port  io.ReadWriter
	speed physic.Frequency
	buf   [1 + maxBulk]byte
}

// Open opens the serial port at address and enters SPI mode.
func Open(address string, baud int) (*Bus, error) {
	if baud <= 0 {
		baud = DefaultBaud
	}
	port, err := serial.Open(&serial.Config{
		Address:  address,
		BaudRate: baud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("buspirate: open %s: %w", address, err)
	}
	b, err := New(port)
	if err != nil {
		port.Close()
		return nil, err
	}
	return b, nil
}

// New enters binary SPI mode on port and configures mode 0 with 3.3 V
// outputs, power on and chip select high.
func New(port io.ReadWriter) (*Bus, error) {
	b := &Bus{port: port}
	if err := b.enterBinary(); err != nil {
		return nil, err
	}
	if err := b.expect([]byte{cmdSPI}, spiModeSig); err != nil {
		return nil, fmt.Errorf("buspirate: enter SPI mode: %w", err)
	}
	for _, c := range []byte{
		cmdConfig | config3V3 | configCKE,
		cmdPeripherals | periphPower | periphCSHigh,
	} {
		if err := b.command(c); err != nil {
			return nil, err
		}
	}
	pkg.LogDebug(pkg.ComponentHAL, "buspirate in SPI mode")
	return b, nil
}

func (b *Bus) enterBinary() error {
	var err error
	for range resetTries {
		if err = b.expect([]byte{cmdReset}, bitbangSig); err == nil {
			return nil
		}
	}
	return fmt.Errorf("buspirate: %w: no binary mode response: %v", pkg.ErrTransportTimeout, err)
}

// expect writes w and reads a fixed reply.
func (b *Bus) expect(w []byte, reply string) error {
	if _, err := b.port.Write(w); err != nil {
		return err
	}
	got := make([]byte, len(reply))
	if _, err := io.ReadFull(b.port, got); err != nil {
		return err
	}
	if !bytes.Equal(got, []byte(reply)) {
		return fmt.Errorf("%w: reply %q, want %q", pkg.ErrProtocol, got, reply)
	}
	return nil
}

// command sends a one-byte command acknowledged with 0x01.
func (b *Bus) command(c byte) error {
	if err := b.expect([]byte{c}, ackSig); err != nil {
		return fmt.Errorf("buspirate: command %#02x: %w", c, err)
	}
	return nil
}

// Select drives chip select low.
func (b *Bus) Select() error {
	return b.command(cmdCSLow)
}

// Deselect drives chip select high.
func (b *Bus) Deselect() error {
	return b.command(cmdCSHigh)
}

// Exchange clocks one byte in each direction.
func (b *Bus) Exchange(v byte) (byte, error) {
	var r [1]byte
	if err := b.Tx([]byte{v}, r[:]); err != nil {
		return 0xFF, err
	}
	return r[0], nil
}

// Tx exchanges w in bulk transfers of up to 16 bytes.
func (b *Bus) Tx(w, r []byte) error {
	for len(w) > 0 {
		n := min(len(w), maxBulk)
		b.buf[0] = cmdBulk | byte(n-1)
		copy(b.buf[1:], w[:n])
		if _, err := b.port.Write(b.buf[:1+n]); err != nil {
			return fmt.Errorf("buspirate: bulk write: %w", err)
		}
		if _, err := io.ReadFull(b.port, b.buf[:1+n]); err != nil {
			return fmt.Errorf("buspirate: bulk read: %w", err)
		}
		if b.buf[0] != replyOK {
			return fmt.Errorf("buspirate: %w: bulk reply %#02x", pkg.ErrProtocol, b.buf[0])
		}
		copy(r[:n], b.buf[1:1+n])
		w, r = w[n:], r[n:]
	}
	return nil
}

// SetFrequency selects the fastest supported clock not above f.
func (b *Bus) SetFrequency(f physic.Frequency) error {
	k := 0
	for i, s := range speeds {
		if s <= f {
			k = i
		}
	}
	if err := b.command(cmdSpeed | byte(k)); err != nil {
		return err
	}
	b.speed = speeds[k]
	pkg.LogDebug(pkg.ComponentHAL, "buspirate clock", "requested", f, "actual", b.speed)
	return nil
}

// Frequency returns the clock last selected.
func (b *Bus) Frequency() physic.Frequency {
	return b.speed
}

// Close returns the Bus Pirate to its user terminal and closes the port if
// it is a closer.
func (b *Bus) Close() error {
	_, err := b.port.Write([]byte{cmdReset, cmdUserMode})
	if c, ok := b.port.(io.Closer); ok {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
