package card

import (
	"fmt"
	"strings"

	"github.com/ardnew/softsd/pkg"
)

// R1 is the one-byte status returned for every command.
type R1 uint8

// R1 flag bits.
const (
	R1Idle               R1 = 0x01
	R1EraseReset         R1 = 0x02
	R1IllegalCommand     R1 = 0x04
	R1CRCError           R1 = 0x08
	R1EraseSequenceError R1 = 0x10
	R1AddressError       R1 = 0x20
	R1ParameterError     R1 = 0x40
)

// r1Errors is the set of bits that indicate a failed command.
const r1Errors = R1IllegalCommand | R1CRCError | R1EraseSequenceError | R1AddressError | R1ParameterError

var r1Names = [...]struct {
	bit  R1
	name string
}{
	{R1Idle, "idle"},
	{R1EraseReset, "erase-reset"},
	{R1IllegalCommand, "illegal-command"},
	{R1CRCError, "crc-error"},
	{R1EraseSequenceError, "erase-sequence-error"},
	{R1AddressError, "address-error"},
	{R1ParameterError, "parameter-error"},
}

// Idle reports whether the card is still in the idle state.
func (r R1) Idle() bool {
	return r&R1Idle != 0
}

// String returns the set flags joined with '|', or "ready" if none.
func (r R1) String() string {
	if r == 0 {
		return "ready"
	}
	if r&0x80 != 0 {
		return "invalid"
	}
	var parts []string
	for _, n := range r1Names {
		if r&n.bit != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}

// Err returns an error wrapping pkg.ErrProtocol if any error bit is set.
func (r R1) Err() error {
	if r&r1Errors == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", pkg.ErrProtocol, r)
}

// OCR is the operating conditions register returned in an R3 response.
type OCR uint32

// OCR fields.
const (
	ocrPowerUp      OCR = 1 << 31
	ocrHighCapacity OCR = 1 << 30
	ocrVoltageShift     = 15
	ocrVoltageMask  OCR = 0x1FF << ocrVoltageShift
	ocr3V2to3V3     OCR = 1 << 20
	ocr3V3to3V4     OCR = 1 << 21
)

// PowerUp reports whether the card has finished its power-up routine.
func (o OCR) PowerUp() bool {
	return o&ocrPowerUp != 0
}

// HighCapacity reports the card capacity status bit. It is only valid
// once PowerUp is set.
func (o OCR) HighCapacity() bool {
	return o&ocrHighCapacity != 0
}

// VoltageWindow returns OCR bits 23..15, one bit per 100 mV step from
// 2.7 V (bit 0) to 3.6 V (bit 8).
func (o OCR) VoltageWindow() uint16 {
	return uint16((o & ocrVoltageMask) >> ocrVoltageShift)
}

// Accepts3V3 reports whether the card supports a 3.3 V supply.
func (o OCR) Accepts3V3() bool {
	return o&(ocr3V2to3V3|ocr3V3to3V4) != 0
}

func (o OCR) String() string {
	return fmt.Sprintf("%#08x(power-up=%t ccs=%t window=%#03x)",
		uint32(o), o.PowerUp(), o.HighCapacity(), o.VoltageWindow())
}

// readR1 skips the fixed Ncr gap byte and then polls for the first byte
// with bit 7 clear.
func (c *Card) readR1() (R1, error) {
	c.link.idle()
	for range c.cfg.ResponsePolls {
		b := c.link.idle()
		if c.link.err != nil {
			return 0xFF, c.link.err
		}
		if b&0x80 == 0 {
			return R1(b), nil
		}
	}
	return 0xFF, fmt.Errorf("%w: no response in %d bytes", pkg.ErrTransportTimeout, c.cfg.ResponsePolls)
}

// readR3 reads an R1 byte followed by the 32-bit OCR.
func (c *Card) readR3() (R1, OCR, error) {
	r1, err := c.readR1()
	if err != nil {
		return r1, 0, err
	}
	var b [4]byte
	c.link.read(b[:])
	if c.link.err != nil {
		return r1, 0, c.link.err
	}
	return r1, OCR(uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])), nil
}

// readR7 reads an R1 byte followed by the interface condition echo.
func (c *Card) readR7() (r1 R1, voltage, echo uint8, err error) {
	r1, err = c.readR1()
	if err != nil {
		return r1, 0, 0, err
	}
	var b [4]byte
	c.link.read(b[:])
	if c.link.err != nil {
		return r1, 0, 0, c.link.err
	}
	return r1, b[2] & 0x0F, b[3], nil
}
