package card

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ardnew/softsd/pkg"
)

// Command opcodes.
const (
	CmdGoIdleState       uint8 = 0
	CmdSendIfCond        uint8 = 8
	CmdStopTransmission  uint8 = 12
	CmdSetBlockLen       uint8 = 16
	CmdReadSingleBlock   uint8 = 17
	CmdReadMultipleBlock uint8 = 18
	CmdWriteBlock        uint8 = 24
	CmdAppCmd            uint8 = 55
	CmdReadOCR           uint8 = 58
	AppCmdSendOpCond     uint8 = 41
)

// Command arguments.
const (
	// ifCondArg selects 2.7-3.6 V with check pattern 0xAA.
	ifCondArg     = 0x000001AA
	ifCondVoltage = 0x1
	ifCondEcho    = 0xAA

	// opCondHCS requests high-capacity support.
	opCondHCS = 0x40000000
)

// Data tokens.
const (
	tokenStart = 0xFE

	dataResponseMask     = 0x1F
	dataResponseAccepted = 0x05
)

// crcFor returns the fixed CRC byte sent with op. The card only checks
// CRCs on CMD0 and CMD8 in SPI mode, so every other command gets a
// placeholder with the end bit set.
func crcFor(op uint8) byte {
	switch op {
	case CmdGoIdleState:
		return 0x95
	case CmdSendIfCond:
		return 0x87
	case AppCmdSendOpCond:
		return 0x77
	default:
		return 0x01
	}
}

// encodeCommand builds the 6-byte frame for op and arg.
func encodeCommand(frame *[6]byte, op uint8, arg uint32) {
	frame[0] = op&0x3F | 0x40
	binary.BigEndian.PutUint32(frame[1:5], arg)
	frame[5] = crcFor(op)
}

func (c *Card) sendCommand(op uint8, arg uint32) {
	var frame [6]byte
	encodeCommand(&frame, op, arg)
	pkg.LogDebug(pkg.ComponentCodec, "command", "cmd", op, "arg", arg)
	c.link.write(frame[:])
}

// CommandError reports a command the card rejected or never answered.
type CommandError struct {
	Cmd uint8
	R1  R1
	Err error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("card: CMD%d: R1 %#02x (%s): %v", e.Cmd, uint8(e.R1), e.R1, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// commandFailed logs a failed command and wraps err with its context.
func commandFailed(op uint8, r1 R1, err error) error {
	pkg.LogWarn(pkg.ComponentCodec, "command failed", "cmd", op, "r1", fmt.Sprintf("%#02x", uint8(r1)), "error", err)
	return &CommandError{Cmd: op, R1: r1, Err: err}
}

// rejected builds the error for a data command answered with a non-zero R1.
func rejected(op uint8, r1 R1) error {
	err := r1.Err()
	switch {
	case r1&R1AddressError != 0:
		err = pkg.ErrEndOfMedia
	case err == nil:
		// Idle with no error bits: the card has not finished initializing.
		err = pkg.ErrNotInitialized
	}
	return commandFailed(op, r1, err)
}

// IsEndOfMedia reports whether err came from addressing a block past the
// end of the card.
func IsEndOfMedia(err error) bool {
	return errors.Is(err, pkg.ErrEndOfMedia)
}
