package card

import (
	"fmt"
	"io"

	"github.com/ardnew/softsd/pkg"
)

// Stream is an open multi-block read. It reads payload bytes across block
// boundaries until Stop is called. It never stops on its own: the caller
// knows how many bytes it expects.
//
// Every StartStream must be matched by exactly one Stop, including on
// early exit, before any other operation on the Card.
type Stream struct {
	card   *Card
	start  BlockAddress
	blocks uint32
	block  uint32
	offset int
	err    error
}

// StartStream opens a multi-block read at addr. blocks is the number of
// blocks the caller expects to read, or 0 if unknown, and is used only for
// bookkeeping. On error no stream is left open and the bus is released.
func (c *Card) StartStream(addr BlockAddress, blocks uint32) (*Stream, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}

	c.link.selectCard()
	c.sendCommand(CmdReadMultipleBlock, uint32(addr))
	r1, err := c.readR1()
	switch {
	case err != nil:
		err = commandFailed(CmdReadMultipleBlock, r1, err)
	case r1 != 0:
		err = rejected(CmdReadMultipleBlock, r1)
	default:
		if err = c.waitToken(); err != nil {
			// The card accepted the command; end the transfer before
			// releasing the bus.
			c.link.take()
			c.stopTransmission()
		}
	}
	if err != nil {
		c.link.deselectCard()
		return nil, c.finish("stream start", addr, err)
	}

	s := &Stream{card: c, start: addr, blocks: blocks}
	c.stream = s
	pkg.LogDebug(pkg.ComponentStream, "stream started", "block", uint32(addr), "blocks", blocks)
	return s, nil
}

// Quiesce stops the open stream, if any. Interrupt paths call it before
// handling navigation, low battery or sleep.
func (c *Card) Quiesce() error {
	if c.stream == nil {
		return nil
	}
	pkg.LogDebug(pkg.ComponentStream, "quiesce", "block", uint32(c.stream.Address()))
	return c.stream.Stop()
}

func (s *Stream) open() error {
	if s.card == nil || s.card.stream != s {
		return fmt.Errorf("card: %w: stream is stopped", pkg.ErrStreamMisuse)
	}
	return nil
}

// Read reads up to len(p) payload bytes. It only returns fewer than len(p)
// bytes with an error. After an error the stream stays open and must still
// be stopped.
func (s *Stream) Read(p []byte) (int, error) {
	if err := s.open(); err != nil {
		return 0, err
	}
	if s.err != nil {
		return 0, s.err
	}

	l := s.card.link
	n := 0
	for n < len(p) {
		if s.offset == BlockSize {
			if err := s.advance(); err != nil {
				s.err = err
				pkg.LogWarn(pkg.ComponentStream, "stream read failed", "block", uint32(s.Address()), "error", err)
				return n, err
			}
		}
		k := min(len(p)-n, BlockSize-s.offset)
		l.read(p[n : n+k])
		if err := l.take(); err != nil {
			s.err = err
			return n, err
		}
		s.offset += k
		n += k
	}
	return n, nil
}

// ReadByte reads one payload byte.
func (s *Stream) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := s.Read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Skip discards n payload bytes.
func (s *Stream) Skip(n int) error {
	if n < 0 {
		return fmt.Errorf("card: %w: skip %d", pkg.ErrInvalidParameter, n)
	}
	_, err := io.CopyN(io.Discard, s, int64(n))
	return err
}

// advance moves past the CRC of the current block to the next payload.
func (s *Stream) advance() error {
	c := s.card
	c.skipCRC()
	if err := c.waitToken(); err != nil {
		c.link.take()
		return err
	}
	if err := c.link.take(); err != nil {
		return err
	}
	s.block++
	s.offset = 0
	return nil
}

// Stop ends the transfer and releases the bus. Calling Stop on a stopped
// stream returns pkg.ErrStreamMisuse without touching the bus.
func (s *Stream) Stop() error {
	if err := s.open(); err != nil {
		return err
	}
	c := s.card
	c.stream = nil
	s.card = nil

	c.link.take()
	err := c.stopTransmission()
	c.link.deselectCard()
	err = c.finish("stream stop", s.start+BlockAddress(s.block), err)
	pkg.LogDebug(pkg.ComponentStream, "stream stopped", "blocks", s.BlocksRead())
	return err
}

// Active reports whether the stream is still open. A stream stopped by
// Card.Quiesce is no longer active.
func (s *Stream) Active() bool {
	return s.card != nil && s.card.stream == s
}

// Close calls Stop.
func (s *Stream) Close() error {
	return s.Stop()
}

// stopTransmission sends CMD12 and then discards a full block, since the
// card may already be sending the next packet when the command lands.
func (c *Card) stopTransmission() error {
	c.sendCommand(CmdStopTransmission, 0)
	r1, err := c.readR1()
	c.link.read(c.link.scratch[:])
	if err != nil {
		return commandFailed(CmdStopTransmission, r1, err)
	}
	return nil
}

// Address returns the address of the block being read.
func (s *Stream) Address() BlockAddress {
	return s.start + BlockAddress(s.block)
}

// Start returns the address the stream was opened at.
func (s *Stream) Start() BlockAddress {
	return s.start
}

// BlocksRead returns the number of blocks fully consumed.
func (s *Stream) BlocksRead() uint32 {
	if s.offset == BlockSize {
		return s.block + 1
	}
	return s.block
}

// BlocksRemaining returns the expected blocks not yet fully consumed, or 0
// if the stream was opened without a block count.
func (s *Stream) BlocksRemaining() uint32 {
	read := s.BlocksRead()
	if s.blocks <= read {
		return 0
	}
	return s.blocks - read
}

// RemainingInBlock returns the payload bytes left in the current block.
func (s *Stream) RemainingInBlock() int {
	return BlockSize - s.offset
}
