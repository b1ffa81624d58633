package card

import (
	"fmt"

	"github.com/ardnew/softsd/pkg"
)

// Data error tokens have the upper nibble clear.
const (
	dataErrorMask       = 0xF0
	dataErrorOutOfRange = 0x08
)

// ReadBlock reads the block at addr into b.
func (c *Card) ReadBlock(addr BlockAddress, b *Block) error {
	if err := c.ready(); err != nil {
		return err
	}
	c.link.selectCard()
	err := c.readBlock(addr, b)
	c.link.deselectCard()
	return c.finish("read", addr, err)
}

func (c *Card) readBlock(addr BlockAddress, b *Block) error {
	c.sendCommand(CmdReadSingleBlock, uint32(addr))
	r1, err := c.readR1()
	if err != nil {
		return commandFailed(CmdReadSingleBlock, r1, err)
	}
	if r1 != 0 {
		return rejected(CmdReadSingleBlock, r1)
	}
	if err := c.waitToken(); err != nil {
		return err
	}
	c.link.read(b[:])
	c.skipCRC()
	return c.link.err
}

// WriteBlock writes b to the block at addr. An error means the caller may
// not assume the data was committed.
func (c *Card) WriteBlock(addr BlockAddress, b *Block) error {
	if err := c.ready(); err != nil {
		return err
	}
	c.link.selectCard()
	err := c.writeBlock(addr, b)
	c.link.deselectCard()
	return c.finish("write", addr, err)
}

func (c *Card) writeBlock(addr BlockAddress, b *Block) error {
	c.sendCommand(CmdWriteBlock, uint32(addr))
	r1, err := c.readR1()
	if err != nil {
		return commandFailed(CmdWriteBlock, r1, err)
	}
	if r1 != 0 {
		return rejected(CmdWriteBlock, r1)
	}

	c.link.idle()
	c.link.exchange(tokenStart)
	c.link.write(b[:])
	c.skipCRC()

	resp, err := c.waitDataResponse()
	if err != nil {
		return err
	}
	if resp&dataResponseMask != dataResponseAccepted {
		return fmt.Errorf("card: %w: data response %#02x", pkg.ErrProtocol, resp)
	}
	return c.waitNotBusy()
}

// skipCRC clocks past the two CRC bytes that trail every data packet.
func (c *Card) skipCRC() {
	c.link.idle()
	c.link.idle()
}

// waitToken polls for the data start token.
func (c *Card) waitToken() error {
	for range c.cfg.TokenPolls {
		t := c.link.idle()
		if c.link.err != nil {
			return c.link.err
		}
		switch {
		case t == tokenStart:
			return nil
		case t&dataErrorMask == 0:
			if t&dataErrorOutOfRange != 0 {
				return fmt.Errorf("card: %w: data error token %#02x", pkg.ErrEndOfMedia, t)
			}
			return fmt.Errorf("card: %w: data error token %#02x", pkg.ErrProtocol, t)
		}
	}
	return fmt.Errorf("card: %w: no data token in %d bytes", pkg.ErrTransportTimeout, c.cfg.TokenPolls)
}

// waitDataResponse polls for the xxx0sss1 data response after a write.
func (c *Card) waitDataResponse() (byte, error) {
	for range c.cfg.WritePolls {
		b := c.link.idle()
		if c.link.err != nil {
			return 0, c.link.err
		}
		if b != 0xFF && b&0x11 == 0x01 {
			return b, nil
		}
	}
	return 0, fmt.Errorf("card: %w: no data response in %d bytes", pkg.ErrTransportTimeout, c.cfg.WritePolls)
}

// waitNotBusy polls while the card holds the data line low.
func (c *Card) waitNotBusy() error {
	for range c.cfg.WritePolls {
		b := c.link.idle()
		if c.link.err != nil {
			return c.link.err
		}
		if b != 0x00 {
			return nil
		}
	}
	return fmt.Errorf("card: %w: busy after %d bytes", pkg.ErrTransportTimeout, c.cfg.WritePolls)
}
