package card

import (
	"fmt"

	"github.com/ardnew/softsd/card/hal"
	"github.com/ardnew/softsd/pkg"
)

// BlockSize is the size of one card block in bytes.
const BlockSize = 512

// BlockAddress is the index of a 512-byte block.
type BlockAddress uint32

// Block is one block of card data.
type Block [BlockSize]byte

// Card drives an SD card in SPI mode over a hal.Bus.
//
// A Card is not safe for concurrent use. At most one Stream may be open on
// a Card; block I/O and new streams are refused until it is stopped.
type Card struct {
	link   *link
	cfg    Config
	state  State
	ocr    OCR
	stream *Stream
}

// New creates a Card on bus. The card is uninitialized until Init is called.
func New(bus hal.Bus, cfg Config) *Card {
	return &Card{
		link: newLink(bus),
		cfg:  cfg.normalize(),
	}
}

// State returns the lifecycle state.
func (c *Card) State() State {
	return c.state
}

// OCR returns the operating conditions register read at the end of Init.
func (c *Card) OCR() OCR {
	return c.ocr
}

// Config returns the effective configuration.
func (c *Card) Config() Config {
	return c.cfg
}

// Streaming reports whether a stream is open.
func (c *Card) Streaming() bool {
	return c.stream != nil
}

// ready checks the preconditions shared by every data operation.
func (c *Card) ready() error {
	if c.state != StateReady {
		return fmt.Errorf("card: %w (state %s)", pkg.ErrNotInitialized, c.state)
	}
	if c.stream != nil {
		return fmt.Errorf("card: %w: stream open at block %d", pkg.ErrStreamMisuse, c.stream.start)
	}
	return nil
}

// finish merges a pending transport error into err, logging failures.
func (c *Card) finish(op string, addr BlockAddress, err error) error {
	if terr := c.link.take(); err == nil {
		err = terr
	}
	if err != nil {
		pkg.LogWarn(pkg.ComponentBlock, op+" failed", "block", uint32(addr), "error", err)
	}
	return err
}
