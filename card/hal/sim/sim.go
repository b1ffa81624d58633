package sim

import (
	"encoding/binary"
	"sync"

	"periph.io/x/conn/v3/physic"

	"github.com/ardnew/softsd/pkg"
)

// R1 bits produced by the simulated card.
const (
	r1Ready        = 0x00
	r1Idle         = 0x01
	r1IllegalCmd   = 0x04
	r1CRCError     = 0x08
	r1AddressError = 0x20
)

// Tokens produced and consumed by the simulated card.
const (
	tokenStart        = 0xFE
	tokenDataAccepted = 0xE5 // xxx0_0101
	tokenWriteError   = 0xED // xxx0_1101
	tokenOutOfRange   = 0x08 // data error token, out of range bit
)

// OCR bits.
const (
	ocrPowerUp = 1 << 31
	ocrCCS     = 1 << 30
	ocrVoltage = 0x00FF8000 // 2.7 V - 3.6 V
)

// minPowerUpClocks is the number of clocks a card needs with chip select
// high before it accepts CMD0.
const minPowerUpClocks = 74

type phase uint8

const (
	phaseOff   phase = iota // powered, waiting for CMD0
	phaseIdle               // CMD0 accepted, initializing
	phaseReady              // ACMD41 complete
)

type writeState uint8

const (
	writeNone writeState = iota
	writeToken
	writeData
	writeCRC
)

type options struct {
	latency     int
	tokenDelay  int
	busy        int
	stopBusy    int
	activation  int
	legacy      bool
	standardCap bool
}

// Option configures a simulated card.
type Option func(*options)

// WithResponseLatency sets the number of 0xFF bytes the card clocks out
// between the end of a command frame and its response (Ncr). The default
// is 2.
func WithResponseLatency(n int) Option {
	return func(o *options) { o.latency = n }
}

// WithTokenDelay sets the number of 0xFF bytes preceding each 0xFE data
// token. The default is 1.
func WithTokenDelay(n int) Option {
	return func(o *options) { o.tokenDelay = n }
}

// WithBusy sets the number of 0x00 busy bytes after an accepted write.
// The default is 4.
func WithBusy(n int) Option {
	return func(o *options) { o.busy = n }
}

// WithStopBusy sets the number of 0x00 busy bytes after the CMD12 response.
// The card ignores commands until they have been clocked out, whether or
// not it is selected. The default is 32.
func WithStopBusy(n int) Option {
	return func(o *options) { o.stopBusy = n }
}

// WithActivationPolls sets how many ACMD41 polls the card needs before it
// leaves the idle state. n <= 0 keeps the card idle forever. The default is 1.
func WithActivationPolls(n int) Option {
	return func(o *options) { o.activation = n }
}

// WithLegacy makes the card reject CMD8 as an illegal command, like a
// version 1.x card.
func WithLegacy() Option {
	return func(o *options) { o.legacy = true }
}

// WithStandardCapacity clears the CCS bit in the OCR, like a byte-addressed
// card.
func WithStandardCapacity() Option {
	return func(o *options) { o.standardCap = true }
}

// Card simulates an SD card in SPI mode on top of a block Store.
// It implements hal.Bus.
type Card struct {
	store Store
	opts  options

	selected  bool
	frequency physic.Frequency
	clocks    int

	// Bytes of busy left after CMD12.
	busyLeft int

	// Pending output, clocked out one byte per exchange.
	out []byte

	// Command frame being received.
	frame    [6]byte
	frameLen int

	phase  phase
	appCmd bool
	polls  int

	streaming bool
	next      uint32

	write   writeState
	waddr   uint32
	wbuf    [BlockSize]byte
	wpos    int
	crcLeft int

	history []uint8
	block   [BlockSize]byte

	mutex sync.Mutex
}

// New creates a powered-off simulated card backed by store.
func New(store Store, opts ...Option) *Card {
	c := &Card{
		store: store,
		opts: options{
			latency:    2,
			tokenDelay: 1,
			busy:       4,
			stopBusy:   32,
			activation: 1,
		},
	}
	for _, opt := range opts {
		opt(&c.opts)
	}
	return c
}

// Select drives chip select low.
func (c *Card) Select() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.selected = true
	return nil
}

// Deselect drives chip select high. Any transfer in progress is abandoned.
func (c *Card) Deselect() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.selected = false
	c.out = c.out[:0]
	c.frameLen = 0
	c.streaming = false
	c.write = writeNone
	return nil
}

// SetFrequency records the bus clock.
func (c *Card) SetFrequency(f physic.Frequency) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.frequency = f
	return nil
}

// Exchange clocks one byte in each direction.
func (c *Card) Exchange(in byte) (byte, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if !c.selected {
		c.clocks += 8
		if len(c.out) == 0 && c.busyLeft > 0 {
			c.busyLeft--
		}
		return 0xFF, nil
	}
	if len(c.out) == 0 && c.busyLeft > 0 {
		c.busyLeft--
		return 0x00, nil
	}

	out := c.pop()
	c.accept(in)
	return out, nil
}

// Frequency returns the last clock set on the bus.
func (c *Card) Frequency() physic.Frequency {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.frequency
}

// Selected reports whether chip select is currently active.
func (c *Card) Selected() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.selected
}

// Ready reports whether the card has completed initialization.
func (c *Card) Ready() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.phase == phaseReady
}

// Commands returns the opcodes received since power-up, in order.
func (c *Card) Commands() []uint8 {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return append([]uint8(nil), c.history...)
}

// Count returns how many times opcode was received.
func (c *Card) Count(opcode uint8) int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	n := 0
	for _, op := range c.history {
		if op == opcode {
			n++
		}
	}
	return n
}

// PowerCycle returns the card to its power-on state.
func (c *Card) PowerCycle() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.phase = phaseOff
	c.selected = false
	c.clocks = 0
	c.busyLeft = 0
	c.polls = 0
	c.appCmd = false
	c.out = c.out[:0]
	c.frameLen = 0
	c.streaming = false
	c.write = writeNone
	c.history = c.history[:0]
}

func (c *Card) pop() byte {
	if len(c.out) == 0 && c.streaming {
		c.queueBlock(c.next)
		c.next++
	}
	if len(c.out) == 0 {
		return 0xFF
	}
	b := c.out[0]
	c.out = c.out[1:]
	return b
}

func (c *Card) accept(in byte) {
	switch {
	case c.write != writeNone:
		c.acceptData(in)
	case c.frameLen > 0:
		c.frame[c.frameLen] = in
		c.frameLen++
		if c.frameLen == len(c.frame) {
			c.frameLen = 0
			c.execute()
		}
	case in&0xC0 == 0x40:
		c.frame[0] = in
		c.frameLen = 1
	}
}

// respond replaces pending output with the Ncr gap followed by r.
func (c *Card) respond(r ...byte) {
	c.out = c.out[:0]
	for range c.opts.latency {
		c.out = append(c.out, 0xFF)
	}
	c.out = append(c.out, r...)
}

func (c *Card) r1() byte {
	if c.phase == phaseReady {
		return r1Ready
	}
	return r1Idle
}

func (c *Card) execute() {
	op := c.frame[0] & 0x3F
	arg := binary.BigEndian.Uint32(c.frame[1:5])
	crc := c.frame[5]
	c.history = append(c.history, op)

	if op == 0 {
		c.goIdle(crc)
		return
	}
	if c.phase == phaseOff {
		return
	}

	appCmd := c.appCmd
	c.appCmd = false

	switch op {
	case 8:
		switch {
		case c.opts.legacy:
			c.respond(c.r1() | r1IllegalCmd)
		case crc != 0x87:
			c.respond(c.r1() | r1CRCError)
		default:
			c.respond(c.r1(), 0x00, 0x00, byte(arg>>8)&0x0F, byte(arg))
		}

	case 58:
		ocr := uint32(ocrVoltage)
		if c.phase == phaseReady {
			ocr |= ocrPowerUp
			if !c.opts.standardCap {
				ocr |= ocrCCS
			}
		}
		c.respond(c.r1(), byte(ocr>>24), byte(ocr>>16), byte(ocr>>8), byte(ocr))

	case 55:
		c.appCmd = true
		c.respond(c.r1())

	case 41:
		if !appCmd {
			c.respond(c.r1() | r1IllegalCmd)
			return
		}
		if c.phase == phaseIdle {
			c.polls++
			if c.opts.activation > 0 && c.polls >= c.opts.activation {
				c.phase = phaseReady
			}
		}
		c.respond(c.r1())

	case 16:
		c.respond(c.r1())

	case 17, 18, 24:
		switch {
		case c.phase != phaseReady:
			c.respond(c.r1() | r1IllegalCmd)
		case uint64(arg) >= c.store.BlockCount():
			c.respond(r1AddressError)
		case op == 17:
			c.respond(r1Ready)
			c.queueBlock(arg)
		case op == 18:
			c.respond(r1Ready)
			c.streaming = true
			c.next = arg
		default:
			c.respond(r1Ready)
			c.write = writeToken
			c.waddr = arg
		}

	case 12:
		c.streaming = false
		// R1b: the card stays busy while the transfer winds down.
		c.respond(r1Ready)
		c.busyLeft = c.opts.stopBusy

	default:
		c.respond(c.r1() | r1IllegalCmd)
	}
}

func (c *Card) goIdle(crc byte) {
	if c.phase == phaseOff && c.clocks < minPowerUpClocks {
		pkg.LogDebug(pkg.ComponentHAL, "sim: CMD0 before power-up clocks", "clocks", c.clocks)
		return
	}
	if crc != 0x95 {
		c.respond(r1Idle | r1CRCError)
		return
	}
	c.phase = phaseIdle
	c.polls = 0
	c.appCmd = false
	c.streaming = false
	c.respond(r1Idle)
}

// queueBlock appends a data packet (gap, token, payload, CRC) for block lba.
func (c *Card) queueBlock(lba uint32) {
	if uint64(lba) >= c.store.BlockCount() {
		c.streaming = false
		c.out = append(c.out, tokenOutOfRange)
		return
	}
	if err := c.store.ReadBlock(lba, c.block[:]); err != nil {
		pkg.LogWarn(pkg.ComponentHAL, "sim: read failed", "block", lba, "error", err)
		c.streaming = false
		c.out = append(c.out, tokenOutOfRange)
		return
	}
	for range c.opts.tokenDelay {
		c.out = append(c.out, 0xFF)
	}
	c.out = append(c.out, tokenStart)
	c.out = append(c.out, c.block[:]...)
	c.out = append(c.out, 0x00, 0x00)
}

func (c *Card) acceptData(in byte) {
	switch c.write {
	case writeToken:
		if in == tokenStart {
			c.write = writeData
			c.wpos = 0
		}
	case writeData:
		c.wbuf[c.wpos] = in
		c.wpos++
		if c.wpos == BlockSize {
			c.write = writeCRC
			c.crcLeft = 2
		}
	case writeCRC:
		c.crcLeft--
		if c.crcLeft > 0 {
			return
		}
		c.write = writeNone
		c.out = c.out[:0]
		if err := c.store.WriteBlock(c.waddr, c.wbuf[:]); err != nil {
			pkg.LogDebug(pkg.ComponentHAL, "sim: write rejected", "block", c.waddr, "error", err)
			c.out = append(c.out, tokenWriteError)
			return
		}
		c.out = append(c.out, tokenDataAccepted)
		for range c.opts.busy {
			c.out = append(c.out, 0x00)
		}
	}
}

// BulkCard wraps a Card to also implement hal.Bulk, so the driver's
// buffered transfer path can be exercised against the simulator.
type BulkCard struct {
	*Card
}

// Tx exchanges w and stores the clocked-in bytes in r.
func (b BulkCard) Tx(w, r []byte) error {
	for i := range w {
		v, err := b.Exchange(w[i])
		if err != nil {
			return err
		}
		r[i] = v
	}
	return nil
}
