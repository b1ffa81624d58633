package card

import (
	"fmt"

	"github.com/ardnew/softsd/card/hal"
)

// link wraps a hal.Bus with the framing every card transaction needs and
// keeps the first transport error. Once an error is recorded every further
// exchange is skipped and reads as 0xFF, so protocol code can run straight
// through and check the error once.
type link struct {
	bus  hal.Bus
	bulk hal.Bulk
	err  error

	ones    [BlockSize]byte
	scratch [BlockSize]byte
}

func newLink(bus hal.Bus) *link {
	l := &link{bus: bus}
	if b, ok := bus.(hal.Bulk); ok {
		l.bulk = b
	}
	hal.Fill(l.ones[:])
	return l
}

func (l *link) fail(err error) {
	if l.err == nil && err != nil {
		l.err = fmt.Errorf("card: transport: %w", err)
	}
}

// take returns the recorded error and clears it.
func (l *link) take() error {
	err := l.err
	l.err = nil
	return err
}

func (l *link) exchange(b byte) byte {
	if l.err != nil {
		return 0xFF
	}
	v, err := l.bus.Exchange(b)
	if err != nil {
		l.fail(err)
		return 0xFF
	}
	return v
}

// idle clocks one 0xFF byte and returns what the card sent.
func (l *link) idle() byte {
	return l.exchange(0xFF)
}

// selectCard asserts chip select with a dummy byte on each side.
func (l *link) selectCard() {
	l.idle()
	if l.err == nil {
		l.fail(l.bus.Select())
	}
	l.idle()
}

// deselectCard releases chip select with a dummy byte on each side. The
// line is released even when an error has already been recorded.
func (l *link) deselectCard() {
	l.idle()
	l.fail(l.bus.Deselect())
	l.idle()
}

// write clocks out p, discarding what the card sends.
func (l *link) write(p []byte) {
	for len(p) > 0 {
		n := min(len(p), BlockSize)
		l.transfer(p[:n], l.scratch[:n])
		p = p[n:]
	}
}

// read fills p with bytes clocked in while sending 0xFF.
func (l *link) read(p []byte) {
	for len(p) > 0 {
		n := min(len(p), BlockSize)
		l.transfer(l.ones[:n], p[:n])
		p = p[n:]
	}
}

func (l *link) transfer(w, r []byte) {
	if l.err != nil {
		hal.Fill(r)
		return
	}
	if l.bulk != nil {
		if err := l.bulk.Tx(w, r); err != nil {
			l.fail(err)
			hal.Fill(r)
		}
		return
	}
	for i := range w {
		r[i] = l.exchange(w[i])
	}
}
