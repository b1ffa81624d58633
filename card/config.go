package card

import (
	"periph.io/x/conn/v3/physic"

	"github.com/ardnew/softsd/card/hal"
)

// Default polling bounds. All waits are iteration counts over exchanged
// bytes, not wall-clock timeouts.
const (
	DefaultActivateAttempts = 200
	DefaultResponsePolls    = 8
	DefaultTokenPolls       = 6000
	DefaultWritePolls       = 7000
)

// Config holds the bus clocks and polling bounds used by a Card.
// Zero fields are replaced with their defaults by New.
type Config struct {
	// SlowClock is the clock used for the whole initialization sequence.
	SlowClock physic.Frequency

	// FastClock is applied by RaiseClock once the card is ready.
	FastClock physic.Frequency

	// ActivateAttempts bounds the CMD55/ACMD41 loop. Running out of
	// attempts is logged and the sequence continues to the capacity check.
	ActivateAttempts int

	// ResponsePolls bounds the wait for an R1 byte after the Ncr gap.
	ResponsePolls int

	// TokenPolls bounds the wait for a data start token.
	TokenPolls int

	// WritePolls bounds both the data-response wait and the busy wait
	// after a block write.
	WritePolls int
}

// DefaultConfig returns the configuration matching the device firmware.
func DefaultConfig() Config {
	return Config{
		SlowClock:        hal.SlowFrequency,
		FastClock:        hal.FastFrequency,
		ActivateAttempts: DefaultActivateAttempts,
		ResponsePolls:    DefaultResponsePolls,
		TokenPolls:       DefaultTokenPolls,
		WritePolls:       DefaultWritePolls,
	}
}

func (c Config) normalize() Config {
	d := DefaultConfig()
	if c.SlowClock <= 0 {
		c.SlowClock = d.SlowClock
	}
	if c.FastClock <= 0 {
		c.FastClock = d.FastClock
	}
	if c.ActivateAttempts <= 0 {
		c.ActivateAttempts = d.ActivateAttempts
	}
	if c.ResponsePolls <= 0 {
		c.ResponsePolls = d.ResponsePolls
	}
	if c.TokenPolls <= 0 {
		c.TokenPolls = d.TokenPolls
	}
	if c.WritePolls <= 0 {
		c.WritePolls = d.WritePolls
	}
	return c
}
