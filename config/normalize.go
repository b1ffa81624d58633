package config

import (
	"periph.io/x/conn/v3/physic"

	"github.com/ardnew/softsd/card"
	"github.com/ardnew/softsd/index"
)

// Normalize fills every unset field with its default. It never overrides a
// value that was set.
func (c *Config) Normalize() {
	if c.Bus.Transceiver == "" {
		c.Bus.Transceiver = TransceiverSim
	}
	if c.Bus.Blocks == 0 {
		c.Bus.Blocks = DefaultBlocks
	}
	if c.Bus.Transceiver == TransceiverBusPirate && c.Bus.Baud == 0 {
		c.Bus.Baud = DefaultBaud
	}

	d := card.DefaultConfig()
	c.Card.SlowClockHz = orDefault(c.Card.SlowClockHz, int64(d.SlowClock/physic.Hertz))
	c.Card.FastClockHz = orDefault(c.Card.FastClockHz, int64(d.FastClock/physic.Hertz))
	c.Card.ActivateAttempts = orDefault(c.Card.ActivateAttempts, d.ActivateAttempts)
	c.Card.ResponsePolls = orDefault(c.Card.ResponsePolls, d.ResponsePolls)
	c.Card.TokenPolls = orDefault(c.Card.TokenPolls, d.TokenPolls)
	c.Card.WritePolls = orDefault(c.Card.WritePolls, d.WritePolls)

	l := index.DefaultLayout()
	c.Layout.IndexBlock = orDefault(c.Layout.IndexBlock, uint32(l.IndexBlock))
	c.Layout.StartupFlagBlock = orDefault(c.Layout.StartupFlagBlock, uint32(l.StartupFlagBlock))
	c.Layout.BatteryLogBlock = orDefault(c.Layout.BatteryLogBlock, uint32(l.BatteryLogBlock))

	r := index.DefaultScanRange()
	c.Layout.ScanStart = orDefault(c.Layout.ScanStart, uint32(r.Start))
	c.Layout.ScanEnd = orDefault(c.Layout.ScanEnd, uint32(r.End))

	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func orDefault[T comparable](v, d T) T {
	var zero T
	if v == zero {
		return d
	}
	return v
}
