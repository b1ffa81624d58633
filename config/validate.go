package config

import (
	"errors"
	"fmt"

	"github.com/ardnew/softsd/pkg"
)

// indexTableBlocks is the number of blocks the exported index occupies.
const indexTableBlocks = 2

// Validate checks a normalized configuration. It reports every problem
// found, joined, and never mutates the configuration.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{pkg.ErrInvalidParameter}, args...)...))
	}

	switch c.Bus.Transceiver {
	case TransceiverSim:
	case TransceiverImage:
		if c.Bus.Image == "" {
			invalid("bus.image is required for the %s transceiver", c.Bus.Transceiver)
		}
	case TransceiverSPIDev:
		// An empty device opens the first SPI port.
		if c.Bus.ChipSelect == "" {
			invalid("bus.chip_select is required for the %s transceiver", c.Bus.Transceiver)
		}
	case TransceiverBusPirate:
		if c.Bus.Device == "" {
			invalid("bus.device is required for the %s transceiver", c.Bus.Transceiver)
		}
		if c.Bus.Baud <= 0 {
			invalid("bus.baud %d", c.Bus.Baud)
		}
	default:
		invalid("bus.transceiver %q (want %s, %s, %s or %s)", c.Bus.Transceiver,
			TransceiverSim, TransceiverImage, TransceiverSPIDev, TransceiverBusPirate)
	}

	if c.Card.SlowClockHz < 0 || c.Card.FastClockHz < 0 {
		invalid("card clocks must be positive")
	}
	if c.Card.SlowClockHz > c.Card.FastClockHz {
		invalid("card.slow_clock_hz %d above card.fast_clock_hz %d", c.Card.SlowClockHz, c.Card.FastClockHz)
	}
	for _, f := range []struct {
		name string
		v    int
	}{
		{"activate_attempts", c.Card.ActivateAttempts},
		{"response_polls", c.Card.ResponsePolls},
		{"token_polls", c.Card.TokenPolls},
		{"write_polls", c.Card.WritePolls},
	} {
		if f.v < 0 {
			invalid("card.%s %d", f.name, f.v)
		}
	}

	l := c.Layout
	idx := [2]uint32{l.IndexBlock, l.IndexBlock + indexTableBlocks}
	for _, f := range []struct {
		name  string
		block uint32
	}{
		{"startup_flag_block", l.StartupFlagBlock},
		{"battery_log_block", l.BatteryLogBlock},
	} {
		if f.block >= idx[0] && f.block < idx[1] {
			invalid("layout.%s %d overlaps the index table at %d", f.name, f.block, l.IndexBlock)
		}
	}
	if l.StartupFlagBlock == l.BatteryLogBlock {
		invalid("layout.startup_flag_block and layout.battery_log_block are both %d", l.StartupFlagBlock)
	}
	if l.ScanEnd <= l.ScanStart {
		invalid("layout.scan_end %d not above layout.scan_start %d", l.ScanEnd, l.ScanStart)
	}
	if c.Bus.Transceiver == TransceiverSim || c.Bus.Transceiver == TransceiverImage {
		if uint64(l.BatteryLogBlock) >= c.Bus.Blocks || uint64(idx[1]) > c.Bus.Blocks || uint64(l.StartupFlagBlock) >= c.Bus.Blocks {
			invalid("layout does not fit in %d blocks", c.Bus.Blocks)
		}
	}

	if _, err := pkg.ParseLogLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if _, err := pkg.ParseLogFormat(c.Log.Format); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
