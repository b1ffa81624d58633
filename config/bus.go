package config

import (
	"fmt"
	"io"

	"periph.io/x/conn/v3/physic"

	"github.com/ardnew/softsd/card/hal"
	"github.com/ardnew/softsd/card/hal/buspirate"
	"github.com/ardnew/softsd/card/hal/sim"
	"github.com/ardnew/softsd/card/hal/spidev"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// OpenBus opens the configured transceiver. The returned closer releases
// it and must be called once the card is no longer used.
func (c *Config) OpenBus() (hal.Bus, io.Closer, error) {
	switch c.Bus.Transceiver {
	case TransceiverSim:
		bus := sim.New(sim.NewMemoryStore(c.Bus.Blocks))
		return bus, closerFunc(func() error { return nil }), nil

	case TransceiverImage:
		store, err := sim.NewFileStore(c.Bus.Image, c.Bus.Blocks, c.Bus.ReadOnly)
		if err != nil {
			return nil, nil, fmt.Errorf("config: image: %w", err)
		}
		closer := closerFunc(func() error {
			if err := store.Sync(); err != nil {
				store.Close()
				return err
			}
			return store.Close()
		})
		return sim.BulkCard{Card: sim.New(store)}, closer, nil

	case TransceiverSPIDev:
		limit := physic.Frequency(c.Card.FastClockHz) * physic.Hertz
		bus, err := spidev.Open(c.Bus.Device, c.Bus.ChipSelect, limit)
		if err != nil {
			return nil, nil, err
		}
		return bus, bus, nil

	case TransceiverBusPirate:
		bus, err := buspirate.Open(c.Bus.Device, c.Bus.Baud)
		if err != nil {
			return nil, nil, err
		}
		return bus, bus, nil
	}
	return nil, nil, fmt.Errorf("config: unknown transceiver %q", c.Bus.Transceiver)
}
