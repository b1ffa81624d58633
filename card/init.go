package card

import (
	"context"
	"fmt"

	"github.com/ardnew/softsd/pkg"
)

// powerUpBytes is the number of 0xFF bytes clocked with chip select high
// before CMD0 (80 clocks, at least 74 required).
const powerUpBytes = 10

// Init drives the card from power-on to StateReady on the slow clock.
//
// The sequence is linear: CMD0, CMD8 interface check, CMD58 voltage query,
// CMD55/ACMD41 activation and a final CMD58 capacity check. Any failure
// leaves the card in StateFailed. Running out of activation attempts is
// not itself fatal; the capacity check then decides.
//
// Init never raises the clock; call RaiseClock once the card is in use.
func (c *Card) Init(ctx context.Context) error {
	if c.stream != nil {
		pkg.LogWarn(pkg.ComponentInit, "re-init with open stream")
		c.stream.card = nil
		c.stream = nil
	}

	c.state = StateUninitialized
	c.ocr = 0
	c.link.take()

	err := c.initialize(ctx)
	c.link.deselectCard()
	if terr := c.link.take(); err == nil {
		err = terr
	}
	if err != nil {
		c.state = StateFailed
		pkg.LogError(pkg.ComponentInit, "initialization failed", "error", err)
		return err
	}

	c.state = StateReady
	pkg.LogInfo(pkg.ComponentInit, "card ready", "ocr", c.ocr)
	return nil
}

func (c *Card) initialize(ctx context.Context) error {
	if err := c.goIdle(); err != nil {
		return err
	}
	c.state = StateIdle

	steps := []func() error{
		c.checkInterface,
		c.queryPower,
		func() error { return c.activate(ctx) },
		c.confirmCapacity,
	}
	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("card: init: %w", err)
		}
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Card) goIdle() error {
	if err := c.link.bus.SetFrequency(c.cfg.SlowClock); err != nil {
		return fmt.Errorf("card: set clock: %w", err)
	}
	c.link.deselectCard()
	for range powerUpBytes {
		c.link.idle()
	}
	c.link.selectCard()

	c.sendCommand(CmdGoIdleState, 0)
	r1, err := c.readR1()
	if err != nil {
		return commandFailed(CmdGoIdleState, r1, err)
	}
	if r1 != R1Idle {
		return commandFailed(CmdGoIdleState, r1, fmt.Errorf("%w: want idle", pkg.ErrProtocol))
	}
	pkg.LogDebug(pkg.ComponentInit, "idle")
	return nil
}

func (c *Card) checkInterface() error {
	c.sendCommand(CmdSendIfCond, ifCondArg)
	r1, voltage, echo, err := c.readR7()
	if err != nil {
		return commandFailed(CmdSendIfCond, r1, err)
	}
	if r1 != R1Idle {
		return commandFailed(CmdSendIfCond, r1, pkg.ErrUnsupportedCard)
	}
	if voltage != ifCondVoltage || echo != ifCondEcho {
		return commandFailed(CmdSendIfCond, r1,
			fmt.Errorf("%w: voltage %#x echo %#02x", pkg.ErrUnsupportedCard, voltage, echo))
	}
	pkg.LogDebug(pkg.ComponentInit, "interface condition accepted")
	return nil
}

func (c *Card) queryPower() error {
	c.sendCommand(CmdReadOCR, 0)
	r1, ocr, err := c.readR3()
	if err != nil {
		return commandFailed(CmdReadOCR, r1, err)
	}
	if !ocr.Accepts3V3() {
		pkg.LogWarn(pkg.ComponentInit, "card does not report 3.3 V support", "ocr", ocr)
	} else {
		pkg.LogDebug(pkg.ComponentInit, "power query", "r1", r1, "ocr", ocr)
	}
	return nil
}

func (c *Card) activate(ctx context.Context) error {
	for attempt := 1; attempt <= c.cfg.ActivateAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("card: init: %w", err)
		}

		c.sendCommand(CmdAppCmd, 0)
		if r1, err := c.readR1(); err != nil {
			return commandFailed(CmdAppCmd, r1, err)
		}

		c.sendCommand(AppCmdSendOpCond, opCondHCS)
		r1, err := c.readR1()
		if err != nil {
			return commandFailed(AppCmdSendOpCond, r1, err)
		}
		if err := r1.Err(); err != nil {
			return commandFailed(AppCmdSendOpCond, r1, err)
		}
		if r1 == 0 {
			pkg.LogDebug(pkg.ComponentInit, "activated", "attempts", attempt)
			return nil
		}
	}
	pkg.LogWarn(pkg.ComponentInit, "activation attempts exhausted", "attempts", c.cfg.ActivateAttempts)
	return nil
}

func (c *Card) confirmCapacity() error {
	c.sendCommand(CmdReadOCR, 0)
	r1, ocr, err := c.readR3()
	if err != nil {
		return commandFailed(CmdReadOCR, r1, err)
	}
	c.ocr = ocr
	switch {
	case r1 != 0:
		return commandFailed(CmdReadOCR, r1, fmt.Errorf("%w: card still %s", pkg.ErrCardFailed, r1))
	case !ocr.PowerUp():
		return commandFailed(CmdReadOCR, r1, fmt.Errorf("%w: power-up incomplete", pkg.ErrCardFailed))
	case !ocr.HighCapacity():
		return commandFailed(CmdReadOCR, r1, fmt.Errorf("%w: byte-addressed card", pkg.ErrUnsupportedCard))
	}
	return nil
}

// RaiseClock switches the bus to the fast clock. The card must be ready.
func (c *Card) RaiseClock() error {
	if c.state != StateReady {
		return fmt.Errorf("card: %w (state %s)", pkg.ErrNotInitialized, c.state)
	}
	if err := c.link.bus.SetFrequency(c.cfg.FastClock); err != nil {
		return fmt.Errorf("card: set clock: %w", err)
	}
	pkg.LogInfo(pkg.ComponentCard, "clock raised", "frequency", c.cfg.FastClock)
	return nil
}
