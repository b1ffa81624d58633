package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/ardnew/softsd/card"
	"github.com/ardnew/softsd/card/hal"
	"github.com/ardnew/softsd/index"
	"github.com/ardnew/softsd/pkg"
)

// Event is a higher-priority condition that must close any open stream
// before it is handled.
type Event uint8

// Interrupting events.
const (
	EventNavigation Event = iota
	EventLowBattery
	EventSleep
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventNavigation:
		return "navigation"
	case EventLowBattery:
		return "low-battery"
	case EventSleep:
		return "sleep"
	default:
		return "unknown"
	}
}

// Options configures an Engine.
type Options struct {
	Card    card.Config
	Catalog index.Catalog
	Layout  index.Layout
}

// DefaultOptions returns the device configuration.
func DefaultOptions() Options {
	return Options{
		Card:    card.DefaultConfig(),
		Catalog: index.DefaultCatalog,
		Layout:  index.DefaultLayout(),
	}
}

// Engine owns the card, the file index and the battery log of a device.
// It is driven from a single loop and is not safe for concurrent use.
type Engine struct {
	card    *card.Card
	index   *index.Index
	battery *BatteryLog
	layout  index.Layout
}

// New creates an engine on bus. Nothing touches the bus until Boot.
func New(bus hal.Bus, opts Options) *Engine {
	if opts.Catalog == nil {
		opts.Catalog = index.DefaultCatalog
	}
	if opts.Layout == (index.Layout{}) {
		opts.Layout = index.DefaultLayout()
	}
	c := card.New(bus, opts.Card)
	return &Engine{
		card:    c,
		index:   index.New(opts.Catalog, opts.Layout),
		battery: NewBatteryLog(c, opts.Layout.BatteryLogBlock),
		layout:  opts.Layout,
	}
}

// Boot initializes the card, imports the file index and raises the bus
// clock. On failure the index is left empty, so every lookup resolves to
// 0 and media consumers render nothing.
func (e *Engine) Boot(ctx context.Context) error {
	e.index.Reset()

	if err := e.card.Init(ctx); err != nil {
		pkg.LogError(pkg.ComponentEngine, "boot: card unavailable", "error", err, "class", pkg.Classify(err))
		return fmt.Errorf("engine: boot: %w", err)
	}
	if err := e.index.Import(e.card); err != nil {
		e.index.Reset()
		pkg.LogError(pkg.ComponentEngine, "boot: index import failed", "error", err)
		return fmt.Errorf("engine: boot: %w", err)
	}
	if err := e.card.RaiseClock(); err != nil {
		pkg.LogError(pkg.ComponentEngine, "boot: clock", "error", err)
		return fmt.Errorf("engine: boot: %w", err)
	}

	pkg.LogInfo(pkg.ComponentEngine, "boot complete", "files", e.index.Resolved())
	return nil
}

// Card returns the card driver.
func (e *Engine) Card() *card.Card {
	return e.card
}

// Index returns the file index.
func (e *Engine) Index() *index.Index {
	return e.index
}

// Layout returns the reserved block layout.
func (e *Engine) Layout() index.Layout {
	return e.layout
}

// BatteryLog returns the battery drain log.
func (e *Engine) BatteryLog() *BatteryLog {
	return e.battery
}

// Open resolves id and starts a stream at its first block. It fails with
// pkg.ErrFileUnresolved if the file is absent.
func (e *Engine) Open(id index.ID) (*card.Stream, index.Record, error) {
	r, err := e.index.Lookup(id)
	if err != nil {
		return nil, r, err
	}
	s, err := e.card.StartStream(r.Address, r.SizeBlocks)
	if err != nil {
		return nil, r, fmt.Errorf("engine: open %v: %w", id, err)
	}
	return s, r, nil
}

// Interrupt closes any open stream before ev is handled. Events that may
// precede power loss also flush the battery log.
func (e *Engine) Interrupt(ev Event) error {
	pkg.LogDebug(pkg.ComponentEngine, "interrupt", "event", ev)

	err := e.card.Quiesce()
	if err != nil {
		pkg.LogWarn(pkg.ComponentEngine, "interrupt: stream stop failed", "event", ev, "error", err)
	}
	switch ev {
	case EventLowBattery, EventSleep:
		if e.card.State() == card.StateReady {
			err = errors.Join(err, e.battery.Flush())
		}
	}
	return err
}

// startupFlagSet and startupFlagClear are the only valid flag bytes.
const (
	startupFlagClear = 0
	startupFlagSet   = 1
)

// StartupFlag reads the intro preference stored in the first byte of the
// startup flag block.
func (e *Engine) StartupFlag() (bool, error) {
	var b card.Block
	if err := e.card.ReadBlock(e.layout.StartupFlagBlock, &b); err != nil {
		return false, fmt.Errorf("engine: startup flag: %w", err)
	}
	switch b[0] {
	case startupFlagClear:
		return false, nil
	case startupFlagSet:
		return true, nil
	default:
		return false, fmt.Errorf("engine: %w: startup flag byte %#02x", pkg.ErrProtocol, b[0])
	}
}

// SetStartupFlag stores the intro preference. The rest of the block is
// cleared.
func (e *Engine) SetStartupFlag(set bool) error {
	var b card.Block
	if set {
		b[0] = startupFlagSet
	}
	if err := e.card.WriteBlock(e.layout.StartupFlagBlock, &b); err != nil {
		return fmt.Errorf("engine: startup flag: %w", err)
	}
	return nil
}
