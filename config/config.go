package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
	"periph.io/x/conn/v3/physic"

	"github.com/ardnew/softsd/card"
	"github.com/ardnew/softsd/index"
	"github.com/ardnew/softsd/pkg"
)

// Transceiver names accepted in bus.transceiver.
const (
	TransceiverSim       = "sim"
	TransceiverImage     = "image"
	TransceiverSPIDev    = "spidev"
	TransceiverBusPirate = "buspirate"
)

// DefaultBlocks is the capacity of a simulated card (4 GiB).
const DefaultBlocks = 1 << 23

// DefaultBaud is the Bus Pirate serial rate.
const DefaultBaud = 115200

// Config is the tool configuration file.
type Config struct {
	Bus    BusConfig    `yaml:"bus"`
	Card   CardConfig   `yaml:"card"`
	Layout LayoutConfig `yaml:"layout"`
	Log    LogConfig    `yaml:"log"`
}

// ---- BUS ----

// BusConfig selects the transceiver the card is reached through.
type BusConfig struct {
	Transceiver string `yaml:"transceiver"`

	// image: card image file; sim and image: capacity in blocks
	Image    string `yaml:"image"`
	Blocks   uint64 `yaml:"blocks"`
	ReadOnly bool   `yaml:"read_only"`

	// spidev: SPI port name; buspirate: serial port
	Device     string `yaml:"device"`
	ChipSelect string `yaml:"chip_select"`
	Baud       int    `yaml:"baud"`
}

// ---- CARD ----

// CardConfig mirrors card.Config. Zero values select the defaults.
type CardConfig struct {
	SlowClockHz      int64 `yaml:"slow_clock_hz"`
	FastClockHz      int64 `yaml:"fast_clock_hz"`
	ActivateAttempts int   `yaml:"activate_attempts"`
	ResponsePolls    int   `yaml:"response_polls"`
	TokenPolls       int   `yaml:"token_polls"`
	WritePolls       int   `yaml:"write_polls"`
}

// ---- LAYOUT ----

// LayoutConfig places the reserved blocks and the provisioning scan.
type LayoutConfig struct {
	IndexBlock       uint32 `yaml:"index_block"`
	StartupFlagBlock uint32 `yaml:"startup_flag_block"`
	BatteryLogBlock  uint32 `yaml:"battery_log_block"`
	ScanStart        uint32 `yaml:"scan_start"`
	ScanEnd          uint32 `yaml:"scan_end"`
}

// ---- LOG ----

// LogConfig sets the log sink.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a normalized configuration for a simulated card.
func Default() *Config {
	cfg := &Config{}
	cfg.Normalize()
	return cfg
}

// Load reads, normalizes and validates the YAML file at path. Unknown keys
// are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	pkg.LogDebug(pkg.ComponentConfig, "loaded", "path", path, "transceiver", cfg.Bus.Transceiver)
	return cfg, nil
}

// Parse decodes, normalizes and validates YAML configuration data. Empty
// data yields the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CardConfig returns the card driver configuration.
func (c *Config) CardConfig() card.Config {
	return card.Config{
		SlowClock:        physic.Frequency(c.Card.SlowClockHz) * physic.Hertz,
		FastClock:        physic.Frequency(c.Card.FastClockHz) * physic.Hertz,
		ActivateAttempts: c.Card.ActivateAttempts,
		ResponsePolls:    c.Card.ResponsePolls,
		TokenPolls:       c.Card.TokenPolls,
		WritePolls:       c.Card.WritePolls,
	}
}

// IndexLayout returns the reserved block layout.
func (c *Config) IndexLayout() index.Layout {
	return index.Layout{
		IndexBlock:       card.BlockAddress(c.Layout.IndexBlock),
		StartupFlagBlock: card.BlockAddress(c.Layout.StartupFlagBlock),
		BatteryLogBlock:  card.BlockAddress(c.Layout.BatteryLogBlock),
	}
}

// ScanRange returns the provisioning scan range.
func (c *Config) ScanRange() index.ScanRange {
	return index.ScanRange{
		Start: card.BlockAddress(c.Layout.ScanStart),
		End:   card.BlockAddress(c.Layout.ScanEnd),
	}
}

// ApplyLog configures the pkg log sink.
func (c *Config) ApplyLog() error {
	level, err := pkg.ParseLogLevel(c.Log.Level)
	if err != nil {
		return err
	}
	format, err := pkg.ParseLogFormat(c.Log.Format)
	if err != nil {
		return err
	}
	pkg.SetLogLevel(level)
	pkg.SetLogFormat(format)
	return nil
}
