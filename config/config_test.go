package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"periph.io/x/conn/v3/physic"

	"github.com/ardnew/softsd/card"
	"github.com/ardnew/softsd/index"
	"github.com/ardnew/softsd/pkg"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got, want := cfg.CardConfig(), card.DefaultConfig(); got != want {
		t.Errorf("CardConfig() = %+v, want %+v", got, want)
	}
	if got, want := cfg.IndexLayout(), index.DefaultLayout(); got != want {
		t.Errorf("IndexLayout() = %+v, want %+v", got, want)
	}
	if got, want := cfg.ScanRange(), index.DefaultScanRange(); got != want {
		t.Errorf("ScanRange() = %+v, want %+v", got, want)
	}
	if cfg.Bus.Transceiver != TransceiverSim {
		t.Errorf("Bus.Transceiver = %q, want %q", cfg.Bus.Transceiver, TransceiverSim)
	}
}

func TestParse(t *testing.T) {
	data := `
bus:
  transceiver: image
  image: card.img
  blocks: 9000000
card:
  fast_clock_hz: 4000000
  token_polls: 100
layout:
  scan_start: 16000
log:
  level: debug
  format: json
`
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Bus.Image != "card.img" || cfg.Bus.Blocks != 9000000 {
		t.Errorf("Bus = %+v", cfg.Bus)
	}
	cc := cfg.CardConfig()
	if cc.FastClock != 4*physic.MegaHertz || cc.TokenPolls != 100 {
		t.Errorf("CardConfig() = %+v", cc)
	}
	if cc.SlowClock != card.DefaultConfig().SlowClock {
		t.Errorf("CardConfig().SlowClock = %v, want default", cc.SlowClock)
	}
	if got := cfg.ScanRange().Start; got != 16000 {
		t.Errorf("ScanRange().Start = %d, want 16000", got)
	}
	if got := cfg.IndexLayout().IndexBlock; got != index.DefaultIndexBlock {
		t.Errorf("IndexLayout().IndexBlock = %d, want %d", got, index.DefaultIndexBlock)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Parse(nil) = %+v, want defaults", cfg)
	}
}

func TestParseUnknownField(t *testing.T) {
	if _, err := Parse([]byte("bus:\n  speed: 9\n")); err == nil {
		t.Error("Parse() unknown field error = nil, want error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"unknown transceiver", func(c *Config) { c.Bus.Transceiver = "usb" }, "bus.transceiver"},
		{"image without path", func(c *Config) { c.Bus.Transceiver = TransceiverImage }, "bus.image"},
		{"spidev without chip select", func(c *Config) { c.Bus.Transceiver = TransceiverSPIDev }, "bus.chip_select"},
		{"bus pirate without port", func(c *Config) { c.Bus.Transceiver = TransceiverBusPirate }, "bus.device"},
		{"clocks inverted", func(c *Config) { c.Card.SlowClockHz = 10_000_000 }, "slow_clock_hz"},
		{"negative polls", func(c *Config) { c.Card.TokenPolls = -1 }, "token_polls"},
		{"flag in table", func(c *Config) { c.Layout.StartupFlagBlock = c.Layout.IndexBlock + 1 }, "startup_flag_block"},
		{"shared block", func(c *Config) { c.Layout.BatteryLogBlock = c.Layout.StartupFlagBlock }, "both"},
		{"empty scan", func(c *Config) { c.Layout.ScanEnd = c.Layout.ScanStart }, "scan_end"},
		{"small card", func(c *Config) { c.Bus.Blocks = 1000 }, "does not fit"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log level"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, pkg.ErrInvalidParameter) {
				t.Fatalf("Validate() error = %v, want %v", err, pkg.ErrInvalidParameter)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() error = %q, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Bus.Transceiver = "usb"
	cfg.Log.Level = "loud"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() error = nil, want error")
	}
	if n := strings.Count(err.Error(), "\n") + 1; n != 2 {
		t.Errorf("Validate() reported %d errors, want 2: %v", n, err)
	}
}

func TestNormalizeKeepsValues(t *testing.T) {
	cfg := &Config{
		Bus:  BusConfig{Transceiver: TransceiverBusPirate, Device: "/dev/ttyUSB0"},
		Card: CardConfig{ResponsePolls: 3},
	}
	cfg.Normalize()
	if cfg.Bus.Baud != DefaultBaud {
		t.Errorf("Bus.Baud = %d, want %d", cfg.Bus.Baud, DefaultBaud)
	}
	if cfg.Card.ResponsePolls != 3 {
		t.Errorf("Card.ResponsePolls = %d, want 3", cfg.Card.ResponsePolls)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "softsd.yaml")

	out, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want %+v", cfg, Default())
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want %v", err, os.ErrNotExist)
	}
}

func TestApplyLog(t *testing.T) {
	defer pkg.SetLogLevel(pkg.GetLogLevel())
	defer pkg.SetLogFormat(pkg.LogFormatText)

	cfg := Default()
	cfg.Log.Level = "debug"
	if err := cfg.ApplyLog(); err != nil {
		t.Fatalf("ApplyLog() error = %v", err)
	}
	if got := pkg.GetLogLevel().String(); got != "DEBUG" {
		t.Errorf("GetLogLevel() = %s, want DEBUG", got)
	}
}

func TestOpenBusImage(t *testing.T) {
	cfg := Default()
	cfg.Bus.Transceiver = TransceiverImage
	cfg.Bus.Image = filepath.Join(t.TempDir(), "card.img")

	bus, closer, err := cfg.OpenBus()
	if err != nil {
		t.Fatalf("OpenBus() error = %v", err)
	}
	c := card.New(bus, cfg.CardConfig())
	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	var b card.Block
	copy(b[:], "image")
	if err := c.WriteBlock(5, &b); err != nil {
		t.Fatalf("WriteBlock() error = %v", err)
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(cfg.Bus.Image)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 6*card.BlockSize || string(data[5*card.BlockSize:][:5]) != "image" {
		t.Errorf("image file holds %d bytes, want block 5 written", len(data))
	}
}

func TestOpenBusSim(t *testing.T) {
	bus, closer, err := Default().OpenBus()
	if err != nil {
		t.Fatalf("OpenBus() error = %v", err)
	}
	defer closer.Close()
	if err := card.New(bus, card.DefaultConfig()).Init(context.Background()); err != nil {
		t.Errorf("Init() error = %v", err)
	}
}
