// Command sdtool provisions and inspects SD cards for the device firmware.
//
// It reaches a card through any configured transceiver: a card image file,
// a Linux SPI port or a Bus Pirate. Typical provisioning:
//
//	sdtool mkimage --out card.img --demo
//	sdtool --image card.img index show
//	sdtool --image card.img render CompanyImage --out company.bmp
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ardnew/softsd/config"
	"github.com/ardnew/softsd/engine"
	"github.com/ardnew/softsd/index"
	"github.com/ardnew/softsd/pkg"
	"github.com/ardnew/softsd/pkg/prof"
)

// globals are the persistent flags shared by every command.
type globals struct {
	configPath string
	image      string
	logLevel   string
	logFormat  string
	profile    prof.Options
	session    *prof.Session
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCommand(os.Stdout)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand(out io.Writer) *cobra.Command {
	g := &globals{}
	root := &cobra.Command{
		Use:           "sdtool",
		Short:         "Provision and inspect device SD cards",
		Long:          "Build and inspect the file index, startup flag and battery log of device SD cards, and lay out card images.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVar(&g.configPath, "config", "", "YAML configuration file")
	flags.StringVar(&g.image, "image", "", "card image file (overrides bus.transceiver)")
	flags.StringVar(&g.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&g.logFormat, "log-format", "", "log format: text, json")
	flags.StringVar(&g.profile.CPU, "cpuprofile", "", "write a CPU profile (requires the profile build tag)")
	flags.StringVar(&g.profile.Heap, "memprofile", "", "write a heap profile on exit (requires the profile build tag)")

	root.PersistentPreRunE = func(*cobra.Command, []string) (err error) {
		g.session, err = prof.Start(g.profile)
		return err
	}
	root.PersistentPostRunE = func(*cobra.Command, []string) error {
		return g.session.Stop()
	}

	root.AddCommand(
		newInitCommand(g),
		newIndexCommand(g),
		newDumpCommand(g),
		newFlagCommand(g),
		newBatteryCommand(g),
		newMkimageCommand(g),
		newRenderCommand(g),
	)
	return root
}

// load resolves the configuration from the file and the flags.
func (g *globals) load() (*config.Config, error) {
	cfg := config.Default()
	if g.configPath != "" {
		var err error
		if cfg, err = config.Load(g.configPath); err != nil {
			return nil, err
		}
	}
	if g.image != "" {
		cfg.Bus.Transceiver = config.TransceiverImage
		cfg.Bus.Image = g.image
	}
	if g.logLevel != "" {
		cfg.Log.Level = g.logLevel
	}
	if g.logFormat != "" {
		cfg.Log.Format = g.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.ApplyLog(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// session is an open card with its engine.
type session struct {
	cfg    *config.Config
	engine *engine.Engine
	closer io.Closer
}

// open connects to the card and boots the engine.
func (g *globals) open(ctx context.Context) (*session, error) {
	cfg, err := g.load()
	if err != nil {
		return nil, err
	}
	bus, closer, err := cfg.OpenBus()
	if err != nil {
		return nil, err
	}
	e := engine.New(bus, engine.Options{
		Card:    cfg.CardConfig(),
		Catalog: index.DefaultCatalog,
		Layout:  cfg.IndexLayout(),
	})
	if err := e.Boot(ctx); err != nil {
		closer.Close()
		return nil, err
	}
	return &session{cfg: cfg, engine: e, closer: closer}, nil
}

func (s *session) Close() error {
	if err := s.engine.Interrupt(engine.EventSleep); err != nil {
		pkg.LogWarn(pkg.ComponentEngine, "shutdown", "error", err)
	}
	return s.closer.Close()
}

// withSession runs fn on an open card and closes it afterwards.
func (g *globals) withSession(cmd *cobra.Command, fn func(*session) error) (err error) {
	s, err := g.open(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := s.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(s)
}

// parseID accepts an id constant name.
func parseID(name string) (index.ID, error) {
	id, ok := index.ParseID(name)
	if !ok {
		return 0, fmt.Errorf("%w: unknown file id %q", pkg.ErrInvalidParameter, name)
	}
	return id, nil
}
