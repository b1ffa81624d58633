//go:build !headless

// Command sdplay streams a WAV file from a card to the host sound device,
// one block per tick at the file's data rate, the way the device feeds its
// DAC.
//
//	sdplay --image card.img CompanyAudio
//
// Interrupting playback stops the stream through the engine before exit.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/ardnew/softsd/card"
	"github.com/ardnew/softsd/config"
	"github.com/ardnew/softsd/engine"
	"github.com/ardnew/softsd/index"
	"github.com/ardnew/softsd/media"
	"github.com/ardnew/softsd/media/otosink"
	"github.com/ardnew/softsd/pkg"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath, image, logLevel string
	cmd := &cobra.Command{
		Use:           "sdplay <ID>",
		Short:         "Play an audio file from a card",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			id, ok := index.ParseID(args[0])
			if !ok {
				return fmt.Errorf("%w: unknown file id %q", pkg.ErrInvalidParameter, args[0])
			}
			cfg := config.Default()
			if configPath != "" {
				var err error
				if cfg, err = config.Load(configPath); err != nil {
					return err
				}
			}
			if image != "" {
				cfg.Bus.Transceiver = config.TransceiverImage
				cfg.Bus.Image = image
				cfg.Bus.ReadOnly = true
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := cfg.ApplyLog(); err != nil {
				return err
			}
			return play(cmd.Context(), cmd.OutOrStdout(), cfg, id)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "YAML configuration file")
	cmd.Flags().StringVar(&image, "image", "", "card image file (overrides bus.transceiver)")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	return cmd
}

func play(ctx context.Context, out io.Writer, cfg *config.Config, id index.ID) error {
	bus, closer, err := cfg.OpenBus()
	if err != nil {
		return err
	}
	defer closer.Close()

	e := engine.New(bus, engine.Options{
		Card:    cfg.CardConfig(),
		Catalog: index.DefaultCatalog,
		Layout:  cfg.IndexLayout(),
	})
	if err := e.Boot(ctx); err != nil {
		return err
	}

	r, err := e.Index().Lookup(id)
	if err != nil {
		return err
	}
	format, err := readFormat(e.Card(), r.Address)
	if err != nil {
		return err
	}

	sink, err := otosink.New(format, media.WAVHeaderSize)
	if err != nil {
		return err
	}
	defer sink.Close()

	bytesPerSecond := format.SampleRate * format.Channels * format.BitsPerSample / 8
	tick := time.Second * card.BlockSize / time.Duration(bytesPerSecond)
	fmt.Fprintf(out, "%v: %d Hz, %d-bit, %d ch, %d blocks\n",
		id, format.SampleRate, format.BitsPerSample, format.Channels, r.SizeBlocks)

	f := media.NewFeeder(e.Card(), sink)
	if err := f.Start(r.Address, r.SizeBlocks); err != nil {
		return err
	}

	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return e.Interrupt(engine.EventNavigation)
		case <-ticker.C:
			done, err := f.Service(false)
			if err != nil {
				return err
			}
			if done {
				// Let the sink drain what is queued.
				for sink.Buffered() > 0 && ctx.Err() == nil {
					time.Sleep(tick)
				}
				return nil
			}
		}
	}
}

// readFormat decodes the WAV header at addr.
func readFormat(c *card.Card, addr card.BlockAddress) (media.WAVFormat, error) {
	s, err := c.StartStream(addr, 1)
	if err != nil {
		return media.WAVFormat{}, err
	}
	var hdr [media.WAVHeaderSize]byte
	_, err = io.ReadFull(s, hdr[:])
	if serr := s.Stop(); err == nil {
		err = serr
	}
	if err != nil {
		return media.WAVFormat{}, err
	}
	return media.ParseWAVHeader(hdr[:])
}
