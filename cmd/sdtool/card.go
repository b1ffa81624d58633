package main

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ardnew/softsd/card"
	"github.com/ardnew/softsd/pkg"
)

func newInitCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the card and report its state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return g.withSession(cmd, func(s *session) error {
				c := s.engine.Card()
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "state:    %s\n", c.State())
				fmt.Fprintf(out, "ocr:      %s\n", c.OCR())
				fmt.Fprintf(out, "clock:    %s\n", c.Config().FastClock)
				fmt.Fprintf(out, "resolved: %d/%d files\n", s.engine.Index().Resolved(), len(s.engine.Index().Catalog())-1)
				return nil
			})
		},
	}
}

func parseBlock(arg string) (card.BlockAddress, error) {
	v, err := strconv.ParseUint(arg, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: block %q", pkg.ErrInvalidParameter, arg)
	}
	return card.BlockAddress(v), nil
}

func newDumpCommand(g *globals) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "dump <block>",
		Short: "Print blocks as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := parseBlock(args[0])
			if err != nil {
				return err
			}
			return g.withSession(cmd, func(s *session) error {
				var b card.Block
				for i := range count {
					a := addr + card.BlockAddress(i)
					if err := s.engine.Card().ReadBlock(a, &b); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "block %d:\n%s", a, hex.Dump(b[:]))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of blocks")
	return cmd
}

func newFlagCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flag",
		Short: "Read or write the startup intro flag",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the startup flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return g.withSession(cmd, func(s *session) error {
				set, err := s.engine.StartupFlag()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), set)
				return nil
			})
		},
	}, &cobra.Command{
		Use:       "set <true|false>",
		Short:     "Write the startup flag",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"true", "false"},
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := strconv.ParseBool(args[0])
			if err != nil {
				return fmt.Errorf("%w: flag %q", pkg.ErrInvalidParameter, args[0])
			}
			return g.withSession(cmd, func(s *session) error {
				return s.engine.SetStartupFlag(set)
			})
		},
	})
	return cmd
}
