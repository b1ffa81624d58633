package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ardnew/softsd/card"
	"github.com/ardnew/softsd/index"
)

func newIndexCommand(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Build, extend and inspect the file index",
	}
	cmd.AddCommand(
		newIndexBuildCommand(g),
		newIndexAppendCommand(g),
		newIndexShowCommand(g),
	)
	return cmd
}

// scanFlags overrides the configured scan range.
type scanFlags struct {
	start, end uint32
}

func (f *scanFlags) register(cmd *cobra.Command) {
	cmd.Flags().Uint32Var(&f.start, "start", 0, "first block to scan (default from config)")
	cmd.Flags().Uint32Var(&f.end, "end", 0, "block to stop scanning at (default from config)")
}

func (f *scanFlags) apply(r index.ScanRange) index.ScanRange {
	if f.start != 0 {
		r.Start = card.BlockAddress(f.start)
	}
	if f.end != 0 {
		r.End = card.BlockAddress(f.end)
	}
	return r
}

func newIndexBuildCommand(g *globals) *cobra.Command {
	var scan scanFlags
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Scan the card for every file and persist the index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return g.withSession(cmd, func(s *session) error {
				x := s.engine.Index()
				if err := x.Build(cmd.Context(), s.engine.Card(), scan.apply(s.cfg.ScanRange())); err != nil {
					return err
				}
				if err := x.Export(s.engine.Card()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "resolved %d/%d files\n", x.Resolved(), len(x.Catalog())-1)
				return nil
			})
		},
	}
	scan.register(cmd)
	return cmd
}

func newIndexAppendCommand(g *globals) *cobra.Command {
	var (
		scan     scanFlags
		from, to string
	)
	cmd := &cobra.Command{
		Use:   "append",
		Short: "Rescan a range of file ids and update the persisted index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lo, err := parseID(from)
			if err != nil {
				return err
			}
			hi, err := parseID(to)
			if err != nil {
				return err
			}
			return g.withSession(cmd, func(s *session) error {
				x := s.engine.Index()
				if err := x.Append(cmd.Context(), s.engine.Card(), lo, hi, scan.apply(s.cfg.ScanRange())); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "resolved %d/%d files\n", x.Resolved(), len(x.Catalog())-1)
				return nil
			})
		},
	}
	scan.register(cmd)
	cmd.Flags().StringVar(&from, "from", "", "first file id to rescan")
	cmd.Flags().StringVar(&to, "to", "", "file id to stop before")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newIndexShowCommand(g *globals) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the persisted index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return g.withSession(cmd, func(s *session) error {
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tKIND\tIDENTIFIER\tBLOCK\tBLOCKS")
				for _, r := range s.engine.Index().Records() {
					if r.ID == index.Null || (!all && !r.Resolved()) {
						continue
					}
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n", r.ID, r.Kind, r.Identifier, r.Address, r.SizeBlocks)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include absent files")
	return cmd
}
