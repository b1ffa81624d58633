package main

import (
	"encoding/csv"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ardnew/softsd/engine"
)

// defaultBatteryBlocks is the number of log blocks read back by default.
const defaultBatteryBlocks = 7

func newBatteryCommand(g *globals) *cobra.Command {
	var blocks int
	cmd := &cobra.Command{
		Use:   "battery",
		Short: "Print the battery drain log as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return g.withSession(cmd, func(s *session) error {
				start := s.engine.Layout().BatteryLogBlock
				samples, err := engine.ReadBatteryLog(s.engine.Card(), start, blocks)
				if err != nil {
					return err
				}
				w := csv.NewWriter(cmd.OutOrStdout())
				_ = w.Write([]string{"sample", "raw", "low"})
				for i, v := range samples {
					_ = w.Write([]string{
						strconv.Itoa(i),
						strconv.Itoa(int(v)),
						strconv.FormatBool(v < engine.LowBatteryThreshold),
					})
				}
				w.Flush()
				return w.Error()
			})
		},
	}
	cmd.Flags().IntVarP(&blocks, "blocks", "n", defaultBatteryBlocks, "number of log blocks to read")
	return cmd
}
