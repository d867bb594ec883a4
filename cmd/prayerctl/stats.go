package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/core"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the current streak and lifetime totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		snap := st.Snapshot()
		today := core.SystemClock().Today()
		totals := core.SumTotals(snap)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "today:             %s\n", today)
		fmt.Fprintf(out, "streak:            %d days\n", core.Streak(snap, today))
		fmt.Fprintf(out, "breath minutes:    %d\n", totals.BreathMinutes)
		fmt.Fprintf(out, "jesus prayers:     %d\n", totals.JesusPrayerCount)
		fmt.Fprintf(out, "rosary decades:    %d\n", totals.RosaryDecades)
		fmt.Fprintf(out, "victories:         %d\n", totals.Victories)
		fmt.Fprintf(out, "lapses:            %d\n", totals.Lapses)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
