package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/core"
)

var showCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Print the normalized day record for a date (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := core.SystemClock().Today()
		if len(args) == 1 {
			key = args[0]
		}
		if !core.ValidDateKey(key) {
			return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", key)
		}

		st, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		out, err := json.MarshalIndent(st.Get(key), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
