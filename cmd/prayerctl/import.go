package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/export"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the full log with a previously exported JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		snap, err := export.FromJSON(data)
		if err != nil {
			return err
		}

		st, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := st.ReplaceAll(snap); err != nil {
			return fmt.Errorf("save imported store: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d records\n", len(snap))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
