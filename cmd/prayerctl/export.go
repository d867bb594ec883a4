package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/export"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full log as JSON or CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, cleanup, err := openStore()
		if err != nil {
			return err
		}
		defer cleanup()

		var out []byte
		switch exportFormat {
		case "json":
			out, err = export.ToJSON(st.Snapshot())
			if err != nil {
				return fmt.Errorf("serialize store: %w", err)
			}
		case "csv":
			out = []byte(export.ToCSV(st.Snapshot()))
		default:
			return fmt.Errorf("unknown format %q: must be json or csv", exportFormat)
		}

		if exportOut == "" {
			_, err = cmd.OutOrStdout().Write(out)
			return err
		}
		if err := os.WriteFile(exportOut, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", exportOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "exported %d records to %s\n", st.Len(), exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "export format: json or csv")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
