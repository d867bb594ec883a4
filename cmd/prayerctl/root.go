package main

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/config"
	applog "github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/log"
	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/storage"
	"github.com/mbaldwinsmith/mindfulprayerapp-sub000/internal/store"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "prayerctl",
	Short: "Inspect and manage the daily practice log offline",
	Long: `prayerctl works directly against the practice log's persistence backend.
It can show day records, print streak and lifetime totals, and export or
import the full log without running the server.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(func() { _ = godotenv.Load() })
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// openStore loads the record store from the configured backend. The caller
// must invoke cleanup when done.
func openStore() (*store.Store, storage.CleanupFunc, error) {
	cfg, err := config.Load(getConfigPath())
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	persist, cleanup, err := storage.OpenBackend(cfg)
	if err != nil {
		return nil, nil, err
	}
	logger := applog.New(slog.LevelWarn).WithComponent("prayerctl")
	st, err := store.Open(persist, logger)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	return st, cleanup, nil
}
