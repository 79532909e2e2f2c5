package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/atxtransit/capmetro-cli/config"
	"github.com/atxtransit/capmetro-cli/gtfs"
	"github.com/atxtransit/capmetro-cli/gtfsrt"
	"github.com/atxtransit/capmetro-cli/internal/logger"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "capmetro",
	Short: "CapMetro Austin transit from the command line",
	Long: `capmetro shows real-time vehicle positions, next arrivals, service alerts,
and static route/stop information for CapMetro Austin. All data comes from
the public feeds on the Texas Open Data Portal; no API key is required.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}
		logger.Init(logger.Config{Level: cfg.Logging.Level, File: cfg.Logging.File})
		return nil
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openStore loads the static reference tables, translating a missing cache
// into an instructional message.
func openStore() (*gtfs.Store, error) {
	store, err := gtfs.Open(cfg.CacheDir)
	if err != nil {
		if errors.Is(err, gtfs.ErrNoStaticData) {
			return nil, fmt.Errorf("GTFS static data not found at %s; run 'capmetro refresh-gtfs' first", cfg.CacheDir)
		}
		return nil, err
	}
	return store, nil
}

// optionalStore is for commands that only use static data to prettify
// output; they proceed without it.
func optionalStore() *gtfs.Store {
	store, err := gtfs.Open(cfg.CacheDir)
	if err != nil {
		logger.L().Warn().Err(err).Msg("static GTFS unavailable, identifiers will not be resolved to names")
		return nil
	}
	return store
}

func newClient() *gtfsrt.Client {
	return gtfsrt.NewClient(cfg.HTTPTimeout())
}

func localZone(store *gtfs.Store) *time.Location {
	if store != nil {
		return store.Location()
	}
	return gtfs.DefaultLocation()
}
