package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/atxtransit/capmetro-cli/gtfs"
	"github.com/atxtransit/capmetro-cli/internal/logger"
)

var refreshCmd = &cobra.Command{
	Use:   "refresh-gtfs",
	Short: "Download or refresh GTFS static data",
	RunE:  runRefresh,
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	fmt.Printf("Downloading GTFS static data to %s ...\n", cfg.CacheDir)
	logger.L().Debug().Str("url", cfg.Feeds.StaticZip).Msg("downloading static GTFS archive")

	client := &http.Client{Timeout: cfg.DownloadTimeout()}
	files, err := gtfs.Refresh(cfg.CacheDir, cfg.Feeds.StaticZip, client)
	if err != nil {
		return err
	}

	fmt.Printf("Extracted %d files:\n", len(files))
	for _, f := range files {
		fmt.Printf("  %s\n", f)
	}
	fmt.Println("GTFS data refreshed successfully.")
	return nil
}
