package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/atxtransit/capmetro-cli/gtfsrt"
	"github.com/atxtransit/capmetro-cli/internal/logger"
)

const alertDescriptionLimit = 300

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Show current service alerts",
	RunE:  runAlerts,
}

func init() {
	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(cmd *cobra.Command, args []string) error {
	logger.L().Debug().Str("url", cfg.Feeds.ServiceAlertsPB).Msg("fetching service alerts")
	alerts, err := newClient().FetchAlerts(cfg.Feeds.ServiceAlertsPB)
	if err != nil {
		return err
	}
	if len(alerts) == 0 {
		fmt.Println("No active service alerts.")
		return nil
	}

	store := optionalStore()
	loc := localZone(store)

	fmt.Printf("=== CapMetro Service Alerts (%d active) ===\n\n", len(alerts))
	for _, a := range alerts {
		fmt.Println(a.Header)
		if len(a.RouteIDs) > 0 {
			names := make([]string, 0, len(a.RouteIDs))
			for _, rid := range a.RouteIDs {
				if store != nil {
					names = append(names, store.RouteLabel(rid))
				} else {
					names = append(names, rid)
				}
			}
			fmt.Printf("   Routes: %s\n", strings.Join(names, ", "))
		}
		if len(a.Periods) > 0 {
			windows := make([]string, 0, len(a.Periods))
			for _, p := range a.Periods {
				windows = append(windows, formatPeriod(p, loc))
			}
			fmt.Printf("   Period: %s\n", strings.Join(windows, "; "))
		}
		if desc := a.Description; desc != "" {
			if len(desc) > alertDescriptionLimit {
				desc = desc[:alertDescriptionLimit] + "..."
			}
			fmt.Printf("   %s\n", desc)
		}
		fmt.Println()
	}
	return nil
}

func formatPeriod(p gtfsrt.ActivePeriod, loc *time.Location) string {
	start := "?"
	if p.Start != 0 {
		start = time.Unix(p.Start, 0).In(loc).Format("01/02 03:04PM")
	}
	end := "ongoing"
	if p.End != 0 {
		end = time.Unix(p.End, 0).In(loc).Format("01/02 03:04PM")
	}
	return start + " - " + end
}
