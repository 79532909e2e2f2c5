package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/atxtransit/capmetro-cli/gtfsrt"
	"github.com/atxtransit/capmetro-cli/internal/logger"
	"github.com/atxtransit/capmetro-cli/utils"
)

var vehiclesRoute string

var vehiclesCmd = &cobra.Command{
	Use:   "vehicles",
	Short: "Show real-time vehicle positions",
	RunE:  runVehicles,
}

func init() {
	rootCmd.AddCommand(vehiclesCmd)
	vehiclesCmd.Flags().StringVar(&vehiclesRoute, "route", "", "Filter by route ID")
}

func runVehicles(cmd *cobra.Command, args []string) error {
	fmt.Println("Fetching vehicle positions...")
	logger.L().Debug().Str("url", cfg.Feeds.VehiclePositionsJSON).Msg("fetching vehicle positions")
	vehicles, err := newClient().FetchVehicles(cfg.Feeds.VehiclePositionsJSON)
	if err != nil {
		return err
	}

	if vehiclesRoute != "" {
		filtered := vehicles[:0]
		for _, v := range vehicles {
			if v.RouteID == vehiclesRoute {
				filtered = append(filtered, v)
			}
		}
		vehicles = filtered
	}

	if len(vehicles) == 0 {
		if vehiclesRoute != "" {
			fmt.Printf("No active vehicles found on route %s.\n", vehiclesRoute)
		} else {
			fmt.Println("No active vehicles found.")
		}
		return nil
	}

	store := optionalStore()
	loc := localZone(store)

	byRoute := map[string][]gtfsrt.Vehicle{}
	longNames := map[string]string{}
	for _, v := range vehicles {
		label := v.RouteID
		if store != nil {
			label = store.RouteLabel(v.RouteID)
			if r, ok := store.Route(v.RouteID); ok {
				longNames[label] = r.LongName
			}
		}
		byRoute[label] = append(byRoute[label], v)
	}

	labels := make([]string, 0, len(byRoute))
	for label := range byRoute {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return utils.ZFill(labels[i], 5) < utils.ZFill(labels[j], 5)
	})

	fmt.Printf("\n=== Active CapMetro Vehicles (%d) ===\n\n", len(vehicles))
	for _, label := range labels {
		group := byRoute[label]
		fmt.Printf("Route %s - %s (%d vehicles)\n", label, longNames[label], len(group))
		for _, v := range group {
			fmt.Printf("  Vehicle %s: (%.5f, %.5f) @ %s\n", v.ID, v.Lat, v.Lon, vehicleClock(v.Timestamp, loc))
		}
		fmt.Println()
	}
	return nil
}

func vehicleClock(ts int64, loc *time.Location) string {
	if ts == 0 {
		return "unknown"
	}
	return time.Unix(ts, 0).In(loc).Format("03:04:05 PM")
}
