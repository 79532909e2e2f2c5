package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/atxtransit/capmetro-cli/gtfs"
)

var routeInfoRoute string

var routeInfoCmd = &cobra.Command{
	Use:   "route-info",
	Short: "Get route details and stops",
	RunE:  runRouteInfo,
}

func init() {
	rootCmd.AddCommand(routeInfoCmd)
	routeInfoCmd.Flags().StringVar(&routeInfoRoute, "route", "", "Route ID or short name")
	_ = routeInfoCmd.MarkFlagRequired("route")
}

func runRouteInfo(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	route, ok := store.Route(routeInfoRoute)
	if !ok {
		route, ok = store.RouteByShortName(routeInfoRoute)
	}
	if !ok {
		fmt.Printf("Route '%s' not found.\n", routeInfoRoute)
		return nil
	}

	short := route.ShortName
	if short == "" {
		short = route.ID
	}
	fmt.Printf("\n=== Route %s - %s ===\n", short, route.LongName)
	fmt.Printf("    Type: %s  |  ID: %s\n", route.TypeName(), route.ID)
	if route.URL != "" {
		fmt.Printf("    URL: %s\n", route.URL)
	}
	fmt.Println()

	trips := store.TripsForRoute(route.ID)
	if len(trips) == 0 {
		fmt.Println("No trips found for this route.")
		return nil
	}

	sample := representativeTrip(trips)
	stopTimes, err := store.StopTimesForTrip(sample.ID)
	if err != nil {
		return err
	}
	if len(stopTimes) == 0 {
		return nil
	}

	fmt.Printf("Stops (direction: %s):\n", sample.Headsign)
	for _, st := range stopTimes {
		name := st.StopID
		if stop, ok := store.Stop(st.StopID); ok {
			name = stop.Name
		}
		fmt.Printf("  %3d. %s (ID: %s)\n", st.StopSequence, name, st.StopID)
	}
	return nil
}

// representativeTrip picks one trip to illustrate the route's stop list,
// preferring direction 0. Trips are sorted first so the choice is stable
// across runs.
func representativeTrip(trips []gtfs.Trip) gtfs.Trip {
	sort.Slice(trips, func(i, j int) bool { return trips[i].ID < trips[j].ID })
	for _, t := range trips {
		if t.DirectionID == "0" {
			return t
		}
	}
	return trips[0]
}
