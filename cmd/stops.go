package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

const (
	stopSearchLimit = 25
	stopNearLimit   = 20
)

var (
	stopsSearch string
	stopsNear   string
	stopsRadius float64
)

var stopsCmd = &cobra.Command{
	Use:   "stops",
	Short: "Search for stops by name or location",
	RunE:  runStops,
}

func init() {
	rootCmd.AddCommand(stopsCmd)
	stopsCmd.Flags().StringVar(&stopsSearch, "search", "", "Search stops by name")
	stopsCmd.Flags().StringVar(&stopsNear, "near", "", "Find stops near LAT,LON")
	stopsCmd.Flags().Float64Var(&stopsRadius, "radius", 0.5, "Search radius in miles")
}

func runStops(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	switch {
	case stopsSearch != "":
		matches := store.SearchStops(stopsSearch)
		if len(matches) == 0 {
			fmt.Printf("No stops found matching '%s'.\n", stopsSearch)
			return nil
		}
		fmt.Printf("\n=== Stops matching '%s' (%d found) ===\n\n", stopsSearch, len(matches))
		if len(matches) > stopSearchLimit {
			matches = matches[:stopSearchLimit]
		}
		for _, s := range matches {
			fmt.Printf("  %s\n", s.Name)
			fmt.Printf("     ID: %s  |  (%g, %g)\n", s.ID, s.Lat, s.Lon)
			if s.Desc != "" {
				fmt.Printf("     %s\n", s.Desc)
			}
			fmt.Println()
		}
		return nil

	case stopsNear != "":
		lat, lon, err := parseLatLon(stopsNear)
		if err != nil {
			fmt.Println("Invalid format. Use: --near LAT,LON  (e.g. --near 30.267,-97.743)")
			return nil
		}
		nearby := store.StopsNear(lat, lon, stopsRadius)
		if len(nearby) == 0 {
			fmt.Printf("No stops found within %g miles of (%g, %g).\n", stopsRadius, lat, lon)
			return nil
		}
		fmt.Printf("\n=== Nearby Stops (%d within %g mi) ===\n\n", len(nearby), stopsRadius)
		if len(nearby) > stopNearLimit {
			nearby = nearby[:stopNearLimit]
		}
		for _, n := range nearby {
			fmt.Printf("  %s - %.2f mi\n", n.Name, n.DistanceMiles)
			fmt.Printf("     ID: %s\n\n", n.ID)
		}
		return nil

	default:
		fmt.Println("Provide --search <name> or --near LAT,LON")
		return nil
	}
}

func parseLatLon(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected LAT,LON, got %q", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, err
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, err
	}
	return lat, lon, nil
}
