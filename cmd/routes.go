package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/atxtransit/capmetro-cli/utils"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List all routes",
	RunE:  runRoutes,
}

func init() {
	rootCmd.AddCommand(routesCmd)
}

func runRoutes(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	routes := store.Routes()
	sort.Slice(routes, func(i, j int) bool {
		return utils.ZFill(routes[i].ID, 5) < utils.ZFill(routes[j].ID, 5)
	})

	fmt.Printf("\n=== CapMetro Routes (%d) ===\n\n", len(routes))
	for _, r := range routes {
		short := r.ShortName
		if short == "" {
			short = r.ID
		}
		fmt.Printf("  %6s | %-5s | %s\n", short, r.TypeName(), r.LongName)
	}
	return nil
}
