package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/atxtransit/capmetro-cli/arrivals"
	"github.com/atxtransit/capmetro-cli/gtfs"
	"github.com/atxtransit/capmetro-cli/gtfsrt"
	"github.com/atxtransit/capmetro-cli/internal/logger"
)

var (
	arrivalsStop  string
	arrivalsRoute string
)

var arrivalsCmd = &cobra.Command{
	Use:   "arrivals",
	Short: "Next arrivals at a stop",
	RunE:  runArrivals,
}

func init() {
	rootCmd.AddCommand(arrivalsCmd)
	arrivalsCmd.Flags().StringVar(&arrivalsStop, "stop", "", "Stop ID")
	arrivalsCmd.Flags().StringVar(&arrivalsRoute, "route", "", "Filter by route ID")
	_ = arrivalsCmd.MarkFlagRequired("stop")
}

func runArrivals(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}

	stop, ok := store.Stop(arrivalsStop)
	if !ok {
		fmt.Printf("Stop ID '%s' not found in GTFS data.\n", arrivalsStop)
		fmt.Println("Use 'capmetro stops --search <name>' to find stop IDs.")
		return nil
	}

	loc := store.Location()
	now := time.Now().In(loc)
	query := arrivals.StopQuery{StopID: stop.ID, RouteFilter: arrivalsRoute}

	fmt.Printf("\n=== Arrivals at: %s (ID: %s) ===\n\n", stop.Name, stop.ID)

	logger.L().Debug().Str("url", cfg.Feeds.TripUpdatesPB).Msg("fetching trip updates")
	preds, err := newClient().FetchTripUpdates(cfg.Feeds.TripUpdatesPB)
	if err != nil {
		return err
	}

	ranked := arrivals.Reconcile(query, realtimeCandidates(store, preds, stop.ID, loc), nil, now)
	if len(ranked) > 0 {
		fmt.Println("Real-time arrivals:")
		for _, r := range ranked {
			delay := ""
			if r.DelayMinutes > 0 {
				delay = fmt.Sprintf(" (+%dm late)", r.DelayMinutes)
			}
			fmt.Printf("  Route %s -> %s\n", r.RouteLabel, r.Headsign)
			fmt.Printf("     %s (%s)%s\n\n", r.DisplayTime, arrivals.ETALabel(r.MinutesAway), delay)
		}
		return nil
	}

	fmt.Println("No real-time data available. Showing scheduled times:")
	sched, err := scheduledCandidates(store, stop.ID)
	if err != nil {
		return err
	}
	ranked = arrivals.Reconcile(query, nil, sched, now)
	if len(ranked) == 0 {
		fmt.Println("No more scheduled arrivals today.")
		return nil
	}
	for _, r := range ranked {
		fmt.Printf("  Route %s -> %s at %s\n", r.RouteLabel, r.Headsign, r.DisplayTime)
	}
	return nil
}

// realtimeCandidates projects trip-update predictions for one stop into
// reconciler candidates, resolving route labels and headsigns from the
// static tables.
func realtimeCandidates(store *gtfs.Store, preds []gtfsrt.StopTimePrediction, stopID string, loc *time.Location) []arrivals.Candidate {
	var out []arrivals.Candidate
	for _, p := range preds {
		if p.StopID != stopID || p.ArrivalTime == 0 {
			continue
		}
		route, _ := store.Route(p.RouteID)
		headsign := route.LongName
		if trip, ok := store.Trip(p.TripID); ok && trip.Headsign != "" {
			headsign = trip.Headsign
		}
		out = append(out, arrivals.Candidate{
			RouteID:      p.RouteID,
			RouteLabel:   store.RouteLabel(p.RouteID),
			Headsign:     headsign,
			ArrivalAt:    time.Unix(p.ArrivalTime, 0).In(loc),
			DelaySeconds: p.DelaySeconds,
			Source:       arrivals.SourceRealtime,
		})
	}
	return out
}

// scheduledCandidates projects the stop's static timetable into reconciler
// candidates for the fallback branch.
func scheduledCandidates(store *gtfs.Store, stopID string) ([]arrivals.Candidate, error) {
	stopTimes, err := store.StopTimesForStop(stopID)
	if err != nil {
		return nil, err
	}
	var out []arrivals.Candidate
	for _, st := range stopTimes {
		tod := st.Time()
		if tod == "" {
			continue
		}
		trip, _ := store.Trip(st.TripID)
		out = append(out, arrivals.Candidate{
			RouteID:    trip.RouteID,
			RouteLabel: store.RouteLabel(trip.RouteID),
			Headsign:   trip.Headsign,
			TimeOfDay:  tod,
			Source:     arrivals.SourceScheduled,
		})
	}
	return out, nil
}
