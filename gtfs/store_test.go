package gtfs

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTable(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func fixtureStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()

	// stops.txt carries a UTF-8 BOM like real CapMetro exports.
	writeTable(t, dir, "stops.txt",
		"\ufeffstop_id,stop_name,stop_desc,stop_lat,stop_lon\n"+
			"1234,Congress & 6th,Downtown corner,30.2672,-97.7431\n"+
			"5678,Lamar & 38th,,30.3072,-97.7531\n"+
			"9999,Far North Stop,,30.5000,-97.7000\n")
	writeTable(t, dir, "routes.txt",
		"route_id,route_short_name,route_long_name,route_type,route_url\n"+
			"801,801,North Lamar/South Congress,3,https://example.org/801\n"+
			"550,550,MetroRail Red Line,2,\n")
	writeTable(t, dir, "trips.txt",
		"route_id,trip_id,trip_headsign,direction_id\n"+
			"801,t1,Tech Ridge,0\n"+
			"801,t2,Southpark Meadows,1\n"+
			"550,t3,Downtown,0\n")
	writeTable(t, dir, "agency.txt",
		"agency_id,agency_name,agency_url,agency_timezone\n"+
			"CMTA,Capital Metro,https://capmetro.org,America/Chicago\n")
	writeTable(t, dir, "stop_times.txt",
		"trip_id,arrival_time,departure_time,stop_id,stop_sequence\n"+
			"t1,10:15:00,10:15:30,1234,2\n"+
			"t1,10:05:00,10:05:30,5678,1\n"+
			"t2,,11:00:00,1234,1\n"+
			"t3,09:45:00,09:45:00,9999,1\n")

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return store
}

func TestOpenMissingData(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, ErrNoStaticData) {
		t.Fatalf("expected ErrNoStaticData, got %v", err)
	}
}

func TestStoreLookups(t *testing.T) {
	store := fixtureStore(t)

	stop, ok := store.Stop("1234")
	if !ok {
		t.Fatal("stop 1234 not found")
	}
	if stop.Name != "Congress & 6th" || stop.Lat != 30.2672 {
		t.Errorf("unexpected stop: %+v", stop)
	}

	route, ok := store.Route("801")
	if !ok || route.ShortName != "801" || route.TypeName() != "Bus" {
		t.Errorf("unexpected route: %+v", route)
	}
	rail, _ := store.Route("550")
	if rail.TypeName() != "Rail" {
		t.Errorf("expected Rail, got %s", rail.TypeName())
	}

	trip, ok := store.Trip("t1")
	if !ok || trip.Headsign != "Tech Ridge" || trip.RouteID != "801" {
		t.Errorf("unexpected trip: %+v", trip)
	}

	if _, ok := store.Stop("0000"); ok {
		t.Error("unknown stop should not resolve")
	}

	if store.AgencyName() != "Capital Metro" {
		t.Errorf("unexpected agency name %q", store.AgencyName())
	}
}

func TestRouteByShortName(t *testing.T) {
	store := fixtureStore(t)
	route, ok := store.RouteByShortName("801")
	if !ok || route.ID != "801" {
		t.Fatalf("expected route 801, got %+v ok=%v", route, ok)
	}
	if _, ok := store.RouteByShortName("does-not-exist"); ok {
		t.Error("unknown short name should not resolve")
	}
}

func TestRouteLabelFallsBackToID(t *testing.T) {
	store := fixtureStore(t)
	if got := store.RouteLabel("801"); got != "801" {
		t.Errorf("expected short name, got %q", got)
	}
	if got := store.RouteLabel("unknown-route"); got != "unknown-route" {
		t.Errorf("expected id passthrough, got %q", got)
	}
}

func TestStopTimesForStop(t *testing.T) {
	store := fixtureStore(t)
	sts, err := store.StopTimesForStop("1234")
	if err != nil {
		t.Fatalf("StopTimesForStop: %v", err)
	}
	if len(sts) != 2 {
		t.Fatalf("expected 2 stop times, got %d", len(sts))
	}
	// Arrival preferred; departure used when arrival is empty.
	times := map[string]string{}
	for _, st := range sts {
		times[st.TripID] = st.Time()
	}
	if times["t1"] != "10:15:00" {
		t.Errorf("t1: expected arrival time, got %q", times["t1"])
	}
	if times["t2"] != "11:00:00" {
		t.Errorf("t2: expected departure fallback, got %q", times["t2"])
	}
}

func TestStopTimesForTripOrdered(t *testing.T) {
	store := fixtureStore(t)
	sts, err := store.StopTimesForTrip("t1")
	if err != nil {
		t.Fatalf("StopTimesForTrip: %v", err)
	}
	if len(sts) != 2 {
		t.Fatalf("expected 2 stop times, got %d", len(sts))
	}
	if sts[0].StopID != "5678" || sts[1].StopID != "1234" {
		t.Errorf("stop times not ordered by sequence: %+v", sts)
	}
}

func TestTripsForRoute(t *testing.T) {
	store := fixtureStore(t)
	trips := store.TripsForRoute("801")
	if len(trips) != 2 {
		t.Fatalf("expected 2 trips for route 801, got %d", len(trips))
	}
}

func TestLocationFromAgency(t *testing.T) {
	store := fixtureStore(t)
	if store.Location().String() != "America/Chicago" {
		t.Errorf("expected America/Chicago, got %s", store.Location())
	}
}

func TestSearchStops(t *testing.T) {
	store := fixtureStore(t)

	matches := store.SearchStops("lamar")
	if len(matches) != 1 || matches[0].ID != "5678" {
		t.Fatalf("expected stop 5678 for 'lamar', got %+v", matches)
	}

	// Description text is searched too.
	matches = store.SearchStops("downtown corner")
	if len(matches) != 1 || matches[0].ID != "1234" {
		t.Fatalf("expected stop 1234 by description, got %+v", matches)
	}

	if got := store.SearchStops("zzz"); len(got) != 0 {
		t.Errorf("expected no matches, got %+v", got)
	}
}

func TestStopsNear(t *testing.T) {
	store := fixtureStore(t)

	// Congress & 6th and Lamar & 38th are within ~3 miles of downtown;
	// the far north stop is ~16 miles away.
	nearby := store.StopsNear(30.2672, -97.7431, 5.0)
	if len(nearby) != 2 {
		t.Fatalf("expected 2 nearby stops, got %d", len(nearby))
	}
	if nearby[0].ID != "1234" {
		t.Errorf("expected nearest stop first, got %s", nearby[0].ID)
	}
	if nearby[0].DistanceMiles > nearby[1].DistanceMiles {
		t.Error("nearby stops not sorted by distance")
	}

	if got := store.StopsNear(30.2672, -97.7431, 0.01); len(got) != 1 {
		t.Errorf("tight radius should only include the exact stop, got %d", len(got))
	}
}
