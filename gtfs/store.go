package gtfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Sentinel errors for the conditions callers report to the user.
var (
	// ErrNoStaticData means the cache directory has not been populated;
	// the user needs to run refresh-gtfs first.
	ErrNoStaticData = errors.New("gtfs: static data not found")
)

// Store indexes the static GTFS reference tables from a cache directory.
// It is read-only after Open; a refresh rewrites the directory wholesale.
type Store struct {
	dir string

	agencyName string
	agencyTZ   string

	routes map[string]Route
	trips  map[string]Trip
	stops  map[string]Stop
}

// Open loads routes, trips, stops, and agency metadata from dir.
// Returns ErrNoStaticData when the directory has no extracted tables.
func Open(dir string) (*Store, error) {
	if _, err := os.Stat(filepath.Join(dir, "stops.txt")); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w (looked in %s)", ErrNoStaticData, dir)
		}
		return nil, err
	}

	s := &Store{
		dir:    dir,
		routes: map[string]Route{},
		trips:  map[string]Trip{},
		stops:  map[string]Stop{},
	}
	if err := s.loadRoutes(); err != nil {
		return nil, fmt.Errorf("load routes: %w", err)
	}
	if err := s.loadTrips(); err != nil {
		return nil, fmt.Errorf("load trips: %w", err)
	}
	if err := s.loadStops(); err != nil {
		return nil, fmt.Errorf("load stops: %w", err)
	}
	if err := s.loadAgency(); err != nil {
		return nil, fmt.Errorf("load agency: %w", err)
	}
	return s, nil
}

// Dir returns the cache directory backing this store.
func (s *Store) Dir() string { return s.dir }

// AgencyName returns the agency_name from agency.txt, if present.
func (s *Store) AgencyName() string { return s.agencyName }

// Route looks up a route by route_id.
func (s *Store) Route(id string) (Route, bool) {
	r, ok := s.routes[id]
	return r, ok
}

// RouteByShortName resolves a route by its rider-facing short name.
func (s *Store) RouteByShortName(name string) (Route, bool) {
	for _, r := range s.routes {
		if r.ShortName == name {
			return r, true
		}
	}
	return Route{}, false
}

// RouteLabel returns the short name for a route, falling back to the id.
func (s *Store) RouteLabel(id string) string {
	if r, ok := s.routes[id]; ok && r.ShortName != "" {
		return r.ShortName
	}
	return id
}

// Trip looks up a trip by trip_id.
func (s *Store) Trip(id string) (Trip, bool) {
	t, ok := s.trips[id]
	return t, ok
}

// Stop looks up a stop by stop_id.
func (s *Store) Stop(id string) (Stop, bool) {
	st, ok := s.stops[id]
	return st, ok
}

// Routes returns all routes, unordered.
func (s *Store) Routes() []Route {
	out := make([]Route, 0, len(s.routes))
	for _, r := range s.routes {
		out = append(out, r)
	}
	return out
}

// Stops returns all stops, unordered.
func (s *Store) Stops() []Stop {
	out := make([]Stop, 0, len(s.stops))
	for _, st := range s.stops {
		out = append(out, st)
	}
	return out
}

// TripsForRoute returns all trips serving a route, unordered.
func (s *Store) TripsForRoute(routeID string) []Trip {
	var out []Trip
	for _, t := range s.trips {
		if t.RouteID == routeID {
			out = append(out, t)
		}
	}
	return out
}

// Location returns the agency's local timezone. CapMetro publishes
// America/Chicago in agency.txt; the fixed-offset zone is a last resort
// when tzdata is unavailable.
func (s *Store) Location() *time.Location {
	tz := s.agencyTZ
	if tz == "" {
		tz = "America/Chicago"
	}
	if loc, err := time.LoadLocation(tz); err == nil {
		return loc
	}
	return DefaultLocation()
}

// DefaultLocation is the display timezone used when no static data is
// available to consult.
func DefaultLocation() *time.Location {
	if loc, err := time.LoadLocation("America/Chicago"); err == nil {
		return loc
	}
	return time.FixedZone("CST", -6*60*60)
}
