package gtfs

import (
	"sort"
	"strings"

	"github.com/atxtransit/capmetro-cli/utils"
)

// NearbyStop pairs a stop with its distance from a query point.
type NearbyStop struct {
	Stop
	DistanceMiles float64
}

// SearchStops returns stops whose name or description contains the query,
// case-insensitively, sorted by stop name. Callers cap for display.
func (s *Store) SearchStops(query string) []Stop {
	q := strings.ToLower(query)
	var matches []Stop
	for _, st := range s.stops {
		if strings.Contains(strings.ToLower(st.Name), q) ||
			strings.Contains(strings.ToLower(st.Desc), q) {
			matches = append(matches, st)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Name < matches[j].Name })
	return matches
}

// StopsNear returns stops within radiusMiles of the point, nearest first.
func (s *Store) StopsNear(lat, lon, radiusMiles float64) []NearbyStop {
	var nearby []NearbyStop
	for _, st := range s.stops {
		d := utils.HaversineMiles(lat, lon, st.Lat, st.Lon)
		if d <= radiusMiles {
			nearby = append(nearby, NearbyStop{Stop: st, DistanceMiles: d})
		}
	}
	sort.Slice(nearby, func(i, j int) bool { return nearby[i].DistanceMiles < nearby[j].DistanceMiles })
	return nearby
}
