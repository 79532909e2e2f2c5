package gtfsrt

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The portal serves vehicle positions as a JSON rendering of the GTFS-RT
// feed: either {"entity": [...]} or a bare entity array.

type vehicleFeedJSON struct {
	Entity []vehicleEntityJSON `json:"entity"`
}

type vehicleEntityJSON struct {
	Vehicle vehicleJSON `json:"vehicle"`
}

type vehicleJSON struct {
	Trip struct {
		TripID  string `json:"trip_id"`
		RouteID string `json:"route_id"`
	} `json:"trip"`
	Position struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"position"`
	Vehicle struct {
		ID string `json:"id"`
	} `json:"vehicle"`
	Timestamp flexInt64 `json:"timestamp"`
}

// flexInt64 tolerates the feed flip-flopping between numeric and string
// timestamps. Unparseable values decode to zero.
type flexInt64 int64

func (f *flexInt64) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexInt64(n)
	return nil
}

// VehiclesFromJSON decodes the vehicle-positions JSON feed. Entities
// without a route assignment are not in service and are dropped.
func VehiclesFromJSON(data []byte) ([]Vehicle, error) {
	var feed vehicleFeedJSON
	if err := json.Unmarshal(data, &feed); err != nil {
		// Some snapshots are a bare entity array.
		if err2 := json.Unmarshal(data, &feed.Entity); err2 != nil {
			return nil, err
		}
	}

	var out []Vehicle
	for _, e := range feed.Entity {
		v := e.Vehicle
		if v.Trip.RouteID == "" {
			continue
		}
		out = append(out, Vehicle{
			ID:        v.Vehicle.ID,
			RouteID:   v.Trip.RouteID,
			TripID:    v.Trip.TripID,
			Lat:       v.Position.Latitude,
			Lon:       v.Position.Longitude,
			Timestamp: int64(v.Timestamp),
		})
	}
	return out, nil
}
