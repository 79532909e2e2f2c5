package gtfs

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// forEachRow streams one GTFS table, calling fn with a header-index lookup
// and each data row. Missing files are not an error; optional tables are
// simply absent from some feeds.
func (s *Store) forEachRow(filename string, fn func(idx func(string) int, row []string)) error {
	f, err := os.Open(filepath.Join(s.dir, filename))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	head, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	// Feeds exported from Windows tooling carry a UTF-8 BOM.
	if len(head) > 0 {
		head[0] = strings.TrimPrefix(head[0], "\ufeff")
	}
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(h, col) {
				return i
			}
		}
		return -1
	}
	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fn(idx, row)
	}
}

func cell(row []string, i int) string {
	if i >= 0 && i < len(row) {
		return row[i]
	}
	return ""
}

func (s *Store) loadRoutes() error {
	return s.forEachRow("routes.txt", func(idx func(string) int, row []string) {
		rID := idx("route_id")
		id := cell(row, rID)
		if id == "" {
			return
		}
		rType, _ := strconv.Atoi(cell(row, idx("route_type")))
		s.routes[id] = Route{
			ID:        id,
			ShortName: cell(row, idx("route_short_name")),
			LongName:  cell(row, idx("route_long_name")),
			Type:      rType,
			URL:       cell(row, idx("route_url")),
		}
	})
}

func (s *Store) loadTrips() error {
	return s.forEachRow("trips.txt", func(idx func(string) int, row []string) {
		id := cell(row, idx("trip_id"))
		if id == "" {
			return
		}
		s.trips[id] = Trip{
			ID:          id,
			RouteID:     cell(row, idx("route_id")),
			Headsign:    cell(row, idx("trip_headsign")),
			DirectionID: cell(row, idx("direction_id")),
		}
	})
}

func (s *Store) loadStops() error {
	return s.forEachRow("stops.txt", func(idx func(string) int, row []string) {
		id := cell(row, idx("stop_id"))
		if id == "" {
			return
		}
		lat, _ := strconv.ParseFloat(cell(row, idx("stop_lat")), 64)
		lon, _ := strconv.ParseFloat(cell(row, idx("stop_lon")), 64)
		s.stops[id] = Stop{
			ID:   id,
			Name: cell(row, idx("stop_name")),
			Desc: cell(row, idx("stop_desc")),
			Lat:  lat,
			Lon:  lon,
		}
	})
}

func (s *Store) loadAgency() error {
	return s.forEachRow("agency.txt", func(idx func(string) int, row []string) {
		if s.agencyName == "" {
			s.agencyName = cell(row, idx("agency_name"))
		}
		if s.agencyTZ == "" {
			s.agencyTZ = cell(row, idx("agency_timezone"))
		}
	})
}

// StopTimesForStop scans stop_times.txt for rows at one stop. The file is
// by far the largest GTFS table, so it is streamed rather than indexed.
func (s *Store) StopTimesForStop(stopID string) ([]StopTime, error) {
	var out []StopTime
	err := s.forEachRow("stop_times.txt", func(idx func(string) int, row []string) {
		if cell(row, idx("stop_id")) != stopID {
			return
		}
		out = append(out, stopTimeFromRow(idx, row))
	})
	return out, err
}

// StopTimesForTrip scans stop_times.txt for one trip's rows, ordered by
// stop_sequence.
func (s *Store) StopTimesForTrip(tripID string) ([]StopTime, error) {
	var out []StopTime
	err := s.forEachRow("stop_times.txt", func(idx func(string) int, row []string) {
		if cell(row, idx("trip_id")) != tripID {
			return
		}
		out = append(out, stopTimeFromRow(idx, row))
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StopSequence < out[j].StopSequence })
	return out, nil
}

func stopTimeFromRow(idx func(string) int, row []string) StopTime {
	seq, _ := strconv.Atoi(cell(row, idx("stop_sequence")))
	return StopTime{
		TripID:        cell(row, idx("trip_id")),
		StopID:        cell(row, idx("stop_id")),
		StopSequence:  seq,
		ArrivalTime:   cell(row, idx("arrival_time")),
		DepartureTime: cell(row, idx("departure_time")),
	}
}
