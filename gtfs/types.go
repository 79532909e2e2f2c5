package gtfs

// Route is one row of routes.txt.
type Route struct {
	ID        string
	ShortName string
	LongName  string
	Type      int
	URL       string
}

// GTFS route_type enum values.
var routeTypeNames = map[int]string{
	0: "Tram",
	1: "Subway",
	2: "Rail",
	3: "Bus",
	4: "Ferry",
}

// TypeName returns a rider-facing label for the route type.
func (r Route) TypeName() string {
	if name, ok := routeTypeNames[r.Type]; ok {
		return name
	}
	return "Other"
}

// Trip is one row of trips.txt.
type Trip struct {
	ID          string
	RouteID     string
	Headsign    string
	DirectionID string
}

// Stop is one row of stops.txt.
type Stop struct {
	ID   string
	Name string
	Desc string
	Lat  float64
	Lon  float64
}

// StopTime is one row of stop_times.txt.
type StopTime struct {
	TripID        string
	StopID        string
	StopSequence  int
	ArrivalTime   string // HH:MM:SS, may be >= 24:00:00 past midnight
	DepartureTime string
}

// Time returns the scheduled time-of-day for display and ordering,
// preferring arrival_time over departure_time.
func (st StopTime) Time() string {
	if st.ArrivalTime != "" {
		return st.ArrivalTime
	}
	return st.DepartureTime
}
