package gtfsrt

// StopTimePrediction is one real-time arrival/departure prediction for a
// trip at a stop, flattened from a TripUpdate entity.
type StopTimePrediction struct {
	TripID       string
	RouteID      string
	StopID       string
	ArrivalTime  int64 // unix seconds; departure time when no arrival given
	DelaySeconds int   // from the same event that supplied ArrivalTime
}

// ActivePeriod is a window during which an alert applies. Zero values mean
// open-ended.
type ActivePeriod struct {
	Start int64
	End   int64
}

// Alert is a simplified service alert.
type Alert struct {
	ID          string
	Header      string
	Description string
	Cause       string
	Effect      string
	Periods     []ActivePeriod
	RouteIDs    []string
}

// Vehicle is one live vehicle position. Vehicles with no route assignment
// (not in service) are dropped during decoding.
type Vehicle struct {
	ID        string
	RouteID   string
	TripID    string
	Lat       float64
	Lon       float64
	Timestamp int64 // unix seconds, 0 when the feed omits it
}
