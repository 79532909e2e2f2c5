package gtfsrt

import (
	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
)

// PredictionsFromFeed flattens a trip-updates FeedMessage into one
// StopTimePrediction per stop-time update. The arrival event is preferred;
// when only a departure is given its time and delay are used instead.
// Updates carrying neither are skipped.
func PredictionsFromFeed(fm *gtfsrtpb.FeedMessage) []StopTimePrediction {
	var out []StopTimePrediction
	for _, e := range fm.GetEntity() {
		tu := e.GetTripUpdate()
		if tu == nil {
			continue
		}
		tripID := tu.GetTrip().GetTripId()
		routeID := tu.GetTrip().GetRouteId()
		for _, stu := range tu.GetStopTimeUpdate() {
			p := StopTimePrediction{
				TripID:  tripID,
				RouteID: routeID,
				StopID:  stu.GetStopId(),
			}
			switch {
			case stu.GetArrival().GetTime() != 0:
				p.ArrivalTime = stu.GetArrival().GetTime()
				p.DelaySeconds = int(stu.GetArrival().GetDelay())
			case stu.GetDeparture().GetTime() != 0:
				p.ArrivalTime = stu.GetDeparture().GetTime()
				p.DelaySeconds = int(stu.GetDeparture().GetDelay())
			default:
				continue
			}
			out = append(out, p)
		}
	}
	return out
}

// AlertsFromFeed converts a service-alerts FeedMessage into simplified
// Alert values. Translated strings keep their first translation, matching
// how the feed is rendered for a single-language agency.
func AlertsFromFeed(fm *gtfsrtpb.FeedMessage) []Alert {
	var out []Alert
	for _, e := range fm.GetEntity() {
		a := e.GetAlert()
		if a == nil {
			continue
		}
		alert := Alert{
			ID:          e.GetId(),
			Header:      firstTranslation(a.GetHeaderText()),
			Description: firstTranslation(a.GetDescriptionText()),
		}
		if a.Cause != nil {
			alert.Cause = a.GetCause().String()
		}
		if a.Effect != nil {
			alert.Effect = a.GetEffect().String()
		}
		for _, ap := range a.GetActivePeriod() {
			alert.Periods = append(alert.Periods, ActivePeriod{
				Start: int64(ap.GetStart()),
				End:   int64(ap.GetEnd()),
			})
		}
		for _, ie := range a.GetInformedEntity() {
			if rid := ie.GetRouteId(); rid != "" {
				alert.RouteIDs = append(alert.RouteIDs, rid)
			}
		}
		out = append(out, alert)
	}
	return out
}

func firstTranslation(ts *gtfsrtpb.TranslatedString) string {
	for _, tr := range ts.GetTranslation() {
		return tr.GetText()
	}
	return ""
}
