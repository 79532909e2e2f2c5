// Package arrivals ranks upcoming arrivals at a stop, merging real-time
// predictions with a scheduled-timetable fallback.
package arrivals

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/atxtransit/capmetro-cli/utils"
)

// Source tells which feed produced a candidate.
type Source int

const (
	SourceRealtime Source = iota
	SourceScheduled
)

// Contractual constants: a vehicle more than five minutes gone is no
// longer shown, and the display list is capped per source.
const (
	pastCutoffMinutes = -5
	realtimeLimit     = 15
	scheduledLimit    = 10
)

const clock12Layout = "03:04 PM"

// StopQuery is the request being reconciled. RouteFilter, when set,
// restricts candidates to one route_id.
type StopQuery struct {
	StopID      string
	RouteFilter string
}

// Candidate is one potential arrival, projected from either a real-time
// prediction or a scheduled stop-time. Real-time candidates carry
// ArrivalAt; scheduled candidates carry the raw HH:MM:SS TimeOfDay, whose
// lexicographic order matches chronological order within a service day.
type Candidate struct {
	RouteID      string
	RouteLabel   string
	Headsign     string
	ArrivalAt    time.Time
	TimeOfDay    string
	DelaySeconds int
	Source       Source
}

// Ranked is a display-ready arrival. MinutesAway and DelayMinutes are only
// meaningful for real-time entries.
type Ranked struct {
	RouteLabel   string
	Headsign     string
	DisplayTime  string
	MinutesAway  int
	DelayMinutes int
	Source       Source
}

// Reconcile produces the ordered, capped arrival list for one invocation.
//
// Real-time candidates are filtered by route, by relative time (anything
// more than five minutes in the past is gone), stable-sorted by minutes
// away, and capped at fifteen. If any survive, scheduled candidates are
// ignored entirely. Otherwise the scheduled fallback keeps times strictly
// later than now's local time-of-day, sorted by the raw HH:MM:SS string,
// capped at ten. An empty result is not an error.
func Reconcile(q StopQuery, realtime, scheduled []Candidate, now time.Time) []Ranked {
	kept := make([]Ranked, 0, len(realtime))
	for _, c := range realtime {
		if q.RouteFilter != "" && c.RouteID != q.RouteFilter {
			continue
		}
		mins := minutesAway(c.ArrivalAt, now)
		if mins < pastCutoffMinutes {
			continue
		}
		kept = append(kept, Ranked{
			RouteLabel:   c.RouteLabel,
			Headsign:     c.Headsign,
			DisplayTime:  strings.TrimPrefix(c.ArrivalAt.Format(clock12Layout), "0"),
			MinutesAway:  mins,
			DelayMinutes: delayMinutes(c.DelaySeconds),
			Source:       SourceRealtime,
		})
	}
	if len(kept) > 0 {
		sort.SliceStable(kept, func(i, j int) bool { return kept[i].MinutesAway < kept[j].MinutesAway })
		if len(kept) > realtimeLimit {
			kept = kept[:realtimeLimit]
		}
		return kept
	}

	nowTOD := utils.TimeOfDay(now)
	upcoming := make([]Candidate, 0, len(scheduled))
	for _, c := range scheduled {
		if q.RouteFilter != "" && c.RouteID != q.RouteFilter {
			continue
		}
		if c.TimeOfDay <= nowTOD {
			continue
		}
		upcoming = append(upcoming, c)
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].TimeOfDay < upcoming[j].TimeOfDay })
	if len(upcoming) > scheduledLimit {
		upcoming = upcoming[:scheduledLimit]
	}

	out := make([]Ranked, 0, len(upcoming))
	for _, c := range upcoming {
		out = append(out, Ranked{
			RouteLabel:  c.RouteLabel,
			Headsign:    c.Headsign,
			DisplayTime: utils.Clock12(c.TimeOfDay),
			Source:      SourceScheduled,
		})
	}
	return out
}

// ETALabel maps minutes-away to its display label.
func ETALabel(minutesAway int) string {
	switch {
	case minutesAway <= 0:
		return "NOW"
	case minutesAway == 1:
		return "1 min"
	default:
		return fmt.Sprintf("%d min", minutesAway)
	}
}

func minutesAway(arrival, now time.Time) int {
	return int(math.Round(arrival.Sub(now).Minutes()))
}

func delayMinutes(delaySeconds int) int {
	if delaySeconds == 0 {
		return 0
	}
	return int(math.Round(float64(delaySeconds) / 60))
}
