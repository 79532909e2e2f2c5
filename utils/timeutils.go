package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock12 converts a GTFS HH:MM:SS time-of-day string to a 12-hour clock
// label such as "9:45 AM". GTFS allows hours >= 24 for trips that run past
// midnight; those wrap onto the next service day. Unparseable input is
// returned unchanged.
func Clock12(hms string) string {
	parts := strings.Split(hms, ":")
	if len(parts) < 2 {
		return hms
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return hms
	}
	h %= 24
	ampm := "AM"
	if h >= 12 {
		ampm = "PM"
	}
	if h > 12 {
		h -= 12
	} else if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%s %s", h, parts[1], ampm)
}

// TimeOfDay formats t as a GTFS-comparable HH:MM:SS string.
func TimeOfDay(t time.Time) string {
	return t.Format("15:04:05")
}

// ZFill left-pads s with zeros to the given width, mirroring how CapMetro
// route identifiers sort numerically ("7" before "10", "801" after "20").
func ZFill(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
