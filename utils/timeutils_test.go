package utils

import (
	"testing"
	"time"
)

func TestClock12(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "morning", input: "09:45:00", expected: "9:45 AM"},
		{name: "noon", input: "12:00:00", expected: "12:00 PM"},
		{name: "midnight", input: "00:05:00", expected: "12:05 AM"},
		{name: "afternoon", input: "13:30:00", expected: "1:30 PM"},
		{name: "last minute", input: "23:59:00", expected: "11:59 PM"},
		{name: "past midnight", input: "25:30:00", expected: "1:30 AM"},
		{name: "very late trip", input: "26:45:30", expected: "2:45 AM"},
		{name: "garbage passthrough", input: "not-a-time", expected: "not-a-time"},
		{name: "empty passthrough", input: "", expected: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clock12(tt.input); got != tt.expected {
				t.Errorf("Clock12(%q): expected %q, got %q", tt.input, tt.expected, got)
			}
		})
	}
}

func TestTimeOfDay(t *testing.T) {
	ts := time.Date(2025, 3, 10, 8, 5, 9, 0, time.UTC)
	if got := TimeOfDay(ts); got != "08:05:09" {
		t.Errorf("expected 08:05:09, got %q", got)
	}
}

func TestZFill(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"7", 5, "00007"},
		{"801", 5, "00801"},
		{"12345", 5, "12345"},
		{"123456", 5, "123456"},
		{"", 3, "000"},
	}
	for _, tt := range tests {
		if got := ZFill(tt.input, tt.width); got != tt.expected {
			t.Errorf("ZFill(%q, %d): expected %q, got %q", tt.input, tt.width, tt.expected, got)
		}
	}
}

func TestZFillOrdersRoutesNumerically(t *testing.T) {
	if !(ZFill("7", 5) < ZFill("10", 5)) {
		t.Error("route 7 should sort before route 10")
	}
	if !(ZFill("20", 5) < ZFill("801", 5)) {
		t.Error("route 20 should sort before route 801")
	}
}
