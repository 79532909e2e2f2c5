package utils

import (
	"math"
	"testing"
)

func TestHaversineMiles(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expected               float64
		tolerance              float64
	}{
		{
			name: "same point",
			lat1: 30.2672, lon1: -97.7431,
			lat2: 30.2672, lon2: -97.7431,
			expected:  0,
			tolerance: 0.0001,
		},
		{
			name: "one degree of latitude",
			lat1: 30.0, lon1: -97.7431,
			lat2: 31.0, lon2: -97.7431,
			expected:  69.1,
			tolerance: 0.5,
		},
		{
			name: "downtown Austin to airport",
			lat1: 30.2672, lon1: -97.7431,
			lat2: 30.1975, lon2: -97.6664,
			expected:  6.6,
			tolerance: 0.5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineMiles(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.expected) > tt.tolerance {
				t.Errorf("expected ~%.2f mi, got %.2f mi", tt.expected, got)
			}
		})
	}
}

func TestHaversineMilesSymmetry(t *testing.T) {
	a := HaversineMiles(30.2672, -97.7431, 30.4, -97.7)
	b := HaversineMiles(30.4, -97.7, 30.2672, -97.7431)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("distance should be symmetric: %v vs %v", a, b)
	}
}
