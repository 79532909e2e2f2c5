package utils

import "math"

// EarthRadiusMiles is the mean Earth radius used for haversine distances.
const EarthRadiusMiles = 3959.0

// HaversineMiles returns the great-circle distance in miles between two
// lat/lon points.
func HaversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	return EarthRadiusMiles * 2 * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
