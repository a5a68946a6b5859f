// Package geo provides great-circle distances and a court proximity index.
package geo

import "math"

const (
	// EarthRadiusMeters is the mean Earth radius used by DistanceMeters.
	EarthRadiusMeters = 6371000.0

	metersPerMile = 1609.344
)

// DistanceMeters returns the haversine distance between two coordinates in meters.
// NaN inputs produce NaN.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// DistanceMiles returns DistanceMeters converted to statute miles.
func DistanceMiles(lat1, lon1, lat2, lon2 float64) float64 {
	return DistanceMeters(lat1, lon1, lat2, lon2) / metersPerMile
}
