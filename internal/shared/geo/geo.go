// Package geo provides great-circle distance and travel-time estimates.
package geo

import (
	"math"
	"time"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371

// averageSpeedKmh is the assumed city driving speed for duration estimates.
const averageSpeedKmh = 30

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// IndoreCenter is the default reference point when a caller supplies no
// location of their own.
var IndoreCenter = Coordinate{Lat: 22.7196, Lng: 75.8577}

// Haversine returns the great-circle distance between two coordinates in
// kilometers.
func Haversine(origin, dest Coordinate) float64 {
	lat1 := origin.Lat * math.Pi / 180
	lat2 := dest.Lat * math.Pi / 180
	dLat := (dest.Lat - origin.Lat) * math.Pi / 180
	dLng := (dest.Lng - origin.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// EstimateDuration converts a distance in kilometers to driving time at city
// speed, rounded to the minute.
func EstimateDuration(distanceKm float64) time.Duration {
	minutes := math.Round(distanceKm / averageSpeedKmh * 60)
	return time.Duration(minutes) * time.Minute
}
