package match

import (
	"math"

	"giveLocal/domain"
)

// earthRadiusKm is the mean Earth radius used for all spherical distances.
const earthRadiusKm = 6371.0

// Point is the canonical coordinate form used throughout the pipeline.
// Stored items carry a (longitude, latitude) column pair while match
// queries arrive as (lat, lon); both are converted here and nowhere else.
type Point struct {
	Lat float64
	Lon float64
}

func pointFromItem(item domain.Item) Point {
	return Point{Lat: item.Latitude, Lon: item.Longitude}
}

func pointFromQuery(lat, lon float64) Point {
	return Point{Lat: lat, Lon: lon}
}

// Haversine returns the great-circle distance between two points in km.
func Haversine(a, b Point) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
