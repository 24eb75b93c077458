package geo

import (
	"math"
)

// EarthRadiusM is the mean earth radius in metres
const EarthRadiusM = 6371000.0

// Coordinates is a point in degrees
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// Valid reports whether both components are finite and within range
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// ComputeDistance returns the great-circle distance between two points in metres
func ComputeDistance(from, to Coordinates) float64 {
	if from == to {
		return 0
	}
	return HaversineKM(from.Lat, from.Lng, to.Lat, to.Lng) * 1000
}

// HaversineKM returns the great-circle distance in kilometres
func HaversineKM(lat1, lon1, lat2, lon2 float64) float64 {
	const R = EarthRadiusM / 1000
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)
	la1 := degreesToRadians(lat1)
	la2 := degreesToRadians(lat2)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(la1)*math.Cos(la2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}
