package domain

import "math"

// Earth radius used for great-circle distances, in kilometres.
const earthRadiusKm = 6371.0

// One nautical mile in kilometres.
const kmPerNauticalMile = 1.852

// Immutable geographic coordinates (latitude, longitude) in degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DistanceNmTo returns the great-circle (haversine) distance to other
// in nautical miles.
func (c Coordinates) DistanceNmTo(other Coordinates) float64 {
	lat1 := c.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - c.Lat) * math.Pi / 180
	dLon := (other.Lon - c.Lon) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	cc := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * cc / kmPerNauticalMile
}

// PathDistanceNm returns the summed pairwise haversine distance along an
// ordered sequence of waypoints. Fewer than two points yields 0.
func PathDistanceNm(points []Coordinates) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i-1].DistanceNmTo(points[i])
	}
	return total
}
