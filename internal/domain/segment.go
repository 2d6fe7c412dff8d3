package domain

import "math"

// Represents one leg of a voyage with constant RPM, weather and
// time/speed assumptions.
//
// At most one of TimeH/SpeedKn is authoritative per update; the other is
// derived during route computation. Waypoints, when supplied by the map
// layer, are the ordered coordinates the leg follows; the model only
// consumes the derived pairwise distance.
type RouteSegment struct {
	DistanceNm    float64
	RPM           float64
	WeatherFactor float64
	TimeH         float64
	SpeedKn       float64
	Waypoints     []Coordinates
}

// Normalize coerces out-of-range or non-finite numeric inputs to 0 and
// derives DistanceNm from waypoints when no explicit distance was given.
// This matches the parse-or-zero policy at the input boundary: bad
// numbers never fail a computation, they contribute nothing to it.
func (s *RouteSegment) Normalize() {
	s.DistanceNm = coerceNonNegative(s.DistanceNm)
	s.RPM = coerceNonNegative(s.RPM)
	s.WeatherFactor = coerceNonNegative(s.WeatherFactor)
	s.TimeH = coerceNonNegative(s.TimeH)
	s.SpeedKn = coerceNonNegative(s.SpeedKn)

	if s.DistanceNm == 0 && len(s.Waypoints) >= 2 {
		s.DistanceNm = PathDistanceNm(s.Waypoints)
	}
}

func coerceNonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
