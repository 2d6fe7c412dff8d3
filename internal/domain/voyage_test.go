package domain

import (
	"math"
	"testing"
)

func TestSegmentNormalizeCoercesBadInputs(t *testing.T) {
	seg := RouteSegment{
		DistanceNm:    -100,
		RPM:           math.NaN(),
		WeatherFactor: math.Inf(1),
		TimeH:         -1,
		SpeedKn:       12,
	}

	seg.Normalize()

	if seg.DistanceNm != 0 || seg.RPM != 0 || seg.WeatherFactor != 0 || seg.TimeH != 0 {
		t.Fatalf("bad inputs not coerced to 0: %+v", seg)
	}
	if seg.SpeedKn != 12 {
		t.Fatalf("valid speed changed: %v", seg.SpeedKn)
	}
}

func TestSegmentNormalizeDerivesWaypointDistance(t *testing.T) {
	seg := RouteSegment{
		RPM:           90,
		WeatherFactor: 1.0,
		Waypoints: []Coordinates{
			{Lat: 0, Lon: 0},
			{Lat: 1, Lon: 0},
		},
	}

	seg.Normalize()

	want := PathDistanceNm(seg.Waypoints)
	if seg.DistanceNm != want {
		t.Fatalf("derived distance = %v, want %v", seg.DistanceNm, want)
	}
}

func TestSegmentNormalizeKeepsExplicitDistance(t *testing.T) {
	seg := RouteSegment{
		DistanceNm: 42,
		Waypoints: []Coordinates{
			{Lat: 0, Lon: 0},
			{Lat: 5, Lon: 0},
		},
	}

	seg.Normalize()

	if seg.DistanceNm != 42 {
		t.Fatalf("explicit distance overridden: %v", seg.DistanceNm)
	}
}

func TestVoyageReplaceSegments(t *testing.T) {
	v := NewVoyage(1, "trial", 100)
	v.AddSegment(RouteSegment{DistanceNm: 10, RPM: 80, WeatherFactor: 1})

	v.ReplaceSegments([]RouteSegment{
		{DistanceNm: 20, RPM: 85, WeatherFactor: 1},
		{DistanceNm: -5, RPM: 90, WeatherFactor: 1},
	})

	if len(v.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(v.Segments))
	}
	if v.Segments[0].DistanceNm != 20 {
		t.Errorf("segment 0 distance = %v, want 20", v.Segments[0].DistanceNm)
	}
	// Negative distance normalized away on replace.
	if v.Segments[1].DistanceNm != 0 {
		t.Errorf("segment 1 distance = %v, want 0", v.Segments[1].DistanceNm)
	}
}

func TestNewVoyageCoercesNegativeStart(t *testing.T) {
	v := NewVoyage(3, "bad start", -10)
	if v.StartFuelMt != 0 {
		t.Fatalf("start fuel = %v, want 0", v.StartFuelMt)
	}
}
