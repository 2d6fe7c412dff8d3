package services

import (
	"math"
	"testing"

	"voyage-fuel-service/internal/domain"
	"voyage-fuel-service/internal/fuel"
)

func TestComputeRouteSingleSegmentDerivedTime(t *testing.T) {
	segments := []domain.RouteSegment{
		{DistanceNm: 100, RPM: 80, WeatherFactor: 1.0, SpeedKn: 10},
	}

	plan := ComputeRoute(segments, 50)

	if len(plan.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(plan.Results))
	}

	// timeH derived as 100/10 = 10h.
	wantConsumption := fuel.ConsumptionRate(80, 1.0) * 10
	got := plan.Results[0]

	if math.Abs(got.ConsumptionMt-wantConsumption) > 1e-12 {
		t.Errorf("consumption = %v, want %v", got.ConsumptionMt, wantConsumption)
	}
	if math.Abs(got.RobMt-(50-wantConsumption)) > 1e-12 {
		t.Errorf("rob = %v, want %v", got.RobMt, 50-wantConsumption)
	}
	if plan.Warning {
		t.Error("unexpected warning for a normal route")
	}
	if math.Abs(plan.TotalTimeH-10) > 1e-12 {
		t.Errorf("total time = %v, want 10", plan.TotalTimeH)
	}
	if plan.TotalDistanceNm != 100 {
		t.Errorf("total distance = %v, want 100", plan.TotalDistanceNm)
	}
}

func TestComputeRouteExplicitTimeWins(t *testing.T) {
	// When TimeH is set, speed/distance derivation must not run.
	segments := []domain.RouteSegment{
		{DistanceNm: 100, RPM: 80, WeatherFactor: 1.0, TimeH: 5, SpeedKn: 10},
	}

	plan := ComputeRoute(segments, 50)

	want := fuel.ConsumptionRate(80, 1.0) * 5
	if math.Abs(plan.Results[0].ConsumptionMt-want) > 1e-12 {
		t.Errorf("consumption = %v, want %v", plan.Results[0].ConsumptionMt, want)
	}
}

func TestComputeRouteExhaustionClampsAndWarns(t *testing.T) {
	segments := []domain.RouteSegment{
		{RPM: 100, WeatherFactor: 1.0, TimeH: 24},
		{RPM: 100, WeatherFactor: 1.0, TimeH: 24},
		{RPM: 100, WeatherFactor: 1.0, TimeH: 24},
	}

	plan := ComputeRoute(segments, 0)

	for i, r := range plan.Results {
		if r.RobMt != 0 {
			t.Errorf("segment %d rob = %v, want 0 (clamped)", i, r.RobMt)
		}
		if r.ConsumptionMt <= 0 {
			t.Errorf("segment %d consumption = %v, want > 0", i, r.ConsumptionMt)
		}
	}
	if !plan.Warning {
		t.Error("expected warning once rob dropped below zero")
	}
}

func TestComputeRouteAccumulatorStaysUnclamped(t *testing.T) {
	// The display clamp must not feed back into the running balance: a
	// refuel-sized negative overshoot on leg 1 keeps draining through leg 2.
	rate := fuel.ConsumptionRate(90, 1.0)

	segments := []domain.RouteSegment{
		{RPM: 90, WeatherFactor: 1.0, TimeH: 10},
		{RPM: 90, WeatherFactor: 1.0, TimeH: 10},
	}

	start := rate * 15 // exhausted midway through leg 2
	plan := ComputeRoute(segments, start)

	if plan.Results[0].RobMt <= 0 {
		t.Fatalf("leg 1 rob = %v, want > 0", plan.Results[0].RobMt)
	}
	if plan.Results[1].RobMt != 0 {
		t.Errorf("leg 2 rob = %v, want 0", plan.Results[1].RobMt)
	}
	if !plan.Warning {
		t.Error("expected warning after exhaustion")
	}
	if math.Abs(plan.TotalConsumptionMt-rate*20) > 1e-12 {
		t.Errorf("total consumption = %v, want %v", plan.TotalConsumptionMt, rate*20)
	}
}

func TestComputeRouteNegativeInputGuard(t *testing.T) {
	// A negative explicit consumption (negative time survives only if the
	// caller bypasses normalization) must trip the legacy rob > start guard.
	segments := []domain.RouteSegment{
		{RPM: 80, WeatherFactor: 1.0, TimeH: -5},
	}

	plan := ComputeRoute(segments, 50)

	if !plan.Warning {
		t.Error("expected warning when rob exceeds starting fuel")
	}
}

func TestComputeRouteEmpty(t *testing.T) {
	plan := ComputeRoute(nil, 42)

	if len(plan.Results) != 0 {
		t.Fatalf("expected no results, got %d", len(plan.Results))
	}
	if plan.Warning {
		t.Error("unexpected warning")
	}
	if plan.StartFuelMt != 42 {
		t.Errorf("start fuel = %v, want 42", plan.StartFuelMt)
	}
}
