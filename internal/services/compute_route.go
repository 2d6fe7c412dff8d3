package services

import (
	"voyage-fuel-service/internal/domain"
	"voyage-fuel-service/internal/fuel"
)

// ComputeRoute runs the fuel balance over the ordered segment sequence.
//
// Every call is a full recomputation from startMt: there is no
// incremental update path, and none is needed at route sizes of a few
// dozen segments. The computation is pure and never fails; out-of-range
// inputs have already been coerced to 0 by segment normalization.
//
// Per segment, in order:
//   - when no explicit duration is set but speed and distance are known,
//     the duration is derived from them;
//   - consumption is rate(rpm, weather) * duration;
//   - the running accumulator is reduced by the consumption. The emitted
//     ROB is floored at 0 for display, but the accumulator itself is
//     never clamped, so a leg after fuel exhaustion keeps draining the
//     raw balance.
//
// The warning flag is raised when the raw accumulator either exceeds the
// starting quantity (possible only with invalid negative inputs) or
// drops below zero (fuel exhausted before the route ends).
func ComputeRoute(segments []domain.RouteSegment, startMt float64) domain.VoyagePlan {
	plan := domain.VoyagePlan{
		StartFuelMt: startMt,
		Results:     make([]domain.SegmentResult, 0, len(segments)),
	}

	currentRob := startMt

	for _, seg := range segments {
		timeH := seg.TimeH
		if timeH == 0 && seg.SpeedKn > 0 && seg.DistanceNm > 0 {
			timeH = fuel.Time(seg.DistanceNm, seg.SpeedKn)
		}

		rate := fuel.ConsumptionRate(seg.RPM, seg.WeatherFactor)
		consumptionMt := rate * timeH

		currentRob -= consumptionMt

		if currentRob > startMt || currentRob < 0 {
			plan.Warning = true
		}

		plan.Results = append(plan.Results, domain.SegmentResult{
			ConsumptionMt: consumptionMt,
			RobMt:         max(0, currentRob),
		})

		plan.TotalConsumptionMt += consumptionMt
		plan.TotalDistanceNm += seg.DistanceNm
		plan.TotalTimeH += timeH
	}

	return plan
}
